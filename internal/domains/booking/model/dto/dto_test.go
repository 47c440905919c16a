package dto_test

import (
	"encoding/json"
	"testing"

	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_Parse(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateBookingRequest
		wantErr string
	}{
		{
			name: "valid stay",
			req:  dto.CreateBookingRequest{GuestID: 1, RoomID: 2, CheckIn: "2025-06-01", CheckOut: "2025-06-03"},
		},
		{
			name: "timestamps are truncated to dates",
			req:  dto.CreateBookingRequest{GuestID: 1, RoomID: 2, CheckIn: "2025-06-01T14:00:00Z", CheckOut: "2025-06-03T10:00:00Z"},
		},
		{
			name:    "missing check out",
			req:     dto.CreateBookingRequest{GuestID: 1, RoomID: 2, CheckIn: "2025-06-01"},
			wantErr: dto.ErrMissingFields,
		},
		{
			name:    "negative room",
			req:     dto.CreateBookingRequest{GuestID: 1, RoomID: -2, CheckIn: "2025-06-01", CheckOut: "2025-06-03"},
			wantErr: dto.ErrInvalidIDs,
		},
		{
			name:    "same day",
			req:     dto.CreateBookingRequest{GuestID: 1, RoomID: 2, CheckIn: "2025-06-01", CheckOut: "2025-06-01"},
			wantErr: dto.ErrInvalidDates,
		},
		{
			name:    "unparseable date",
			req:     dto.CreateBookingRequest{GuestID: 1, RoomID: 2, CheckIn: "June 1st", CheckOut: "2025-06-03"},
			wantErr: dto.ErrInvalidDates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay, msg := tt.req.Parse()

			assert.Equal(t, tt.wantErr, msg)

			if tt.wantErr == "" {
				assert.Equal(t, "2025-06-01", timezone.FormatDate(stay.CheckIn))
				assert.Equal(t, "2025-06-03", timezone.FormatDate(stay.CheckOut))
			}
		})
	}
}

func TestCreateBookingRequest_ParseFromJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "numeric strings", body: `{"guest_id":"5","room_id":"2","check_in":"2025-06-01","check_out":"2025-06-03"}`},
		{name: "non numeric room", body: `{"guest_id":5,"room_id":"abc","check_in":"2025-06-01","check_out":"2025-06-03"}`, wantErr: dto.ErrInvalidIDs},
		{name: "empty guest", body: `{"guest_id":"","room_id":2,"check_in":"2025-06-01","check_out":"2025-06-03"}`, wantErr: dto.ErrMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.CreateBookingRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			stay, msg := req.Parse()

			assert.Equal(t, tt.wantErr, msg)

			if tt.wantErr == "" {
				assert.Equal(t, int64(5), stay.GuestID)
				assert.Equal(t, int64(2), stay.RoomID)
			}
		})
	}
}

func TestStay_ToModel(t *testing.T) {
	stay, msg := (&dto.CreateBookingRequest{GuestID: 4, RoomID: 9, CheckIn: "2025-06-01", CheckOut: "2025-06-03"}).Parse()
	assert.Empty(t, msg)

	booking := stay.ToModel("guest:4")

	assert.Equal(t, model.StatusConfirmed, booking.Status)
	assert.Equal(t, timezone.FormatDate(timezone.Now()), timezone.FormatDate(booking.BookingDate))
	assert.Equal(t, "guest:4", booking.CreatedBy)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	details := []model.BookingDetail{{Booking: model.Booking{ID: 1, Status: model.StatusConfirmed}}}

	var res dto.GetBookingsResponse
	res.FromModels(details, 11, 5)

	assert.Equal(t, 3, res.TotalPage)
	assert.Equal(t, 11, res.TotalData)
	assert.Len(t, res.Bookings, 1)
	assert.Nil(t, res.Bookings[0].GuestName)
}
