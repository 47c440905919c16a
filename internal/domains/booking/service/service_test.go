package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel/config"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	"hotel/internal/domains/booking/service"
	roomMocks "hotel/internal/domains/room/mocks"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo  *bookingMocks.MockBooking
	rooms *roomMocks.MockRoom
	svc   service.Booking
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Kafka.Topics.Booking = "hotel.bookings"

	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	publisher := kafkaMocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), "hotel.bookings", gomock.Any()).Return(nil).AnyTimes()

	f := fixture{
		repo:  bookingMocks.NewMockBooking(ctrl),
		rooms: roomMocks.NewMockRoom(ctrl),
	}
	f.svc = service.New(f.repo, f.rooms, cfg, redis, mocks.NewOtel(), publisher)

	return f
}

func guestCtx(id string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserRole, constant.RoleGuest)

	return context.WithValue(ctx, constant.ContextKeyUserID, id)
}

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{GuestID: 1, RoomID: 2, CheckIn: "2025-06-01", CheckOut: "2025-06-03"}
}

func TestBookingService_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateBookingRequest
		message string
	}{
		{
			name:    "missing check out",
			req:     dto.CreateBookingRequest{GuestID: 1, RoomID: 2, CheckIn: "2025-06-01"},
			message: dto.ErrMissingFields,
		},
		{
			name:    "missing guest",
			req:     dto.CreateBookingRequest{RoomID: 2, CheckIn: "2025-06-01", CheckOut: "2025-06-03"},
			message: dto.ErrMissingFields,
		},
		{
			name:    "same day",
			req:     dto.CreateBookingRequest{GuestID: 1, RoomID: 2, CheckIn: "2025-06-01", CheckOut: "2025-06-01"},
			message: dto.ErrInvalidDates,
		},
		{
			name:    "check out before check in",
			req:     dto.CreateBookingRequest{GuestID: 1, RoomID: 2, CheckIn: "2025-06-05", CheckOut: "2025-06-01"},
			message: dto.ErrInvalidDates,
		},
		{
			name:    "unparseable date",
			req:     dto.CreateBookingRequest{GuestID: 1, RoomID: 2, CheckIn: "June first", CheckOut: "2025-06-03"},
			message: dto.ErrInvalidDates,
		},
		{
			name:    "negative room",
			req:     dto.CreateBookingRequest{GuestID: 1, RoomID: -2, CheckIn: "2025-06-01", CheckOut: "2025-06-03"},
			message: dto.ErrInvalidIDs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.svc.Create(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestBookingService_CreateForAnotherGuest(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(guestCtx("9"), validRequest())
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}

func TestBookingService_CreateUnknownRoom(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := f.svc.Create(guestCtx("1"), validRequest())
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, dto.ErrInvalidReference, err.Error())
}

func TestBookingService_CreateSuccess(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().Reserve(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, booking model.Booking) (int64, error) {
		assert.Equal(t, int64(1), booking.GuestID)
		assert.Equal(t, int64(2), booking.RoomID)
		assert.Equal(t, model.StatusConfirmed, booking.Status)
		assert.Equal(t, "2025-06-01", booking.CheckIn.Format(time.DateOnly))
		assert.Equal(t, "2025-06-03", booking.CheckOut.Format(time.DateOnly))
		assert.Equal(t, constant.RoleGuest+":1", booking.CreatedBy)

		return 42, nil
	})

	id, err := f.svc.Create(guestCtx("1"), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestBookingService_CreateConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "overlap found under lock", err: repository.ErrRoomUnavailable},
		{name: "exclusion constraint", err: &pq.Error{Code: constant.PqErrorCodeExclusionViolation}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			f.repo.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(int64(0), tt.err)

			_, err := f.svc.Create(context.Background(), validRequest())
			require.Error(t, err)
			assert.Equal(t, http.StatusConflict, failure.GetCode(err))
			assert.Equal(t, dto.ErrUnavailable, err.Error())
		})
	}
}

func TestBookingService_CreateForeignKey(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(int64(0), &pq.Error{Code: constant.PqErrorCodeFkViolation})

	_, err := f.svc.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, dto.ErrInvalidReference, err.Error())
}

func TestBookingService_GetByGuest(t *testing.T) {
	f := newFixture(t)

	detail := model.BookingDetail{Booking: model.Booking{
		ID:       3,
		GuestID:  1,
		RoomID:   2,
		CheckIn:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		Status:   model.StatusConfirmed,
	}}
	detail.RoomType.String, detail.RoomType.Valid = "Suite", true

	f.repo.EXPECT().GetDetails(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]model.BookingDetail, error) {
			require.Len(t, params.Orders, 1)
			assert.Equal(t, gDto.SortDirDesc, params.Orders[0].Dir)

			return []model.BookingDetail{detail}, nil
		})

	res, err := f.svc.GetByGuest(guestCtx("1"), 1)
	require.NoError(t, err)
	require.Len(t, res.Bookings, 1)
	assert.Equal(t, "2025-06-01", res.Bookings[0].CheckIn)
	assert.Equal(t, "Suite", *res.Bookings[0].RoomType)
	assert.Nil(t, res.Bookings[0].GuestName)
	assert.Equal(t, 1, res.TotalData)

	_, err = f.svc.GetByGuest(guestCtx("1"), 2)
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}

func TestBookingService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().CountDetails(gomock.Any(), gomock.Any()).Return(25, nil)
	f.repo.EXPECT().GetDetails(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.BookingDetail{}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalPage)
	assert.Equal(t, 25, res.TotalData)
}

func TestBookingService_UpdateStatus(t *testing.T) {
	existing := func(status string) model.Booking {
		return model.Booking{ID: 7, RoomID: 2, Status: status}
	}

	tests := []struct {
		name     string
		status   string
		setup    func(f fixture)
		wantCode int
	}{
		{
			name:     "invalid status",
			status:   "Pending",
			setup:    func(fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "not found",
			status: model.StatusCancelled,
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "same status is a no-op",
			status: model.StatusConfirmed,
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing(model.StatusConfirmed), nil)
			},
		},
		{
			name:   "cancel",
			status: model.StatusCancelled,
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing(model.StatusConfirmed), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

						return nil
					})
			},
		},
		{
			name:   "reinstate cancelled booking",
			status: model.StatusConfirmed,
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing(model.StatusCancelled), nil)
				f.repo.EXPECT().Reinstate(gomock.Any(), existing(model.StatusCancelled), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "reinstate into a taken room",
			status: model.StatusConfirmed,
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing(model.StatusCancelled), nil)
				f.repo.EXPECT().Reinstate(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.ErrRoomUnavailable)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "database failure",
			status: model.StatusCheckedOut,
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing(model.StatusConfirmed), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.svc.UpdateStatus(context.Background(), 7, dto.UpdateStatusRequest{Status: tt.status})
			if tt.wantCode == 0 {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
