package booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel/infras/otel/mocks"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/handlers/booking"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	createErr  error
	lastFilter gDto.FilterGroup
	updated    map[int64]string
}

func (s *stubService) Create(_ context.Context, _ dto.CreateBookingRequest) (int64, error) {
	if s.createErr != nil {
		return 0, s.createErr
	}

	return 17, nil
}

func (s *stubService) GetByGuest(_ context.Context, guestID int64) (dto.GetBookingsResponse, error) {
	return dto.GetBookingsResponse{Bookings: []dto.BookingResponse{{ID: 1, GuestID: guestID}}, TotalPage: 1, TotalData: 1}, nil
}

func (s *stubService) GetAll(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
	s.lastFilter = filter

	return dto.GetBookingsResponse{Bookings: []dto.BookingResponse{}, TotalPage: 1}, nil
}

func (s *stubService) UpdateStatus(_ context.Context, id int64, req dto.UpdateStatusRequest) error {
	if s.updated == nil {
		s.updated = map[int64]string{}
	}

	s.updated[id] = req.Status

	return nil
}

func newRouter(svc *stubService) chi.Router {
	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return router
}

func serve(router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_CreateBooking(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		rec := serve(newRouter(&stubService{}), http.MethodPost, "/api/bookings/client",
			`{"guest_id":1,"room_id":2,"check_in":"2025-06-01","check_out":"2025-06-03"}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, dto.MessageCreated, body["message"])
		assert.EqualValues(t, 17, body["bookingId"])
	})

	t.Run("conflict", func(t *testing.T) {
		svc := &stubService{createErr: failure.Conflict(dto.ErrUnavailable)}

		rec := serve(newRouter(svc), http.MethodPost, "/api/bookings/client",
			`{"guest_id":1,"room_id":2,"check_in":"2025-06-02","check_out":"2025-06-04"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"message":"Room is not available for the selected dates."}`, rec.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := serve(newRouter(&stubService{}), http.MethodPost, "/api/bookings/client", `{"guest_id":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_GetGuestBookings(t *testing.T) {
	router := newRouter(&stubService{})

	rec := serve(router, http.MethodGet, "/api/bookings/client/my/5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"guest_id":5`)

	rec = serve(router, http.MethodGet, "/api/bookings/client/my/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetBookings(t *testing.T) {
	svc := &stubService{}

	rec := serve(newRouter(svc), http.MethodGet, "/api/bookings/admin/all?status=Cancelled&date_from=2025-01-01", "")

	require.Equal(t, http.StatusOK, rec.Code)

	where, args := svc.lastFilter.GetWhereClause()
	assert.Contains(t, where, "bookings.status = :status")
	assert.Equal(t, "Cancelled", args["status"])
}

func TestHandler_UpdateBookingStatus(t *testing.T) {
	svc := &stubService{}

	rec := serve(newRouter(svc), http.MethodPut, "/api/bookings/admin/status/9", `{"status":"Cancelled"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cancelled", svc.updated[9])

	rec = serve(newRouter(svc), http.MethodPut, "/api/bookings/admin/status/9", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
