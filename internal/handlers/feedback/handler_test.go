package feedback_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	fbMocks "hotel/internal/domains/feedback/mocks"
	"hotel/internal/domains/feedback/model"
	"hotel/internal/domains/feedback/model/dto"
	"hotel/internal/domains/feedback/service"
	guestMocks "hotel/internal/domains/guest/mocks"
	"hotel/internal/handlers/feedback"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo     *fbMocks.MockFeedback
	guests   *guestMocks.MockGuest
	bookings *bookingMocks.MockBooking
	router   chi.Router
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     fbMocks.NewMockFeedback(ctrl),
		guests:   guestMocks.NewMockGuest(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
	}

	handler := feedback.New(service.New(f.repo, f.guests, f.bookings, mocks.NewOtel()), mocks.NewOtel())

	f.router = chi.NewRouter()
	f.router.Route("/api", handler.Router)

	return f
}

func (f fixture) serve(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_CreateFeedback(t *testing.T) {
	t.Run("rating bounds", func(t *testing.T) {
		for _, rating := range []string{"0", "6"} {
			f := newFixture(t)

			rec := f.serve(http.MethodPost, "/api/feedback", `{"guest_id":1,"rating":`+rating+`,"comment":"ok"}`)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"message":"`+dto.ErrInvalidRating+`"}`, rec.Body.String())
		}
	})

	t.Run("created with a booking of the guest", func(t *testing.T) {
		f := newFixture(t)
		f.guests.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.bookings.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fb model.Feedback) (int64, error) {
			assert.Equal(t, int64(1), fb.GuestID)
			assert.Equal(t, int64(40), fb.BookingID.Int64)
			assert.Equal(t, 5, fb.Rating)

			return 3, nil
		})

		rec := f.serve(http.MethodPost, "/api/feedback", `{"guest_id":"1","booking_id":"40","rating":5,"comment":"Great stay"}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, dto.MessageCreated, body["message"])
		assert.EqualValues(t, 3, body["feedbackId"])
	})

	t.Run("booking of another guest", func(t *testing.T) {
		f := newFixture(t)
		f.guests.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.bookings.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		rec := f.serve(http.MethodPost, "/api/feedback", `{"guest_id":1,"booking_id":41,"rating":5,"comment":"Great stay"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"`+dto.ErrBookingNotFound+`"}`, rec.Body.String())
	})

	t.Run("unknown guest", func(t *testing.T) {
		f := newFixture(t)
		f.guests.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		rec := f.serve(http.MethodPost, "/api/feedback", `{"guest_id":9,"rating":4,"comment":"ok"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"`+dto.ErrGuestNotFound+`"}`, rec.Body.String())
	})
}

func TestHandler_GetAllFeedback(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().CountDetails(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetDetails(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.FeedbackDetail{
		{Feedback: model.Feedback{ID: 3, GuestID: 1, Rating: 5, Comment: "Great stay"}, GuestName: "Ana Lima"},
	}, nil)

	rec := f.serve(http.MethodGet, "/api/feedback/admin/all?min_rating=4", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.GetFeedbackResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Feedback, 1)
	assert.Equal(t, 1, body.TotalData)
}
