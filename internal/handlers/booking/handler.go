package booking

import (
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(r chi.Router) {
		r.Post("/client", handler.CreateBooking)
		r.Get("/client/my/{guestId}", handler.GetGuestBookings)
		r.Get("/admin/all", handler.GetBookings)
		r.Put("/admin/status/{id}", handler.UpdateBookingStatus)
	})
}

// CreateBooking books a room for a guest.
// @Summary Create a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} map[string]any "message and bookingId"
// @Failure 400 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 409 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/bookings/client [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	scope.AddEvent(fmt.Sprintf("Booking %d created by %s", id, shared.GetActor(ctx)))

	response.WithCreated(w, dto.MessageCreated, "bookingId", id)
}

// GetGuestBookings lists the bookings of one guest.
// @Summary Get bookings of a guest
// @Tags Booking
// @Produce json
// @Param guestId path integer true "Guest ID"
// @Success 200 {object} dto.GetBookingsResponse
// @Failure 400 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /api/bookings/client/my/{guestId} [get]
// @Security BearerAuth
func (handler *Handler) GetGuestBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuestBookings")
	defer scope.End()

	guestID, err := shared.ParseID(chi.URLParam(r, "guestId"), "guest id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.GetByGuest(ctx, guestID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookings lists bookings for the admin view.
// @Summary Get all bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param guest_name query string false "Guest name contains"
// @Param room_type query string false "Exact room type"
// @Param status query string false "Confirmed, Cancelled or Checked-out"
// @Param date_from query string false "Check-in on or after (YYYY-MM-DD)"
// @Param date_to query string false "Check-in on or before (YYYY-MM-DD)"
// @Success 200 {object} dto.GetBookingsResponse
// @Failure 500 {object} response.Message
// @Router /api/bookings/admin/all [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, false)

	filter := gDto.BuildFilterGroup(r.URL.Query(), dto.FilterSpecs)

	bookings, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// UpdateBookingStatus changes the status of a booking.
// @Summary Update booking status
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path integer true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 409 {object} response.Message
// @Router /api/bookings/admin/status/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "booking id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateStatusRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err = handler.service.UpdateStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, fmt.Sprintf("Booking %d status updated successfully!", id))
}
