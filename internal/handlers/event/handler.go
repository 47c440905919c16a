package event

import (
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/event/model/dto"
	"hotel/internal/domains/event/service"
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
	service service.Event
	otel    otel.Otel
}

func New(service service.Event, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/events/admin", func(r chi.Router) {
		r.Get("/all", handler.GetEvents)
		r.Post("/", handler.CreateEvent)
		r.Get("/{id}", handler.GetEvent)
		r.Put("/{id}", handler.UpdateEvent)
		r.Delete("/{id}", handler.DeleteEvent)
	})
}

// CreateEvent books an event.
// @Summary Create an event booking
// @Tags Events
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event"
// @Success 201 {object} map[string]any "message and eventId"
// @Failure 400 {object} response.Message
// @Router /api/events/admin [post]
// @Security BearerAuth
func (handler *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEvent")
	defer scope.End()

	req := dto.CreateEventRequest{}

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

	response.WithCreated(w, dto.MessageCreated, "eventId", id)
}

// GetEvents lists event bookings.
// @Summary Get event bookings
// @Tags Events
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param event_type query string false "Event type"
// @Param date_from query string false "Event date on or after (YYYY-MM-DD)"
// @Param date_to query string false "Event date on or before (YYYY-MM-DD)"
// @Success 200 {object} dto.GetEventsResponse
// @Failure 500 {object} response.Message
// @Router /api/events/admin/all [get]
// @Security BearerAuth
func (handler *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvents")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, false)

	filter := gDto.BuildFilterGroup(r.URL.Query(), dto.FilterSpecs)

	events, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, events)
}

// GetEvent returns one event booking.
// @Summary Get an event booking
// @Tags Events
// @Produce json
// @Param id path integer true "Event ID"
// @Success 200 {object} dto.GetEventResponse
// @Failure 404 {object} response.Message
// @Router /api/events/admin/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvent")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "event id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	event, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, event)
}

// UpdateEvent changes the provided fields of an event booking.
// @Summary Update an event booking
// @Tags Events
// @Accept json
// @Produce json
// @Param id path integer true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to change"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /api/events/admin/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEvent")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "event id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateEventRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err = handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, fmt.Sprintf("Event booking %d updated successfully!", id))
}

// DeleteEvent removes an event booking.
// @Summary Delete an event booking
// @Tags Events
// @Produce json
// @Param id path integer true "Event ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /api/events/admin/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEvent")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "event id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, fmt.Sprintf("Event booking %d deleted successfully.", id))
}
