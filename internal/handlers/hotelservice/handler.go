package hotelservice

import (
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/hotelservice/model/dto"
	"hotel/internal/domains/hotelservice/service"
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
	service service.HotelService
	otel    otel.Otel
}

func New(service service.HotelService, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/services", func(r chi.Router) {
		r.Get("/", handler.GetServices)
		r.Post("/request", handler.CreateServiceRequest)

		r.Route("/admin", func(admin chi.Router) {
			admin.Get("/requests", handler.GetServiceRequests)
			admin.Put("/requests/{id}", handler.UpdateServiceRequestStatus)
			admin.Post("/", handler.CreateService)
			admin.Put("/{id}", handler.UpdateService)
			admin.Delete("/{id}", handler.DeleteService)
		})
	})
}

// GetServices lists the service catalog.
// @Summary Get services
// @Tags Services
// @Produce json
// @Success 200 {object} dto.GetServicesResponse
// @Failure 500 {object} response.Message
// @Router /api/services [get]
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	services, err := handler.service.GetServices(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, services)
}

// CreateService adds a catalog entry.
// @Summary Create a service
// @Tags Services
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Service"
// @Success 201 {object} map[string]any "message and serviceId"
// @Failure 400 {object} response.Message
// @Router /api/services/admin [post]
// @Security BearerAuth
func (handler *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateService")
	defer scope.End()

	req := dto.CreateServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id, err := handler.service.CreateService(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithCreated(w, dto.MessageServiceCreated, "serviceId", id)
}

// UpdateService changes the provided fields of a catalog entry.
// @Summary Update a service
// @Tags Services
// @Accept json
// @Produce json
// @Param id path integer true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Fields to change"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /api/services/admin/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateService")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "service id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateServiceRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err = handler.service.UpdateService(ctx, id, req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, fmt.Sprintf("Service %d updated successfully!", id))
}

// DeleteService removes a catalog entry that has no requests.
// @Summary Delete a service
// @Tags Services
// @Produce json
// @Param id path integer true "Service ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Message
// @Failure 409 {object} response.Message
// @Router /api/services/admin/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteService")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "service id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.DeleteService(ctx, id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, fmt.Sprintf("Service %d deleted successfully.", id))
}

// CreateServiceRequest lets a guest request a catalog service.
// @Summary Request a service
// @Tags Services
// @Accept json
// @Produce json
// @Param request body dto.CreateRequestRequest true "Guest and service"
// @Success 201 {object} map[string]any "message and requestId"
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /api/services/request [post]
// @Security BearerAuth
func (handler *Handler) CreateServiceRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateServiceRequest")
	defer scope.End()

	req := dto.CreateRequestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id, err := handler.service.CreateRequest(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithCreated(w, dto.MessageRequested, "requestId", id)
}

// GetServiceRequests lists service requests.
// @Summary Get service requests
// @Tags Services
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Pending, Completed or Cancelled"
// @Param guest_name query string false "Guest name contains"
// @Param service_name query string false "Service name contains"
// @Param date_from query string false "Request date on or after (YYYY-MM-DD)"
// @Param date_to query string false "Request date on or before (YYYY-MM-DD)"
// @Success 200 {object} dto.GetRequestsResponse
// @Failure 500 {object} response.Message
// @Router /api/services/admin/requests [get]
// @Security BearerAuth
func (handler *Handler) GetServiceRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceRequests")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, false)

	filter := gDto.BuildFilterGroup(r.URL.Query(), dto.RequestFilterSpecs)

	requests, err := handler.service.GetRequests(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, requests)
}

// UpdateServiceRequestStatus changes the status of a service request.
// @Summary Update service request status
// @Tags Services
// @Accept json
// @Produce json
// @Param id path integer true "Request ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /api/services/admin/requests/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateServiceRequestStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateServiceRequestStatus")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "request id")
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

	if err = handler.service.UpdateRequestStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, fmt.Sprintf("Service request %d status updated successfully!", id))
}
