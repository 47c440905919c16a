package complaint

import (
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/complaint/model/dto"
	"hotel/internal/domains/complaint/service"
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
	service service.Complaint
	otel    otel.Otel
}

func New(service service.Complaint, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/complaints", func(r chi.Router) {
		r.Post("/", handler.CreateComplaint)
		r.Get("/admin/all", handler.GetComplaints)
		r.Put("/admin/status/{id}", handler.UpdateComplaintStatus)
	})
}

// CreateComplaint records a guest complaint.
// @Summary Submit a complaint
// @Tags Complaints
// @Accept json
// @Produce json
// @Param request body dto.CreateComplaintRequest true "Complaint"
// @Success 201 {object} map[string]any "message and complaintId"
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /api/complaints [post]
// @Security BearerAuth
func (handler *Handler) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateComplaint")
	defer scope.End()

	req := dto.CreateComplaintRequest{}

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

	response.WithCreated(w, dto.MessageCreated, "complaintId", id)
}

// GetComplaints lists complaints.
// @Summary Get complaints
// @Tags Complaints
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param guest_name query string false "Guest name contains"
// @Param staff_name query string false "Staff name contains"
// @Param status query string false "Pending, Resolved or Unresolved"
// @Param date_from query string false "Complaint date on or after (YYYY-MM-DD)"
// @Param date_to query string false "Complaint date on or before (YYYY-MM-DD)"
// @Success 200 {object} dto.GetComplaintsResponse
// @Failure 500 {object} response.Message
// @Router /api/complaints/admin/all [get]
// @Security BearerAuth
func (handler *Handler) GetComplaints(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetComplaints")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, false)

	filter := gDto.BuildFilterGroup(r.URL.Query(), dto.FilterSpecs)

	complaints, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get complaints")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, complaints)
}

// UpdateComplaintStatus changes the status of a complaint.
// @Summary Update complaint status
// @Tags Complaints
// @Accept json
// @Produce json
// @Param id path integer true "Complaint ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /api/complaints/admin/status/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateComplaintStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateComplaintStatus")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "complaint id")
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

	response.WithMessage(w, http.StatusOK, fmt.Sprintf("Complaint %d status updated successfully!", id))
}
