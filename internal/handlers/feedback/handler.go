package feedback

import (
	"hotel/infras/otel"
	"hotel/internal/domains/feedback/model/dto"
	"hotel/internal/domains/feedback/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Feedback
	otel    otel.Otel
}

func New(service service.Feedback, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/feedback", func(r chi.Router) {
		r.Post("/", handler.CreateFeedback)
		r.Get("/admin/all", handler.GetAllFeedback)
	})
}

// CreateFeedback stores a guest rating and comment.
// @Summary Submit feedback
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body dto.CreateFeedbackRequest true "Feedback"
// @Success 201 {object} map[string]any "message and feedbackId"
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /api/feedback [post]
// @Security BearerAuth
func (handler *Handler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFeedback")
	defer scope.End()

	req := dto.CreateFeedbackRequest{}

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

	response.WithCreated(w, dto.MessageCreated, "feedbackId", id)
}

// GetAllFeedback lists feedback with guest and room details.
// @Summary Get all feedback
// @Tags Feedback
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param rating query integer false "Exact rating"
// @Param min_rating query integer false "Minimum rating"
// @Param guest_name query string false "Guest name contains"
// @Param date_from query string false "Feedback date on or after (YYYY-MM-DD)"
// @Param date_to query string false "Feedback date on or before (YYYY-MM-DD)"
// @Success 200 {object} dto.GetFeedbackResponse
// @Failure 500 {object} response.Message
// @Router /api/feedback/admin/all [get]
// @Security BearerAuth
func (handler *Handler) GetAllFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllFeedback")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, false)

	filter := gDto.BuildFilterGroup(r.URL.Query(), dto.FilterSpecs)

	feedback, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get feedback")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, feedback)
}
