package housekeeping

import (
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/housekeeping/model/dto"
	"hotel/internal/domains/housekeeping/service"
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
	service service.Housekeeping
	otel    otel.Otel
}

func New(service service.Housekeeping, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/housekeeping/admin/tasks", func(r chi.Router) {
		r.Get("/", handler.GetTasks)
		r.Post("/", handler.CreateTask)
		r.Put("/{id}", handler.UpdateTask)
		r.Delete("/{id}", handler.DeleteTask)
	})
}

// CreateTask assigns a housekeeping task.
// @Summary Create a housekeeping task
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task"
// @Success 201 {object} map[string]any "message and taskId"
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /api/housekeeping/admin/tasks [post]
// @Security BearerAuth
func (handler *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTask")
	defer scope.End()

	req := dto.CreateTaskRequest{}

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

	response.WithCreated(w, dto.MessageCreated, "taskId", id)
}

// GetTasks lists housekeeping tasks.
// @Summary Get housekeeping tasks
// @Tags Housekeeping
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query integer false "Room id"
// @Param staff_name query string false "Assignee name contains"
// @Param status query string false "Pending or Done"
// @Param date_from query string false "Task date on or after (YYYY-MM-DD)"
// @Param date_to query string false "Task date on or before (YYYY-MM-DD)"
// @Success 200 {object} dto.GetTasksResponse
// @Failure 500 {object} response.Message
// @Router /api/housekeeping/admin/tasks [get]
// @Security BearerAuth
func (handler *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTasks")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, false)

	filter := gDto.BuildFilterGroup(r.URL.Query(), dto.FilterSpecs)

	tasks, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get housekeeping tasks")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, tasks)
}

// UpdateTask changes the provided fields of a task.
// @Summary Update a housekeeping task
// @Tags Housekeeping
// @Accept json
// @Produce json
// @Param id path integer true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /api/housekeeping/admin/tasks/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTask")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "task id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateTaskRequest{}

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

	response.WithMessage(w, http.StatusOK, fmt.Sprintf("Housekeeping task %d updated!", id))
}

// DeleteTask removes a housekeeping task.
// @Summary Delete a housekeeping task
// @Tags Housekeeping
// @Produce json
// @Param id path integer true "Task ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /api/housekeeping/admin/tasks/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTask")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "task id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, fmt.Sprintf("Housekeeping task %d deleted.", id))
}
