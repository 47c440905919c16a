package stats

import (
	"hotel/infras/otel"
	"hotel/internal/domains/stats/service"
	"hotel/shared/constant"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Stats
	otel    otel.Otel
}

func New(service service.Stats, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/stats/admin/dashboard", handler.GetDashboard)
}

// GetDashboard returns the admin dashboard counters.
// @Summary Get dashboard statistics
// @Tags Stats
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} response.Message
// @Router /api/stats/admin/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	stats, err := handler.service.GetDashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}
