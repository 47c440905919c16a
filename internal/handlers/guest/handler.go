package guest

import (
	"hotel/infras/otel"
	"hotel/internal/domains/guest/model/dto"
	"hotel/internal/domains/guest/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(r chi.Router) {
		r.Get("/admin/all", handler.GetGuests)
	})
}

// GetGuests lists registered guests.
// @Summary List guests
// @Description Guest directory for admins. Password hashes are never returned.
// @Tags Guest
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "First or last name contains"
// @Param email query string false "Email contains"
// @Param phone query string false "Phone contains"
// @Success 200 {object} dto.GetGuestsResponse
// @Failure 500 {object} response.Message
// @Router /api/guests/admin/all [get]
// @Security BearerAuth
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, false)

	filter := gDto.BuildFilterGroup(r.URL.Query(), dto.FilterSpecs)

	res, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
