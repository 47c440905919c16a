package roomservice

import (
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/roomservice/model/dto"
	"hotel/internal/domains/roomservice/service"
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
	service service.RoomService
	otel    otel.Otel
}

func New(service service.RoomService, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/roomservice", func(r chi.Router) {
		r.Post("/orders", handler.CreateOrder)
		r.Get("/admin/orders", handler.GetOrders)
		r.Put("/admin/orders/{id}", handler.UpdateOrderStatus)
	})
}

// CreateOrder places a room service order with its items.
// @Summary Place a room service order
// @Tags RoomService
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Order"
// @Success 201 {object} map[string]any "message and orderId"
// @Failure 400 {object} response.Message
// @Failure 403 {object} response.Message
// @Failure 500 {object} response.Message
// @Router /api/roomservice/orders [post]
// @Security BearerAuth
func (handler *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrder")
	defer scope.End()

	req := dto.CreateOrderRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id, err := handler.service.CreateOrder(ctx, req)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	scope.AddEvent(fmt.Sprintf("Room service order %d placed by %s", id, shared.GetActor(ctx)))

	response.WithCreated(w, dto.MessageCreated, "orderId", id)
}

// GetOrders lists room service orders with their items.
// @Summary Get all room service orders
// @Tags RoomService
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Pending, Delivered or Cancelled"
// @Param guest_name query string false "Guest name contains"
// @Param date_from query string false "Ordered on or after (YYYY-MM-DD)"
// @Param date_to query string false "Ordered on or before (YYYY-MM-DD)"
// @Success 200 {object} dto.GetOrdersResponse
// @Failure 500 {object} response.Message
// @Router /api/roomservice/admin/orders [get]
// @Security BearerAuth
func (handler *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrders")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, false)

	filter := gDto.BuildFilterGroup(r.URL.Query(), dto.FilterSpecs)

	orders, err := handler.service.GetAllOrders(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room service orders")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, orders)
}

// UpdateOrderStatus changes the status of a room service order.
// @Summary Update room service order status
// @Tags RoomService
// @Accept json
// @Produce json
// @Param id path integer true "Order ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /api/roomservice/admin/orders/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOrderStatus")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "order id")
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

	if err = handler.service.UpdateOrderStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, fmt.Sprintf("Room service order %d status updated successfully!", id))
}
