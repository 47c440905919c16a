package inventory

import (
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/inventory/model/dto"
	"hotel/internal/domains/inventory/service"
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
	service service.Inventory
	otel    otel.Otel
}

func New(service service.Inventory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inventory/admin", func(r chi.Router) {
		r.Get("/all", handler.GetItems)
		r.Post("/", handler.CreateItem)
		r.Get("/{id}", handler.GetItemByID)
		r.Put("/{id}", handler.UpdateItem)
		r.Delete("/{id}", handler.DeleteItem)
	})
}

// CreateItem adds an inventory item.
// @Summary Create an inventory item
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.CreateItemRequest true "Item"
// @Success 201 {object} map[string]any "message and itemId"
// @Failure 400 {object} response.Message
// @Router /api/inventory/admin [post]
// @Security BearerAuth
func (handler *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	req := dto.CreateItemRequest{}

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

	response.WithCreated(w, dto.MessageCreated, "itemId", id)
}

// GetItems lists inventory items.
// @Summary Get inventory
// @Tags Inventory
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param item_name query string false "Item name contains"
// @Param min_quantity query integer false "Minimum quantity"
// @Param max_quantity query integer false "Maximum quantity"
// @Success 200 {object} dto.GetItemsResponse
// @Failure 500 {object} response.Message
// @Router /api/inventory/admin/all [get]
// @Security BearerAuth
func (handler *Handler) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, false)

	filter := gDto.BuildFilterGroup(r.URL.Query(), dto.FilterSpecs)

	items, err := handler.service.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inventory")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// GetItemByID returns one inventory item.
// @Summary Get an inventory item
// @Tags Inventory
// @Produce json
// @Param id path integer true "Item ID"
// @Success 200 {object} dto.GetItemResponse
// @Failure 404 {object} response.Message
// @Router /api/inventory/admin/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "item id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	item, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.GetItemResponse{Item: item})
}

// UpdateItem changes the provided fields of an inventory item.
// @Summary Update an inventory item
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path integer true "Item ID"
// @Param request body dto.UpdateItemRequest true "Fields to change"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /api/inventory/admin/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "item id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateItemRequest{}

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

	response.WithMessage(w, http.StatusOK, fmt.Sprintf("Inventory item %d updated successfully!", id))
}

// DeleteItem removes an inventory item.
// @Summary Delete an inventory item
// @Tags Inventory
// @Produce json
// @Param id path integer true "Item ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Message
// @Router /api/inventory/admin/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID), "item id")
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, fmt.Sprintf("Inventory item %d deleted successfully.", id))
}
