package dto

import (
	"hotel/internal/domains/roomservice/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"strings"
)

const (
	MessageCreated = "Room service order placed successfully!"

	ErrMissingFields    = "Missing required fields: guest_id, room_id, total_amount, and a non-empty items array."
	ErrInvalidNumbers   = "Guest ID, Room ID must be numbers, total_amount must be non-negative."
	ErrInvalidItem      = "Each item in the order must have a valid itemName (string), quantity (positive number), and price (non-negative number)."
	ErrInvalidReference = "Invalid Guest ID or Room ID provided for the order."
	ErrNotFound         = "Order not found."
)

var ErrInvalidStatus = "Invalid status. Must be one of: " + strings.Join(model.Statuses, ", ") + "."

var FilterSpecs = []gDto.FilterSpec{
	{Param: "status", Field: model.FieldStatus, Table: model.TableName, Allowed: model.Statuses},
	{Param: "guest_name", Field: model.GuestNameExpr, Operator: gDto.FilterOperatorLike},
	{Param: "date_from", Field: model.FieldOrderDate, Table: model.TableName, Operator: gDto.FilterOperatorGreaterEq, Parser: gDto.ParseDate},
	{Param: "date_to", Field: model.FieldOrderDate, Table: model.TableName, Operator: gDto.FilterOperatorLessEq, Parser: gDto.ParseDate},
}

var Sortable = map[string]string{
	"order_id":     model.TableName + "." + model.FieldID,
	"order_date":   model.TableName + "." + model.FieldOrderDate,
	"total_amount": model.TableName + "." + model.FieldTotalAmount,
	"order_status": model.TableName + "." + model.FieldStatus,
}

var DefaultSort = []gDto.Sort{
	{Column: model.TableName + "." + model.FieldOrderDate, Dir: gDto.SortDirDesc},
	{Column: model.TableName + "." + model.FieldID, Dir: gDto.SortDirDesc},
}

type OrderItemRequest struct {
	ItemName string   `json:"itemName"`
	Quantity int      `json:"quantity"`
	Price    *float64 `json:"price"`
}

type CreateOrderRequest struct {
	GuestID     gDto.ID            `json:"guest_id"`
	RoomID      *gDto.ID           `json:"room_id"`
	TotalAmount *float64           `json:"total_amount"`
	Items       []OrderItemRequest `json:"items"`
}

// Validate returns the client message of the first violated rule, or an empty string.
func (c *CreateOrderRequest) Validate() string {
	if c.GuestID == 0 || c.RoomID == nil || c.TotalAmount == nil || len(c.Items) == 0 {
		return ErrMissingFields
	}

	if c.GuestID < 0 || *c.RoomID <= 0 || *c.TotalAmount < 0 {
		return ErrInvalidNumbers
	}

	for _, item := range c.Items {
		if strings.TrimSpace(item.ItemName) == "" || item.Quantity <= 0 || item.Price == nil || *item.Price < 0 {
			return ErrInvalidItem
		}
	}

	return ""
}

func (c *CreateOrderRequest) ToModel(user string) (model.Order, []model.OrderItem) {
	now := timezone.Now()
	metadata := gModel.NewMetadata(user, now)

	order := model.Order{
		GuestID:     int64(c.GuestID),
		RoomID:      int64(*c.RoomID),
		OrderDate:   timezone.TruncateDate(now),
		TotalAmount: *c.TotalAmount,
		Status:      model.StatusPending,
		Metadata:    metadata,
	}

	items := make([]model.OrderItem, len(c.Items))
	for i, item := range c.Items {
		items[i] = model.OrderItem{
			ItemName:     strings.TrimSpace(item.ItemName),
			Quantity:     item.Quantity,
			PricePerItem: *item.Price,
			Metadata:     metadata,
		}
	}

	return order, items
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type StatusUpdate struct {
	Status string `db:"order_status"`
}

type OrderItemResponse struct {
	ItemName     string  `json:"item_name"`
	Quantity     int     `json:"quantity"`
	PricePerItem float64 `json:"price_per_item"`
}

type OrderResponse struct {
	ID          int64               `json:"order_id"`
	OrderDate   string              `json:"order_date"`
	TotalAmount float64             `json:"total_amount"`
	Status      string              `json:"order_status"`
	GuestID     int64               `json:"guest_id"`
	GuestName   *string             `json:"guest_name"`
	RoomID      int64               `json:"room_id"`
	RoomType    *string             `json:"room_type"`
	Items       []OrderItemResponse `json:"items"`
}

func (o *OrderResponse) FromModel(order model.Order, items []model.OrderItem) {
	o.ID = order.ID
	o.OrderDate = timezone.FormatDate(order.OrderDate)
	o.TotalAmount = order.TotalAmount
	o.Status = order.Status
	o.GuestID = order.GuestID
	o.RoomID = order.RoomID

	o.Items = make([]OrderItemResponse, len(items))
	for i, item := range items {
		o.Items[i] = OrderItemResponse{
			ItemName:     item.ItemName,
			Quantity:     item.Quantity,
			PricePerItem: item.PricePerItem,
		}
	}
}

type GetOrdersResponse struct {
	Orders    []OrderResponse `json:"roomServiceOrders"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

// FromModels attaches to every header the items that reference it.
func (g *GetOrdersResponse) FromModels(orders []model.OrderDetail, items []model.OrderItem, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	byOrder := make(map[int64][]model.OrderItem, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}

	g.Orders = make([]OrderResponse, len(orders))
	for i, order := range orders {
		g.Orders[i].FromModel(order.Order, byOrder[order.ID])
		g.Orders[i].GuestName = shared.StringPtr(order.GuestName)
		g.Orders[i].RoomType = shared.StringPtr(order.RoomType)
	}
}
