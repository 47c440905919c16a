package model

import (
	"database/sql"
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "roomserviceorders"
	EntityName = "room service order"

	FieldID          = "order_id"
	FieldGuestID     = "guest_id"
	FieldRoomID      = "room_id"
	FieldOrderDate   = "order_date"
	FieldTotalAmount = "total_amount"
	FieldStatus      = "order_status"
)

const (
	ItemTableName  = "order_items"
	ItemEntityName = "order item"

	FieldItemID = "order_item_id"
)

const (
	StatusPending   = "Pending"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

var Statuses = []string{StatusPending, StatusDelivered, StatusCancelled}

const GuestNameExpr = "NULLIF(TRIM(CONCAT(guests.first_name, ' ', guests.last_name)), '')"

type Order struct {
	ID          int64     `db:"order_id"`
	GuestID     int64     `db:"guest_id"`
	RoomID      int64     `db:"room_id"`
	OrderDate   time.Time `db:"order_date"`
	TotalAmount float64   `db:"total_amount"`
	Status      string    `db:"order_status"`
	model.Metadata
}

// OrderDetail is an order header with the display fields of its guest and room.
type OrderDetail struct {
	Order
	GuestName sql.NullString `db:"guest_name" expr:"NULLIF(TRIM(CONCAT(guests.first_name, ' ', guests.last_name)), '')"`
	RoomType  sql.NullString `db:"room_type"  table:"rooms"`
}

func (OrderDetail) GetJoinQuery() string {
	return "LEFT JOIN guests ON guests.guest_id = roomserviceorders.guest_id LEFT JOIN rooms ON rooms.room_id = roomserviceorders.room_id"
}

type OrderItem struct {
	ID           int64   `db:"order_item_id"`
	OrderID      int64   `db:"order_id"`
	ItemName     string  `db:"item_name"`
	Quantity     int     `db:"quantity"`
	PricePerItem float64 `db:"price_per_item"`
	model.Metadata
}
