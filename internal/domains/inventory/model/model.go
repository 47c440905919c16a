package model

import (
	"database/sql"
	"hotel/shared/model"
)

const (
	TableName  = "inventory"
	EntityName = "inventory item"

	FieldID          = "item_id"
	FieldItemName    = "item_name"
	FieldQuantity    = "quantity"
	FieldDescription = "description"
)

type Item struct {
	ID          int64          `db:"item_id"`
	ItemName    string         `db:"item_name"`
	Quantity    int            `db:"quantity"`
	Description sql.NullString `db:"description"`
	model.Metadata
}
