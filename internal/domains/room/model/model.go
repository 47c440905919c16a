package model

import (
	"database/sql"
	"hotel/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "room_id"
	FieldRoomType    = "room_type"
	FieldDescription = "description"
	FieldAvailable   = "available"
	FieldPrice       = "price"
	FieldCapacity    = "capacity"
	FieldImageURL    = "image_url"
)

// ImageDirectory is the object storage prefix for room images.
const ImageDirectory = "rooms"

type Room struct {
	ID          int64          `db:"room_id"`
	RoomType    string         `db:"room_type"`
	Description sql.NullString `db:"description"`
	Available   bool           `db:"available"`
	Price       float64        `db:"price"`
	Capacity    int            `db:"capacity"`
	ImageURL    sql.NullString `db:"image_url"`
	model.Metadata
}
