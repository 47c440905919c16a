package dto

import (
	"hotel/internal/domains/room/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"mime/multipart"
	"strings"
)

const (
	MessageCreated      = "Room created successfully!"
	MessageImageUpdated = "Room image updated successfully!"

	ErrNotFound   = "Room not found."
	ErrReferenced = "Cannot delete room: It is referenced by other records (bookings, etc.). Check foreign key constraints or delete related records first."
)

// MaxImageSizeMB bounds room image uploads.
const MaxImageSizeMB = 2

var FilterSpecs = []gDto.FilterSpec{
	{Param: "room_id", Field: model.FieldID, Table: model.TableName, Parser: gDto.ParseInt},
	{Param: "room_type", Field: model.FieldRoomType, Table: model.TableName},
	{Param: "min_price", Field: model.FieldPrice, Table: model.TableName, Operator: gDto.FilterOperatorGreaterEq, Parser: gDto.ParseFloat},
	{Param: "max_price", Field: model.FieldPrice, Table: model.TableName, Operator: gDto.FilterOperatorLessEq, Parser: gDto.ParseFloat},
	{Param: "available", Field: model.FieldAvailable, Table: model.TableName, Parser: ParseAvailable},
	{Param: "capacity", Field: model.FieldCapacity, Table: model.TableName, Parser: gDto.ParseInt},
	{Param: "description", Field: model.FieldDescription, Table: model.TableName, Operator: gDto.FilterOperatorLike},
}

var Sortable = map[string]string{
	"room_id":   model.TableName + "." + model.FieldID,
	"room_type": model.TableName + "." + model.FieldRoomType,
	"price":     model.TableName + "." + model.FieldPrice,
	"capacity":  model.TableName + "." + model.FieldCapacity,
}

var DefaultSort = []gDto.Sort{
	{Column: model.TableName + "." + model.FieldID, Dir: gDto.SortDirAsc},
}

var AvailableSort = []gDto.Sort{
	{Column: model.TableName + "." + model.FieldRoomType, Dir: gDto.SortDirAsc},
	{Column: model.TableName + "." + model.FieldPrice, Dir: gDto.SortDirAsc},
}

// ParseAvailable accepts 0/1 as well as true/false; any other number counts as available.
func ParseAvailable(raw string) (any, bool) {
	if value, ok := gDto.ParseBool(raw); ok {
		return value, true
	}

	if value, ok := gDto.ParseFloat(raw); ok {
		number, _ := value.(float64)

		return number != 0, true
	}

	return nil, false
}

type CreateRoomRequest struct {
	RoomType    string   `json:"room_type"   validate:"required,notblank,max=50"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
	Available   *bool    `json:"available"   validate:"required"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Capacity    *int     `json:"capacity"    validate:"required,gt=0"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		RoomType:    strings.TrimSpace(c.RoomType),
		Description: shared.NullString(c.Description),
		Available:   *c.Available,
		Price:       *c.Price,
		Capacity:    *c.Capacity,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateRoomRequest struct {
	RoomType    *string  `db:"room_type"   json:"room_type"   validate:"omitempty,notblank,max=50"`
	Description *string  `db:"description" json:"description" validate:"omitempty,max=1000"`
	Available   *bool    `db:"available"   json:"available"`
	Price       *float64 `db:"price"       json:"price"       validate:"omitempty,gte=0"`
	Capacity    *int     `db:"capacity"    json:"capacity"    validate:"omitempty,gt=0"`
}

// Fields returns the columns to update. An empty description clears the column.
func (u *UpdateRoomRequest) Fields(user string) map[string]any {
	fields := shared.TransformFields(u, user)

	if u.Description != nil {
		fields[model.FieldDescription] = shared.NullString(u.Description)
	}

	return fields
}

type UploadRoomImageRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	ImageFile multipart.File        `json:"-"`
}

type UploadRoomImageResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"image_url"`
}

type RoomResponse struct {
	ID          int64   `json:"room_id"`
	RoomType    string  `json:"room_type"`
	Description *string `json:"description"`
	Available   bool    `json:"available"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
	ImageURL    *string `json:"image_url"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomType = model.RoomType
	r.Description = shared.StringPtr(model.Description)
	r.Available = model.Available
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.ImageURL = shared.StringPtr(model.ImageURL)
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomResponse struct {
	Room RoomResponse `json:"room"`
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
