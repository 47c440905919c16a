package dto

import (
	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"strings"
	"time"
)

const (
	MessageCreated = "Booking created successfully!"

	ErrMissingFields    = "Missing required fields: guest_id, room_id, check_in, check_out."
	ErrInvalidIDs       = "Guest ID and Room ID must be positive numbers."
	ErrInvalidDates     = "Invalid dates: Check-out must be after check-in."
	ErrUnavailable      = "Room is not available for the selected dates."
	ErrInvalidReference = "Invalid Guest ID or Room ID provided."
	ErrNotFound         = "Booking not found."
)

var ErrInvalidStatus = "Invalid status. Must be one of: " + strings.Join(model.Statuses, ", ") + "."

var FilterSpecs = []gDto.FilterSpec{
	{Param: "guest_name", Field: model.GuestNameExpr, Operator: gDto.FilterOperatorLike},
	{Param: "room_type", Field: roomModel.FieldRoomType, Table: roomModel.TableName},
	{Param: "status", Field: model.FieldStatus, Table: model.TableName, Allowed: model.Statuses},
	{Param: "date_from", Field: model.FieldCheckIn, Table: model.TableName, Operator: gDto.FilterOperatorGreaterEq, Parser: gDto.ParseDate},
	{Param: "date_to", Field: model.FieldCheckIn, Table: model.TableName, Operator: gDto.FilterOperatorLessEq, Parser: gDto.ParseDate},
}

var Sortable = map[string]string{
	"booking_id":   model.TableName + "." + model.FieldID,
	"check_in":     model.TableName + "." + model.FieldCheckIn,
	"check_out":    model.TableName + "." + model.FieldCheckOut,
	"booking_date": model.TableName + "." + model.FieldBookingDate,
	"status":       model.TableName + "." + model.FieldStatus,
}

var DefaultSort = []gDto.Sort{
	{Column: model.TableName + "." + model.FieldCheckIn, Dir: gDto.SortDirDesc},
	{Column: model.TableName + "." + model.FieldBookingDate, Dir: gDto.SortDirDesc},
}

type CreateBookingRequest struct {
	GuestID  gDto.ID `json:"guest_id"`
	RoomID   gDto.ID `json:"room_id"`
	CheckIn  string  `json:"check_in"`
	CheckOut string  `json:"check_out"`
}

// Stay is a validated booking request.
type Stay struct {
	GuestID  int64
	RoomID   int64
	CheckIn  time.Time
	CheckOut time.Time
}

// Parse checks presence, ids and dates. Failures carry the client message.
func (c *CreateBookingRequest) Parse() (Stay, string) {
	if c.GuestID == 0 || c.RoomID == 0 || strings.TrimSpace(c.CheckIn) == "" || strings.TrimSpace(c.CheckOut) == "" {
		return Stay{}, ErrMissingFields
	}

	if c.GuestID < 0 || c.RoomID < 0 {
		return Stay{}, ErrInvalidIDs
	}

	checkIn, err := timezone.ParseDate(c.CheckIn)
	if err != nil {
		return Stay{}, ErrInvalidDates
	}

	checkOut, err := timezone.ParseDate(c.CheckOut)
	if err != nil || !checkOut.After(checkIn) {
		return Stay{}, ErrInvalidDates
	}

	return Stay{GuestID: int64(c.GuestID), RoomID: int64(c.RoomID), CheckIn: checkIn, CheckOut: checkOut}, ""
}

func (s Stay) ToModel(user string) model.Booking {
	now := timezone.Now()

	return model.Booking{
		GuestID:     s.GuestID,
		RoomID:      s.RoomID,
		BookingDate: timezone.TruncateDate(now),
		CheckIn:     s.CheckIn,
		CheckOut:    s.CheckOut,
		Status:      model.StatusConfirmed,
		Metadata:    gModel.NewMetadata(user, now),
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type StatusUpdate struct {
	Status string `db:"status"`
}

type BookingResponse struct {
	ID          int64    `json:"booking_id"`
	GuestID     int64    `json:"guest_id"`
	RoomID      int64    `json:"room_id"`
	BookingDate string   `json:"booking_date"`
	CheckIn     string   `json:"check_in"`
	CheckOut    string   `json:"check_out"`
	Status      string   `json:"status"`
	GuestName   *string  `json:"guest_name,omitempty"`
	RoomType    *string  `json:"room_type,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.GuestID = model.GuestID
	b.RoomID = model.RoomID
	b.BookingDate = timezone.FormatDate(model.BookingDate)
	b.CheckIn = timezone.FormatDate(model.CheckIn)
	b.CheckOut = timezone.FormatDate(model.CheckOut)
	b.Status = model.Status
}

func (b *BookingResponse) FromDetail(detail model.BookingDetail) {
	b.FromModel(detail.Booking)
	b.GuestName = shared.StringPtr(detail.GuestName)
	b.RoomType = shared.StringPtr(detail.RoomType)
	b.Price = shared.Float64Ptr(detail.Price)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetBookingsResponse) FromModels(models []model.BookingDetail, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		g.Bookings[i].FromDetail(mod)
	}
}
