package model

import (
	"database/sql"
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "booking_id"
	FieldGuestID     = "guest_id"
	FieldRoomID      = "room_id"
	FieldBookingDate = "booking_date"
	FieldCheckIn     = "check_in"
	FieldCheckOut    = "check_out"
	FieldStatus      = "status"
	FieldGuestName   = "guest_name"
	FieldRoomType    = "room_type"
	FieldPrice       = "price"
)

const (
	StatusConfirmed  = "Confirmed"
	StatusCancelled  = "Cancelled"
	StatusCheckedOut = "Checked-out"
)

var Statuses = []string{StatusConfirmed, StatusCancelled, StatusCheckedOut}

// GuestNameExpr renders "first last" of the joined guest, NULL when the guest is gone.
const GuestNameExpr = "NULLIF(TRIM(CONCAT(guests.first_name, ' ', guests.last_name)), '')"

type Booking struct {
	ID          int64     `db:"booking_id"`
	GuestID     int64     `db:"guest_id"`
	RoomID      int64     `db:"room_id"`
	BookingDate time.Time `db:"booking_date"`
	CheckIn     time.Time `db:"check_in"`
	CheckOut    time.Time `db:"check_out"`
	Status      string    `db:"status"`
	model.Metadata
}

// BookingDetail is a booking with the display fields of its guest and room.
type BookingDetail struct {
	Booking
	GuestName sql.NullString  `db:"guest_name" expr:"NULLIF(TRIM(CONCAT(guests.first_name, ' ', guests.last_name)), '')"`
	RoomType  sql.NullString  `db:"room_type"  table:"rooms"`
	Price     sql.NullFloat64 `db:"price"      table:"rooms"`
}

func (BookingDetail) GetJoinQuery() string {
	return "LEFT JOIN guests ON guests.guest_id = bookings.guest_id LEFT JOIN rooms ON rooms.room_id = bookings.room_id"
}
