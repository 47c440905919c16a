package model

import (
	"database/sql"
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "feedback"
	EntityName = "feedback"

	FieldID           = "feedback_id"
	FieldGuestID      = "guest_id"
	FieldBookingID    = "booking_id"
	FieldRating       = "rating"
	FieldComment      = "comment"
	FieldFeedbackDate = "feedback_date"
)

const (
	MinRating = 1
	MaxRating = 5
)

const GuestNameExpr = "CONCAT(guests.first_name, ' ', guests.last_name)"

type Feedback struct {
	ID           int64         `db:"feedback_id"`
	GuestID      int64         `db:"guest_id"`
	BookingID    sql.NullInt64 `db:"booking_id"`
	Rating       int           `db:"rating"`
	Comment      string        `db:"comment"`
	FeedbackDate time.Time     `db:"feedback_date"`
	model.Metadata
}

// FeedbackDetail carries the guest name and, when linked to a booking, the booked room type.
type FeedbackDetail struct {
	Feedback
	GuestName string         `db:"guest_name" expr:"CONCAT(guests.first_name, ' ', guests.last_name)"`
	RoomType  sql.NullString `db:"room_type"  table:"rooms"`
}

func (FeedbackDetail) GetJoinQuery() string {
	return "JOIN guests ON guests.guest_id = feedback.guest_id " +
		"LEFT JOIN bookings ON bookings.booking_id = feedback.booking_id " +
		"LEFT JOIN rooms ON rooms.room_id = bookings.room_id"
}
