package model

import (
	"database/sql"
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "eventbookings"
	EntityName = "event booking"

	FieldID        = "event_id"
	FieldEventType = "event_type"
	FieldEventDate = "event_date"
	FieldDetails   = "details"
	FieldGuestID   = "guest_id"
	FieldStaffID   = "staff_id"
)

type Event struct {
	ID        int64          `db:"event_id"`
	EventType string         `db:"event_type"`
	EventDate time.Time      `db:"event_date"`
	Details   sql.NullString `db:"details"`
	GuestID   sql.NullInt64  `db:"guest_id"`
	StaffID   sql.NullInt64  `db:"staff_id"`
	model.Metadata
}

// EventDetail is an event with the names of its guest and organising staff member.
type EventDetail struct {
	Event
	GuestName sql.NullString `db:"guest_name" expr:"NULLIF(TRIM(CONCAT(guests.first_name, ' ', guests.last_name)), '')"`
	StaffName sql.NullString `db:"staff_name" expr:"NULLIF(TRIM(CONCAT(staff.first_name, ' ', staff.last_name)), '')"`
}

func (EventDetail) GetJoinQuery() string {
	return "LEFT JOIN guests ON guests.guest_id = eventbookings.guest_id LEFT JOIN staff ON staff.staff_id = eventbookings.staff_id"
}
