package model

import (
	"database/sql"
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "complaints"
	EntityName = "complaint"

	FieldID            = "complaint_id"
	FieldGuestID       = "guest_id"
	FieldStaffID       = "staff_id"
	FieldComplaintText = "complaint_text"
	FieldComplaintDate = "complaint_date"
	FieldStatus        = "status"
)

const (
	StatusPending    = "Pending"
	StatusResolved   = "Resolved"
	StatusUnresolved = "Unresolved"
)

var Statuses = []string{StatusPending, StatusResolved, StatusUnresolved}

const (
	GuestNameExpr = "CONCAT(guests.first_name, ' ', guests.last_name)"
	StaffNameExpr = "CONCAT(staff.first_name, ' ', staff.last_name)"
)

type Complaint struct {
	ID            int64         `db:"complaint_id"`
	GuestID       int64         `db:"guest_id"`
	StaffID       sql.NullInt64 `db:"staff_id"`
	ComplaintText string        `db:"complaint_text"`
	ComplaintDate time.Time     `db:"complaint_date"`
	Status        string        `db:"status"`
	model.Metadata
}

type ComplaintDetail struct {
	Complaint
	GuestName sql.NullString `db:"guest_name" expr:"NULLIF(TRIM(CONCAT(guests.first_name, ' ', guests.last_name)), '')"`
	StaffName sql.NullString `db:"staff_name" expr:"NULLIF(TRIM(CONCAT(staff.first_name, ' ', staff.last_name)), '')"`
}

func (ComplaintDetail) GetJoinQuery() string {
	return "LEFT JOIN guests ON guests.guest_id = complaints.guest_id LEFT JOIN staff ON staff.staff_id = complaints.staff_id"
}
