package model

import (
	"database/sql"
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "housekeeping"
	EntityName = "housekeeping task"

	FieldID              = "task_id"
	FieldStaffID         = "staff_id"
	FieldRoomID          = "room_id"
	FieldTaskDescription = "task_description"
	FieldTaskDate        = "task_date"
	FieldStatus          = "status"
)

const (
	StatusPending = "Pending"
	StatusDone    = "Done"
)

var Statuses = []string{StatusPending, StatusDone}

const StaffNameExpr = "NULLIF(TRIM(CONCAT(staff.first_name, ' ', staff.last_name)), '')"

type Task struct {
	ID              int64     `db:"task_id"`
	StaffID         int64     `db:"staff_id"`
	RoomID          int64     `db:"room_id"`
	TaskDescription string    `db:"task_description"`
	TaskDate        time.Time `db:"task_date"`
	Status          string    `db:"status"`
	model.Metadata
}

// TaskDetail is a task with the display fields of its room and assignee.
type TaskDetail struct {
	Task
	RoomType  sql.NullString `db:"room_type"  table:"rooms"`
	StaffName sql.NullString `db:"staff_name" expr:"NULLIF(TRIM(CONCAT(staff.first_name, ' ', staff.last_name)), '')"`
}

func (TaskDetail) GetJoinQuery() string {
	return "LEFT JOIN rooms ON rooms.room_id = housekeeping.room_id LEFT JOIN staff ON staff.staff_id = housekeeping.staff_id"
}
