package model

import (
	"database/sql"
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID        = "staff_id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldRole      = "role"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldSalary    = "salary"
	FieldShift     = "shift"
	FieldHiredDate = "hired_date"
)

// FullNameExpr renders "first last" for name lookups.
const FullNameExpr = "CONCAT(staff.first_name, ' ', staff.last_name)"

type Staff struct {
	ID        int64           `db:"staff_id"`
	FirstName string          `db:"first_name"`
	LastName  string          `db:"last_name"`
	Role      string          `db:"role"`
	Email     string          `db:"email"`
	Phone     string          `db:"phone"`
	Salary    sql.NullFloat64 `db:"salary"`
	Shift     sql.NullString  `db:"shift"`
	HiredDate time.Time       `db:"hired_date"`
	model.Metadata
}

func (s Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}
