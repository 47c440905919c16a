package model

import "hotel/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID        = "guest_id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldPassword  = "password"
)

// PublicColumns is every column except the password hash.
var PublicColumns = []string{
	FieldID, FieldFirstName, FieldLastName, FieldEmail, FieldPhone,
	"created_at", "created_by", "modified_at", "modified_by",
}

type Guest struct {
	ID        int64  `db:"guest_id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	Password  string `db:"password"`
	model.Metadata
}
