package model

import "hotel/shared/model"

const (
	TableName  = "admin"
	EntityName = "admin"

	FieldID       = "admin_id"
	FieldUsername = "username"
	FieldPassword = "password"
)

type Admin struct {
	ID       int64  `db:"admin_id"`
	Username string `db:"username"`
	Password string `db:"password"`
	model.Metadata
}
