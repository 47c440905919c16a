package model

import (
	"database/sql"
	"hotel/shared/model"
	"time"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID          = "service_id"
	FieldServiceName = "service_name"
	FieldDescription = "description"
	FieldPrice       = "price"
)

const (
	RequestTableName  = "servicerequests"
	RequestEntityName = "service request"

	FieldRequestID   = "request_id"
	FieldGuestID     = "guest_id"
	FieldServiceID   = "service_id"
	FieldRequestDate = "request_date"
	FieldStatus      = "status"
)

const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

var Statuses = []string{StatusPending, StatusCompleted, StatusCancelled}

const GuestNameExpr = "CONCAT(guests.first_name, ' ', guests.last_name)"

// Service is an entry of the bookable extras catalog.
type Service struct {
	ID          int64          `db:"service_id"`
	ServiceName string         `db:"service_name"`
	Description sql.NullString `db:"description"`
	Price       float64        `db:"price"`
	model.Metadata
}

type Request struct {
	ID          int64     `db:"request_id"`
	GuestID     int64     `db:"guest_id"`
	ServiceID   int64     `db:"service_id"`
	RequestDate time.Time `db:"request_date"`
	Status      string    `db:"status"`
	model.Metadata
}

type RequestDetail struct {
	Request
	GuestName   string `db:"guest_name"   expr:"CONCAT(guests.first_name, ' ', guests.last_name)"`
	ServiceName string `db:"service_name" table:"services"`
}

func (RequestDetail) GetJoinQuery() string {
	return "JOIN guests ON guests.guest_id = servicerequests.guest_id JOIN services ON services.service_id = servicerequests.service_id"
}
