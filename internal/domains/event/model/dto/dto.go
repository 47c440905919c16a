package dto

import (
	"hotel/internal/domains/event/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"strings"
)

const (
	MessageCreated = "Event created successfully!"

	ErrNotFound         = "Event booking not found."
	ErrInvalidReference = "Invalid Guest ID or Staff ID provided for the event."
)

var FilterSpecs = []gDto.FilterSpec{
	{Param: "event_type", Field: model.FieldEventType, Table: model.TableName},
	{Param: "date_from", Field: model.FieldEventDate, Table: model.TableName, Operator: gDto.FilterOperatorGreaterEq, Parser: gDto.ParseDate},
	{Param: "date_to", Field: model.FieldEventDate, Table: model.TableName, Operator: gDto.FilterOperatorLessEq, Parser: gDto.ParseDate},
}

var Sortable = map[string]string{
	"event_id":   model.TableName + "." + model.FieldID,
	"event_type": model.TableName + "." + model.FieldEventType,
	"event_date": model.TableName + "." + model.FieldEventDate,
}

var DefaultSort = []gDto.Sort{
	{Column: model.TableName + "." + model.FieldEventDate, Dir: gDto.SortDirDesc},
	{Column: model.TableName + "." + model.FieldID, Dir: gDto.SortDirDesc},
}

type CreateEventRequest struct {
	EventType string  `json:"event_type" validate:"required,notblank,max=100"`
	EventDate string  `json:"event_date" validate:"required,dateonly"`
	Details   *string `json:"details"`
	GuestID   *int64  `json:"guest_id"   validate:"omitempty,gt=0"`
	StaffID   *int64  `json:"staff_id"   validate:"omitempty,gt=0"`
}

func (c *CreateEventRequest) ToModel(user string) model.Event {
	eventDate, _ := timezone.ParseDate(c.EventDate)

	return model.Event{
		EventType: strings.TrimSpace(c.EventType),
		EventDate: eventDate,
		Details:   shared.NullString(c.Details),
		GuestID:   shared.NullInt64(c.GuestID),
		StaffID:   shared.NullInt64(c.StaffID),
		Metadata:  gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateEventRequest struct {
	EventType *string `db:"event_type" json:"event_type" validate:"omitempty,notblank,max=100"`
	EventDate *string `db:"event_date" json:"event_date" validate:"omitempty,dateonly"`
	Details   *string `db:"details"    json:"details"`
	GuestID   *int64  `db:"guest_id"   json:"guest_id"   validate:"omitempty,gt=0"`
	StaffID   *int64  `db:"staff_id"   json:"staff_id"   validate:"omitempty,gt=0"`
}

// Fields returns the columns to update. Empty details clear the column.
func (u *UpdateEventRequest) Fields(user string) map[string]any {
	fields := shared.TransformFields(u, user)

	if u.EventDate != nil {
		if parsed, err := timezone.ParseDate(*u.EventDate); err == nil {
			fields[model.FieldEventDate] = parsed
		}
	}

	if u.Details != nil {
		fields[model.FieldDetails] = shared.NullString(u.Details)
	}

	return fields
}

type EventResponse struct {
	ID        int64   `json:"event_id"`
	EventType string  `json:"event_type"`
	EventDate string  `json:"event_date"`
	Details   *string `json:"details"`
	GuestID   *int64  `json:"guest_id"`
	GuestName *string `json:"guest_name"`
	StaffID   *int64  `json:"staff_id"`
	StaffName *string `json:"staff_name"`
}

func (e *EventResponse) FromModel(detail model.EventDetail) {
	e.ID = detail.ID
	e.EventType = detail.EventType
	e.EventDate = timezone.FormatDate(detail.EventDate)
	e.Details = shared.StringPtr(detail.Details)
	e.GuestID = shared.Int64Ptr(detail.GuestID)
	e.GuestName = shared.StringPtr(detail.GuestName)
	e.StaffID = shared.Int64Ptr(detail.StaffID)
	e.StaffName = shared.StringPtr(detail.StaffName)
}

type GetEventResponse struct {
	Event EventResponse `json:"event"`
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (g *GetEventsResponse) FromModels(models []model.EventDetail, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		g.Events[i].FromModel(mod)
	}
}
