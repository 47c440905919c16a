package dto

import (
	"hotel/internal/domains/housekeeping/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"strings"
)

const (
	MessageCreated = "Housekeeping task created!"

	ErrNotFound         = "Task not found."
	ErrStaffNotFound    = "Staff not found."
	ErrRoomNotFound     = "Room not found."
	ErrInvalidReference = "Invalid Staff/Room ID."
)

var FilterSpecs = []gDto.FilterSpec{
	{Param: "room_id", Field: model.FieldRoomID, Table: model.TableName, Parser: gDto.ParseInt},
	{Param: "staff_name", Field: model.StaffNameExpr, Operator: gDto.FilterOperatorLike},
	{Param: "status", Field: model.FieldStatus, Table: model.TableName, Allowed: model.Statuses},
	{Param: "date_from", Field: model.FieldTaskDate, Table: model.TableName, Operator: gDto.FilterOperatorGreaterEq, Parser: gDto.ParseDate},
	{Param: "date_to", Field: model.FieldTaskDate, Table: model.TableName, Operator: gDto.FilterOperatorLessEq, Parser: gDto.ParseDate},
}

var Sortable = map[string]string{
	"task_id":   model.TableName + "." + model.FieldID,
	"task_date": model.TableName + "." + model.FieldTaskDate,
	"status":    model.TableName + "." + model.FieldStatus,
	"room_id":   model.TableName + "." + model.FieldRoomID,
}

var DefaultSort = []gDto.Sort{
	{Column: model.TableName + "." + model.FieldTaskDate, Dir: gDto.SortDirDesc},
	{Column: model.TableName + "." + model.FieldStatus, Dir: gDto.SortDirAsc},
}

type CreateTaskRequest struct {
	StaffID         int64   `json:"staff_id"         validate:"required,gt=0"`
	RoomID          int64   `json:"room_id"          validate:"required,gt=0"`
	TaskDescription string  `json:"task_description" validate:"required,notblank"`
	Status          *string `json:"status"           validate:"omitempty,oneof=Pending Done"`
	TaskDate        *string `json:"task_date"        validate:"omitempty,dateonly"`
}

// ToModel defaults the status to Pending and the date to today.
func (c *CreateTaskRequest) ToModel(user string) model.Task {
	now := timezone.Now()

	status := model.StatusPending
	if c.Status != nil && *c.Status != "" {
		status = *c.Status
	}

	taskDate := timezone.TruncateDate(now)
	if c.TaskDate != nil {
		if parsed, err := timezone.ParseDate(*c.TaskDate); err == nil {
			taskDate = parsed
		}
	}

	return model.Task{
		StaffID:         c.StaffID,
		RoomID:          c.RoomID,
		TaskDescription: strings.TrimSpace(c.TaskDescription),
		TaskDate:        taskDate,
		Status:          status,
		Metadata:        gModel.NewMetadata(user, now),
	}
}

type UpdateTaskRequest struct {
	Status          *string `db:"status"           json:"status"           validate:"omitempty,oneof=Pending Done"`
	StaffID         *int64  `db:"staff_id"         json:"staff_id"         validate:"omitempty,gt=0"`
	RoomID          *int64  `db:"room_id"          json:"room_id"          validate:"omitempty,gt=0"`
	TaskDescription *string `db:"task_description" json:"task_description" validate:"omitempty,notblank"`
	TaskDate        *string `db:"task_date"        json:"task_date"        validate:"omitempty,dateonly"`
}

func (u *UpdateTaskRequest) Fields(user string) map[string]any {
	fields := shared.TransformFields(u, user)

	if u.TaskDate != nil {
		if parsed, err := timezone.ParseDate(*u.TaskDate); err == nil {
			fields[model.FieldTaskDate] = parsed
		}
	}

	return fields
}

type TaskResponse struct {
	ID              int64   `json:"task_id"`
	TaskDate        string  `json:"task_date"`
	Status          string  `json:"status"`
	TaskDescription string  `json:"task_description"`
	RoomID          int64   `json:"room_id"`
	RoomType        *string `json:"room_type"`
	StaffID         int64   `json:"staff_id"`
	StaffName       *string `json:"staff_name"`
}

func (t *TaskResponse) FromModel(detail model.TaskDetail) {
	t.ID = detail.ID
	t.TaskDate = timezone.FormatDate(detail.TaskDate)
	t.Status = detail.Status
	t.TaskDescription = detail.TaskDescription
	t.RoomID = detail.RoomID
	t.RoomType = shared.StringPtr(detail.RoomType)
	t.StaffID = detail.StaffID
	t.StaffName = shared.StringPtr(detail.StaffName)
}

type GetTasksResponse struct {
	Tasks     []TaskResponse `json:"housekeepingTasks"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (g *GetTasksResponse) FromModels(models []model.TaskDetail, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Tasks = make([]TaskResponse, len(models))
	for i, mod := range models {
		g.Tasks[i].FromModel(mod)
	}
}
