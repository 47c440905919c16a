package dto

import (
	"hotel/internal/domains/hotelservice/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"strings"
)

const (
	MessageServiceCreated = "Service created successfully!"
	MessageRequested      = "Service requested successfully!"

	ErrServiceNotFound   = "Service not found."
	ErrServiceReferenced = "Cannot delete service: it has existing service requests."
	ErrInvalidIDs        = "Valid guest_id and service_id are required."
	ErrGuestNotFound     = "Guest not found."
	ErrInvalidReference  = "Invalid Guest ID or Service ID provided (database constraint)."
	ErrRequestNotFound   = "Service request not found."
)

var ErrInvalidStatus = "Invalid status. Must be one of: " + strings.Join(model.Statuses, ", ") + "."

var CatalogSort = []gDto.Sort{
	{Column: model.TableName + "." + model.FieldServiceName, Dir: gDto.SortDirAsc},
}

var RequestFilterSpecs = []gDto.FilterSpec{
	{Param: "status", Field: model.FieldStatus, Table: model.RequestTableName, Allowed: model.Statuses},
	{Param: "guest_name", Field: model.GuestNameExpr, Operator: gDto.FilterOperatorLike},
	{Param: "service_name", Field: model.FieldServiceName, Table: model.TableName, Operator: gDto.FilterOperatorLike},
	{Param: "date_from", Field: model.FieldRequestDate, Table: model.RequestTableName, Operator: gDto.FilterOperatorGreaterEq, Parser: gDto.ParseDate},
	{Param: "date_to", Field: model.FieldRequestDate, Table: model.RequestTableName, Operator: gDto.FilterOperatorLessEq, Parser: gDto.ParseDate},
}

var RequestSortable = map[string]string{
	"request_id":   model.RequestTableName + "." + model.FieldRequestID,
	"request_date": model.RequestTableName + "." + model.FieldRequestDate,
	"status":       model.RequestTableName + "." + model.FieldStatus,
}

var RequestDefaultSort = []gDto.Sort{
	{Column: model.RequestTableName + "." + model.FieldRequestDate, Dir: gDto.SortDirDesc},
	{Column: model.RequestTableName + "." + model.FieldRequestID, Dir: gDto.SortDirDesc},
}

type CreateServiceRequest struct {
	ServiceName string   `json:"service_name" validate:"required,notblank,max=255"`
	Description *string  `json:"description"  validate:"omitempty,max=1000"`
	Price       *float64 `json:"price"        validate:"omitempty,gte=0"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	service := model.Service{
		ServiceName: strings.TrimSpace(c.ServiceName),
		Description: shared.NullString(c.Description),
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}

	if c.Price != nil {
		service.Price = *c.Price
	}

	return service
}

type UpdateServiceRequest struct {
	ServiceName *string  `db:"service_name" json:"service_name" validate:"omitempty,notblank,max=255"`
	Description *string  `db:"description"  json:"description"  validate:"omitempty,max=1000"`
	Price       *float64 `db:"price"        json:"price"        validate:"omitempty,gte=0"`
}

// Fields returns the columns to update. An empty description clears the column.
func (u *UpdateServiceRequest) Fields(user string) map[string]any {
	fields := shared.TransformFields(u, user)

	if u.Description != nil {
		fields[model.FieldDescription] = shared.NullString(u.Description)
	}

	return fields
}

type ServiceResponse struct {
	ID          int64   `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
}

func (s *ServiceResponse) FromModel(service model.Service) {
	s.ID = service.ID
	s.ServiceName = service.ServiceName
	s.Description = shared.StringPtr(service.Description)
	s.Price = service.Price
}

type GetServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

func (g *GetServicesResponse) FromModels(models []model.Service) {
	g.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		g.Services[i].FromModel(mod)
	}
}

type CreateRequestRequest struct {
	GuestID   gDto.ID `json:"guest_id"`
	ServiceID gDto.ID `json:"service_id"`
}

func (c *CreateRequestRequest) Validate() string {
	if c.GuestID <= 0 || c.ServiceID <= 0 {
		return ErrInvalidIDs
	}

	return ""
}

func (c *CreateRequestRequest) ToModel(user string) model.Request {
	return model.Request{
		GuestID:     int64(c.GuestID),
		ServiceID:   int64(c.ServiceID),
		RequestDate: timezone.Today(),
		Status:      model.StatusPending,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type StatusUpdate struct {
	Status string `db:"status"`
}

type RequestResponse struct {
	ID          int64  `json:"request_id"`
	RequestDate string `json:"request_date"`
	Status      string `json:"status"`
	GuestID     int64  `json:"guest_id"`
	GuestName   string `json:"guest_name"`
	ServiceID   int64  `json:"service_id"`
	ServiceName string `json:"service_name"`
}

func (r *RequestResponse) FromModel(detail model.RequestDetail) {
	r.ID = detail.ID
	r.RequestDate = timezone.FormatDate(detail.RequestDate)
	r.Status = detail.Status
	r.GuestID = detail.GuestID
	r.GuestName = detail.GuestName
	r.ServiceID = detail.ServiceID
	r.ServiceName = detail.ServiceName
}

type GetRequestsResponse struct {
	Requests  []RequestResponse `json:"serviceRequests"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetRequestsResponse) FromModels(models []model.RequestDetail, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Requests = make([]RequestResponse, len(models))
	for i, mod := range models {
		g.Requests[i].FromModel(mod)
	}
}
