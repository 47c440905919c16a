package dto

import (
	"hotel/internal/domains/complaint/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"strings"
)

const (
	MessageCreated = "Complaint submitted successfully. We will review it shortly."

	ErrInvalidGuest     = "Missing or invalid required field: guest_id."
	ErrMissingText      = "Missing required field: complaint_text."
	ErrGuestNotFound    = "Associated guest account not found."
	ErrInvalidReference = "Invalid Guest ID provided."
	ErrNotFound         = "Complaint not found."
)

var ErrInvalidStatus = "Invalid status. Must be one of: " + strings.Join(model.Statuses, ", ") + "."

var FilterSpecs = []gDto.FilterSpec{
	{Param: "guest_name", Field: model.GuestNameExpr, Operator: gDto.FilterOperatorLike},
	{Param: "staff_name", Field: model.StaffNameExpr, Operator: gDto.FilterOperatorLike},
	{Param: "status", Field: model.FieldStatus, Table: model.TableName, Allowed: model.Statuses},
	{Param: "date_from", Field: model.FieldComplaintDate, Table: model.TableName, Operator: gDto.FilterOperatorGreaterEq, Parser: gDto.ParseDate},
	{Param: "date_to", Field: model.FieldComplaintDate, Table: model.TableName, Operator: gDto.FilterOperatorLessEq, Parser: gDto.ParseDate},
}

var Sortable = map[string]string{
	"complaint_id":   model.TableName + "." + model.FieldID,
	"complaint_date": model.TableName + "." + model.FieldComplaintDate,
	"status":         model.TableName + "." + model.FieldStatus,
}

var DefaultSort = []gDto.Sort{
	{Column: model.TableName + "." + model.FieldComplaintDate, Dir: gDto.SortDirDesc},
	{Column: model.TableName + "." + model.FieldID, Dir: gDto.SortDirDesc},
}

// CreateComplaintRequest names the staff member involved either by id or by part of their name.
type CreateComplaintRequest struct {
	GuestID       gDto.ID `json:"guest_id"`
	StaffInfo     string  `json:"staff_info"`
	ComplaintText string  `json:"complaint_text"`
}

func (c *CreateComplaintRequest) Validate() string {
	if c.GuestID <= 0 {
		return ErrInvalidGuest
	}

	if strings.TrimSpace(c.ComplaintText) == "" {
		return ErrMissingText
	}

	return ""
}

func (c *CreateComplaintRequest) ToModel(staffID *int64, user string) model.Complaint {
	return model.Complaint{
		GuestID:       int64(c.GuestID),
		StaffID:       shared.NullInt64(staffID),
		ComplaintText: strings.TrimSpace(c.ComplaintText),
		ComplaintDate: timezone.Today(),
		Status:        model.StatusPending,
		Metadata:      gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type StatusUpdate struct {
	Status string `db:"status"`
}

type ComplaintResponse struct {
	ID            int64   `json:"complaint_id"`
	ComplaintText string  `json:"complaint_text"`
	ComplaintDate string  `json:"complaint_date"`
	Status        string  `json:"status"`
	GuestID       int64   `json:"guest_id"`
	GuestName     *string `json:"guest_name"`
	StaffID       *int64  `json:"staff_id"`
	StaffName     *string `json:"staff_name"`
}

func (c *ComplaintResponse) FromModel(complaint model.Complaint) {
	c.ID = complaint.ID
	c.ComplaintText = complaint.ComplaintText
	c.ComplaintDate = timezone.FormatDate(complaint.ComplaintDate)
	c.Status = complaint.Status
	c.GuestID = complaint.GuestID
	c.StaffID = shared.Int64Ptr(complaint.StaffID)
}

func (c *ComplaintResponse) FromDetail(detail model.ComplaintDetail) {
	c.FromModel(detail.Complaint)
	c.GuestName = shared.StringPtr(detail.GuestName)
	c.StaffName = shared.StringPtr(detail.StaffName)
}

type GetComplaintsResponse struct {
	Complaints []ComplaintResponse `json:"complaints"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (g *GetComplaintsResponse) FromModels(models []model.ComplaintDetail, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Complaints = make([]ComplaintResponse, len(models))
	for i, mod := range models {
		g.Complaints[i].FromDetail(mod)
	}
}
