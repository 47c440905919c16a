package dto

import (
	"database/sql"
	"hotel/internal/domains/staff/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"strings"
)

const (
	MessageCreated = "Staff member created!"

	ErrNotFound        = "Staff member not found."
	ErrDuplicate       = "Email or Phone already exists for another staff member."
	ErrDuplicateUpdate = "Updated Email or Phone already exists for another staff member."
	ErrReferenced      = "Cannot delete staff: Referenced in other records (complaints, etc.). Update FK constraints or remove references."
)

var FilterSpecs = []gDto.FilterSpec{
	{Param: "name", Fields: []string{model.FieldFirstName, model.FieldLastName}, Table: model.TableName, Operator: gDto.FilterOperatorLike},
	{Param: "role", Field: model.FieldRole, Table: model.TableName},
	{Param: "shift", Field: model.FieldShift, Table: model.TableName},
}

var Sortable = map[string]string{
	"staff_id":   model.TableName + "." + model.FieldID,
	"first_name": model.TableName + "." + model.FieldFirstName,
	"last_name":  model.TableName + "." + model.FieldLastName,
	"role":       model.TableName + "." + model.FieldRole,
	"hired_date": model.TableName + "." + model.FieldHiredDate,
	"salary":     model.TableName + "." + model.FieldSalary,
}

var DefaultSort = []gDto.Sort{
	{Column: model.TableName + "." + model.FieldLastName, Dir: gDto.SortDirAsc},
	{Column: model.TableName + "." + model.FieldFirstName, Dir: gDto.SortDirAsc},
}

type CreateStaffRequest struct {
	FirstName string   `json:"first_name" validate:"required,notblank,max=100"`
	LastName  string   `json:"last_name"  validate:"required,notblank,max=100"`
	Role      string   `json:"role"       validate:"required,notblank,max=100"`
	Email     string   `json:"email"      validate:"required,email,max=255"`
	Phone     string   `json:"phone"      validate:"required,notblank,max=30"`
	Salary    *float64 `json:"salary"     validate:"omitempty,gte=0"`
	Shift     *string  `json:"shift"      validate:"omitempty,max=50"`
	HiredDate string   `json:"hired_date" validate:"required,dateonly"`
}

func (c *CreateStaffRequest) ToModel(user string) model.Staff {
	hired, _ := timezone.ParseDate(c.HiredDate)

	salary := sql.NullFloat64{}
	if c.Salary != nil {
		salary = sql.NullFloat64{Float64: *c.Salary, Valid: true}
	}

	return model.Staff{
		FirstName: strings.TrimSpace(c.FirstName),
		LastName:  strings.TrimSpace(c.LastName),
		Role:      strings.TrimSpace(c.Role),
		Email:     strings.ToLower(strings.TrimSpace(c.Email)),
		Phone:     strings.TrimSpace(c.Phone),
		Salary:    salary,
		Shift:     shared.NullString(c.Shift),
		HiredDate: hired,
		Metadata:  gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateStaffRequest struct {
	FirstName *string  `db:"first_name" json:"first_name" validate:"omitempty,notblank,max=100"`
	LastName  *string  `db:"last_name"  json:"last_name"  validate:"omitempty,notblank,max=100"`
	Role      *string  `db:"role"       json:"role"       validate:"omitempty,notblank,max=100"`
	Email     *string  `db:"email"      json:"email"      validate:"omitempty,email,max=255"`
	Phone     *string  `db:"phone"      json:"phone"      validate:"omitempty,notblank,max=30"`
	Salary    *float64 `db:"salary"     json:"salary"     validate:"omitempty,gte=0"`
	Shift     *string  `db:"shift"      json:"shift"      validate:"omitempty,max=50"`
	HiredDate *string  `db:"hired_date" json:"hired_date" validate:"omitempty,dateonly"`
}

// Fields returns the columns to update. An empty shift clears the column.
func (u *UpdateStaffRequest) Fields(user string) map[string]any {
	fields := shared.TransformFields(u, user)

	if u.Email != nil {
		fields[model.FieldEmail] = strings.ToLower(strings.TrimSpace(*u.Email))
	}

	if u.Shift != nil {
		fields[model.FieldShift] = shared.NullString(u.Shift)
	}

	if u.HiredDate != nil {
		if hired, err := timezone.ParseDate(*u.HiredDate); err == nil {
			fields[model.FieldHiredDate] = hired
		}
	}

	return fields
}

// UniqueFilter matches other staff sharing the given email or phone.
func UniqueFilter(email, phone *string, excludeID int64) gDto.FilterGroup {
	anyOf := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorOr}

	if email != nil {
		anyOf.Filters = append(anyOf.Filters, gDto.Filter{
			Field: model.FieldEmail, Table: model.TableName, Operator: gDto.FilterOperatorEq,
			Value: strings.ToLower(strings.TrimSpace(*email)),
		})
	}

	if phone != nil {
		anyOf.Filters = append(anyOf.Filters, gDto.Filter{
			Field: model.FieldPhone, Table: model.TableName, Operator: gDto.FilterOperatorEq,
			Value: strings.TrimSpace(*phone),
		})
	}

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{anyOf}}

	if excludeID > 0 {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName: "exclude_id", Field: model.FieldID, Table: model.TableName, Operator: gDto.FilterOperatorNotEq, Value: excludeID,
		})
	}

	return filter
}

type StaffResponse struct {
	ID        int64    `json:"staff_id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Role      string   `json:"role"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Salary    *float64 `json:"salary"`
	Shift     *string  `json:"shift"`
	HiredDate string   `json:"hired_date"`
}

func (s *StaffResponse) FromModel(model model.Staff) {
	s.ID = model.ID
	s.FirstName = model.FirstName
	s.LastName = model.LastName
	s.Role = model.Role
	s.Email = model.Email
	s.Phone = model.Phone
	s.Salary = shared.Float64Ptr(model.Salary)
	s.Shift = shared.StringPtr(model.Shift)
	s.HiredDate = timezone.FormatDate(model.HiredDate)
}

type GetStaffResponse struct {
	Staff StaffResponse `json:"staff"`
}

type GetStaffListResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (g *GetStaffListResponse) FromModels(models []model.Staff, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		g.Staff[i].FromModel(mod)
	}
}
