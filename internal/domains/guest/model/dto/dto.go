package dto

import (
	"hotel/internal/domains/guest/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
)

// FilterSpecs maps the guest directory query parameters.
var FilterSpecs = []gDto.FilterSpec{
	{Param: "name", Table: model.TableName, Fields: []string{model.FieldFirstName, model.FieldLastName}, Operator: gDto.FilterOperatorLike},
	{Param: "email", Field: model.FieldEmail, Table: model.TableName, Operator: gDto.FilterOperatorLike},
	{Param: "phone", Field: model.FieldPhone, Table: model.TableName, Operator: gDto.FilterOperatorLike},
}

var Sortable = map[string]string{
	"first_name": model.TableName + "." + model.FieldFirstName,
	"last_name":  model.TableName + "." + model.FieldLastName,
	"email":      model.TableName + "." + model.FieldEmail,
}

var DefaultSort = []gDto.Sort{
	{Column: model.TableName + "." + model.FieldLastName, Dir: gDto.SortDirAsc},
	{Column: model.TableName + "." + model.FieldFirstName, Dir: gDto.SortDirAsc},
}

type GuestResponse struct {
	ID        int64  `json:"guest_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	gDto.Metadata
}

func (g *GuestResponse) FromModel(model model.Guest) {
	g.ID = model.ID
	g.FirstName = model.FirstName
	g.LastName = model.LastName
	g.Email = model.Email
	g.Phone = model.Phone
	g.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (g *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		g.Guests[i].FromModel(mod)
	}
}
