package dto

import (
	"hotel/internal/domains/inventory/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"strings"
	"time"
)

const (
	MessageCreated = "Inventory item created successfully!"

	ErrNotFound = "Inventory item not found."
)

var FilterSpecs = []gDto.FilterSpec{
	{Param: "item_name", Field: model.FieldItemName, Table: model.TableName, Operator: gDto.FilterOperatorLike},
	{Param: "min_quantity", Field: model.FieldQuantity, Table: model.TableName, Operator: gDto.FilterOperatorGreaterEq, Parser: gDto.ParseInt},
	{Param: "max_quantity", Field: model.FieldQuantity, Table: model.TableName, Operator: gDto.FilterOperatorLessEq, Parser: gDto.ParseInt},
}

var Sortable = map[string]string{
	"item_id":      model.TableName + "." + model.FieldID,
	"item_name":    model.TableName + "." + model.FieldItemName,
	"quantity":     model.TableName + "." + model.FieldQuantity,
	"last_updated": model.TableName + "." + constant.FieldModifiedAt,
}

var DefaultSort = []gDto.Sort{
	{Column: model.TableName + "." + model.FieldItemName, Dir: gDto.SortDirAsc},
}

type CreateItemRequest struct {
	ItemName    string  `json:"item_name"   validate:"required,notblank,max=255"`
	Quantity    *int    `json:"quantity"    validate:"required,gte=0"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

func (c *CreateItemRequest) ToModel(user string) model.Item {
	return model.Item{
		ItemName:    strings.TrimSpace(c.ItemName),
		Quantity:    *c.Quantity,
		Description: shared.NullString(c.Description),
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateItemRequest struct {
	ItemName    *string `db:"item_name"   json:"item_name"   validate:"omitempty,notblank,max=255"`
	Quantity    *int    `db:"quantity"    json:"quantity"    validate:"omitempty,gte=0"`
	Description *string `db:"description" json:"description" validate:"omitempty,max=1000"`
}

// Fields returns the columns to update. An empty description clears the column.
func (u *UpdateItemRequest) Fields(user string) map[string]any {
	fields := shared.TransformFields(u, user)

	if u.Description != nil {
		fields[model.FieldDescription] = shared.NullString(u.Description)
	}

	return fields
}

type ItemResponse struct {
	ID          int64     `json:"item_id"`
	ItemName    string    `json:"item_name"`
	Quantity    int       `json:"quantity"`
	Description *string   `json:"description"`
	LastUpdated time.Time `json:"last_updated"`
}

func (i *ItemResponse) FromModel(model model.Item) {
	i.ID = model.ID
	i.ItemName = model.ItemName
	i.Quantity = model.Quantity
	i.Description = shared.StringPtr(model.Description)
	i.LastUpdated = model.ModifiedAt
}

type GetItemResponse struct {
	Item ItemResponse `json:"item"`
}

type GetItemsResponse struct {
	Inventory []ItemResponse `json:"inventory"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (g *GetItemsResponse) FromModels(models []model.Item, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Inventory = make([]ItemResponse, len(models))
	for i, mod := range models {
		g.Inventory[i].FromModel(mod)
	}
}
