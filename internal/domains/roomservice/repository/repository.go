package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/roomservice/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type RoomService interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.OrderDetail, error)
	CountDetails(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetItems(ctx context.Context, orderIDs []int64) ([]model.OrderItem, error)
	Create(ctx context.Context, order model.Order, items []model.OrderItem) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Order]
	detail gRepo.Repository[model.OrderDetail]
	items  gRepo.Repository[model.OrderItem]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RoomService {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Order](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.OrderDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
		items:      gRepo.NewRepository[model.OrderItem](model.ItemEntityName, model.ItemTableName, model.FieldItemID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.OrderDetail, error) {
	return r.detail.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) CountDetails(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.detail.Count(ctx, filter) //nolint:wrapcheck
}

// GetItems loads the items of all given orders in one query.
func (r *repositoryImpl) GetItems(ctx context.Context, orderIDs []int64) ([]model.OrderItem, error) {
	if len(orderIDs) == 0 {
		return []model.OrderItem{}, nil
	}

	filter := gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldID, Table: model.ItemTableName, Operator: gDto.FilterOperatorIn, Value: orderIDs},
	}}
	params := gDto.QueryParams{Orders: []gDto.Sort{{Column: model.ItemTableName + "." + model.FieldItemID}}}

	return r.items.GetAll(ctx, params, filter) //nolint:wrapcheck
}

// Create writes the order header and its items in one transaction.
func (r *repositoryImpl) Create(ctx context.Context, order model.Order, items []model.OrderItem) (id int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".roomservice.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = r.db.WithTransaction(ctx, nil, func(tx *sqlx.Tx) error {
		id, err = r.InsertTx(ctx, tx, order)
		if err != nil {
			return err //nolint:wrapcheck
		}

		for i := range items {
			items[i].OrderID = id
		}

		return r.items.InsertBulkTx(ctx, tx, items) //nolint:wrapcheck
	})
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return id, nil
}
