package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/hotelservice/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Catalog interface {
	Insert(ctx context.Context, model model.Service) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Service, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Request interface {
	Insert(ctx context.Context, model model.Request) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Request, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.RequestDetail, error)
	CountDetails(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type catalogImpl struct {
	gRepo.Repository[model.Service]
}

func NewCatalog(db *postgres.Connection, otel otel.Otel) Catalog {
	return &catalogImpl{
		Repository: gRepo.NewRepository[model.Service](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

type requestImpl struct {
	gRepo.Repository[model.Request]
	detail gRepo.Repository[model.RequestDetail]
}

func NewRequest(db *postgres.Connection, otel otel.Otel) Request {
	return &requestImpl{
		Repository: gRepo.NewRepository[model.Request](model.RequestEntityName, model.RequestTableName, model.FieldRequestID, db, otel),
		detail:     gRepo.NewRepository[model.RequestDetail](model.RequestEntityName, model.RequestTableName, model.FieldRequestID, db, otel),
	}
}

func (r *requestImpl) GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.RequestDetail, error) {
	return r.detail.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *requestImpl) CountDetails(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.detail.Count(ctx, filter) //nolint:wrapcheck
}
