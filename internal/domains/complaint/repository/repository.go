package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/complaint/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Complaint interface {
	Insert(ctx context.Context, model model.Complaint) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Complaint, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ComplaintDetail, error)
	CountDetails(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Complaint]
	detail gRepo.Repository[model.ComplaintDetail]
}

func New(db *postgres.Connection, otel otel.Otel) Complaint {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Complaint](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.ComplaintDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ComplaintDetail, error) {
	return r.detail.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) CountDetails(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.detail.Count(ctx, filter) //nolint:wrapcheck
}
