package service

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/staff/model"
	"hotel/internal/domains/staff/model/dto"
	"hotel/internal/domains/staff/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

type Staff interface {
	Create(ctx context.Context, req dto.CreateStaffRequest) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStaffListResponse, error)
	Get(ctx context.Context, id int64) (dto.StaffResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateStaffRequest) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Staff
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Staff, cache cache.RedisCache, otel otel.Otel) Staff {
	return &serviceImpl{
		repo:  repo,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStaffRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	taken, err := s.repo.Exist(ctx, dto.UniqueFilter(&req.Email, &req.Phone, 0))
	if err != nil {
		log.Error().Err(err).Msg("failed to check staff uniqueness")

		return 0, fmt.Errorf("failed to check staff uniqueness: %w", err)
	}

	if taken {
		return 0, failure.Conflict(dto.ErrDuplicate) //nolint:wrapcheck
	}

	id, err = s.repo.Insert(ctx, req.ToModel(shared.GetActor(ctx)))
	if err != nil {
		log.Error().Err(err).Msg("failed to create staff")

		return 0, shared.TranslateWriteError(err, shared.ConstraintMessages{Unique: dto.ErrDuplicate}) //nolint:wrapcheck
	}

	s.invalidateStats(ctx)

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStaffListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.ApplySort(dto.Sortable, dto.DefaultSort...)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count staff")

		return res, fmt.Errorf("failed to count staff: %w", err)
	}

	staff, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	res.FromModels(staff, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	staff, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("staffId", id).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	if staff.ID == 0 {
		return res, failure.NotFound(dto.ErrNotFound) //nolint:wrapcheck
	}

	res.FromModel(staff)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateStaffRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if shared.IsEmptyUpdate(req) {
		return failure.BadRequestFromString(constant.MessageEmptyUpdate) //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.ensureExists(ctx, filter); err != nil {
		return err
	}

	if req.Email != nil || req.Phone != nil {
		var taken bool

		taken, err = s.repo.Exist(ctx, dto.UniqueFilter(req.Email, req.Phone, id))
		if err != nil {
			log.Error().Err(err).Int64("staffId", id).Msg("failed to check staff uniqueness")

			return fmt.Errorf("failed to check staff uniqueness: %w", err)
		}

		if taken {
			return failure.Conflict(dto.ErrDuplicateUpdate) //nolint:wrapcheck
		}
	}

	if err = s.repo.Update(ctx, req.Fields(shared.GetActor(ctx)), filter); err != nil {
		log.Error().Err(err).Int64("staffId", id).Msg("failed to update staff")

		return shared.TranslateWriteError(err, shared.ConstraintMessages{Unique: dto.ErrDuplicateUpdate}) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.ensureExists(ctx, filter); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Int64("staffId", id).Msg("failed to delete staff")

		return shared.TranslateDeleteError(err, dto.ErrReferenced) //nolint:wrapcheck
	}

	s.invalidateStats(ctx)

	return nil
}

func (s *serviceImpl) ensureExists(ctx context.Context, filter gDto.FilterGroup) error {
	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check staff existence")

		return fmt.Errorf("failed to check staff existence: %w", err)
	}

	if !exists {
		return failure.NotFound(dto.ErrNotFound) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidateStats(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, constant.CacheKeyDashboardStats)
	}()
}
