package service

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/housekeeping/model"
	"hotel/internal/domains/housekeeping/model/dto"
	"hotel/internal/domains/housekeeping/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	staffModel "hotel/internal/domains/staff/model"
	staffRepo "hotel/internal/domains/staff/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

type Housekeeping interface {
	Create(ctx context.Context, req dto.CreateTaskRequest) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTasksResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateTaskRequest) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo      repository.Housekeeping
	staffRepo staffRepo.Staff
	roomRepo  roomRepo.Room
	otel      otel.Otel
}

func New(repo repository.Housekeeping, staffRepo staffRepo.Staff, roomRepo roomRepo.Room, otel otel.Otel) Housekeeping {
	return &serviceImpl{
		repo:      repo,
		staffRepo: staffRepo,
		roomRepo:  roomRepo,
		otel:      otel,
	}
}

var writeErrors = shared.ConstraintMessages{ForeignKey: dto.ErrInvalidReference}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTaskRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureAssignees(ctx, &req.StaffID, &req.RoomID); err != nil {
		return 0, err
	}

	id, err = s.repo.Insert(ctx, req.ToModel(shared.GetActor(ctx)))
	if err != nil {
		log.Error().Err(err).Msg("failed to create housekeeping task")

		return 0, shared.TranslateWriteError(err, writeErrors) //nolint:wrapcheck
	}

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTasksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.ApplySort(dto.Sortable, dto.DefaultSort...)

	total, err := s.repo.CountDetails(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count housekeeping tasks")

		return res, fmt.Errorf("failed to count housekeeping tasks: %w", err)
	}

	tasks, err := s.repo.GetDetails(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping tasks")

		return res, fmt.Errorf("failed to get housekeeping tasks: %w", err)
	}

	res.FromModels(tasks, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateTaskRequest) (err error) {
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

	if err = s.ensureAssignees(ctx, req.StaffID, req.RoomID); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, req.Fields(shared.GetActor(ctx)), filter); err != nil {
		log.Error().Err(err).Int64("taskId", id).Msg("failed to update housekeeping task")

		return shared.TranslateWriteError(err, writeErrors) //nolint:wrapcheck
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
		log.Error().Err(err).Int64("taskId", id).Msg("failed to delete housekeeping task")

		return fmt.Errorf("failed to delete housekeeping task: %w", err)
	}

	return nil
}

func (s *serviceImpl) ensureExists(ctx context.Context, filter gDto.FilterGroup) error {
	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check housekeeping task existence")

		return fmt.Errorf("failed to check housekeeping task existence: %w", err)
	}

	if !exists {
		return failure.NotFound(dto.ErrNotFound) //nolint:wrapcheck
	}

	return nil
}

// ensureAssignees checks the referenced staff member and room. Nil ids are not being changed.
func (s *serviceImpl) ensureAssignees(ctx context.Context, staffID, roomID *int64) error {
	if staffID != nil {
		exists, err := s.staffRepo.Exist(ctx, shared.FilterByID(*staffID, staffModel.FieldID, staffModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to check staff existence: %w", err)
		}

		if !exists {
			return failure.NotFound(dto.ErrStaffNotFound) //nolint:wrapcheck
		}
	}

	if roomID != nil {
		exists, err := s.roomRepo.Exist(ctx, shared.FilterByID(*roomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to check room existence: %w", err)
		}

		if !exists {
			return failure.NotFound(dto.ErrRoomNotFound) //nolint:wrapcheck
		}
	}

	return nil
}
