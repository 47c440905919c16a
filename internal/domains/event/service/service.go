package service

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/event/model"
	"hotel/internal/domains/event/model/dto"
	"hotel/internal/domains/event/repository"
	guestModel "hotel/internal/domains/guest/model"
	guestRepo "hotel/internal/domains/guest/repository"
	staffModel "hotel/internal/domains/staff/model"
	staffRepo "hotel/internal/domains/staff/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

type Event interface {
	Create(ctx context.Context, req dto.CreateEventRequest) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEventsResponse, error)
	Get(ctx context.Context, id int64) (dto.GetEventResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateEventRequest) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo      repository.Event
	guestRepo guestRepo.Guest
	staffRepo staffRepo.Staff
	otel      otel.Otel
}

func New(repo repository.Event, guestRepo guestRepo.Guest, staffRepo staffRepo.Staff, otel otel.Otel) Event {
	return &serviceImpl{
		repo:      repo,
		guestRepo: guestRepo,
		staffRepo: staffRepo,
		otel:      otel,
	}
}

var writeErrors = shared.ConstraintMessages{ForeignKey: dto.ErrInvalidReference}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEventRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureReferences(ctx, req.GuestID, req.StaffID); err != nil {
		return 0, err
	}

	id, err = s.repo.Insert(ctx, req.ToModel(shared.GetActor(ctx)))
	if err != nil {
		log.Error().Err(err).Msg("failed to create event booking")

		return 0, shared.TranslateWriteError(err, writeErrors) //nolint:wrapcheck
	}

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.ApplySort(dto.Sortable, dto.DefaultSort...)

	total, err := s.repo.CountDetails(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count event bookings")

		return res, fmt.Errorf("failed to count event bookings: %w", err)
	}

	events, err := s.repo.GetDetails(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get event bookings")

		return res, fmt.Errorf("failed to get event bookings: %w", err)
	}

	res.FromModels(events, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.GetEventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("eventId", id).Msg("failed to get event booking")

		return res, fmt.Errorf("failed to get event booking: %w", err)
	}

	if event.ID == 0 {
		return res, failure.NotFound(dto.ErrNotFound) //nolint:wrapcheck
	}

	res.Event.FromModel(event)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateEventRequest) (err error) {
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

	if err = s.ensureReferences(ctx, req.GuestID, req.StaffID); err != nil {
		return err
	}

	if err = s.repo.Update(ctx, req.Fields(shared.GetActor(ctx)), filter); err != nil {
		log.Error().Err(err).Int64("eventId", id).Msg("failed to update event booking")

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
		log.Error().Err(err).Int64("eventId", id).Msg("failed to delete event booking")

		return fmt.Errorf("failed to delete event booking: %w", err)
	}

	return nil
}

func (s *serviceImpl) ensureExists(ctx context.Context, filter gDto.FilterGroup) error {
	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check event booking existence")

		return fmt.Errorf("failed to check event booking existence: %w", err)
	}

	if !exists {
		return failure.NotFound(dto.ErrNotFound) //nolint:wrapcheck
	}

	return nil
}

// ensureReferences rejects unknown guest or staff ids with 400. Nil ids are skipped.
func (s *serviceImpl) ensureReferences(ctx context.Context, guestID, staffID *int64) error {
	if guestID != nil {
		exists, err := s.guestRepo.Exist(ctx, shared.FilterByID(*guestID, guestModel.FieldID, guestModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to check guest existence: %w", err)
		}

		if !exists {
			return failure.BadRequestFromString(dto.ErrInvalidReference) //nolint:wrapcheck
		}
	}

	if staffID != nil {
		exists, err := s.staffRepo.Exist(ctx, shared.FilterByID(*staffID, staffModel.FieldID, staffModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to check staff existence: %w", err)
		}

		if !exists {
			return failure.BadRequestFromString(dto.ErrInvalidReference) //nolint:wrapcheck
		}
	}

	return nil
}
