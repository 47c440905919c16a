package service

import (
	"context"
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"slices"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (int64, error)
	GetByGuest(ctx context.Context, guestID int64) (dto.GetBookingsResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	UpdateStatus(ctx context.Context, id int64, req dto.UpdateStatusRequest) error
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher kafka.Publisher
}

func New(repo repository.Booking, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, publisher kafka.Publisher) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	stay, msg := req.Parse()
	if msg != constant.Empty {
		return 0, failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	if err = shared.AuthorizeGuest(ctx, stay.GuestID); err != nil {
		return 0, err //nolint:wrapcheck
	}

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(stay.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return 0, fmt.Errorf("failed to check room existence: %w", err)
	}

	if !roomExists {
		return 0, failure.BadRequestFromString(dto.ErrInvalidReference) //nolint:wrapcheck
	}

	booking := stay.ToModel(shared.GetActor(ctx))

	id, err = s.repo.Reserve(ctx, booking)
	if err != nil {
		if errors.Is(err, repository.ErrRoomUnavailable) || shared.PqErrorCode(err) == constant.PqErrorCodeExclusionViolation {
			metrics.IncBookingConflict()

			log.Info().Int64("roomId", stay.RoomID).Msg("booking rejected, room taken for the requested dates")

			return 0, failure.Conflict(dto.ErrUnavailable) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return 0, shared.TranslateWriteError(err, shared.ConstraintMessages{ForeignKey: dto.ErrInvalidReference}) //nolint:wrapcheck
	}

	metrics.IncBookingCreated()

	booking.ID = id
	s.afterWrite(ctx, kafka.EventBookingCreated, booking)

	return id, nil
}

func (s *serviceImpl) GetByGuest(ctx context.Context, guestID int64) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByGuest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = shared.AuthorizeGuest(ctx, guestID); err != nil {
		return res, err //nolint:wrapcheck
	}

	params := gDto.QueryParams{Orders: dto.DefaultSort[:1]}
	filter := shared.FilterByID(guestID, model.FieldGuestID, model.TableName)

	bookings, err := s.repo.GetDetails(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Int64("guestId", guestID).Msg("failed to get guest bookings")

		return res, fmt.Errorf("failed to get guest bookings: %w", err)
	}

	res.FromModels(bookings, len(bookings), 0)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.ApplySort(dto.Sortable, dto.DefaultSort...)

	total, err := s.repo.CountDetails(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetDetails(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	return res, nil
}

// UpdateStatus is idempotent: repeating the current status succeeds without a write.
// Moving a cancelled booking back to an active status re-checks its dates under the room lock.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id int64, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !slices.Contains(model.Statuses, req.Status) {
		return failure.BadRequestFromString(dto.ErrInvalidStatus) //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Int64("bookingId", id).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return failure.NotFound(dto.ErrNotFound) //nolint:wrapcheck
	}

	if booking.Status == req.Status {
		return nil
	}

	fields := shared.TransformFields(dto.StatusUpdate{Status: req.Status}, shared.GetActor(ctx))

	if booking.Status == model.StatusCancelled {
		err = s.repo.Reinstate(ctx, booking, fields)
	} else {
		err = s.repo.Update(ctx, fields, filter)
	}

	if err != nil {
		if errors.Is(err, repository.ErrRoomUnavailable) || shared.PqErrorCode(err) == constant.PqErrorCodeExclusionViolation {
			metrics.IncBookingConflict()

			return failure.Conflict(dto.ErrUnavailable) //nolint:wrapcheck
		}

		log.Error().Err(err).Int64("bookingId", id).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = req.Status
	s.afterWrite(ctx, kafka.EventBookingStatusUpdated, booking)

	return nil
}

func (s *serviceImpl) afterWrite(ctx context.Context, event string, booking model.Booking) {
	var payload dto.BookingResponse
	payload.FromModel(booking)

	kafka.PublishAsync(ctx, s.publisher, s.cfg.Kafka.Topics.Booking, kafka.NewEvent(event, booking.ID, payload))

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, constant.CacheKeyDashboardStats)
	}()
}
