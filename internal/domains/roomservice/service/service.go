package service

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/internal/domains/roomservice/model"
	"hotel/internal/domains/roomservice/model/dto"
	"hotel/internal/domains/roomservice/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"slices"

	"github.com/rs/zerolog/log"
)

type RoomService interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (int64, error)
	GetAllOrders(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOrdersResponse, error)
	UpdateOrderStatus(ctx context.Context, id int64, req dto.UpdateStatusRequest) error
}

type serviceImpl struct {
	repo      repository.RoomService
	cfg       *config.Config
	otel      otel.Otel
	publisher kafka.Publisher
}

func New(repo repository.RoomService, cfg *config.Config, otel otel.Otel, publisher kafka.Publisher) RoomService {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		otel:      otel,
		publisher: publisher,
	}
}

func (s *serviceImpl) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateOrder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if msg := req.Validate(); msg != constant.Empty {
		return 0, failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	if err = shared.AuthorizeGuest(ctx, int64(req.GuestID)); err != nil {
		return 0, err //nolint:wrapcheck
	}

	order, items := req.ToModel(shared.GetActor(ctx))

	id, err = s.repo.Create(ctx, order, items)
	if err != nil {
		log.Error().Err(err).Int64("guestId", int64(req.GuestID)).Msg("failed to create room service order")

		return 0, shared.TranslateWriteError(err, shared.ConstraintMessages{ForeignKey: dto.ErrInvalidReference}) //nolint:wrapcheck
	}

	metrics.IncRoomServiceOrder()

	order.ID = id

	var payload dto.OrderResponse
	payload.FromModel(order, items)

	kafka.PublishAsync(ctx, s.publisher, s.cfg.Kafka.Topics.RoomService, kafka.NewEvent(kafka.EventRoomServiceOrderCreated, id, payload))

	return id, nil
}

func (s *serviceImpl) GetAllOrders(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllOrders")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.ApplySort(dto.Sortable, dto.DefaultSort...)

	total, err := s.repo.CountDetails(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room service orders")

		return res, fmt.Errorf("failed to count room service orders: %w", err)
	}

	orders, err := s.repo.GetDetails(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room service orders")

		return res, fmt.Errorf("failed to get room service orders: %w", err)
	}

	ids := make([]int64, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	items, err := s.repo.GetItems(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room service order items")

		return res, fmt.Errorf("failed to get room service order items: %w", err)
	}

	res.FromModels(orders, items, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) UpdateOrderStatus(ctx context.Context, id int64, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateOrderStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !slices.Contains(model.Statuses, req.Status) {
		return failure.BadRequestFromString(dto.ErrInvalidStatus) //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	order, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Int64("orderId", id).Msg("failed to get room service order")

		return fmt.Errorf("failed to get room service order: %w", err)
	}

	if order.ID == 0 {
		return failure.NotFound(dto.ErrNotFound) //nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(dto.StatusUpdate{Status: req.Status}, shared.GetActor(ctx)), filter); err != nil {
		log.Error().Err(err).Int64("orderId", id).Msg("failed to update room service order status")

		return fmt.Errorf("failed to update room service order status: %w", err)
	}

	order.Status = req.Status

	var payload dto.OrderResponse
	payload.FromModel(order, nil)

	kafka.PublishAsync(ctx, s.publisher, s.cfg.Kafka.Topics.RoomService, kafka.NewEvent(kafka.EventRoomServiceStatusUpdated, id, payload))

	return nil
}
