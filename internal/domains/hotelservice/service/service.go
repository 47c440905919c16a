package service

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	guestModel "hotel/internal/domains/guest/model"
	guestRepo "hotel/internal/domains/guest/repository"
	"hotel/internal/domains/hotelservice/model"
	"hotel/internal/domains/hotelservice/model/dto"
	"hotel/internal/domains/hotelservice/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"slices"

	"github.com/rs/zerolog/log"
)

const cacheCatalog = "service:catalog"

type HotelService interface {
	GetServices(ctx context.Context) (dto.GetServicesResponse, error)
	CreateService(ctx context.Context, req dto.CreateServiceRequest) (int64, error)
	UpdateService(ctx context.Context, id int64, req dto.UpdateServiceRequest) error
	DeleteService(ctx context.Context, id int64) error

	CreateRequest(ctx context.Context, req dto.CreateRequestRequest) (int64, error)
	GetRequests(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRequestsResponse, error)
	UpdateRequestStatus(ctx context.Context, id int64, req dto.UpdateStatusRequest) error
}

type serviceImpl struct {
	catalog   repository.Catalog
	requests  repository.Request
	guestRepo guestRepo.Guest
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	catalog repository.Catalog,
	requests repository.Request,
	guestRepo guestRepo.Guest,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) HotelService {
	return &serviceImpl{
		catalog:   catalog,
		requests:  requests,
		guestRepo: guestRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) GetServices(ctx context.Context) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetServices")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Get(ctx, cacheCatalog, &res); err == nil {
		log.Info().Str("cacheKey", cacheCatalog).Msg("cache hit for services")

		return res, nil
	}

	services, err := s.catalog.GetAll(ctx, gDto.QueryParams{Orders: dto.CatalogSort}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(services)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheCatalog, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save services to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CreateService(ctx context.Context, req dto.CreateServiceRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateService")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err = s.catalog.Insert(ctx, req.ToModel(shared.GetActor(ctx)))
	if err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return 0, fmt.Errorf("failed to create service: %w", err)
	}

	s.invalidateCatalog(ctx)

	return id, nil
}

func (s *serviceImpl) UpdateService(ctx context.Context, id int64, req dto.UpdateServiceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateService")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if shared.IsEmptyUpdate(req) {
		return failure.BadRequestFromString(constant.MessageEmptyUpdate) //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.ensureService(ctx, id); err != nil {
		return err
	}

	if err = s.catalog.Update(ctx, req.Fields(shared.GetActor(ctx)), filter); err != nil {
		log.Error().Err(err).Int64("serviceId", id).Msg("failed to update service")

		return fmt.Errorf("failed to update service: %w", err)
	}

	s.invalidateCatalog(ctx)

	return nil
}

func (s *serviceImpl) DeleteService(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteService")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureService(ctx, id); err != nil {
		return err
	}

	if err = s.catalog.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Int64("serviceId", id).Msg("failed to delete service")

		return shared.TranslateDeleteError(err, dto.ErrServiceReferenced) //nolint:wrapcheck
	}

	s.invalidateCatalog(ctx)

	return nil
}

func (s *serviceImpl) CreateRequest(ctx context.Context, req dto.CreateRequestRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRequest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if msg := req.Validate(); msg != "" {
		return 0, failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	if err = shared.AuthorizeGuest(ctx, int64(req.GuestID)); err != nil {
		return 0, err
	}

	exists, err := s.guestRepo.Exist(ctx, shared.FilterByID(int64(req.GuestID), guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Int64("guestId", int64(req.GuestID)).Msg("failed to check guest existence")

		return 0, fmt.Errorf("failed to check guest existence: %w", err)
	}

	if !exists {
		return 0, failure.NotFound(dto.ErrGuestNotFound) //nolint:wrapcheck
	}

	if err = s.ensureService(ctx, int64(req.ServiceID)); err != nil {
		return 0, err
	}

	id, err = s.requests.Insert(ctx, req.ToModel(shared.GetActor(ctx)))
	if err != nil {
		log.Error().Err(err).Int64("guestId", int64(req.GuestID)).Msg("failed to create service request")

		return 0, shared.TranslateWriteError(err, shared.ConstraintMessages{ForeignKey: dto.ErrInvalidReference}) //nolint:wrapcheck
	}

	return id, nil
}

func (s *serviceImpl) GetRequests(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRequests")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.ApplySort(dto.RequestSortable, dto.RequestDefaultSort...)

	total, err := s.requests.CountDetails(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count service requests")

		return res, fmt.Errorf("failed to count service requests: %w", err)
	}

	requests, err := s.requests.GetDetails(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service requests")

		return res, fmt.Errorf("failed to get service requests: %w", err)
	}

	res.FromModels(requests, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) UpdateRequestStatus(ctx context.Context, id int64, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRequestStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !slices.Contains(model.Statuses, req.Status) {
		return failure.BadRequestFromString(dto.ErrInvalidStatus) //nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldRequestID, model.RequestTableName)

	request, err := s.requests.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Int64("requestId", id).Msg("failed to get service request")

		return fmt.Errorf("failed to get service request: %w", err)
	}

	if request.ID == 0 {
		return failure.NotFound(dto.ErrRequestNotFound) //nolint:wrapcheck
	}

	if request.Status == req.Status {
		return nil
	}

	fields := shared.TransformFields(dto.StatusUpdate{Status: req.Status}, shared.GetActor(ctx))

	if err = s.requests.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Int64("requestId", id).Msg("failed to update service request status")

		return fmt.Errorf("failed to update service request status: %w", err)
	}

	return nil
}

func (s *serviceImpl) ensureService(ctx context.Context, id int64) error {
	exists, err := s.catalog.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("serviceId", id).Msg("failed to check service existence")

		return fmt.Errorf("failed to check service existence: %w", err)
	}

	if !exists {
		return failure.NotFound(dto.ErrServiceNotFound) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidateCatalog(ctx context.Context) {
	go func() {
		if err := s.cache.Delete(context.WithoutCancel(ctx), cacheCatalog); err != nil {
			log.Error().Err(err).Msg("failed to delete services cache")
		}
	}()
}
