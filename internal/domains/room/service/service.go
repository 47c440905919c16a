package service

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom       = "room:get"
	cacheGetAllRoom    = "room:gets"
	cacheAvailableRoom = "room:available"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	GetAvailable(ctx context.Context) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id int64) (dto.RoomResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateRoomRequest) error
	UpdateImage(ctx context.Context, id int64, req dto.UploadRoomImageRequest) (string, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err = s.repo.Insert(ctx, req.ToModel(shared.GetActor(ctx)))
	if err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return 0, shared.TranslateWriteError(err, shared.ConstraintMessages{}) //nolint:wrapcheck
	}

	s.invalidate(ctx, 0)

	return id, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.ApplySort(dto.Sortable, dto.DefaultSort...)

	return s.list(ctx, cacheGetAllRoom, params, filter)
}

func (s *serviceImpl) GetAvailable(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{Orders: dto.AvailableSort}
	filter := shared.FilterByID(true, model.FieldAvailable, model.TableName)

	return s.list(ctx, cacheAvailableRoom, params, filter)
}

func (s *serviceImpl) list(ctx context.Context, prefix string, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(prefix, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, strconv.FormatInt(id, 10))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("roomId", id).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return res, failure.NotFound(dto.ErrNotFound) //nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateRoomRequest) (err error) {
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

	if err = s.repo.Update(ctx, req.Fields(shared.GetActor(ctx)), filter); err != nil {
		log.Error().Err(err).Int64("roomId", id).Msg("failed to update room")

		return shared.TranslateWriteError(err, shared.ConstraintMessages{}) //nolint:wrapcheck
	}

	s.invalidate(ctx, id)

	return nil
}

// UpdateImage uploads the new image, then swaps the stored URL. The replaced object is removed
// only after the row points at the new one; a failed update removes the new upload instead.
func (s *serviceImpl) UpdateImage(ctx context.Context, id int64, req dto.UploadRoomImageRequest) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	room, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldImageURL)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return constant.Empty, failure.NotFound(dto.ErrNotFound) //nolint:wrapcheck
	}

	fileName := uuid.NewString() + strings.ToLower(filepath.Ext(req.Image.Filename))

	url, err = s.s3.UploadFile(ctx, model.ImageDirectory, fileName, req.ImageFile, req.Image)
	if err != nil {
		log.Error().Err(err).Int64("roomId", id).Msg("failed to upload room image")

		return constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	fields := shared.TransformFields(struct{}{}, shared.GetActor(ctx))
	fields[model.FieldImageURL] = url

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Int64("roomId", id).Msg("failed to store room image url")

		if delErr := s.s3.DeleteObject(context.WithoutCancel(ctx), s.s3.ObjectKeyFromURL(url)); delErr != nil {
			log.Error().Err(delErr).Str("url", url).Msg("failed to remove orphaned room image")
		}

		return constant.Empty, fmt.Errorf("failed to update room image: %w", err)
	}

	if room.ImageURL.Valid {
		if key := s.s3.ObjectKeyFromURL(room.ImageURL.String); key != constant.Empty {
			if delErr := s.s3.DeleteObject(ctx, key); delErr != nil {
				log.Warn().Err(delErr).Str("key", key).Msg("failed to remove replaced room image")
			}
		}
	}

	s.invalidate(ctx, id)

	return url, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	room, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldImageURL)
	if err != nil {
		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return failure.NotFound(dto.ErrNotFound) //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Int64("roomId", id).Msg("failed to delete room")

		return shared.TranslateDeleteError(err, dto.ErrReferenced) //nolint:wrapcheck
	}

	if room.ImageURL.Valid {
		if key := s.s3.ObjectKeyFromURL(room.ImageURL.String); key != constant.Empty {
			if delErr := s.s3.DeleteObject(ctx, key); delErr != nil {
				log.Warn().Err(delErr).Str("key", key).Msg("failed to remove image of deleted room")
			}
		}
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) ensureExists(ctx context.Context, filter gDto.FilterGroup) error {
	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return fmt.Errorf("failed to check room existence: %w", err)
	}

	if !exist {
		return failure.NotFound(dto.ErrNotFound) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheAvailableRoom)
		shared.InvalidateCaches(c, s.cache, constant.CacheKeyDashboardStats)

		if id > 0 {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, strconv.FormatInt(id, 10))); err != nil {
				log.Error().Err(err).Int64("roomId", id).Msg("failed to delete room cache")
			}
		}
	}()
}
