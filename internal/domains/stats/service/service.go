package service

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/stats/model"
	"hotel/internal/domains/stats/model/dto"
	"hotel/internal/domains/stats/repository"
	"hotel/shared/cache"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Stats interface {
	GetDashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	repo  repository.Stats
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Stats, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Stats {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetDashboard returns the four dashboard counters, queried concurrently on a cache miss.
func (s *serviceImpl) GetDashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Get(ctx, constant.CacheKeyDashboardStats, &res); err == nil {
		log.Info().Msg("cache hit for dashboard stats")

		return res, nil
	}

	counts := make([]int64, len(model.Metrics))

	group, groupCtx := errgroup.WithContext(ctx)

	for i, metric := range model.Metrics {
		group.Go(func() error {
			count, err := s.repo.Count(groupCtx, metric)
			if err != nil {
				return err //nolint:wrapcheck
			}

			counts[i] = count

			return nil
		})
	}

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to get dashboard stats")

		return res, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	byMetric := make(map[model.Metric]int64, len(counts))
	for i, metric := range model.Metrics {
		byMetric[metric] = counts[i]
	}

	res.FromCounts(byMetric)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, constant.CacheKeyDashboardStats, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard stats to cache")
		}
	}()

	return res, nil
}
