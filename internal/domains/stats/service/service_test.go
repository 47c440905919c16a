package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hotel/config"
	"hotel/infras/otel/mocks"
	statsMocks "hotel/internal/domains/stats/mocks"
	"hotel/internal/domains/stats/model"
	"hotel/internal/domains/stats/model/dto"
	"hotel/internal/domains/stats/service"
	"hotel/shared/cache"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*statsMocks.MockStats, *cacheMocks.MockRedisCache, service.Stats) {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := statsMocks.NewMockStats(ctrl)
	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return repo, redis, service.New(repo, &config.Config{}, redis, mocks.NewOtel())
}

func TestStatsService_GetDashboard(t *testing.T) {
	t.Run("aggregates all counters", func(t *testing.T) {
		repo, redis, svc := newService(t)

		redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		repo.EXPECT().Count(gomock.Any(), model.MetricTotalBookings).Return(int64(12), nil)
		repo.EXPECT().Count(gomock.Any(), model.MetricRoomsAvailable).Return(int64(4), nil)
		repo.EXPECT().Count(gomock.Any(), model.MetricPendingComplaints).Return(int64(0), nil)
		repo.EXPECT().Count(gomock.Any(), model.MetricActiveStaff).Return(int64(7), nil)

		res, err := svc.GetDashboard(context.Background())
		require.NoError(t, err)
		assert.Equal(t, dto.DashboardResponse{TotalBookings: 12, RoomsAvailable: 4, PendingComplaints: 0, ActiveStaff: 7}, res)
	})

	t.Run("one failing counter fails the response", func(t *testing.T) {
		repo, redis, svc := newService(t)

		redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		repo.EXPECT().Count(gomock.Any(), model.MetricActiveStaff).Return(int64(0), errors.New("relation does not exist"))
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(int64(1), nil).AnyTimes()

		_, err := svc.GetDashboard(context.Background())
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("served from cache", func(t *testing.T) {
		_, redis, svc := newService(t)

		redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*dto.DashboardResponse) = dto.DashboardResponse{ActiveStaff: 3}

				return nil
			})

		res, err := svc.GetDashboard(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(3), res.ActiveStaff)
	})
}
