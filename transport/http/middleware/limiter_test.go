package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func limitedHandler(t *testing.T, backend string, server *miniredis.Miniredis) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.Backend = backend
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache.NewRedisCache(client, mocks.NewOtel()))

	return app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func hit(handler http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/rooms/available", nil)
	req.Header.Set(constant.RequestHeaderForwardedFor, ip+", 10.0.0.1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestRateLimit(t *testing.T) {
	for _, backend := range []string{constant.RateLimiterBackendRedis, constant.RateLimiterBackendMemory} {
		t.Run(backend, func(t *testing.T) {
			handler := limitedHandler(t, backend, miniredis.RunT(t))

			first := hit(handler, "203.0.113.5")
			assert.Equal(t, http.StatusOK, first.Code)
			assert.Equal(t, "2", first.Header().Get(constant.RequestHeaderRateLimit))
			assert.Equal(t, "1", first.Header().Get(constant.RequestHeaderRateLimitRemaining))

			assert.Equal(t, http.StatusOK, hit(handler, "203.0.113.5").Code)
			assert.Equal(t, http.StatusTooManyRequests, hit(handler, "203.0.113.5").Code)

			// Limits are per client.
			assert.Equal(t, http.StatusOK, hit(handler, "198.51.100.9").Code)
		})
	}
}

func TestRateLimit_RedisUnavailableFailsOpen(t *testing.T) {
	server := miniredis.RunT(t)
	handler := limitedHandler(t, constant.RateLimiterBackendRedis, server)
	server.Close()

	for range 3 {
		assert.Equal(t, http.StatusOK, hit(handler, "203.0.113.5").Code)
	}
}
