package middleware

import (
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/transport/http/response"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	cacheKeyRateLimit = "limiter"
)

func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds
			key := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r))

			var (
				allowed   bool
				remaining int
			)

			if a.config.App.RateLimiter.Backend == constant.RateLimiterBackendMemory {
				allowed, remaining = a.limiter.allow(key)
			} else {
				count, err := a.cache.Increment(r.Context(), key, windowSecs)
				if err != nil {
					log.Warn().Err(err).Msg("rate limiter unavailable, letting request through")
					next.ServeHTTP(w, r)

					return
				}

				allowed = count <= int64(maxReqs)
				remaining = max(0, maxReqs-int(count))
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(remaining))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			if !allowed {
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}

// memoryLimiter is the single-instance backend: one token bucket per client key,
// refilled at maxRequests per window.
type memoryLimiter struct {
	limiters sync.Map
	limit    rate.Limit
	burst    int
}

func newMemoryLimiter(maxRequests, windowSeconds int) *memoryLimiter {
	if maxRequests <= 0 {
		maxRequests = 1
	}

	if windowSeconds <= 0 {
		windowSeconds = 1
	}

	return &memoryLimiter{
		limit: rate.Every(time.Duration(windowSeconds) * time.Second / time.Duration(maxRequests)),
		burst: maxRequests,
	}
}

func (l *memoryLimiter) getLimiter(key string) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		if lim, ok := v.(*rate.Limiter); ok {
			return lim
		}
	}

	lim := rate.NewLimiter(l.limit, l.burst)

	actual, loaded := l.limiters.LoadOrStore(key, lim)
	if loaded {
		if actualLim, ok := actual.(*rate.Limiter); ok {
			return actualLim
		}
	}

	return lim
}

func (l *memoryLimiter) allow(key string) (bool, int) {
	lim := l.getLimiter(key)
	ok := lim.Allow()

	return ok, max(0, int(lim.Tokens()))
}
