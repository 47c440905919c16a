package handler

import (
	"hotel/config"
	"hotel/di"
	"hotel/infras/metrics"
	"hotel/shared/logger"
	"hotel/transport/http"
	netHTTP "net/http"
	"sync"
)

var (
	server *http.HTTP
	once   sync.Once
)

// Handler serves the API from a serverless function. The injector runs once per instance,
// so database pools and the Redis client survive between invocations.
func Handler(w netHTTP.ResponseWriter, r *netHTTP.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.SetLogLevel(cfg)

		metrics.Register()

		server = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
