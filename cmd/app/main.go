package main

import (
	"hotel/config"
	"hotel/di"
	"hotel/helper"
	"hotel/infras/metrics"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title						Hotel Management API
// @version					1.0
// @description				Bookings, rooms, guest requests and hotel operations.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply database migrations")
		}
	}

	metrics.Register()

	http := di.InitializeService()
	http.Serve()
}
