//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/infras/s3"
	"hotel/permissions"
	"hotel/shared/cache"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	"github.com/google/wire"

	adminRepository "hotel/internal/domains/admin/repository"
	authService "hotel/internal/domains/auth/service"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	complaintRepository "hotel/internal/domains/complaint/repository"
	complaintService "hotel/internal/domains/complaint/service"
	eventRepository "hotel/internal/domains/event/repository"
	eventService "hotel/internal/domains/event/service"
	feedbackRepository "hotel/internal/domains/feedback/repository"
	feedbackService "hotel/internal/domains/feedback/service"
	guestRepository "hotel/internal/domains/guest/repository"
	guestService "hotel/internal/domains/guest/service"
	hotelServiceRepository "hotel/internal/domains/hotelservice/repository"
	hotelServiceService "hotel/internal/domains/hotelservice/service"
	housekeepingRepository "hotel/internal/domains/housekeeping/repository"
	housekeepingService "hotel/internal/domains/housekeeping/service"
	inventoryRepository "hotel/internal/domains/inventory/repository"
	inventoryService "hotel/internal/domains/inventory/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	roomServiceRepository "hotel/internal/domains/roomservice/repository"
	roomServiceService "hotel/internal/domains/roomservice/service"
	staffRepository "hotel/internal/domains/staff/repository"
	staffService "hotel/internal/domains/staff/service"
	statsRepository "hotel/internal/domains/stats/repository"
	statsService "hotel/internal/domains/stats/service"

	authHandler "hotel/internal/handlers/auth"
	bookingHandler "hotel/internal/handlers/booking"
	complaintHandler "hotel/internal/handlers/complaint"
	eventHandler "hotel/internal/handlers/event"
	feedbackHandler "hotel/internal/handlers/feedback"
	guestHandler "hotel/internal/handlers/guest"
	hotelServiceHandler "hotel/internal/handlers/hotelservice"
	housekeepingHandler "hotel/internal/handlers/housekeeping"
	inventoryHandler "hotel/internal/handlers/inventory"
	roomHandler "hotel/internal/handlers/room"
	roomServiceHandler "hotel/internal/handlers/roomservice"
	staffHandler "hotel/internal/handlers/staff"
	statsHandler "hotel/internal/handlers/stats"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var accountDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
	adminRepository.New,
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
	bookingRepository.New,
	bookingService.New,
)

var guestRequestDomain = wire.NewSet(
	roomServiceRepository.New,
	roomServiceService.New,
	hotelServiceRepository.NewCatalog,
	hotelServiceRepository.NewRequest,
	hotelServiceService.New,
	feedbackRepository.New,
	feedbackService.New,
	complaintRepository.New,
	complaintService.New,
)

var operationsDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
	inventoryRepository.New,
	inventoryService.New,
	housekeepingRepository.New,
	housekeepingService.New,
	eventRepository.New,
	eventService.New,
	statsRepository.New,
	statsService.New,
)

var domains = wire.NewSet(
	accountDomain,
	roomDomain,
	guestRequestDomain,
	operationsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	guestHandler.New,
	roomHandler.New,
	bookingHandler.New,
	roomServiceHandler.New,
	hotelServiceHandler.New,
	feedbackHandler.New,
	complaintHandler.New,
	staffHandler.New,
	inventoryHandler.New,
	housekeepingHandler.New,
	eventHandler.New,
	statsHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
