//go:build wireinject
// +build wireinject

package di

import (
	"portal/config"
	"portal/infras/jwt"
	"portal/infras/otel"
	"portal/infras/postgres"
	"portal/infras/redis"
	"portal/infras/s3"
	"portal/permissions"
	"portal/shared/cache"
	"portal/transport/http"
	"portal/transport/http/middleware"
	"portal/transport/http/router"

	authService "portal/internal/domains/auth/service"
	catalogRepository "portal/internal/domains/catalog/repository"
	catalogService "portal/internal/domains/catalog/service"
	councilRepository "portal/internal/domains/council/repository"
	councilService "portal/internal/domains/council/service"
	registrationRepository "portal/internal/domains/registration/repository"
	registrationService "portal/internal/domains/registration/service"
	reservationRepository "portal/internal/domains/reservation/repository"
	reservationService "portal/internal/domains/reservation/service"
	roomRepository "portal/internal/domains/room/repository"
	roomService "portal/internal/domains/room/service"
	userRepository "portal/internal/domains/user/repository"

	authHandler "portal/internal/handlers/auth"
	catalogHandler "portal/internal/handlers/catalog"
	councilHandler "portal/internal/handlers/council"
	registrationHandler "portal/internal/handlers/registration"
	reservationHandler "portal/internal/handlers/reservation"
	roomHandler "portal/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userRepository.NewStaffProfile,
	userRepository.NewStudentProfile,
	authService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.NewCategory,
	catalogRepository.NewProgram,
	catalogService.New,
)

var councilDomain = wire.NewSet(
	councilRepository.New,
	councilService.New,
)

var registrationDomain = wire.NewSet(
	registrationRepository.New,
	registrationService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var domains = wire.NewSet(
	authDomain,
	catalogDomain,
	councilDomain,
	registrationDomain,
	reservationDomain,
	roomDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	catalogHandler.New,
	councilHandler.New,
	registrationHandler.New,
	reservationHandler.New,
	roomHandler.New,
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
