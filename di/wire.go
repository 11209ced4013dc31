//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"salas/config"
	"salas/infras/kafka"
	"salas/infras/otel"
	"salas/infras/postgres"
	"salas/infras/redis"
	"salas/shared/cache"
	"salas/transport/http"
	"salas/transport/http/middleware"
	"salas/transport/http/router"

	reservationEvents "salas/internal/domains/reservation/events"
	reservationRepository "salas/internal/domains/reservation/repository"
	reservationService "salas/internal/domains/reservation/service"
	roomRepository "salas/internal/domains/room/repository"
	roomService "salas/internal/domains/room/service"

	reservationHandler "salas/internal/handlers/reservation"
	roomHandler "salas/internal/handlers/room"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationEvents.NewPublisher,
	reservationService.New,
)

var domains = wire.NewSet(
	roomDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	reservationHandler.New,
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
