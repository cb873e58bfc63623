//go:build wireinject
// +build wireinject

package di

import (
	"healthtick/config"
	"healthtick/infras/kafka"
	"healthtick/infras/mongo"
	"healthtick/infras/otel"
	"healthtick/infras/postgres"
	"healthtick/infras/redis"
	bookingHandler "healthtick/internal/handlers/booking"
	clientHandler "healthtick/internal/handlers/client"
	"healthtick/shared/cache"
	"healthtick/transport/http"
	"healthtick/transport/http/middleware"
	"healthtick/transport/http/router"

	bookingRepository "healthtick/internal/domains/booking/repository"
	bookingService "healthtick/internal/domains/booking/service"

	clientRepository "healthtick/internal/domains/client/repository"
	clientService "healthtick/internal/domains/client/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	mongo.New,
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

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var clientDomain = wire.NewSet(
	clientRepository.New,
	clientService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	clientDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	clientHandler.New,
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
