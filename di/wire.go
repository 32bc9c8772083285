//go:build wireinject
// +build wireinject

package di

import (
	"voyage/config"
	"voyage/infras/otel"
	"voyage/infras/postgres"
	"voyage/infras/redis"
	"voyage/shared/cache"
	"voyage/transport/http"
	"voyage/transport/http/middleware"
	"voyage/transport/http/router"
	"voyage/web"

	customerRepository "voyage/internal/domains/customer/repository"
	customerService "voyage/internal/domains/customer/service"
	offerRepository "voyage/internal/domains/offer/repository"
	offerService "voyage/internal/domains/offer/service"
	reservationRepository "voyage/internal/domains/reservation/repository"
	reservationService "voyage/internal/domains/reservation/service"

	customerHandler "voyage/internal/handlers/customer"
	offerHandler "voyage/internal/handlers/offer"
	reservationHandler "voyage/internal/handlers/reservation"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var offerDomain = wire.NewSet(
	offerRepository.New,
	offerService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var domains = wire.NewSet(
	offerDomain,
	customerDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	offerHandler.New,
	customerHandler.New,
	reservationHandler.New,
	web.New,
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
