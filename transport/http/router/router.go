package router

import (
	"voyage/internal/handlers/customer"
	"voyage/internal/handlers/offer"
	"voyage/internal/handlers/reservation"
	"voyage/transport/http/middleware"
	"voyage/web"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Offer       offer.Handler
	Customer    customer.Handler
	Reservation reservation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
	Web            web.Handler
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.Middleware.CORS())
	router.Use(r.Middleware.RequestID)
	router.Use(r.Middleware.Logging)
	router.Use(r.Middleware.Tracing)
	router.Use(r.Middleware.RateLimit)

	r.DomainHandlers.Offer.Router(router)
	r.DomainHandlers.Customer.Router(router)
	r.DomainHandlers.Reservation.Router(router)

	r.Web.Router(router)
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, webHandler web.Handler) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
		Web:            webHandler,
	}
}
