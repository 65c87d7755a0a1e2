package router

import (
	"sharmoria/internal/handlers/auth"
	"sharmoria/internal/handlers/booking"
	"sharmoria/internal/handlers/catalog"
	"sharmoria/internal/handlers/contact"
	"sharmoria/internal/handlers/giftcert"
	"sharmoria/internal/handlers/loyalty"
	"sharmoria/internal/handlers/mailer"
	"sharmoria/internal/handlers/testimonial"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth            auth.Handler
	Booking         booking.Handler
	Catalog         catalog.Handler
	Contact         contact.Handler
	GiftCertificate giftcert.Handler
	Loyalty         loyalty.Handler
	Mailer          mailer.Handler
	Testimonial     testimonial.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Contact.Router(routerGroup)
		r.DomainHandlers.GiftCertificate.Router(routerGroup)
		r.DomainHandlers.Loyalty.Router(routerGroup)
		r.DomainHandlers.Mailer.Router(routerGroup)
		r.DomainHandlers.Testimonial.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
