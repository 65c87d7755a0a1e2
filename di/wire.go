//go:build wireinject
// +build wireinject

package di

import (
	"sharmoria/config"
	"sharmoria/infras/jwt"
	"sharmoria/infras/kafka"
	"sharmoria/infras/otel"
	"sharmoria/infras/postgres"
	"sharmoria/infras/redis"
	"sharmoria/infras/s3"
	"sharmoria/shared/cache"
	"sharmoria/transport/http"
	"sharmoria/transport/http/middleware"
	"sharmoria/transport/http/router"

	"github.com/google/wire"

	bookingEvent "sharmoria/internal/domains/booking/event"
	bookingRepository "sharmoria/internal/domains/booking/repository"
	bookingService "sharmoria/internal/domains/booking/service"
	catalogRepository "sharmoria/internal/domains/catalog/repository"
	catalogService "sharmoria/internal/domains/catalog/service"
	contactRepository "sharmoria/internal/domains/contact/repository"
	contactService "sharmoria/internal/domains/contact/service"
	giftcertRepository "sharmoria/internal/domains/giftcert/repository"
	giftcertService "sharmoria/internal/domains/giftcert/service"
	loyaltyConsumer "sharmoria/internal/domains/loyalty/consumer"
	loyaltyRepository "sharmoria/internal/domains/loyalty/repository"
	loyaltyService "sharmoria/internal/domains/loyalty/service"
	notificationRepository "sharmoria/internal/domains/notification/repository"
	notificationService "sharmoria/internal/domains/notification/service"
	testimonialRepository "sharmoria/internal/domains/testimonial/repository"
	testimonialService "sharmoria/internal/domains/testimonial/service"

	authService "sharmoria/internal/domains/auth/service"
	userRepository "sharmoria/internal/domains/user/repository"

	authHandler "sharmoria/internal/handlers/auth"
	bookingHandler "sharmoria/internal/handlers/booking"
	catalogHandler "sharmoria/internal/handlers/catalog"
	contactHandler "sharmoria/internal/handlers/contact"
	giftcertHandler "sharmoria/internal/handlers/giftcert"
	loyaltyHandler "sharmoria/internal/handlers/loyalty"
	mailerHandler "sharmoria/internal/handlers/mailer"
	testimonialHandler "sharmoria/internal/handlers/testimonial"
)

var configurations = wire.NewSet(
	config.Get,
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
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingEvent.NewPublisher,
	bookingService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.NewDispatcher,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var testimonialDomain = wire.NewSet(
	testimonialRepository.New,
	testimonialService.New,
)

var giftcertDomain = wire.NewSet(
	giftcertRepository.New,
	giftcertService.New,
)

var loyaltyDomain = wire.NewSet(
	loyaltyRepository.New,
	loyaltyService.New,
	loyaltyConsumer.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	bookingDomain,
	notificationDomain,
	contactDomain,
	testimonialDomain,
	giftcertDomain,
	loyaltyDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	catalogHandler.New,
	contactHandler.New,
	giftcertHandler.New,
	loyaltyHandler.New,
	mailerHandler.New,
	testimonialHandler.New,
	router.New,
)

func InitializeService() *Service {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(Service), "*"),
	)

	return &Service{}
}
