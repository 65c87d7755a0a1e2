package di

import (
	loyaltyConsumer "sharmoria/internal/domains/loyalty/consumer"
	notificationService "sharmoria/internal/domains/notification/service"
	"sharmoria/transport/http"
)

// Service bundles the HTTP server with the background workers that ship with
// it: the outbox dispatcher and the loyalty event consumer.
type Service struct {
	HTTP       *http.HTTP
	Dispatcher notificationService.Dispatcher
	Consumer   *loyaltyConsumer.Consumer
}
