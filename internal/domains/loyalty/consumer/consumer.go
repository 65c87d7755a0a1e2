package consumer

import (
	"context"
	"sharmoria/config"
	"sharmoria/infras/kafka"
	bookingEvent "sharmoria/internal/domains/booking/event"
	"sharmoria/internal/domains/loyalty/service"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Consumer feeds booking events from Kafka into the loyalty service.
type Consumer struct {
	client  kafka.Client
	service service.Loyalty
	cfg     *config.Config
}

func New(client kafka.Client, service service.Loyalty, cfg *config.Config) *Consumer {
	return &Consumer{
		client:  client,
		service: service,
		cfg:     cfg,
	}
}

// Run blocks consuming the booking events topic until the context is
// cancelled. Handler errors are logged and the offset advances anyway;
// loyalty points are not worth wedging the consumer group over.
func (c *Consumer) Run(ctx context.Context) {
	log.Info().
		Str("topic", c.cfg.Kafka.Topics.BookingEvents).
		Str("group", c.cfg.Kafka.ConsumerGroup).
		Msg("Starting loyalty consumer.")

	c.client.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.Topics.BookingEvents, func(message kafkaGo.Message) {
		evt, err := kafka.DecodeKafkaMessage[bookingEvent.BookingEvent](message)
		if err != nil {
			log.Error().Err(err).Msg("failed to decode booking event")

			return
		}

		if err := c.service.HandleBookingEvent(ctx, evt); err != nil {
			log.Error().Err(err).Str("bookingNumber", evt.BookingNumber).Msg("failed to handle booking event")
		}
	})
}
