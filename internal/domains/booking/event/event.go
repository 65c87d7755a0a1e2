package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sharmoria/config"
	"sharmoria/infras/kafka"
	"sharmoria/infras/otel"
	"sharmoria/internal/domains/booking/model"
	"sharmoria/shared/constant"
	"sharmoria/shared/timezone"
	"time"
)

const (
	TypeBookingCreated       = "booking.created"
	TypeBookingStatusChanged = "booking.status_changed"
)

// BookingEvent is the message published to the booking events topic for
// every lifecycle change. Downstream consumers (loyalty among them) key off
// Type and Status.
type BookingEvent struct {
	Type           string    `json:"type"`
	BookingID      string    `json:"booking_id"`
	BookingNumber  string    `json:"booking_number"`
	CustomerEmail  string    `json:"customer_email"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	GrandTotal     int64     `json:"grand_total"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type Publisher interface {
	BookingCreated(ctx context.Context, booking model.Booking) error
	StatusChanged(ctx context.Context, booking model.Booking, previousStatus string) error
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *publisherImpl) BookingCreated(ctx context.Context, booking model.Booking) error {
	return p.publish(ctx, BookingEvent{
		Type:          TypeBookingCreated,
		BookingID:     booking.ID,
		BookingNumber: booking.BookingNumber,
		CustomerEmail: booking.CustomerEmail,
		Status:        booking.Status,
		GrandTotal:    booking.GrandTotal,
		OccurredAt:    timezone.Now(),
	})
}

func (p *publisherImpl) StatusChanged(ctx context.Context, booking model.Booking, previousStatus string) error {
	return p.publish(ctx, BookingEvent{
		Type:           TypeBookingStatusChanged,
		BookingID:      booking.ID,
		BookingNumber:  booking.BookingNumber,
		CustomerEmail:  booking.CustomerEmail,
		Status:         booking.Status,
		PreviousStatus: previousStatus,
		GrandTotal:     booking.GrandTotal,
		OccurredAt:     timezone.Now(),
	})
}

func (p *publisherImpl) publish(ctx context.Context, evt BookingEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"event.type":    evt.Type,
		"event.booking": evt.BookingNumber,
	})

	message := kafka.Message{
		Key:   evt.BookingID,
		Value: evt,
	}

	if err = p.client.SendMessages(ctx, p.cfg.Kafka.Topics.BookingEvents, message); err != nil {
		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}
