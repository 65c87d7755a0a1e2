package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"sharmoria/config"
	"sharmoria/infras/otel"
	"sharmoria/internal/domains/notification/model"
	"sharmoria/internal/domains/notification/repository"
	"sharmoria/shared/constant"
	gDto "sharmoria/shared/dto"
	"sharmoria/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

// deliveryRequest is the body posted to the mailer for each outbox row.
type deliveryRequest struct {
	Recipient string          `json:"recipient"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
}

type Dispatcher interface {
	Run(ctx context.Context)
	DispatchBatch(ctx context.Context) (int, error)
}

type dispatcherImpl struct {
	repo   repository.Notification
	cfg    *config.Config
	otel   otel.Otel
	client *http.Client
}

func NewDispatcher(repo repository.Notification, cfg *config.Config, otel otel.Otel) Dispatcher {
	timeout := time.Duration(cfg.Notifier.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &dispatcherImpl{
		repo:   repo,
		cfg:    cfg,
		otel:   otel,
		client: &http.Client{Timeout: timeout},
	}
}

// Run polls the outbox until the context is cancelled. Delivery failures are
// retried on later passes until the attempt budget is spent.
func (d *dispatcherImpl) Run(ctx context.Context) {
	interval := time.Duration(d.cfg.Notifier.PollIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}

	log.Info().Dur("interval", interval).Msg("Starting notification dispatcher.")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Notification dispatcher stopped.")

			return
		case <-ticker.C:
			sent, err := d.DispatchBatch(ctx)
			if err != nil {
				log.Error().Err(err).Msg("notification dispatch pass failed")

				continue
			}

			if sent > 0 {
				log.Info().Int("sent", sent).Msg("Delivered pending notifications.")
			}
		}
	}
}

// DispatchBatch delivers one batch of pending notifications and returns how
// many went out.
func (d *dispatcherImpl) DispatchBatch(ctx context.Context) (sent int, err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DispatchBatch")
	defer scope.End()
	defer scope.TraceIfError(err)

	batchSize := d.cfg.Notifier.BatchSize
	if batchSize <= 0 {
		batchSize = 20
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusPending,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		Page:    1,
		Limit:   batchSize,
		SortBy:  constant.FieldCreatedAt,
		SortDir: "ASC",
	}

	pending, err := d.repo.GetAll(ctx, params, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending notifications: %w", err)
	}

	for _, notification := range pending {
		if deliverErr := d.deliver(ctx, notification); deliverErr != nil {
			d.markFailure(ctx, notification, deliverErr)

			continue
		}

		d.markDelivered(ctx, notification)
		sent++
	}

	return sent, nil
}

func (d *dispatcherImpl) deliver(ctx context.Context, notification model.Notification) error {
	body, err := json.Marshal(deliveryRequest{
		Recipient: notification.Recipient,
		Kind:      notification.Kind,
		Payload:   notification.Payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal delivery request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.External.Mailer.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mailer request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := d.client.Do(request)
	if err != nil {
		return fmt.Errorf("failed to call mailer: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("mailer returned status %d", resp.StatusCode)
	}

	return nil
}

func (d *dispatcherImpl) markDelivered(ctx context.Context, notification model.Notification) {
	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusSent,
		model.FieldAttempts:      notification.Attempts + 1,
		model.FieldDeliveredAt:   timezone.Now(),
		constant.FieldModifiedAt: timezone.Now(),
	}

	if err := d.repo.Update(ctx, updatedFields, d.filterByID(notification.ID)); err != nil {
		log.Error().Err(err).Str("notificationID", notification.ID).Msg("failed to mark notification as sent")
	}
}

func (d *dispatcherImpl) markFailure(ctx context.Context, notification model.Notification, deliverErr error) {
	attempts := notification.Attempts + 1

	status := model.StatusPending
	if attempts >= d.maxAttempts() {
		status = model.StatusFailed

		log.Error().Err(deliverErr).
			Str("notificationID", notification.ID).
			Int("attempts", attempts).
			Msg("notification exhausted delivery attempts")
	}

	updatedFields := map[string]any{
		model.FieldStatus:        status,
		model.FieldAttempts:      attempts,
		model.FieldLastError:     sql.NullString{String: deliverErr.Error(), Valid: true},
		constant.FieldModifiedAt: timezone.Now(),
	}

	if err := d.repo.Update(ctx, updatedFields, d.filterByID(notification.ID)); err != nil {
		log.Error().Err(err).Str("notificationID", notification.ID).Msg("failed to record notification failure")
	}
}

func (d *dispatcherImpl) maxAttempts() int {
	if d.cfg.Notifier.MaxAttempts <= 0 {
		return 5
	}

	return d.cfg.Notifier.MaxAttempts
}

func (d *dispatcherImpl) filterByID(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			},
		},
	}
}
