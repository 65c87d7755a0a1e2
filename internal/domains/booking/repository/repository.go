package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sharmoria/infras/otel"
	"sharmoria/infras/postgres"
	"sharmoria/internal/domains/booking/model"
	notifModel "sharmoria/internal/domains/notification/model"
	"sharmoria/shared/constant"
	gDto "sharmoria/shared/dto"
	gRepo "sharmoria/shared/repository"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	CreateWithServices(ctx context.Context, booking model.Booking, items []model.BookingService, notification notifModel.Notification) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetServices(ctx context.Context, bookingID string) ([]model.BookingService, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateWithNotification(ctx context.Context, req map[string]any, filter gDto.FilterGroup, notification notifModel.Notification) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	itemRepo  gRepo.Repository[model.BookingService]
	notifRepo gRepo.Repository[notifModel.Notification]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		itemRepo:   gRepo.NewRepository[model.BookingService](model.ServiceEntityName, model.ServiceTableName, model.FieldID, db, otel),
		notifRepo:  gRepo.NewRepository[notifModel.Notification](notifModel.EntityName, notifModel.TableName, notifModel.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CreateWithServices persists the booking, its service line items and the
// outbox notification in a single transaction. Either everything lands or
// nothing does; there is no window where a booking exists without its items.
func (repo *repositoryImpl) CreateWithServices(ctx context.Context, booking model.Booking, items []model.BookingService, notification notifModel.Notification) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CreateWithServices")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback booking transaction")
			}
		}
	}()

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = repo.itemRepo.InsertBulkTx(ctx, tx, items); err != nil {
		return fmt.Errorf("failed to insert booking services: %w", err)
	}

	if err = repo.notifRepo.InsertTx(ctx, tx, notification); err != nil {
		return fmt.Errorf("failed to insert booking notification: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetServices(ctx context.Context, bookingID string) ([]model.BookingService, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldServiceBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.ServiceTableName,
			},
		},
	}

	params := gDto.QueryParams{
		Page:    1,
		Limit:   100,
		SortBy:  constant.FieldCreatedAt,
		SortDir: "ASC",
	}

	items, err := repo.itemRepo.GetAll(ctx, params, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking services: %w", err)
	}

	return items, nil
}

// UpdateWithNotification applies a booking update and queues its outbox row
// in one transaction.
func (repo *repositoryImpl) UpdateWithNotification(ctx context.Context, req map[string]any, filter gDto.FilterGroup, notification notifModel.Notification) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateWithNotification")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback booking update transaction")
			}
		}
	}()

	if err = repo.UpdateTx(ctx, tx, req, filter); err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	if err = repo.notifRepo.InsertTx(ctx, tx, notification); err != nil {
		return fmt.Errorf("failed to insert booking notification: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking update transaction: %w", err)
	}

	return nil
}
