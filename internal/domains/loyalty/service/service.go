package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sharmoria/config"
	"sharmoria/infras/otel"
	bookingEvent "sharmoria/internal/domains/booking/event"
	bookingModel "sharmoria/internal/domains/booking/model"
	"sharmoria/internal/domains/loyalty/model"
	"sharmoria/internal/domains/loyalty/model/dto"
	"sharmoria/internal/domains/loyalty/repository"
	"sharmoria/shared"
	"sharmoria/shared/constant"
	gDto "sharmoria/shared/dto"
	"sharmoria/shared/failure"
	gModel "sharmoria/shared/model"
	"sharmoria/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Loyalty interface {
	HandleBookingEvent(ctx context.Context, evt bookingEvent.BookingEvent) error
	GetByEmail(ctx context.Context, email string) (dto.CustomerResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCustomersResponse, error)
}

type serviceImpl struct {
	repo repository.Loyalty
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Loyalty, cfg *config.Config, otel otel.Otel) Loyalty {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// HandleBookingEvent awards points when a booking completes. Other event
// types are ignored so the consumer can feed every message through.
func (s *serviceImpl) HandleBookingEvent(ctx context.Context, evt bookingEvent.BookingEvent) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HandleBookingEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	if evt.Type != bookingEvent.TypeBookingStatusChanged || evt.Status != bookingModel.StatusCompleted {
		return nil
	}

	if evt.CustomerEmail == constant.Empty {
		return nil
	}

	points := model.PointsFor(evt.GrandTotal)

	customer, err := s.findByEmail(ctx, evt.CustomerEmail)
	if err != nil {
		return err
	}

	now := timezone.Now()

	if customer.ID == constant.Empty {
		customer = model.Customer{
			ID:                uuid.NewString(),
			Email:             evt.CustomerEmail,
			Points:            points,
			TotalSpent:        evt.GrandTotal,
			BookingsCompleted: 1,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
			},
		}

		if err = s.repo.Insert(ctx, customer); err != nil {
			log.Error().Err(err).Msg("failed to create loyalty customer")

			return fmt.Errorf("failed to create loyalty customer: %w", err)
		}

		log.Info().Str("email", customer.Email).Int64("points", points).Msg("Created loyalty customer.")

		return nil
	}

	updatedFields := map[string]any{
		model.FieldPoints:            customer.Points + points,
		model.FieldTotalSpent:        customer.TotalSpent + evt.GrandTotal,
		model.FieldBookingsCompleted: customer.BookingsCompleted + 1,
		constant.FieldModifiedAt:     now,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(customer.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update loyalty customer")

		return fmt.Errorf("failed to update loyalty customer: %w", err)
	}

	log.Info().Str("email", customer.Email).Int64("points", points).Msg("Awarded loyalty points.")

	return nil
}

func (s *serviceImpl) GetByEmail(ctx context.Context, email string) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	customer, err := s.findByEmail(ctx, email)
	if err != nil {
		return res, err
	}

	if customer.ID == constant.Empty {
		return res, failure.NotFound("loyalty customer not found") // nolint:wrapcheck
	}

	res.FromModel(customer)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count loyalty customers")

		return res, fmt.Errorf("failed to count loyalty customers: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get loyalty customers")

		return res, fmt.Errorf("failed to get loyalty customers: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) findByEmail(ctx context.Context, email string) (model.Customer, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    model.TableName,
			},
		},
	}

	customer, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get loyalty customer")

		return customer, fmt.Errorf("failed to get loyalty customer: %w", err)
	}

	return customer, nil
}
