package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sharmoria/config"
	"sharmoria/infras/otel"
	"sharmoria/internal/domains/booking/event"
	"sharmoria/internal/domains/booking/model"
	"sharmoria/internal/domains/booking/model/dto"
	"sharmoria/internal/domains/booking/pricing"
	"sharmoria/internal/domains/booking/repository"
	catalogModel "sharmoria/internal/domains/catalog/model"
	catalogService "sharmoria/internal/domains/catalog/service"
	notifModel "sharmoria/internal/domains/notification/model"
	"sharmoria/shared"
	"sharmoria/shared/cache"
	"sharmoria/shared/constant"
	gDto "sharmoria/shared/dto"
	"sharmoria/shared/failure"
	gModel "sharmoria/shared/model"
	"sharmoria/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetByNumber(ctx context.Context, bookingNumber string) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	catalog   catalogService.Catalog
	publisher event.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Booking, catalog catalogService.Catalog, publisher event.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		catalog:   catalog,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Quote computes the price breakdown for a service selection without
// persisting anything. The funnel calls it on every selection change and
// uses MeetsMinimum to gate submission.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	services, err := s.resolveServices(ctx, req.ServiceIDs)
	if err != nil {
		return res, err
	}

	prices := make([]int64, len(services))
	for i, svc := range services {
		prices[i] = svc.Price
	}

	res.FromQuote(pricing.NewQuote(prices, req.DistanceKM))

	return res, nil
}

// Create persists a booking. Date and time windows are enforced here; the
// minimum order amount is not, since the quote step already gates it and the
// gateway stays permissive for channels that bypass the funnel.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookingDate, err := time.ParseInLocation(constant.BookingDateFormat, req.BookingDate, timezone.GetLocation())
	if err != nil {
		return res, failure.BadRequestFromString("invalid booking date format, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	if !pricing.IsValidBookingDate(bookingDate) {
		return res, failure.BadRequestFromString("booking date cannot be in the past") // nolint:wrapcheck
	}

	if !pricing.IsWithinBusinessHours(bookingDate, req.BookingTime) {
		window := pricing.BusinessHoursFor(bookingDate.Weekday())

		return res, failure.BadRequestFromString(fmt.Sprintf("booking time is outside business hours (%s)", window)) // nolint:wrapcheck
	}

	services, err := s.resolveServices(ctx, req.ServiceIDs)
	if err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, items, err := req.ToModel(services, user)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid booking request: %v", err)) // nolint:wrapcheck
	}

	notification, err := buildNotification(booking, items, notifModel.KindBookingCreated)
	if err != nil {
		return res, err
	}

	if err = s.repo.CreateWithServices(ctx, booking, items, notification); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	scope.SetAttributes(map[string]any{
		"booking_number": booking.BookingNumber,
		"grand_total":    booking.TotalAmount + booking.TravelFee,
		"distance_km":    booking.DistanceKM,
	})

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.BookingCreated(c, booking); err != nil {
			log.Error().Err(err).Str("bookingNumber", booking.BookingNumber).Msg("failed to publish booking created event")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	res = dto.CreateBookingResponse{
		ID:            booking.ID,
		BookingNumber: booking.BookingNumber,
		GrandTotal:    booking.GrandTotal,
		Status:        booking.Status,
	}

	return res, nil
}

// GetByNumber serves the public tracking page, looked up by booking number
// rather than internal ID.
func (s *serviceImpl) GetByNumber(ctx context.Context, bookingNumber string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByNumber")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingNumber,
				Table:    model.TableName,
			},
		},
	}

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking by number")

		return res, fmt.Errorf("failed to get booking by number: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	items, err := s.repo.GetServices(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking services")

		return res, fmt.Errorf("failed to get booking services: %w", err)
	}

	res.FromModel(booking, items)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	items, err := s.repo.GetServices(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking services")

		return res, fmt.Errorf("failed to get booking services: %w", err)
	}

	res.FromModel(booking, items)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// UpdateStatus moves a booking through its state machine. Transitions not in
// the table are rejected, including any move out of a terminal status.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !model.CanTransition(booking.Status, req.Status) {
		return failure.Conflict(fmt.Sprintf("cannot change booking status from %s to %s", booking.Status, req.Status)) // nolint:wrapcheck
	}

	previousStatus := booking.Status
	booking.Status = req.Status

	items, err := s.repo.GetServices(ctx, booking.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking services")

		return fmt.Errorf("failed to get booking services: %w", err)
	}

	notification, err := buildNotification(booking, items, notifModel.KindBookingStatusChanged)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.UpdateWithNotification(ctx, updatedFields, filter, notification); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.StatusChanged(c, booking, previousStatus); err != nil {
			log.Error().Err(err).Str("bookingNumber", booking.BookingNumber).Msg("failed to publish booking status event")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}

func (s *serviceImpl) resolveServices(ctx context.Context, ids []string) ([]catalogModel.Service, error) {
	services, err := s.catalog.GetActiveByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve services: %w", err)
	}

	if len(services) != len(ids) {
		return nil, failure.BadRequestFromString("one or more selected services are unavailable") // nolint:wrapcheck
	}

	return services, nil
}

func buildNotification(booking model.Booking, items []model.BookingService, kind string) (notifModel.Notification, error) {
	services := make([]map[string]any, len(items))
	for i, item := range items {
		services[i] = map[string]any{
			"name":  item.ServiceName,
			"price": item.ServicePrice,
		}
	}

	payload, err := json.Marshal(map[string]any{
		"booking_number":  booking.BookingNumber,
		"customer_name":   booking.CustomerName,
		"services":        services,
		"total_amount":    booking.TotalAmount,
		"travel_fee":      booking.TravelFee,
		"grand_total":     booking.GrandTotal,
		"booking_date":    booking.BookingDate.Format(constant.BookingDateFormat),
		"booking_time":    booking.BookingTime,
		"service_address": booking.Address,
		"payment_method":  booking.PaymentMethod,
		"status":          booking.Status,
	})
	if err != nil {
		return notifModel.Notification{}, fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	now := timezone.Now()

	return notifModel.Notification{
		ID:        uuid.NewString(),
		BookingID: sql.NullString{String: booking.ID, Valid: true},
		Kind:      kind,
		Recipient: booking.CustomerEmail,
		Payload:   payload,
		Status:    notifModel.StatusPending,
		Attempts:  0,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}, nil
}
