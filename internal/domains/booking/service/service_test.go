package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"sharmoria/config"
	"sharmoria/infras/otel/mocks"
	bookingMocks "sharmoria/internal/domains/booking/mocks"
	"sharmoria/internal/domains/booking/model"
	"sharmoria/internal/domains/booking/model/dto"
	"sharmoria/internal/domains/booking/service"
	catalogModel "sharmoria/internal/domains/catalog/model"
	catalogMocks "sharmoria/internal/domains/catalog/service/mocks"
	notifModel "sharmoria/internal/domains/notification/model"
	cacheMocks "sharmoria/shared/cache/mocks"
	"sharmoria/shared/constant"
	gDto "sharmoria/shared/dto"
	"sharmoria/shared/failure"
	gModel "sharmoria/shared/model"
	"sharmoria/shared/timezone"
)

const (
	serviceIDMassage = "3f1c8f6a-5b2d-4e9c-8a71-0d2f4b6c8e10"
	serviceIDFacial  = "7a9e2c4d-1f3b-4a6d-9c85-2e7f0a1b3c52"
)

func activeServices() []catalogModel.Service {
	return []catalogModel.Service{
		{
			ID:              serviceIDMassage,
			Name:            "Swedish Massage",
			DurationMinutes: 60,
			Price:           60000,
			IsActive:        true,
		},
		{
			ID:              serviceIDFacial,
			Name:            "Facial Treatment",
			DurationMinutes: 45,
			Price:           45000,
			IsActive:        true,
		},
	}
}

// nextWeekday returns the next occurrence of the given weekday, at least one
// day out, formatted as a booking date.
func nextWeekday(day time.Weekday) string {
	d := timezone.Now().AddDate(0, 0, 1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}

	return d.Format(constant.BookingDateFormat)
}

func TestBookingService_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCatalog := catalogMocks.NewMockCatalog(ctrl)
	mockPublisher := bookingMocks.NewMockPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockCatalog, mockPublisher, cfg, mockCache, mockOtel)

	tests := []struct {
		name       string
		req        dto.QuoteRequest
		setupMock  func()
		wantErr    bool
		wantResult dto.QuoteResponse
	}{
		{
			name: "quote with free travel",
			req: dto.QuoteRequest{
				ServiceIDs: []string{serviceIDMassage, serviceIDFacial},
				DistanceKM: 4,
			},
			setupMock: func() {
				mockCatalog.EXPECT().
					GetActiveByIDs(gomock.Any(), gomock.Any()).
					Return(activeServices(), nil)
			},
			wantResult: dto.QuoteResponse{
				TotalAmount:  105000,
				TravelFee:    0,
				GrandTotal:   105000,
				MeetsMinimum: true,
			},
		},
		{
			name: "quote with travel fee",
			req: dto.QuoteRequest{
				ServiceIDs: []string{serviceIDMassage, serviceIDFacial},
				DistanceKM: 8,
			},
			setupMock: func() {
				mockCatalog.EXPECT().
					GetActiveByIDs(gomock.Any(), gomock.Any()).
					Return(activeServices(), nil)
			},
			wantResult: dto.QuoteResponse{
				TotalAmount:  105000,
				TravelFee:    4500,
				GrandTotal:   109500,
				MeetsMinimum: true,
			},
		},
		{
			name: "quote below minimum reports shortfall",
			req: dto.QuoteRequest{
				ServiceIDs: []string{serviceIDFacial},
				DistanceKM: 0,
			},
			setupMock: func() {
				mockCatalog.EXPECT().
					GetActiveByIDs(gomock.Any(), gomock.Any()).
					Return(activeServices()[1:], nil)
			},
			wantResult: dto.QuoteResponse{
				TotalAmount:   45000,
				TravelFee:     0,
				GrandTotal:    45000,
				MeetsMinimum:  false,
				AmountMissing: 5000,
			},
		},
		{
			name: "unknown service rejected",
			req: dto.QuoteRequest{
				ServiceIDs: []string{serviceIDMassage, serviceIDFacial},
			},
			setupMock: func() {
				mockCatalog.EXPECT().
					GetActiveByIDs(gomock.Any(), gomock.Any()).
					Return(activeServices()[:1], nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Quote(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult, res)
			}
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCatalog := catalogMocks.NewMockCatalog(ctrl)
	mockPublisher := bookingMocks.NewMockPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockCatalog, mockPublisher, cfg, mockCache, mockOtel)

	validReq := func() dto.CreateBookingRequest {
		return dto.CreateBookingRequest{
			CustomerName:  "Jordan Reyes",
			CustomerEmail: "jordan@example.com",
			CustomerPhone: "+6281234567890",
			Address:       "12 Orchid Lane",
			DistanceKM:    8,
			BookingDate:   nextWeekday(time.Wednesday),
			BookingTime:   "10:00",
			PaymentMethod: model.PaymentMethodCard,
			ServiceIDs:    []string{serviceIDMassage, serviceIDFacial},
		}
	}

	asyncExpectations := func() {
		mockPublisher.EXPECT().
			BookingCreated(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
	}

	tests := []struct {
		name      string
		req       func() dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				mockCatalog.EXPECT().
					GetActiveByIDs(gomock.Any(), gomock.Any()).
					Return(activeServices(), nil)

				mockRepo.EXPECT().
					CreateWithServices(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking, items []model.BookingService, notification notifModel.Notification) error {
						assert.Equal(t, model.PaymentMethodCard, booking.PaymentMethod)
						assert.Len(t, items, 2)

						var payload map[string]any
						assert.NoError(t, json.Unmarshal(notification.Payload, &payload))
						assert.Equal(t, model.PaymentMethodCard, payload["payment_method"])
						assert.Equal(t, "12 Orchid Lane", payload["service_address"])
						assert.Len(t, payload["services"], 2)
						assert.EqualValues(t, 105000, payload["total_amount"])
						assert.EqualValues(t, 4500, payload["travel_fee"])

						return nil
					})

				asyncExpectations()
			},
		},
		{
			name: "below minimum amount still persists",
			req: func() dto.CreateBookingRequest {
				req := validReq()
				req.ServiceIDs = []string{serviceIDFacial}
				req.DistanceKM = 0

				return req
			},
			setupMock: func() {
				mockCatalog.EXPECT().
					GetActiveByIDs(gomock.Any(), gomock.Any()).
					Return(activeServices()[1:], nil)

				mockRepo.EXPECT().
					CreateWithServices(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				asyncExpectations()
			},
		},
		{
			name: "invalid date format",
			req: func() dto.CreateBookingRequest {
				req := validReq()
				req.BookingDate = "01-02-2026"

				return req
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "past date rejected",
			req: func() dto.CreateBookingRequest {
				req := validReq()
				req.BookingDate = "2020-01-01"

				return req
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "outside business hours",
			req: func() dto.CreateBookingRequest {
				req := validReq()
				req.BookingTime = "07:00"

				return req
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "after weekday closing time",
			req: func() dto.CreateBookingRequest {
				req := validReq()
				req.BookingTime = "17:01"

				return req
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "sunday afternoon rejected",
			req: func() dto.CreateBookingRequest {
				req := validReq()
				req.BookingDate = nextWeekday(time.Sunday)
				req.BookingTime = "14:00"

				return req
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "inactive service rejected",
			req:  validReq,
			setupMock: func() {
				mockCatalog.EXPECT().
					GetActiveByIDs(gomock.Any(), gomock.Any()).
					Return(activeServices()[:1], nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				mockCatalog.EXPECT().
					GetActiveByIDs(gomock.Any(), gomock.Any()).
					Return(activeServices(), nil)

				mockRepo.EXPECT().
					CreateWithServices(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req())

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.NotEmpty(t, res.BookingNumber)
			assert.Equal(t, model.StatusPending, res.Status)
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCatalog := catalogMocks.NewMockCatalog(ctrl)
	mockPublisher := bookingMocks.NewMockPublisher(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockCatalog, mockPublisher, cfg, mockCache, mockOtel)

	booking := func(status string) model.Booking {
		return model.Booking{
			ID:            "booking-id-123",
			BookingNumber: "BK123456001",
			CustomerName:  "Jordan Reyes",
			CustomerEmail: "jordan@example.com",
			BookingDate:   timezone.Now(),
			BookingTime:   "10:00",
			GrandTotal:    105000,
			Status:        status,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
			},
		}
	}

	asyncExpectations := func() {
		mockPublisher.EXPECT().
			StatusChanged(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
	}

	tests := []struct {
		name      string
		from      string
		to        string
		setupMock func(from string)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "pending to confirmed",
			from: model.StatusPending,
			to:   model.StatusConfirmed,
			setupMock: func(from string) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(from), nil)

				mockRepo.EXPECT().
					GetServices(gomock.Any(), "booking-id-123").
					Return([]model.BookingService{
						{ServiceName: "Swedish Massage", ServicePrice: 60000},
					}, nil)

				mockRepo.EXPECT().
					UpdateWithNotification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ map[string]any, _ gDto.FilterGroup, notification notifModel.Notification) error {
						var payload map[string]any
						assert.NoError(t, json.Unmarshal(notification.Payload, &payload))
						assert.Equal(t, model.StatusConfirmed, payload["status"])
						assert.Len(t, payload["services"], 1)

						return nil
					})

				asyncExpectations()
			},
		},
		{
			name: "confirmed to completed",
			from: model.StatusConfirmed,
			to:   model.StatusCompleted,
			setupMock: func(from string) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(from), nil)

				mockRepo.EXPECT().
					GetServices(gomock.Any(), gomock.Any()).
					Return(nil, nil)

				mockRepo.EXPECT().
					UpdateWithNotification(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				asyncExpectations()
			},
		},
		{
			name: "pending cannot complete directly",
			from: model.StatusPending,
			to:   model.StatusCompleted,
			setupMock: func(from string) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(from), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "completed is terminal",
			from: model.StatusCompleted,
			to:   model.StatusCancelled,
			setupMock: func(from string) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(from), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "cancelled cannot be revived",
			from: model.StatusCancelled,
			to:   model.StatusConfirmed,
			setupMock: func(from string) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(from), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "booking not found",
			from: model.StatusPending,
			to:   model.StatusConfirmed,
			setupMock: func(string) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock(tt.from)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := svc.UpdateStatus(ctx, dto.UpdateStatusRequest{Status: tt.to}, "booking-id-123")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}
