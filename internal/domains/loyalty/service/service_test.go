package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"sharmoria/config"
	"sharmoria/infras/otel/mocks"
	bookingEvent "sharmoria/internal/domains/booking/event"
	bookingModel "sharmoria/internal/domains/booking/model"
	loyaltyMocks "sharmoria/internal/domains/loyalty/mocks"
	"sharmoria/internal/domains/loyalty/model"
	"sharmoria/internal/domains/loyalty/service"
	"sharmoria/shared/failure"
	gModel "sharmoria/shared/model"
	"sharmoria/shared/timezone"
)

func completedEvent(grandTotal int64) bookingEvent.BookingEvent {
	return bookingEvent.BookingEvent{
		Type:           bookingEvent.TypeBookingStatusChanged,
		BookingID:      "booking-id-123",
		BookingNumber:  "BK123456001",
		CustomerEmail:  "jordan@example.com",
		Status:         bookingModel.StatusCompleted,
		PreviousStatus: bookingModel.StatusConfirmed,
		GrandTotal:     grandTotal,
		OccurredAt:     timezone.Now(),
	}
}

func TestLoyaltyService_HandleBookingEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := loyaltyMocks.NewMockLoyalty(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	t.Run("new customer earns points", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Customer{}, nil)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, customer model.Customer) error {
				assert.Equal(t, "jordan@example.com", customer.Email)
				assert.Equal(t, int64(1050), customer.Points)
				assert.Equal(t, int64(105000), customer.TotalSpent)
				assert.Equal(t, 1, customer.BookingsCompleted)

				return nil
			})

		err := svc.HandleBookingEvent(context.Background(), completedEvent(105000))

		assert.NoError(t, err)
	})

	t.Run("existing customer accumulates", func(t *testing.T) {
		existing := model.Customer{
			ID:                "customer-id-123",
			Email:             "jordan@example.com",
			Points:            500,
			TotalSpent:        50000,
			BookingsCompleted: 1,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
			},
		}

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existing, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
				assert.Equal(t, int64(1100), req[model.FieldPoints])
				assert.Equal(t, int64(110000), req[model.FieldTotalSpent])
				assert.Equal(t, 2, req[model.FieldBookingsCompleted])

				return nil
			})

		err := svc.HandleBookingEvent(context.Background(), completedEvent(60000))

		assert.NoError(t, err)
	})

	t.Run("non-completed status ignored", func(t *testing.T) {
		evt := completedEvent(60000)
		evt.Status = bookingModel.StatusConfirmed

		err := svc.HandleBookingEvent(context.Background(), evt)

		assert.NoError(t, err)
	})

	t.Run("created event ignored", func(t *testing.T) {
		evt := completedEvent(60000)
		evt.Type = bookingEvent.TypeBookingCreated

		err := svc.HandleBookingEvent(context.Background(), evt)

		assert.NoError(t, err)
	})

	t.Run("missing email ignored", func(t *testing.T) {
		evt := completedEvent(60000)
		evt.CustomerEmail = ""

		err := svc.HandleBookingEvent(context.Background(), evt)

		assert.NoError(t, err)
	})
}

func TestLoyaltyService_GetByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := loyaltyMocks.NewMockLoyalty(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	t.Run("existing customer", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Customer{
				ID:     "customer-id-123",
				Email:  "jordan@example.com",
				Points: 1050,
			}, nil)

		res, err := svc.GetByEmail(context.Background(), "jordan@example.com")

		assert.NoError(t, err)
		assert.Equal(t, int64(1050), res.Points)
	})

	t.Run("unknown customer", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Customer{}, nil)

		_, err := svc.GetByEmail(context.Background(), "nobody@example.com")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestPointsFor(t *testing.T) {
	assert.Equal(t, int64(0), model.PointsFor(0))
	assert.Equal(t, int64(0), model.PointsFor(99))
	assert.Equal(t, int64(1), model.PointsFor(100))
	assert.Equal(t, int64(1050), model.PointsFor(105000))
}
