package service_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"sharmoria/config"
	"sharmoria/infras/otel/mocks"
	notifMocks "sharmoria/internal/domains/notification/mocks"
	"sharmoria/internal/domains/notification/model"
	"sharmoria/internal/domains/notification/service"
	gModel "sharmoria/shared/model"
	"sharmoria/shared/timezone"
)

func pendingNotification(attempts int) model.Notification {
	now := timezone.Now()

	return model.Notification{
		ID:        "notification-id-123",
		Kind:      model.KindBookingCreated,
		Recipient: "jordan@example.com",
		Payload:   []byte(`{"booking_number":"BK123456001"}`),
		Status:    model.StatusPending,
		Attempts:  attempts,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

func TestDispatcher_DispatchBatch(t *testing.T) {
	t.Run("delivers pending notifications", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var received []byte

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received, _ = io.ReadAll(r.Body)

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		mockRepo := notifMocks.NewMockNotification(ctrl)
		mockOtel := mocks.NewOtel()

		cfg := &config.Config{}
		cfg.External.Mailer.Endpoint = server.URL
		cfg.Notifier.MaxAttempts = 3

		dispatcher := service.NewDispatcher(mockRepo, cfg, mockOtel)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Notification{pendingNotification(0)}, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
				assert.Equal(t, model.StatusSent, req[model.FieldStatus])
				assert.Equal(t, 1, req[model.FieldAttempts])

				return nil
			})

		sent, err := dispatcher.DispatchBatch(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Contains(t, string(received), "jordan@example.com")
		assert.Contains(t, string(received), model.KindBookingCreated)
	})

	t.Run("failure keeps notification pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		mockRepo := notifMocks.NewMockNotification(ctrl)
		mockOtel := mocks.NewOtel()

		cfg := &config.Config{}
		cfg.External.Mailer.Endpoint = server.URL
		cfg.Notifier.MaxAttempts = 3

		dispatcher := service.NewDispatcher(mockRepo, cfg, mockOtel)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Notification{pendingNotification(0)}, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
				assert.Equal(t, model.StatusPending, req[model.FieldStatus])
				assert.Equal(t, 1, req[model.FieldAttempts])

				return nil
			})

		sent, err := dispatcher.DispatchBatch(context.Background())

		assert.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("exhausted attempts mark notification failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		mockRepo := notifMocks.NewMockNotification(ctrl)
		mockOtel := mocks.NewOtel()

		cfg := &config.Config{}
		cfg.External.Mailer.Endpoint = server.URL
		cfg.Notifier.MaxAttempts = 3

		dispatcher := service.NewDispatcher(mockRepo, cfg, mockOtel)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Notification{pendingNotification(2)}, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
				assert.Equal(t, model.StatusFailed, req[model.FieldStatus])
				assert.Equal(t, 3, req[model.FieldAttempts])

				return nil
			})

		sent, err := dispatcher.DispatchBatch(context.Background())

		assert.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("empty batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := notifMocks.NewMockNotification(ctrl)
		mockOtel := mocks.NewOtel()

		cfg := &config.Config{}
		cfg.External.Mailer.Endpoint = "http://localhost:0"

		dispatcher := service.NewDispatcher(mockRepo, cfg, mockOtel)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		sent, err := dispatcher.DispatchBatch(context.Background())

		assert.NoError(t, err)
		assert.Zero(t, sent)
	})
}
