package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sharmoria/internal/domains/booking/model"
	"sharmoria/internal/domains/booking/model/dto"
	catalogModel "sharmoria/internal/domains/catalog/model"
	"sharmoria/shared/validator"
)

const bookingBody = `{
	"customer_name": "Jordan Reyes",
	"customer_email": "jordan@example.com",
	"customer_phone": "+6281234567890",
	"address": "12 Orchid Lane",
	"distance_km": 8,
	"booking_date": "2030-05-14",
	"booking_time": "10:00",
	"payment_method": "%s",
	"service_ids": ["3f1c8f6a-5b2d-4e9c-8a71-0d2f4b6c8e10"]
}`

func bookingRequest(t *testing.T, paymentMethod string) dto.CreateBookingRequest {
	t.Helper()

	body := strings.Replace(bookingBody, "%s", paymentMethod, 1)

	req := dto.CreateBookingRequest{}
	err := validator.Validate(strings.NewReader(body), &req)
	assert.NoError(t, err)

	return req
}

func TestCreateBookingRequestPaymentMethod(t *testing.T) {
	req := bookingRequest(t, model.PaymentMethodCard)
	assert.Equal(t, model.PaymentMethodCard, req.PaymentMethod)

	services := []catalogModel.Service{
		{
			ID:              "3f1c8f6a-5b2d-4e9c-8a71-0d2f4b6c8e10",
			Name:            "Swedish Massage",
			DurationMinutes: 60,
			Price:           60000,
			IsActive:        true,
		},
	}

	booking, items, err := req.ToModel(services, "")
	assert.NoError(t, err)
	assert.Equal(t, model.PaymentMethodCard, booking.PaymentMethod)
	assert.Len(t, items, 1)

	res := dto.BookingResponse{}
	res.FromModel(booking, items)
	assert.Equal(t, model.PaymentMethodCard, res.PaymentMethod)
}

func TestCreateBookingRequestPaymentMethodValidation(t *testing.T) {
	tests := []struct {
		name          string
		paymentMethod string
		wantErr       bool
	}{
		{name: "cash accepted", paymentMethod: model.PaymentMethodCash},
		{name: "card accepted", paymentMethod: model.PaymentMethodCard},
		{name: "unknown method rejected", paymentMethod: "crypto", wantErr: true},
		{name: "missing method rejected", paymentMethod: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.Replace(bookingBody, "%s", tt.paymentMethod, 1)

			req := dto.CreateBookingRequest{}
			err := validator.Validate(strings.NewReader(body), &req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}
