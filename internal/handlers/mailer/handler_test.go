package mailer

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sharmoria/infras/otel/mocks"
)

func TestBookingCreatedTemplate(t *testing.T) {
	data := map[string]any{
		"customer_name":  "Jordan Reyes",
		"booking_number": "BK123456001",
		"booking_date":   "2030-05-14",
		"booking_time":   "10:00",
		"services": []map[string]any{
			{"name": "Swedish Massage", "price": 60000},
			{"name": "Facial Treatment", "price": 45000},
		},
		"total_amount":    105000,
		"travel_fee":      4500,
		"grand_total":     109500,
		"service_address": "12 Orchid Lane",
		"payment_method":  "card",
	}

	var body strings.Builder
	assert.NoError(t, messageTemplates["booking_created"].Execute(&body, data))

	rendered := body.String()
	assert.Contains(t, rendered, "Booking number: BK123456001")
	assert.Contains(t, rendered, "Address: 12 Orchid Lane")
	assert.Contains(t, rendered, "- Swedish Massage: 60000")
	assert.Contains(t, rendered, "- Facial Treatment: 45000")
	assert.Contains(t, rendered, "Subtotal: 105000")
	assert.Contains(t, rendered, "Travel fee: 4500")
	assert.Contains(t, rendered, "Total: 109500")
	assert.Contains(t, rendered, "Payment: card")
}

func TestSend(t *testing.T) {
	handler := New(mocks.NewOtel())

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name: "booking created rendered",
			body: `{
				"recipient": "jordan@example.com",
				"kind": "booking_created",
				"payload": {
					"customer_name": "Jordan Reyes",
					"booking_number": "BK123456001",
					"booking_date": "2030-05-14",
					"booking_time": "10:00",
					"services": [{"name": "Swedish Massage", "price": 60000}],
					"total_amount": 60000,
					"travel_fee": 0,
					"grand_total": 60000,
					"service_address": "12 Orchid Lane",
					"payment_method": "cash"
				}
			}`,
			wantCode: http.StatusOK,
		},
		{
			name: "unknown kind rejected",
			body: `{
				"recipient": "jordan@example.com",
				"kind": "unknown_kind",
				"payload": {"customer_name": "Jordan Reyes"}
			}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "payload must be an object",
			body: `{
				"recipient": "jordan@example.com",
				"kind": "booking_created",
				"payload": "not-an-object"
			}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/v1/mailer/send", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()

			handler.Send(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}
