package model

import (
	"database/sql"
	"sharmoria/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldBookingNumber = "booking_number"
	FieldCustomerName  = "customer_name"
	FieldCustomerEmail = "customer_email"
	FieldCustomerPhone = "customer_phone"
	FieldAddress       = "address"
	FieldDistanceKM    = "distance_km"
	FieldBookingDate   = "booking_date"
	FieldBookingTime   = "booking_time"
	FieldTotalAmount   = "total_amount"
	FieldTravelFee     = "travel_fee"
	FieldGrandTotal    = "grand_total"
	FieldPaymentMethod = "payment_method"
	FieldNotes         = "notes"
	FieldStatus        = "status"
)

const (
	ServiceTableName  = "booking_services"
	ServiceEntityName = "booking_service"

	FieldServiceID        = "service_id"
	FieldServiceBookingID = "booking_id"
	FieldServiceName      = "service_name"
	FieldServicePrice     = "service_price"
	FieldServiceDuration  = "duration_minutes"
)

// Booking statuses form a closed state machine: pending bookings may be
// confirmed or cancelled, confirmed ones completed or cancelled. Completed
// and cancelled are terminal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Payment methods settled with the therapist on site.
const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

var statusTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// IsValidStatus reports whether s is a known booking status.
func IsValidStatus(s string) bool {
	_, ok := statusTransitions[s]

	return ok
}

// CanTransition reports whether a booking may move from one status to
// another.
func CanTransition(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

type Booking struct {
	ID            string         `db:"id"`
	BookingNumber string         `db:"booking_number"`
	CustomerName  string         `db:"customer_name"`
	CustomerEmail string         `db:"customer_email"`
	CustomerPhone string         `db:"customer_phone"`
	Address       string         `db:"address"`
	DistanceKM    float64        `db:"distance_km"`
	BookingDate   time.Time      `db:"booking_date"`
	BookingTime   string         `db:"booking_time"`
	TotalAmount   int64          `db:"total_amount"`
	TravelFee     int64          `db:"travel_fee"`
	GrandTotal    int64          `db:"grand_total"`
	PaymentMethod string         `db:"payment_method"`
	Notes         sql.NullString `db:"notes"`
	Status        string         `db:"status"`
	model.Metadata
}

// BookingService is a line item: the service snapshot taken at booking time,
// so later catalog edits never rewrite history.
type BookingService struct {
	ID              string `db:"id"`
	BookingID       string `db:"booking_id"`
	ServiceID       string `db:"service_id"`
	ServiceName     string `db:"service_name"`
	ServicePrice    int64  `db:"service_price"`
	DurationMinutes int    `db:"duration_minutes"`
	model.Metadata
}
