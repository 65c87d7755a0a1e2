package model

import (
	"sharmoria/shared/model"
)

const (
	TableName  = "loyalty_customers"
	EntityName = "loyalty_customer"

	FieldID                = "id"
	FieldEmail             = "email"
	FieldPoints            = "points"
	FieldTotalSpent        = "total_spent"
	FieldBookingsCompleted = "bookings_completed"
)

// PointsPerUnit is how much spend earns one point, in minor currency units.
const PointsPerUnit int64 = 100

// Customer accumulates loyalty points keyed by email, since the funnel has
// no customer accounts.
type Customer struct {
	ID                 string `db:"id"`
	Email              string `db:"email"`
	Points             int64  `db:"points"`
	TotalSpent         int64  `db:"total_spent"`
	BookingsCompleted  int    `db:"bookings_completed"`
	model.Metadata
}

// PointsFor converts a completed booking's grand total into points.
func PointsFor(grandTotal int64) int64 {
	return grandTotal / PointsPerUnit
}
