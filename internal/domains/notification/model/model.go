package model

import (
	"database/sql"
	"encoding/json"
	"sharmoria/shared/model"
)

const (
	TableName  = "notification_outbox"
	EntityName = "notification"

	FieldID          = "id"
	FieldBookingID   = "booking_id"
	FieldKind        = "kind"
	FieldRecipient   = "recipient"
	FieldPayload     = "payload"
	FieldStatus      = "status"
	FieldAttempts    = "attempts"
	FieldLastError   = "last_error"
	FieldDeliveredAt = "delivered_at"
)

const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

const (
	KindBookingCreated       = "booking_created"
	KindBookingStatusChanged = "booking_status_changed"
	KindContactReceived      = "contact_received"
	KindGiftCertificate      = "gift_certificate"
)

// Notification is an outbox row. It is written in the same transaction as
// the business change it announces and delivered later by the dispatcher, so
// a mailer outage can never lose a message.
type Notification struct {
	ID          string          `db:"id"`
	BookingID   sql.NullString  `db:"booking_id"`
	Kind        string          `db:"kind"`
	Recipient   string          `db:"recipient"`
	Payload     json.RawMessage `db:"payload"`
	Status      string          `db:"status"`
	Attempts    int             `db:"attempts"`
	LastError   sql.NullString  `db:"last_error"`
	DeliveredAt sql.NullTime    `db:"delivered_at"`
	model.Metadata
}
