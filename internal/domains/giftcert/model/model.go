package model

import (
	"database/sql"
	"sharmoria/shared/model"
	"time"
)

const (
	TableName  = "gift_certificates"
	EntityName = "gift_certificate"

	FieldID             = "id"
	FieldCode           = "code"
	FieldAmount         = "amount"
	FieldPurchaserName  = "purchaser_name"
	FieldPurchaserEmail = "purchaser_email"
	FieldRecipientName  = "recipient_name"
	FieldRecipientEmail = "recipient_email"
	FieldMessage        = "message"
	FieldStatus         = "status"
	FieldExpiresAt      = "expires_at"
	FieldRedeemedAt     = "redeemed_at"
)

const (
	StatusActive   = "active"
	StatusRedeemed = "redeemed"
	StatusExpired  = "expired"
)

// ValidityMonths is how long a certificate stays redeemable after purchase.
const ValidityMonths = 12

type GiftCertificate struct {
	ID             string         `db:"id"`
	Code           string         `db:"code"`
	Amount         int64          `db:"amount"`
	PurchaserName  string         `db:"purchaser_name"`
	PurchaserEmail string         `db:"purchaser_email"`
	RecipientName  string         `db:"recipient_name"`
	RecipientEmail string         `db:"recipient_email"`
	Message        sql.NullString `db:"message"`
	Status         string         `db:"status"`
	ExpiresAt      time.Time      `db:"expires_at"`
	RedeemedAt     sql.NullTime   `db:"redeemed_at"`
	model.Metadata
}

// IsExpired reports whether the certificate has passed its expiry, regardless
// of the stored status.
func (g *GiftCertificate) IsExpired(now time.Time) bool {
	return now.After(g.ExpiresAt)
}
