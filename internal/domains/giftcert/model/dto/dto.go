package dto

import (
	"database/sql"
	"fmt"
	"math/rand"
	"sharmoria/internal/domains/giftcert/model"
	"sharmoria/shared"
	"sharmoria/shared/constant"
	gDto "sharmoria/shared/dto"
	gModel "sharmoria/shared/model"
	"sharmoria/shared/timezone"

	"github.com/google/uuid"
)

const codePrefix = "GC"

type PurchaseRequest struct {
	Amount         int64  `json:"amount"          validate:"required,gt=0"`
	PurchaserName  string `json:"purchaser_name"  validate:"required,max=100"`
	PurchaserEmail string `json:"purchaser_email" validate:"required,email,max=100"`
	RecipientName  string `json:"recipient_name"  validate:"required,max=100"`
	RecipientEmail string `json:"recipient_email" validate:"required,email,max=100"`
	Message        string `json:"message"         validate:"omitempty,max=500"`
}

func (p *PurchaseRequest) ToModel() model.GiftCertificate {
	now := timezone.Now()

	return model.GiftCertificate{
		ID:             uuid.NewString(),
		Code:           GenerateCode(),
		Amount:         p.Amount,
		PurchaserName:  p.PurchaserName,
		PurchaserEmail: p.PurchaserEmail,
		RecipientName:  p.RecipientName,
		RecipientEmail: p.RecipientEmail,
		Message:        sql.NullString{String: p.Message, Valid: p.Message != ""},
		Status:         model.StatusActive,
		ExpiresAt:      now.AddDate(0, model.ValidityMonths, 0),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

// GenerateCode follows the same shape as booking numbers, with its own
// prefix.
func GenerateCode() string {
	millis := timezone.Now().UnixMilli()

	return fmt.Sprintf("%s%06d%03d", codePrefix, millis%1000000, rand.Intn(1000)) //nolint:gosec
}

type RedeemRequest struct {
	Code string `json:"code" validate:"required,max=20"`
}

type GiftCertificateResponse struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	Amount         int64  `json:"amount"`
	PurchaserName  string `json:"purchaser_name"`
	PurchaserEmail string `json:"purchaser_email"`
	RecipientName  string `json:"recipient_name"`
	RecipientEmail string `json:"recipient_email"`
	Message        string `json:"message,omitempty"`
	Status         string `json:"status"`
	ExpiresAt      string `json:"expires_at"`
	RedeemedAt     string `json:"redeemed_at,omitempty"`
	gDto.Metadata
}

func (r *GiftCertificateResponse) FromModel(mod model.GiftCertificate) {
	r.ID = mod.ID
	r.Code = mod.Code
	r.Amount = mod.Amount
	r.PurchaserName = mod.PurchaserName
	r.PurchaserEmail = mod.PurchaserEmail
	r.RecipientName = mod.RecipientName
	r.RecipientEmail = mod.RecipientEmail
	r.Message = mod.Message.String
	r.Status = mod.Status
	r.ExpiresAt = timezone.Format(mod.ExpiresAt, constant.DateFormat)

	if mod.RedeemedAt.Valid {
		r.RedeemedAt = timezone.Format(mod.RedeemedAt.Time, constant.DateFormat)
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetGiftCertificatesResponse struct {
	GiftCertificates []GiftCertificateResponse `json:"gift_certificates"`
	TotalPage        int                       `json:"total_page"`
	TotalData        int                       `json:"total_data"`
}

func (r *GetGiftCertificatesResponse) FromModels(models []model.GiftCertificate, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.GiftCertificates = make([]GiftCertificateResponse, len(models))
	for i, mod := range models {
		r.GiftCertificates[i].FromModel(mod)
	}
}
