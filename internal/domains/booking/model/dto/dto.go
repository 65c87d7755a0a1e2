package dto

import (
	"database/sql"
	"sharmoria/internal/domains/booking/model"
	"sharmoria/internal/domains/booking/pricing"
	catalogModel "sharmoria/internal/domains/catalog/model"
	"sharmoria/shared"
	"sharmoria/shared/constant"
	gDto "sharmoria/shared/dto"
	gModel "sharmoria/shared/model"
	"sharmoria/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type QuoteRequest struct {
	ServiceIDs []string `json:"service_ids" validate:"required,min=1,dive,uuid"`
	DistanceKM float64  `json:"distance_km" validate:"omitempty,gte=0"`
}

type QuoteResponse struct {
	TotalAmount   int64 `json:"total_amount"`
	TravelFee     int64 `json:"travel_fee"`
	GrandTotal    int64 `json:"grand_total"`
	MeetsMinimum  bool  `json:"meets_minimum"`
	AmountMissing int64 `json:"amount_missing,omitempty"`
}

func (r *QuoteResponse) FromQuote(quote pricing.Quote) {
	r.TotalAmount = quote.TotalAmount
	r.TravelFee = quote.TravelFee
	r.GrandTotal = quote.GrandTotal
	r.MeetsMinimum = quote.MeetsMinimum
	r.AmountMissing = quote.AmountMissing
}

type CreateBookingRequest struct {
	CustomerName  string   `json:"customer_name"  validate:"required,max=100"`
	CustomerEmail string   `json:"customer_email" validate:"required,email,max=100"`
	CustomerPhone string   `json:"customer_phone" validate:"required,max=20"`
	Address       string   `json:"address"        validate:"required,max=300"`
	DistanceKM    float64  `json:"distance_km"    validate:"omitempty,gte=0"`
	BookingDate   string   `json:"booking_date"   validate:"required"`
	BookingTime   string   `json:"booking_time"   validate:"required"`
	PaymentMethod string   `json:"payment_method" validate:"required,oneof=cash card"`
	Notes         string   `json:"notes"          validate:"omitempty,max=500"`
	ServiceIDs    []string `json:"service_ids"    validate:"required,min=1,dive,uuid"`
}

// ToModel snapshots the selected services and the computed price breakdown
// into persistence models. Callers pass services already resolved from the
// catalog.
func (c *CreateBookingRequest) ToModel(services []catalogModel.Service, user string) (model.Booking, []model.BookingService, error) {
	bookingDate, err := time.ParseInLocation(constant.BookingDateFormat, c.BookingDate, timezone.GetLocation())
	if err != nil {
		return model.Booking{}, nil, err
	}

	prices := make([]int64, len(services))
	for i, svc := range services {
		prices[i] = svc.Price
	}

	quote := pricing.NewQuote(prices, c.DistanceKM)

	now := timezone.Now()
	meta := gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}

	booking := model.Booking{
		ID:            uuid.NewString(),
		BookingNumber: pricing.GenerateBookingNumber(),
		CustomerName:  c.CustomerName,
		CustomerEmail: c.CustomerEmail,
		CustomerPhone: c.CustomerPhone,
		Address:       c.Address,
		DistanceKM:    c.DistanceKM,
		BookingDate:   bookingDate,
		BookingTime:   c.BookingTime,
		TotalAmount:   quote.TotalAmount,
		TravelFee:     quote.TravelFee,
		GrandTotal:    quote.GrandTotal,
		PaymentMethod: c.PaymentMethod,
		Notes:         sql.NullString{String: c.Notes, Valid: c.Notes != ""},
		Status:        model.StatusPending,
		Metadata:      meta,
	}

	items := make([]model.BookingService, len(services))
	for i, svc := range services {
		items[i] = model.BookingService{
			ID:              uuid.NewString(),
			BookingID:       booking.ID,
			ServiceID:       svc.ID,
			ServiceName:     svc.Name,
			ServicePrice:    svc.Price,
			DurationMinutes: svc.DurationMinutes,
			Metadata:        meta,
		}
	}

	return booking, items, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type BookingServiceResponse struct {
	ServiceID       string `json:"service_id"`
	ServiceName     string `json:"service_name"`
	ServicePrice    int64  `json:"service_price"`
	DurationMinutes int    `json:"duration_minutes"`
}

type BookingResponse struct {
	ID            string                   `json:"id"`
	BookingNumber string                   `json:"booking_number"`
	CustomerName  string                   `json:"customer_name"`
	CustomerEmail string                   `json:"customer_email"`
	CustomerPhone string                   `json:"customer_phone"`
	Address       string                   `json:"address"`
	DistanceKM    float64                  `json:"distance_km"`
	BookingDate   string                   `json:"booking_date"`
	BookingTime   string                   `json:"booking_time"`
	TotalAmount   int64                    `json:"total_amount"`
	TravelFee     int64                    `json:"travel_fee"`
	GrandTotal    int64                    `json:"grand_total"`
	PaymentMethod string                   `json:"payment_method"`
	Notes         string                   `json:"notes,omitempty"`
	Status        string                   `json:"status"`
	Services      []BookingServiceResponse `json:"services,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking, items []model.BookingService) {
	r.ID = mod.ID
	r.BookingNumber = mod.BookingNumber
	r.CustomerName = mod.CustomerName
	r.CustomerEmail = mod.CustomerEmail
	r.CustomerPhone = mod.CustomerPhone
	r.Address = mod.Address
	r.DistanceKM = mod.DistanceKM
	r.BookingDate = mod.BookingDate.Format(constant.BookingDateFormat)
	r.BookingTime = mod.BookingTime
	r.TotalAmount = mod.TotalAmount
	r.TravelFee = mod.TravelFee
	r.GrandTotal = mod.GrandTotal
	r.PaymentMethod = mod.PaymentMethod
	r.Notes = mod.Notes.String
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)

	r.Services = make([]BookingServiceResponse, len(items))
	for i, item := range items {
		r.Services[i] = BookingServiceResponse{
			ServiceID:       item.ServiceID,
			ServiceName:     item.ServiceName,
			ServicePrice:    item.ServicePrice,
			DurationMinutes: item.DurationMinutes,
		}
	}
}

type CreateBookingResponse struct {
	ID            string `json:"id"`
	BookingNumber string `json:"booking_number"`
	GrandTotal    int64  `json:"grand_total"`
	Status        string `json:"status"`
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod, nil)
	}
}
