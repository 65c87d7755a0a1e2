package dto

import (
	"sharmoria/internal/domains/loyalty/model"
	"sharmoria/shared"
	gDto "sharmoria/shared/dto"
)

type CustomerResponse struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	Points            int64  `json:"points"`
	TotalSpent        int64  `json:"total_spent"`
	BookingsCompleted int    `json:"bookings_completed"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(mod model.Customer) {
	r.ID = mod.ID
	r.Email = mod.Email
	r.Points = mod.Points
	r.TotalSpent = mod.TotalSpent
	r.BookingsCompleted = mod.BookingsCompleted
	r.Metadata.FromModel(mod.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
