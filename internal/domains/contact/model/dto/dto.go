package dto

import (
	"sharmoria/internal/domains/contact/model"
	"sharmoria/shared"
	gDto "sharmoria/shared/dto"
	gModel "sharmoria/shared/model"
	"sharmoria/shared/timezone"

	"github.com/google/uuid"
)

type CreateContactRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email,max=100"`
	Phone   string `json:"phone"   validate:"omitempty,max=20"`
	Message string `json:"message" validate:"required,max=2000"`
}

func (c *CreateContactRequest) ToModel() model.Contact {
	now := timezone.Now()

	return model.Contact{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Message: c.Message,
		Status:  model.StatusNew,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read responded"`
}

type ContactResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Status  string `json:"status"`
	gDto.Metadata
}

func (r *ContactResponse) FromModel(mod model.Contact) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Email = mod.Email
	r.Phone = mod.Phone
	r.Message = mod.Message
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
}

type GetContactsResponse struct {
	Contacts  []ContactResponse `json:"contacts"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetContactsResponse) FromModels(models []model.Contact, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Contacts = make([]ContactResponse, len(models))
	for i, mod := range models {
		r.Contacts[i].FromModel(mod)
	}
}
