package dto

import (
	"mime/multipart"
	"sharmoria/internal/domains/catalog/model"
	"sharmoria/shared"
	gDto "sharmoria/shared/dto"
	gModel "sharmoria/shared/model"
	"sharmoria/shared/timezone"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	Name            string `json:"name"             validate:"required,max=150"`
	Description     string `json:"description"      validate:"omitempty"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
	Price           int64  `json:"price"            validate:"required,gt=0"`
	Category        string `json:"category"         validate:"omitempty,max=50"`
	ImageURL        string `json:"image_url"        validate:"omitempty,url"`
	IsActive        *bool  `json:"is_active"        validate:"omitempty"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	return model.Service{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Description:     c.Description,
		DurationMinutes: c.DurationMinutes,
		Price:           c.Price,
		Category:        c.Category,
		ImageURL:        c.ImageURL,
		IsActive:        active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateServiceRequest struct {
	Name            string `db:"name"             json:"name"             validate:"omitempty,max=150"`
	Description     string `db:"description"      json:"description"      validate:"omitempty"`
	DurationMinutes int    `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,gt=0"`
	Price           int64  `db:"price"            json:"price"            validate:"omitempty,gt=0"`
	Category        string `db:"category"         json:"category"         validate:"omitempty,max=50"`
	ImageURL        string `db:"image_url"        json:"image_url"        validate:"omitempty,url"`
	IsActive        *bool  `db:"is_active"        json:"is_active"        validate:"omitempty"`
}

type UploadImageRequest struct {
	File *multipart.FileHeader `form:"file" validate:"required,mimetypes=image/png image/jpeg image/webp,maxfilesize=5"`
}

type UploadImageResponse struct {
	URL string `json:"url"`
}

type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           int64  `json:"price"`
	Category        string `json:"category"`
	ImageURL        string `json:"image_url"`
	IsActive        bool   `json:"is_active"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(mod model.Service) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Description = mod.Description
	r.DurationMinutes = mod.DurationMinutes
	r.Price = mod.Price
	r.Category = mod.Category
	r.ImageURL = mod.ImageURL
	r.IsActive = mod.IsActive
	r.Metadata.FromModel(mod.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
