package dto

import (
	"sharmoria/internal/domains/testimonial/model"
	"sharmoria/shared"
	gDto "sharmoria/shared/dto"
	gModel "sharmoria/shared/model"
	"sharmoria/shared/timezone"

	"github.com/google/uuid"
)

type CreateTestimonialRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required,max=1000"`
}

func (c *CreateTestimonialRequest) ToModel() model.Testimonial {
	now := timezone.Now()

	return model.Testimonial{
		ID:         uuid.NewString(),
		Name:       c.Name,
		Rating:     c.Rating,
		Comment:    c.Comment,
		IsApproved: false,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

type ApproveTestimonialRequest struct {
	IsApproved *bool `json:"is_approved" validate:"required"`
}

type TestimonialResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	IsApproved bool   `json:"is_approved"`
	gDto.Metadata
}

func (r *TestimonialResponse) FromModel(mod model.Testimonial) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Rating = mod.Rating
	r.Comment = mod.Comment
	r.IsApproved = mod.IsApproved
	r.Metadata.FromModel(mod.Metadata)
}

type GetTestimonialsResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTestimonialsResponse) FromModels(models []model.Testimonial, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Testimonials = make([]TestimonialResponse, len(models))
	for i, mod := range models {
		r.Testimonials[i].FromModel(mod)
	}
}
