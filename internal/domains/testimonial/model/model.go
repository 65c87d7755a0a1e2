package model

import (
	"sharmoria/shared/model"
)

const (
	TableName  = "testimonials"
	EntityName = "testimonial"

	FieldID         = "id"
	FieldName       = "name"
	FieldRating     = "rating"
	FieldComment    = "comment"
	FieldIsApproved = "is_approved"
)

// Testimonial submissions start unapproved and only show publicly once an
// admin approves them.
type Testimonial struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	Rating     int    `db:"rating"`
	Comment    string `db:"comment"`
	IsApproved bool   `db:"is_approved"`
	model.Metadata
}
