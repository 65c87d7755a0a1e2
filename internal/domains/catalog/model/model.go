package model

import (
	"sharmoria/shared/model"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID              = "id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldDurationMinutes = "duration_minutes"
	FieldPrice           = "price"
	FieldCategory        = "category"
	FieldImageURL        = "image_url"
	FieldIsActive        = "is_active"
)

// Service is a treatment offered in the funnel. Price is stored in minor
// currency units.
type Service struct {
	ID              string `db:"id"`
	Name            string `db:"name"`
	Description     string `db:"description"`
	DurationMinutes int    `db:"duration_minutes"`
	Price           int64  `db:"price"`
	Category        string `db:"category"`
	ImageURL        string `db:"image_url"`
	IsActive        bool   `db:"is_active"`
	model.Metadata
}
