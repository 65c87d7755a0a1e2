package model

import (
	"database/sql"
	"sharmoria/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldFullName  = "full_name"
	FieldIsActive  = "is_active"
	FieldLastLogin = "last_login"
)

// User is a staff account for the admin dashboard. Customers never have
// accounts; the funnel is anonymous.
type User struct {
	ID        string       `db:"id"`
	Email     string       `db:"email"`
	Password  string       `db:"password"`
	Role      string       `db:"role"`
	FullName  string       `db:"full_name"`
	IsActive  bool         `db:"is_active"`
	LastLogin sql.NullTime `db:"last_login"`
	model.Metadata
}
