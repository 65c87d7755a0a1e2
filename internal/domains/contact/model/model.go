package model

import (
	"sharmoria/shared/model"
)

const (
	TableName  = "contacts"
	EntityName = "contact"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldMessage = "message"
	FieldStatus  = "status"
)

// Contact statuses only move forward: new messages get read, read messages
// get responded to.
const (
	StatusNew       = "new"
	StatusRead      = "read"
	StatusResponded = "responded"
)

var statusRank = map[string]int{
	StatusNew:       0,
	StatusRead:      1,
	StatusResponded: 2,
}

func IsValidStatus(s string) bool {
	_, ok := statusRank[s]

	return ok
}

func CanTransition(from, to string) bool {
	fromRank, fromOK := statusRank[from]
	toRank, toOK := statusRank[to]

	return fromOK && toOK && toRank > fromRank
}

type Contact struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Phone   string `db:"phone"`
	Message string `db:"message"`
	Status  string `db:"status"`
	model.Metadata
}
