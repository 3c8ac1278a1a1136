package model

import "time"

type ContactType string

const (
	ContactEmail  ContactType = "email"
	ContactMobile ContactType = "mobile"
)

func (t ContactType) Valid() bool {
	return t == ContactEmail || t == ContactMobile
}

// Contact is a public contact/helpline entry. Helpline numbers are contacts
// with type "mobile".
type Contact struct {
	ID           int64       `db:"id" json:"id"`
	ContactType  ContactType `db:"contact_type" json:"contact_type"`
	ContactValue string      `db:"contact_value" json:"contact_value"`
	Description  string      `db:"description" json:"description"`
	IsActive     bool        `db:"is_active" json:"is_active"`
	CreatedAt    time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at" json:"updated_at"`
}

type CreateContactRequest struct {
	ContactType  string `json:"contact_type" binding:"required,oneof=email mobile"`
	ContactValue string `json:"contact_value" binding:"required"`
	Description  string `json:"description"`
}

type UpdateContactRequest struct {
	ContactType  *string `json:"contact_type"`
	ContactValue *string `json:"contact_value"`
	Description  *string `json:"description"`
	IsActive     *bool   `json:"is_active"`
}
