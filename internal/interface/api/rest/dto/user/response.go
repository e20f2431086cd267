package user

import (
	"github.com/google/uuid"
)

type (
	User struct {
		UUID              uuid.UUID `json:"uuid"`
		Email             string    `json:"email"`
		Names             string    `json:"names"`
		LastNames         string    `json:"last_names"`
		BirthDate         string    `json:"birth_date,omitempty"`
		Phone             string    `json:"phone"`
		Role              string    `json:"role"`
		DocumentTypeID    *uint64   `json:"document_type_id,omitempty"`
		DocumentNumber    string    `json:"document_number,omitempty"`
		DocumentIssueDate string    `json:"document_issue_date,omitempty"`
		IsConfirmed       bool      `json:"is_confirmed"`
		IsActive          bool      `json:"is_active"`
	}
	Users        []User
	ResponseData struct {
		Data Users `json:"data"`
	}
)
