package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	User struct {
		ID           uint64
		UUID         uuid.UUID
		Email        string
		PasswordHash *string
		Role         string
		Names        string
		LastNames    string
		BirthDate    *time.Time
		Phone        string

		DocumentTypeID    *int64
		DocumentNumber    string
		DocumentIssueDate *time.Time

		AcceptPolicy         bool
		AcceptDataProcessing bool

		ConfirmationCode *string
		CodeIssuedAt     *time.Time
		IsConfirmed      bool
		IsActive         bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
