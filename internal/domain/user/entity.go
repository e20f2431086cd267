package user

import (
	"time"

	"github.com/google/uuid"
)

// Role is a single tagged value instead of the historical pair of
// isTourist/isAgency booleans, so "both at once" cannot be stored.
type Role string

const (
	RoleNone    Role = "none"
	RoleTourist Role = "tourist"
	RoleAgency  Role = "agency"
)

type (
	ID   uint64
	UUID = uuid.UUID
	User struct {
		UUID         UUID
		Email        string
		PasswordHash *string
		Role         Role
		Names        string
		LastNames    string
		BirthDate    *time.Time
		Phone        string

		DocumentTypeID    *uint64
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
