package user

import (
	"context"
	"time"
)

// Repository is the user directory. The storage layer owns email
// uniqueness; confirmation state transitions are single-row atomic.
type Repository interface {
	FetchUserByUUID(ctx context.Context, uuid UUID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	// UpsertConfirmationCode creates a placeholder account for the email if
	// none exists and stores a fresh code, overwriting any previous one.
	UpsertConfirmationCode(ctx context.Context, email, code string, issuedAt time.Time) error
	// ConfirmByCode atomically clears the stored code and marks the account
	// confirmed, but only when the code matches and was issued after
	// notBefore. Returns nil when nothing matched.
	ConfirmByCode(ctx context.Context, email, code string, notBefore time.Time) (*User, error)
	// CompleteRegistration persists the full profile and activates the
	// account. Fails with ErrEmailAlreadyExists when the email is already
	// bound to an active account; the existing account is left untouched.
	CompleteRegistration(ctx context.Context, req User) (*User, error)
}
