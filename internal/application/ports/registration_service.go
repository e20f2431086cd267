package ports

import (
	"context"

	"tourist-registry-api/internal/domain/user"
)

type RegistrationService interface {
	// IssueConfirmationCode upserts the account, stores a fresh code and
	// emails it. Resending overwrites the previous code.
	IssueConfirmationCode(ctx context.Context, email string) error
	// VerifyConfirmationCode consumes the stored code: a matching code
	// confirms the account exactly once.
	VerifyConfirmationCode(ctx context.Context, email, code string) error
	// CompleteRegistration hashes the password, persists the full profile
	// and activates the account.
	CompleteRegistration(ctx context.Context, u user.User, password string) (*user.User, error)
}
