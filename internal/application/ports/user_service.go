package ports

import (
	"context"

	"tourist-registry-api/internal/domain/user"
)

type UserService interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByUUID(ctx context.Context, uuid user.UUID) (*user.User, error)
}
