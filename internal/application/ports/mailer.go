package ports

import (
	"context"
)

type Mailer interface {
	SendConfirmationCode(ctx context.Context, to, code string) error
}
