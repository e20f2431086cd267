package ports

import (
	"context"
)

type Auth interface {
	// Login verifies credentials and issues a signed bearer token. Unknown
	// email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, error)
}
