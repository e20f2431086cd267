package documenttype

import (
	"context"
)

// Repository is the read side of the document type catalog. The catalog
// itself is maintained elsewhere; registration only resolves references.
type Repository interface {
	FetchByID(ctx context.Context, id uint64) (*DocumentType, error)
}
