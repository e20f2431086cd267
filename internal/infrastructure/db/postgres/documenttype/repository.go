package documenttype

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"tourist-registry-api/internal/domain/documenttype"
	userDB "tourist-registry-api/internal/infrastructure/db/postgres/user"
)

const SelectDocumentTypeByID = `
	SELECT id, name, description
	FROM document_types
	WHERE id = $1
`

type Repository struct {
	db userDB.DB
}

func NewRepository(db userDB.DB) documenttype.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchByID(ctx context.Context, id uint64) (*documenttype.DocumentType, error) {
	dt := new(documenttype.DocumentType)
	err := r.db.QueryRow(ctx, SelectDocumentTypeByID, id).Scan(
		&dt.ID,
		&dt.Name,
		&dt.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return dt, nil
}
