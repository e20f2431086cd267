package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"tourist-registry-api/internal/domain/user"
	"tourist-registry-api/internal/infrastructure/db/postgres"
)

var ErrEmailAlreadyExists = errors.New("email already exists")

// DB is the slice of pgxpool.Pool the repository needs; pgxmock satisfies
// it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Repository struct {
	db DB
}

func NewRepository(db DB) user.Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.UUID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Names,
		&u.LastNames,
		&u.BirthDate,
		&u.Phone,

		&u.DocumentTypeID,
		&u.DocumentNumber,
		&u.DocumentIssueDate,

		&u.AcceptPolicy,
		&u.AcceptDataProcessing,

		&u.ConfirmationCode,
		&u.CodeIssuedAt,
		&u.IsConfirmed,
		&u.IsActive,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *Repository) FetchUserByUUID(ctx context.Context, uuid user.UUID) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByUUID, uuid.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, SelectUserByEmail, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpsertConfirmationCode(ctx context.Context, email, code string, issuedAt time.Time) error {
	_, err := r.db.Exec(ctx, UpsertConfirmationCode, email, code, issuedAt)
	return err
}

func (r *Repository) ConfirmByCode(ctx context.Context, email, code string, notBefore time.Time) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, ConfirmByCode, email, code, notBefore))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) CompleteRegistration(ctx context.Context, req user.User) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(
		ctx,
		CompleteRegistration,
		req.Email,
		req.PasswordHash,
		string(req.Role),
		req.Names,
		req.LastNames,
		req.BirthDate,
		req.Phone,
		toDocTypeParam(req),
		req.DocumentNumber,
		req.DocumentIssueDate,
		req.AcceptPolicy,
		req.AcceptDataProcessing,
	))
	if err != nil {
		// no row back means the conflict target is an active account
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmailAlreadyExists
		}
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), nil
}
