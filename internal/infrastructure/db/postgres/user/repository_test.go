package user

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "tourist-registry-api/internal/domain/user"
)

var userCols = []string{
	"id", "uuid", "email", "password_hash", "role", "names", "last_names",
	"birth_date", "phone", "document_type_id", "document_number",
	"document_issue_date", "accept_policy", "accept_data_processing",
	"confirmation_code", "code_issued_at", "is_confirmed", "is_active",
	"created_at", "updated_at",
}

func activeUserRow(id uuid.UUID, email string) *pgxmock.Rows {
	hash := "$2a$10$abcdefghijklmnopqrstuv"
	birth := time.Date(1993, 5, 20, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	return pgxmock.NewRows(userCols).AddRow(
		uint64(1), id, email, &hash, "tourist", "John", "Doe",
		&birth, "+33612345678", (*int64)(nil), "",
		(*time.Time)(nil), true, true,
		(*string)(nil), (*time.Time)(nil), true, true,
		now, now,
	)
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepository_FetchUserByEmail(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("row found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByEmail)).
			WithArgs("a@x.com").
			WillReturnRows(activeUserRow(id, "a@x.com"))

		repo := NewRepository(mock)
		u, err := repo.FetchUserByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, id, u.UUID)
		assert.Equal(t, domain.RoleTourist, u.Role)
		assert.True(t, u.IsActive)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row is not an error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByEmail)).
			WithArgs("ghost@x.com").
			WillReturnRows(pgxmock.NewRows(userCols))

		repo := NewRepository(mock)
		u, err := repo.FetchUserByEmail(ctx, "ghost@x.com")
		require.NoError(t, err)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error surfaces", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByEmail)).
			WithArgs("a@x.com").
			WillReturnError(errors.New("connection reset"))

		repo := NewRepository(mock)
		_, err := repo.FetchUserByEmail(ctx, "a@x.com")
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FetchUserByUUID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(SelectUserByUUID)).
		WithArgs(id.String()).
		WillReturnRows(activeUserRow(id, "a@x.com"))

	repo := NewRepository(mock)
	u, err := repo.FetchUserByUUID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "a@x.com", u.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpsertConfirmationCode(t *testing.T) {
	ctx := context.Background()
	issuedAt := time.Now().UTC()

	mock := newMock(t)
	mock.ExpectExec(regexp.QuoteMeta(UpsertConfirmationCode)).
		WithArgs("a@x.com", "123456", issuedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewRepository(mock)
	require.NoError(t, repo.UpsertConfirmationCode(ctx, "a@x.com", "123456", issuedAt))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ConfirmByCode(t *testing.T) {
	ctx := context.Background()
	notBefore := time.Now().UTC().Add(-15 * time.Minute)

	t.Run("match confirms", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(ConfirmByCode)).
			WithArgs("a@x.com", "123456", notBefore).
			WillReturnRows(activeUserRow(uuid.New(), "a@x.com"))

		repo := NewRepository(mock)
		u, err := repo.ConfirmByCode(ctx, "a@x.com", "123456", notBefore)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.True(t, u.IsConfirmed)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no match returns nil without error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(ConfirmByCode)).
			WithArgs("a@x.com", "000000", notBefore).
			WillReturnRows(pgxmock.NewRows(userCols))

		repo := NewRepository(mock)
		u, err := repo.ConfirmByCode(ctx, "a@x.com", "000000", notBefore)
		require.NoError(t, err)
		assert.Nil(t, u)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CompleteRegistration(t *testing.T) {
	ctx := context.Background()
	hash := "$2a$10$abcdefghijklmnopqrstuv"
	birth := time.Date(1993, 5, 20, 0, 0, 0, 0, time.UTC)

	req := domain.User{
		Email:                "a@x.com",
		PasswordHash:         &hash,
		Role:                 domain.RoleTourist,
		Names:                "John",
		LastNames:            "Doe",
		BirthDate:            &birth,
		Phone:                "+33612345678",
		AcceptPolicy:         true,
		AcceptDataProcessing: true,
	}

	args := []any{
		"a@x.com", &hash, "tourist", "John", "Doe", &birth, "+33612345678",
		(*int64)(nil), "", (*time.Time)(nil), true, true,
	}

	t.Run("returning row activates account", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(CompleteRegistration)).
			WithArgs(args...).
			WillReturnRows(activeUserRow(uuid.New(), "a@x.com"))

		repo := NewRepository(mock)
		u, err := repo.CompleteRegistration(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.True(t, u.IsActive)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row back means the email is taken", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(CompleteRegistration)).
			WithArgs(args...).
			WillReturnRows(pgxmock.NewRows(userCols))

		repo := NewRepository(mock)
		_, err := repo.CompleteRegistration(ctx, req)
		require.ErrorIs(t, err, ErrEmailAlreadyExists)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
