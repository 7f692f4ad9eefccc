package auth_repo

import (
	"context"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicer/internal/core/apperror"
	"invoicer/internal/domain/auth"
	"invoicer/internal/infrastructure/storage/postgres"
)

func newRepo(t *testing.T) (*UserRepo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return NewUserRepo(postgres.StaticQuerier{Q: mock}), mock
}

func TestUserRepo_Create(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name,email,password_hash) VALUES ($1,$2,$3) RETURNING id, created_at")).
		WithArgs("Ana", "ana@example.com", "hash").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), now))

	u := &auth.User{Name: "Ana", Email: "ana@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, int64(3), u.ID)
	assert.True(t, u.CreatedAt.Equal(now))
}

func TestUserRepo_GetByEmail(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1 LIMIT 1")).
		WithArgs("ana@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}).
			AddRow(int64(3), "Ana", "ana@example.com", "hash", now))

	u, err := repo.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, "hash", u.PasswordHash)
}

func TestUserRepo_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "password_hash", "created_at"}))

	_, err := repo.GetByID(context.Background(), 9)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUserRepo_Exists(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("ana@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.True(t, ok)
}
