package numerator

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicer/internal/core/apperror"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestPostgresStore_AllocateNext(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		want    int64
		wantErr bool
	}{
		{
			name: "first allocation",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO invoice_sequences`).
					WithArgs(int64(3)).
					WillReturnRows(pgxmock.NewRows([]string{"num"}).AddRow(int64(1)))
			},
			want: 1,
		},
		{
			name: "existing sequence",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`ON CONFLICT \(owner_id\) DO UPDATE`).
					WithArgs(int64(3)).
					WillReturnRows(pgxmock.NewRows([]string{"num"}).AddRow(int64(42)))
			},
			want: 42,
		},
		{
			name: "storage failure",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO invoice_sequences`).
					WithArgs(int64(3)).
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setup(mock)

			got, err := NewPostgres(mock).AllocateNext(context.Background(), 3)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperror.IsStorage(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostgresStore_Ensure(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`ON CONFLICT \(owner_id\) DO NOTHING`).
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, NewPostgres(mock).Ensure(context.Background(), 9))
}

func TestPostgresStore_Peek(t *testing.T) {
	t.Run("absent row", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`SELECT next_number FROM invoice_sequences`).
			WithArgs(int64(9)).
			WillReturnError(pgx.ErrNoRows)

		next, err := NewPostgres(mock).Peek(context.Background(), 9)
		require.NoError(t, err)
		assert.Equal(t, int64(1), next)
	})

	t.Run("existing row", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`SELECT next_number FROM invoice_sequences`).
			WithArgs(int64(9)).
			WillReturnRows(pgxmock.NewRows([]string{"next_number"}).AddRow(int64(12)))

		next, err := NewPostgres(mock).Peek(context.Background(), 9)
		require.NoError(t, err)
		assert.Equal(t, int64(12), next)
	})
}

func TestPostgresStore_ResolverIsUsed(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO invoice_sequences`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"num"}).AddRow(int64(1)))

	calls := 0
	store := NewPostgresWithResolver(func(ctx context.Context) Querier {
		calls++
		return mock
	})

	_, err := store.AllocateNext(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestPostgresStore_RejectsMissingOwner(t *testing.T) {
	mock := newMock(t)
	_, err := NewPostgres(mock).AllocateNext(context.Background(), 0)
	assert.True(t, apperror.IsUnauthorized(err))
}
