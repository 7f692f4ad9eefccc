package catalog_repo

import (
	"context"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/entity"
	"invoicer/internal/core/types"
	"invoicer/internal/domain/catalogs/client"
	"invoicer/internal/domain/catalogs/product"
	"invoicer/internal/infrastructure/storage/postgres"
)

var clientCols = []string{"id", "owner_id", "created_at", "name", "email", "phone", "address", "tax_id"}

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

func strPtr(s string) *string { return &s }

func TestClientRepo_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewClientRepo(postgres.StaticQuerier{Q: mock})
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO clients (address,email,name,owner_id,phone,tax_id) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, created_at")).
		WithArgs((*string)(nil), strPtr("a@acme.io"), "ACME", int64(7), (*string)(nil), (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(4), now))

	c := &client.Client{Resource: entity.Resource{Name: "ACME"}, Email: strPtr("a@acme.io")}
	c.OwnerID = 7
	require.NoError(t, repo.Create(context.Background(), c))
	assert.Equal(t, int64(4), c.ID)
	assert.True(t, c.CreatedAt.Equal(now))
}

func TestClientRepo_ListOrderedByName(t *testing.T) {
	mock := newMock(t)
	repo := NewClientRepo(postgres.StaticQuerier{Q: mock})
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, owner_id, created_at, name, email, phone, address, tax_id FROM clients WHERE owner_id = $1 ORDER BY name ASC, id ASC")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(clientCols).
			AddRow(int64(2), int64(7), now, "Alpha", (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil)).
			AddRow(int64(1), int64(7), now, "Beta", strPtr("b@x.io"), (*string)(nil), (*string)(nil), (*string)(nil)))

	items, err := repo.List(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Alpha", items[0].Name)
	assert.Equal(t, "b@x.io", *items[1].Email)
}

func TestClientRepo_GetByID_ForeignOwner(t *testing.T) {
	mock := newMock(t)
	repo := NewClientRepo(postgres.StaticQuerier{Q: mock})

	mock.ExpectQuery(regexp.QuoteMeta("FROM clients WHERE owner_id = $1 AND id = $2 LIMIT 1")).
		WithArgs(int64(8), int64(1)).
		WillReturnRows(pgxmock.NewRows(clientCols))

	_, err := repo.GetByID(context.Background(), 1, 8)
	assert.True(t, apperror.IsNotFound(err))
}

func TestClientRepo_UpdateScopedToOwner(t *testing.T) {
	mock := newMock(t)
	repo := NewClientRepo(postgres.StaticQuerier{Q: mock})

	mock.ExpectExec(regexp.QuoteMeta("UPDATE clients SET address = $1, email = $2, name = $3, phone = $4, tax_id = $5 WHERE id = $6 AND owner_id = $7")).
		WithArgs((*string)(nil), (*string)(nil), "ACME 2", (*string)(nil), strPtr("SI1"), int64(3), int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	c := &client.Client{Resource: entity.Resource{Name: "ACME 2"}, TaxID: strPtr("SI1")}
	c.ID = 3
	c.OwnerID = 7
	n, err := repo.Update(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestProductRepo_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepo(postgres.StaticQuerier{Q: mock})

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE id = $1 AND owner_id = $2")).
		WithArgs(int64(5), int64(7)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	n, err := repo.Delete(context.Background(), 5, 7)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProductRepo_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepo(postgres.StaticQuerier{Q: mock})

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products (category,description,name,owner_id,price) VALUES ($1,$2,$3,$4,$5) RETURNING id, created_at")).
		WithArgs((*string)(nil), (*string)(nil), "Widget", int64(7), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), time.Now()))

	p := &product.Product{Resource: entity.Resource{Name: "Widget"}, Price: types.MustMoney("9.99")}
	p.OwnerID = 7
	require.NoError(t, repo.Create(context.Background(), p))
	assert.Equal(t, int64(1), p.ID)
}
