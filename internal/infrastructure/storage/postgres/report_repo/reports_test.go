package report_repo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/types"
	"invoicer/internal/domain/invoice"
	"invoicer/internal/domain/reports"
	"invoicer/internal/infrastructure/storage/postgres"
)

func newRepo(t *testing.T) (*ReportRepo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return NewReportRepo(postgres.StaticQuerier{Q: mock}), mock
}

func TestTotalsByStatus(t *testing.T) {
	repo, mock := newRepo(t)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT status, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total FROM invoices WHERE owner_id = $1 AND date >= $2 GROUP BY status ORDER BY status")).
		WithArgs(int64(3), from).
		WillReturnRows(pgxmock.NewRows([]string{"status", "count", "total"}).
			AddRow(invoice.StatusPaid, int64(2), types.MustMoney("150.00")))

	rows, err := repo.TotalsByStatus(context.Background(), 3, reports.SummaryFilter{DateFrom: &from})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, invoice.StatusPaid, rows[0].Status)
	assert.Equal(t, int64(2), rows[0].Count)
}

func TestTotalsByMonth(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT to_char(date, 'YYYY-MM') AS month, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total FROM invoices WHERE owner_id = $1 GROUP BY month ORDER BY month")).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"month", "count", "total"}))

	rows, err := repo.TotalsByMonth(context.Background(), 3, reports.SummaryFilter{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestTotals_StorageFailure(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(`FROM invoices`).
		WithArgs(int64(3)).
		WillReturnError(errors.New("timeout"))

	_, err := repo.TotalsByStatus(context.Background(), 3, reports.SummaryFilter{})
	assert.True(t, apperror.IsStorage(err))
}
