// Package report_repo provides the PostgreSQL implementation of reports.Repository.
package report_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"invoicer/internal/core/id"
	"invoicer/internal/domain/reports"
	"invoicer/internal/infrastructure/storage/postgres"
)

var _ reports.Repository = (*ReportRepo)(nil)

// ReportRepo implements reports.Repository.
type ReportRepo struct {
	db      postgres.QuerierProvider
	builder squirrel.StatementBuilderType
}

// NewReportRepo creates a new report repository.
func NewReportRepo(db postgres.QuerierProvider) *ReportRepo {
	return &ReportRepo{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *ReportRepo) totals(ownerID id.ID, filter reports.SummaryFilter, key string) squirrel.SelectBuilder {
	q := r.builder.
		Select(key, "COUNT(*) AS count", "COALESCE(SUM(amount), 0) AS total").
		From("invoices").
		Where(squirrel.Eq{"owner_id": ownerID})
	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"date": *filter.DateTo})
	}
	return q
}

// TotalsByStatus aggregates the owner's invoices per status.
func (r *ReportRepo) TotalsByStatus(ctx context.Context, ownerID id.ID, filter reports.SummaryFilter) ([]reports.StatusTotal, error) {
	sql, args, err := r.totals(ownerID, filter, "status").
		GroupBy("status").
		OrderBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []reports.StatusTotal
	if err := pgxscan.Select(ctx, r.db.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "report")
	}
	return rows, nil
}

// TotalsByMonth aggregates the owner's invoices per calendar month, oldest first.
func (r *ReportRepo) TotalsByMonth(ctx context.Context, ownerID id.ID, filter reports.SummaryFilter) ([]reports.MonthTotal, error) {
	sql, args, err := r.totals(ownerID, filter, "to_char(date, 'YYYY-MM') AS month").
		GroupBy("month").
		OrderBy("month").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows := make([]reports.MonthTotal, 0)
	if err := pgxscan.Select(ctx, r.db.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "report")
	}
	return rows, nil
}
