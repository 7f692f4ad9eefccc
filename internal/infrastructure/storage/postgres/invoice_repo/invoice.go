// Package invoice_repo provides the PostgreSQL implementation of invoice.Repository.
package invoice_repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/id"
	"invoicer/internal/domain/invoice"
	"invoicer/internal/infrastructure/storage/postgres"
)

const (
	invoiceTable = "invoices"
	entityName   = "invoice"
)

// Compile-time check.
var _ invoice.Repository = (*InvoiceRepo)(nil)

// InvoiceRepo implements invoice.Repository.
type InvoiceRepo struct {
	db         postgres.QuerierProvider
	selectCols []string
	docCols    []string
}

// NewInvoiceRepo creates a new invoice repository.
func NewInvoiceRepo(db postgres.QuerierProvider) *InvoiceRepo {
	cols := postgres.ExtractDBColumns[invoice.Invoice]()

	docCols := make([]string, 0, len(cols)+2)
	for _, c := range cols {
		docCols = append(docCols, "i."+c)
	}
	docCols = append(docCols, "u.name AS user_name", "u.email AS user_email")

	return &InvoiceRepo{
		db:         db,
		selectCols: cols,
		docCols:    docCols,
	}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *InvoiceRepo) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// ListByOwner returns the owner's invoices, newest date first.
func (r *InvoiceRepo) ListByOwner(ctx context.Context, ownerID id.ID, filter invoice.ListFilter) ([]*invoice.Invoice, error) {
	q := r.Builder().
		Select(r.selectCols...).
		From(invoiceTable).
		Where(squirrel.Eq{"owner_id": ownerID})

	q = applyFilter(q, filter)
	q = q.OrderBy("date DESC", "id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*invoice.Invoice
	if err := pgxscan.Select(ctx, r.db.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, postgres.MapError(err, entityName)
	}
	if items == nil {
		items = []*invoice.Invoice{}
	}
	return items, nil
}

func applyFilter(q squirrel.SelectBuilder, filter invoice.ListFilter) squirrel.SelectBuilder {
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"date": *filter.DateTo})
	}
	if c := strings.TrimSpace(filter.Client); c != "" {
		q = q.Where(squirrel.ILike{"client_name": "%" + escapeLike(c) + "%"})
	}
	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// GetByID retrieves an invoice by id, optionally restricted to an owner.
func (r *InvoiceRepo) GetByID(ctx context.Context, invoiceID id.ID, ownerScope *id.ID) (*invoice.Invoice, error) {
	q := r.Builder().
		Select(r.selectCols...).
		From(invoiceTable).
		Where(squirrel.Eq{"id": invoiceID})
	if ownerScope != nil {
		q = q.Where(squirrel.Eq{"owner_id": *ownerScope})
	}

	sql, args, err := q.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var inv invoice.Invoice
	if err := pgxscan.Get(ctx, r.db.GetQuerier(ctx), &inv, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(entityName, invoiceID)
		}
		return nil, postgres.MapError(err, entityName)
	}
	return &inv, nil
}

// GetDocument retrieves an invoice joined with its owner's name and email.
func (r *InvoiceRepo) GetDocument(ctx context.Context, invoiceID id.ID, ownerScope *id.ID) (*invoice.Document, error) {
	q := r.Builder().
		Select(r.docCols...).
		From(invoiceTable + " i").
		Join("users u ON u.id = i.owner_id").
		Where(squirrel.Eq{"i.id": invoiceID})
	if ownerScope != nil {
		q = q.Where(squirrel.Eq{"i.owner_id": *ownerScope})
	}

	sql, args, err := q.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var doc invoice.Document
	if err := pgxscan.Get(ctx, r.db.GetQuerier(ctx), &doc, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(entityName, invoiceID)
		}
		return nil, postgres.MapError(err, entityName)
	}
	return &doc, nil
}

// Create inserts inv and fills in the database-assigned id and created_at.
func (r *InvoiceRepo) Create(ctx context.Context, inv *invoice.Invoice) error {
	if err := inv.Validate(ctx); err != nil {
		return err
	}

	q := r.Builder().
		Insert(invoiceTable).
		Columns("owner_id", "invoice_number", "date", "due_date", "client_name", "amount", "description", "status").
		Values(inv.OwnerID, inv.InvoiceNumber, inv.Date, inv.DueDate, inv.ClientName, inv.Amount, inv.Description, string(inv.Status)).
		Suffix("RETURNING id, created_at")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if err := r.db.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&inv.ID, &inv.CreatedAt); err != nil {
		return postgres.MapError(err, entityName)
	}
	return nil
}

// Update replaces the invoice fields named by changes.
func (r *InvoiceRepo) Update(ctx context.Context, invoiceID id.ID, ownerScope *id.ID, changes invoice.Changes) (int64, error) {
	q := r.Builder().
		Update(invoiceTable).
		Set("invoice_number", changes.InvoiceNumber).
		Set("date", changes.Date).
		Set("amount", changes.Amount).
		Set("description", changes.Description).
		Set("due_date", changes.DueDate)
	if changes.Status != nil {
		q = q.Set("status", string(*changes.Status))
	}
	if changes.ClientName != nil {
		q = q.Set("client_name", *changes.ClientName)
	}

	q = q.Where(squirrel.Eq{"id": invoiceID})
	if ownerScope != nil {
		q = q.Where(squirrel.Eq{"owner_id": *ownerScope})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build update: %w", err)
	}

	tag, err := r.db.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, entityName)
	}
	return tag.RowsAffected(), nil
}

// Delete removes an invoice. The invoice sequence is not touched.
func (r *InvoiceRepo) Delete(ctx context.Context, invoiceID id.ID, ownerScope *id.ID) (int64, error) {
	q := r.Builder().
		Delete(invoiceTable).
		Where(squirrel.Eq{"id": invoiceID})
	if ownerScope != nil {
		q = q.Where(squirrel.Eq{"owner_id": *ownerScope})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.db.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, entityName)
	}
	return tag.RowsAffected(), nil
}
