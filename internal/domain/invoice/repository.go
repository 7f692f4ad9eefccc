package invoice

import (
	"context"

	"invoicer/internal/core/id"
)

// Repository defines persistence operations for invoices.
//
// ownerScope is an optional owner predicate for by-id operations. nil
// matches by id alone. Update and Delete report the number of affected
// rows; zero is not an error.
type Repository interface {
	// ListByOwner returns the owner's invoices ordered by date descending,
	// ties broken by insertion order.
	ListByOwner(ctx context.Context, ownerID id.ID, filter ListFilter) ([]*Invoice, error)

	GetByID(ctx context.Context, invoiceID id.ID, ownerScope *id.ID) (*Invoice, error)

	// GetDocument returns the invoice joined with owner name and email.
	GetDocument(ctx context.Context, invoiceID id.ID, ownerScope *id.ID) (*Document, error)

	// Create inserts inv and sets its ID, Status default and CreatedAt.
	Create(ctx context.Context, inv *Invoice) error

	Update(ctx context.Context, invoiceID id.ID, ownerScope *id.ID, changes Changes) (int64, error)

	Delete(ctx context.Context, invoiceID id.ID, ownerScope *id.ID) (int64, error)
}
