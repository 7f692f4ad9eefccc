package invoice

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/id"
)

// memRepo is an in-memory Repository used by service tests.
type memRepo struct {
	mu       sync.Mutex
	nextID   id.ID
	invoices map[id.ID]*Invoice
	owners   map[id.ID][2]string
	calls    int
	failWith error
}

func newMemRepo() *memRepo {
	return &memRepo{invoices: make(map[id.ID]*Invoice), owners: make(map[id.ID][2]string)}
}

func (r *memRepo) match(inv *Invoice, scope *id.ID) bool {
	return inv != nil && (scope == nil || inv.OwnerID == *scope)
}

func (r *memRepo) ListByOwner(ctx context.Context, ownerID id.ID, filter ListFilter) ([]*Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failWith != nil {
		return nil, r.failWith
	}

	var out []*Invoice
	for _, inv := range r.invoices {
		if inv.OwnerID != ownerID {
			continue
		}
		if filter.Status != nil && inv.Status != *filter.Status {
			continue
		}
		if filter.Client != "" && !strings.Contains(strings.ToLower(inv.ClientName), strings.ToLower(filter.Client)) {
			continue
		}
		cp := *inv
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *memRepo) GetByID(ctx context.Context, invoiceID id.ID, scope *id.ID) (*Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	inv := r.invoices[invoiceID]
	if !r.match(inv, scope) {
		return nil, apperror.NewNotFound("invoice", invoiceID)
	}
	cp := *inv
	return &cp, nil
}

func (r *memRepo) GetDocument(ctx context.Context, invoiceID id.ID, scope *id.ID) (*Document, error) {
	inv, err := r.GetByID(ctx, invoiceID, scope)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	owner := r.owners[inv.OwnerID]
	return &Document{Invoice: *inv, OwnerName: owner[0], OwnerEmail: owner[1]}, nil
}

func (r *memRepo) Create(ctx context.Context, inv *Invoice) error {
	if err := inv.Validate(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failWith != nil {
		return r.failWith
	}
	r.nextID++
	inv.ID = r.nextID
	inv.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *memRepo) Update(ctx context.Context, invoiceID id.ID, scope *id.ID, c Changes) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	inv := r.invoices[invoiceID]
	if !r.match(inv, scope) {
		return 0, nil
	}
	inv.InvoiceNumber = c.InvoiceNumber
	inv.Date = c.Date
	inv.Amount = c.Amount
	inv.Description = c.Description
	inv.DueDate = c.DueDate
	if c.Status != nil {
		inv.Status = *c.Status
	}
	if c.ClientName != nil {
		inv.ClientName = *c.ClientName
	}
	return 1, nil
}

func (r *memRepo) Delete(ctx context.Context, invoiceID id.ID, scope *id.ID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	inv := r.invoices[invoiceID]
	if !r.match(inv, scope) {
		return 0, nil
	}
	delete(r.invoices, invoiceID)
	return 1, nil
}

// stubRenderer records the last document it rendered.
type stubRenderer struct {
	format Format
	last   *Document
	err    error
}

func (s *stubRenderer) Format() Format      { return s.format }
func (s *stubRenderer) ContentType() string { return "application/" + string(s.format) }

func (s *stubRenderer) Render(ctx context.Context, doc *Document) ([]byte, error) {
	s.last = doc
	if s.err != nil {
		return nil, s.err
	}
	return []byte(string(s.format) + ":" + doc.InvoiceNumber), nil
}

// countingTx runs fn inline and counts the transactions it was asked for.
type countingTx struct {
	mu    sync.Mutex
	calls int
}

func (t *countingTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	t.calls++
	t.mu.Unlock()
	return fn(ctx)
}

func (t *countingTx) count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls
}
