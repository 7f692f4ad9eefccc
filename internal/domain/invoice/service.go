package invoice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/id"
	"invoicer/internal/core/numerator"
	"invoicer/internal/core/security"
	"invoicer/internal/core/tx"
	"invoicer/internal/core/types"
	"invoicer/pkg/logger"
	pkgnumerator "invoicer/pkg/numerator"
)

// Service provides invoice numbering, lifecycle and export operations.
// Every operation requires an authenticated owner in ctx.
type Service struct {
	repo      Repository
	sequences numerator.Store
	renderers map[Format]Renderer
	policy    security.OwnershipPolicy
	txManager tx.Manager
	format    pkgnumerator.Format
	now       func() time.Time
}

// ServiceConfig configures the invoice service.
type ServiceConfig struct {
	Repo      Repository
	Sequences numerator.Store
	Renderers []Renderer
	// Policy defaults to strict ownership
	Policy    security.OwnershipPolicy
	TxManager tx.Manager
	// NumberFormat controls the next-number string (plain decimal by default)
	NumberFormat pkgnumerator.Format
	// Now overrides the clock used for the default invoice date
	Now func() time.Time
}

// NewService creates a new invoice service.
func NewService(cfg ServiceConfig) *Service {
	s := &Service{
		repo:      cfg.Repo,
		sequences: cfg.Sequences,
		renderers: make(map[Format]Renderer, len(cfg.Renderers)),
		policy:    cfg.Policy,
		txManager: cfg.TxManager,
		format:    cfg.NumberFormat,
		now:       cfg.Now,
	}
	for _, r := range cfg.Renderers {
		s.renderers[r.Format()] = r
	}
	if s.policy == nil {
		s.policy = security.NewStrictPolicy()
	}
	if s.txManager == nil {
		s.txManager = tx.NoopManager{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// authorize resolves the caller and the owner predicate for by-id access.
// It is the single place where the ownership policy applies.
func (s *Service) authorize(ctx context.Context) (id.ID, *id.ID, error) {
	ownerID, err := security.RequireOwner(ctx)
	if err != nil {
		return id.Nil(), nil, err
	}
	return ownerID, s.policy.RecordScope(ownerID), nil
}

// NextNumber allocates the owner's next invoice number.
// Each call consumes a value; a number that is never used leaves a gap.
func (s *Service) NextNumber(ctx context.Context) (string, error) {
	ownerID, err := security.RequireOwner(ctx)
	if err != nil {
		return "", err
	}

	num, err := s.sequences.AllocateNext(ctx, ownerID)
	if err != nil {
		return "", err
	}

	logger.Debug(ctx, "invoice number allocated", "number", num)
	return s.format.String(num), nil
}

// List returns the owner's invoices, newest date first.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Invoice, error) {
	ownerID, err := security.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return nil, apperror.NewValidation("date range is inverted").
			WithDetail("from", filter.DateFrom.Format(DateLayout)).
			WithDetail("to", filter.DateTo.Format(DateLayout))
	}
	return s.repo.ListByOwner(ctx, ownerID, filter)
}

// Get returns one invoice.
func (s *Service) Get(ctx context.Context, invoiceID id.ID) (*Invoice, error) {
	_, scope, err := s.authorize(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, invoiceID, scope)
}

// Create validates req and stores a new invoice for the caller.
// The date defaults to today's calendar date on the server clock, the status to draft.
func (s *Service) Create(ctx context.Context, req CreateRequest) (id.ID, error) {
	ownerID, err := security.RequireOwner(ctx)
	if err != nil {
		return id.Nil(), err
	}

	number := strings.TrimSpace(req.InvoiceNumber)
	if number == "" {
		return id.Nil(), apperror.NewRequiredField("invoice_number")
	}
	amount, err := requireAmount(req.Amount)
	if err != nil {
		return id.Nil(), err
	}
	status, err := ParseStatus(req.Status)
	if err != nil {
		return id.Nil(), err
	}

	date := s.today()
	if req.Date != nil {
		date = truncateDate(*req.Date)
	}

	inv := &Invoice{
		OwnerID:       ownerID,
		InvoiceNumber: number,
		Date:          date,
		DueDate:       truncateDatePtr(req.DueDate),
		ClientName:    strings.TrimSpace(req.ClientName),
		Amount:        amount,
		Description:   req.Description,
		Status:        status,
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, inv)
	})
	if err != nil {
		return id.Nil(), err
	}

	logger.Info(ctx, "invoice created", "invoice_id", inv.ID, "number", inv.InvoiceNumber)
	return inv.ID, nil
}

// Update replaces the mutable fields of an invoice.
func (s *Service) Update(ctx context.Context, invoiceID id.ID, req UpdateRequest) error {
	_, scope, err := s.authorize(ctx)
	if err != nil {
		return err
	}

	number := strings.TrimSpace(req.InvoiceNumber)
	if number == "" {
		return apperror.NewRequiredField("invoice_number")
	}
	if req.Date == nil {
		return apperror.NewRequiredField("date")
	}
	amount, err := requireAmount(req.Amount)
	if err != nil {
		return err
	}

	changes := Changes{
		InvoiceNumber: number,
		Date:          truncateDate(*req.Date),
		Amount:        amount,
		Description:   req.Description,
		DueDate:       truncateDatePtr(req.DueDate),
	}
	if strings.TrimSpace(req.Status) != "" {
		status, err := ParseStatus(req.Status)
		if err != nil {
			return err
		}
		changes.Status = &status
	}
	if req.ClientName != nil {
		client := strings.TrimSpace(*req.ClientName)
		changes.ClientName = &client
	}

	var affected int64
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		n, err := s.repo.Update(ctx, invoiceID, scope, changes)
		affected = n
		return err
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NewNotFound("invoice", invoiceID)
	}

	logger.Info(ctx, "invoice updated", "invoice_id", invoiceID, "ownership", s.policy.Mode())
	return nil
}

// Delete removes an invoice permanently.
func (s *Service) Delete(ctx context.Context, invoiceID id.ID) error {
	_, scope, err := s.authorize(ctx)
	if err != nil {
		return err
	}

	var affected int64
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		n, err := s.repo.Delete(ctx, invoiceID, scope)
		affected = n
		return err
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperror.NewNotFound("invoice", invoiceID)
	}

	logger.Info(ctx, "invoice deleted", "invoice_id", invoiceID, "ownership", s.policy.Mode())
	return nil
}

// Render exports an invoice in the requested format.
func (s *Service) Render(ctx context.Context, invoiceID id.ID, format Format) (*RenderedDocument, error) {
	_, scope, err := s.authorize(ctx)
	if err != nil {
		return nil, err
	}

	renderer, ok := s.renderers[format]
	if !ok {
		return nil, apperror.NewValidation("unsupported export format").WithDetail("format", string(format))
	}

	doc, err := s.repo.GetDocument(ctx, invoiceID, scope)
	if err != nil {
		return nil, err
	}

	body, err := renderer.Render(ctx, doc)
	if err != nil {
		if apperror.IsAppError(err) {
			return nil, err
		}
		return nil, apperror.NewRender(fmt.Errorf("render %s: %w", format, err))
	}

	return &RenderedDocument{
		Filename:    Filename(doc.InvoiceNumber, format),
		ContentType: renderer.ContentType(),
		Body:        body,
	}, nil
}

func (s *Service) today() time.Time {
	return truncateDate(s.now())
}

func requireAmount(amount *types.Money) (types.Money, error) {
	if amount == nil {
		return types.Zero(), apperror.NewRequiredField("amount")
	}
	normalized, err := types.NormalizeMoney(*amount)
	if err != nil {
		return types.Zero(), apperror.NewValidation(err.Error()).WithDetail("field", "amount")
	}
	return normalized, nil
}

// truncateDate keeps the calendar date of t as seen in t's own location.
func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func truncateDatePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := truncateDate(*t)
	return &d
}
