package reports

import (
	"context"
	"time"

	"github.com/samber/lo"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/numerator"
	"invoicer/internal/core/security"
	"invoicer/internal/core/types"
	"invoicer/internal/domain/invoice"
	pkgnumerator "invoicer/pkg/numerator"
)

// Service provides report generation operations.
type Service struct {
	repo      Repository
	sequences numerator.Store
	format    pkgnumerator.Format
}

// NewService creates a new reports service.
func NewService(repo Repository, sequences numerator.Store, format pkgnumerator.Format) *Service {
	return &Service{repo: repo, sequences: sequences, format: format}
}

// Summary builds the owner's summary. Reading it never allocates a number.
func (s *Service) Summary(ctx context.Context, filter SummaryFilter) (*Summary, error) {
	ownerID, err := security.RequireOwner(ctx)
	if err != nil {
		return nil, err
	}

	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		return nil, apperror.NewValidation("from must not be after to").
			WithDetail("from", filter.DateFrom.Format(time.DateOnly)).
			WithDetail("to", filter.DateTo.Format(time.DateOnly))
	}

	byStatus, err := s.repo.TotalsByStatus(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	byMonth, err := s.repo.TotalsByMonth(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	next, err := s.sequences.Peek(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	byStatus = orderByStatus(byStatus)
	sum := func(keep func(StatusTotal) bool) types.Money {
		return lo.Reduce(lo.Filter(byStatus, func(t StatusTotal, _ int) bool { return keep(t) }),
			func(acc types.Money, t StatusTotal, _ int) types.Money { return acc.Add(t.Total) },
			types.Zero())
	}

	return &Summary{
		Count: lo.SumBy(byStatus, func(t StatusTotal) int64 { return t.Count }),
		Total: sum(func(StatusTotal) bool { return true }),
		Paid:  sum(func(t StatusTotal) bool { return t.Status == invoice.StatusPaid }),
		Outstanding: sum(func(t StatusTotal) bool {
			return t.Status == invoice.StatusSent || t.Status == invoice.StatusOverdue
		}),
		ByStatus:   byStatus,
		ByMonth:    byMonth,
		NextNumber: s.format.String(next),
	}, nil
}

// orderByStatus returns one entry per known status in display order,
// filling absent statuses with zero totals.
func orderByStatus(rows []StatusTotal) []StatusTotal {
	byKey := lo.KeyBy(rows, func(t StatusTotal) invoice.Status { return t.Status })
	return lo.Map(invoice.Statuses, func(st invoice.Status, _ int) StatusTotal {
		if t, ok := byKey[st]; ok {
			return t
		}
		return StatusTotal{Status: st, Total: types.Zero()}
	})
}
