package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicer/internal/core/apperror"
	appctx "invoicer/internal/core/context"
	"invoicer/internal/core/id"
	"invoicer/internal/core/numerator"
	"invoicer/internal/core/types"
	"invoicer/internal/domain/invoice"
	pkgnumerator "invoicer/pkg/numerator"
)

type stubRepo struct {
	status []StatusTotal
	month  []MonthTotal
	owner  id.ID
	calls  int
}

func (s *stubRepo) TotalsByStatus(ctx context.Context, ownerID id.ID, _ SummaryFilter) ([]StatusTotal, error) {
	s.calls++
	s.owner = ownerID
	return s.status, nil
}

func (s *stubRepo) TotalsByMonth(ctx context.Context, ownerID id.ID, _ SummaryFilter) ([]MonthTotal, error) {
	s.calls++
	return s.month, nil
}

func TestSummary(t *testing.T) {
	repo := &stubRepo{
		status: []StatusTotal{
			{Status: invoice.StatusPaid, Count: 2, Total: types.MustMoney("150.00")},
			{Status: invoice.StatusSent, Count: 1, Total: types.MustMoney("40.50")},
			{Status: invoice.StatusOverdue, Count: 1, Total: types.MustMoney("9.50")},
		},
		month: []MonthTotal{{Month: "2024-01", Count: 4, Total: types.MustMoney("200.00")}},
	}
	var peeked id.ID
	seq := &numerator.MockStore{
		PeekFunc: func(ctx context.Context, ownerID id.ID) (int64, error) {
			peeked = ownerID
			return 5, nil
		},
		AllocateNextFunc: func(ctx context.Context, ownerID id.ID) (int64, error) {
			t.Fatal("summary must not allocate")
			return 0, nil
		},
	}
	svc := NewService(repo, seq, pkgnumerator.Format{Prefix: "INV-", PadWidth: 4})
	ctx := appctx.WithUser(context.Background(), &appctx.UserContext{UserID: 3})

	sum, err := svc.Summary(ctx, SummaryFilter{})
	require.NoError(t, err)
	assert.Equal(t, id.ID(3), repo.owner)
	assert.Equal(t, id.ID(3), peeked)
	assert.Equal(t, int64(4), sum.Count)
	assert.Equal(t, "200.00", types.FormatMoney(sum.Total))
	assert.Equal(t, "150.00", types.FormatMoney(sum.Paid))
	assert.Equal(t, "50.00", types.FormatMoney(sum.Outstanding))
	assert.Equal(t, "INV-0005", sum.NextNumber)

	require.Len(t, sum.ByStatus, len(invoice.Statuses))
	assert.Equal(t, invoice.StatusDraft, sum.ByStatus[0].Status)
	assert.Zero(t, sum.ByStatus[0].Count)
	assert.Equal(t, invoice.StatusPaid, sum.ByStatus[2].Status)
	assert.Len(t, sum.ByMonth, 1)
}

func TestSummary_Errors(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, &numerator.MockStore{}, pkgnumerator.Format{})

	_, err := svc.Summary(context.Background(), SummaryFilter{})
	assert.True(t, apperror.IsUnauthorized(err))

	ctx := appctx.WithUser(context.Background(), &appctx.UserContext{UserID: 3})
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.Summary(ctx, SummaryFilter{DateFrom: &from, DateTo: &to})
	assert.True(t, apperror.IsValidation(err))
	assert.Zero(t, repo.calls)
}
