package reports

import (
	"context"

	"invoicer/internal/core/id"
)

// Repository defines report data access interface.
type Repository interface {
	TotalsByStatus(ctx context.Context, ownerID id.ID, filter SummaryFilter) ([]StatusTotal, error)
	TotalsByMonth(ctx context.Context, ownerID id.ID, filter SummaryFilter) ([]MonthTotal, error)
}
