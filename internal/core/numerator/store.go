// Package numerator provides domain contracts for per-owner invoice numbering.
// Implementations live in infrastructure layer.
package numerator

import (
	"context"

	"invoicer/internal/core/id"
)

// Store is a durable per-owner counter.
//
// AllocateNext is linearizable per owner: concurrent callers for the same
// owner receive distinct, contiguous values and the first value is 1.
// Allocated values are never handed out again, including after failures
// of the caller that received them.
type Store interface {
	// AllocateNext returns the owner's next number and advances the counter.
	// The counter row is created on first use.
	AllocateNext(ctx context.Context, ownerID id.ID) (int64, error)

	// Ensure creates the counter for ownerID if absent. It never changes an
	// existing counter. Allocation after Ensure still starts at 1.
	Ensure(ctx context.Context, ownerID id.ID) error

	// Peek returns the value the next AllocateNext would return without
	// advancing the counter.
	Peek(ctx context.Context, ownerID id.ID) (int64, error)
}
