package numerator

import (
	"context"

	"invoicer/internal/core/id"
)

// MockStore is a test implementation of Store.
// Use in unit tests to avoid database dependencies.
type MockStore struct {
	AllocateNextFunc func(ctx context.Context, ownerID id.ID) (int64, error)
	EnsureFunc       func(ctx context.Context, ownerID id.ID) error
	PeekFunc         func(ctx context.Context, ownerID id.ID) (int64, error)
}

// AllocateNext implements Store.
func (m *MockStore) AllocateNext(ctx context.Context, ownerID id.ID) (int64, error) {
	if m.AllocateNextFunc != nil {
		return m.AllocateNextFunc(ctx, ownerID)
	}
	return 1, nil
}

// Ensure implements Store.
func (m *MockStore) Ensure(ctx context.Context, ownerID id.ID) error {
	if m.EnsureFunc != nil {
		return m.EnsureFunc(ctx, ownerID)
	}
	return nil
}

// Peek implements Store.
func (m *MockStore) Peek(ctx context.Context, ownerID id.ID) (int64, error) {
	if m.PeekFunc != nil {
		return m.PeekFunc(ctx, ownerID)
	}
	return 1, nil
}

// Ensure compile-time interface compliance.
var _ Store = (*MockStore)(nil)
