package numerator

import (
	"context"
	"sync"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/id"
	corenumerator "invoicer/internal/core/numerator"
)

type memorySequence struct {
	mu   sync.Mutex
	next int64
}

// MemoryStore keeps sequences in process memory.
// Each owner has its own mutex, so allocations for different owners
// never wait on each other. Values are lost on restart.
type MemoryStore struct {
	mu        sync.RWMutex
	sequences map[id.ID]*memorySequence
}

// Ensure compile-time interface compliance.
var _ corenumerator.Store = (*MemoryStore)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{sequences: make(map[id.ID]*memorySequence)}
}

// sequence returns the owner's counter, creating it at 1 when absent.
func (s *MemoryStore) sequence(ownerID id.ID) *memorySequence {
	s.mu.RLock()
	seq, ok := s.sequences[ownerID]
	s.mu.RUnlock()
	if ok {
		return seq
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq, ok = s.sequences[ownerID]; !ok {
		seq = &memorySequence{next: 1}
		s.sequences[ownerID] = seq
	}
	return seq
}

// AllocateNext implements Store.
func (s *MemoryStore) AllocateNext(ctx context.Context, ownerID id.ID) (int64, error) {
	if id.IsNil(ownerID) {
		return 0, apperror.NewUnauthorized("owner is required")
	}
	if err := ctx.Err(); err != nil {
		return 0, apperror.NewStorage(err)
	}

	seq := s.sequence(ownerID)
	seq.mu.Lock()
	defer seq.mu.Unlock()

	num := seq.next
	seq.next++
	return num, nil
}

// Ensure implements Store.
func (s *MemoryStore) Ensure(ctx context.Context, ownerID id.ID) error {
	if id.IsNil(ownerID) {
		return apperror.NewUnauthorized("owner is required")
	}
	if err := ctx.Err(); err != nil {
		return apperror.NewStorage(err)
	}
	s.sequence(ownerID)
	return nil
}

// Peek implements Store.
func (s *MemoryStore) Peek(ctx context.Context, ownerID id.ID) (int64, error) {
	if id.IsNil(ownerID) {
		return 0, apperror.NewUnauthorized("owner is required")
	}
	if err := ctx.Err(); err != nil {
		return 0, apperror.NewStorage(err)
	}

	s.mu.RLock()
	seq, ok := s.sequences[ownerID]
	s.mu.RUnlock()
	if !ok {
		return 1, nil
	}

	seq.mu.Lock()
	defer seq.mu.Unlock()
	return seq.next, nil
}
