// Package numerator provides the per-owner sequence stores.
// It implements core/numerator.Store on PostgreSQL and in memory.
package numerator

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/id"
	corenumerator "invoicer/internal/core/numerator"
)

// Querier interface for database operations.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// The row stores the value the next allocation returns. A missing row
// behaves as next_number = 1, so the first allocation inserts 2 and
// returns 1. The whole read-modify-write is one statement, which makes
// concurrent allocations for one owner serialize on the row lock.
const (
	allocateSQL = `
		INSERT INTO invoice_sequences (owner_id, next_number)
		VALUES ($1, 2)
		ON CONFLICT (owner_id) DO UPDATE SET next_number = invoice_sequences.next_number + 1
		RETURNING next_number - 1`

	ensureSQL = `
		INSERT INTO invoice_sequences (owner_id, next_number)
		VALUES ($1, 1)
		ON CONFLICT (owner_id) DO NOTHING`

	peekSQL = `SELECT next_number FROM invoice_sequences WHERE owner_id = $1`
)

// PostgresStore keeps sequences in the invoice_sequences table.
type PostgresStore struct {
	// staticQuerier is used when no resolver is configured
	staticQuerier Querier
	// resolve returns the querier bound to ctx (an open transaction or the pool)
	resolve func(ctx context.Context) Querier
}

// Ensure compile-time interface compliance.
var _ corenumerator.Store = (*PostgresStore)(nil)

// NewPostgres creates a store with a static querier.
func NewPostgres(querier Querier) *PostgresStore {
	return &PostgresStore{staticQuerier: querier}
}

// NewPostgresWithResolver creates a store that picks its querier per call,
// so allocation joins a transaction already present in ctx.
func NewPostgresWithResolver(resolve func(ctx context.Context) Querier) *PostgresStore {
	return &PostgresStore{resolve: resolve}
}

func (s *PostgresStore) getQuerier(ctx context.Context) Querier {
	if s.resolve != nil {
		return s.resolve(ctx)
	}
	return s.staticQuerier
}

// AllocateNext implements Store using UPSERT + RETURNING.
func (s *PostgresStore) AllocateNext(ctx context.Context, ownerID id.ID) (int64, error) {
	if id.IsNil(ownerID) {
		return 0, apperror.NewUnauthorized("owner is required")
	}

	var num int64
	if err := s.getQuerier(ctx).QueryRow(ctx, allocateSQL, ownerID).Scan(&num); err != nil {
		return 0, apperror.NewStorage(fmt.Errorf("allocate next: %w", err))
	}
	return num, nil
}

// Ensure implements Store.
func (s *PostgresStore) Ensure(ctx context.Context, ownerID id.ID) error {
	if id.IsNil(ownerID) {
		return apperror.NewUnauthorized("owner is required")
	}

	if _, err := s.getQuerier(ctx).Exec(ctx, ensureSQL, ownerID); err != nil {
		return apperror.NewStorage(fmt.Errorf("ensure sequence: %w", err))
	}
	return nil
}

// Peek implements Store.
func (s *PostgresStore) Peek(ctx context.Context, ownerID id.ID) (int64, error) {
	if id.IsNil(ownerID) {
		return 0, apperror.NewUnauthorized("owner is required")
	}

	var next int64
	err := s.getQuerier(ctx).QueryRow(ctx, peekSQL, ownerID).Scan(&next)
	if errors.Is(err, pgx.ErrNoRows) {
		return 1, nil
	}
	if err != nil {
		return 0, apperror.NewStorage(fmt.Errorf("peek sequence: %w", err))
	}
	return next, nil
}
