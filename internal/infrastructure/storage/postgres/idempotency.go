package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/id"
)

// IdempotencyStatus represents the state of an idempotent operation.
type IdempotencyStatus string

const (
	IdempotencyStatusPending IdempotencyStatus = "pending"
	IdempotencyStatusSuccess IdempotencyStatus = "success"
	IdempotencyStatusFailed  IdempotencyStatus = "failed"
)

// stalePendingAfter is how long a pending key may stay unfinished before
// another request with the same key may take it over.
const stalePendingAfter = time.Minute

// IdempotencyReplay is the cached HTTP response for replay.
type IdempotencyReplay struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// IdempotencyStore records create requests keyed by X-Idempotency-Key so a
// client retrying after a timeout gets the original response instead of a
// duplicate invoice.
type IdempotencyStore struct {
	db  QuerierProvider
	ttl time.Duration
	now func() time.Time
}

// NewIdempotencyStore creates a new idempotency store.
func NewIdempotencyStore(db QuerierProvider, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{db: db, ttl: ttl, now: time.Now}
}

// AcquireKey attempts to acquire an idempotency key.
// Returns:
//   - (nil, nil) if the key was acquired by this request
//   - (replay, nil) if the operation already finished
//   - (nil, error) if the key is in use or belongs to a different request
func (s *IdempotencyStore) AcquireKey(ctx context.Context, key string, ownerID id.ID, operation, requestHash string) (*IdempotencyReplay, error) {
	now := s.now().UTC()
	q := s.db.GetQuerier(ctx)

	var (
		inserted       bool
		storedOwner    id.ID
		storedOp       string
		storedHash     string
		status         IdempotencyStatus
		response       []byte
		responseStatus *int
		contentType    *string
		updatedAt      time.Time
	)
	err := q.QueryRow(ctx, `
		INSERT INTO sys_idempotency (idempotency_key, user_id, operation, status, request_hash, created_at, updated_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6, $7)
		ON CONFLICT (idempotency_key) DO UPDATE SET expires_at = GREATEST(sys_idempotency.expires_at, EXCLUDED.expires_at)
		RETURNING (xmax = 0), user_id, operation, request_hash, status, response, response_status, response_content_type, updated_at
	`, key, ownerID, operation, IdempotencyStatusPending, requestHash, now, now.Add(s.ttl)).Scan(
		&inserted, &storedOwner, &storedOp, &storedHash, &status,
		&response, &responseStatus, &contentType, &updatedAt,
	)
	if err != nil {
		return nil, apperror.NewStorage(fmt.Errorf("acquire idempotency key: %w", err))
	}

	if inserted {
		return nil, nil
	}

	if storedOwner != ownerID || storedOp != operation || storedHash != requestHash {
		return nil, apperror.NewIdempotencyMismatch(key)
	}

	switch status {
	case IdempotencyStatusSuccess, IdempotencyStatusFailed:
		replay := &IdempotencyReplay{
			StatusCode:  http.StatusOK,
			ContentType: "application/json",
			Body:        response,
		}
		if responseStatus != nil && *responseStatus != 0 {
			replay.StatusCode = *responseStatus
		}
		if contentType != nil && *contentType != "" {
			replay.ContentType = *contentType
		}
		return replay, nil
	}

	if now.Sub(updatedAt) <= stalePendingAfter {
		return nil, apperror.NewIdempotencyConflict(key)
	}

	// Reclaim a key abandoned by a crashed request.
	tag, err := q.Exec(ctx, `
		UPDATE sys_idempotency SET updated_at = $1
		WHERE idempotency_key = $2 AND status = $3 AND updated_at = $4
	`, now, key, IdempotencyStatusPending, updatedAt)
	if err != nil {
		return nil, apperror.NewStorage(fmt.Errorf("reclaim stale key: %w", err))
	}
	if tag.RowsAffected() == 0 {
		return nil, apperror.NewIdempotencyConflict(key)
	}
	return nil, nil
}

// CompleteKey stores the successful response for key.
func (s *IdempotencyStore) CompleteKey(ctx context.Context, key string, statusCode int, contentType string, response any) error {
	return s.finish(ctx, key, IdempotencyStatusSuccess, statusCode, contentType, response)
}

// FailKey stores the error response for key.
func (s *IdempotencyStore) FailKey(ctx context.Context, key string, statusCode int, contentType string, response any) error {
	return s.finish(ctx, key, IdempotencyStatusFailed, statusCode, contentType, response)
}

func (s *IdempotencyStore) finish(ctx context.Context, key string, status IdempotencyStatus, statusCode int, contentType string, response any) error {
	var body []byte
	if response != nil {
		b, err := json.Marshal(response)
		if err != nil {
			return fmt.Errorf("marshal response: %w", err)
		}
		body = b
	}

	_, err := s.db.GetQuerier(ctx).Exec(ctx, `
		UPDATE sys_idempotency
		SET status = $1,
		    response = $2,
		    response_status = $3,
		    response_content_type = $4,
		    updated_at = $5
		WHERE idempotency_key = $6
	`, status, body, statusCode, contentType, s.now().UTC(), key)
	if err != nil {
		return apperror.NewStorage(fmt.Errorf("finish idempotency key: %w", err))
	}
	return nil
}

// CleanupExpired removes expired idempotency records.
func (s *IdempotencyStore) CleanupExpired(ctx context.Context) (int64, error) {
	tag, err := s.db.GetQuerier(ctx).Exec(ctx,
		`DELETE FROM sys_idempotency WHERE expires_at < $1`, s.now().UTC())
	if err != nil {
		return 0, apperror.NewStorage(fmt.Errorf("cleanup idempotency keys: %w", err))
	}
	return tag.RowsAffected(), nil
}
