package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicer/internal/core/apperror"
	appctx "invoicer/internal/core/context"
	"invoicer/internal/core/id"
	"invoicer/internal/infrastructure/storage/postgres"
)

const HeaderIdempotencyKey = "X-Idempotency-Key"
const maxIdempotencyBodyBytes = 1 << 20 // 1 MiB

const (
	ctxIdempotencyKey   = "idempotency_key"
	ctxIdempotencyStore = "idempotency_store"
)

// IdempotencyStore is the replay store used by Idempotency and the
// response helpers. *postgres.IdempotencyStore implements it.
type IdempotencyStore interface {
	AcquireKey(ctx context.Context, key string, ownerID id.ID, operation, requestHash string) (*postgres.IdempotencyReplay, error)
	CompleteKey(ctx context.Context, key string, statusCode int, contentType string, response any) error
	FailKey(ctx context.Context, key string, statusCode int, contentType string, response any) error
}

// Idempotency middleware protects against duplicate requests.
// Must run after Auth so keys are bound to the owner.
func Idempotency(store IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" || store == nil {
			c.Next()
			return
		}

		ownerID, _ := appctx.GetOwnerID(c.Request.Context())

		limited := io.LimitReader(c.Request.Body, maxIdempotencyBodyBytes+1)
		body, _ := io.ReadAll(limited)
		if len(body) > maxIdempotencyBodyBytes {
			appErr := apperror.NewValidation("request body too large for idempotency")
			appErr.HTTPStatus = http.StatusRequestEntityTooLarge
			_ = c.Error(appErr.WithDetail("max_bytes", maxIdempotencyBodyBytes))
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		hash := sha256.Sum256(body)
		requestHash := hex.EncodeToString(hash[:])

		operation := c.Request.Method + " " + c.FullPath()

		replay, err := store.AcquireKey(c.Request.Context(), key, ownerID, operation, requestHash)
		if err != nil {
			if appErr, ok := apperror.AsAppError(err); ok {
				_ = c.Error(appErr)
				c.Abort()
				return
			}
			_ = c.Error(apperror.NewInternal(err).WithDetail("component", "idempotency"))
			c.Abort()
			return
		}

		if replay != nil {
			c.Data(replay.StatusCode, replay.ContentType, replay.Body)
			c.Abort()
			return
		}

		c.Set(ctxIdempotencyKey, key)
		c.Set(ctxIdempotencyStore, store)

		c.Next()
	}
}

// CompleteIdempotency records a successful response for replay, if the
// request acquired an idempotency key.
func CompleteIdempotency(c *gin.Context, statusCode int, contentType string, response any) {
	if key, store, ok := idempotencyFromContext(c); ok {
		_ = store.CompleteKey(c.Request.Context(), key, statusCode, contentType, response)
	}
}

func idempotencyFromContext(c *gin.Context) (string, IdempotencyStore, bool) {
	key := c.GetString(ctxIdempotencyKey)
	if key == "" {
		return "", nil, false
	}
	v, ok := c.Get(ctxIdempotencyStore)
	if !ok {
		return "", nil, false
	}
	store, ok := v.(IdempotencyStore)
	if !ok || store == nil {
		return "", nil, false
	}
	return key, store, true
}
