package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicer/internal/core/apperror"
	appctx "invoicer/internal/core/context"
	"invoicer/internal/core/id"
	"invoicer/internal/infrastructure/storage/postgres"
)

type memEntry struct {
	owner  id.ID
	hash   string
	done   bool
	replay postgres.IdempotencyReplay
}

type memIdempotency struct {
	mu      sync.Mutex
	entries map[string]*memEntry
	failed  []string
}

func newMemIdempotency() *memIdempotency {
	return &memIdempotency{entries: make(map[string]*memEntry)}
}

func (m *memIdempotency) AcquireKey(_ context.Context, key string, ownerID id.ID, _ string, requestHash string) (*postgres.IdempotencyReplay, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		m.entries[key] = &memEntry{owner: ownerID, hash: requestHash}
		return nil, nil
	}
	if e.owner != ownerID || e.hash != requestHash {
		return nil, apperror.NewIdempotencyMismatch(key)
	}
	if !e.done {
		return nil, apperror.NewIdempotencyConflict(key)
	}
	r := e.replay
	return &r, nil
}

func (m *memIdempotency) CompleteKey(_ context.Context, key string, statusCode int, contentType string, response any) error {
	body, err := json.Marshal(response)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.entries[key]
	e.done = true
	e.replay = postgres.IdempotencyReplay{StatusCode: statusCode, ContentType: contentType, Body: body}
	return nil
}

func (m *memIdempotency) FailKey(_ context.Context, key string, _ int, _ string, _ any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	m.failed = append(m.failed, key)
	return nil
}

func newIdempotentRouter(store IdempotencyStore, calls *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.Use(func(c *gin.Context) {
		ctx := appctx.WithUser(c.Request.Context(), &appctx.UserContext{UserID: 1})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	r.Use(Idempotency(store))
	r.POST("/invoices", func(c *gin.Context) {
		*calls++
		if strings.Contains(c.GetHeader("X-Fail"), "yes") {
			_ = c.Error(apperror.NewValidation("bad"))
			return
		}
		resp := gin.H{"id": *calls}
		CompleteIdempotency(c, http.StatusCreated, "application/json", resp)
		c.JSON(http.StatusCreated, resp)
	})
	return r
}

func postJSON(r http.Handler, key, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/invoices", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(HeaderIdempotencyKey, key)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestIdempotency_ReplaysCompletedResponse(t *testing.T) {
	calls := 0
	r := newIdempotentRouter(newMemIdempotency(), &calls)

	first := postJSON(r, "k1", `{"amount":1}`)
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(r, "k1", `{"amount":1}`)
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, calls)
}

func TestIdempotency_DifferentBodyIsMismatch(t *testing.T) {
	calls := 0
	r := newIdempotentRouter(newMemIdempotency(), &calls)

	require.Equal(t, http.StatusCreated, postJSON(r, "k1", `{"amount":1}`).Code)

	rec := postJSON(r, "k1", `{"amount":2}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 1, calls)
}

func TestIdempotency_WithoutKeyAlwaysRuns(t *testing.T) {
	calls := 0
	r := newIdempotentRouter(newMemIdempotency(), &calls)

	postJSON(r, "", `{}`)
	postJSON(r, "", `{}`)
	assert.Equal(t, 2, calls)
}

func TestIdempotency_FailedRequestReleasesKey(t *testing.T) {
	calls := 0
	store := newMemIdempotency()
	r := newIdempotentRouter(store, &calls)

	rec := postJSON(r, "k1", `{}`, "X-Fail", "yes")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"k1"}, store.failed)

	rec = postJSON(r, "k1", `{}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 2, calls)
}
