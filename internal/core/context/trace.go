package context

import (
	"context"

	"github.com/google/uuid"
)

// Trace identifies one API request across logs and responses.
type Trace struct {
	RequestID string
	TraceID   string
}

type traceKey struct{}

// NewTrace keeps the ids supplied by the caller and generates the missing ones.
func NewTrace(requestID, traceID string) Trace {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}
	return Trace{RequestID: requestID, TraceID: traceID}
}

// WithTrace stores t in ctx.
func WithTrace(ctx context.Context, t Trace) context.Context {
	return context.WithValue(ctx, traceKey{}, t)
}

// TraceFrom returns the request trace; ok is false outside a request.
func TraceFrom(ctx context.Context) (t Trace, ok bool) {
	t, ok = ctx.Value(traceKey{}).(Trace)
	return t, ok
}

// RequestID returns the request id, or "" outside a request.
func RequestID(ctx context.Context) string {
	t, _ := TraceFrom(ctx)
	return t.RequestID
}
