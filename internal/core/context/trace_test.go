package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrace(t *testing.T) {
	kept := NewTrace("req-1", "trace-1")
	assert.Equal(t, Trace{RequestID: "req-1", TraceID: "trace-1"}, kept)

	generated := NewTrace("", "")
	assert.Len(t, generated.RequestID, 36)
	assert.Len(t, generated.TraceID, 36)
	assert.NotEqual(t, generated.RequestID, generated.TraceID)
}

func TestTraceFrom(t *testing.T) {
	_, ok := TraceFrom(context.Background())
	assert.False(t, ok)
	assert.Empty(t, RequestID(context.Background()))

	ctx := WithTrace(context.Background(), NewTrace("req-1", ""))
	got, ok := TraceFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, "req-1", got.RequestID)
	assert.Equal(t, "req-1", RequestID(ctx))
}
