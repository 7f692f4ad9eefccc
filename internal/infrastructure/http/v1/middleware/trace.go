package middleware

import (
	"github.com/gin-gonic/gin"

	appctx "invoicer/internal/core/context"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderTraceID   = "X-Trace-ID"
)

// Trace takes the request and trace ids from the headers, generating the
// missing ones, and echoes both back on the response.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		trace := appctx.NewTrace(c.GetHeader(HeaderRequestID), c.GetHeader(HeaderTraceID))
		c.Request = c.Request.WithContext(appctx.WithTrace(c.Request.Context(), trace))

		c.Header(HeaderRequestID, trace.RequestID)
		c.Header(HeaderTraceID, trace.TraceID)

		c.Next()
	}
}
