// Package middleware provides HTTP middleware components.
package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"invoicer/internal/core/apperror"
	appctx "invoicer/internal/core/context"
	"invoicer/pkg/logger"
)

// Recovery turns a handler panic into a 500 INTERNAL_ERROR. It runs outside
// ErrorHandler, so it writes the response itself. The stack goes to the
// log only; the client gets the request id to quote.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			ctx := c.Request.Context()
			logger.Error(ctx, "handler panicked",
				"panic", rec,
				"method", c.Request.Method,
				"route", c.FullPath(),
				"stack", string(debug.Stack()),
			)

			c.Abort()
			if c.Writer.Written() {
				return
			}
			appErr := apperror.NewInternal(fmt.Errorf("panic in %s %s: %v", c.Request.Method, c.FullPath(), rec))
			writeError(c, appErr.WithDetail("request_id", appctx.RequestID(ctx)))
		}()
		c.Next()
	}
}
