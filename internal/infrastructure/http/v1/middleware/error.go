package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicer/internal/core/apperror"
	appctx "invoicer/internal/core/context"
	"invoicer/pkg/logger"
)

// ErrorHandler middleware transforms errors into consistent JSON responses.
// Hides internal errors from clients while logging full details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		writeError(c, c.Errors.Last().Err)
	}
}

// writeError renders err as {code, message, details} and releases the
// request's idempotency key with that same response.
func writeError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	status := http.StatusInternalServerError
	var body gin.H

	if appErr, ok := apperror.AsAppError(err); ok {
		if appErr.Err != nil {
			logger.Error(ctx, "request error",
				"code", appErr.Code,
				"cause", appErr.Err,
			)
		}
		status = appErr.HTTPStatus
		body = gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
			"details": appErr.Details,
		}
	} else {
		logger.Error(ctx, "unhandled error",
			"error", err,
		)
		body = gin.H{
			"code":    apperror.CodeInternal,
			"message": "Internal server error",
			"details": map[string]any{
				"request_id": appctx.RequestID(ctx),
			},
		}
	}

	if key, store, ok := idempotencyFromContext(c); ok {
		_ = store.FailKey(ctx, key, status, "application/json", body)
	}

	c.JSON(status, body)
}
