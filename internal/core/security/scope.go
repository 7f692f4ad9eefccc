// Package security provides authentication checks and record ownership rules.
package security

import (
	"context"

	"invoicer/internal/core/apperror"
	appctx "invoicer/internal/core/context"
	"invoicer/internal/core/id"
)

// RequireOwner returns the authenticated owner id or an Unauthorized error.
// Services call it before touching storage.
func RequireOwner(ctx context.Context) (id.ID, error) {
	ownerID, ok := appctx.GetOwnerID(ctx)
	if !ok {
		return id.Nil(), apperror.NewUnauthorized("authentication required")
	}
	return ownerID, nil
}
