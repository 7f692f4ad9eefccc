// Package context provides request-scoped values extraction.
package context

import (
	"context"

	"invoicer/internal/core/id"
)

// UserContext contains authenticated owner information.
type UserContext struct {
	UserID id.ID
	Email  string
	Name   string
}

type userContextKey struct{}

// WithUser adds UserContext to context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns UserContext from context.
func GetUser(ctx context.Context) *UserContext {
	if v, ok := ctx.Value(userContextKey{}).(*UserContext); ok {
		return v
	}
	return nil
}

// GetOwnerID returns the authenticated owner id.
// ok is false when the request carries no authenticated owner.
func GetOwnerID(ctx context.Context) (ownerID id.ID, ok bool) {
	u := GetUser(ctx)
	if u == nil || id.IsNil(u.UserID) {
		return id.Nil(), false
	}
	return u.UserID, true
}
