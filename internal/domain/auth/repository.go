package auth

import (
	"context"

	"invoicer/internal/core/id"
)

// UserRepository defines user storage operations.
type UserRepository interface {
	// Create inserts user and sets its ID and CreatedAt.
	Create(ctx context.Context, user *User) error

	// GetByID retrieves user by ID.
	GetByID(ctx context.Context, userID id.ID) (*User, error)

	// GetByEmail retrieves user by normalized email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Exists checks if email is already registered.
	Exists(ctx context.Context, email string) (bool, error)
}
