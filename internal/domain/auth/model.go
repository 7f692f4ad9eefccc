// Package auth provides account registration, login and token handling.
package auth

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/id"
)

// User represents an account. Every owner-scoped record references users.id.
type User struct {
	ID           id.ID     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Validate validates user data.
func (u *User) Validate(ctx context.Context) error {
	if strings.TrimSpace(u.Name) == "" {
		return apperror.NewRequiredField("name")
	}
	if u.Email == "" {
		return apperror.NewRequiredField("email")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return apperror.NewValidation("invalid email address").WithDetail("field", "email")
	}
	return nil
}

// RegisterRequest holds registration data.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// Credentials holds login credentials.
type Credentials struct {
	Email    string
	Password string
}

// TokenPair is an issued access token with its expiry.
type TokenPair struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Session is the result of a successful registration or login.
type Session struct {
	User  *User
	Token TokenPair
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
