package dto

import (
	"time"

	"invoicer/internal/core/id"
	"invoicer/internal/domain/auth"
)

// RegisterRequest for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToAuthRequest converts to the domain request.
func (r RegisterRequest) ToAuthRequest() auth.RegisterRequest {
	return auth.RegisterRequest{Name: r.Name, Email: r.Email, Password: r.Password}
}

// LoginRequest for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToCredentials converts to domain credentials.
func (r LoginRequest) ToCredentials() auth.Credentials {
	return auth.Credentials{Email: r.Email, Password: r.Password}
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        id.ID     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// FromUser converts a domain user.
func FromUser(u *auth.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

// RegisterResponse is returned by POST /auth/register.
type RegisterResponse struct {
	ID    id.ID  `json:"id"`
	Token string `json:"token"`
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// FromSession builds the login response.
func FromSession(s *auth.Session) LoginResponse {
	return LoginResponse{
		Token:     s.Token.AccessToken,
		ExpiresAt: s.Token.ExpiresAt,
		User:      FromUser(s.User),
	}
}
