// Package handlers provides HTTP request handlers.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"invoicer/internal/domain/auth"
	"invoicer/internal/infrastructure/http/v1/dto"
)

// AuthService is the account API used by AuthHandler.
type AuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest) (*auth.Session, error)
	Login(ctx context.Context, creds auth.Credentials) (*auth.Session, error)
	Me(ctx context.Context) (*auth.User, error)
}

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	*BaseHandler
	service    AuthService
	cookieName string
	now        func() time.Time
}

// NewAuthHandler creates a new auth handler. A non-empty cookieName makes
// login also set the token as an HttpOnly cookie for the browser dashboard.
func NewAuthHandler(base *BaseHandler, service AuthService, cookieName string) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		service:     service,
		cookieName:  cookieName,
		now:         time.Now,
	}
}

// RegisterRoutes registers auth routes.
func (h *AuthHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.POST("/register", h.Register)
	public.POST("/login", h.Login)
	public.POST("/logout", h.Logout)

	protected.GET("/me", h.Me)
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	session, err := h.service.Register(c.Request.Context(), req.ToAuthRequest())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.setCookie(c, session.Token)
	h.CreatedWith(c, dto.RegisterResponse{ID: session.User.ID, Token: session.Token.AccessToken})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.ToCredentials())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.setCookie(c, session.Token)
	c.JSON(http.StatusOK, dto.FromSession(session))
}

// Logout handles POST /auth/logout. Tokens are stateless, so this only
// clears the dashboard cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if h.cookieName != "" {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(h.cookieName, "", -1, "/", "", c.Request.TLS != nil, true)
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.service.Me(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromUser(user))
}

func (h *AuthHandler) setCookie(c *gin.Context, token auth.TokenPair) {
	if h.cookieName == "" {
		return
	}
	maxAge := int(token.ExpiresAt.Sub(h.now()).Seconds())
	if maxAge <= 0 {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token.AccessToken, maxAge, "/", "", c.Request.TLS != nil, true)
}
