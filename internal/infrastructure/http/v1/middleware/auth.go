package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"invoicer/internal/core/apperror"
	appctx "invoicer/internal/core/context"
)

// JWTValidator interface for token validation.
type JWTValidator interface {
	ValidateToken(tokenString string) (*appctx.UserContext, error)
}

// Auth middleware validates JWT tokens and populates user context.
// The token is read from the Authorization header, falling back to the
// cookieName cookie used by the browser dashboard.
func Auth(validator JWTValidator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractToken(c, cookieName)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		user, verr := validator.ValidateToken(tokenString)
		if verr != nil || user == nil {
			_ = c.Error(apperror.NewUnauthorized("invalid token"))
			c.Abort()
			return
		}

		ctx := appctx.WithUser(c.Request.Context(), user)
		c.Request = c.Request.WithContext(ctx)

		// Store in gin context for easy access
		c.Set("user_id", user.UserID)

		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) (string, *apperror.AppError) {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
			return "", apperror.NewUnauthorized("invalid authorization header format")
		}
		return strings.TrimSpace(parts[1]), nil
	}

	if cookieName != "" {
		if v, err := c.Cookie(cookieName); err == nil && v != "" {
			return v, nil
		}
	}

	return "", apperror.NewUnauthorized("missing authorization header")
}
