package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	appctx "invoicer/internal/core/context"
)

type stubValidator struct {
	token string
}

func (v stubValidator) ValidateToken(tokenString string) (*appctx.UserContext, error) {
	if tokenString != v.token {
		return nil, errors.New("bad token")
	}
	return &appctx.UserContext{UserID: 7, Email: "a@example.com"}, nil
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/me", Auth(stubValidator{token: "good"}, "token"), func(c *gin.Context) {
		ownerID, ok := appctx.GetOwnerID(c.Request.Context())
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"owner": ownerID})
	})
	return r
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		cookie   string
		wantCode int
	}{
		{name: "bearer", header: "Bearer good", wantCode: http.StatusOK},
		{name: "lowercase scheme", header: "bearer good", wantCode: http.StatusOK},
		{name: "cookie fallback", cookie: "good", wantCode: http.StatusOK},
		{name: "missing", wantCode: http.StatusUnauthorized},
		{name: "bad scheme", header: "Basic good", wantCode: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer ", wantCode: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer nope", wantCode: http.StatusUnauthorized},
		{name: "invalid cookie", cookie: "nope", wantCode: http.StatusUnauthorized},
		{name: "header wins over cookie", header: "Bearer nope", cookie: "good", wantCode: http.StatusUnauthorized},
	}

	r := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
			} else {
				assert.JSONEq(t, `{"owner":7}`, rec.Body.String())
			}
		})
	}
}
