package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactories_HTTPStatus(t *testing.T) {
	cause := errors.New("conn refused")

	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"validation", NewValidation("bad"), CodeValidation, http.StatusBadRequest},
		{"required", NewRequiredField("amount"), CodeValidation, http.StatusBadRequest},
		{"not found", NewNotFound("invoice", int64(7)), CodeNotFound, http.StatusNotFound},
		{"storage", NewStorage(cause), CodeDatabase, http.StatusInternalServerError},
		{"unauthorized", NewUnauthorized("no token"), CodeUnauthorized, http.StatusUnauthorized},
		{"render", NewRender(cause), CodeRender, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, GetHTTPStatus(tt.err))
		})
	}
}

func TestStorage_HidesCause(t *testing.T) {
	cause := errors.New("dial tcp postgres://user:secret@db:5432")
	err := NewStorage(cause)

	assert.Equal(t, "Storage failure", err.Message)
	assert.ErrorIs(t, err, cause)
}

func TestAsAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("create invoice: %w", NewNotFound("invoice", 1))

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("plain")))
}

func TestRequiredField_Detail(t *testing.T) {
	err := NewRequiredField("invoice_number")
	assert.Equal(t, "invoice_number is required", err.Message)
	assert.Equal(t, "invoice_number", err.Details["field"])
}
