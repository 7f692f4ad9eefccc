// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/id"
	"invoicer/internal/core/types"
	"invoicer/internal/domain/invoice"
)

// IDResponse is returned by create endpoints.
type IDResponse struct {
	ID id.ID `json:"id"`
}

// SuccessResponse is returned by update and delete endpoints.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse documents the body rendered by middleware.ErrorHandler.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Amount is a money value in a request body. It accepts a JSON number or a
// numeric string with the rules of types.NewMoneyFromString: no exponent
// form, not negative, rounded to cents.
type Amount struct {
	types.Money
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
	}
	m, err := types.NewMoneyFromString(raw)
	if err != nil {
		return err
	}
	a.Money = m
	return nil
}

// Value returns the amount, or nil when the field was absent or null.
func (a *Amount) Value() *types.Money {
	if a == nil {
		return nil
	}
	m := a.Money
	return &m
}

// ParseDate parses an optional calendar date. Both YYYY-MM-DD and RFC 3339
// timestamps are accepted; blank input is treated as absent.
func ParseDate(field string, raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(invoice.DateLayout, s); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		// the written day wins over the offset
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return &day, nil
	}
	return nil, apperror.NewValidation("invalid date, expected YYYY-MM-DD").
		WithDetail("field", field).
		WithDetail("value", s)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(invoice.DateLayout)
	return &s
}
