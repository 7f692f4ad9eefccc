// Package types provides common type aliases and utilities.
package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits stored for amounts.
const MoneyScale = 2

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// NewMoneyFromString parses a monetary value and rounds it to cents.
// Empty input, exponent forms and negative values are rejected.
func NewMoneyFromString(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	if strings.ContainsAny(s, "eE") {
		return decimal.Zero, fmt.Errorf("amount %q: exponent form is not allowed", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q: %w", s, err)
	}
	return NormalizeMoney(d)
}

// NormalizeMoney rounds d to cents and rejects negative values.
func NormalizeMoney(d Money) (Money, error) {
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must not be negative (got %s)", d.String())
	}
	return d.Round(MoneyScale), nil
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FormatMoney renders exactly two fractional digits ("1234.50").
func FormatMoney(m Money) string {
	return m.StringFixed(MoneyScale)
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}
