// Package client provides the Client catalog: the people and companies an
// owner bills.
package client

import (
	"context"
	"regexp"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/entity"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Client represents a billed party.
type Client struct {
	entity.Resource

	// Email is the primary contact email
	Email *string `db:"email" json:"email"`

	// Phone is the primary contact phone
	Phone *string `db:"phone" json:"phone"`

	// Address is the postal address
	Address *string `db:"address" json:"address"`

	// TaxID is the VAT or tax registration number
	TaxID *string `db:"tax_id" json:"tax_id"`
}

// Validate implements entity.Validatable.
func (c *Client) Validate(ctx context.Context) error {
	if err := c.Resource.Validate(ctx); err != nil {
		return err
	}
	if c.Email != nil && *c.Email != "" && !emailRE.MatchString(*c.Email) {
		return apperror.NewValidation("invalid email format").WithDetail("field", "email")
	}
	return nil
}
