// Package product provides the Product catalog (goods an owner sells).
package product

import (
	"context"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/entity"
	"invoicer/internal/core/types"
)

// Product represents a sellable item.
type Product struct {
	entity.Resource

	Description *string     `db:"description" json:"description"`
	Price       types.Money `db:"price" json:"price"`
	Category    *string     `db:"category" json:"category"`
}

// Validate implements entity.Validatable.
func (p *Product) Validate(ctx context.Context) error {
	if err := p.Resource.Validate(ctx); err != nil {
		return err
	}
	if p.Price.IsNegative() {
		return apperror.NewValidation("price must not be negative").WithDetail("field", "price")
	}
	return nil
}
