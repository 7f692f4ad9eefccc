// Package serviceitem provides the catalog of services an owner bills for
// (consulting hours, subscriptions and the like).
package serviceitem

import (
	"context"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/entity"
	"invoicer/internal/core/types"
)

// ServiceItem represents a billable service.
type ServiceItem struct {
	entity.Resource

	Description *string     `db:"description" json:"description"`
	Amount      types.Money `db:"amount" json:"amount"`
	Category    *string     `db:"category" json:"category"`
}

// Validate implements entity.Validatable.
func (s *ServiceItem) Validate(ctx context.Context) error {
	if err := s.Resource.Validate(ctx); err != nil {
		return err
	}
	if s.Amount.IsNegative() {
		return apperror.NewValidation("amount must not be negative").WithDetail("field", "amount")
	}
	return nil
}
