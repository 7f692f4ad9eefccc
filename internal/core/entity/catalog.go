package entity

import (
	"context"
	"strings"

	"invoicer/internal/core/apperror"
)

// Resource is the base type for the owner's reference records
// (clients, products, services).
type Resource struct {
	OwnedEntity

	// Name is the display name
	Name string `db:"name" json:"name"`
}

// Validate implements Validatable interface.
func (r *Resource) Validate(ctx context.Context) error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return apperror.NewRequiredField("name")
	}
	return nil
}
