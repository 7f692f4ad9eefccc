package product

import (
	"context"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/tx"
	"invoicer/internal/core/types"
	"invoicer/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository = domain.CatalogRepository[*Product]

// Service provides business logic for the Product catalog.
type Service struct {
	*domain.CatalogService[*Product]
}

// NewService creates a new Product service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "product",
	})

	base.Hooks().OnBeforeCreate(roundPrice)
	base.Hooks().OnBeforeUpdate(roundPrice)

	return &Service{CatalogService: base}
}

func roundPrice(_ context.Context, p *Product) error {
	price, err := types.NormalizeMoney(p.Price)
	if err != nil {
		return apperror.NewValidation(err.Error()).WithDetail("field", "price")
	}
	p.Price = price
	return nil
}
