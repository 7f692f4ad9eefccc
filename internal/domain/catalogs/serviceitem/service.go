package serviceitem

import (
	"context"

	"invoicer/internal/core/apperror"
	"invoicer/internal/core/tx"
	"invoicer/internal/core/types"
	"invoicer/internal/domain"
)

// Repository defines the interface for ServiceItem persistence.
type Repository = domain.CatalogRepository[*ServiceItem]

// Service provides business logic for the services catalog.
type Service struct {
	*domain.CatalogService[*ServiceItem]
}

// NewService creates a new ServiceItem service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*ServiceItem]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "service",
	})

	base.Hooks().OnBeforeCreate(roundAmount)
	base.Hooks().OnBeforeUpdate(roundAmount)

	return &Service{CatalogService: base}
}

func roundAmount(_ context.Context, s *ServiceItem) error {
	amount, err := types.NormalizeMoney(s.Amount)
	if err != nil {
		return apperror.NewValidation(err.Error()).WithDetail("field", "amount")
	}
	s.Amount = amount
	return nil
}
