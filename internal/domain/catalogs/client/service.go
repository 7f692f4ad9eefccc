package client

import (
	"context"
	"strings"

	"invoicer/internal/core/tx"
	"invoicer/internal/domain"
)

// Repository defines the interface for Client persistence.
type Repository = domain.CatalogRepository[*Client]

// Service provides business logic for the Client catalog.
type Service struct {
	*domain.CatalogService[*Client]
}

// NewService creates a new Client service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Client]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "client",
	})

	base.Hooks().OnBeforeCreate(normalize)
	base.Hooks().OnBeforeUpdate(normalize)

	return &Service{CatalogService: base}
}

// normalize trims optional contact fields and drops empty ones.
func normalize(_ context.Context, c *Client) error {
	c.Email = trimOrNil(c.Email, strings.ToLower)
	c.Phone = trimOrNil(c.Phone, nil)
	c.Address = trimOrNil(c.Address, nil)
	c.TaxID = trimOrNil(c.TaxID, strings.ToUpper)
	return nil
}

func trimOrNil(s *string, fn func(string) string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	if fn != nil {
		v = fn(v)
	}
	return &v
}
