package catalog_repo

import (
	"invoicer/internal/domain/catalogs/client"
	"invoicer/internal/infrastructure/storage/postgres"
)

const clientTable = "clients"

var _ client.Repository = (*ClientRepo)(nil)

// ClientRepo implements client.Repository. Clients are listed by name.
type ClientRepo struct {
	*BaseCatalogRepo[*client.Client]
}

// NewClientRepo creates a new client repository.
func NewClientRepo(db postgres.QuerierProvider) *ClientRepo {
	return &ClientRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*client.Client](
			db,
			clientTable,
			"client",
			postgres.ExtractDBColumns[client.Client](),
			[]string{"name ASC", "id ASC"},
			func() *client.Client { return new(client.Client) },
		),
	}
}
