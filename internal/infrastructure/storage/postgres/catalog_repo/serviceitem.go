package catalog_repo

import (
	"invoicer/internal/domain/catalogs/serviceitem"
	"invoicer/internal/infrastructure/storage/postgres"
)

const serviceTable = "services"

var _ serviceitem.Repository = (*ServiceItemRepo)(nil)

// ServiceItemRepo implements serviceitem.Repository. Newest services come first.
type ServiceItemRepo struct {
	*BaseCatalogRepo[*serviceitem.ServiceItem]
}

// NewServiceItemRepo creates a new services repository.
func NewServiceItemRepo(db postgres.QuerierProvider) *ServiceItemRepo {
	return &ServiceItemRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*serviceitem.ServiceItem](
			db,
			serviceTable,
			"service",
			postgres.ExtractDBColumns[serviceitem.ServiceItem](),
			[]string{"created_at DESC", "id DESC"},
			func() *serviceitem.ServiceItem { return new(serviceitem.ServiceItem) },
		),
	}
}
