package catalog_repo

import (
	"invoicer/internal/domain/catalogs/product"
	"invoicer/internal/infrastructure/storage/postgres"
)

const productTable = "products"

var _ product.Repository = (*ProductRepo)(nil)

// ProductRepo implements product.Repository. Newest products come first.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

// NewProductRepo creates a new product repository.
func NewProductRepo(db postgres.QuerierProvider) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*product.Product](
			db,
			productTable,
			"product",
			postgres.ExtractDBColumns[product.Product](),
			[]string{"created_at DESC", "id DESC"},
			func() *product.Product { return new(product.Product) },
		),
	}
}
