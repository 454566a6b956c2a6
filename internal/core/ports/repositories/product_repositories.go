package repositories

import (
	"context"

	"github.com/zetaenergy/zeta_books/internal/core/domain"
)

// ProductRepositoryFacade defines persistence for user-added catalog
// entries. The catalog is append-only: there is no update or delete.
type ProductRepositoryFacade interface {
	// SaveProduct appends a new product to the user-added collection.
	SaveProduct(ctx context.Context, product domain.Product) error

	// ListProducts retrieves all user-added products in insertion order.
	// Built-in defaults are not stored and are prepended by the catalog
	// service.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
