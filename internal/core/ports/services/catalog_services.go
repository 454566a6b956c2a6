package services

import (
	"context"

	"github.com/zetaenergy/zeta_books/internal/core/domain"
	"github.com/zetaenergy/zeta_books/internal/dto"
)

// CatalogSvcFacade manages the append-only product catalog: built-in
// defaults plus user-added entries.
type CatalogSvcFacade interface {
	// AddProduct appends a new product. Returns apperrors.ErrValidation
	// when name or size is blank after trimming, or apperrors.ErrDuplicate
	// when a product with the same case-insensitive (name, size) already
	// exists in the defaults or the stored catalog, regardless of category.
	AddProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)

	// ListProducts returns the full catalog: defaults first, then
	// user-added entries in insertion order.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
