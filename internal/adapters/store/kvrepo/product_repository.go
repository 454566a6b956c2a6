package kvrepo

import (
	"context"
	"fmt"

	"github.com/zetaenergy/zeta_books/internal/core/domain"
	portsrepo "github.com/zetaenergy/zeta_books/internal/core/ports/repositories"
)

// KeyProducts is the store key for the user-added product collection.
// Built-in defaults are code, not data, and are never stored.
const KeyProducts = "products"

// KVProductRepository persists user-added products as one JSON array under
// KeyProducts.
type KVProductRepository struct {
	store portsrepo.KVStore
}

// NewKVProductRepository creates a new repository for catalog entries.
func NewKVProductRepository(store portsrepo.KVStore) portsrepo.ProductRepositoryFacade {
	return &KVProductRepository{store: store}
}

// SaveProduct appends a product to the collection and writes it back whole.
func (r *KVProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	products, err := r.ListProducts(ctx)
	if err != nil {
		return err
	}
	products = append(products, product)
	if err := r.store.Set(ctx, KeyProducts, products); err != nil {
		return fmt.Errorf("failed to save product %s: %w", product.ProductID, err)
	}
	return nil
}

// ListProducts retrieves all user-added products in insertion order. A
// missing or unparseable collection is an empty one.
func (r *KVProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	if _, err := r.store.Get(ctx, KeyProducts, &products); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
