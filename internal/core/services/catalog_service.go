package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/zetaenergy/zeta_books/internal/apperrors"
	"github.com/zetaenergy/zeta_books/internal/core/domain"
	portsrepo "github.com/zetaenergy/zeta_books/internal/core/ports/repositories"
	portssvc "github.com/zetaenergy/zeta_books/internal/core/ports/services"
	"github.com/zetaenergy/zeta_books/internal/dto"
)

// catalogService provides the product catalog: built-in defaults plus
// user-added entries, with duplicate detection on (name, size).
type catalogService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
	defaults    []domain.Product
	now         func() time.Time
}

// CatalogServiceOption is a functional option for configuring the catalog
// service.
type CatalogServiceOption func(*catalogService)

// WithCatalogClock overrides the wall clock used for slug derivation, for
// tests.
func WithCatalogClock(now func() time.Time) CatalogServiceOption {
	return func(s *catalogService) {
		s.now = now
	}
}

// WithCatalogDefaults overrides the built-in default products.
func WithCatalogDefaults(defaults []domain.Product) CatalogServiceOption {
	return func(s *catalogService) {
		s.defaults = defaults
	}
}

// NewCatalogService creates a new catalog service with the provided options.
func NewCatalogService(productRepo portsrepo.ProductRepositoryFacade, options ...CatalogServiceOption) portssvc.CatalogSvcFacade {
	svc := &catalogService{
		productRepo: productRepo,
		defaults:    domain.DefaultProducts(),
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

// AddProduct implements portssvc.CatalogSvcFacade.
func (s *catalogService) AddProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	size := strings.TrimSpace(req.Size)
	if name == "" {
		return nil, fmt.Errorf("%w: product name is required", apperrors.ErrValidation)
	}
	if size == "" {
		return nil, fmt.Errorf("%w: product size is required", apperrors.ErrValidation)
	}
	category := domain.ProductCategory(req.Category)
	if !domain.ValidCategory(category) {
		return nil, fmt.Errorf("%w: unknown product category %q", apperrors.ErrValidation, req.Category)
	}

	existing, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	// Duplicate check ignores category: a 20L pail and a 20L drum of the
	// same name and size are the same catalog entry.
	for _, p := range existing {
		if domain.SameProduct(p.Name, p.Size, name, size) {
			return nil, fmt.Errorf("%w: product %s (%s)", apperrors.ErrDuplicate, name, size)
		}
	}

	product := domain.Product{
		ProductID: domain.ProductSlug(s.now(), name, size),
		Name:      name,
		Size:      size,
		Category:  category,
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("product_id", product.ProductID))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.LogInfo(ctx, "Product added to catalog",
		slog.String("product_id", product.ProductID),
		slog.String("name", product.Name),
		slog.String("size", product.Size))
	return &product, nil
}

// ListProducts implements portssvc.CatalogSvcFacade. Defaults come first,
// then user-added entries in insertion order.
func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	stored, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	catalog := make([]domain.Product, 0, len(s.defaults)+len(stored))
	catalog = append(catalog, s.defaults...)
	catalog = append(catalog, stored...)
	return catalog, nil
}
