package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zetaenergy/zeta_books/internal/apperrors"
	"github.com/zetaenergy/zeta_books/internal/core/domain"
	portssvc "github.com/zetaenergy/zeta_books/internal/core/ports/services"
	"github.com/zetaenergy/zeta_books/internal/core/services"
	"github.com/zetaenergy/zeta_books/internal/dto"
)

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

// --- Test Suite ---
type CatalogServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProductRepository
	service  portssvc.CatalogSvcFacade
	fixedNow time.Time
	defaults []domain.Product
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProductRepository)
	suite.fixedNow = time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	suite.defaults = []domain.Product{
		{ProductID: "granit_maximum_15w40_20l", Name: "Granit Maximum 15W40", Size: "20L", Category: domain.CategoryPail},
	}
	suite.service = services.NewCatalogService(
		suite.mockRepo,
		services.WithCatalogClock(func() time.Time { return suite.fixedNow }),
		services.WithCatalogDefaults(suite.defaults),
	)
}

// --- Test Cases ---

func (suite *CatalogServiceTestSuite) TestAddProduct_Success() {
	ctx := context.Background()
	req := dto.CreateProductRequest{Name: "  Agrifarm 10W30  ", Size: "5L", Category: "Small Bottles"}

	suite.mockRepo.On("ListProducts", ctx).Return([]domain.Product{}, nil).Once()
	suite.mockRepo.On("SaveProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == "Agrifarm 10W30" && p.Size == "5L" && p.Category == domain.CategorySmallBottles
	})).Return(nil).Once()

	product, err := suite.service.AddProduct(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("Agrifarm 10W30", product.Name)
	suite.Equal(domain.ProductSlug(suite.fixedNow, "Agrifarm 10W30", "5L"), product.ProductID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestAddProduct_DuplicateOfStored() {
	ctx := context.Background()
	stored := []domain.Product{{ProductID: "x", Name: "Agrifarm 10W30", Size: "5L", Category: domain.CategoryPail}}
	suite.mockRepo.On("ListProducts", ctx).Return(stored, nil).Once()

	// Case and whitespace differences still collide, and category is ignored.
	product, err := suite.service.AddProduct(ctx, dto.CreateProductRequest{Name: "agrifarm 10w30 ", Size: " 5l", Category: "Drums"})

	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *CatalogServiceTestSuite) TestAddProduct_DuplicateOfDefault() {
	ctx := context.Background()
	suite.mockRepo.On("ListProducts", ctx).Return([]domain.Product{}, nil).Once()

	product, err := suite.service.AddProduct(ctx, dto.CreateProductRequest{Name: "Granit Maximum 15W40", Size: "20L", Category: "Pail"})

	suite.Nil(product)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *CatalogServiceTestSuite) TestAddProduct_ValidationErrors() {
	ctx := context.Background()

	testCases := []struct {
		name string
		req  dto.CreateProductRequest
	}{
		{"blank name", dto.CreateProductRequest{Name: "  ", Size: "5L", Category: "Pail"}},
		{"blank size", dto.CreateProductRequest{Name: "Agrifarm", Size: "", Category: "Pail"}},
		{"unknown category", dto.CreateProductRequest{Name: "Agrifarm", Size: "5L", Category: "Barrel"}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			product, err := suite.service.AddProduct(ctx, tc.req)
			suite.Nil(product)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *CatalogServiceTestSuite) TestListProducts_DefaultsFirst() {
	ctx := context.Background()
	stored := []domain.Product{{ProductID: "u1", Name: "User Added", Size: "1L", Category: domain.CategorySmallBottles}}
	suite.mockRepo.On("ListProducts", ctx).Return(stored, nil).Once()

	products, err := suite.service.ListProducts(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(products, 2)
	suite.Equal("granit_maximum_15w40_20l", products[0].ProductID)
	suite.Equal("u1", products[1].ProductID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestListProducts_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError
	suite.mockRepo.On("ListProducts", ctx).Return(nil, expectedErr).Once()

	products, err := suite.service.ListProducts(ctx)

	suite.Nil(products)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestCatalogService(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
