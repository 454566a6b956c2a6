package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zetaenergy/zeta_books/internal/apperrors"
	"github.com/zetaenergy/zeta_books/internal/core/domain"
	portssvc "github.com/zetaenergy/zeta_books/internal/core/ports/services"
	"github.com/zetaenergy/zeta_books/internal/dto"
	"github.com/zetaenergy/zeta_books/internal/handlers"
	"github.com/zetaenergy/zeta_books/internal/middleware"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) AmendTransaction(ctx context.Context, transactionID string, newAmountPaid decimal.Decimal) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, newAmountPaid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ClientDisplayName(ctx context.Context, clientID string) string {
	args := m.Called(ctx, clientID)
	return args.String(0)
}

func (m *MockTransactionService) ProductDisplayName(ctx context.Context, productID string) string {
	args := m.Called(ctx, productID)
	return args.String(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	jwtSecret   string
}

func (suite *TransactionHandlerTestSuite) generateTestToken() string {
	claims := jwt.RegisteredClaims{
		Issuer:    "zeta-books-test",
		Subject:   "bookkeeper",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockTransactionService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTransactionRoutes(v1, suite.mockService)
}

func (suite *TransactionHandlerTestSuite) doJSON(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	txn := &domain.Transaction{
		TransactionID: "txn-1",
		ClientID:      "c1",
		ProductID:     "p1",
		Quantity:      2,
		PricePerUnit:  decimal.NewFromInt(25),
		TotalPrice:    decimal.NewFromInt(50),
		Date:          time.Now().UTC(),
		PaymentStatus: domain.StatusPending,
		AmountPaid:    decimal.NewFromInt(10),
		AmountDue:     decimal.NewFromInt(40),
	}

	suite.mockService.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
		return r.ClientID == "c1" && r.Quantity == 2
	})).Return(txn, nil).Once()
	suite.mockService.On("ClientDisplayName", mock.Anything, "c1").Return("Acme Haulage").Once()
	suite.mockService.On("ProductDisplayName", mock.Anything, "p1").Return("Granit Maximum 15W40 (20L)").Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/transactions", gin.H{
		"clientId":     "c1",
		"productId":    "p1",
		"quantity":     2,
		"pricePerUnit": "25",
		"amountPaid":   "10",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("txn-1", resp.TransactionID)
	suite.Equal("Acme Haulage", resp.ClientName)
	suite.Equal("pending", resp.PaymentStatus)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ValidationError() {
	suite.mockService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/transactions", gin.H{
		"clientId":     "c1",
		"productId":    "p1",
		"quantity":     1,
		"pricePerUnit": "10",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MissingFieldsRejectedByBinding() {
	w := suite.doJSON(http.MethodPost, "/api/v1/transactions", gin.H{"clientId": "c1"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestAmendTransaction_NotFound() {
	suite.mockService.On("AmendTransaction", mock.Anything, "missing", mock.AnythingOfType("decimal.Decimal")).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodPatch, "/api/v1/transactions/missing/payment", gin.H{"amountPaid": "50"})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_RequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_ResolvesDanglingReferences() {
	transactions := []domain.Transaction{{
		TransactionID: "t1",
		ClientID:      "deleted-client",
		ProductID:     "p1",
		Quantity:      1,
		PricePerUnit:  decimal.NewFromInt(10),
		TotalPrice:    decimal.NewFromInt(10),
		Date:          time.Now().UTC(),
		PaymentStatus: domain.StatusSettled,
		AmountPaid:    decimal.NewFromInt(10),
		AmountDue:     decimal.Zero,
	}}

	suite.mockService.On("ListTransactions", mock.Anything).Return(transactions, nil).Once()
	suite.mockService.On("ClientDisplayName", mock.Anything, "deleted-client").Return(domain.UnknownClientName).Once()
	suite.mockService.On("ProductDisplayName", mock.Anything, "p1").Return("Granit Maximum 15W40 (20L)").Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/transactions", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal(domain.UnknownClientName, resp[0].ClientName)
	suite.mockService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
