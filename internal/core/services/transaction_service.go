package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zetaenergy/zeta_books/internal/apperrors"
	"github.com/zetaenergy/zeta_books/internal/core/domain"
	portsrepo "github.com/zetaenergy/zeta_books/internal/core/ports/repositories"
	portssvc "github.com/zetaenergy/zeta_books/internal/core/ports/services"
	"github.com/zetaenergy/zeta_books/internal/dto"
)

// transactionService is the transaction engine: it derives the money fields
// at creation, amends payments with an audit trail, and resolves display
// names for references that may dangle.
type transactionService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	clientRepo  portsrepo.ClientReaderRepository
	catalogSvc  portssvc.CatalogSvcFacade
	idGenerator portssvc.IDGenerator
	now         func() time.Time
}

// TransactionServiceOption is a functional option for configuring the
// transaction service.
type TransactionServiceOption func(*transactionService)

// WithTransactionIDGenerator overrides the default UUID generator.
func WithTransactionIDGenerator(gen portssvc.IDGenerator) TransactionServiceOption {
	return func(s *transactionService) {
		s.idGenerator = gen
	}
}

// WithTransactionClock overrides the wall clock, for tests.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service with the provided
// options.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	clientRepo portsrepo.ClientReaderRepository,
	catalogSvc portssvc.CatalogSvcFacade,
	options ...TransactionServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo:     txnRepo,
		clientRepo:  clientRepo,
		catalogSvc:  catalogSvc,
		idGenerator: NewUUIDGenerator(),
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction implements portssvc.TransactionWriterSvc.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if strings.TrimSpace(req.ClientID) == "" {
		return nil, fmt.Errorf("%w: clientId is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.ProductID) == "" {
		return nil, fmt.Errorf("%w: productId is required", apperrors.ErrValidation)
	}
	if req.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", apperrors.ErrValidation)
	}
	if req.PricePerUnit.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: pricePerUnit must be greater than zero", apperrors.ErrValidation)
	}

	date := s.now()
	if req.Date != nil {
		date = *req.Date
	}

	// TotalPrice is frozen here: later quantity or price edits are not
	// defined, and amendments always re-derive from this value.
	totalPrice := req.PricePerUnit.Mul(decimal.NewFromInt(req.Quantity))
	amountPaid := domain.ClampPayment(req.AmountPaid, totalPrice)
	amountDue := domain.AmountDueFor(totalPrice, amountPaid)

	txn := domain.Transaction{
		TransactionID: s.idGenerator.NewID(),
		ClientID:      req.ClientID,
		ProductID:     req.ProductID,
		Quantity:      req.Quantity,
		PricePerUnit:  req.PricePerUnit,
		TotalPrice:    totalPrice,
		Date:          date,
		PaymentStatus: domain.StatusFor(amountDue),
		AmountPaid:    amountPaid,
		AmountDue:     amountDue,
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("client_id", txn.ClientID),
		slog.String("total_price", txn.TotalPrice.String()),
		slog.String("payment_status", string(txn.PaymentStatus)))
	return &txn, nil
}

// AmendTransaction implements portssvc.TransactionWriterSvc.
func (s *transactionService) AmendTransaction(ctx context.Context, transactionID string, newAmountPaid decimal.Decimal) (*domain.Transaction, error) {
	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	amended := existing.ApplyPayment(newAmountPaid, s.now())

	if err := s.txnRepo.ReplaceTransaction(ctx, amended); err != nil {
		s.LogError(ctx, err, "Failed to replace amended transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to replace transaction %s: %w", transactionID, err)
	}

	s.LogInfo(ctx, "Transaction amended",
		slog.String("transaction_id", transactionID),
		slog.String("amount_paid", amended.AmountPaid.String()),
		slog.String("payment_status", string(amended.PaymentStatus)),
		slog.Int("edit_count", len(amended.EditHistory)))
	return &amended, nil
}

// GetTransaction implements portssvc.TransactionReaderSvc.
func (s *transactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, transactionID)
}

// ListTransactions implements portssvc.TransactionReaderSvc.
func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.txnRepo.ListTransactions(ctx)
}

// ClientDisplayName resolves a client reference to its display name. A
// dangling reference resolves to the Unknown sentinel, never an error, so a
// report render cannot fail on a deleted client.
func (s *transactionService) ClientDisplayName(ctx context.Context, clientID string) string {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return domain.UnknownClientName
	}
	return client.Name
}

// ProductDisplayName resolves a product reference to "Name (Size)", or the
// Unknown sentinel for a dangling reference.
func (s *transactionService) ProductDisplayName(ctx context.Context, productID string) string {
	products, err := s.catalogSvc.ListProducts(ctx)
	if err != nil {
		return domain.UnknownProductName
	}
	for _, p := range products {
		if p.ProductID == productID {
			return fmt.Sprintf("%s (%s)", p.Name, p.Size)
		}
	}
	return domain.UnknownProductName
}
