package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/zetaenergy/zeta_books/internal/core/domain"
	"github.com/zetaenergy/zeta_books/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions.
type TransactionReaderSvc interface {
	// GetTransaction retrieves a single transaction, or apperrors.ErrNotFound.
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions in insertion order.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines the create and amend operations of the
// transaction engine.
type TransactionWriterSvc interface {
	// CreateTransaction validates the request, computes the derived money
	// fields and persists the new transaction. Returns
	// apperrors.ErrValidation on blank references, quantity below one or a
	// non-positive price.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// AmendTransaction replaces the amount paid on an existing transaction,
	// re-deriving the due amount and status from the frozen total and
	// appending one audit entry. Returns apperrors.ErrNotFound when the
	// transaction does not exist.
	AmendTransaction(ctx context.Context, transactionID string, newAmountPaid decimal.Decimal) (*domain.Transaction, error)
}

// DisplayNameResolverSvc resolves entity references to display names,
// substituting the Unknown sentinels for dangling references.
type DisplayNameResolverSvc interface {
	ClientDisplayName(ctx context.Context, clientID string) string
	ProductDisplayName(ctx context.Context, productID string) string
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	DisplayNameResolverSvc
}
