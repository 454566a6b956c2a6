package repositories

import (
	"context"

	"github.com/zetaenergy/zeta_books/internal/core/domain"
)

// TransactionReaderRepository defines read operations for transactions.
type TransactionReaderRepository interface {
	// FindTransactionByID retrieves a transaction by ID, or
	// apperrors.ErrNotFound.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions in insertion order.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriterRepository defines write operations for transactions.
// Transactions are never deleted; amendments replace the stored value.
type TransactionWriterRepository interface {
	// SaveTransaction appends a new transaction to the collection.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// ReplaceTransaction swaps the stored transaction with the amended
	// value, matched by TransactionID. Returns apperrors.ErrNotFound when
	// no stored transaction has that ID.
	ReplaceTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReaderRepository
	TransactionWriterRepository
}
