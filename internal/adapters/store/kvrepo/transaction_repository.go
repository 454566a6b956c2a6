package kvrepo

import (
	"context"
	"fmt"

	"github.com/zetaenergy/zeta_books/internal/apperrors"
	"github.com/zetaenergy/zeta_books/internal/core/domain"
	portsrepo "github.com/zetaenergy/zeta_books/internal/core/ports/repositories"
)

// KeyTransactions is the store key for the transaction collection.
const KeyTransactions = "transactions"

// KVTransactionRepository persists transactions as one JSON array under
// KeyTransactions.
type KVTransactionRepository struct {
	store portsrepo.KVStore
}

// NewKVTransactionRepository creates a new repository for transactions.
func NewKVTransactionRepository(store portsrepo.KVStore) portsrepo.TransactionRepositoryFacade {
	return &KVTransactionRepository{store: store}
}

// SaveTransaction appends a transaction to the collection and writes it
// back whole.
func (r *KVTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	transactions, err := r.ListTransactions(ctx)
	if err != nil {
		return err
	}
	transactions = append(transactions, txn)
	if err := r.store.Set(ctx, KeyTransactions, transactions); err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by ID.
func (r *KVTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	transactions, err := r.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range transactions {
		if t.TransactionID == transactionID {
			return &t, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListTransactions retrieves all transactions in insertion order. A missing
// or unparseable collection is an empty one.
func (r *KVTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	if _, err := r.store.Get(ctx, KeyTransactions, &transactions); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// ReplaceTransaction swaps the stored transaction with the amended value,
// keeping its position in the collection.
func (r *KVTransactionRepository) ReplaceTransaction(ctx context.Context, txn domain.Transaction) error {
	transactions, err := r.ListTransactions(ctx)
	if err != nil {
		return err
	}
	found := false
	for i, t := range transactions {
		if t.TransactionID == txn.TransactionID {
			transactions[i] = txn
			found = true
			break
		}
	}
	if !found {
		return apperrors.ErrNotFound
	}
	if err := r.store.Set(ctx, KeyTransactions, transactions); err != nil {
		return fmt.Errorf("failed to replace transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}
