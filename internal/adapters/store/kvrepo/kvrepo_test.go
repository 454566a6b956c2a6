package kvrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zetaenergy/zeta_books/internal/adapters/store/kvrepo"
	"github.com/zetaenergy/zeta_books/internal/adapters/store/memkv"
	"github.com/zetaenergy/zeta_books/internal/apperrors"
	"github.com/zetaenergy/zeta_books/internal/core/domain"
)

func TestKVClientRepository_SaveFindDelete(t *testing.T) {
	repo := kvrepo.NewKVClientRepository(memkv.New(nil))
	ctx := context.Background()

	client := domain.Client{ClientID: "c1", Name: "Acme Haulage", Phone: "555-0101", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.SaveClient(ctx, client))

	got, err := repo.FindClientByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Haulage", got.Name)

	_, err = repo.FindClientByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repo.DeleteClient(ctx, "c1"))
	_, err = repo.FindClientByID(ctx, "c1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, repo.DeleteClient(ctx, "c1"), apperrors.ErrNotFound)
}

func TestKVClientRepository_ListPreservesInsertionOrder(t *testing.T) {
	repo := kvrepo.NewKVClientRepository(memkv.New(nil))
	ctx := context.Background()

	for _, id := range []string{"c1", "c2", "c3"} {
		require.NoError(t, repo.SaveClient(ctx, domain.Client{ClientID: id}))
	}

	clients, err := repo.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 3)
	assert.Equal(t, "c1", clients[0].ClientID)
	assert.Equal(t, "c3", clients[2].ClientID)
}

func TestKVProductRepository_EmptyCollectionIsEmptySlice(t *testing.T) {
	repo := kvrepo.NewKVProductRepository(memkv.New(nil))

	products, err := repo.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestKVTransactionRepository_ReplaceKeepsPosition(t *testing.T) {
	repo := kvrepo.NewKVTransactionRepository(memkv.New(nil))
	ctx := context.Background()

	for _, id := range []string{"t1", "t2", "t3"} {
		require.NoError(t, repo.SaveTransaction(ctx, domain.Transaction{
			TransactionID: id,
			TotalPrice:    decimal.NewFromInt(100),
			AmountDue:     decimal.NewFromInt(100),
			PaymentStatus: domain.StatusPending,
		}))
	}

	amended := domain.Transaction{
		TransactionID: "t2",
		TotalPrice:    decimal.NewFromInt(100),
		AmountPaid:    decimal.NewFromInt(100),
		AmountDue:     decimal.Zero,
		PaymentStatus: domain.StatusSettled,
	}
	require.NoError(t, repo.ReplaceTransaction(ctx, amended))

	transactions, err := repo.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 3)
	assert.Equal(t, "t2", transactions[1].TransactionID)
	assert.Equal(t, domain.StatusSettled, transactions[1].PaymentStatus)

	assert.ErrorIs(t, repo.ReplaceTransaction(ctx, domain.Transaction{TransactionID: "nope"}), apperrors.ErrNotFound)
}

func TestKVTransactionRepository_MalformedStoredValueReadsAsEmpty(t *testing.T) {
	store := memkv.New(nil)
	repo := kvrepo.NewKVTransactionRepository(store)

	store.NotifyExternal(kvrepo.KeyTransactions, []byte("{corrupt"))

	transactions, err := repo.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestKVRepositories_ExternalWriteVisibleOnNextRead(t *testing.T) {
	store := memkv.New(nil)
	repo := kvrepo.NewKVClientRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.SaveClient(ctx, domain.Client{ClientID: "c1", Name: "Old Name"}))

	// Another process replaces the whole collection.
	store.NotifyExternal(kvrepo.KeyClients, []byte(`[{"id":"c1","name":"New Name","phone":"","createdAt":"2024-01-01T00:00:00Z"}]`))

	got, err := repo.FindClientByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
}
