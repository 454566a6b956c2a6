// Package kvrepo implements the repository ports over a KVStore. Each
// collection is one whole JSON array under a fixed key, matching the store's
// whole-value replacement contract: every write replaces the full array.
// Reads go straight to the store so external writes are picked up on the
// next read.
package kvrepo

import (
	"context"
	"fmt"

	"github.com/zetaenergy/zeta_books/internal/apperrors"
	"github.com/zetaenergy/zeta_books/internal/core/domain"
	portsrepo "github.com/zetaenergy/zeta_books/internal/core/ports/repositories"
)

// KeyClients is the store key for the client collection.
const KeyClients = "clients"

// KVClientRepository persists clients as one JSON array under KeyClients.
type KVClientRepository struct {
	store portsrepo.KVStore
}

// NewKVClientRepository creates a new repository for client records.
func NewKVClientRepository(store portsrepo.KVStore) portsrepo.ClientRepositoryFacade {
	return &KVClientRepository{store: store}
}

// SaveClient appends a client to the collection and writes it back whole.
func (r *KVClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	clients, err := r.ListClients(ctx)
	if err != nil {
		return err
	}
	clients = append(clients, client)
	if err := r.store.Set(ctx, KeyClients, clients); err != nil {
		return fmt.Errorf("failed to save client %s: %w", client.ClientID, err)
	}
	return nil
}

// FindClientByID retrieves a client by ID.
func (r *KVClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	clients, err := r.ListClients(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		if c.ClientID == clientID {
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListClients retrieves all clients in insertion order. A missing or
// unparseable collection is an empty one.
func (r *KVClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients := []domain.Client{}
	if _, err := r.store.Get(ctx, KeyClients, &clients); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// DeleteClient removes a client from the collection. Deleting an unknown
// client reports apperrors.ErrNotFound.
func (r *KVClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	clients, err := r.ListClients(ctx)
	if err != nil {
		return err
	}
	remaining := make([]domain.Client, 0, len(clients))
	found := false
	for _, c := range clients {
		if c.ClientID == clientID {
			found = true
			continue
		}
		remaining = append(remaining, c)
	}
	if !found {
		return apperrors.ErrNotFound
	}
	if err := r.store.Set(ctx, KeyClients, remaining); err != nil {
		return fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}
	return nil
}
