package repositories

import (
	"context"

	"github.com/zetaenergy/zeta_books/internal/core/domain"
)

// ClientReaderRepository defines read operations for client records.
type ClientReaderRepository interface {
	// FindClientByID retrieves a client by ID, or apperrors.ErrNotFound.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves all clients in insertion order.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriterRepository defines write operations for client records.
type ClientWriterRepository interface {
	// SaveClient appends a new client to the collection.
	SaveClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client. Deletion does not cascade to
	// transactions referencing the client.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientRepositoryFacade combines all client repository interfaces.
type ClientRepositoryFacade interface {
	ClientReaderRepository
	ClientWriterRepository
}
