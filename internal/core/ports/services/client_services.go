package services

import (
	"context"

	"github.com/zetaenergy/zeta_books/internal/core/domain"
	"github.com/zetaenergy/zeta_books/internal/dto"
)

// ClientReaderSvc defines read operations for client records.
type ClientReaderSvc interface {
	// GetClient retrieves a client by ID, or apperrors.ErrNotFound.
	GetClient(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves all clients in insertion order.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for client records.
type ClientWriterSvc interface {
	// CreateClient registers a new client. Returns apperrors.ErrValidation
	// when the name is blank.
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)

	// DeleteClient removes a client. Transactions referencing the client
	// are left untouched and resolve to the Unknown sentinel afterwards.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientSvcFacade combines all client-related service interfaces.
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
