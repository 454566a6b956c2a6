package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/zetaenergy/zeta_books/internal/apperrors"
	"github.com/zetaenergy/zeta_books/internal/core/domain"
	portsrepo "github.com/zetaenergy/zeta_books/internal/core/ports/repositories"
	portssvc "github.com/zetaenergy/zeta_books/internal/core/ports/services"
	"github.com/zetaenergy/zeta_books/internal/dto"
)

// clientService provides client record operations.
type clientService struct {
	BaseService
	clientRepo  portsrepo.ClientRepositoryFacade
	idGenerator portssvc.IDGenerator
	now         func() time.Time
}

// ClientServiceOption is a functional option for configuring the client
// service.
type ClientServiceOption func(*clientService)

// WithClientIDGenerator overrides the default UUID generator.
func WithClientIDGenerator(gen portssvc.IDGenerator) ClientServiceOption {
	return func(s *clientService) {
		s.idGenerator = gen
	}
}

// WithClientClock overrides the wall clock, for tests.
func WithClientClock(now func() time.Time) ClientServiceOption {
	return func(s *clientService) {
		s.now = now
	}
}

// NewClientService creates a new client service with the provided options.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, options ...ClientServiceOption) portssvc.ClientSvcFacade {
	svc := &clientService{
		clientRepo:  clientRepo,
		idGenerator: NewUUIDGenerator(),
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// CreateClient implements portssvc.ClientWriterSvc.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: client name is required", apperrors.ErrValidation)
	}

	client := domain.Client{
		ClientID:  s.idGenerator.NewID(),
		Name:      name,
		Phone:     strings.TrimSpace(req.Phone),
		CreatedAt: s.now(),
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("client_id", client.ClientID))
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID), slog.String("name", client.Name))
	return &client, nil
}

// GetClient implements portssvc.ClientReaderSvc.
func (s *clientService) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	return s.clientRepo.FindClientByID(ctx, clientID)
}

// ListClients implements portssvc.ClientReaderSvc.
func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.ListClients(ctx)
}

// DeleteClient implements portssvc.ClientWriterSvc. Transactions referencing
// the client are left untouched; their display name resolves to the Unknown
// sentinel afterwards.
func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}
