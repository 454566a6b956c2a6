package services

import (
	portsrepo "github.com/zetaenergy/zeta_books/internal/core/ports/repositories"
	portssvc "github.com/zetaenergy/zeta_books/internal/core/ports/services"
	"github.com/zetaenergy/zeta_books/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Client = NewClientService(repos.ClientRepo)
	container.Catalog = NewCatalogService(repos.ProductRepo)

	// Transaction engine depends on the catalog for product display names.
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.ClientRepo, container.Catalog)

	// Reporting reads the same collection and reuses the engine's
	// display-name resolution so the Unknown sentinels stay in one place.
	container.Reporting = NewReportingService(repos.TransactionRepo, container.Transaction)

	container.Auth = NewAuthService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ClientSvcFacade      = (*clientService)(nil)
	_ portssvc.CatalogSvcFacade     = (*catalogService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.ReportingSvcFacade   = (*reportingService)(nil)
	_ portssvc.AuthSvcFacade        = (*authService)(nil)
)
