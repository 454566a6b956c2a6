package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Client      ClientSvcFacade
	Catalog     CatalogSvcFacade
	Transaction TransactionSvcFacade
	Reporting   ReportingSvcFacade
	Auth        AuthSvcFacade
}

// IDGenerator produces globally unique identifiers for new records. It is
// injected into services so tests can assert uniqueness without timing
// dependencies.
type IDGenerator interface {
	NewID() string
}
