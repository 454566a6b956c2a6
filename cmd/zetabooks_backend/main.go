package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/zetaenergy/zeta_books/internal/adapters/store/kvrepo"
	"github.com/zetaenergy/zeta_books/internal/adapters/store/memkv"
	"github.com/zetaenergy/zeta_books/internal/adapters/store/pgkv"
	"github.com/zetaenergy/zeta_books/internal/adapters/store/rediskv"
	portsrepo "github.com/zetaenergy/zeta_books/internal/core/ports/repositories"
	"github.com/zetaenergy/zeta_books/internal/core/services"
	"github.com/zetaenergy/zeta_books/internal/handlers"
	"github.com/zetaenergy/zeta_books/internal/middleware"
	"github.com/zetaenergy/zeta_books/internal/platform/config"
	"github.com/zetaenergy/zeta_books/pkg/database"
)

// @title Zeta Books API
// @version 1.0
// @description Bookkeeping backend for lubricant sales: clients, catalog, transactions and reports.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, cleanup, err := buildStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize store backend", slog.String("error", err.Error()), slog.String("backend", cfg.StoreBackend))
		os.Exit(1)
	}
	defer cleanup()
	logger.Info("Store backend ready", slog.String("backend", cfg.StoreBackend))

	// Log changes arriving from other processes sharing the same backend.
	// Repositories read through the store, so the next read observes them.
	unsubscribe, err := store.Subscribe(context.Background(), func(key string) {
		logger.Info("Store key changed externally", slog.String("key", key))
	})
	if err != nil {
		logger.Error("Failed to subscribe to store changes", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer unsubscribe()

	repos := portsrepo.RepositoryProvider{
		ClientRepo:      kvrepo.NewKVClientRepository(store),
		ProductRepo:     kvrepo.NewKVProductRepository(store),
		TransactionRepo: kvrepo.NewKVTransactionRepository(store),
	}
	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildStore constructs the KVStore selected by STORE_BACKEND and returns it
// with a cleanup function for the resources it holds.
func buildStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.KVStore, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreBackendRedis:
		store, err := rediskv.New(ctx, cfg.RedisAddr, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if cerr := store.Close(); cerr != nil {
				logger.Error("Error closing redis store", slog.String("error", cerr.Error()))
			}
		}, nil

	case config.StoreBackendPostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
			database.ClosePgxPool(pool)
			return nil, nil, err
		}
		store := pgkv.New(pool, logger)
		return store, func() {
			if cerr := store.Close(); cerr != nil {
				logger.Error("Error closing postgres store", slog.String("error", cerr.Error()))
			}
			database.ClosePgxPool(pool)
		}, nil

	default:
		// In-memory backend: state lives only for the process lifetime.
		store := memkv.New(logger)
		return store, func() {}, nil
	}
}

// runMigrations applies all pending "up" migrations using a temporary
// database/sql connection over the pgx stdlib driver.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
