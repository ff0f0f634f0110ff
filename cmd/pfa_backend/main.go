package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	portsrepo "github.com/ppapp/personal_finance_app/internal/core/ports/repositories"
	"github.com/ppapp/personal_finance_app/internal/core/services"
	"github.com/ppapp/personal_finance_app/internal/handlers"
	"github.com/ppapp/personal_finance_app/internal/middleware"
	"github.com/ppapp/personal_finance_app/internal/platform/config"
	"github.com/ppapp/personal_finance_app/internal/repositories/database/jsonfile"
	"github.com/ppapp/personal_finance_app/internal/repositories/database/pgsql"
	"github.com/ppapp/personal_finance_app/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Personal Finance App API
// @version 1.0
// @description Savings goal ledger and daily revenue/expense calendar.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	var repos portsrepo.RepositoryProvider
	switch cfg.StorageBackend {
	case config.BackendPgsql:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()
		logger.Info("Database connection pool established.")

		if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}

		repos = pgsql.NewRepositoryProvider(pool)
	default:
		logger.Info("Using JSON snapshot storage", slog.String("data_dir", cfg.DataDir))
		repos = jsonfile.NewRepositoryProvider(cfg.DataDir)
	}

	// Hydrate services from storage
	serviceContainer, err := services.NewServiceContainer(ctx, repos)
	if err != nil {
		logger.Error("Failed to initialize services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

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

// runMigrations applies all pending "up" migrations before the server starts
// serving. It uses a temporary database/sql connection via the pgx stdlib
// driver to stay compatible with the main pool.
func runMigrations(logger *slog.Logger, databaseURL string) error {
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

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
