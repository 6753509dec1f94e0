// Package main implements the entry point for the movies API server, a
// reference scaffold for enterprise REST services: a CRUD movies resource
// behind correlation-id propagation, unified error translation, request
// validation, and health/metrics endpoints.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/refarch/movies-api/internal/config"
	"github.com/refarch/movies-api/internal/platform/logger"
	"github.com/refarch/movies-api/internal/platform/postgres"
	"github.com/refarch/movies-api/internal/version"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the initialized application or any initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"version", version.Version,
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	ctx := context.Background()

	db, err := setupDatabase(ctx, &cfg.Database, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	if err := postgres.RunMigrations(ctx, db, appLogger); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	return app, nil
}
