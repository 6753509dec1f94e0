package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v5"

	// Register the pgx driver with database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/refarch/movies-api/internal/config"
)

// setupDatabase establishes a connection to the database and configures the
// connection pool. The initial ping is retried with bounded exponential
// backoff so the server tolerates a database that is still coming up.
// Returns the database connection if successful, or an error if the
// connection cannot be established within the configured window.
func setupDatabase(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	maxElapsed := time.Duration(cfg.ConnectMaxElapsedSeconds) * time.Second
	if maxElapsed <= 0 {
		maxElapsed = 30 * time.Second
	}

	ping := func() (struct{}, error) {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return struct{}{}, db.PingContext(pingCtx)
	}

	_, err = backoff.Retry(ctx, ping,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(maxElapsed),
		backoff.WithNotify(func(err error, next time.Duration) {
			logger.Warn("database not reachable yet, retrying",
				"error", err,
				"next_attempt_in", next.String())
		}),
	)
	if err != nil {
		if cerr := db.Close(); cerr != nil {
			logger.Error("error closing database connection", "error", cerr)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established", "url", maskPassword(cfg.URL))
	return db, nil
}

// maskPassword masks the password in a database URL for logging.
func maskPassword(dbURL string) string {
	parsedURL, err := url.Parse(dbURL)
	if err != nil {
		return "invalid-url"
	}
	if parsedURL.User != nil {
		if _, has := parsedURL.User.Password(); has {
			parsedURL.User = url.UserPassword(parsedURL.User.Username(), "xxxxx")
		}
	}
	return parsedURL.String()
}
