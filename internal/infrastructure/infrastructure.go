// Package infrastructure provides core system initialization for
// application startup: lifecycle coordination, logging, and the database
// handle the domain layer is built on.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"promptstash/internal/config"
	"promptstash/pkg/database"
	"promptstash/pkg/lifecycle"
)

// Infrastructure holds the process-scoped systems. Diagnostics go to
// stderr so they never mix into the console output on stdout.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
	}, nil
}

// Start registers the database with the lifecycle coordinator and waits
// for startup hooks to complete, so the schema bootstrap that follows
// runs against an established connection.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}

	i.Lifecycle.WaitForStartup()
	return nil
}
