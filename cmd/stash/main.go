package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"promptstash/internal/api"
	"promptstash/internal/config"
	"promptstash/internal/console"
	"promptstash/internal/infrastructure"
	"promptstash/internal/prompts"
	"promptstash/internal/schema"
)

func main() {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed: ", err)
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config.Config) error {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return err
	}

	infra.Logger.Info(
		"promptstash starting",
		"version", cfg.Version,
		"env", cfg.Env(),
		"database", cfg.Database.Host,
	)

	if err := infra.Start(); err != nil {
		return err
	}
	defer func() {
		if err := infra.Lifecycle.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
			infra.Logger.Error("shutdown failed", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		infra.Logger.Info("signal received, shutting down")
		if err := infra.Lifecycle.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
			infra.Logger.Error("shutdown failed", "error", err)
		}
		os.Exit(1)
	}()

	// A failed bootstrap is logged, not fatal: the menu still runs and
	// each operation reports its own storage failure. The bootstrap opens
	// its own short-lived handle; the shared one stays untouched.
	if err := schema.Ensure(cfg.Database.Dsn()); err != nil {
		infra.Logger.Error("schema bootstrap failed", "error", err)
	}

	conn := infra.Database.Connection()

	store := prompts.NewStore(conn, infra.Logger)
	service := prompts.NewService(store, infra.Logger)
	app := console.New(api.New(service), &cfg.Messages, os.Stdin, os.Stdout, infra.Logger)

	return app.Run(infra.Lifecycle.Context())
}
