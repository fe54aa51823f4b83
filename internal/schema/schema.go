// Package schema owns the prompts table migrations and their startup bootstrap.
package schema

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Migrations holds the embedded SQL migration files. cmd/migrate reuses
// this set so the standalone runner and the startup bootstrap cannot drift.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Ensure applies any pending migrations. It opens a dedicated handle for
// the duration of the bootstrap: the migration driver checks a connection
// out of whatever pool it is given and only releases it on Close, so it
// must never borrow the application's shared handle.
func Ensure(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration handle: %w", err)
	}

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		db.Close()
		return fmt.Errorf("bind migration driver: %w", err)
	}

	src, err := iofs.New(Migrations, "migrations")
	if err != nil {
		driver.Close()
		return fmt.Errorf("open migration source: %w", err)
	}

	return Apply(src, driver)
}

// Apply runs all up migrations through the given drivers and closes both.
// Idempotent: an already current schema is not an error, so it is safe to
// run on every startup.
func Apply(src source.Driver, driver database.Driver) error {
	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		src.Close()
		driver.Close()
		return fmt.Errorf("create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
