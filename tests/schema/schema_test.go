package schema_test

import (
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"promptstash/internal/schema"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(schema.Migrations, "migrations")
	if err != nil {
		t.Fatalf("reading embedded migrations: %v", err)
	}

	names := make(map[string]bool)
	for _, e := range entries {
		names[e.Name()] = true
	}

	for _, want := range []string{
		"000001_create_prompts.up.sql",
		"000001_create_prompts.down.sql",
	} {
		if !names[want] {
			t.Errorf("missing migration %s", want)
		}
	}
}

func TestMigrationPairsComplete(t *testing.T) {
	entries, err := fs.ReadDir(schema.Migrations, "migrations")
	if err != nil {
		t.Fatalf("reading embedded migrations: %v", err)
	}

	ups := make(map[string]bool)
	downs := make(map[string]bool)
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected file %s", name)
		}
	}

	for base := range ups {
		if !downs[base] {
			t.Errorf("migration %s has no down script", base)
		}
	}
	for base := range downs {
		if !ups[base] {
			t.Errorf("migration %s has no up script", base)
		}
	}
}

func TestCreateTableDefinesExpectedColumns(t *testing.T) {
	data, err := fs.ReadFile(schema.Migrations, "migrations/000001_create_prompts.up.sql")
	if err != nil {
		t.Fatalf("reading up migration: %v", err)
	}

	ddl := strings.ToLower(string(data))
	for _, col := range []string{"id", "text", "tags", "tool", "is_favorite"} {
		if !strings.Contains(ddl, col) {
			t.Errorf("up migration missing column %s", col)
		}
	}
}

// stubDriver records the traffic Apply sends through a database driver.
type stubDriver struct {
	version int
	dirty   bool
	runs    int
	closed  bool
}

func newStubDriver(version int) *stubDriver {
	return &stubDriver{version: version}
}

func (d *stubDriver) Open(string) (database.Driver, error) { return d, nil }
func (d *stubDriver) Close() error                         { d.closed = true; return nil }
func (d *stubDriver) Lock() error                          { return nil }
func (d *stubDriver) Unlock() error                        { return nil }
func (d *stubDriver) Run(io.Reader) error                  { d.runs++; return nil }
func (d *stubDriver) Drop() error                          { return nil }

func (d *stubDriver) SetVersion(version int, dirty bool) error {
	d.version = version
	d.dirty = dirty
	return nil
}

func (d *stubDriver) Version() (int, bool, error) {
	return d.version, d.dirty, nil
}

func openSource(t *testing.T) source.Driver {
	t.Helper()
	src, err := iofs.New(schema.Migrations, "migrations")
	if err != nil {
		t.Fatalf("open migration source: %v", err)
	}
	return src
}

func TestApplyFreshDatabase(t *testing.T) {
	driver := newStubDriver(database.NilVersion)

	if err := schema.Apply(openSource(t), driver); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if driver.runs != 1 {
		t.Errorf("migrations run = %d, want 1", driver.runs)
	}
	if driver.version != 1 || driver.dirty {
		t.Errorf("final state = (%d, dirty=%v), want (1, clean)", driver.version, driver.dirty)
	}
	if !driver.closed {
		t.Error("driver should be closed after apply")
	}
}

// An already current schema is a no-op, not an error, so the bootstrap
// can run on every startup. Closing matters as much as tolerance: the
// migrator holds a checked-out connection until it is released.
func TestApplyCurrentSchemaIsNoOp(t *testing.T) {
	driver := newStubDriver(1)

	if err := schema.Apply(openSource(t), driver); err != nil {
		t.Fatalf("apply on current schema failed: %v", err)
	}

	if driver.runs != 0 {
		t.Errorf("migrations run = %d, want 0", driver.runs)
	}
	if !driver.closed {
		t.Error("driver should be closed even when nothing changed")
	}
}
