package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"promptstash/internal/config"
)

const baseConfig = `
shutdown_timeout = "10s"
version = "0.1.0"

[database]
name = "promptstash"
user = "stash"
password = "stash"

[messages]
welcome = "hello from config.toml"
`

const overlayConfig = `
[database]
host = "prodhost"

[messages]
exit = "bye from overlay"
`

// chdir moves the test into an empty directory so a developer's local
// config.toml never leaks into assertions.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	return dir
}

func TestLoadWithoutFiles(t *testing.T) {
	chdir(t)
	t.Setenv("STASH_DB_NAME", "envdb")
	t.Setenv("STASH_DB_USER", "envuser")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.ShutdownTimeout != "10s" {
		t.Errorf("shutdown_timeout = %q, want default 10s", cfg.ShutdownTimeout)
	}
	if cfg.Database.Name != "envdb" {
		t.Errorf("database name = %q, want envdb", cfg.Database.Name)
	}
	if cfg.Messages.Welcome == "" {
		t.Error("welcome message should have a default")
	}
	if cfg.Messages.PromptNotFound == "" {
		t.Error("not-found message should have a default")
	}
}

func TestLoadBaseFile(t *testing.T) {
	dir := chdir(t)

	if err := os.WriteFile(filepath.Join(dir, config.BaseConfigFile), []byte(baseConfig), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Database.Name != "promptstash" {
		t.Errorf("database name = %q, want promptstash", cfg.Database.Name)
	}
	if cfg.Messages.Welcome != "hello from config.toml" {
		t.Errorf("welcome = %q, want file value", cfg.Messages.Welcome)
	}
	if cfg.Messages.Exit == "" {
		t.Error("exit message should fall back to its default")
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := chdir(t)
	t.Setenv("STASH_ENV", "prod")

	if err := os.WriteFile(filepath.Join(dir, config.BaseConfigFile), []byte(baseConfig), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.prod.toml"), []byte(overlayConfig), 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Database.Host != "prodhost" {
		t.Errorf("database host = %q, want overlay value prodhost", cfg.Database.Host)
	}
	if cfg.Database.Name != "promptstash" {
		t.Errorf("database name = %q, base value should survive the overlay", cfg.Database.Name)
	}
	if cfg.Messages.Exit != "bye from overlay" {
		t.Errorf("exit = %q, want overlay value", cfg.Messages.Exit)
	}
	if cfg.Env() != "prod" {
		t.Errorf("env = %q, want prod", cfg.Env())
	}
}

func TestEnvOverridesBeatFiles(t *testing.T) {
	dir := chdir(t)
	t.Setenv("STASH_MSG_WELCOME", "hello from env")
	t.Setenv("STASH_SHUTDOWN_TIMEOUT", "3s")

	if err := os.WriteFile(filepath.Join(dir, config.BaseConfigFile), []byte(baseConfig), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Messages.Welcome != "hello from env" {
		t.Errorf("welcome = %q, env should override the file", cfg.Messages.Welcome)
	}
	if cfg.ShutdownTimeoutDuration() != 3*time.Second {
		t.Errorf("shutdown timeout = %v, want 3s", cfg.ShutdownTimeoutDuration())
	}
}

func TestLoadInvalidTimeout(t *testing.T) {
	chdir(t)
	t.Setenv("STASH_DB_NAME", "db")
	t.Setenv("STASH_DB_USER", "u")
	t.Setenv("STASH_SHUTDOWN_TIMEOUT", "soon")

	_, err := config.Load()
	if err == nil {
		t.Fatal("expected error for invalid shutdown timeout")
	}
	if !strings.Contains(err.Error(), "shutdown_timeout") {
		t.Errorf("error %q should mention shutdown_timeout", err)
	}
}

func TestMessageEnvCatalog(t *testing.T) {
	chdir(t)
	t.Setenv("STASH_DB_NAME", "db")
	t.Setenv("STASH_DB_USER", "u")
	t.Setenv("STASH_MSG_PROMPT_ADDED", "stored as %d")
	t.Setenv("STASH_MSG_INVALID_CHOICE", "nope")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Messages.PromptAdded != "stored as %d" {
		t.Errorf("prompt_added = %q, want env value", cfg.Messages.PromptAdded)
	}
	if cfg.Messages.InvalidChoice != "nope" {
		t.Errorf("invalid_choice = %q, want env value", cfg.Messages.InvalidChoice)
	}
}
