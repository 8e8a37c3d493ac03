package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabasePath == "" {
		t.Fatal("default database path is empty")
	}
	if cfg.ReminderPollInterval != 60*time.Second {
		t.Fatalf("poll interval = %v, want 60s", cfg.ReminderPollInterval)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "database_path: /tmp/custom.db\nreminder_poll_interval: 30s\nnotify_command: my-notify\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabasePath != "/tmp/custom.db" {
		t.Fatalf("database path = %q", cfg.DatabasePath)
	}
	if cfg.ReminderPollInterval != 30*time.Second {
		t.Fatalf("poll interval = %v", cfg.ReminderPollInterval)
	}
	if cfg.NotifyCommand != "my-notify" {
		t.Fatalf("notify command = %q", cfg.NotifyCommand)
	}
}

func TestEnvOverridesDatabasePath(t *testing.T) {
	t.Setenv(EnvDatabasePath, "/tmp/env.db")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabasePath != "/tmp/env.db" {
		t.Fatalf("database path = %q, want env override", cfg.DatabasePath)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("database_path: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := NewDefault()
	cfg.ReminderPollInterval = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}
