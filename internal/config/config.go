// Package config loads the application configuration. Settings that
// describe the environment (file locations, notification command) live
// here; planner state and preferences live in the database.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"
)

// EnvDatabasePath overrides the database location when set.
const EnvDatabasePath = "TASKPLAN_DB"

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "TASKPLAN_CONFIG"

const (
	appDirName         = "taskplan"
	configFileName     = "config.yaml"
	defaultDBFileName  = "taskplan.db"
	defaultPollSeconds = 60
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	// DatabasePath locates the SQLite database. Relative paths resolve
	// against the working directory.
	DatabasePath string `yaml:"database_path"`

	// ReminderPollInterval is how often due reminders are checked.
	ReminderPollInterval time.Duration `yaml:"reminder_poll_interval,omitempty"`

	// NotifyCommand overrides the desktop notification program. Empty
	// picks the platform default.
	NotifyCommand string `yaml:"notify_command,omitempty"`
}

// NewDefault creates a Config with default values rooted in the user
// config directory.
func NewDefault() Config {
	return Config{
		DatabasePath:         filepath.Join(defaultAppDir(), defaultDBFileName),
		ReminderPollInterval: defaultPollSeconds * time.Second,
	}
}

func defaultAppDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName)
	}
	return "." + appDirName
}

// DefaultPath returns the config file location, honoring EnvConfigPath.
func DefaultPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	return filepath.Join(defaultAppDir(), configFileName)
}

// Load reads the config file at path, layering it over the defaults. A
// missing file is not an error; the defaults apply. The EnvDatabasePath
// variable wins over both.
func Load(path string) (Config, error) {
	cfg := NewDefault()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// no file, defaults apply
	case err != nil:
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
		}
	}

	if env := os.Getenv(EnvDatabasePath); env != "" {
		cfg.DatabasePath = env
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("%w: database_path must not be empty", ErrInvalid)
	}
	if c.ReminderPollInterval < time.Second {
		return fmt.Errorf("%w: reminder_poll_interval must be at least 1s", ErrInvalid)
	}
	return nil
}

// EnsureDatabaseDir creates the directory the database lives in.
func (c Config) EnsureDatabaseDir() error {
	dir := filepath.Dir(c.DatabasePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: create %s: %w", dir, err)
	}
	return nil
}
