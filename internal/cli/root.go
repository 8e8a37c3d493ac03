// Package cli implements the taskplan commands. Running taskplan without
// a subcommand opens the TUI; the subcommands cover scripted use.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/taskplan/internal/config"
	"github.com/sandeepkv93/taskplan/internal/storage"
	"github.com/sandeepkv93/taskplan/internal/store"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	flagConfig string
	flagDB     string
)

var rootCmd = &cobra.Command{
	Use:           "taskplan",
	Short:         "Terminal task planner with kanban, calendar and pomodoro",
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "path to database file")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if flagDB != "" {
		cfg.DatabasePath = flagDB
	}
	return cfg, nil
}

// openStore loads the config, opens the database and hydrates the store.
// The returned close function must be called before exit.
func openStore(ctx context.Context) (*store.Store, config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, nil, err
	}
	if err := cfg.EnsureDatabaseDir(); err != nil {
		return nil, cfg, nil, err
	}

	kv, err := storage.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		return nil, cfg, nil, err
	}
	closeKV := func() { _ = kv.Close() }

	s := store.New(storage.NewGateway(kv))
	if err := s.Load(ctx); err != nil {
		// degraded start: defaults apply, warn and keep going
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	return s, cfg, closeKV, nil
}
