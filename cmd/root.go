// Package cmd provides the command-line interface for plaza.
package cmd

import (
	"context"
	"fmt"

	"github.com/kedare/plaza/internal/config"
	"github.com/kedare/plaza/internal/logger"
	"github.com/kedare/plaza/internal/store"
	"github.com/kedare/plaza/internal/version"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	dbPath   string
	cfg      *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "plaza",
	Short: "Browse commercial property listings from the terminal",
	Long: `plaza keeps a local database of property listings and lets you filter, page
through and inspect them, either interactively (map or list view) or with
scriptable table and JSON output.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.SetLevel(logLevel); err != nil {
			return fmt.Errorf("invalid log level '%s': %w", logLevel, err)
		}
		logger.Log.Debugf("Log level set to: %s", logLevel)

		loaded, err := config.Load()
		if err != nil {
			return err
		}

		if dbPath != "" {
			loaded.DBPath = dbPath
		}

		cfg = loaded

		return nil
	},
}

func Execute() error {
	return ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	return rootCmd.ExecuteContext(ctx)
}

// openStore opens the configured database.
func openStore() (*store.Store, error) {
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	s, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open listings database: %w", err)
	}

	return s, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

func init() {
	rootCmd.Version = version.Get().String()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Set the logging level (trace, debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the listings database (default ~/.plaza/plaza.db, or $PLAZA_DB)")
}
