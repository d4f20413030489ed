// Package config resolves plaza settings from defaults and the environment.
// Command-line flags are applied on top by the cmd package.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kedare/plaza/internal/logger"
)

const (
	// EnvDB overrides the database location.
	EnvDB = "PLAZA_DB"
	// EnvOutput selects the default output format of non-interactive commands.
	EnvOutput = "PLAZA_OUTPUT"
	// EnvPerPage overrides the default page size.
	EnvPerPage = "PLAZA_PER_PAGE"

	// DataDir is the directory under the home directory holding plaza data.
	DataDir = ".plaza"
	// DBFileName is the SQLite database file name.
	DBFileName = "plaza.db"
	// DefaultPerPage is the page size used when nothing else is configured.
	DefaultPerPage = 25
	// MaxPerPage caps the page size accepted from any source.
	MaxPerPage = 100
)

// Config holds resolved settings.
type Config struct {
	DBPath  string
	Output  string
	PerPage int
}

// Load resolves settings from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Output:  "table",
		PerPage: DefaultPerPage,
	}

	if path := strings.TrimSpace(os.Getenv(EnvDB)); path != "" {
		logger.Log.Debugf("Using database from %s", EnvDB)
		cfg.DBPath = path
	} else {
		path, err := DefaultDBPath()
		if err != nil {
			return nil, err
		}

		cfg.DBPath = path
	}

	cfg.Output = DefaultFormat(cfg.Output, []string{"table", "json"})

	if raw := strings.TrimSpace(os.Getenv(EnvPerPage)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			logger.Log.Warnf("Ignoring invalid %s=%q", EnvPerPage, raw)
		} else {
			cfg.PerPage = ClampPerPage(n)
		}
	}

	return cfg, nil
}

// DefaultDBPath returns ~/.plaza/plaza.db.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, DataDir, DBFileName), nil
}

// DefaultFormat returns preferred unless PLAZA_OUTPUT names an allowed format.
func DefaultFormat(preferred string, allowed []string) string {
	env := strings.ToLower(strings.TrimSpace(os.Getenv(EnvOutput)))
	if env == "" {
		return preferred
	}

	for _, option := range allowed {
		if env == option {
			return env
		}
	}

	return preferred
}

// ClampPerPage keeps a page size within [1, MaxPerPage].
func ClampPerPage(n int) int {
	if n < 1 {
		return DefaultPerPage
	}

	if n > MaxPerPage {
		return MaxPerPage
	}

	return n
}
