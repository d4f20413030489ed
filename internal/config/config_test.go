package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvDB, "")
	t.Setenv(EnvOutput, "")
	t.Setenv(EnvPerPage, "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, DataDir, DBFileName), cfg.DBPath)
	require.Equal(t, "table", cfg.Output)
	require.Equal(t, DefaultPerPage, cfg.PerPage)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvDB, "/tmp/custom.db")
	t.Setenv(EnvOutput, "JSON")
	t.Setenv(EnvPerPage, "500")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/custom.db", cfg.DBPath)
	require.Equal(t, "json", cfg.Output)
	require.Equal(t, MaxPerPage, cfg.PerPage)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv(EnvDB, "/tmp/custom.db")
	t.Setenv(EnvOutput, "xml")
	t.Setenv(EnvPerPage, "many")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "table", cfg.Output)
	require.Equal(t, DefaultPerPage, cfg.PerPage)
}

func TestClampPerPage(t *testing.T) {
	require.Equal(t, DefaultPerPage, ClampPerPage(0))
	require.Equal(t, 10, ClampPerPage(10))
	require.Equal(t, MaxPerPage, ClampPerPage(1000))
}
