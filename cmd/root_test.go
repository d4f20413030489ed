package cmd

import (
	"testing"

	"github.com/kedare/plaza/internal/logger"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	require.NotNil(t, rootCmd)
	require.Equal(t, "plaza", rootCmd.Use)
	require.NotEmpty(t, rootCmd.Short)
	require.NotEmpty(t, rootCmd.Long)
	require.NotEmpty(t, rootCmd.Version)
}

func TestRootCommandFlags(t *testing.T) {
	tests := []struct {
		name string
		def  string
	}{
		{"log-level", "info"},
		{"db", ""},
	}

	for _, tt := range tests {
		flag := rootCmd.PersistentFlags().Lookup(tt.name)
		require.NotNil(t, flag, tt.name)
		require.Equal(t, tt.def, flag.DefValue, tt.name)
		require.NotEmpty(t, flag.Usage, tt.name)
	}
}

func TestRootCommandPersistentPreRun(t *testing.T) {
	t.Setenv("PLAZA_DB", "")
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() {
		logLevel, dbPath, cfg = "info", "", nil
		_ = logger.SetLevel("info")
	})

	logLevel = "debug"
	dbPath = "/tmp/override.db"
	require.NoError(t, rootCmd.PersistentPreRunE(rootCmd, nil))
	require.Equal(t, logger.LevelDebug, logger.Log.GetLevel())
	require.Equal(t, "/tmp/override.db", cfg.DBPath)

	logLevel = "loud"
	require.Error(t, rootCmd.PersistentPreRunE(rootCmd, nil))
}

func TestSubcommandsRegistered(t *testing.T) {
	for _, path := range [][]string{
		{"browse"},
		{"version"},
		{"listings", "list"},
		{"listings", "import"},
		{"listings", "stats"},
		{"listings", "delete"},
	} {
		found, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		require.Equal(t, path[len(path)-1], found.Name())
	}
}
