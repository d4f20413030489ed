package logger

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(f func()) string {
	old := pterm.Info.Writer
	r, w, _ := os.Pipe()
	setWriters(w)

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	f()
	_ = w.Close()
	out := <-outC

	setWriters(old)

	return out
}

func TestSetLevel(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		expectLevel LogLevel
		expectError bool
	}{
		{"trace", "trace", LevelTrace, false},
		{"debug", "debug", LevelDebug, false},
		{"info", "info", LevelInfo, false},
		{"warning", "warning", LevelWarn, false},
		{"error", "error", LevelError, false},
		{"fatal", "fatal", LevelFatal, false},
		{"mixed case", "WaRn", LevelWarn, false},
		{"padded", " debug ", LevelDebug, false},
		{"invalid", "verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetLevel(tt.level)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid log level")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectLevel, Log.GetLevel())
		})
	}

	require.NoError(t, SetLevel("info"))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "level(42)", LogLevel(42).String())
}

func TestLoggerFiltersByLevel(t *testing.T) {
	defer func() { Log.level = LevelInfo }()

	t.Run("debug_enabled", func(t *testing.T) {
		Log.level = LevelDebug
		pterm.EnableDebugMessages()

		output := captureOutput(func() {
			Log.Debugf("loaded %d listings", 3)
			Log.Tracef("hidden trace")
		})
		assert.Contains(t, output, "loaded 3 listings")
		assert.NotContains(t, output, "hidden trace")
	})

	t.Run("error_only", func(t *testing.T) {
		Log.level = LevelError

		output := captureOutput(func() {
			Log.Infof("should not appear")
			Log.Warnf("should not appear")
			Log.Errorf("should %s", "appear")
		})
		assert.NotContains(t, output, "should not appear")
		assert.Contains(t, output, "should appear")
	})
}

func TestInitPterm(t *testing.T) {
	orig := pterm.Info.Writer
	defer setWriters(orig)

	InitPterm()

	assert.Equal(t, os.Stderr, pterm.Info.Writer)
	assert.Equal(t, os.Stderr, pterm.Warning.Writer)
	assert.Equal(t, os.Stderr, pterm.Debug.Writer)
}

func TestRedirectToFile(t *testing.T) {
	defer func() { Log.level = LevelInfo }()
	Log.level = LevelInfo

	path := filepath.Join(t.TempDir(), "plaza.log")

	restore, err := RedirectToFile(path)
	require.NoError(t, err)

	Log.Infof("navigated to page %d", 2)
	restore()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "navigated to page 2")
	assert.Equal(t, os.Stderr, pterm.Info.Writer)
}

func TestRedirectDiscard(t *testing.T) {
	restore, err := RedirectToFile("")
	require.NoError(t, err)
	assert.Equal(t, io.Discard, pterm.Info.Writer)

	restore()
	assert.Equal(t, os.Stderr, pterm.Info.Writer)
}

func TestGetLogger(t *testing.T) {
	require.Same(t, Log, GetLogger())
}
