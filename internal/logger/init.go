package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
)

// InitPterm sends every diagnostic printer to stderr so stdout only carries
// command output (tables, JSON).
func InitPterm() {
	setWriters(os.Stderr)
}

// RedirectToFile points diagnostics at path for as long as the terminal UI
// owns the screen. The returned function restores stderr and closes the file.
// An empty path discards diagnostics instead.
func RedirectToFile(path string) (func(), error) {
	if path == "" {
		setWriters(io.Discard)

		return func() { setWriters(os.Stderr) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	setWriters(f)
	pterm.DisableStyling()

	return func() {
		setWriters(os.Stderr)
		pterm.EnableStyling()
		_ = f.Close()
	}, nil
}

func setWriters(w io.Writer) {
	pterm.Info.Writer = w
	pterm.Success.Writer = w
	pterm.Warning.Writer = w
	pterm.Error.Writer = w
	pterm.Debug.Writer = w
}
