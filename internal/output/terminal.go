package output

import (
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const fallbackWidth = 120

// TerminalWidth returns the width of stdout, honouring COLUMNS first.
func TerminalWidth() int {
	if raw, ok := os.LookupEnv("COLUMNS"); ok {
		if width, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && width > 0 {
			return width
		}
	}

	if width, ok := systemTerminalWidth(os.Stdout.Fd()); ok {
		return width
	}

	return fallbackWidth
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Truncate shortens s to at most width display cells, marking the cut with an
// ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) <= width {
		return s
	}

	return runewidth.Truncate(s, width, "…")
}
