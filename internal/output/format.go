// Package output renders listings and command results for the terminal.
package output

import (
	"encoding/json"
	"io"
	"strings"
	"sync/atomic"

	"github.com/kedare/plaza/internal/config"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Formats lists the supported output formats.
var Formats = []string{FormatTable, FormatJSON}

var jsonMode atomic.Bool

// DefaultFormat returns preferred unless PLAZA_OUTPUT names a supported format.
func DefaultFormat(preferred string) string {
	return config.DefaultFormat(preferred, Formats)
}

// SetFormat records the active format so spinners and messages stay off
// stdout in JSON mode.
func SetFormat(format string) {
	jsonMode.Store(strings.EqualFold(strings.TrimSpace(format), FormatJSON))
}

// IsJSONMode reports whether the active format is JSON.
func IsJSONMode() bool {
	return jsonMode.Load()
}

// WriteJSON writes data as indented JSON.
func WriteJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(data)
}
