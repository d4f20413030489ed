package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pterm/pterm"
)

// Spinner wraps a pterm spinner that degrades to plain lines when stderr
// isn't a TTY or JSON output is active.
type Spinner struct {
	mu       sync.Mutex
	active   bool
	enabled  bool
	jsonMode bool
	stopped  bool
	message  string
	writer   io.Writer
	sp       *pterm.SpinnerPrinter
}

// NewSpinner creates a spinner with the provided message. Call Start before using.
func NewSpinner(message string) *Spinner {
	json := IsJSONMode()

	return &Spinner{
		enabled:  !json && IsTerminal(os.Stderr),
		jsonMode: json,
		message:  message,
		writer:   os.Stderr,
	}
}

// Start begins rendering the spinner.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || s.active {
		return
	}

	s.active = true

	if s.jsonMode {
		return
	}

	if s.enabled {
		sp, err := pterm.DefaultSpinner.WithWriter(s.writer).WithRemoveWhenDone(false).Start(s.message)
		if err == nil {
			s.sp = sp
			return
		}

		s.enabled = false
	}

	_, _ = fmt.Fprintf(s.writer, "%s...\n", s.message)
}

// Update replaces the spinner message.
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.message = message
	if !s.active || s.stopped || s.jsonMode {
		return
	}

	if s.sp != nil {
		s.sp.UpdateText(message)
		return
	}

	_, _ = fmt.Fprintf(s.writer, "%s...\n", message)
}

// Stop stops the spinner without printing a message.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	s.stopped = true

	if s.sp != nil {
		_ = s.sp.Stop()
	}
}

// Success stops the spinner with a success message.
func (s *Spinner) Success(message string) {
	s.finish(message, true)
}

// Fail stops the spinner with a failure message.
func (s *Spinner) Fail(message string) {
	s.finish(message, false)
}

func (s *Spinner) finish(message string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alreadyStopped := s.stopped
	s.stopped = true

	if s.jsonMode || message == "" {
		if s.sp != nil && !alreadyStopped {
			_ = s.sp.Stop()
		}

		return
	}

	if s.sp != nil && !alreadyStopped {
		if ok {
			s.sp.Success(message)
		} else {
			s.sp.Fail(message)
		}

		return
	}

	prefix := "✓"
	if !ok {
		prefix = "✗"
	}

	_, _ = fmt.Fprintf(s.writer, "%s %s\n", prefix, message)
}
