// Package view tracks which presentation (map or list) shows the filtered
// listings and which listing is highlighted across both.
package view

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kedare/plaza/internal/listing"
)

// Mode is the active presentation.
type Mode int

const (
	// ModeMap plots listings as markers. It is the default.
	ModeMap Mode = iota
	// ModeList shows listings as table rows.
	ModeList
)

func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	default:
		return "map"
	}
}

// ParseMode parses "map" or "list".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "map":
		return ModeMap, nil
	case "list":
		return ModeList, nil
	default:
		return ModeMap, fmt.Errorf("invalid view mode %q (expected map or list)", s)
	}
}

// Param is the navigation parameter that carries the mode across page loads.
const Param = "view"

// ModeFromParams reads the carried mode, defaulting to map.
func ModeFromParams(params url.Values) Mode {
	m, err := ParseMode(params.Get(Param))
	if err != nil {
		return ModeMap
	}

	return m
}

// Selector holds the view mode and the selected listing id. Switching modes
// never touches the data; the same filtered collection is rendered differently.
type Selector struct {
	mode     Mode
	selected string
	hasSel   bool
}

// NewSelector returns a selector in map mode with nothing selected.
func NewSelector() *Selector {
	return &Selector{mode: ModeMap}
}

// Mode returns the active mode.
func (s *Selector) Mode() Mode {
	return s.mode
}

// SetMode switches the presentation.
func (s *Selector) SetMode(m Mode) {
	s.mode = m
}

// Toggle flips between map and list and returns the new mode.
func (s *Selector) Toggle() Mode {
	if s.mode == ModeMap {
		s.mode = ModeList
	} else {
		s.mode = ModeMap
	}

	return s.mode
}

// Select marks id as selected. Selecting the current id again changes nothing.
func (s *Selector) Select(id string) {
	s.selected = id
	s.hasSel = true
}

// Clear drops the selection.
func (s *Selector) Clear() {
	s.selected = ""
	s.hasSel = false
}

// SelectedID returns the stored id, which may be stale.
func (s *Selector) SelectedID() (string, bool) {
	return s.selected, s.hasSel
}

// Resolve returns the selected record if its id is part of visible. A stored
// id that no longer occurs in the collection counts as no selection.
func (s *Selector) Resolve(visible []listing.Record) (listing.Record, int, bool) {
	if !s.hasSel {
		return listing.Record{}, -1, false
	}

	idx := listing.IndexOf(visible, s.selected)
	if idx < 0 {
		return listing.Record{}, -1, false
	}

	return visible[idx], idx, true
}

// IsSelected reports whether id is the live selection within visible.
func (s *Selector) IsSelected(visible []listing.Record, id string) bool {
	r, _, ok := s.Resolve(visible)
	return ok && r.ID == id
}
