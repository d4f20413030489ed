package widget

import (
	"fmt"

	"github.com/kedare/plaza/internal/filter"
)

// LabelStyle chooses how a multi-select summarizes two or more selections.
type LabelStyle int

const (
	// LabelCount renders "N Selected".
	LabelCount LabelStyle = iota
	// LabelOverflow renders "{first} +{N-1}".
	LabelOverflow
)

// MultiSelect applies the selection rules of a checkbox dropdown. It owns no
// selection: every operation takes the current selection and hands the
// replacement to the change callback.
type MultiSelect struct {
	*Dropdown
	catalog  filter.Catalog
	style    LabelStyle
	onChange func([]string)
}

// NewMultiSelect binds a catalog to a dropdown.
func NewMultiSelect(d *Dropdown, catalog filter.Catalog, style LabelStyle, onChange func([]string)) *MultiSelect {
	return &MultiSelect{Dropdown: d, catalog: catalog, style: style, onChange: onChange}
}

// Catalog returns the bound catalog.
func (m *MultiSelect) Catalog() filter.Catalog {
	return m.catalog
}

// IsAll reports whether every concrete option is selected.
func (m *MultiSelect) IsAll(current []string) bool {
	concrete := m.catalog.Concrete()
	if len(concrete) == 0 {
		return false
	}

	set := toSet(current)
	for _, o := range concrete {
		if _, ok := set[o.Value]; !ok {
			return false
		}
	}

	return true
}

// IsSelected reports whether value is part of the selection. The "Select All"
// row is checked exactly when every concrete option is.
func (m *MultiSelect) IsSelected(current []string, value string) bool {
	if value == filter.SelectAll {
		return m.IsAll(current)
	}

	_, ok := toSet(current)[value]
	return ok
}

// ToggleAll replaces the selection atomically: all → none, otherwise → all.
func (m *MultiSelect) ToggleAll(current []string) []string {
	var next []string
	if m.IsAll(current) {
		next = []string{}
	} else {
		concrete := m.catalog.Concrete()
		next = make([]string, len(concrete))
		for i, o := range concrete {
			next[i] = o.Value
		}
	}

	m.emit(next)

	return next
}

// Toggle adds or removes a single option. Activating the "Select All" row
// delegates to ToggleAll. The result keeps catalog order; values unknown to the
// catalog are kept after the known ones.
func (m *MultiSelect) Toggle(current []string, value string) []string {
	if value == filter.SelectAll {
		return m.ToggleAll(current)
	}

	set := toSet(current)
	if _, ok := set[value]; ok {
		delete(set, value)
	} else {
		set[value] = struct{}{}
	}

	next := make([]string, 0, len(set))
	for _, o := range m.catalog.Concrete() {
		if _, ok := set[o.Value]; ok {
			next = append(next, o.Value)
			delete(set, o.Value)
		}
	}

	for _, v := range current {
		if _, ok := set[v]; ok {
			next = append(next, v)
			delete(set, v)
		}
	}

	if _, ok := set[value]; ok {
		next = append(next, value)
	}

	m.emit(next)

	return next
}

// Label summarizes the selection for the closed control.
func (m *MultiSelect) Label(current []string) string {
	switch len(current) {
	case 0:
		return m.catalog.Placeholder
	case 1:
		return m.catalog.LabelFor(current[0])
	}

	if m.style == LabelOverflow {
		return fmt.Sprintf("%s +%d", m.catalog.LabelFor(current[0]), len(current)-1)
	}

	return fmt.Sprintf("%d Selected", len(current))
}

func (m *MultiSelect) emit(next []string) {
	if m.onChange != nil {
		m.onChange(next)
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return set
}

// SingleSelect is a dropdown holding one value. Selecting commits and closes.
type SingleSelect struct {
	*Dropdown
	catalog  filter.Catalog
	onChange func(string)
}

// NewSingleSelect binds a catalog to a dropdown.
func NewSingleSelect(d *Dropdown, catalog filter.Catalog, onChange func(string)) *SingleSelect {
	return &SingleSelect{Dropdown: d, catalog: catalog, onChange: onChange}
}

// Catalog returns the bound catalog.
func (s *SingleSelect) Catalog() filter.Catalog {
	return s.catalog
}

// Select replaces the value and closes the dropdown.
func (s *SingleSelect) Select(value string) string {
	if s.onChange != nil {
		s.onChange(value)
	}

	s.Commit()

	return value
}

// Label returns the option label, or the placeholder when nothing is chosen.
func (s *SingleSelect) Label(current string) string {
	if current == "" {
		return s.catalog.Placeholder
	}

	return s.catalog.LabelFor(current)
}
