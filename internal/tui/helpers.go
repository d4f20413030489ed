package tui

import "strings"

// highlightMatch marks the first case-insensitive occurrence of term in text.
func highlightMatch(text, term string) string {
	term = strings.TrimSpace(term)
	if term == "" || text == "" {
		return text
	}

	idx := strings.Index(strings.ToLower(text), strings.ToLower(term))
	if idx < 0 {
		return text
	}

	end := idx + len(term)

	return text[:idx] + "[yellow::b]" + text[idx:end] + "[-:-:-]" + text[end:]
}

// checkbox renders a multi-select row.
func checkbox(checked bool, label string) string {
	if checked {
		return "[x] " + label
	}

	return "[ ] " + label
}

// radio renders a single-select row.
func radio(checked bool, label string) string {
	if checked {
		return "(•) " + label
	}

	return "( ) " + label
}
