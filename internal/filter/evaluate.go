package filter

import (
	"strings"

	"github.com/kedare/plaza/internal/listing"
)

// SearchText builds the text a search term is matched against: street address
// (or full address), city, state and name, in that order.
func SearchText(r listing.Record) string {
	return strings.Join([]string{
		r.StreetAddress(),
		r.Location.City,
		r.Location.StateName,
		r.Name,
	}, " ")
}

// Matches reports whether the record contains term, ignoring case. An empty
// term matches every record.
func Matches(r listing.Record, term string) bool {
	if term == "" {
		return true
	}

	return strings.Contains(strings.ToLower(SearchText(r)), strings.ToLower(term))
}

// Search returns the records matching term, in their original order. The input
// is never modified.
func Search(records []listing.Record, term string) []listing.Record {
	out := make([]listing.Record, 0, len(records))
	for _, r := range records {
		if Matches(r, term) {
			out = append(out, r)
		}
	}

	return out
}

// Apply derives the visible collection from the state. Only the search term
// narrows the collection client-side; the other fields travel to the backend
// as navigation parameters and are not evaluated here.
func Apply(records []listing.Record, s *State) []listing.Record {
	if s == nil {
		return Search(records, "")
	}

	return Search(records, s.search)
}
