// Package filter holds the listing filter state and the evaluator that
// derives the visible collection from it.
package filter

import "strconv"

// Field names a filter field. The names double as navigation parameter keys.
type Field string

const (
	FieldSearch        Field = "search"
	FieldPropertyType  Field = "property_type"
	FieldSecondaryType Field = "secondary_type"
	FieldPropertySize  Field = "property_size"
	FieldPercentLeased Field = "percent_leased"
	FieldLocationType  Field = "location_type"
	FieldExistingPlus  Field = "existing_plus"
	FieldRating        Field = "rating"
	FieldSortBy        Field = "sort_by"
)

// State is the current value of every filter field. Setters replace the value
// wholesale and accept anything: validation happens at the data boundary, not
// here. A nil multi-select slice and an empty one both mean "none selected";
// "all selected" is always the full concrete option list.
type State struct {
	search        string
	propertyType  []string
	secondaryType []string
	propertySize  string
	percentLeased string
	locationType  []string
	existingPlus  []string
	rating        *float64
	sortBy        string
}

// NewState returns the default (empty) state.
func NewState() *State {
	return &State{}
}

// Search returns the free-text search term.
func (s *State) Search() string { return s.search }

// SetSearch replaces the free-text search term.
func (s *State) SetSearch(v string) { s.search = v }

func (s *State) PropertyType() []string { return cloneStrings(s.propertyType) }

func (s *State) SetPropertyType(v []string) { s.propertyType = cloneStrings(v) }

func (s *State) SecondaryType() []string { return cloneStrings(s.secondaryType) }

func (s *State) SetSecondaryType(v []string) { s.secondaryType = cloneStrings(v) }

// PropertySize returns the size bucket identifier.
func (s *State) PropertySize() string { return s.propertySize }

func (s *State) SetPropertySize(v string) { s.propertySize = v }

// PercentLeased returns the percent-leased bucket identifier.
func (s *State) PercentLeased() string { return s.percentLeased }

func (s *State) SetPercentLeased(v string) { s.percentLeased = v }

func (s *State) LocationType() []string { return cloneStrings(s.locationType) }

func (s *State) SetLocationType(v []string) { s.locationType = cloneStrings(v) }

func (s *State) ExistingPlus() []string { return cloneStrings(s.existingPlus) }

func (s *State) SetExistingPlus(v []string) { s.existingPlus = cloneStrings(v) }

// SortBy returns the order key applied by the backend.
func (s *State) SortBy() string { return s.sortBy }

func (s *State) SetSortBy(v string) { s.sortBy = v }

// Rating returns the rating filter and whether one is set.
func (s *State) Rating() (float64, bool) {
	if s.rating == nil {
		return 0, false
	}

	return *s.rating, true
}

// SetRating sets the rating filter.
func (s *State) SetRating(v float64) {
	s.rating = &v
}

// ClearRating removes the rating filter.
func (s *State) ClearRating() {
	s.rating = nil
}

// Multi returns the value of a multi-select field.
func (s *State) Multi(f Field) []string {
	switch f {
	case FieldPropertyType:
		return s.PropertyType()
	case FieldSecondaryType:
		return s.SecondaryType()
	case FieldLocationType:
		return s.LocationType()
	case FieldExistingPlus:
		return s.ExistingPlus()
	default:
		return nil
	}
}

// SetMulti replaces the value of a multi-select field. Unknown fields are ignored.
func (s *State) SetMulti(f Field, v []string) {
	switch f {
	case FieldPropertyType:
		s.SetPropertyType(v)
	case FieldSecondaryType:
		s.SetSecondaryType(v)
	case FieldLocationType:
		s.SetLocationType(v)
	case FieldExistingPlus:
		s.SetExistingPlus(v)
	}
}

// Single returns the value of a single-valued string field.
func (s *State) Single(f Field) string {
	switch f {
	case FieldSearch:
		return s.search
	case FieldPropertySize:
		return s.propertySize
	case FieldPercentLeased:
		return s.percentLeased
	case FieldSortBy:
		return s.sortBy
	case FieldRating:
		if s.rating == nil {
			return ""
		}

		return strconv.FormatFloat(*s.rating, 'f', -1, 64)
	default:
		return ""
	}
}

// SetSingle replaces the value of a single-valued field. The rating is parsed;
// an empty or unparsable value clears it.
func (s *State) SetSingle(f Field, v string) {
	switch f {
	case FieldSearch:
		s.search = v
	case FieldPropertySize:
		s.propertySize = v
	case FieldPercentLeased:
		s.percentLeased = v
	case FieldSortBy:
		s.sortBy = v
	case FieldRating:
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.rating = nil
			return
		}

		s.rating = &r
	}
}

// Clone returns an independent copy.
func (s *State) Clone() *State {
	c := *s
	c.propertyType = cloneStrings(s.propertyType)
	c.secondaryType = cloneStrings(s.secondaryType)
	c.locationType = cloneStrings(s.locationType)
	c.existingPlus = cloneStrings(s.existingPlus)

	if s.rating != nil {
		r := *s.rating
		c.rating = &r
	}

	return &c
}

func cloneStrings(v []string) []string {
	if v == nil {
		return nil
	}

	out := make([]string, len(v))
	copy(out, v)

	return out
}
