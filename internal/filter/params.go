package filter

import (
	"net/url"
	"strconv"
)

// Params flattens the state into navigation parameters. Empty fields are
// omitted and multi-select values become repeated keys.
func (s *State) Params() url.Values {
	params := url.Values{}

	setString := func(f Field, v string) {
		if v != "" {
			params.Set(string(f), v)
		}
	}
	setMulti := func(f Field, v []string) {
		for _, item := range v {
			params.Add(string(f), item)
		}
	}

	setString(FieldSearch, s.search)
	setMulti(FieldPropertyType, s.propertyType)
	setMulti(FieldSecondaryType, s.secondaryType)
	setString(FieldPropertySize, s.propertySize)
	setString(FieldPercentLeased, s.percentLeased)
	setMulti(FieldLocationType, s.locationType)
	setMulti(FieldExistingPlus, s.existingPlus)

	if s.rating != nil {
		params.Set(string(FieldRating), strconv.FormatFloat(*s.rating, 'f', -1, 64))
	}

	setString(FieldSortBy, s.sortBy)

	return params
}

// FromParams hydrates a state from navigation parameters. Keys that are not
// filter fields (page, per_page) are ignored, as is an unparsable rating.
func FromParams(params url.Values) *State {
	s := NewState()
	if params == nil {
		return s
	}

	s.search = params.Get(string(FieldSearch))
	s.propertyType = cloneStrings(params[string(FieldPropertyType)])
	s.secondaryType = cloneStrings(params[string(FieldSecondaryType)])
	s.propertySize = params.Get(string(FieldPropertySize))
	s.percentLeased = params.Get(string(FieldPercentLeased))
	s.locationType = cloneStrings(params[string(FieldLocationType)])
	s.existingPlus = cloneStrings(params[string(FieldExistingPlus)])
	s.sortBy = params.Get(string(FieldSortBy))

	if raw := params.Get(string(FieldRating)); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			s.rating = &v
		}
	}

	return s
}
