// Package listing defines the property listing record shared by the store, the
// filter evaluator and the views.
package listing

import "strings"

// Location is the postal location of a listing. Every field is optional.
type Location struct {
	Address     string `json:"address,omitempty" yaml:"address,omitempty"`
	FullAddress string `json:"full_address,omitempty" yaml:"full_address,omitempty"`
	City        string `json:"city,omitempty" yaml:"city,omitempty"`
	StateName   string `json:"state_name,omitempty" yaml:"state_name,omitempty"`
}

// Coordinates places a listing on the map view.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Record is a single property listing as supplied by the backend.
type Record struct {
	ID            string       `json:"id" yaml:"id"`
	Name          string       `json:"name" yaml:"name"`
	Location      Location     `json:"location" yaml:"location"`
	PropertyType  string       `json:"property_type,omitempty" yaml:"property_type,omitempty"`
	SecondaryType string       `json:"secondary_type,omitempty" yaml:"secondary_type,omitempty"`
	PropertySize  string       `json:"property_size,omitempty" yaml:"property_size,omitempty"`
	PercentLeased string       `json:"percent_leased,omitempty" yaml:"percent_leased,omitempty"`
	LocationType  string       `json:"location_type,omitempty" yaml:"location_type,omitempty"`
	ExistingPlus  string       `json:"existing_plus,omitempty" yaml:"existing_plus,omitempty"`
	Rating        *float64     `json:"rating,omitempty" yaml:"rating,omitempty"`
	Coordinates   *Coordinates `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
}

// StreetAddress returns the short address, falling back to the full address.
func (r Record) StreetAddress() string {
	if r.Location.Address != "" {
		return r.Location.Address
	}

	return r.Location.FullAddress
}

// Place renders "City, State" skipping empty parts.
func (r Record) Place() string {
	parts := make([]string, 0, 2)
	if r.Location.City != "" {
		parts = append(parts, r.Location.City)
	}

	if r.Location.StateName != "" {
		parts = append(parts, r.Location.StateName)
	}

	return strings.Join(parts, ", ")
}

// HasCoordinates reports whether the listing can be placed on the map.
func (r Record) HasCoordinates() bool {
	return r.Coordinates != nil
}

// IndexOf returns the position of the record with the given id, or -1.
func IndexOf(records []Record, id string) int {
	for i := range records {
		if records[i].ID == id {
			return i
		}
	}

	return -1
}

// Float returns a pointer to v, for building records with a rating.
func Float(v float64) *float64 {
	return &v
}
