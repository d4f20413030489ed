package migrations

import "database/sql"

func init() {
	Register(&v2Coordinates{})
}

// v2Coordinates adds map coordinates to listings.
type v2Coordinates struct{}

func (m *v2Coordinates) Version() int {
	return 2
}

func (m *v2Coordinates) Description() string {
	return "Add latitude/longitude columns for the map view"
}

func (m *v2Coordinates) Up(db *sql.DB) error {
	return ExecStatements(db, []string{
		`ALTER TABLE listings ADD COLUMN latitude REAL`,
		`ALTER TABLE listings ADD COLUMN longitude REAL`,
	})
}
