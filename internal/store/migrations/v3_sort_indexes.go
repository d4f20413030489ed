package migrations

import "database/sql"

func init() {
	Register(&v3SortIndexes{})
}

// v3SortIndexes indexes the columns behind the sort_by keys.
type v3SortIndexes struct{}

func (m *v3SortIndexes) Version() int {
	return 3
}

func (m *v3SortIndexes) Description() string {
	return "Add indexes for name, city, rating and recency ordering"
}

func (m *v3SortIndexes) Up(db *sql.DB) error {
	return ExecStatements(db, []string{
		`CREATE INDEX IF NOT EXISTS idx_listings_name ON listings(name COLLATE NOCASE)`,
		`CREATE INDEX IF NOT EXISTS idx_listings_city ON listings(city COLLATE NOCASE)`,
		`CREATE INDEX IF NOT EXISTS idx_listings_rating ON listings(rating DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_listings_updated_at ON listings(updated_at DESC)`,
	})
}
