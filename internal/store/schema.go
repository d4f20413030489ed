package store

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/kedare/plaza/internal/logger"
	"github.com/kedare/plaza/internal/store/migrations"
)

// Base schema (v1).
const (
	createMetadataTable = `
		CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`

	createListingsTable = `
		CREATE TABLE IF NOT EXISTS listings (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			address TEXT,
			full_address TEXT,
			city TEXT,
			state_name TEXT,
			property_type TEXT,
			secondary_type TEXT,
			property_size TEXT,
			percent_leased TEXT,
			location_type TEXT,
			existing_plus TEXT,
			rating REAL,
			updated_at INTEGER NOT NULL
		)`

	createListingsIndexes = `
		CREATE INDEX IF NOT EXISTS idx_listings_property_type ON listings(property_type)`
)

func initSchema(db *sql.DB) error {
	for _, stmt := range []string{createMetadataTable, createListingsTable, createListingsIndexes} {
		logSQL(stmt)

		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}

	logger.Log.Debugf("Base database schema initialized")

	return nil
}

// getSchemaVersion returns 0 for a database that has never been versioned.
func getSchemaVersion(db *sql.DB) (int, error) {
	var version int

	query := "SELECT value FROM metadata WHERE key = 'schema_version'"
	logSQL(query)

	err := db.QueryRow(query).Scan(&version)
	if err == sql.ErrNoRows {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}

	return version, nil
}

func setSchemaVersion(db *sql.DB, version int) error {
	query := "INSERT OR REPLACE INTO metadata (key, value) VALUES ('schema_version', ?)"
	logSQL(query, version)

	if _, err := db.Exec(query, version); err != nil {
		return fmt.Errorf("failed to set schema version: %w", err)
	}

	return nil
}

func backupDatabase(dbPath string) error {
	src, err := os.Open(dbPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("failed to open database for backup: %w", err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(dbPath+".bak", os.O_RDWR|os.O_CREATE|os.O_TRUNC, FilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy database to backup: %w", err)
	}

	logger.Log.Debugf("Created database backup at %s.bak", dbPath)

	return nil
}

func removeBackup(dbPath string) {
	if err := os.Remove(dbPath + ".bak"); err != nil && !os.IsNotExist(err) {
		logger.Log.Debugf("Failed to remove backup file: %v", err)
	}
}

// migrate brings the schema to the latest version. Fresh databases get every
// migration applied; existing ones only the pending ones, behind a backup.
func migrate(db *sql.DB, dbPath string) error {
	current, err := getSchemaVersion(db)
	if err != nil {
		return err
	}

	if current == 0 {
		for _, m := range migrations.All() {
			if err := m.Up(db); err != nil {
				return fmt.Errorf("migration v%d failed: %w", m.Version(), err)
			}
		}

		return setSchemaVersion(db, migrations.LatestVersion())
	}

	pending := migrations.GetPending(current)
	if len(pending) == 0 {
		return nil
	}

	target := migrations.LatestVersion()
	logger.Log.Debugf("Migrating database schema from version %d to %d", current, target)

	if err := backupDatabase(dbPath); err != nil {
		logger.Log.Warnf("Failed to create backup before migration: %v", err)
	}

	for _, m := range pending {
		logger.Log.Debugf("Applying migration v%d: %s", m.Version(), m.Description())

		if err := m.Up(db); err != nil {
			return fmt.Errorf("migration v%d failed: %w", m.Version(), err)
		}
	}

	if err := setSchemaVersion(db, target); err != nil {
		return err
	}

	removeBackup(dbPath)

	return nil
}
