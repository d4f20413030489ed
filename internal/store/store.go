// Package store persists listings in SQLite and serves them a page at a time,
// the way the listings backend answers a navigation.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kedare/plaza/internal/listing"
	"github.com/kedare/plaza/internal/logger"

	_ "modernc.org/sqlite"
)

const (
	// FilePermissions restricts the database to its owner.
	FilePermissions = 0o600
	// DirPermissions restricts the data directory to its owner.
	DirPermissions = 0o700
)

// ErrNotFound is returned when a listing id is unknown.
var ErrNotFound = errors.New("listing not found")

// Store is a SQLite-backed listings store.
type Store struct {
	db     *sql.DB
	dbPath string
	now    func() time.Time
}

// Open opens (creating if needed) the database at path and migrates it.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite serializes writers; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := migrate(db, path); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Log.Debugf("Opened listings database at %s", path)

	return &Store{db: db, dbPath: path, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// logSQL traces a statement and its arguments.
func logSQL(query string, args ...interface{}) {
	if !logger.Log.Enabled(logger.LevelTrace) {
		return
	}

	compact := strings.Join(strings.Fields(query), " ")
	if len(args) == 0 {
		logger.Log.Tracef("SQL: %s", compact)
		return
	}

	logger.Log.Tracef("SQL: %s %v", compact, args)
}

const upsertListing = `
	INSERT INTO listings (
		id, name, address, full_address, city, state_name, property_type, secondary_type,
		property_size, percent_leased, location_type, existing_plus, rating, latitude, longitude, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		name = excluded.name,
		address = excluded.address,
		full_address = excluded.full_address,
		city = excluded.city,
		state_name = excluded.state_name,
		property_type = excluded.property_type,
		secondary_type = excluded.secondary_type,
		property_size = excluded.property_size,
		percent_leased = excluded.percent_leased,
		location_type = excluded.location_type,
		existing_plus = excluded.existing_plus,
		rating = excluded.rating,
		latitude = excluded.latitude,
		longitude = excluded.longitude,
		updated_at = excluded.updated_at`

// Upsert inserts or replaces records in one transaction. Records are validated
// first; nothing is written when any record is invalid.
func (s *Store) Upsert(ctx context.Context, records []listing.Record) (n int, err error) {
	if err := listing.Validate(records); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, upsertListing)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	stamp := s.now().Unix()

	for _, r := range records {
		args := upsertArgs(r, stamp)
		logSQL(upsertListing, args...)

		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("failed to upsert listing %s: %w", r.ID, err)
		}

		n++
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit listings: %w", err)
	}

	return n, nil
}

func upsertArgs(r listing.Record, stamp int64) []interface{} {
	var rating, lat, lng sql.NullFloat64
	if r.Rating != nil {
		rating = sql.NullFloat64{Float64: *r.Rating, Valid: true}
	}

	if c := r.Coordinates; c != nil {
		lat = sql.NullFloat64{Float64: c.Lat, Valid: true}
		lng = sql.NullFloat64{Float64: c.Lng, Valid: true}
	}

	return []interface{}{
		strings.TrimSpace(r.ID), r.Name, r.Location.Address, r.Location.FullAddress, r.Location.City,
		r.Location.StateName, r.PropertyType, r.SecondaryType, r.PropertySize, r.PercentLeased,
		r.LocationType, r.ExistingPlus, rating, lat, lng, stamp,
	}
}

const selectColumns = `id, name, address, full_address, city, state_name, property_type, secondary_type,
	property_size, percent_leased, location_type, existing_plus, rating, latitude, longitude`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row scanner) (listing.Record, error) {
	var (
		r                                                  listing.Record
		address, fullAddress, city, stateName              sql.NullString
		propertyType, secondaryType, propertySize, percent sql.NullString
		locationType, existingPlus                         sql.NullString
		rating, lat, lng                                   sql.NullFloat64
	)

	err := row.Scan(&r.ID, &r.Name, &address, &fullAddress, &city, &stateName, &propertyType, &secondaryType,
		&propertySize, &percent, &locationType, &existingPlus, &rating, &lat, &lng)
	if err != nil {
		return listing.Record{}, err
	}

	r.Location = listing.Location{
		Address:     address.String,
		FullAddress: fullAddress.String,
		City:        city.String,
		StateName:   stateName.String,
	}
	r.PropertyType = propertyType.String
	r.SecondaryType = secondaryType.String
	r.PropertySize = propertySize.String
	r.PercentLeased = percent.String
	r.LocationType = locationType.String
	r.ExistingPlus = existingPlus.String

	if rating.Valid {
		r.Rating = listing.Float(rating.Float64)
	}

	if lat.Valid && lng.Valid {
		r.Coordinates = &listing.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
	}

	return r, nil
}

// Get returns one listing.
func (s *Store) Get(ctx context.Context, id string) (listing.Record, error) {
	query := "SELECT " + selectColumns + " FROM listings WHERE id = ?"
	logSQL(query, id)

	r, err := scanRecord(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return listing.Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if err != nil {
		return listing.Record{}, fmt.Errorf("failed to load listing %s: %w", id, err)
	}

	return r, nil
}

// Delete removes one listing.
func (s *Store) Delete(ctx context.Context, id string) error {
	query := "DELETE FROM listings WHERE id = ?"
	logSQL(query, id)

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete listing %s: %w", id, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return nil
}

// IDs returns up to 50 listing ids starting with prefix, in id order.
func (s *Store) IDs(ctx context.Context, prefix string) ([]string, error) {
	query := "SELECT id FROM listings WHERE id LIKE ? ESCAPE '\\' ORDER BY id LIMIT 50"
	pattern := likeEscaper.Replace(prefix) + "%"
	logSQL(query, pattern)

	rows, err := s.db.QueryContext(ctx, query, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list listing ids: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan listing id: %w", err)
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Count returns the number of stored listings.
func (s *Store) Count(ctx context.Context) (int, error) {
	query := "SELECT COUNT(*) FROM listings"
	logSQL(query)

	var n int
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}

	return n, nil
}

// TypeCount is the number of listings of one property type.
type TypeCount struct {
	PropertyType string
	Count        int
}

// CountByType groups listings by property type, largest group first.
func (s *Store) CountByType(ctx context.Context) ([]TypeCount, error) {
	query := `SELECT COALESCE(NULLIF(property_type, ''), 'Unspecified') AS t, COUNT(*) AS n
		FROM listings GROUP BY t ORDER BY n DESC, t ASC`
	logSQL(query)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count listings by type: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []TypeCount

	for rows.Next() {
		var tc TypeCount
		if err := rows.Scan(&tc.PropertyType, &tc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan type count: %w", err)
		}

		out = append(out, tc)
	}

	return out, rows.Err()
}
