package store

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/kedare/plaza/internal/config"
	"github.com/kedare/plaza/internal/listing"
	"github.com/kedare/plaza/internal/nav"
	"github.com/kedare/plaza/internal/pagination"
)

// sortOrders maps the sort_by keys to ORDER BY clauses. Unknown keys fall
// back to insertion order.
var sortOrders = map[string]string{
	"name":   "name COLLATE NOCASE ASC, seq ASC",
	"city":   "city COLLATE NOCASE ASC, name COLLATE NOCASE ASC, seq ASC",
	"rating": "rating IS NULL, rating DESC, seq ASC",
	"newest": "updated_at DESC, seq DESC",
}

const defaultOrder = "seq ASC"

// Page is the answer to one listings navigation.
type Page struct {
	Request    nav.Request
	Records    []listing.Record
	Pagination pagination.Descriptor
}

// Page serves the page described by req. It reads page, per_page and sort_by;
// every other parameter is carried through into the link URLs untouched.
func (s *Store) Page(ctx context.Context, req nav.Request) (Page, error) {
	page := atoiDefault(req.Get(pagination.ParamPage), 1)
	perPage := config.ClampPerPage(atoiDefault(req.Get(pagination.ParamPerPage), config.DefaultPerPage))

	order, ok := sortOrders[req.Get("sort_by")]
	if !ok {
		order = defaultOrder
	}

	total, err := s.Count(ctx)
	if err != nil {
		return Page{}, err
	}

	path := req.Path
	if path == "" {
		path = nav.ListingsPath
	}

	carried := url.Values{}
	for k, v := range req.Params {
		if k == pagination.ParamPage || k == pagination.ParamPerPage {
			continue
		}
		carried[k] = v
	}

	desc := pagination.Build(path, carried, total, page, perPage)
	offset := (desc.CurrentPage - 1) * desc.PerPage

	query := "SELECT " + selectColumns + " FROM listings ORDER BY " + order + " LIMIT ? OFFSET ?"
	logSQL(query, desc.PerPage, offset)

	rows, err := s.db.QueryContext(ctx, query, desc.PerPage, offset)
	if err != nil {
		return Page{}, fmt.Errorf("failed to query listings page: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]listing.Record, 0, desc.PerPage)

	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return Page{}, fmt.Errorf("failed to scan listing: %w", err)
		}

		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return Page{}, fmt.Errorf("failed to read listings page: %w", err)
	}

	return Page{Request: req, Records: records, Pagination: desc}, nil
}

func atoiDefault(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}

	return n
}
