package tui

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/kedare/plaza/internal/listing"
	"github.com/kedare/plaza/internal/nav"
	"github.com/kedare/plaza/internal/pagination"
	"github.com/kedare/plaza/internal/store"
)

// fakeLoader pages over a fixed collection and records every request.
type fakeLoader struct {
	records  []listing.Record
	requests []nav.Request
	err      error
}

func (f *fakeLoader) Page(_ context.Context, req nav.Request) (store.Page, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return store.Page{}, f.err
	}

	page, _ := strconv.Atoi(req.Get(pagination.ParamPage))
	perPage, _ := strconv.Atoi(req.Get(pagination.ParamPerPage))
	if perPage <= 0 {
		perPage = 2
	}

	d := pagination.Build(nav.ListingsPath, without(req.Params, pagination.ParamPage, pagination.ParamPerPage), len(f.records), page, perPage)

	start := min((d.CurrentPage-1)*d.PerPage, len(f.records))
	end := min(start+d.PerPage, len(f.records))

	return store.Page{Request: req, Records: f.records[start:end], Pagination: d}, nil
}

func (f *fakeLoader) last() nav.Request {
	return f.requests[len(f.requests)-1]
}

func without(params url.Values, keys ...string) url.Values {
	out := make(url.Values, len(params))
	for k, v := range params {
		out[k] = v
	}

	for _, k := range keys {
		delete(out, k)
	}

	return out
}

func sampleRecords() []listing.Record {
	return []listing.Record{
		{
			ID: "a", Name: "Austin Plaza", PropertyType: "Office",
			Location:    listing.Location{Address: "1 Congress Ave", City: "Austin", StateName: "TX"},
			Coordinates: &listing.Coordinates{Lat: 30.26, Lng: -97.74},
			Rating:      listing.Float(4.5),
		},
		{
			ID: "b", Name: "Denver Yards", PropertyType: "Industrial",
			Location:    listing.Location{Address: "9 Blake St", City: "Denver", StateName: "CO"},
			Coordinates: &listing.Coordinates{Lat: 39.74, Lng: -104.99},
		},
		{
			ID: "c", Name: "Austin Lofts", PropertyType: "Retail",
			Location: listing.Location{FullAddress: "5 Lamar Blvd, Austin", City: "Austin", StateName: "TX"},
		},
		{
			ID: "d", Name: fmt.Sprintf("Building %d", 4), PropertyType: "Office",
			Location: listing.Location{City: "Boston", StateName: "MA"},
		},
	}
}
