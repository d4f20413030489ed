package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kedare/plaza/internal/filter"
	"github.com/kedare/plaza/internal/listing"
	"github.com/kedare/plaza/internal/output"
	"github.com/kedare/plaza/internal/pagination"
	"github.com/kedare/plaza/internal/view"
	"github.com/stretchr/testify/require"
)

func TestListFlagsRequest(t *testing.T) {
	opts := listFlags{
		search:       "austin",
		propertyType: []string{"Office", "Retail"},
		propertySize: "small",
		rating:       "4",
		sortBy:       "name",
		page:         3,
		view:         "LIST",
	}

	req, err := opts.request(25)
	require.NoError(t, err)

	require.Equal(t, "austin", req.Get("search"))
	require.Equal(t, []string{"Office", "Retail"}, req.Params["property_type"])
	require.Equal(t, "small", req.Get("property_size"))
	require.Equal(t, "4", req.Get("rating"))
	require.Equal(t, "name", req.Get("sort_by"))
	require.Equal(t, "3", req.Get(pagination.ParamPage))
	require.Equal(t, "25", req.Get(pagination.ParamPerPage))
	require.Equal(t, "list", req.Get(view.Param))

	state := filter.FromParams(req.Params)
	require.Equal(t, opts.propertyType, state.PropertyType())
}

func TestListFlagsRequestErrors(t *testing.T) {
	_, err := listFlags{rating: "great"}.request(25)
	require.Error(t, err)

	_, err = listFlags{view: "grid"}.request(25)
	require.Error(t, err)

	req, err := listFlags{page: -2, perPage: 10}.request(25)
	require.NoError(t, err)
	require.Equal(t, "1", req.Get(pagination.ParamPage))
	require.Equal(t, "10", req.Get(pagination.ParamPerPage))
}

func TestBrowseRequest(t *testing.T) {
	req := browseRequest(view.ModeMap, 500, "")
	require.Equal(t, "100", req.Get(pagination.ParamPerPage))
	require.Empty(t, req.Get(view.Param))
	require.Empty(t, req.Get("search"))

	req = browseRequest(view.ModeList, 10, "denver")
	require.Equal(t, "list", req.Get(view.Param))
	require.Equal(t, "denver", req.Get("search"))
	require.Equal(t, "1", req.Get(pagination.ParamPage))
}

func TestAssignIDs(t *testing.T) {
	records := []listing.Record{{ID: "keep"}, {ID: " "}, {}}

	require.Equal(t, 2, assignIDs(records))
	require.Equal(t, "keep", records[0].ID)
	require.Len(t, records[1].ID, 36)
	require.NotEqual(t, records[1].ID, records[2].ID)
}

func TestReadListingFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(a, []byte(`[{"id":"1","name":"One"}]`), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("data:\n  - id: \"2\"\n    name: Two\n  - name: Unnamed id\n"), 0o600))

	var calls int
	batches, err := readListingFiles([]string{a, b}, func(done, total int) {
		calls++
		require.Equal(t, 2, total)
	})
	require.NoError(t, err)
	require.Equal(t, 2, calls)
	require.Len(t, batches, 2)
	require.Equal(t, "1", batches[0][0].ID)
	require.Len(t, batches[1], 2)

	_, err = readListingFiles([]string{a, filepath.Join(dir, "missing.json")}, nil)
	require.Error(t, err)
}

func TestImportAndList(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "plaza.db")
	file := filepath.Join(dir, "listings.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"data":[
		{"id":"a","name":"Austin Plaza","location":{"city":"Austin","state_name":"TX"},"property_type":"Office"},
		{"id":"b","name":"Denver Yards","location":{"city":"Denver","state_name":"CO"},"property_type":"Industrial"},
		{"name":"Austin Lofts","location":{"city":"Austin","state_name":"TX"},"property_type":"Retail"}
	]}`), 0o600))

	t.Setenv("PLAZA_DB", "")
	t.Setenv("PLAZA_OUTPUT", "")
	t.Setenv("HOME", dir)
	t.Cleanup(func() {
		cfg, dbPath = nil, ""
		listOpts = listFlags{}
		importGenerateIDs = false
		output.SetFormat(output.FormatTable)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
	})

	rootCmd.SetArgs([]string{"--db", db, "listings", "import", file})
	require.Error(t, rootCmd.Execute(), "a record without id is rejected")

	rootCmd.SetArgs([]string{"--db", db, "listings", "import", "--generate-ids", file})
	require.NoError(t, rootCmd.Execute())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--db", db, "listings", "list", "--per-page", "2", "--search", "austin", "-o", "json"})
	require.NoError(t, rootCmd.Execute())

	var page output.ListingPage
	require.NoError(t, json.Unmarshal(out.Bytes(), &page))
	require.Equal(t, 3, page.Pagination.Total)
	require.Equal(t, 2, page.Pagination.LastPage)
	require.Len(t, page.Data, 1, "search narrows the page")
	require.Equal(t, "Austin Plaza", page.Data[0].Name)
	require.Contains(t, page.Pagination.NextPageURL, "search=austin")
}
