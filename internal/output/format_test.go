package output

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/kedare/plaza/internal/listing"
	"github.com/kedare/plaza/internal/pagination"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"
)

func TestDefaultFormatAndJSONMode(t *testing.T) {
	t.Run("default_format_with_empty_env", func(t *testing.T) {
		t.Setenv("PLAZA_OUTPUT", "")
		require.Equal(t, FormatTable, DefaultFormat(FormatTable))
	})

	t.Run("default_format_with_json_env", func(t *testing.T) {
		t.Setenv("PLAZA_OUTPUT", "JSON")
		require.Equal(t, FormatJSON, DefaultFormat(FormatTable))
	})

	t.Run("default_format_with_unsupported_env", func(t *testing.T) {
		t.Setenv("PLAZA_OUTPUT", "yaml")
		require.Equal(t, FormatTable, DefaultFormat(FormatTable))
	})

	t.Run("set_format", func(t *testing.T) {
		SetFormat("json")
		require.True(t, IsJSONMode())

		SetFormat("table")
		require.False(t, IsJSONMode())
	})
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "fits", in: "Elm Plaza", width: 20, want: "Elm Plaza"},
		{name: "cut", in: "Riverside Commerce Center", width: 10, want: "Riverside…"},
		{name: "zero", in: "anything", width: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Truncate(tt.in, tt.width))
		})
	}
}

func TestTerminalWidthHonoursColumns(t *testing.T) {
	t.Setenv("COLUMNS", "77")
	require.Equal(t, 77, TerminalWidth())
}

func TestListingRow(t *testing.T) {
	r := listing.Record{
		ID:           "7",
		Name:         "Elm Plaza",
		Location:     listing.Location{FullAddress: "10 Elm St, Austin, TX", City: "Austin", StateName: "Texas"},
		PropertyType: "Office",
		Rating:       listing.Float(4.3),
	}

	require.Equal(t,
		[]string{"7", "Elm Plaza", "10 Elm St, Austin, TX", "Austin, Texas", "Office", "-", "-", "4.3"},
		ListingRow(r))
}

func TestRenderListingsTable(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	records := []listing.Record{{ID: "1", Name: "Elm Plaza"}, {ID: "2", Name: "Oak Tower"}}
	d := pagination.Build("/properties", url.Values{}, 40, 2, 2)

	var buf bytes.Buffer
	require.NoError(t, RenderListings(&buf, records, d, FormatTable))

	out := buf.String()
	require.Contains(t, out, "Elm Plaza")
	require.Contains(t, out, "Oak Tower")
	require.Contains(t, out, "Showing 3-4 of 40 · page 2/20")
	require.Contains(t, out, "[2]")
	require.Contains(t, out, "...")
}

func TestRenderListingsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderListings(&buf, nil, pagination.Build("/properties", nil, 0, 1, 25), FormatTable))
	require.Equal(t, "No listings found.\n", buf.String())
}

func TestRenderListingsJSON(t *testing.T) {
	var buf bytes.Buffer
	d := pagination.Build("/properties", url.Values{"search": {"austin"}}, 3, 1, 25)
	require.NoError(t, RenderListings(&buf, nil, d, FormatJSON))

	var page struct {
		Data       []listing.Record `json:"data"`
		Pagination struct {
			Total int `json:"total"`
			Links []struct {
				URL *string `json:"url"`
			} `json:"links"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &page))
	require.NotNil(t, page.Data)
	require.Empty(t, page.Data)
	require.Equal(t, 3, page.Pagination.Total)
	require.Nil(t, page.Pagination.Links[0].URL)
	require.True(t, strings.Contains(*page.Pagination.Links[1].URL, "search=austin"))
}

func TestRenderTypeCountsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTypeCounts(&buf, [][2]string{{"Office", "3"}}, FormatJSON))
	require.JSONEq(t, `[{"property_type":"Office","count":"3"}]`, buf.String())
}
