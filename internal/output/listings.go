package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kedare/plaza/internal/listing"
	"github.com/kedare/plaza/internal/pagination"
	"github.com/pterm/pterm"
)

// ListingPage is the JSON shape of a rendered page, mirroring the backend's
// page payload.
type ListingPage struct {
	Data       []listing.Record      `json:"data"`
	Pagination pagination.Descriptor `json:"pagination"`
}

// ListingHeaders are the table column titles.
var ListingHeaders = []string{"ID", "Name", "Address", "Location", "Type", "Size", "Leased", "Rating"}

// maxCellWidth bounds free-text columns so rows fit typical terminals.
const maxCellWidth = 32

// ListingRow formats one record as table cells.
func ListingRow(r listing.Record) []string {
	return []string{
		r.ID,
		Truncate(r.Name, maxCellWidth),
		Truncate(r.StreetAddress(), maxCellWidth),
		Truncate(r.Place(), maxCellWidth),
		dash(r.PropertyType),
		dash(r.PropertySize),
		dash(r.PercentLeased),
		FormatRating(r.Rating),
	}
}

// FormatRating renders an optional rating with one decimal.
func FormatRating(rating *float64) string {
	if rating == nil {
		return "-"
	}

	return strconv.FormatFloat(*rating, 'f', 1, 64)
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}

	return s
}

// RenderListings writes one page of listings in the requested format.
func RenderListings(w io.Writer, records []listing.Record, d pagination.Descriptor, format string) error {
	if strings.EqualFold(format, FormatJSON) {
		if records == nil {
			records = []listing.Record{}
		}

		return WriteJSON(w, ListingPage{Data: records, Pagination: d})
	}

	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No listings found.")
		return err
	}

	data := make([][]string, 0, len(records)+1)
	data = append(data, ListingHeaders)

	for _, r := range records {
		data = append(data, ListingRow(r))
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed(true).WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render listings table: %w", err)
	}

	if _, err := fmt.Fprintln(w, table); err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, Summary(d))

	return err
}

// Summary describes the page position, e.g.
// "Showing 26-50 of 120 · page 2/5 · [1] 2 3 4 5".
func Summary(d pagination.Descriptor) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Showing %d-%d of %d · page %d/%d", d.From, d.To, d.Total, d.CurrentPage, d.LastPage)

	if links := d.PageLinks(); len(links) > 0 {
		labels := make([]string, 0, len(links))
		for _, l := range links {
			if l.Active {
				labels = append(labels, "["+l.Label+"]")
				continue
			}

			labels = append(labels, l.Label)
		}

		b.WriteString(" · ")
		b.WriteString(strings.Join(labels, " "))
	}

	return b.String()
}

// RenderTypeCounts writes a property type breakdown as a table.
func RenderTypeCounts(w io.Writer, rows [][2]string, format string) error {
	if strings.EqualFold(format, FormatJSON) {
		out := make([]map[string]string, 0, len(rows))
		for _, r := range rows {
			out = append(out, map[string]string{"property_type": r[0], "count": r[1]})
		}

		return WriteJSON(w, out)
	}

	data := [][]string{{"Property Type", "Listings"}}
	for _, r := range rows {
		data = append(data, []string{r[0], r[1]})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed(true).WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render stats table: %w", err)
	}

	_, err = fmt.Fprintln(w, table)

	return err
}
