package tui

import (
	"fmt"
	"strings"

	"github.com/kedare/plaza/internal/listing"
	"github.com/kedare/plaza/internal/output"
	"github.com/rivo/tview"
)

var listHeaders = []string{"", "Name", "Address", "Location", "Type", "Size", "Leased", "Rating"}

// ListView shows the visible listings as table rows. Moving the cursor onto a
// row selects that listing.
type ListView struct {
	Table    *tview.Table
	styles   *Styles
	updating bool
	onSelect func(idx int)
}

// NewListView creates the table with its header row.
func NewListView(styles *Styles) *ListView {
	lv := &ListView{Table: tview.NewTable(), styles: styles}

	lv.Table.SetBorders(false).
		SetSelectable(true, false).
		SetFixed(1, 0).
		SetSeparator(tview.Borders.Vertical)
	lv.Table.SetBorder(true).
		SetBorderColor(styles.BorderColor).
		SetTitleColor(styles.TitleFg).
		SetBackgroundColor(styles.BgColor)

	lv.Table.SetSelectionChangedFunc(func(row, _ int) {
		if lv.updating || lv.onSelect == nil || row < 1 {
			return
		}

		lv.onSelect(row - 1)
	})

	lv.setHeaders()

	return lv
}

// SetSelectFunc sets the handler for row activation.
func (lv *ListView) SetSelectFunc(fn func(idx int)) *ListView {
	lv.onSelect = fn
	return lv
}

func (lv *ListView) setHeaders() {
	for col, h := range listHeaders {
		lv.Table.SetCell(0, col, tview.NewTableCell(h).
			SetTextColor(lv.styles.TableHeaderFg).
			SetBackgroundColor(lv.styles.TableHeaderBg).
			SetSelectable(false).
			SetExpansion(expansionFor(col)))
	}
}

func expansionFor(col int) int {
	switch col {
	case 0:
		return 0
	case 1, 2:
		return 2
	default:
		return 1
	}
}

// Update replaces the rows. term is highlighted in the searchable columns and
// selected (-1 for none) gets the marker and the cursor.
func (lv *ListView) Update(records []listing.Record, term string, selected int) {
	lv.updating = true
	defer func() { lv.updating = false }()

	lv.Table.Clear()
	lv.setHeaders()

	for i, r := range records {
		row := i + 1
		mark := " "
		if i == selected {
			mark = Tag(lv.styles.MarkerSelectedBg, string(selectedMarkerRune))
		}

		cells := []string{
			mark,
			highlightMatch(tview.Escape(r.Name), term),
			highlightMatch(tview.Escape(r.StreetAddress()), term),
			highlightMatch(tview.Escape(r.Place()), term),
			dash(r.PropertyType),
			dash(r.PropertySize),
			dash(r.PercentLeased),
			lv.rating(r.Rating),
		}

		for col, text := range cells {
			lv.Table.SetCell(row, col, tview.NewTableCell(text).
				SetReference(r.ID).
				SetExpansion(expansionFor(col)))
		}
	}

	if len(records) == 0 {
		lv.Table.SetCell(1, 1, tview.NewTableCell("No listings match the current search").
			SetTextColor(lv.styles.DisabledFg).
			SetSelectable(false))
	}

	if term != "" {
		lv.Table.SetTitle(fmt.Sprintf(" Listings (%d matching %q) ", len(records), term))
	} else {
		lv.Table.SetTitle(fmt.Sprintf(" Listings (%d) ", len(records)))
	}

	switch {
	case selected >= 0 && selected < len(records):
		lv.Table.Select(selected+1, 0)
	case len(records) > 0:
		lv.Table.Select(1, 0)
		lv.Table.ScrollToBeginning()
	}
}

func (lv *ListView) rating(v *float64) string {
	if v == nil {
		return Tag(lv.styles.DisabledFg, "-")
	}

	return Tag(lv.styles.RatingColor(*v), output.FormatRating(v))
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}

	return tview.Escape(s)
}
