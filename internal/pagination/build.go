package pagination

import (
	"net/url"
	"strconv"
)

const (
	// PrevLabel and NextLabel label the first and last entries of a link list.
	PrevLabel = "« Previous"
	NextLabel = "Next »"
	// Ellipsis labels a gap in the numbered links.
	Ellipsis = "..."

	// window is the number of pages shown on each side of the current page.
	window = 2
	// edge is the number of pages always shown at both ends.
	edge = 2
)

// Build produces the descriptor for one page of a result set of total items.
// Every link URL targets path and carries params, with page and per_page
// replaced. page is clamped to the valid range.
func Build(path string, params url.Values, total, page, perPage int) Descriptor {
	if perPage <= 0 {
		perPage = 1
	}

	if total < 0 {
		total = 0
	}

	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}

	page = min(max(page, 1), lastPage)

	urlFor := func(n int) string {
		q := url.Values{}
		for k, v := range params {
			q[k] = append([]string(nil), v...)
		}
		q.Set(ParamPage, strconv.Itoa(n))
		q.Set(ParamPerPage, strconv.Itoa(perPage))

		return path + "?" + q.Encode()
	}

	d := Descriptor{
		Total:          total,
		PerPage:        perPage,
		CurrentPage:    page,
		LastPage:       lastPage,
		CurrentPageURL: urlFor(page),
	}

	if total > 0 {
		d.From = (page-1)*perPage + 1
		d.To = min(page*perPage, total)
	}

	prev := Link{Label: PrevLabel}
	if page > 1 {
		d.PrevPageURL = urlFor(page - 1)
		prev.URL = stringPtr(d.PrevPageURL)
	}

	next := Link{Label: NextLabel}
	if page < lastPage {
		d.NextPageURL = urlFor(page + 1)
		next.URL = stringPtr(d.NextPageURL)
	}

	d.Links = append(d.Links, prev)
	for _, n := range visiblePages(page, lastPage) {
		if n == 0 {
			d.Links = append(d.Links, Link{Label: Ellipsis})
			continue
		}

		d.Links = append(d.Links, Link{
			URL:    stringPtr(urlFor(n)),
			Label:  strconv.Itoa(n),
			Active: n == page,
		})
	}
	d.Links = append(d.Links, next)

	return d
}

// visiblePages lists the page numbers to show, with 0 standing for an elided
// gap.
func visiblePages(page, lastPage int) []int {
	show := func(n int) bool {
		return n <= edge || n > lastPage-edge || (n >= page-window && n <= page+window)
	}

	var out []int
	gap := false

	for n := 1; n <= lastPage; n++ {
		if show(n) {
			out = append(out, n)
			gap = false
			continue
		}

		if !gap {
			out = append(out, 0)
			gap = true
		}
	}

	return out
}

func stringPtr(s string) *string {
	return &s
}
