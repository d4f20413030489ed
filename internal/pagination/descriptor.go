// Package pagination maps the backend's page descriptor to navigation actions
// and builds descriptors on the serving side.
package pagination

// Link is one entry of the backend link list. A nil URL marks a placeholder
// (an ellipsis, or prev/next on the first/last page) that cannot be activated.
type Link struct {
	URL    *string `json:"url"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// Enabled reports whether activating the link navigates anywhere.
func (l Link) Enabled() bool {
	return l.URL != nil
}

// Descriptor is the per-page metadata supplied with every page load.
type Descriptor struct {
	Total          int    `json:"total"`
	PerPage        int    `json:"per_page"`
	CurrentPage    int    `json:"current_page"`
	LastPage       int    `json:"last_page"`
	From           int    `json:"from"`
	To             int    `json:"to"`
	CurrentPageURL string `json:"current_page_url"`
	PrevPageURL    string `json:"prev_page_url,omitempty"`
	NextPageURL    string `json:"next_page_url,omitempty"`
	Links          []Link `json:"links"`
}

// PageLinks returns the numbered links, without the leading "previous" and
// trailing "next" entries that are rendered as separate controls.
func (d Descriptor) PageLinks() []Link {
	if len(d.Links) <= 2 {
		return nil
	}

	out := make([]Link, len(d.Links)-2)
	copy(out, d.Links[1:len(d.Links)-1])

	return out
}

// HasPrev reports whether the previous control is enabled.
func (d Descriptor) HasPrev() bool {
	return d.PrevPageURL != ""
}

// HasNext reports whether the next control is enabled.
func (d Descriptor) HasNext() bool {
	return d.NextPageURL != ""
}
