package tui

import (
	"context"
	"net/url"

	"github.com/kedare/plaza/internal/filter"
	"github.com/kedare/plaza/internal/listing"
	"github.com/kedare/plaza/internal/nav"
	"github.com/kedare/plaza/internal/store"
	"github.com/kedare/plaza/internal/view"
)

// PageLoader answers a navigation with one page of listings.
type PageLoader interface {
	Page(ctx context.Context, req nav.Request) (store.Page, error)
}

// session is everything the browser knows about the displayed page. A new
// session is built on every page load; nothing survives navigation except
// what the request parameters carry.
type session struct {
	page     store.Page
	state    *filter.State
	selector *view.Selector
	visible  []listing.Record
}

func newSession(page store.Page) *session {
	s := &session{
		page:     page,
		state:    filter.FromParams(page.Request.Params),
		selector: view.NewSelector(),
	}

	s.selector.SetMode(view.ModeFromParams(page.Request.Params))
	s.refilter()

	return s
}

func (s *session) refilter() {
	s.visible = filter.Apply(s.page.Records, s.state)
}

// setSearch updates the term and narrows the visible collection at once.
func (s *session) setSearch(term string) {
	s.state.SetSearch(term)
	s.refilter()
}

// selected resolves the selection against the visible collection.
func (s *session) selected() (listing.Record, int, bool) {
	return s.selector.Resolve(s.visible)
}

// selectAt selects the visible record at idx.
func (s *session) selectAt(idx int) bool {
	if idx < 0 || idx >= len(s.visible) {
		return false
	}

	s.selector.Select(s.visible[idx].ID)

	return true
}

// step moves the selection by delta through the visible collection, wrapping
// around. With no live selection it starts from the first or last record.
func (s *session) step(delta int) bool {
	n := len(s.visible)
	if n == 0 {
		return false
	}

	_, idx, ok := s.selected()
	switch {
	case !ok && delta >= 0:
		idx = 0
	case !ok:
		idx = n - 1
	default:
		idx = ((idx+delta)%n + n) % n
	}

	return s.selectAt(idx)
}

// withMode writes the live view mode onto a navigation, replacing any mode
// carried by a link URL. The map default is left implicit.
func withMode(req nav.Request, mode view.Mode) nav.Request {
	params := url.Values{}
	for k, v := range req.Params {
		params[k] = v
	}

	if mode == view.ModeList {
		params.Set(view.Param, mode.String())
	} else {
		params.Del(view.Param)
	}

	if len(params) == 0 {
		params = nil
	}

	return nav.Request{Path: req.Path, Params: params}
}
