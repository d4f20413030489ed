package pagination

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/kedare/plaza/internal/filter"
	"github.com/kedare/plaza/internal/logger"
	"github.com/kedare/plaza/internal/nav"
)

// Paging parameter keys.
const (
	ParamPage    = "page"
	ParamPerPage = "per_page"
)

// PageSizes are the choices offered by the page-size selector.
var PageSizes = []int{10, 25, 50, 100}

// Adapter turns pagination controls into navigations. It keeps no state
// between page loads: every action is a fresh navigation.
type Adapter struct {
	Path      string
	Navigator nav.Navigator
}

// NewAdapter creates an adapter targeting the listings path.
func NewAdapter(n nav.Navigator) *Adapter {
	return &Adapter{Path: nav.ListingsPath, Navigator: n}
}

// Activate follows a page link. Placeholders with no URL do nothing and
// report false.
func (a *Adapter) Activate(ctx context.Context, link Link) (bool, error) {
	if !link.Enabled() {
		logger.Log.Tracef("Ignoring activation of placeholder link %q", link.Label)
		return false, nil
	}

	return a.follow(ctx, *link.URL)
}

// Prev navigates to the previous page when there is one.
func (a *Adapter) Prev(ctx context.Context, d Descriptor) (bool, error) {
	if !d.HasPrev() {
		return false, nil
	}

	return a.follow(ctx, d.PrevPageURL)
}

// Next navigates to the next page when there is one.
func (a *Adapter) Next(ctx context.Context, d Descriptor) (bool, error) {
	if !d.HasNext() {
		return false, nil
	}

	return a.follow(ctx, d.NextPageURL)
}

// SetPageSize reloads the first page with a new page size, carrying every
// current filter value.
func (a *Adapter) SetPageSize(ctx context.Context, state *filter.State, size int) error {
	if size <= 0 {
		return fmt.Errorf("invalid page size %d", size)
	}

	params := paramsOf(state)
	params.Set(ParamPerPage, strconv.Itoa(size))
	params.Set(ParamPage, "1")

	return a.navigate(ctx, nav.Request{Path: a.Path, Params: params})
}

// Submit reloads the first page with the given filter state and page size.
// A non-positive size leaves the size to the backend default.
func (a *Adapter) Submit(ctx context.Context, state *filter.State, size int) error {
	params := paramsOf(state)
	if size > 0 {
		params.Set(ParamPerPage, strconv.Itoa(size))
	}
	params.Set(ParamPage, "1")

	return a.navigate(ctx, nav.Request{Path: a.Path, Params: params})
}

// Clear navigates to the listings path with no parameters at all.
func (a *Adapter) Clear(ctx context.Context) error {
	return a.navigate(ctx, nav.Request{Path: a.Path})
}

func (a *Adapter) follow(ctx context.Context, raw string) (bool, error) {
	req, err := nav.ParseRequest(raw)
	if err != nil {
		return false, err
	}

	if err := a.navigate(ctx, req); err != nil {
		return false, err
	}

	return true, nil
}

func (a *Adapter) navigate(ctx context.Context, req nav.Request) error {
	logger.Log.Debugf("Navigating to %s", req.URL())

	if err := a.Navigator.Navigate(ctx, req); err != nil {
		return fmt.Errorf("navigation to %s failed: %w", req.URL(), err)
	}

	return nil
}

func paramsOf(state *filter.State) url.Values {
	if state == nil {
		return url.Values{}
	}

	return state.Params()
}
