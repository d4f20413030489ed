package tui

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kedare/plaza/internal/filter"
	"github.com/kedare/plaza/internal/nav"
	"github.com/kedare/plaza/internal/pagination"
	"github.com/kedare/plaza/internal/view"
	"github.com/stretchr/testify/require"
)

func newTestBrowser(t *testing.T) (*App, *fakeLoader) {
	t.Helper()

	return openTestBrowser(t, nav.NewRequest(nil))
}

func openTestBrowser(t *testing.T, req nav.Request) (*App, *fakeLoader) {
	t.Helper()

	loader := &fakeLoader{records: sampleRecords()}
	app := NewApp(context.Background(), &Config{Loader: loader, Request: req})
	t.Cleanup(app.Stop)

	require.NoError(t, app.browser.Open(context.Background(), app.config.Request))

	return app, loader
}

func TestBrowserMountsFirstPage(t *testing.T) {
	app, loader := newTestBrowser(t)
	b := app.browser

	require.Len(t, loader.requests, 1)
	require.Len(t, b.session.visible, 2)
	require.Equal(t, "page 1/2 · 4 listings · map", b.Summary())
	require.Equal(t, " Map (2) ", b.mapView.GetTitle())
}

func TestBrowserPaging(t *testing.T) {
	app, loader := newTestBrowser(t)
	b := app.browser

	b.next()
	require.Len(t, loader.requests, 2)
	require.Equal(t, "2", loader.last().Get(pagination.ParamPage))
	require.Equal(t, "c", b.session.visible[0].ID)

	b.next()
	require.Len(t, loader.requests, 2, "no navigation past the last page")

	b.prev()
	require.Equal(t, "1", loader.last().Get(pagination.ParamPage))
}

func TestBrowserSearchStaysOnPage(t *testing.T) {
	app, loader := newTestBrowser(t)
	b := app.browser

	b.selectAt(1)
	b.search("austin")

	require.Len(t, loader.requests, 1)
	require.Len(t, b.session.visible, 1)
	_, _, ok := b.session.selected()
	require.False(t, ok)
}

func TestBrowserSubmitCarriesStateAndMode(t *testing.T) {
	app, loader := newTestBrowser(t)
	b := app.browser

	b.setMode(view.ModeList)
	b.search("austin")
	b.session.state.SetPropertyType([]string{"Office", "Retail"})
	b.submit()

	req := loader.last()
	require.Equal(t, nav.ListingsPath, req.Path)
	require.Equal(t, url.Values{
		"search":        {"austin"},
		"property_type": {"Office", "Retail"},
		"page":          {"1"},
		"per_page":      {"2"},
		view.Param:      {"list"},
	}, req.Params)

	require.Equal(t, view.ModeList, b.session.selector.Mode(), "mode survives the reload")
	require.Equal(t, []string{"Office", "Retail"}, b.session.state.PropertyType())
}

func TestBrowserClear(t *testing.T) {
	app, loader := newTestBrowser(t)
	b := app.browser

	b.search("denver")
	b.clear()

	require.Empty(t, loader.last().Params)
	require.Empty(t, b.session.state.Search())
	require.Len(t, b.session.visible, 2)
}

func TestBrowserClearInListMode(t *testing.T) {
	app, loader := newTestBrowser(t)
	b := app.browser

	b.setMode(view.ModeList)
	b.session.state.SetPropertyType([]string{"Office"})
	b.search("austin")
	b.clear()

	require.Equal(t, url.Values{view.Param: {"list"}}, loader.last().Params)
	require.Equal(t, view.ModeList, b.session.selector.Mode())
	require.Empty(t, b.session.state.PropertyType())
	require.Empty(t, b.session.state.Search())
}

func TestBrowserLiveModeWinsOverLinkMode(t *testing.T) {
	app, loader := openTestBrowser(t, nav.NewRequest(url.Values{view.Param: {"list"}}))
	b := app.browser

	require.Equal(t, view.ModeList, b.session.selector.Mode())
	require.Contains(t, b.session.page.Pagination.NextPageURL, "view=list")

	b.setMode(view.ModeMap)
	b.next()

	req := loader.last()
	require.Equal(t, "2", req.Get(pagination.ParamPage))
	require.Empty(t, req.Get(view.Param))
	require.Equal(t, view.ModeMap, b.session.selector.Mode())

	b.setMode(view.ModeList)
	b.prev()
	require.Equal(t, "list", loader.last().Get(view.Param))
	require.Equal(t, view.ModeList, b.session.selector.Mode())
}

func TestBrowserDropdownKeys(t *testing.T) {
	app, _ := newTestBrowser(t)
	b := app.browser

	_, open := b.group.Open()
	require.False(t, open)

	require.Nil(t, b.actions.Handle(tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone)))
	d, open := b.group.Open()
	require.True(t, open)
	require.Equal(t, string(filter.FieldPropertyType), d.Name())
	require.Equal(t, 1, app.pointer.Subscribers())

	evt := tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone)
	require.Same(t, evt, b.actions.Handle(evt), "bindings are inactive while a dropdown is open")

	require.Nil(t, b.actions.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	_, open = b.group.Open()
	require.False(t, open)
}

func TestAppStopUnmountsDropdowns(t *testing.T) {
	app, _ := newTestBrowser(t)
	b := app.browser

	b.filters.Toggle(filter.FieldSortBy)
	require.Equal(t, 1, app.pointer.Subscribers())

	app.Stop()

	require.Zero(t, app.pointer.Subscribers())
	_, open := b.group.Open()
	require.False(t, open)
}

func TestBrowserNavigateError(t *testing.T) {
	app, loader := newTestBrowser(t)
	b := app.browser
	before := b.session

	loader.err = errors.New("database is locked")

	err := b.Navigate(context.Background(), nav.NewRequest(url.Values{"page": {"2"}}))
	require.ErrorContains(t, err, "database is locked")
	require.Same(t, before, b.session, "failed loads keep the current page")
}
