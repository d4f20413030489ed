package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kedare/plaza/internal/filter"
	"github.com/kedare/plaza/internal/listing"
	"github.com/kedare/plaza/internal/logger"
	"github.com/kedare/plaza/internal/nav"
	"github.com/kedare/plaza/internal/output"
	"github.com/kedare/plaza/internal/pagination"
	"github.com/kedare/plaza/internal/store"
	"github.com/kedare/plaza/internal/view"
	"github.com/kedare/plaza/internal/widget"
	"github.com/rivo/tview"
)

const (
	pageMap  = "map"
	pageList = "list"
)

// BrowserView is the listings page: filter bar, map or list, details and
// pagination. It is also the navigator every control navigates through; each
// navigation loads a page and replaces the session.
type BrowserView struct {
	*BaseComponent
	app     *App
	loader  PageLoader
	adapter *pagination.Adapter
	group   *widget.Group
	session *session
	ctx     context.Context

	layout  *tview.Flex
	filters *FilterBar
	content *tview.Pages
	mapView *MapView
	list    *ListView
	detail  *tview.TextView
	pager   *PaginationBar
}

// NewBrowserView wires the page to app and loader.
func NewBrowserView(app *App, loader PageLoader) *BrowserView {
	b := &BrowserView{
		BaseComponent: NewBaseComponent("Listings"),
		app:           app,
		loader:        loader,
		group:         widget.NewGroup(),
		session:       newSession(store.Page{Request: nav.NewRequest(nil)}),
		ctx:           context.Background(),
	}

	b.adapter = pagination.NewAdapter(b)

	b.filters = NewFilterBar(FilterBarConfig{
		Host:     app,
		Styles:   app.styles,
		Pointer:  app.pointer,
		Group:    b.group,
		State:    func() *filter.State { return b.session.state },
		OnSearch: b.search,
		OnChange: b.app.updateStatusBar,
		OnApply:  b.submit,
		OnLeave:  b.focusContent,
	})

	b.mapView = NewMapView(app.styles).
		SetSelectFunc(b.selectAt).
		SetStepFunc(b.step)

	b.list = NewListView(app.styles).SetSelectFunc(b.selectAt)

	b.content = tview.NewPages().
		AddPage(pageMap, b.mapView, true, true).
		AddPage(pageList, b.list.Table, true, false)

	b.detail = tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	b.detail.SetBorder(true).
		SetTitle(" Details ").
		SetBorderColor(app.styles.BorderColor).
		SetTitleColor(app.styles.TitleFg)

	b.pager = NewPaginationBar(PaginationBarConfig{
		Host:       app,
		Styles:     app.styles,
		Pointer:    app.pointer,
		Group:      b.group,
		OnLink:     b.follow,
		OnPageSize: b.setPageSize,
		OnClear:    b.clear,
	})

	body := tview.NewFlex().
		AddItem(b.content, 0, 3, true).
		AddItem(b.detail, 0, 1, false)

	b.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.filters.Flex, 2, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(b.pager.Flex, 1, 0, false)

	b.setupActions()

	return b
}

func (b *BrowserView) setupActions() {
	b.actions.Add(Rune('/'), KeyAction{Description: "Search", Action: b.key(b.filters.FocusSearch), Visible: true})
	b.actions.Add(Rune('f'), KeyAction{Description: "Filters", Action: b.key(b.filters.FocusControls), Visible: true})
	b.actions.Add(Rune('v'), KeyAction{Description: "Map/List", Action: b.key(b.toggleMode), Visible: true})
	b.actions.Add(Rune('m'), KeyAction{Description: "Map view", Action: b.key(func() { b.setMode(view.ModeMap) })})
	b.actions.Add(Rune('l'), KeyAction{Description: "List view", Action: b.key(func() { b.setMode(view.ModeList) })})
	b.actions.Add(Rune('['), KeyAction{Description: "Previous page", Action: b.key(b.prev), Visible: true})
	b.actions.Add(Rune(']'), KeyAction{Description: "Next page", Action: b.key(b.next), Visible: true})
	b.actions.Add(Rune('p'), KeyAction{Description: "Page size", Action: b.key(b.pager.TogglePageSize)})
	b.actions.Add(Rune('a'), KeyAction{Description: "Apply filters", Action: b.key(b.submit)})
	b.actions.Add(Rune('c'), KeyAction{Description: "Clear filters", Action: b.key(b.clear), Visible: true})
	b.actions.Add(Key(tcell.KeyEscape), KeyAction{Description: "Close dropdown", Action: b.escape})

	for i, catalog := range filter.Catalogs() {
		field := catalog.Field
		b.actions.Add(Rune(rune('1'+i)), KeyAction{
			Description: "Open " + catalog.Title,
			Action:      b.key(func() { b.filters.Toggle(field) }),
		})
	}
}

// key adapts a plain action to a binding. Bindings are inactive while a
// dropdown is open or the filter bar has focus, so typing reaches the focused
// control.
func (b *BrowserView) key(fn func()) ActionHandler {
	return func(evt *tcell.EventKey) *tcell.EventKey {
		if b.capturing() {
			return evt
		}

		fn()

		return nil
	}
}

func (b *BrowserView) capturing() bool {
	if _, open := b.group.Open(); open {
		return true
	}

	return b.filters.HasFocus()
}

func (b *BrowserView) escape(evt *tcell.EventKey) *tcell.EventKey {
	if d, open := b.group.Open(); open {
		d.Close()
		return nil
	}

	if b.filters.HasFocus() {
		b.focusContent()
		return nil
	}

	if b.session.state.Search() != "" {
		b.filters.Refresh("")
		return nil
	}

	return evt
}

// Primitive returns the page layout.
func (b *BrowserView) Primitive() tview.Primitive {
	return b.layout
}

// Start records the context navigations run under.
func (b *BrowserView) Start(ctx context.Context) {
	b.ctx = ctx
	b.focusContent()
}

// Stop closes any open dropdown.
func (b *BrowserView) Stop() {
	b.group.CloseAll()
}

// Unmount detaches every dropdown from the pointer source for good.
func (b *BrowserView) Unmount() {
	b.group.UnmountAll()
}

// Navigate loads the requested page and replaces the session. The live view
// mode overrides whatever mode the request carries.
func (b *BrowserView) Navigate(ctx context.Context, req nav.Request) error {
	return b.Open(ctx, withMode(req, b.session.selector.Mode()))
}

// Open loads req as given, including its view mode. It is the first load of
// the browser.
func (b *BrowserView) Open(ctx context.Context, req nav.Request) error {
	logger.Log.Debugf("Loading %s", req.URL())

	page, err := b.loader.Page(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to load listings page: %w", err)
	}

	b.mount(page)

	return nil
}

// mount discards the previous session and renders page.
func (b *BrowserView) mount(page store.Page) {
	b.group.CloseAll()
	b.session = newSession(page)

	b.filters.Refresh(b.session.state.Search())
	b.pager.Update(page.Pagination)
	b.showMode()
	b.render()
	b.app.updateStatusBar()
}

// render redraws everything derived from the visible collection.
func (b *BrowserView) render() {
	s := b.session
	_, idx, _ := s.selected()

	b.mapView.SetRecords(s.visible, idx)
	b.list.Update(s.visible, s.state.Search(), idx)
	b.renderDetail()
}

func (b *BrowserView) renderDetail() {
	r, _, ok := b.session.selected()
	if !ok {
		b.detail.SetText(fmt.Sprintf("\n [gray]%d of %d listings on this page.\n\n Select a marker or row to see details.[-]",
			len(b.session.visible), len(b.session.page.Records)))

		return
	}

	b.detail.SetText(describe(r, b.app.styles))
}

// describe renders a listing for the details panel.
func describe(r listing.Record, styles *Styles) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[::b]%s[::-]\n", tview.Escape(r.Name))

	if addr := r.StreetAddress(); addr != "" {
		fmt.Fprintf(&sb, "%s\n", tview.Escape(addr))
	}

	if place := r.Place(); place != "" {
		fmt.Fprintf(&sb, "%s\n", tview.Escape(place))
	}

	sb.WriteString("\n")

	rows := [][2]string{
		{"Type", r.PropertyType},
		{"Secondary", r.SecondaryType},
		{"Size", filter.PropertySizes.LabelFor(r.PropertySize)},
		{"Leased", filter.PercentLeased.LabelFor(r.PercentLeased)},
		{"Location", r.LocationType},
		{"Status", r.ExistingPlus},
	}

	for _, row := range rows {
		if row[1] != "" {
			fmt.Fprintf(&sb, "[gray]%-10s[-] %s\n", row[0], tview.Escape(row[1]))
		}
	}

	if r.Rating != nil {
		fmt.Fprintf(&sb, "[gray]%-10s[-] %s\n", "Rating", Tag(styles.RatingColor(*r.Rating), output.FormatRating(r.Rating)))
	}

	if c := r.Coordinates; c != nil {
		fmt.Fprintf(&sb, "[gray]%-10s[-] %.5f, %.5f\n", "Position", c.Lat, c.Lng)
	}

	fmt.Fprintf(&sb, "\n[gray]id %s[-]", tview.Escape(r.ID))

	return sb.String()
}

func (b *BrowserView) search(term string) {
	if term == b.session.state.Search() {
		return
	}

	b.session.setSearch(term)
	b.render()
}

func (b *BrowserView) selectAt(idx int) {
	if b.session.selectAt(idx) {
		b.render()
	}
}

func (b *BrowserView) step(delta int) {
	if b.session.step(delta) {
		b.render()
	}
}

func (b *BrowserView) toggleMode() {
	b.session.selector.Toggle()
	b.showMode()
}

func (b *BrowserView) setMode(m view.Mode) {
	b.session.selector.SetMode(m)
	b.showMode()
}

func (b *BrowserView) showMode() {
	if b.session.selector.Mode() == view.ModeList {
		b.content.SwitchToPage(pageList)
	} else {
		b.content.SwitchToPage(pageMap)
	}

	b.focusContent()
}

func (b *BrowserView) focusContent() {
	if b.session.selector.Mode() == view.ModeList {
		b.app.SetFocus(b.list.Table)
		return
	}

	b.app.SetFocus(b.mapView)
}

func (b *BrowserView) follow(link pagination.Link) {
	_, err := b.adapter.Activate(b.ctx, link)
	b.report(err)
}

func (b *BrowserView) prev() {
	moved, err := b.adapter.Prev(b.ctx, b.session.page.Pagination)
	b.report(err)

	if err == nil && !moved {
		b.app.Flash("Already on the first page", false)
	}
}

func (b *BrowserView) next() {
	moved, err := b.adapter.Next(b.ctx, b.session.page.Pagination)
	b.report(err)

	if err == nil && !moved {
		b.app.Flash("Already on the last page", false)
	}
}

func (b *BrowserView) setPageSize(size int) {
	b.report(b.adapter.SetPageSize(b.ctx, b.session.state, size))
}

func (b *BrowserView) submit() {
	b.report(b.adapter.Submit(b.ctx, b.session.state, b.session.page.Pagination.PerPage))
}

func (b *BrowserView) clear() {
	b.report(b.adapter.Clear(b.ctx))
}

func (b *BrowserView) report(err error) {
	if err == nil {
		return
	}

	logger.Log.Errorf("%v", err)
	b.app.Flash(err.Error(), true)
}

// Summary is the status bar suffix for the current page.
func (b *BrowserView) Summary() string {
	d := b.session.page.Pagination

	return fmt.Sprintf("page %d/%d · %d listings · %s", d.CurrentPage, d.LastPage, d.Total, b.session.selector.Mode())
}
