package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kedare/plaza/internal/filter"
	"github.com/kedare/plaza/internal/logger"
	"github.com/kedare/plaza/internal/widget"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

const (
	overlayPrefix  = "dropdown:"
	popupMaxHeight = 16
	doneLabel      = "Done"
	anyLabel       = "Any"
)

// overlayHost shows dropdown popups above the page.
type overlayHost interface {
	ShowOverlay(name string, p tview.Primitive, rect widget.Rect)
	HideOverlay(name string)
	SetFocus(p tview.Primitive) *tview.Application
}

// filterControl is one dropdown of the filter bar: a button showing the
// summary label and a popup list of options.
type filterControl struct {
	catalog  filter.Catalog
	button   *tview.Button
	popup    *tview.List
	dropdown *widget.Dropdown
	multi    *widget.MultiSelect
	single   *widget.SingleSelect
	host     overlayHost
	state    func() *filter.State
}

func newFilterControl(host overlayHost, styles *Styles, source *widget.PointerSource, catalog filter.Catalog,
	style widget.LabelStyle, state func() *filter.State, changed func(),
) *filterControl {
	c := &filterControl{
		catalog: catalog,
		button:  tview.NewButton(catalog.Placeholder),
		popup:   tview.NewList(),
		host:    host,
		state:   state,
	}

	c.button.SetStyle(tcell.StyleDefault.Foreground(styles.ControlFg).Background(styles.ControlBg))
	c.button.SetActivatedStyle(tcell.StyleDefault.Foreground(styles.ControlFg).Background(styles.ControlActiveBg))

	c.popup.ShowSecondaryText(false).
		SetUseStyleTags(false, false).
		SetHighlightFullLine(true).
		SetWrapAround(true)
	c.popup.SetBorder(true).
		SetTitle(" " + catalog.Title + " ").
		SetBorderColor(styles.ControlActiveBg).
		SetBackgroundColor(styles.BgColor)

	c.dropdown = widget.NewDropdown(string(catalog.Field), source, c.bounds)
	c.dropdown.OnChange(c.openChanged)

	if catalog.Multi {
		c.multi = widget.NewMultiSelect(c.dropdown, catalog, style, func(next []string) {
			c.state().SetMulti(catalog.Field, next)
			c.refresh()
			changed()
		})

		for _, o := range catalog.Options {
			value := o.Value
			c.popup.AddItem(o.Label, "", 0, func() {
				c.multi.Toggle(c.state().Multi(catalog.Field), value)
			})
		}

		c.popup.AddItem(doneLabel, "", 0, c.dropdown.Commit)
	} else {
		c.single = widget.NewSingleSelect(c.dropdown, catalog, func(v string) {
			c.state().SetSingle(catalog.Field, v)
			c.refresh()
			changed()
		})

		c.popup.AddItem(anyLabel, "", 0, func() { c.single.Select("") })

		for _, o := range catalog.Options {
			value := o.Value
			c.popup.AddItem(o.Label, "", 0, func() { c.single.Select(value) })
		}
	}

	c.popup.SetDoneFunc(c.dropdown.Close)
	c.button.SetSelectedFunc(c.dropdown.Toggle)

	return c
}

// label is the closed-control summary with a dropdown arrow.
func (c *filterControl) label() string {
	if c.multi != nil {
		return c.multi.Label(c.state().Multi(c.catalog.Field)) + " ▾"
	}

	return c.single.Label(c.state().Single(c.catalog.Field)) + " ▾"
}

// refresh re-renders the button label and the popup check marks.
func (c *filterControl) refresh() {
	c.button.SetLabel(c.label())

	if c.multi != nil {
		current := c.state().Multi(c.catalog.Field)
		for i, o := range c.catalog.Options {
			c.popup.SetItemText(i, checkbox(c.multi.IsSelected(current, o.Value), o.Label), "")
		}

		return
	}

	current := c.state().Single(c.catalog.Field)
	c.popup.SetItemText(0, radio(current == "", anyLabel), "")

	for i, o := range c.catalog.Options {
		c.popup.SetItemText(i+1, radio(current == o.Value, o.Label), "")
	}
}

// width is the natural width of the button.
func (c *filterControl) width() int {
	return runewidth.StringWidth(c.label()) + 2
}

func (c *filterControl) bounds() widget.Rect {
	x, y, w, h := c.button.GetRect()
	r := widget.Rect{X: x, Y: y, Width: w, Height: h}

	if c.dropdown.IsOpen() {
		px, py, pw, ph := c.popup.GetRect()
		r = r.Union(widget.Rect{X: px, Y: py, Width: pw, Height: ph})
	}

	return r
}

func (c *filterControl) popupRect() widget.Rect {
	x, y, w, h := c.button.GetRect()

	width := w
	for _, o := range c.catalog.Options {
		width = max(width, runewidth.StringWidth(o.Label)+8)
	}

	return widget.Rect{
		X:      x,
		Y:      y + h,
		Width:  width,
		Height: min(c.popup.GetItemCount()+2, popupMaxHeight),
	}
}

func (c *filterControl) openChanged(open bool) {
	name := overlayPrefix + c.dropdown.Name()

	if open {
		logger.Log.Tracef("Opening %s dropdown", c.catalog.Title)
		c.refresh()
		c.host.ShowOverlay(name, c.popup, c.popupRect())
		c.host.SetFocus(c.popup)

		return
	}

	c.host.HideOverlay(name)
	c.host.SetFocus(c.button)
}

// FilterBar is the search field row above the row of filter dropdowns.
type FilterBar struct {
	Flex     *tview.Flex
	search   *tview.InputField
	apply    *tview.Button
	controls []*filterControl
	group    *widget.Group
	host     overlayHost
	focus    []tview.Primitive
	onLeave  func()
}

// FilterBarConfig wires the bar to the browser.
type FilterBarConfig struct {
	Host    overlayHost
	Styles  *Styles
	Pointer *widget.PointerSource
	Group   *widget.Group
	// State returns the filter state of the displayed page.
	State func() *filter.State
	// OnSearch runs on every keystroke in the search field.
	OnSearch func(term string)
	// OnChange runs after any dropdown changes the state.
	OnChange func()
	// OnApply submits the state as a navigation.
	OnApply func()
	// OnLeave returns focus to the content.
	OnLeave func()
}

// NewFilterBar builds the search field and one control per catalog.
func NewFilterBar(cfg FilterBarConfig) *FilterBar {
	fb := &FilterBar{
		Flex:    tview.NewFlex(),
		search:  tview.NewInputField(),
		apply:   tview.NewButton("Apply"),
		group:   cfg.Group,
		host:    cfg.Host,
		onLeave: cfg.OnLeave,
	}

	fb.search.SetLabel(" / ").
		SetPlaceholder("Search address, city, state or name").
		SetFieldWidth(0).
		SetChangedFunc(cfg.OnSearch)
	fb.search.SetLabelColor(cfg.Styles.TitleFg)

	fb.apply.SetStyle(tcell.StyleDefault.Foreground(cfg.Styles.LinkActiveFg).Background(cfg.Styles.LinkActiveBg))
	fb.apply.SetSelectedFunc(cfg.OnApply)

	changed := cfg.OnChange
	if changed == nil {
		changed = func() {}
	}

	fb.focus = append(fb.focus, fb.search)

	for _, catalog := range filter.Catalogs() {
		style := widget.LabelCount
		if catalog.Field == filter.FieldPropertyType {
			style = widget.LabelOverflow
		}

		c := newFilterControl(cfg.Host, cfg.Styles, cfg.Pointer, catalog, style, cfg.State, changed)
		fb.group.Add(c.dropdown)
		fb.controls = append(fb.controls, c)
		fb.focus = append(fb.focus, c.button)
	}

	fb.focus = append(fb.focus, fb.apply)

	fb.search.SetDoneFunc(func(key tcell.Key) {
		fb.leave(fb.search, key)
	})

	for _, c := range fb.controls {
		button := c.button
		button.SetExitFunc(func(key tcell.Key) {
			fb.leave(button, key)
		})
	}

	fb.apply.SetExitFunc(func(key tcell.Key) {
		fb.leave(fb.apply, key)
	})

	fb.layout()

	return fb
}

// Refresh re-reads the state into every control.
func (fb *FilterBar) Refresh(search string) {
	if fb.search.GetText() != search {
		fb.search.SetText(search)
	}

	for _, c := range fb.controls {
		c.refresh()
	}

	fb.layout()
}

// FocusSearch moves the cursor to the search field.
func (fb *FilterBar) FocusSearch() {
	fb.group.CloseAll()
	fb.host.SetFocus(fb.search)
}

// FocusControls moves focus to the first dropdown.
func (fb *FilterBar) FocusControls() {
	if len(fb.controls) > 0 {
		fb.host.SetFocus(fb.controls[0].button)
	}
}

// Toggle opens or closes the dropdown of field.
func (fb *FilterBar) Toggle(field filter.Field) {
	for _, c := range fb.controls {
		if c.catalog.Field == field {
			c.dropdown.Toggle()
			return
		}
	}
}

// HasFocus reports whether focus is inside the bar or one of its popups.
func (fb *FilterBar) HasFocus() bool {
	if fb.Flex.HasFocus() {
		return true
	}

	for _, c := range fb.controls {
		if c.popup.HasFocus() {
			return true
		}
	}

	return false
}

func (fb *FilterBar) layout() {
	top := tview.NewFlex().
		AddItem(fb.search, 0, 1, true).
		AddItem(nil, 1, 0, false).
		AddItem(fb.apply, 9, 0, false)

	controls := tview.NewFlex()
	for _, c := range fb.controls {
		controls.AddItem(c.button, c.width(), 0, false)
		controls.AddItem(nil, 1, 0, false)
	}

	fb.Flex.Clear()
	fb.Flex.SetDirection(tview.FlexRow).
		AddItem(top, 1, 0, true).
		AddItem(controls, 1, 0, false)
}

// leave handles Tab/Backtab cycling and Enter/Esc exits.
func (fb *FilterBar) leave(from tview.Primitive, key tcell.Key) {
	switch key {
	case tcell.KeyTab:
		fb.host.SetFocus(fb.next(from, 1))
	case tcell.KeyBacktab:
		fb.host.SetFocus(fb.next(from, -1))
	default:
		if fb.onLeave != nil {
			fb.onLeave()
		}
	}
}

func (fb *FilterBar) next(from tview.Primitive, delta int) tview.Primitive {
	n := len(fb.focus)
	for i, p := range fb.focus {
		if p == from {
			return fb.focus[((i+delta)%n+n)%n]
		}
	}

	return fb.focus[0]
}
