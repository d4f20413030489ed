package tui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/kedare/plaza/internal/filter"
	"github.com/kedare/plaza/internal/pagination"
	"github.com/kedare/plaza/internal/widget"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

// perPageField names the page-size dropdown; it is not a filter field.
const perPageField filter.Field = pagination.ParamPerPage

// pageSizeCatalog lists the page sizes as dropdown options.
func pageSizeCatalog() filter.Catalog {
	options := make([]filter.Option, len(pagination.PageSizes))
	for i, n := range pagination.PageSizes {
		options[i] = filter.Option{Value: strconv.Itoa(n), Label: strconv.Itoa(n) + " / page"}
	}

	return filter.Catalog{
		Field:       perPageField,
		Title:       "Per Page",
		Placeholder: "Per Page",
		Options:     options,
	}
}

// PaginationBar renders the link list of the current page descriptor.
type PaginationBar struct {
	Flex     *tview.Flex
	styles   *Styles
	summary  *tview.TextView
	size     *tview.Button
	popup    *tview.List
	clear    *tview.Button
	dropdown *widget.Dropdown
	selector *widget.SingleSelect
	host     overlayHost

	descriptor pagination.Descriptor
	onLink     func(link pagination.Link)
}

// PaginationBarConfig wires the bar to the browser.
type PaginationBarConfig struct {
	Host    overlayHost
	Styles  *Styles
	Pointer *widget.PointerSource
	Group   *widget.Group
	// OnLink runs when an enabled link (page, previous or next) is activated.
	OnLink func(link pagination.Link)
	// OnPageSize runs when a page size is chosen.
	OnPageSize func(size int)
	// OnClear runs when Clear is activated.
	OnClear func()
}

// NewPaginationBar creates an empty bar.
func NewPaginationBar(cfg PaginationBarConfig) *PaginationBar {
	pb := &PaginationBar{
		Flex:    tview.NewFlex(),
		styles:  cfg.Styles,
		summary: tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignRight),
		size:    tview.NewButton("Per Page ▾"),
		popup:   tview.NewList(),
		clear:   tview.NewButton("Clear"),
		host:    cfg.Host,
		onLink:  cfg.OnLink,
	}

	controlStyle := tcell.StyleDefault.Foreground(cfg.Styles.ControlFg).Background(cfg.Styles.ControlBg)
	activeStyle := tcell.StyleDefault.Foreground(cfg.Styles.ControlFg).Background(cfg.Styles.ControlActiveBg)

	pb.size.SetStyle(controlStyle).SetActivatedStyle(activeStyle)
	pb.clear.SetStyle(controlStyle).SetActivatedStyle(activeStyle)
	pb.clear.SetSelectedFunc(cfg.OnClear)

	catalog := pageSizeCatalog()

	pb.popup.ShowSecondaryText(false).SetUseStyleTags(false, false).SetHighlightFullLine(true)
	pb.popup.SetBorder(true).SetTitle(" " + catalog.Title + " ").SetBorderColor(cfg.Styles.ControlActiveBg)

	pb.dropdown = widget.NewDropdown(string(perPageField), cfg.Pointer, pb.bounds)
	pb.dropdown.OnChange(pb.openChanged)
	cfg.Group.Add(pb.dropdown)

	pb.selector = widget.NewSingleSelect(pb.dropdown, catalog, func(v string) {
		n, err := strconv.Atoi(v)
		if err == nil && cfg.OnPageSize != nil {
			cfg.OnPageSize(n)
		}
	})

	for _, o := range catalog.Options {
		value := o.Value
		pb.popup.AddItem(o.Label, "", 0, func() { pb.selector.Select(value) })
	}

	pb.popup.SetDoneFunc(pb.dropdown.Close)
	pb.size.SetSelectedFunc(pb.dropdown.Toggle)

	return pb
}

// Update rebuilds the link buttons from d.
func (pb *PaginationBar) Update(d pagination.Descriptor) {
	pb.descriptor = d
	pb.size.SetLabel(fmt.Sprintf("%d / page ▾", d.PerPage))

	if d.Total == 0 {
		pb.summary.SetText("No listings ")
	} else {
		pb.summary.SetText(fmt.Sprintf("%d-%d of %d ", d.From, d.To, d.Total))
	}

	pb.Flex.Clear()

	if len(d.Links) > 0 {
		pb.addLink(d.Links[0])
	}

	for _, link := range d.PageLinks() {
		pb.addLink(link)
	}

	if len(d.Links) > 1 {
		pb.addLink(d.Links[len(d.Links)-1])
	}

	pb.Flex.AddItem(pb.summary, 0, 1, false).
		AddItem(pb.size, 14, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(pb.clear, 7, 0, false)
}

// linkButton styles one link. Placeholders are disabled; the active page is
// highlighted.
func (pb *PaginationBar) linkButton(link pagination.Link) *tview.Button {
	b := tview.NewButton(link.Label)

	base := tcell.StyleDefault.Background(pb.styles.BgColor)
	switch {
	case link.Active:
		b.SetStyle(base.Foreground(pb.styles.LinkActiveFg).Background(pb.styles.LinkActiveBg))
	case link.Enabled():
		b.SetStyle(base.Foreground(pb.styles.LinkFg))
	}

	b.SetDisabledStyle(base.Foreground(pb.styles.DisabledFg))
	b.SetActivatedStyle(base.Foreground(pb.styles.LinkActiveFg).Background(pb.styles.ControlActiveBg))
	b.SetDisabled(!link.Enabled())

	b.SetSelectedFunc(func() {
		if pb.onLink != nil {
			pb.onLink(link)
		}
	})

	return b
}

func (pb *PaginationBar) addLink(link pagination.Link) {
	pb.Flex.AddItem(pb.linkButton(link), runewidth.StringWidth(link.Label)+2, 0, false)
}

// TogglePageSize opens or closes the page-size dropdown.
func (pb *PaginationBar) TogglePageSize() {
	pb.dropdown.Toggle()
}

func (pb *PaginationBar) bounds() widget.Rect {
	x, y, w, h := pb.size.GetRect()
	r := widget.Rect{X: x, Y: y, Width: w, Height: h}

	if pb.dropdown.IsOpen() {
		px, py, pw, ph := pb.popup.GetRect()
		r = r.Union(widget.Rect{X: px, Y: py, Width: pw, Height: ph})
	}

	return r
}

func (pb *PaginationBar) openChanged(open bool) {
	name := overlayPrefix + pb.dropdown.Name()

	if !open {
		pb.host.HideOverlay(name)
		pb.host.SetFocus(pb.size)

		return
	}

	current := strconv.Itoa(pb.descriptor.PerPage)
	for i, n := range pagination.PageSizes {
		label := strconv.Itoa(n) + " / page"
		pb.popup.SetItemText(i, radio(strconv.Itoa(n) == current, label), "")
	}

	// The bar sits at the bottom, so the popup opens upwards.
	x, y, w, _ := pb.size.GetRect()
	height := pb.popup.GetItemCount() + 2
	pb.host.ShowOverlay(name, pb.popup, widget.Rect{X: x, Y: y - height, Width: max(w, 16), Height: height})
	pb.host.SetFocus(pb.popup)
}
