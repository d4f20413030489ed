package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

const helpName = "Help"

// HelpView lists the key bindings of the browser.
type HelpView struct {
	*BaseComponent
	app      *App
	textView *tview.TextView
}

// NewHelpView creates the help page.
func NewHelpView(app *App) *HelpView {
	v := &HelpView{
		BaseComponent: NewBaseComponent(helpName),
		app:           app,
		textView:      tview.NewTextView().SetDynamicColors(true).SetScrollable(true),
	}

	v.textView.SetBorder(true).
		SetTitle(" Keyboard Shortcuts ").
		SetBorderColor(app.styles.BorderColor).
		SetBackgroundColor(app.styles.BgColor)

	v.textView.SetText(v.render())

	return v
}

// Primitive returns the help text.
func (v *HelpView) Primitive() tview.Primitive {
	return v.textView
}

func (v *HelpView) render() string {
	var sb strings.Builder

	sb.WriteString("[aqua::b]plaza - Keyboard Shortcuts[-::-]\n\n")

	section := func(title string, entries []HelpEntry) {
		fmt.Fprintf(&sb, "[yellow]%s[-]\n", title)
		for _, e := range entries {
			fmt.Fprintf(&sb, "  [white]%-10s[-] %s\n", tview.Escape(e.Key), e.Description)
		}
		sb.WriteString("\n")
	}

	section("Global", v.app.globalKeys.Entries())
	section("Listings", v.app.browser.Actions().Entries())
	section("Map", []HelpEntry{
		{Key: "←/→ j/k", Description: "Select previous / next marker"},
		{Key: "Click", Description: "Select the marker under the pointer"},
	})
	section("Filter bar", []HelpEntry{
		{Key: "Tab", Description: "Next control"},
		{Key: "Enter", Description: "Open dropdown / toggle option"},
		{Key: "Esc", Description: "Close dropdown / back to listings"},
		{Key: "Done", Description: "Close a multi-select dropdown"},
	})

	sb.WriteString("[gray]Filter changes apply to the next page load. Search narrows the current page as you type.\n")
	sb.WriteString("Press Esc to close this help screen[-]\n")

	return sb.String()
}

// Start focuses the text so it scrolls with the arrow keys.
func (v *HelpView) Start(context.Context) {
	v.app.SetFocus(v.textView)
}
