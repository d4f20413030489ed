package tui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Component is a page of the TUI managed by the PageStack.
type Component interface {
	// Name identifies the page and appears in the crumbs.
	Name() string

	// Start is called each time the component becomes the top page.
	Start(ctx context.Context)

	// Stop is called when the component is covered or removed.
	Stop()

	// Primitive returns what the page renders.
	Primitive() tview.Primitive

	// Actions returns the page key bindings.
	Actions() *KeyActions

	// HandleKey receives key events no binding consumed.
	HandleKey(event *tcell.EventKey) *tcell.EventKey
}

// BaseComponent implements the lifecycle no-ops.
type BaseComponent struct {
	name    string
	actions *KeyActions
}

// NewBaseComponent creates a base with an empty binding set.
func NewBaseComponent(name string) *BaseComponent {
	return &BaseComponent{name: name, actions: NewKeyActions()}
}

func (b *BaseComponent) Name() string {
	return b.name
}

func (b *BaseComponent) Start(context.Context) {}

func (b *BaseComponent) Stop() {}

func (b *BaseComponent) Actions() *KeyActions {
	return b.actions
}

func (b *BaseComponent) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	return event
}
