package tui

import (
	"context"
	"sync"

	"github.com/rivo/tview"
)

// PageStack manages the pushed components. Only the top one is visible.
type PageStack struct {
	pages     *tview.Pages
	stack     []Component
	mx        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
	onChanged func(crumbs []string)
}

// NewPageStack creates an empty stack. onChanged receives the crumbs after
// every push and pop.
func NewPageStack(ctx context.Context, onChanged func(crumbs []string)) *PageStack {
	ctx, cancel := context.WithCancel(ctx)

	return &PageStack{
		pages:     tview.NewPages(),
		ctx:       ctx,
		cancel:    cancel,
		onChanged: onChanged,
	}
}

// Pages returns the underlying tview.Pages.
func (ps *PageStack) Pages() *tview.Pages {
	return ps.pages
}

// Push stops the current top and shows component.
func (ps *PageStack) Push(component Component) {
	ps.mx.Lock()

	if n := len(ps.stack); n > 0 {
		ps.stack[n-1].Stop()
	}

	ps.stack = append(ps.stack, component)
	ps.pages.AddAndSwitchToPage(component.Name(), component.Primitive(), true)
	component.Start(ps.ctx)

	crumbs := ps.crumbsLocked()
	ps.mx.Unlock()

	ps.changed(crumbs)
}

// Pop removes the top component and restarts the one below. The root is never
// popped.
func (ps *PageStack) Pop() Component {
	ps.mx.Lock()

	if len(ps.stack) <= 1 {
		ps.mx.Unlock()
		return nil
	}

	top := ps.stack[len(ps.stack)-1]
	ps.stack = ps.stack[:len(ps.stack)-1]

	top.Stop()
	ps.pages.RemovePage(top.Name())

	prev := ps.stack[len(ps.stack)-1]
	ps.pages.SwitchToPage(prev.Name())
	prev.Start(ps.ctx)

	crumbs := ps.crumbsLocked()
	ps.mx.Unlock()

	ps.changed(crumbs)

	return top
}

// Top returns the visible component.
func (ps *PageStack) Top() Component {
	ps.mx.RLock()
	defer ps.mx.RUnlock()

	if len(ps.stack) == 0 {
		return nil
	}

	return ps.stack[len(ps.stack)-1]
}

// Depth returns the number of pushed components.
func (ps *PageStack) Depth() int {
	ps.mx.RLock()
	defer ps.mx.RUnlock()

	return len(ps.stack)
}

// Crumbs returns the component names from the root up.
func (ps *PageStack) Crumbs() []string {
	ps.mx.RLock()
	defer ps.mx.RUnlock()

	return ps.crumbsLocked()
}

// Stop cancels the stack context and stops every component.
func (ps *PageStack) Stop() {
	ps.cancel()

	ps.mx.Lock()
	defer ps.mx.Unlock()

	for i := len(ps.stack) - 1; i >= 0; i-- {
		ps.stack[i].Stop()
		ps.pages.RemovePage(ps.stack[i].Name())
	}

	ps.stack = nil
}

func (ps *PageStack) crumbsLocked() []string {
	crumbs := make([]string, len(ps.stack))
	for i, c := range ps.stack {
		crumbs[i] = c.Name()
	}

	return crumbs
}

func (ps *PageStack) changed(crumbs []string) {
	if ps.onChanged != nil {
		ps.onChanged(crumbs)
	}
}
