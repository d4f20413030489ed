package widget

import "sync"

// Dropdown is the open/closed state machine of one filter control. It starts
// closed. While open it holds a subscription to the pointer source and closes
// itself when a click lands outside Bounds; the subscription is released on
// every transition back to closed, including Unmount.
type Dropdown struct {
	name     string
	source   *PointerSource
	bounds   func() Rect
	group    *Group
	onChange func(open bool)

	open        bool
	unsubscribe func()
}

// NewDropdown creates a closed dropdown. bounds reports the screen region that
// counts as "inside" (control plus popup) at the time of a click.
func NewDropdown(name string, source *PointerSource, bounds func() Rect) *Dropdown {
	return &Dropdown{name: name, source: source, bounds: bounds}
}

// Name identifies the dropdown.
func (d *Dropdown) Name() string {
	return d.name
}

// IsOpen reports the current state.
func (d *Dropdown) IsOpen() bool {
	return d.open
}

// OnChange sets a callback invoked after every state transition.
func (d *Dropdown) OnChange(fn func(open bool)) *Dropdown {
	d.onChange = fn
	return d
}

// Toggle is the control activation: it opens a closed dropdown and closes an
// open one.
func (d *Dropdown) Toggle() {
	if d.open {
		d.Close()
		return
	}

	d.Open()
}

// Open transitions closed → open. It is a no-op when already open.
func (d *Dropdown) Open() {
	if d.open {
		return
	}

	if d.group != nil {
		d.group.opening(d)
	}

	d.open = true
	if d.source != nil {
		d.unsubscribe = d.source.Subscribe(d.handlePointer)
	}

	d.notify()
}

// Close transitions open → closed. It is a no-op when already closed.
func (d *Dropdown) Close() {
	if !d.open {
		return
	}

	d.open = false
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}

	d.notify()
}

// Commit is the "Done" action of the popup.
func (d *Dropdown) Commit() {
	d.Close()
}

// Unmount closes the dropdown and detaches it from its group.
func (d *Dropdown) Unmount() {
	d.Close()

	if d.group != nil {
		d.group.remove(d)
		d.group = nil
	}
}

func (d *Dropdown) handlePointer(ev PointerEvent) {
	if !d.open {
		return
	}

	if d.bounds != nil && d.bounds().Contains(ev) {
		return
	}

	d.Close()
}

func (d *Dropdown) notify() {
	if d.onChange != nil {
		d.onChange(d.open)
	}
}

// Group keeps at most one of its dropdowns open.
type Group struct {
	mu      sync.Mutex
	members []*Dropdown
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{}
}

// Add puts dropdowns into the group.
func (g *Group) Add(dropdowns ...*Dropdown) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, d := range dropdowns {
		d.group = g
		g.members = append(g.members, d)
	}
}

// Open returns the open member, if any.
func (g *Group) Open() (*Dropdown, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, d := range g.members {
		if d.open {
			return d, true
		}
	}

	return nil, false
}

// CloseAll closes every member.
func (g *Group) CloseAll() {
	for _, d := range g.snapshot() {
		d.Close()
	}
}

// UnmountAll unmounts every member.
func (g *Group) UnmountAll() {
	for _, d := range g.snapshot() {
		d.Unmount()
	}
}

func (g *Group) opening(d *Dropdown) {
	for _, other := range g.snapshot() {
		if other != d {
			other.Close()
		}
	}
}

func (g *Group) remove(d *Dropdown) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, m := range g.members {
		if m == d {
			g.members = append(g.members[:i], g.members[i+1:]...)
			return
		}
	}
}

func (g *Group) snapshot() []*Dropdown {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]*Dropdown, len(g.members))
	copy(out, g.members)

	return out
}
