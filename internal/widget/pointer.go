// Package widget implements the terminal-independent behavior of the filter
// bar controls: dropdown open/closed state, outside-click detection and the
// selection rules of single and multi-select dropdowns.
package widget

import (
	"sort"
	"sync"
)

// PointerEvent is a click at screen cell (X, Y).
type PointerEvent struct {
	X, Y int
}

// Rect is a screen region.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the event falls inside the rectangle.
func (r Rect) Contains(ev PointerEvent) bool {
	return ev.X >= r.X && ev.X < r.X+r.Width && ev.Y >= r.Y && ev.Y < r.Y+r.Height
}

// Union returns the smallest rectangle covering both r and o. Empty
// rectangles are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Width <= 0 || r.Height <= 0 {
		return o
	}

	if o.Width <= 0 || o.Height <= 0 {
		return r
	}

	x1, y1 := min(r.X, o.X), min(r.Y, o.Y)
	x2, y2 := max(r.X+r.Width, o.X+o.Width), max(r.Y+r.Height, o.Y+o.Height)

	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// PointerSource fans pointer events out to subscribers. It is the only way a
// dropdown learns about clicks outside itself.
type PointerSource struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(PointerEvent)
}

// NewPointerSource creates an empty source.
func NewPointerSource() *PointerSource {
	return &PointerSource{subs: make(map[int]func(PointerEvent))}
}

// Subscribe registers fn and returns the function that removes it. Calling the
// returned function more than once is harmless.
func (p *PointerSource) Subscribe(fn func(PointerEvent)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.subs[id] = fn

	var once sync.Once

	return func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			delete(p.subs, id)
		})
	}
}

// Publish delivers ev to every current subscriber in subscription order.
// Subscribers may unsubscribe while being notified.
func (p *PointerSource) Publish(ev PointerEvent) {
	p.mu.Lock()
	ids := make([]int, 0, len(p.subs))
	for id := range p.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	handlers := make([]func(PointerEvent), 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, p.subs[id])
	}
	p.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

// Subscribers returns the number of live subscriptions.
func (p *PointerSource) Subscribers() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.subs)
}
