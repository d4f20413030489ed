package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/kedare/plaza/internal/listing"
	"github.com/rivo/tview"
)

const (
	markerRune         = '●'
	selectedMarkerRune = '◉'
	// clickRadius is how far (in cells) a click may land from a marker.
	clickRadius = 1
)

// marker is a listing projected onto the map area. Index points into the
// collection that was projected; X and Y are relative to the area origin.
type marker struct {
	Index int
	X, Y  int
}

// projectMarkers places every record with coordinates on a width×height grid.
// Latitude grows upwards. A single point, or points sharing one axis value,
// land in the middle of that axis.
func projectMarkers(records []listing.Record, width, height int) []marker {
	if width <= 0 || height <= 0 {
		return nil
	}

	minLat, maxLat := math.Inf(1), math.Inf(-1)
	minLng, maxLng := math.Inf(1), math.Inf(-1)
	found := false

	for _, r := range records {
		if !r.HasCoordinates() {
			continue
		}

		c := r.Coordinates
		minLat, maxLat = math.Min(minLat, c.Lat), math.Max(maxLat, c.Lat)
		minLng, maxLng = math.Min(minLng, c.Lng), math.Max(maxLng, c.Lng)
		found = true
	}

	if !found {
		return nil
	}

	scale := func(v, lo, hi float64, cells int) int {
		if hi-lo == 0 || cells == 1 {
			return (cells - 1) / 2
		}

		return int(math.Round((v - lo) / (hi - lo) * float64(cells-1)))
	}

	markers := make([]marker, 0, len(records))
	for i, r := range records {
		if !r.HasCoordinates() {
			continue
		}

		markers = append(markers, marker{
			Index: i,
			X:     scale(r.Coordinates.Lng, minLng, maxLng, width),
			Y:     height - 1 - scale(r.Coordinates.Lat, minLat, maxLat, height),
		})
	}

	return markers
}

// nearestMarker returns the marker closest to (x, y) within radius cells,
// preferring the last drawn one on ties.
func nearestMarker(markers []marker, x, y, radius int) (marker, bool) {
	best, bestDist := marker{}, -1

	for _, m := range markers {
		dx, dy := abs(m.X-x), abs(m.Y-y)
		if dx > radius || dy > radius {
			continue
		}

		if d := dx*dx + dy*dy; bestDist < 0 || d <= bestDist {
			best, bestDist = m, d
		}
	}

	return best, bestDist >= 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// MapView plots the visible listings as markers on a character grid.
type MapView struct {
	*tview.Box
	styles   *Styles
	records  []listing.Record
	selected int
	markers  []marker

	onSelect func(idx int)
	onStep   func(delta int)
}

// NewMapView creates an empty map.
func NewMapView(styles *Styles) *MapView {
	m := &MapView{
		Box:      tview.NewBox(),
		styles:   styles,
		selected: -1,
	}

	m.SetBorder(true).
		SetBorderColor(styles.BorderColor).
		SetTitleColor(styles.TitleFg).
		SetBackgroundColor(styles.BgColor)

	return m
}

// SetRecords replaces the plotted collection and the selected index (-1 for
// none).
func (m *MapView) SetRecords(records []listing.Record, selected int) {
	m.records = records
	m.selected = selected

	plotted := 0
	for _, r := range records {
		if r.HasCoordinates() {
			plotted++
		}
	}

	if unmapped := len(records) - plotted; unmapped > 0 {
		m.SetTitle(fmt.Sprintf(" Map (%d plotted, %d without coordinates) ", plotted, unmapped))
	} else {
		m.SetTitle(fmt.Sprintf(" Map (%d) ", plotted))
	}
}

// SetSelectFunc sets the handler for marker activation.
func (m *MapView) SetSelectFunc(fn func(idx int)) *MapView {
	m.onSelect = fn
	return m
}

// SetStepFunc sets the handler for moving between markers with the keyboard.
func (m *MapView) SetStepFunc(fn func(delta int)) *MapView {
	m.onStep = fn
	return m
}

// Draw renders the markers.
func (m *MapView) Draw(screen tcell.Screen) {
	m.DrawForSubclass(screen, m)

	x, y, width, height := m.GetInnerRect()
	m.markers = projectMarkers(m.records, width, height)

	if len(m.markers) == 0 {
		tview.Print(screen, "No listings with coordinates on this page", x, y+height/2, width, tview.AlignCenter, m.styles.CrumbFg)
		return
	}

	plain := tcell.StyleDefault.Foreground(m.styles.MarkerFg).Background(m.styles.BgColor)
	var sel *marker

	for i := range m.markers {
		mk := m.markers[i]
		if mk.Index == m.selected {
			sel = &m.markers[i]
			continue
		}

		screen.SetContent(x+mk.X, y+mk.Y, markerRune, nil, plain)
	}

	if sel == nil {
		return
	}

	highlight := tcell.StyleDefault.Foreground(m.styles.MarkerSelectedFg).Background(m.styles.MarkerSelectedBg)
	screen.SetContent(x+sel.X, y+sel.Y, selectedMarkerRune, nil, highlight)

	name := tview.Escape(m.records[sel.Index].Name)
	if sel.X > width/2 {
		tview.Print(screen, name+" ", x, y+sel.Y, sel.X, tview.AlignRight, m.styles.MarkerFocusFg)
		return
	}

	tview.Print(screen, " "+name, x+sel.X+1, y+sel.Y, width-sel.X-1, tview.AlignLeft, m.styles.MarkerFocusFg)
}

// InputHandler moves between markers with the arrow keys.
func (m *MapView) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return m.WrapInputHandler(func(event *tcell.EventKey, _ func(p tview.Primitive)) {
		if m.onStep == nil {
			return
		}

		switch event.Key() {
		case tcell.KeyRight, tcell.KeyDown, tcell.KeyTab:
			m.onStep(1)
		case tcell.KeyLeft, tcell.KeyUp, tcell.KeyBacktab:
			m.onStep(-1)
		case tcell.KeyRune:
			switch event.Rune() {
			case 'j':
				m.onStep(1)
			case 'k':
				m.onStep(-1)
			}
		}
	})
}

// MouseHandler activates the marker under the pointer.
func (m *MapView) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (bool, tview.Primitive) {
	return m.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (bool, tview.Primitive) {
		px, py := event.Position()
		if !m.InRect(px, py) {
			return false, nil
		}

		if action == tview.MouseLeftDown {
			setFocus(m)
			return true, nil
		}

		if action != tview.MouseLeftClick {
			return false, nil
		}

		x, y, _, _ := m.GetInnerRect()
		if mk, ok := nearestMarker(m.markers, px-x, py-y, clickRadius); ok && m.onSelect != nil {
			m.onSelect(mk.Index)
		}

		return true, nil
	})
}
