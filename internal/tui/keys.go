package tui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// ActionHandler handles a bound key. Returning nil consumes the event.
type ActionHandler func(evt *tcell.EventKey) *tcell.EventKey

// Binding identifies a key: a special key, or KeyRune plus the rune.
type Binding struct {
	Key  tcell.Key
	Rune rune
}

// Key binds a special key such as Enter or Ctrl+C.
func Key(k tcell.Key) Binding {
	return Binding{Key: k}
}

// Rune binds a character key.
func Rune(r rune) Binding {
	return Binding{Key: tcell.KeyRune, Rune: r}
}

// bindingOf maps an event to the binding it would trigger.
func bindingOf(evt *tcell.EventKey) Binding {
	if evt.Key() == tcell.KeyRune {
		return Rune(evt.Rune())
	}

	return Key(evt.Key())
}

// String renders the binding the way the status bar shows it.
func (b Binding) String() string {
	if b.Key == tcell.KeyRune {
		return string(b.Rune)
	}

	switch b.Key {
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyEscape:
		return "Esc"
	case tcell.KeyTab:
		return "Tab"
	case tcell.KeyCtrlC:
		return "^C"
	case tcell.KeyLeft:
		return "←"
	case tcell.KeyRight:
		return "→"
	default:
		return tcell.KeyNames[b.Key]
	}
}

// KeyAction describes a bound key.
type KeyAction struct {
	Description string
	Action      ActionHandler
	Visible     bool
}

// KeyActions is an ordered set of key bindings.
type KeyActions struct {
	mx      sync.RWMutex
	order   []Binding
	actions map[Binding]KeyAction
}

// NewKeyActions creates an empty set.
func NewKeyActions() *KeyActions {
	return &KeyActions{actions: make(map[Binding]KeyAction)}
}

// Add binds b, replacing an earlier binding of the same key.
func (k *KeyActions) Add(b Binding, action KeyAction) {
	k.mx.Lock()
	defer k.mx.Unlock()

	if _, ok := k.actions[b]; !ok {
		k.order = append(k.order, b)
	}

	k.actions[b] = action
}

// Get returns the action bound to b.
func (k *KeyActions) Get(b Binding) (KeyAction, bool) {
	k.mx.RLock()
	defer k.mx.RUnlock()

	action, ok := k.actions[b]

	return action, ok
}

// Handle runs the action bound to evt. It returns evt untouched when nothing
// is bound.
func (k *KeyActions) Handle(evt *tcell.EventKey) *tcell.EventKey {
	action, ok := k.Get(bindingOf(evt))
	if !ok || action.Action == nil {
		return evt
	}

	return action.Action(evt)
}

// Hints returns "<key> description" for visible bindings, in binding order.
func (k *KeyActions) Hints() []string {
	k.mx.RLock()
	defer k.mx.RUnlock()

	hints := make([]string, 0, len(k.order))
	for _, b := range k.order {
		if a := k.actions[b]; a.Visible {
			hints = append(hints, "<"+b.String()+"> "+a.Description)
		}
	}

	return hints
}

// Entries returns every described binding in order, for the help view.
func (k *KeyActions) Entries() []HelpEntry {
	k.mx.RLock()
	defer k.mx.RUnlock()

	entries := make([]HelpEntry, 0, len(k.order))
	for _, b := range k.order {
		if a := k.actions[b]; a.Description != "" {
			entries = append(entries, HelpEntry{Key: b.String(), Description: a.Description})
		}
	}

	return entries
}

// HelpEntry is one line of the help view.
type HelpEntry struct {
	Key         string
	Description string
}
