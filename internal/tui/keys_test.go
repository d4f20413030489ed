package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func TestKeyActionsHandle(t *testing.T) {
	k := NewKeyActions()
	var fired []string

	k.Add(Rune('v'), KeyAction{Description: "Toggle", Action: func(*tcell.EventKey) *tcell.EventKey {
		fired = append(fired, "v")
		return nil
	}, Visible: true})
	k.Add(Key(tcell.KeyEscape), KeyAction{Description: "Pass", Action: func(evt *tcell.EventKey) *tcell.EventKey {
		fired = append(fired, "esc")
		return evt
	}})

	require.Nil(t, k.Handle(tcell.NewEventKey(tcell.KeyRune, 'v', tcell.ModNone)))

	esc := tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	require.Same(t, esc, k.Handle(esc))

	other := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	require.Same(t, other, k.Handle(other))

	require.Equal(t, []string{"v", "esc"}, fired)
}

func TestKeyActionsOrderAndHints(t *testing.T) {
	k := NewKeyActions()
	noop := func(*tcell.EventKey) *tcell.EventKey { return nil }

	k.Add(Rune('/'), KeyAction{Description: "Search", Action: noop, Visible: true})
	k.Add(Key(tcell.KeyCtrlC), KeyAction{Description: "Quit", Action: noop, Visible: true})
	k.Add(Rune('m'), KeyAction{Description: "Map view", Action: noop})
	k.Add(Rune('/'), KeyAction{Description: "Find", Action: noop, Visible: true})

	require.Equal(t, []string{"</> Find", "<^C> Quit"}, k.Hints())
	require.Equal(t, []HelpEntry{
		{Key: "/", Description: "Find"},
		{Key: "^C", Description: "Quit"},
		{Key: "m", Description: "Map view"},
	}, k.Entries())
}

func TestBindingString(t *testing.T) {
	require.Equal(t, "Esc", Key(tcell.KeyEscape).String())
	require.Equal(t, "Enter", Key(tcell.KeyEnter).String())
	require.Equal(t, "]", Rune(']').String())
}
