package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/bullcow/pkg/console"
)

// keyMap holds the bindings handled by the host rather than the console.
type keyMap struct {
	Quit key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "ctrl+d"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// keyEvent is one console key press.
type keyEvent struct {
	key   console.Key
	shift bool
}

// translateKey converts a bubbletea key message into console key presses.
// Terminals deliver typed characters rather than physical keys, so runes are
// mapped back to the key and shift state that would produce them. A paste
// yields several events. Caps lock is not observable from a terminal.
func translateKey(msg tea.KeyMsg) []keyEvent {
	switch msg.Type {
	case tea.KeyEnter:
		return []keyEvent{{key: console.KeyEnter}}
	case tea.KeyBackspace:
		return []keyEvent{{key: console.KeyBackspace}}
	case tea.KeyUp:
		return []keyEvent{{key: console.KeyUp}}
	case tea.KeyDown:
		return []keyEvent{{key: console.KeyDown}}
	case tea.KeyLeft:
		return []keyEvent{{key: console.KeyLeft}}
	case tea.KeyRight:
		return []keyEvent{{key: console.KeyRight}}
	case tea.KeyEsc:
		return []keyEvent{{key: console.KeyEscape}}
	case tea.KeyTab:
		return []keyEvent{{key: console.KeyTab}}
	case tea.KeySpace:
		return []keyEvent{{key: console.KeySpace}}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}

		events := make([]keyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			k, shift, ok := console.LookupRune(r)
			if !ok {
				continue
			}
			events = append(events, keyEvent{key: k, shift: shift})
		}
		return events
	}

	return nil
}
