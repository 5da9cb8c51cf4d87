package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding
	DocStart, DocEnd      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		DocStart: key.NewBinding(key.WithKeys("ctrl+home", "g"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end", "G"), key.WithHelp("ctrl+end", "document end")),
	}
}

func (km KeyMap) isZero() bool {
	for _, b := range []key.Binding{km.Left, km.Right, km.Up, km.Down, km.Home, km.End, km.DocStart, km.DocEnd} {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}
