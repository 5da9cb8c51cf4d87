package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/livemark/document"
	"github.com/iw2rmb/livemark/preview"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.state.Doc == nil {
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Up):
		m.moveVertical(preview.Up, document.DirUp)
	case key.Matches(msg, km.Down):
		m.moveVertical(preview.Down, document.DirDown)
	case key.Matches(msg, km.Left):
		m.move(document.Move{Unit: document.MoveGrapheme, Dir: document.DirLeft})
	case key.Matches(msg, km.Right):
		m.move(document.Move{Unit: document.MoveGrapheme, Dir: document.DirRight})
	case key.Matches(msg, km.Home):
		m.move(document.Move{Unit: document.MoveLine, Dir: document.DirHome})
	case key.Matches(msg, km.End):
		m.move(document.Move{Unit: document.MoveLine, Dir: document.DirEnd})
	case key.Matches(msg, km.DocStart):
		m.move(document.Move{Unit: document.MoveDoc, Dir: document.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.move(document.Move{Unit: document.MoveDoc, Dir: document.DirEnd})
	}
	return m, nil
}

func (m *Model) move(mv document.Move) {
	m.moveTo(m.state.Doc.Move(m.state.Selection.Head, mv))
}

// moveVertical asks the block navigator first and falls back to the
// default line move when it defers.
func (m *Model) moveVertical(dir preview.Direction, fallback document.MoveDir) {
	if sel, ok := m.engine.MoveVertical(m.state, dir); ok {
		m.moveTo(sel.Head)
		return
	}
	m.move(document.Move{Unit: document.MoveLine, Dir: fallback})
}
