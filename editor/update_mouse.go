package editor

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheel(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if !m.focused || m.state.Doc == nil {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.mouseInBounds(msg.X, msg.Y) {
		return m, nil
	}

	if ev, layout, ok := m.eventAt(msg.X, msg.Y); ok {
		if off, handled := m.engine.Press(m.state, ev, layout); handled {
			m.log.Debug("press routed", zap.Int("x", msg.X), zap.Int("y", msg.Y), zap.Int("offset", off))
			m.moveTo(off)
			return m, nil
		}
	}
	if off, ok := m.screenToDoc(msg.X, msg.Y); ok {
		m.moveTo(off)
	}
	return m, nil
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}
