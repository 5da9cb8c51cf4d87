package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/livemark/document"
	"github.com/iw2rmb/livemark/preview"
)

// Model is a Bubble Tea component that renders a document through the
// preview engine and moves a cursor over it.
type Model struct {
	cfg    Config
	engine *preview.Engine
	log    *zap.Logger

	state  preview.State
	decos  preview.Set
	layout layout

	focused bool

	viewport viewport.Model
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Preview.Logger == nil {
		cfg.Preview.Logger = log
	}

	m := Model{
		cfg:      cfg,
		engine:   preview.New(cfg.Preview),
		log:      log,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.state = m.engine.State(cfg.Text, document.Cursor(cfg.Cursor))
	m.recompute()
	return m
}

// State returns the current document, tree and selection.
func (m Model) State() preview.State { return m.state }

// Decorations returns the decoration set of the current state.
func (m Model) Decorations() preview.Set { return m.decos }

func (m Model) Cursor() int { return m.state.Selection.Head }

// SetCursor places the cursor at off, snapping onto nearby embeds.
func (m Model) SetCursor(off int) Model {
	m.moveTo(off)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) View() string { return m.viewport.View() }

// moveTo applies a cursor-only change and recomputes every decoration.
func (m *Model) moveTo(off int) {
	prev := m.state.Selection.Head
	st := m.state.WithSelection(document.Cursor(off))
	m.state = m.engine.Snap(st, prev)
	m.recompute()
	m.followCursor()
}

func (m *Model) recompute() {
	m.decos = m.engine.Decorations(m.state)
	m.layout = buildLayout(m.state.Doc, m.decos, m.cfg.Style)
	m.log.Debug("decorations recomputed",
		zap.Int("cursor", m.state.Selection.Head),
		zap.Int("decorations", len(m.decos)),
		zap.Int("rows", len(m.layout.rows)),
	)
	m.rebuildContent()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	row, ok := m.layout.rowOf(m.state.Selection.Head)
	if !ok {
		return
	}
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
