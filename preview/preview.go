package preview

import (
	"github.com/yuin/goldmark"
	"go.uber.org/zap"

	"github.com/iw2rmb/livemark/document"
	"github.com/iw2rmb/livemark/grammar"
	"github.com/iw2rmb/livemark/markup"
)

// Config configures an Engine.
type Config struct {
	// Grammar extensions are installed after the Markdoc tag grammar, both
	// for the syntax tree and for the widget transform.
	Grammar []goldmark.Extender
	// Render overrides entries of markup.DefaultConfig.
	Render markup.Config
	// Images checks embed targets. Nil accepts every target.
	Images ImageLoader
	Logger *zap.Logger
}

// Engine bundles parsing, decoration, navigation and event routing over
// one configuration.
type Engine struct {
	parser    *grammar.Parser
	transform *markup.Transformer
	computer  *Computer
	nav       Navigator
	router    Router
	log       *zap.Logger
}

func New(cfg Config) *Engine {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	tr := markup.New(cfg.Render, cfg.Grammar...)
	return &Engine{
		parser:    grammar.New(grammar.Options{Extensions: cfg.Grammar}),
		transform: tr,
		computer:  NewComputer(tr, cfg.Images, log),
		nav:       NewNavigator(log),
		router:    NewRouter(log),
		log:       log,
	}
}

// Transformer returns the markup transform used for render widgets.
func (e *Engine) Transformer() *markup.Transformer { return e.transform }

// State parses text and pairs it with sel.
func (e *Engine) State(text string, sel document.Selection) State {
	doc := document.New(text)
	sel.Anchor = doc.Clamp(sel.Anchor)
	sel.Head = doc.Clamp(sel.Head)
	return State{Doc: doc, Tree: e.parser.Parse(text), Selection: sel}
}

// WithSelection returns st with a new selection and the same document.
func (st State) WithSelection(sel document.Selection) State {
	sel.Anchor = st.Doc.Clamp(sel.Anchor)
	sel.Head = st.Doc.Clamp(sel.Head)
	st.Selection = sel
	return st
}

func (e *Engine) Decorations(st State) Set {
	return e.computer.Compute(st)
}

// Blocks returns the block finder for st.
func (e *Engine) Blocks(st State) RenderedBlocks {
	return RenderedBlocks{Doc: st.Doc, Tree: st.Tree}
}

// MoveVertical runs the block navigator for st.
func (e *Engine) MoveVertical(st State, dir Direction) (document.Selection, bool) {
	return e.nav.Move(st.Doc, e.Blocks(st), st.Selection, dir)
}

// Press runs the event router for st.
func (e *Engine) Press(st State, ev Event, layout Layout) (int, bool) {
	return e.router.Resolve(ev, st, layout)
}

// Snap applies SnapToImage to a cursor move from prev to st's head.
func (e *Engine) Snap(st State, prev int) State {
	head := st.Selection.Head
	if !st.Selection.Empty() {
		return st
	}
	if to, ok := SnapToImage(st.Tree, prev, head); ok {
		e.log.Debug("cursor snapped to image", zap.Int("from", head), zap.Int("to", to))
		return st.WithSelection(document.Cursor(to))
	}
	return st
}
