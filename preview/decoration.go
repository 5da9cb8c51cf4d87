package preview

import (
	"sort"

	"go.uber.org/zap"

	"github.com/iw2rmb/livemark/document"
	"github.com/iw2rmb/livemark/syntax"
)

// DecorationKind is the effect a decoration has on the text it covers.
type DecorationKind uint8

const (
	// Replace hides [From, To) behind a widget.
	Replace DecorationKind = iota
	// InsertAfter places a widget at a zero-width point.
	InsertAfter
)

func (k DecorationKind) String() string {
	switch k {
	case Replace:
		return "replace"
	case InsertAfter:
		return "insert-after"
	default:
		return "unknown"
	}
}

// Side orders a point widget relative to the text at its offset.
type Side int8

const (
	SideBefore Side = -1
	SideAfter  Side = 1
)

type Decoration struct {
	From   int
	To     int
	Kind   DecorationKind
	Widget Widget
	Side   Side
	// Block widgets occupy their own display rows.
	Block bool
}

// Set is a sorted, non-overlapping decoration list.
type Set []Decoration

// Eq reports whether two sets would produce the same display.
func (s Set) Eq(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		a, b := s[i], other[i]
		if a.From != b.From || a.To != b.To || a.Kind != b.Kind || a.Side != b.Side || a.Block != b.Block {
			return false
		}
		if (a.Widget == nil) != (b.Widget == nil) {
			return false
		}
		if a.Widget != nil && !a.Widget.Eq(b.Widget) {
			return false
		}
	}
	return true
}

// Replaces returns the Replace decorations of the set.
func (s Set) Replaces() []Decoration {
	var out []Decoration
	for _, d := range s {
		if d.Kind == Replace {
			out = append(out, d)
		}
	}
	return out
}

// State is one immutable (document, tree, selection) snapshot.
type State struct {
	Doc       *document.Doc
	Tree      *syntax.Tree
	Selection document.Selection
}

func (st State) text(n syntax.Node) string {
	return st.Doc.Slice(n.From, n.To)
}

// Computer derives decoration sets from state snapshots.
type Computer struct {
	render Renderer
	images ImageLoader
	log    *zap.Logger
}

func NewComputer(render Renderer, images ImageLoader, log *zap.Logger) *Computer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Computer{render: render, images: images, log: log}
}

// Compute returns the decorations for the whole document.
func (c *Computer) Compute(st State) Set {
	return c.ComputeRange(st, 0, st.Doc.Len())
}

// ComputeRange returns the decorations of nodes touching [from, to].
func (c *Computer) ComputeRange(st State, from, to int) Set {
	var (
		decos []Decoration
		tags  = tagMatcher{log: c.log}
	)
	st.Tree.Walk(from, to, func(n syntax.Node) syntax.WalkStatus {
		switch n.Kind {
		case syntax.KindImage:
			decos = append(decos, Decoration{
				From:   n.To,
				To:     n.To,
				Kind:   InsertAfter,
				Widget: NewImageWidget(st.text(n), n.From, false, c.images),
				Side:   SideAfter,
				Block:  true,
			})
			return syntax.WalkSkipChildren
		case syntax.KindTag:
			tags.add(n, st.text(n))
			return syntax.WalkSkipChildren
		case syntax.KindTable, syntax.KindBlockquote:
			if MayReplace(n.Range, st.Selection) {
				decos = append(decos, c.replace(st, n.Range))
			}
			return syntax.WalkSkipChildren
		}
		return syntax.WalkContinue
	})

	for _, sp := range tags.spans {
		if MayReplace(sp.Range(), st.Selection) {
			decos = append(decos, c.replace(st, sp.Range()))
		}
	}
	return normalize(decos, c.log)
}

func (c *Computer) replace(st State, r syntax.Range) Decoration {
	return Decoration{
		From:   r.From,
		To:     r.To,
		Kind:   Replace,
		Widget: NewRenderWidget(st.Doc.Slice(r.From, r.To), c.render, c.log),
		Side:   SideBefore,
		Block:  true,
	}
}

// normalize sorts decos and drops every decoration that would overlap a
// wider Replace: the outermost replacement wins and image widgets inside a
// replaced range are dropped.
func normalize(decos []Decoration, log *zap.Logger) Set {
	sort.SliceStable(decos, func(i, j int) bool {
		a, b := decos[i], decos[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.To > b.To
	})

	var replaced []syntax.Range
	out := make(Set, 0, len(decos))
	for _, d := range decos {
		if d.Kind != Replace {
			continue
		}
		if n := len(replaced); n > 0 && d.From < replaced[n-1].To {
			log.Debug("dropped nested replacement", zap.Int("from", d.From), zap.Int("to", d.To))
			continue
		}
		replaced = append(replaced, syntax.Range{From: d.From, To: d.To})
	}

	ri := 0
	for _, d := range decos {
		if d.Kind == Replace {
			if ri < len(replaced) && replaced[ri].From == d.From && replaced[ri].To == d.To {
				out = append(out, d)
				ri++
			}
			continue
		}
		if insideReplaced(d, replaced) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func insideReplaced(d Decoration, replaced []syntax.Range) bool {
	from := d.From
	if w, ok := d.Widget.(*ImageWidget); ok {
		from = w.Anchor()
	}
	for _, r := range replaced {
		if r.From <= from && d.To <= r.To {
			return true
		}
	}
	return false
}
