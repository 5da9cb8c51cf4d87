package editor

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/iw2rmb/livemark/preview"
	"github.com/iw2rmb/livemark/syntax"
)

// screenToDoc maps viewport-local cell coordinates to a document offset.
//
// Text rows map cell-accurately; widget and image rows map to the start of
// their decoration.
func (m *Model) screenToDoc(x, y int) (int, bool) {
	rows := m.layout.rows
	if len(rows) == 0 {
		return 0, false
	}
	r := rows[clampInt(m.viewport.YOffset+y, 0, len(rows)-1)]
	if r.kind != rowText {
		return r.from, true
	}
	line := m.state.Doc.Slice(r.from, r.to)
	return r.from + byteAtCell(line, x), true
}

// run is a piece of a text row drawn as its own DOM span.
type run struct {
	from int
	cell int
}

// hostLayout answers the event router's layout queries for one press.
type hostLayout struct {
	m *Model
	y int

	roots map[*html.Node]int
	runs  map[*html.Node]run
}

func (l hostLayout) PosAtDOM(n *html.Node) (int, bool) {
	for ; n != nil; n = n.Parent {
		if pos, ok := l.roots[n]; ok {
			return pos, true
		}
		if r, ok := l.runs[n]; ok {
			return r.from, true
		}
	}
	return 0, false
}

func (l hostLayout) PosAtCoords(p preview.Point) (int, bool) {
	return l.m.screenToDoc(int(p.X), l.y)
}

func (l hostLayout) CharRect(text *html.Node, i int) (preview.Rect, bool) {
	r, ok := l.runs[text.Parent]
	if !ok {
		return preview.Rect{}, false
	}
	x := float64(r.cell + cellsBefore(text.Data, i))
	y := float64(l.y)
	return preview.Rect{Left: x, Right: x, Top: y, Bottom: y + 1}, true
}

// eventAt builds the router event for a press at viewport cell (x, y).
func (m *Model) eventAt(x, y int) (preview.Event, hostLayout, bool) {
	l := hostLayout{m: m, y: y, roots: map[*html.Node]int{}, runs: map[*html.Node]run{}}
	rows := m.layout.rows
	idx := m.viewport.YOffset + y
	if idx < 0 || idx >= len(rows) {
		return preview.Event{}, l, false
	}
	r := rows[idx]
	pt := preview.Point{X: float64(x), Y: float64(y)}

	if r.kind != rowText {
		l.roots[r.root] = r.from
		return preview.Event{Target: r.target, Point: pt}, l, true
	}

	line := element(atom.Div, "cm-line")
	var target *html.Node
	for _, rn := range m.textRuns(r) {
		span := element(atom.Span, rn.class)
		text := m.state.Doc.Slice(rn.from, rn.to)
		if text != "" {
			span.AppendChild(&html.Node{Type: html.TextNode, Data: text})
		}
		line.AppendChild(span)

		cell := cellsBefore(m.state.Doc.Slice(r.from, r.to), rn.from-r.from)
		l.runs[span] = run{from: rn.from, cell: cell}
		if target == nil || x >= cell {
			target = span
		}
	}
	l.roots[line] = r.from
	if target == nil {
		target = line
	}
	return preview.Event{Target: target, Point: pt}, l, true
}

type textRun struct {
	from, to int
	class    string
}

// textRuns splits a text row at raw embed syntax.
func (m *Model) textRuns(r visualRow) []textRun {
	var out []textRun
	pos := r.from
	m.state.Tree.Walk(r.from, r.to, func(n syntax.Node) syntax.WalkStatus {
		if n.Kind != syntax.KindImage || n.From < r.from || n.To > r.to {
			return syntax.WalkContinue
		}
		if n.From > pos {
			out = append(out, textRun{from: pos, to: n.From})
		}
		out = append(out, textRun{from: n.From, to: n.To, class: preview.ClassImageSyntax})
		pos = n.To
		return syntax.WalkSkipChildren
	})
	if pos < r.to || len(out) == 0 {
		out = append(out, textRun{from: pos, to: r.to})
	}
	return out
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
