package preview

import (
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/iw2rmb/livemark/internal/grapheme"
	"github.com/iw2rmb/livemark/syntax"
)

type Point struct {
	X float64
	Y float64
}

type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Layout is the host's view of rendered positions.
type Layout interface {
	// PosAtDOM maps a rendered DOM node to the document offset it stands for.
	PosAtDOM(n *html.Node) (int, bool)
	// PosAtCoords maps a screen point to a document offset.
	PosAtCoords(p Point) (int, bool)
	// CharRect measures a zero-width range at byte index i of a text node.
	CharRect(text *html.Node, i int) (Rect, bool)
}

// Event is a primary-button press on rendered content.
type Event struct {
	Target *html.Node
	Point  Point
}

// Router resolves presses on widget DOM into cursor offsets. Only the first
// matching rule handles an event:
//
//  1. a target inside a render block maps through the layout,
//  2. a target inside an image widget maps to the embed's start,
//  3. raw embed syntax is bisected by character geometry.
type Router struct {
	log *zap.Logger
}

func NewRouter(log *zap.Logger) Router {
	if log == nil {
		log = zap.NewNop()
	}
	return Router{log: log}
}

// Resolve returns the offset the cursor should move to and true, or false
// when the host's default handling applies.
func (r Router) Resolve(ev Event, st State, layout Layout) (int, bool) {
	target := ev.Target
	if target != nil && target.Type == html.TextNode {
		target = target.Parent
	}
	if target == nil || target.Type != html.ElementNode {
		return 0, false
	}

	if target.Parent != nil && closest(target.Parent, ClassRenderBlock) != nil {
		pos, ok := layout.PosAtDOM(target)
		if !ok {
			return 0, false
		}
		r.log.Debug("render block press", zap.Int("pos", pos))
		return st.Doc.Clamp(pos), true
	}

	if img := closest(target, ClassImage); img != nil {
		v, ok := attr(img, AttrNodeFrom)
		if !ok {
			return 0, false
		}
		pos, err := strconv.Atoi(v)
		if err != nil {
			r.log.Debug("bad image anchor", zap.String("value", v), zap.Error(err))
			return 0, false
		}
		return st.Doc.Clamp(pos), true
	}

	if hasClass(target, ClassImageSyntax) || strings.Contains(textContent(target), "![[") {
		return r.bisect(ev, target, st, layout)
	}
	return 0, false
}

// bisect picks the character boundary of target's text closest to the
// press horizontally and maps it into the matching embed node.
func (r Router) bisect(ev Event, target *html.Node, st State, layout Layout) (int, bool) {
	content := strings.TrimSpace(textContent(target))
	if content == "" {
		return 0, false
	}
	naive, naiveOK := layout.PosAtCoords(ev.Point)

	img, ok := findImage(st, content, naive, naiveOK)
	if !ok {
		return 0, false
	}
	if naiveOK && img.Contains(naive) {
		return 0, false
	}

	tn := target.FirstChild
	if tn == nil || tn.Type != html.TextNode || tn.Data == "" {
		return 0, false
	}
	best, bestDist := 0, math.Inf(1)
	for _, i := range grapheme.Boundaries(tn.Data) {
		rect, ok := layout.CharRect(tn, i)
		if !ok {
			continue
		}
		if d := math.Abs(rect.Left - ev.Point.X); d < bestDist {
			best, bestDist = i, d
		}
	}
	if math.IsInf(bestDist, 1) {
		return 0, false
	}

	src := st.Doc.Slice(img.From, img.To)
	base := img.From
	if k := strings.Index(src, tn.Data); k >= 0 {
		base += k
	} else if k := strings.Index(tn.Data, src); k >= 0 {
		base -= k
	}
	pos := base + best
	if pos < img.From {
		pos = img.From
	}
	if pos > img.To {
		pos = img.To
	}
	r.log.Debug("image syntax press", zap.Int("naive", naive), zap.Int("pos", pos))
	return pos, true
}

// findImage picks the embed node whose text matches content, preferring the
// one containing the naive position, then the nearest, then the first.
func findImage(st State, content string, naive int, naiveOK bool) (syntax.Node, bool) {
	var (
		best     syntax.Node
		bestDist = -1
	)
	for _, n := range st.Tree.Nodes(syntax.KindImage) {
		src := st.text(n)
		if !strings.Contains(src, content) && !strings.Contains(content, src) {
			continue
		}
		if !naiveOK {
			return n, true
		}
		d := 0
		switch {
		case naive < n.From:
			d = n.From - naive
		case naive > n.To:
			d = naive - n.To
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = n, d
		}
	}
	return best, bestDist >= 0
}

func closest(n *html.Node, class string) *html.Node {
	for ; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && hasClass(n, class) {
			return n
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	v, ok := attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}
