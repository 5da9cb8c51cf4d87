package editor

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/iw2rmb/livemark/document"
	"github.com/iw2rmb/livemark/preview"
)

type rowKind uint8

const (
	rowText rowKind = iota
	rowWidget
	rowImage
)

// visualRow is one terminal row of the laid-out document.
//
// Text rows cover the document range [from, to] of one line (or the part
// of it left over by a replacement). Widget and image rows keep the range
// of their decoration.
type visualRow struct {
	kind rowKind
	from int
	to   int

	// text is the pre-rendered row for widget and image rows.
	text string

	// root is the widget DOM a widget or image row belongs to; target is the
	// node a press on this row hits.
	root   *html.Node
	target *html.Node
}

type layout struct {
	rows []visualRow
}

// buildLayout lays doc out with the decorations of set applied. Replaced
// ranges are substituted by their widget's rows, images are inserted below
// the row holding their insertion point.
func buildLayout(doc *document.Doc, set preview.Set, st Style) layout {
	b := layoutBuilder{doc: doc, text: doc.Text(), style: st}
	for _, d := range set {
		if d.Kind == preview.InsertAfter {
			b.inserts = append(b.inserts, d)
		}
	}

	pos := 0
	for _, d := range set {
		if d.Kind != preview.Replace {
			continue
		}
		if d.From > pos {
			if doc.LineAt(d.From).From == d.From {
				b.raw(pos, d.From-1)
			} else {
				b.raw(pos, d.From)
			}
		}
		b.widget(d)
		pos = d.To
		if pos < len(b.text) && b.text[pos] == '\n' {
			pos++
		}
	}
	if pos < len(b.text) || len(b.text) == 0 || (pos == len(b.text) && b.text[pos-1] == '\n') {
		b.raw(pos, len(b.text))
	}
	for ; b.next < len(b.inserts); b.next++ {
		b.image(b.inserts[b.next])
	}
	return layout{rows: b.rows}
}

type layoutBuilder struct {
	doc   *document.Doc
	text  string
	style Style

	inserts []preview.Decoration
	next    int

	rows []visualRow
}

// raw emits one text row per line of [from, to).
func (b *layoutBuilder) raw(from, to int) {
	for {
		end := strings.IndexByte(b.text[from:to], '\n')
		if end < 0 {
			end = to
		} else {
			end += from
		}
		b.rows = append(b.rows, visualRow{kind: rowText, from: from, to: end})
		for b.next < len(b.inserts) && b.inserts[b.next].From <= end {
			b.image(b.inserts[b.next])
			b.next++
		}
		if end >= to {
			return
		}
		from = end + 1
	}
}

func (b *layoutBuilder) widget(d preview.Decoration) {
	root := d.Widget.DOM()
	lines, targets := widgetLines(root)

	box := strings.Split(b.style.Widget.Render(strings.Join(lines, "\n")), "\n")
	top := b.style.Widget.GetMarginTop() + b.style.Widget.GetBorderTopSize() + b.style.Widget.GetPaddingTop()
	fallback := firstElement(root)
	for i, line := range box {
		target := fallback
		if k := i - top; k >= 0 && k < len(targets) && targets[k] != nil {
			target = targets[k]
		}
		b.rows = append(b.rows, visualRow{
			kind:   rowWidget,
			from:   d.From,
			to:     d.To,
			text:   line,
			root:   root,
			target: target,
		})
	}
}

func (b *layoutBuilder) image(d preview.Decoration) {
	w, ok := d.Widget.(*preview.ImageWidget)
	if !ok {
		return
	}
	root := w.DOM()
	text, target := imageLine(w, root, b.style)
	b.rows = append(b.rows, visualRow{
		kind:   rowImage,
		from:   d.From,
		to:     d.To,
		text:   text,
		root:   root,
		target: target,
	})
}

// rowOf returns the index of the text row showing off.
func (l layout) rowOf(off int) (int, bool) {
	for i, r := range l.rows {
		if r.kind == rowText && off >= r.from && off <= r.to {
			return i, true
		}
	}
	return 0, false
}
