package document

import (
	"sort"

	"github.com/iw2rmb/livemark/internal/grapheme"
)

// Doc is an immutable document snapshot with a line index.
type Doc struct {
	text       string
	lineStarts []int
}

func New(text string) *Doc {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Doc{text: text, lineStarts: starts}
}

func (d *Doc) Text() string { return d.text }

func (d *Doc) Len() int { return len(d.text) }

// Slice returns the text in [from, to), clamped to the document.
func (d *Doc) Slice(from, to int) string {
	from = d.Clamp(from)
	to = d.Clamp(to)
	if to < from {
		from, to = to, from
	}
	return d.text[from:to]
}

// Clamp clamps off into [0, Len()].
func (d *Doc) Clamp(off int) int {
	return clampInt(off, 0, len(d.text))
}

func (d *Doc) LineCount() int { return len(d.lineStarts) }

// Line returns the row-th line; row is clamped into the document.
func (d *Doc) Line(row int) Line {
	row = clampInt(row, 0, len(d.lineStarts)-1)
	from := d.lineStarts[row]
	to := len(d.text)
	if row+1 < len(d.lineStarts) {
		to = d.lineStarts[row+1] - 1
	}
	return Line{Row: row, From: from, To: to, Text: d.text[from:to]}
}

// LineAt returns the line containing off. An offset on a line terminator
// belongs to the line it ends.
func (d *Doc) LineAt(off int) Line {
	off = d.Clamp(off)
	row := sort.Search(len(d.lineStarts), func(i int) bool {
		return d.lineStarts[i] > off
	}) - 1
	return d.Line(row)
}

// PosAt converts a byte offset to a (row, grapheme col) position.
func (d *Doc) PosAt(off int) Pos {
	line := d.LineAt(off)
	return Pos{Row: line.Row, GraphemeCol: grapheme.Col(line.Text, d.Clamp(off)-line.From)}
}

// OffsetAt converts a position to a byte offset, clamping row and column.
func (d *Doc) OffsetAt(p Pos) int {
	line := d.Line(p.Row)
	return line.From + grapheme.ByteOffset(line.Text, p.GraphemeCol)
}

// LineLen returns the grapheme length of row.
func (d *Doc) LineLen(row int) int {
	return grapheme.Count(d.Line(row).Text)
}
