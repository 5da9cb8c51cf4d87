package document

import "github.com/iw2rmb/livemark/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

// Move returns the offset reached from off by the default movement m.
//
// Vertical moves keep the grapheme column, clamped to the target line length.
func (d *Doc) Move(off int, m Move) int {
	off = d.Clamp(off)
	switch m.Unit {
	case MoveGrapheme:
		return d.moveGrapheme(off, m.Dir)
	case MoveLine:
		return d.moveLine(off, m.Dir)
	case MoveDoc:
		return d.moveDoc(off, m.Dir)
	default:
		return off
	}
}

func (d *Doc) moveGrapheme(off int, dir MoveDir) int {
	line := d.LineAt(off)
	col := grapheme.Col(line.Text, off-line.From)

	switch dir {
	case DirLeft:
		if col > 0 {
			return line.From + grapheme.ByteOffset(line.Text, col-1)
		}
		if line.Row == 0 {
			return off
		}
		return d.Line(line.Row - 1).To
	case DirRight:
		if off < line.To {
			return line.From + grapheme.ByteOffset(line.Text, col+1)
		}
		if line.Row == d.LineCount()-1 {
			return off
		}
		return d.Line(line.Row + 1).From
	default:
		return d.moveLine(off, dir)
	}
}

func (d *Doc) moveLine(off int, dir MoveDir) int {
	p := d.PosAt(off)
	line := d.Line(p.Row)

	switch dir {
	case DirHome:
		return line.From
	case DirEnd:
		return line.To
	case DirUp:
		if p.Row == 0 {
			return off
		}
		return d.OffsetAt(Pos{Row: p.Row - 1, GraphemeCol: p.GraphemeCol})
	case DirDown:
		if p.Row == d.LineCount()-1 {
			return off
		}
		return d.OffsetAt(Pos{Row: p.Row + 1, GraphemeCol: p.GraphemeCol})
	default:
		return off
	}
}

func (d *Doc) moveDoc(off int, dir MoveDir) int {
	switch dir {
	case DirHome, DirUp:
		return 0
	case DirEnd, DirDown:
		return len(d.text)
	default:
		return off
	}
}
