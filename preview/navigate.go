package preview

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/livemark/document"
	"github.com/iw2rmb/livemark/internal/grapheme"
	"github.com/iw2rmb/livemark/syntax"
)

// Direction is a vertical cursor movement.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// BlockFinder reports the rendered block enclosing an offset.
type BlockFinder interface {
	EnclosingBlock(off int) (syntax.Range, bool)
}

// RenderedBlocks finds the blocks the decoration computer may render as
// widgets: tables, blockquotes and tag spans covering more than one line.
// Ranges are recomputed from the tree on every query.
type RenderedBlocks struct {
	Doc  *document.Doc
	Tree *syntax.Tree
}

func (b RenderedBlocks) EnclosingBlock(off int) (syntax.Range, bool) {
	var (
		best  syntax.Range
		found bool
	)
	if n, ok := b.Tree.Innermost(off, isBlockKind); ok {
		best, found = n.Range, true
	}

	tags := b.Tree.Nodes(syntax.KindTag)
	spans := MatchTags(tags, func(n syntax.Node) string { return b.Doc.Slice(n.From, n.To) })
	for _, sp := range spans {
		r := sp.Range()
		if !r.Contains(off) || b.Doc.LineAt(r.From).Row == b.Doc.LineAt(r.To).Row {
			continue
		}
		if !found || r.Len() < best.Len() {
			best, found = r, true
		}
	}
	return best, found
}

func isBlockKind(k syntax.Kind) bool {
	return k == syntax.KindTable || k == syntax.KindBlockquote
}

// Navigator remaps vertical movement so the cursor enters rendered blocks
// instead of skipping over their widgets.
type Navigator struct {
	log *zap.Logger
}

func NewNavigator(log *zap.Logger) Navigator {
	if log == nil {
		log = zap.NewNop()
	}
	return Navigator{log: log}
}

// Move computes the cursor after moving sel's head one line in dir. It
// returns false when default movement should apply: the head is already
// inside a block, there is no adjacent line, or the naive target lies
// outside every block.
func (nv Navigator) Move(doc *document.Doc, blocks BlockFinder, sel document.Selection, dir Direction) (document.Selection, bool) {
	head := doc.Clamp(sel.Head)
	if _, inside := blocks.EnclosingBlock(head); inside {
		return sel, false
	}

	line := doc.LineAt(head)
	next := line.Row - 1
	if dir == Down {
		next = line.Row + 1
	}
	if next < 0 || next >= doc.LineCount() {
		return sel, false
	}

	col := grapheme.Col(line.Text, head-line.From)
	adj := doc.Line(next)
	candidate := adj.From + grapheme.ByteOffset(adj.Text, col)

	block, ok := blocks.EnclosingBlock(candidate)
	if !ok {
		return sel, false
	}

	edge := block.From
	if dir == Up {
		edge = block.To
	}
	target := doc.LineAt(edge)
	if target.Row == line.Row {
		// block edge shares the current row; enter through the adjacent row
		target = adj
	}
	off := target.From + grapheme.ByteOffset(target.Text, col)
	if off < block.From {
		off = block.From
	}
	if off > block.To {
		off = block.To
	}
	nv.log.Debug("vertical move into block",
		zap.Stringer("dir", dir),
		zap.Int("from", head),
		zap.Int("to", off),
		zap.Int("block_from", block.From),
		zap.Int("block_to", block.To),
	)
	return document.Cursor(off), true
}
