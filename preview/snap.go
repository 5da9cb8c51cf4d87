package preview

import "github.com/iw2rmb/livemark/syntax"

const (
	snapSlack = 2
	snapJump  = 5
)

// SnapToImage adjusts a cursor-only move from prev to next so the cursor
// lands on the start of a nearby embed instead of inside its syntax. It
// returns next unchanged and false when no snap applies.
func SnapToImage(tree *syntax.Tree, prev, next int) (int, bool) {
	images := tree.Nodes(syntax.KindImage)

	var wasIn, nextIn bool
	for _, n := range images {
		wasIn = wasIn || n.Contains(prev)
		nextIn = nextIn || n.Contains(next)
	}
	if wasIn || (nextIn && abs(next-prev) > snapJump) {
		return next, false
	}
	target, found := next, false
	// later embeds win when several are within reach
	for _, n := range images {
		if next != n.From && next >= n.From-snapSlack && next <= n.To+snapSlack {
			target, found = n.From, true
		}
	}
	return target, found
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
