package syntax

import "sort"

// WalkStatus tells Walk how to continue after visiting a node.
type WalkStatus int

const (
	// WalkContinue descends into the node's children.
	WalkContinue WalkStatus = iota
	// WalkSkipChildren prunes the node's subtree.
	WalkSkipChildren
	// WalkStop ends the walk.
	WalkStop
)

// Visitor is called for every node entered by Walk, parents before children.
type Visitor func(n Node) WalkStatus

type entry struct {
	node Node
	end  int // index one past the last descendant
}

// Tree is an immutable pre-order node list with subtree extents.
type Tree struct {
	length  int
	entries []entry
}

// NewTree builds a tree over a document of the given byte length.
//
// Nesting is derived from containment: a node is a child of the nearest
// preceding node whose range covers it. Nodes with identical ranges nest in
// argument order.
func NewTree(length int, nodes ...Node) *Tree {
	sorted := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n.To < n.From {
			n.From, n.To = n.To, n.From
		}
		sorted = append(sorted, n)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].From != sorted[j].From {
			return sorted[i].From < sorted[j].From
		}
		return sorted[i].To > sorted[j].To
	})

	t := &Tree{length: length, entries: make([]entry, 0, len(sorted))}
	var stack []int
	for _, n := range sorted {
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if t.entries[top].node.Covers(n.Range) {
				break
			}
			t.entries[top].end = len(t.entries)
			stack = stack[:len(stack)-1]
		}
		t.entries = append(t.entries, entry{node: n})
		stack = append(stack, len(t.entries)-1)
	}
	for _, idx := range stack {
		t.entries[idx].end = len(t.entries)
	}
	return t
}

// Len returns the byte length of the document the tree describes.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// Size returns the number of nodes.
func (t *Tree) Size() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Walk visits, in document order, every node touching [from, to].
//
// Subtrees of nodes outside the range are never entered. A visitor prunes a
// subtree by returning WalkSkipChildren.
func (t *Tree) Walk(from, to int, visit Visitor) {
	if t == nil || visit == nil {
		return
	}
	for i := 0; i < len(t.entries); {
		e := t.entries[i]
		if e.node.To < from || e.node.From > to {
			i = e.end
			continue
		}
		switch visit(e.node) {
		case WalkStop:
			return
		case WalkSkipChildren:
			i = e.end
		default:
			i++
		}
	}
}

// WalkAll visits every node of the tree.
func (t *Tree) WalkAll(visit Visitor) {
	t.Walk(0, t.Len(), visit)
}

// Nodes returns all nodes of the given kind in document order.
func (t *Tree) Nodes(kind Kind) []Node {
	var out []Node
	t.WalkAll(func(n Node) WalkStatus {
		if n.Kind == kind {
			out = append(out, n)
		}
		return WalkContinue
	})
	return out
}

// Innermost returns the deepest node that contains off and satisfies match.
func (t *Tree) Innermost(off int, match func(Kind) bool) (Node, bool) {
	var (
		found Node
		ok    bool
	)
	t.Walk(off, off, func(n Node) WalkStatus {
		if !n.Contains(off) {
			return WalkSkipChildren
		}
		if match == nil || match(n.Kind) {
			found, ok = n, true
		}
		return WalkContinue
	})
	return found, ok
}
