package grapheme

import (
	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// ByteOffset returns the byte offset of grapheme column col within text.
//
// col is clamped into [0, Count(text)]; the result is always a cluster boundary.
func ByteOffset(text string, col int) int {
	if col <= 0 || text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		if n == col {
			start, _ := g.Positions()
			return start
		}
		n++
	}
	return len(text)
}

// Col returns the grapheme column of byte offset off within text.
//
// Offsets inside a cluster round down to the cluster start.
func Col(text string, off int) int {
	if off <= 0 || text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		_, end := g.Positions()
		if end > off {
			return n
		}
		n++
	}
	return n
}

// Boundaries returns the byte offsets of every cluster boundary in text,
// including 0 and len(text).
func Boundaries(text string) []int {
	out := []int{0}
	if text == "" {
		return out
	}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		_, end := g.Positions()
		out = append(out, end)
	}
	return out
}

// Width returns the monospace cell width of text.
func Width(text string) int {
	return uniseg.StringWidth(text)
}
