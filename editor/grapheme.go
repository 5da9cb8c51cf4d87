package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// cellsBefore returns the terminal cell width of text[:i].
func cellsBefore(text string, i int) int {
	if i <= 0 {
		return 0
	}
	if i > len(text) {
		i = len(text)
	}
	return runewidth.StringWidth(text[:i])
}

// byteAtCell returns the byte offset of the grapheme cluster drawn at cell,
// or len(text) past the end of the text.
func byteAtCell(text string, cell int) int {
	if cell <= 0 {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	x := 0
	for g.Next() {
		w := runewidth.StringWidth(g.Str())
		if cell < x+w {
			start, _ := g.Positions()
			return start
		}
		x += w
	}
	return len(text)
}

// clusterAt returns the grapheme cluster starting at byte i.
func clusterAt(text string, i int) string {
	if i < 0 || i >= len(text) {
		return ""
	}
	g := uniseg.NewGraphemes(text[i:])
	if !g.Next() {
		return ""
	}
	return g.Str()
}
