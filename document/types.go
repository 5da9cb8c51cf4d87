package document

// Pos points into the document by (row, col), with col in grapheme clusters.
type Pos struct {
	Row         int
	GraphemeCol int
}

func ComparePos(a, b Pos) int {
	if a.Row < b.Row {
		return -1
	}
	if a.Row > b.Row {
		return 1
	}
	if a.GraphemeCol < b.GraphemeCol {
		return -1
	}
	if a.GraphemeCol > b.GraphemeCol {
		return 1
	}
	return 0
}

// Line describes one logical line. To excludes the line terminator.
type Line struct {
	Row  int
	From int
	To   int
	Text string
}

// Selection is the primary selection. Anchor stays put while Head moves.
type Selection struct {
	Anchor int
	Head   int
}

// Cursor returns an empty selection at off.
func Cursor(off int) Selection {
	return Selection{Anchor: off, Head: off}
}

func (s Selection) From() int { return minInt(s.Anchor, s.Head) }

func (s Selection) To() int { return maxInt(s.Anchor, s.Head) }

func (s Selection) Empty() bool { return s.Anchor == s.Head }

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

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
