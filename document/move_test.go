package document

import "testing"

func TestDoc_MoveGrapheme_BoundsAndLineCrossing(t *testing.T) {
	d := New("ab\ne\u0301d")

	if got := d.Move(0, Move{Unit: MoveGrapheme, Dir: DirLeft}); got != 0 {
		t.Fatalf("left at doc start: got %d, want 0", got)
	}
	if got := d.Move(2, Move{Unit: MoveGrapheme, Dir: DirRight}); got != 3 {
		t.Fatalf("right at eol: got %d, want 3", got)
	}
	if got := d.Move(3, Move{Unit: MoveGrapheme, Dir: DirRight}); got != 6 {
		t.Fatalf("right over cluster: got %d, want 6", got)
	}
	if got := d.Move(3, Move{Unit: MoveGrapheme, Dir: DirLeft}); got != 2 {
		t.Fatalf("left at line start: got %d, want 2", got)
	}
}

func TestDoc_MoveLine_HomeEndAndVerticalClamp(t *testing.T) {
	d := New("hello\nw\nworld")

	if got := d.Move(3, Move{Unit: MoveLine, Dir: DirEnd}); got != 5 {
		t.Fatalf("end: got %d, want 5", got)
	}
	if got := d.Move(3, Move{Unit: MoveLine, Dir: DirHome}); got != 0 {
		t.Fatalf("home: got %d, want 0", got)
	}
	if got := d.Move(13, Move{Unit: MoveLine, Dir: DirUp}); got != 7 {
		t.Fatalf("up clamps to short line: got %d, want 7", got)
	}
	if got := d.Move(2, Move{Unit: MoveLine, Dir: DirUp}); got != 2 {
		t.Fatalf("up on first line: got %d, want 2", got)
	}
	if got := d.Move(9, Move{Unit: MoveLine, Dir: DirDown}); got != 9 {
		t.Fatalf("down on last line: got %d, want 9", got)
	}
}

func TestDoc_MoveDoc_StartEnd(t *testing.T) {
	d := New("a\nbc")
	if got := d.Move(3, Move{Unit: MoveDoc, Dir: DirHome}); got != 0 {
		t.Fatalf("doc home: got %d, want 0", got)
	}
	if got := d.Move(0, Move{Unit: MoveDoc, Dir: DirEnd}); got != 4 {
		t.Fatalf("doc end: got %d, want 4", got)
	}
}
