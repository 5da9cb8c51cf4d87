package document

import "testing"

func TestDoc_LineIndex(t *testing.T) {
	d := New("ab\n\ncde")

	if got := d.LineCount(); got != 3 {
		t.Fatalf("line count: got %d, want 3", got)
	}
	cases := []struct {
		row  int
		want Line
	}{
		{row: 0, want: Line{Row: 0, From: 0, To: 2, Text: "ab"}},
		{row: 1, want: Line{Row: 1, From: 3, To: 3, Text: ""}},
		{row: 2, want: Line{Row: 2, From: 4, To: 7, Text: "cde"}},
		{row: 9, want: Line{Row: 2, From: 4, To: 7, Text: "cde"}},
	}
	for _, tc := range cases {
		if got := d.Line(tc.row); got != tc.want {
			t.Fatalf("Line(%d): got %+v, want %+v", tc.row, got, tc.want)
		}
	}
}

func TestDoc_LineAt_TerminatorBelongsToEndedLine(t *testing.T) {
	d := New("ab\ncd")

	if got := d.LineAt(2).Row; got != 0 {
		t.Fatalf("LineAt(2): got row %d, want 0", got)
	}
	if got := d.LineAt(3).Row; got != 1 {
		t.Fatalf("LineAt(3): got row %d, want 1", got)
	}
	if got := d.LineAt(99).Row; got != 1 {
		t.Fatalf("LineAt(99): got row %d, want 1", got)
	}
}

func TestDoc_PosOffsetRoundTrip(t *testing.T) {
	d := New("xe\u0301y\nz")

	p := d.PosAt(4) // "y"
	if p != (Pos{Row: 0, GraphemeCol: 2}) {
		t.Fatalf("PosAt(4): got %v, want (0,2)", p)
	}
	if got := d.OffsetAt(p); got != 4 {
		t.Fatalf("OffsetAt(%v): got %d, want 4", p, got)
	}
	if got := d.OffsetAt(Pos{Row: 0, GraphemeCol: 99}); got != 5 {
		t.Fatalf("OffsetAt clamps col: got %d, want 5", got)
	}
	if got := d.OffsetAt(Pos{Row: 1, GraphemeCol: 1}); got != 7 {
		t.Fatalf("OffsetAt(1,1): got %d, want 7", got)
	}
}

func TestDoc_SliceClamps(t *testing.T) {
	d := New("hello")
	if got := d.Slice(3, 99); got != "lo" {
		t.Fatalf("slice: got %q, want %q", got, "lo")
	}
	if got := d.Slice(4, 1); got != "ell" {
		t.Fatalf("reversed slice: got %q, want %q", got, "ell")
	}
}

func TestSelection_FromTo(t *testing.T) {
	s := Selection{Anchor: 9, Head: 3}
	if s.From() != 3 || s.To() != 9 || s.Empty() {
		t.Fatalf("selection: got from=%d to=%d empty=%v", s.From(), s.To(), s.Empty())
	}
	if !Cursor(4).Empty() {
		t.Fatalf("cursor selection must be empty")
	}
}
