package preview

import (
	"testing"

	"github.com/iw2rmb/livemark/syntax"
)

func TestSnapToImage(t *testing.T) {
	// image node [10,20]
	tree := syntax.NewTree(40, node(syntax.KindImage, 10, 20))
	cases := []struct {
		name       string
		prev, next int
		want       int
		snapped    bool
	}{
		{name: "step into start slack", prev: 7, next: 8, want: 10, snapped: true},
		{name: "step into syntax", prev: 9, next: 11, want: 10, snapped: true},
		{name: "step back from after", prev: 23, next: 22, want: 10, snapped: true},
		{name: "already at start", prev: 9, next: 10, want: 10, snapped: false},
		{name: "moving within image", prev: 12, next: 13, want: 13, snapped: false},
		{name: "leaving image", prev: 20, next: 21, want: 21, snapped: false},
		{name: "long jump into image", prev: 30, next: 15, want: 15, snapped: false},
		{name: "far away", prev: 30, next: 31, want: 31, snapped: false},
	}
	for _, tc := range cases {
		got, snapped := SnapToImage(tree, tc.prev, tc.next)
		if got != tc.want || snapped != tc.snapped {
			t.Fatalf("%s: got (%d, %v), want (%d, %v)", tc.name, got, snapped, tc.want, tc.snapped)
		}
	}
}

func TestSnapToImage_LaterEmbedWinsWithinSlack(t *testing.T) {
	// images [10,20] and [22,30]; 21 is within reach of both
	tree := syntax.NewTree(40, node(syntax.KindImage, 10, 20), node(syntax.KindImage, 22, 30))
	got, snapped := SnapToImage(tree, 33, 21)
	if got != 22 || !snapped {
		t.Fatalf("two embeds in reach: got (%d, %v), want (22, true)", got, snapped)
	}
}
