package preview

import (
	"fmt"
	"testing"

	"github.com/iw2rmb/livemark/syntax"
)

// tagNodes lays out parts back to back and returns the tag nodes for parts
// starting with "{".
func tagNodes(parts ...string) (string, []syntax.Node) {
	var (
		text  string
		nodes []syntax.Node
	)
	for _, p := range parts {
		if p != "" && p[0] == '{' {
			nodes = append(nodes, syntax.Node{Kind: syntax.KindTag, Range: syntax.Range{From: len(text), To: len(text) + len(p)}})
		}
		text += p
	}
	return text, nodes
}

func sliceOf(text string) func(syntax.Node) string {
	return func(n syntax.Node) string { return text[n.From:n.To] }
}

func TestMatchTags_NestedInnermostFirst(t *testing.T) {
	text, nodes := tagNodes("{% a %}", "{% b %}", "x", "{% /b %}", "{% /a %}")
	got := fmt.Sprint(MatchTags(nodes, sliceOf(text)))
	if want := "[{7 23} {0 31}]"; got != want {
		t.Fatalf("spans: got %s, want %s", got, want)
	}
}

func TestMatchTags_SelfClosingSpansItself(t *testing.T) {
	text, nodes := tagNodes("ab ", "{% br /%}")
	spans := MatchTags(nodes, sliceOf(text))
	if len(spans) != 1 {
		t.Fatalf("spans: got %d, want 1", len(spans))
	}
	if spans[0].OpenFrom != nodes[0].From || spans[0].CloseTo != nodes[0].To {
		t.Fatalf("span: got %+v, want node range %+v", spans[0], nodes[0].Range)
	}
}

func TestMatchTags_UnmatchedCloseDiscarded(t *testing.T) {
	text, nodes := tagNodes("{% /a %}", " ", "{% b %}", "x", "{% /b %}", "{% /c %}")
	got := fmt.Sprint(MatchTags(nodes, sliceOf(text)))
	if want := "[{9 25}]"; got != want {
		t.Fatalf("spans: got %s, want %s", got, want)
	}
}

func TestMatchTags_OpenAtOffsetZeroPairs(t *testing.T) {
	text, nodes := tagNodes("{% a %}", "x", "{% /a %}")
	got := fmt.Sprint(MatchTags(nodes, sliceOf(text)))
	if want := "[{0 16}]"; got != want {
		t.Fatalf("spans: got %s, want %s", got, want)
	}
}

func TestMatchTags_NonTagTextPassesThrough(t *testing.T) {
	text, nodes := tagNodes("{% a %}", "{not a tag}", "{% /a %}")
	got := fmt.Sprint(MatchTags(nodes, sliceOf(text)))
	if want := "[{0 26}]"; got != want {
		t.Fatalf("spans: got %s, want %s", got, want)
	}
}

func TestMatchTags_UnclosedOpenProducesNothing(t *testing.T) {
	text, nodes := tagNodes("{% a %}", "body")
	if spans := MatchTags(nodes, sliceOf(text)); len(spans) != 0 {
		t.Fatalf("spans: got %v, want none", spans)
	}
}
