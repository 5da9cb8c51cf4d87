package preview

import (
	"strings"
	"testing"

	"github.com/iw2rmb/livemark/document"
	"github.com/iw2rmb/livemark/markup"
)

const sample = "# Notes\n\n> quoted line\n> second line\n\nSee ![[diagram.png]] here.\n\n{% callout type=\"note\" %}\nInside the callout.\n{% /callout %}\n\nend\n"

func TestEngine_DecoratesParsedDocument(t *testing.T) {
	e := New(Config{
		Render: markup.Config{Tags: map[string]markup.TagSchema{"callout": {Render: "aside"}}},
		Images: stubLoader{"diagram.png": nil},
	})
	st := e.State(sample, document.Cursor(0))
	set := e.Decorations(st)

	var got []string
	for _, d := range set {
		got = append(got, d.Kind.String()+":"+sample[d.From:d.To]+":"+d.Widget.Source())
	}
	want := []string{
		"replace:> quoted line\n> second line:> quoted line\n> second line",
		"insert-after::![[diagram.png]]",
		"replace:" + "{% callout type=\"note\" %}\nInside the callout.\n{% /callout %}" + ":" + "{% callout type=\"note\" %}\nInside the callout.\n{% /callout %}",
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("decorations:\ngot  %q\nwant %q", got, want)
	}

	callout := set[2].Widget.(*RenderWidget)
	if !strings.Contains(callout.HTML(), `<aside type="note">`) {
		t.Fatalf("callout html: got %s", callout.HTML())
	}
}

func TestEngine_CursorInBlockquoteKeepsItRaw(t *testing.T) {
	e := New(Config{})
	st := e.State(sample, document.Cursor(strings.Index(sample, "second")))
	for _, d := range e.Decorations(st) {
		if d.Kind == Replace && strings.HasPrefix(sample[d.From:], ">") {
			t.Fatalf("blockquote under cursor replaced: %+v", d)
		}
	}
}

func TestEngine_MoveVerticalEntersBlockquote(t *testing.T) {
	e := New(Config{})
	// Cursor on the blank row above the blockquote.
	st := e.State(sample, document.Cursor(strings.Index(sample, "\n\n")+1))
	sel, ok := e.MoveVertical(st, Down)
	if !ok {
		t.Fatalf("down into blockquote: want handled")
	}
	if want := strings.Index(sample, "> quoted"); sel.Head != want {
		t.Fatalf("down into blockquote: got %d, want %d", sel.Head, want)
	}
}

func TestEngine_SnapOnlyForCursors(t *testing.T) {
	e := New(Config{})
	at := strings.Index(sample, "![[")
	st := e.State(sample, document.Cursor(at+1))
	if got := e.Snap(st, at-1).Selection.Head; got != at {
		t.Fatalf("snap: got %d, want %d", got, at)
	}
	st = st.WithSelection(document.Selection{Anchor: at - 3, Head: at + 1})
	if got := e.Snap(st, at-1).Selection.Head; got != at+1 {
		t.Fatalf("range selection must not snap: got %d", got)
	}
}

func TestEngine_SelfClosingTagWidgetRendersBareElement(t *testing.T) {
	e := New(Config{Render: markup.Config{Tags: map[string]markup.TagSchema{"badge": {Render: "hr"}}}})
	text := "top\n\n{% badge /%}\n\nend"
	set := e.Decorations(e.State(text, document.Cursor(0)))

	reps := set.Replaces()
	if len(reps) != 1 || reps[0].From != 5 || reps[0].To != 17 {
		t.Fatalf("badge replace: got %+v, want one at [5,17]", reps)
	}
	if got := reps[0].Widget.(*RenderWidget).HTML(); got != "<hr/>" {
		t.Fatalf("badge html: got %s, want <hr/>", got)
	}
}
