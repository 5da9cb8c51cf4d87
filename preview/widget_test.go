package preview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func renderNode(t *testing.T, n *html.Node) string {
	t.Helper()
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func TestRenderWidget_DOM(t *testing.T) {
	w := NewRenderWidget("> hi", &stubRenderer{}, nil)
	got := renderNode(t, w.DOM())
	want := `<div class="cm-markdoc-renderBlock" contenteditable="false"><p>&gt; hi</p></div>`
	if got != want {
		t.Fatalf("dom: got %s, want %s", got, want)
	}
}

func TestRenderWidget_EqComparesSource(t *testing.T) {
	a := NewRenderWidget("x", &stubRenderer{}, nil)
	b := NewRenderWidget("x", &stubRenderer{}, nil)
	c := NewRenderWidget("y", &stubRenderer{}, nil)
	if !a.Eq(b) {
		t.Fatalf("same source: want equal")
	}
	if a.Eq(c) {
		t.Fatalf("different source: want unequal")
	}
	if a.Eq(NewImageWidget("x", 0, false, nil)) {
		t.Fatalf("different widget kinds: want unequal")
	}
}

func TestImageWidget_EqComparesInputs(t *testing.T) {
	base := NewImageWidget("![[a.png]]", 3, false, nil)
	cases := []struct {
		name  string
		other Widget
		want  bool
	}{
		{name: "same", other: NewImageWidget("![[a.png]]", 3, false, stubLoader{}), want: true},
		{name: "source", other: NewImageWidget("![[b.png]]", 3, false, nil), want: false},
		{name: "anchor", other: NewImageWidget("![[a.png]]", 4, false, nil), want: false},
		{name: "syntax flag", other: NewImageWidget("![[a.png]]", 3, true, nil), want: false},
	}
	for _, tc := range cases {
		if got := base.Eq(tc.other); got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestImageWidget_DOMLoaded(t *testing.T) {
	w := NewImageWidget("![[pics/a.png]]", 12, false, stubLoader{"pics/a.png": nil})
	got := renderNode(t, w.DOM())
	want := `<div class="cm-markdoc-image" data-image-source="![[pics/a.png]]" data-node-from="12" style="cursor: text">` +
		`<img src="pics/a.png" alt="pics/a.png" style="max-width: 100%; height: auto; cursor: text"/></div>`
	if got != want {
		t.Fatalf("dom:\ngot  %s\nwant %s", got, want)
	}
}

func TestImageWidget_DOMNotFound(t *testing.T) {
	w := NewImageWidget("![[gone.png]]", 0, false, stubLoader{})
	got := renderNode(t, w.DOM())
	if !strings.Contains(got, `<div class="cm-markdoc-image-error">&#34;gone.png&#34; could not be found.</div>`) {
		t.Fatalf("missing error message: %s", got)
	}
	if !strings.Contains(got, "display: none") {
		t.Fatalf("failed image must be hidden: %s", got)
	}
}

func TestImageWidget_NoTarget(t *testing.T) {
	w := NewImageWidget("![[]]", 0, false, nil)
	if w.Path() != "" {
		t.Fatalf("path: got %q, want empty", w.Path())
	}
	if w.Load() == nil {
		t.Fatalf("load without target: want error")
	}
	if w.DOM().FirstChild != nil {
		t.Fatalf("container without target must be empty")
	}
}

func TestFileImageLoader(t *testing.T) {
	dir := t.TempDir()
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	if err := os.WriteFile(filepath.Join(dir, "a.png"), png, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("plain text"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	l := FileImageLoader{Root: dir}
	if err := l.Load("a.png"); err != nil {
		t.Fatalf("png: got %v, want nil", err)
	}
	if err := l.Load("notes.txt"); err == nil {
		t.Fatalf("text file: want error")
	}
	if err := l.Load("missing.png"); err == nil {
		t.Fatalf("missing file: want error")
	}
	if err := l.Load("https://example.com/x.png"); err != nil {
		t.Fatalf("remote target: got %v, want nil", err)
	}
}
