package editor

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/iw2rmb/livemark/preview"
)

// flattener turns widget DOM into display lines. Every line remembers the
// element its first text came from so presses can target it.
type flattener struct {
	lines   []string
	targets []*html.Node

	cur     strings.Builder
	owner   *html.Node
	prefix  string
	pending bool
}

func widgetLines(root *html.Node) ([]string, []*html.Node) {
	f := &flattener{}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		f.walk(c)
	}
	f.flush()
	if len(f.lines) == 0 {
		return []string{""}, []*html.Node{firstElement(root)}
	}
	return f.lines, f.targets
}

func (f *flattener) flush() {
	if !f.pending {
		return
	}
	f.lines = append(f.lines, f.prefix+f.cur.String())
	f.targets = append(f.targets, f.owner)
	f.cur.Reset()
	f.owner = nil
	f.pending = false
}

func (f *flattener) write(s string, owner *html.Node) {
	if !f.pending {
		f.owner = owner
		f.pending = true
	}
	f.cur.WriteString(s)
}

func (f *flattener) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		f.text(n)
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.DataAtom {
	case atom.Br:
		if !f.pending {
			f.write("", n.Parent)
		}
		f.flush()
		return
	case atom.Hr:
		f.flush()
		f.write("───", n)
		f.flush()
		return
	case atom.Img:
		src := attrVal(n, "src")
		f.write("[image: "+src+"]", n)
		return
	case atom.Td, atom.Th:
		if f.pending {
			f.write(" | ", n)
		}
		f.children(n)
		return
	}

	if !isBlockElement(n) {
		f.children(n)
		return
	}

	f.flush()
	prefix := f.prefix
	switch n.DataAtom {
	case atom.Blockquote:
		f.prefix += "│ "
	case atom.Li:
		f.prefix += "• "
	}
	f.children(n)
	f.flush()
	f.prefix = prefix
}

func (f *flattener) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		f.walk(c)
	}
}

func (f *flattener) text(n *html.Node) {
	pre := inPre(n)
	for i, p := range strings.Split(n.Data, "\n") {
		if i > 0 {
			if pre && !f.pending {
				f.write("", n.Parent)
			}
			f.flush()
		}
		if p == "" || (!pre && !f.pending && strings.TrimSpace(p) == "") {
			continue
		}
		f.write(p, n.Parent)
	}
}

func inPre(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.DataAtom == atom.Pre {
			return true
		}
	}
	return false
}

func isBlockElement(n *html.Node) bool {
	switch n.DataAtom {
	case atom.P, atom.Div, atom.Blockquote, atom.Pre, atom.Ul, atom.Ol, atom.Li,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Table, atom.Thead, atom.Tbody, atom.Tr,
		atom.Aside, atom.Section, atom.Article, atom.Header, atom.Footer, atom.Figure:
		return true
	}
	return false
}

func firstElement(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return n
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// imageLine describes an image widget in one line and the node a press on
// it should target.
func imageLine(w *preview.ImageWidget, root *html.Node, st Style) (string, *html.Node) {
	target := firstElement(root)
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && hasClassName(c, preview.ClassImageError) {
			return st.ImageError.Render(textOf(c)), target
		}
	}
	if w.Path() == "" {
		return st.ImageError.Render(w.Source()), target
	}
	return st.Image.Render("[image: " + w.Path() + "]"), target
}

func hasClassName(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrVal(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func textOf(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textOf(c))
	}
	return b.String()
}
