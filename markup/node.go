package markup

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"

	"github.com/iw2rmb/livemark/grammar"
	"github.com/iw2rmb/livemark/syntax"
)

// Node is the transform-stage tree. Type uses Markdoc node names
// ("document", "paragraph", "blockquote", "tag", "text", ...).
type Node struct {
	Type       string
	Tag        string // tag name when Type == "tag"
	Attributes []syntax.Attribute
	Content    string // literal text for "text", "code", "fence" and "html"
	Children   []*Node

	mark tagMark
}

type tagMark uint8

const (
	tagComplete tagMark = iota
	tagOpen
	tagClose
)

// Attr returns the value of the named attribute.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// TransformChildren transforms every child with cfg.
func (n *Node) TransformChildren(cfg Config) []Renderable {
	out := make([]Renderable, 0, len(n.Children))
	for _, c := range n.Children {
		if r := Transform(c, cfg); r != nil {
			out = append(out, r)
		}
	}
	return out
}

// convert reshapes a goldmark subtree into markup nodes.
func convert(n ast.Node, source []byte) []*Node {
	var out *Node
	switch v := n.(type) {
	case *ast.Document:
		out = &Node{Type: "document"}
	case *ast.Paragraph:
		out = &Node{Type: "paragraph"}
	case *ast.TextBlock:
		out = &Node{Type: "inline"}
	case *ast.Heading:
		out = &Node{Type: "heading", Attributes: []syntax.Attribute{{Key: "level", Value: strconv.Itoa(v.Level)}}}
	case *ast.Blockquote:
		out = &Node{Type: "blockquote"}
	case *ast.List:
		out = &Node{Type: "list", Attributes: []syntax.Attribute{{Key: "ordered", Value: strconv.FormatBool(v.IsOrdered())}}}
	case *ast.ListItem:
		out = &Node{Type: "item"}
	case *ast.ThematicBreak:
		return []*Node{{Type: "hr"}}
	case *ast.FencedCodeBlock:
		node := &Node{Type: "fence", Content: linesText(v, source)}
		if lang := v.Language(source); lang != nil {
			node.Attributes = []syntax.Attribute{{Key: "language", Value: string(lang)}}
		}
		return []*Node{node}
	case *ast.CodeBlock:
		return []*Node{{Type: "fence", Content: linesText(v, source)}}
	case *ast.HTMLBlock:
		return []*Node{{Type: "html", Content: linesText(v, source)}}
	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < v.Segments.Len(); i++ {
			seg := v.Segments.At(i)
			sb.Write(seg.Value(source))
		}
		return []*Node{{Type: "html", Content: sb.String()}}
	case *ast.Text:
		nodes := []*Node{{Type: "text", Content: string(v.Segment.Value(source))}}
		if v.HardLineBreak() {
			nodes = append(nodes, &Node{Type: "hardbreak"})
		} else if v.SoftLineBreak() {
			nodes = append(nodes, &Node{Type: "softbreak"})
		}
		return nodes
	case *ast.String:
		return []*Node{{Type: "text", Content: string(v.Value)}}
	case *ast.CodeSpan:
		return []*Node{{Type: "code", Content: inlineText(v, source)}}
	case *ast.Emphasis:
		if v.Level >= 2 {
			out = &Node{Type: "strong"}
		} else {
			out = &Node{Type: "em"}
		}
	case *ast.Link:
		out = &Node{Type: "link", Attributes: hrefAttrs(string(v.Destination), string(v.Title))}
	case *ast.AutoLink:
		url := string(v.URL(source))
		return []*Node{{
			Type:       "link",
			Attributes: hrefAttrs(url, ""),
			Children:   []*Node{{Type: "text", Content: string(v.Label(source))}},
		}}
	case *ast.Image:
		return []*Node{{Type: "image", Attributes: []syntax.Attribute{
			{Key: "src", Value: string(v.Destination)},
			{Key: "alt", Value: inlineText(v, source)},
		}}}
	case *grammar.Embed:
		return []*Node{{Type: "image", Attributes: []syntax.Attribute{
			{Key: "src", Value: v.Target},
			{Key: "alt", Value: v.Target},
		}}}
	case *grammar.Tag:
		return []*Node{tagNode(string(v.Segment.Value(source)))}
	case *extast.Table:
		return []*Node{convertTable(v, source)}
	default:
		out = &Node{Type: strings.ToLower(n.Kind().String())}
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out.Children = append(out.Children, convert(c, source)...)
	}
	out.Children = nest(out.Children)
	return []*Node{out}
}

func tagNode(text string) *Node {
	tag, ok := syntax.ParseTag(text)
	if !ok {
		return &Node{Type: "text", Content: text}
	}
	n := &Node{Type: "tag", Tag: tag.Name, Attributes: tag.Attributes()}
	switch {
	case tag.SelfClosing:
		n.mark = tagComplete
	case tag.Closing:
		n.mark = tagClose
	default:
		n.mark = tagOpen
	}
	return n
}

func convertTable(t *extast.Table, source []byte) *Node {
	table := &Node{Type: "table"}
	body := &Node{Type: "tbody"}
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		cellType := "td"
		if _, ok := row.(*extast.TableHeader); ok {
			cellType = "th"
		}
		tr := &Node{Type: "tr"}
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			td := &Node{Type: cellType}
			if c, ok := cell.(*extast.TableCell); ok && c.Alignment != extast.AlignNone {
				td.Attributes = []syntax.Attribute{{Key: "align", Value: c.Alignment.String()}}
			}
			for in := cell.FirstChild(); in != nil; in = in.NextSibling() {
				td.Children = append(td.Children, convert(in, source)...)
			}
			td.Children = nest(td.Children)
			tr.Children = append(tr.Children, td)
		}
		if cellType == "th" {
			table.Children = append(table.Children, &Node{Type: "thead", Children: []*Node{tr}})
			continue
		}
		body.Children = append(body.Children, tr)
	}
	if len(body.Children) > 0 {
		table.Children = append(table.Children, body)
	}
	return table
}

func hrefAttrs(href, title string) []syntax.Attribute {
	attrs := []syntax.Attribute{{Key: "href", Value: href}}
	if title != "" {
		attrs = append(attrs, syntax.Attribute{Key: "title", Value: title})
	}
	return attrs
}

func linesText(n ast.Node, source []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}

func inlineText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := c.(type) {
		case *ast.Text:
			sb.Write(v.Segment.Value(source))
		case *ast.String:
			sb.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
