package markup

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/iw2rmb/livemark/grammar"
	"github.com/iw2rmb/livemark/syntax"
)

// Renderable is transform output: *Element or Text.
type Renderable interface {
	isRenderable()
}

// Element is an HTML element. An Element with an empty Name is a fragment
// that renders its children only.
type Element struct {
	Name       string
	Attributes []syntax.Attribute
	Children   []Renderable
}

// Text is literal text content.
type Text string

func (*Element) isRenderable() {}
func (Text) isRenderable()     {}

// Transform turns n into renderable output using cfg.
func Transform(n *Node, cfg Config) Renderable {
	switch n.Type {
	case "text":
		return Text(n.Content)
	case "tag":
		return transformTag(n, cfg)
	}
	if s, ok := cfg.Nodes[n.Type]; ok {
		if s.Transform != nil {
			return s.Transform(n, cfg)
		}
		if s.Render != "" {
			return &Element{Name: s.Render, Children: n.TransformChildren(cfg)}
		}
	}
	return builtin(n, cfg)
}

func transformTag(n *Node, cfg Config) Renderable {
	if n.mark == tagClose {
		return nil
	}
	s, ok := cfg.Tags[n.Tag]
	switch {
	case ok && s.Transform != nil:
		return s.Transform(n, cfg)
	case ok && s.Render != "":
		return &Element{Name: s.Render, Attributes: n.Attributes, Children: n.TransformChildren(cfg)}
	default:
		return &Element{Children: n.TransformChildren(cfg)}
	}
}

func builtin(n *Node, cfg Config) Renderable {
	el := func(name string, attrs ...syntax.Attribute) Renderable {
		return &Element{Name: name, Attributes: attrs, Children: n.TransformChildren(cfg)}
	}
	switch n.Type {
	case "paragraph":
		return el("p")
	case "blockquote":
		return el("blockquote")
	case "softbreak":
		return Text("\n")
	case "hardbreak":
		return &Element{Name: "br"}
	case "heading":
		level, _ := n.Attr("level")
		return el("h" + level)
	case "list":
		if ordered, _ := n.Attr("ordered"); ordered == "true" {
			return el("ol")
		}
		return el("ul")
	case "item":
		return el("li")
	case "em", "strong", "table", "thead", "tbody", "tr":
		return el(n.Type)
	case "th", "td":
		if align, ok := n.Attr("align"); ok {
			return el(n.Type, syntax.Attribute{Key: "style", Value: "text-align: " + align})
		}
		return el(n.Type)
	case "code":
		return &Element{Name: "code", Children: []Renderable{Text(n.Content)}}
	case "fence":
		code := &Element{Name: "code", Children: []Renderable{Text(n.Content)}}
		if lang, ok := n.Attr("language"); ok {
			code.Attributes = []syntax.Attribute{{Key: "class", Value: "language-" + lang}}
		}
		return &Element{Name: "pre", Children: []Renderable{code}}
	case "link":
		return el("a", n.Attributes...)
	case "image":
		return &Element{Name: "img", Attributes: n.Attributes}
	case "hr":
		return &Element{Name: "hr"}
	case "html":
		return Text(n.Content)
	default:
		return &Element{Children: n.TransformChildren(cfg)}
	}
}

// Transformer runs the full pipeline with one merged configuration.
type Transformer struct {
	md  goldmark.Markdown
	cfg Config
}

// New returns a Transformer whose configuration is cfg merged over
// DefaultConfig. Extensions extend the parse stage.
func New(cfg Config, extensions ...goldmark.Extender) *Transformer {
	exts := append([]goldmark.Extender{grammar.Markdoc, extension.Table}, extensions...)
	return &Transformer{
		md:  goldmark.New(goldmark.WithExtensions(exts...)),
		cfg: Merge(DefaultConfig(), cfg),
	}
}

func (t *Transformer) Config() Config { return t.cfg }

// Parse builds the transform-stage tree of source.
func (t *Transformer) Parse(source string) *Node {
	src := []byte(source)
	root := t.md.Parser().Parse(text.NewReader(src))
	nodes := convert(root, src)
	if len(nodes) == 0 {
		return &Node{Type: "document"}
	}
	return nodes[0]
}

// Transform parses and transforms source.
func (t *Transformer) Transform(source string) Renderable {
	return Transform(t.Parse(source), t.cfg)
}

// Render runs parse, transform and HTML serialization over source.
func (t *Transformer) Render(source string) (string, error) {
	out, err := RenderHTML(t.Transform(source))
	if err != nil {
		return "", fmt.Errorf("render markup: %w", err)
	}
	return out, nil
}
