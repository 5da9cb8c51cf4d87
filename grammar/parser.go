package grammar

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/iw2rmb/livemark/syntax"
)

// Options configures the grammar.
type Options struct {
	// Extensions are merged into the base grammar after the Markdoc tag and
	// embed parsers and the table extension.
	Extensions []goldmark.Extender
}

// Parser turns document text into syntax trees.
type Parser struct {
	md goldmark.Markdown
}

func New(opt Options) *Parser {
	exts := append([]goldmark.Extender{Markdoc, extension.Table}, opt.Extensions...)
	return &Parser{md: goldmark.New(goldmark.WithExtensions(exts...))}
}

// Markdown exposes the configured goldmark instance.
func (p *Parser) Markdown() goldmark.Markdown { return p.md }

// Parse builds the syntax tree of src. Parsing is total: malformed markup
// yields plain nodes, never an error.
func (p *Parser) Parse(src string) *syntax.Tree {
	source := []byte(src)
	root := p.md.Parser().Parse(text.NewReader(source))

	b := treeBuilder{source: source}
	b.visit(root)

	nodes := make([]syntax.Node, 0, len(b.nodes))
	for _, n := range b.nodes {
		if n.ok {
			nodes = append(nodes, n.node)
		}
	}
	return syntax.NewTree(len(source), nodes...)
}

// KindOf maps a goldmark node to the syntax vocabulary.
func KindOf(n ast.Node) syntax.Kind {
	switch n.Kind() {
	case KindTag:
		return syntax.KindTag
	case KindEmbed:
		return syntax.KindImage
	case ast.KindImage:
		// Plain markdown images are not embeds.
		return "MarkdownImage"
	case ast.KindBlockquote:
		return syntax.KindBlockquote
	case extast.KindTable:
		return syntax.KindTable
	default:
		return syntax.Kind(n.Kind().String())
	}
}

type pending struct {
	node syntax.Node
	ok   bool
}

type treeBuilder struct {
	source []byte
	nodes  []pending
}

// visit records n in pre-order and returns its extent.
func (b *treeBuilder) visit(n ast.Node) (from, to int, ok bool) {
	idx := len(b.nodes)
	b.nodes = append(b.nodes, pending{})

	from, to = -1, -1
	add := func(s, e int) {
		if e < s {
			return
		}
		if from < 0 || s < from {
			from = s
		}
		if e > to {
			to = e
		}
	}

	switch v := n.(type) {
	case *ast.Document:
		add(0, len(b.source))
	case *ast.Text:
		add(v.Segment.Start, v.Segment.Stop)
	case *Tag:
		add(v.Segment.Start, v.Segment.Stop)
	case *Embed:
		add(v.Segment.Start, v.Segment.Stop)
	case *ast.RawHTML:
		for i := 0; i < v.Segments.Len(); i++ {
			s := v.Segments.At(i)
			add(s.Start, s.Stop)
		}
	}
	if n.Type() == ast.TypeBlock {
		if lines := n.Lines(); lines != nil {
			for i := 0; i < lines.Len(); i++ {
				s := lines.At(i)
				add(s.Start, s.Stop)
			}
		}
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if cf, ct, cok := b.visit(c); cok {
			add(cf, ct)
		}
	}

	if from < 0 {
		return 0, 0, false
	}
	if n.Type() == ast.TypeBlock {
		from, to = b.lineStart(from), b.lineEnd(to)
	}
	b.nodes[idx] = pending{
		node: syntax.Node{Kind: KindOf(n), Range: syntax.Range{From: from, To: to}},
		ok:   true,
	}
	return from, to, true
}

func (b *treeBuilder) lineStart(off int) int {
	if off > len(b.source) {
		off = len(b.source)
	}
	return bytes.LastIndexByte(b.source[:off], '\n') + 1
}

// lineEnd returns the end of the line holding the last byte before off,
// excluding the terminator.
func (b *treeBuilder) lineEnd(off int) int {
	if off <= 0 {
		return 0
	}
	if off > len(b.source) {
		off = len(b.source)
	}
	i := bytes.IndexByte(b.source[off-1:], '\n')
	if i < 0 {
		return len(b.source)
	}
	return off - 1 + i
}
