package grammar

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var (
	KindTag   = ast.NewNodeKind("MarkdocTag")
	KindEmbed = ast.NewNodeKind("MarkdocImage")
)

// Tag is an inline `{% ... %}` directive. Its text may or may not match the
// tag pattern; consumers decide.
type Tag struct {
	ast.BaseInline
	Segment text.Segment
}

func (n *Tag) Kind() ast.NodeKind { return KindTag }

func (n *Tag) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Text": string(n.Segment.Value(source))}, nil)
}

// Embed is an inline `![[target]]` reference.
type Embed struct {
	ast.BaseInline
	Segment text.Segment
	Target  string
}

func (n *Embed) Kind() ast.NodeKind { return KindEmbed }

func (n *Embed) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Target": n.Target}, nil)
}

var (
	tagOpen    = []byte("{%")
	tagClose   = []byte("%}")
	embedOpen  = []byte("![[")
	embedClose = []byte("]]")
)

type tagParser struct{}

func (tagParser) Trigger() []byte { return []byte{'{'} }

func (tagParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, seg := block.PeekLine()
	if !bytes.HasPrefix(line, tagOpen) {
		return nil
	}
	end := bytes.Index(line[len(tagOpen):], tagClose)
	if end < 0 {
		return nil
	}
	n := len(tagOpen) + end + len(tagClose)
	block.Advance(n)
	return &Tag{Segment: text.NewSegment(seg.Start, seg.Start+n)}
}

type embedParser struct{}

func (embedParser) Trigger() []byte { return []byte{'!'} }

func (embedParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, seg := block.PeekLine()
	if !bytes.HasPrefix(line, embedOpen) {
		return nil
	}
	end := bytes.Index(line[len(embedOpen):], embedClose)
	if end <= 0 {
		return nil
	}
	target := line[len(embedOpen) : len(embedOpen)+end]
	if bytes.ContainsAny(target, "[]") {
		return nil
	}
	n := len(embedOpen) + end + len(embedClose)
	block.Advance(n)
	return &Embed{
		Segment: text.NewSegment(seg.Start, seg.Start+n),
		Target:  string(target),
	}
}

type markdoc struct{}

// Markdoc adds tag directives and embeds to a goldmark parser.
//
// Both parsers run ahead of goldmark's link parser so `![[...]]` never reads
// as a link.
var Markdoc goldmark.Extender = markdoc{}

func (markdoc) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(tagParser{}, 90),
		util.Prioritized(embedParser{}, 95),
	))
}
