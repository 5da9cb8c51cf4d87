package preview

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/livemark/syntax"
)

// TagSpan is a resolved open…close (or self-closing) tag range.
// OpenFrom < CloseTo always holds.
type TagSpan struct {
	OpenFrom int
	CloseTo  int
}

func (s TagSpan) Range() syntax.Range {
	return syntax.Range{From: s.OpenFrom, To: s.CloseTo}
}

// tagMatcher pairs tag nodes fed in document order.
type tagMatcher struct {
	stack []int
	spans []TagSpan
	log   *zap.Logger
}

// add classifies one tag node by its literal text.
func (m *tagMatcher) add(n syntax.Node, text string) {
	tag, ok := syntax.ParseTag(text)
	switch {
	case !ok:
		m.log.Debug("tag text does not match tag pattern", zap.Int("offset", n.From), zap.String("source", text))
	case tag.SelfClosing:
		m.push(TagSpan{OpenFrom: n.From, CloseTo: n.To})
	case tag.Closing:
		if len(m.stack) == 0 {
			m.log.Debug("unmatched closing tag", zap.Int("offset", n.From), zap.String("tag", tag.Name))
			return
		}
		open := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		m.push(TagSpan{OpenFrom: open, CloseTo: n.To})
	default:
		m.stack = append(m.stack, n.From)
	}
}

func (m *tagMatcher) push(s TagSpan) {
	if s.OpenFrom < s.CloseTo {
		m.spans = append(m.spans, s)
	}
}

// MatchTags pairs tag nodes (in document order) into spans, innermost first.
// text returns the literal source of a node.
//
// Self-closing tags span themselves, closing tags pop the most recent open
// tag, closing tags with nothing open and text not matching the tag pattern
// are ignored.
func MatchTags(nodes []syntax.Node, text func(syntax.Node) string) []TagSpan {
	m := tagMatcher{log: zap.NewNop()}
	for _, n := range nodes {
		m.add(n, text(n))
	}
	return m.spans
}
