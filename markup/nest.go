package markup

import "strings"

// nest pairs open/close tag markers within one child list, LIFO. Unmatched
// markers stay in place so an enclosing list can still pair them; whatever
// is left unpaired renders as an empty tag (open) or nothing (close). Paragraphs holding nothing but tags and line breaks dissolve into
// those tags first, so block tags spanning several paragraphs pair up.
func nest(children []*Node) []*Node {
	if !hasTags(children) {
		return children
	}

	flat := make([]*Node, 0, len(children))
	for _, c := range children {
		if c.Type == "paragraph" && tagsOnly(c.Children) {
			for _, cc := range c.Children {
				if cc.Type == "tag" {
					flat = append(flat, hoist(cc))
				}
			}
			continue
		}
		flat = append(flat, c)
	}

	out := make([]*Node, 0, len(flat))
	var stack []int
	for _, c := range flat {
		if c.Type != "tag" {
			out = append(out, c)
			continue
		}
		switch c.mark {
		case tagOpen:
			stack = append(stack, len(out))
			out = append(out, c)
		case tagClose:
			if len(stack) == 0 {
				out = append(out, c)
				continue
			}
			at := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			open := out[at]
			open.Children = append(open.Children, trimBreaks(out[at+1:])...)
			open.mark = tagComplete
			out = out[:at+1]
		default:
			out = append(out, c)
		}
	}
	return out
}

// hoist wraps the inline children of a complete block tag in a paragraph.
func hoist(tag *Node) *Node {
	if tag.mark != tagComplete || len(tag.Children) == 0 || !allInline(tag.Children) {
		return tag
	}
	tag.Children = []*Node{{Type: "paragraph", Children: trimBreaks(tag.Children)}}
	return tag
}

func hasTags(nodes []*Node) bool {
	for _, n := range nodes {
		if n.Type == "tag" {
			return true
		}
		if n.Type == "paragraph" && hasTags(n.Children) {
			return true
		}
	}
	return false
}

func tagsOnly(nodes []*Node) bool {
	tags := 0
	for _, n := range nodes {
		switch {
		case n.Type == "tag":
			tags++
		case isBlank(n):
		default:
			return false
		}
	}
	return tags > 0
}

func allInline(nodes []*Node) bool {
	for _, n := range nodes {
		switch n.Type {
		case "paragraph", "blockquote", "list", "table", "fence", "heading", "hr":
			return false
		}
	}
	return true
}

func isBreak(n *Node) bool {
	return n.Type == "softbreak" || n.Type == "hardbreak"
}

func isBlank(n *Node) bool {
	return isBreak(n) || (n.Type == "text" && strings.TrimSpace(n.Content) == "")
}

// trimBreaks drops leading and trailing line breaks and blank text.
func trimBreaks(nodes []*Node) []*Node {
	for len(nodes) > 0 && isBlank(nodes[0]) {
		nodes = nodes[1:]
	}
	for len(nodes) > 0 && isBlank(nodes[len(nodes)-1]) {
		nodes = nodes[:len(nodes)-1]
	}
	return nodes
}
