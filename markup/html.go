package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DOM converts renderable output into detached HTML nodes.
func DOM(r Renderable) []*html.Node {
	switch v := r.(type) {
	case Text:
		return []*html.Node{{Type: html.TextNode, Data: string(v)}}
	case *Element:
		if v == nil {
			return nil
		}
		if v.Name == "" {
			var out []*html.Node
			for _, c := range v.Children {
				out = append(out, DOM(c)...)
			}
			return out
		}
		n := &html.Node{
			Type:     html.ElementNode,
			Data:     v.Name,
			DataAtom: atom.Lookup([]byte(v.Name)),
		}
		for _, a := range v.Attributes {
			n.Attr = append(n.Attr, html.Attribute{Key: a.Key, Val: a.Value})
		}
		for _, c := range v.Children {
			for _, cn := range DOM(c) {
				n.AppendChild(cn)
			}
		}
		return []*html.Node{n}
	default:
		return nil
	}
}

// RenderHTML serializes renderable output.
func RenderHTML(r Renderable) (string, error) {
	var sb strings.Builder
	for _, n := range DOM(r) {
		if err := html.Render(&sb, n); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}
