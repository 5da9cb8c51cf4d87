// Package markup is the markup-to-HTML pipeline behind rendered widgets:
// parse (goldmark with the Markdoc grammar) → transform (node and tag
// schemas) → HTML serialization (golang.org/x/net/html).
package markup
