// Package grammar parses Markdoc-flavoured markdown into a syntax.Tree.
//
// It is a goldmark parser with two inline additions: tag directives
// (`{% name attrs %}`, `{% /name %}`, `{% name /%}`) and embeds (`![[path]]`).
// Tables come from goldmark's GFM table extension.
package grammar
