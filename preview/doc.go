// Package preview is the live-preview overlay engine.
//
// For every (syntax tree, selection) pair it computes the full set of
// decorations that render tables, blockquotes and Markdoc tags as widgets
// and insert image widgets after embed references, leaving the region under
// the cursor raw. It also remaps vertical cursor movement into rendered
// blocks and resolves clicks on rendered content back to text offsets.
//
// All computation is synchronous and total: nothing is cached between calls
// and no state survives a recomputation.
package preview
