package syntax

// Kind names a node type of the markup grammar.
//
// The preview engine only special-cases the kinds declared below; every other
// grammar kind is treated as plain.
type Kind string

const (
	KindDocument   Kind = "Document"
	KindParagraph  Kind = "Paragraph"
	KindBlockquote Kind = "Blockquote"
	KindTable      Kind = "Table"
	KindTag        Kind = "Tag"
	KindImage      Kind = "Image"
)

func (k Kind) String() string { return string(k) }

type Range struct {
	From int
	To   int
}

// Covers reports whether r lies within the receiver (inclusive bounds).
func (rg Range) Covers(r Range) bool {
	return r.From >= rg.From && r.To <= rg.To
}

// Contains reports whether off lies within [From, To].
func (rg Range) Contains(off int) bool {
	return off >= rg.From && off <= rg.To
}

func (rg Range) Len() int { return rg.To - rg.From }

// Node is a typed range of the document.
type Node struct {
	Kind Kind
	Range
}
