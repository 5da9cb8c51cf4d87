package preview

import (
	"github.com/iw2rmb/livemark/document"
	"github.com/iw2rmb/livemark/syntax"
)

// MayReplace reports whether a node covering r may be visually replaced
// under the selection sel. Replacement is blocked when the selection lies
// within r or touches it at all, so the block being edited stays raw.
func MayReplace(r syntax.Range, sel document.Selection) bool {
	return sel.From() > r.To || sel.To() < r.From
}
