package editor

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/livemark/preview"
)

// Config configures the editor Model.
type Config struct {
	// Text is the document shown. Documents are read-only.
	Text string
	// Cursor is the initial cursor offset.
	Cursor int

	Style  Style
	KeyMap KeyMap

	// Preview configures the grammar, render schemas and image loading.
	Preview preview.Config

	// Logger is also handed to the preview engine when Preview.Logger is nil.
	Logger *zap.Logger
}
