// Package editor provides a Bubble Tea live-preview viewer backed by the
// preview engine.
//
// The package is responsible for laying decorations out as terminal rows,
// cursor movement through the block navigator, mouse presses through the
// event router, and rendering widgets as styled text boxes.
package editor
