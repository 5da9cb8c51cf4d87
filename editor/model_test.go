package editor

import (
	"testing"

	"github.com/iw2rmb/livemark/document"
)

func TestNew_DefaultsKeyMap(t *testing.T) {
	m := New(Config{Text: "x"})
	if len(m.cfg.KeyMap.Up.Keys()) == 0 {
		t.Fatalf("zero key map must be replaced by defaults")
	}
}

func TestNew_ClampsCursor(t *testing.T) {
	m := New(Config{Text: "abc", Cursor: 99})
	if got := m.Cursor(); got != 3 {
		t.Fatalf("cursor: got %d, want 3", got)
	}
}

func TestSetCursor_RecomputesDecorations(t *testing.T) {
	m := New(Config{Text: quoteDoc})
	if n := len(m.Decorations().Replaces()); n != 1 {
		t.Fatalf("replaces at start: got %d, want 1", n)
	}
	m = m.SetCursor(10)
	if n := len(m.Decorations().Replaces()); n != 0 {
		t.Fatalf("replaces with cursor in block: got %d, want 0", n)
	}
	if got := m.State().Selection; got != document.Cursor(10) {
		t.Fatalf("selection: got %+v, want cursor at 10", got)
	}
}

func TestFocusBlur(t *testing.T) {
	m := New(Config{Text: "x"})
	if !m.Focused() {
		t.Fatalf("new model must be focused")
	}
	m = m.Blur()
	if m.Focused() {
		t.Fatalf("blurred model reports focus")
	}
	if !m.Focus().Focused() {
		t.Fatalf("focus did not stick")
	}
}
