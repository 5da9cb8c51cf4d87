package editor

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestRender_CursorCell(t *testing.T) {
	st := Style{Text: lipgloss.NewStyle(), Cursor: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)}
	cases := []struct {
		cursor int
		want   string
	}{
		{cursor: 0, want: " a b"},
		{cursor: 1, want: "a b "},
		{cursor: 2, want: "ab   "},
	}
	for _, tc := range cases {
		m := New(Config{Text: "ab", Cursor: tc.cursor, Style: st})
		if got := m.renderContent(); got != tc.want {
			t.Fatalf("cursor %d: got %q, want %q", tc.cursor, got, tc.want)
		}
	}
}

func TestRender_BlurHidesCursor(t *testing.T) {
	st := Style{Cursor: lipgloss.NewStyle().PaddingLeft(1)}
	m := New(Config{Text: "ab", Style: st}).Blur()
	if got := m.renderContent(); got != "ab" {
		t.Fatalf("blurred: got %q, want %q", got, "ab")
	}
}

func TestRender_CursorOnMultiRuneCluster(t *testing.T) {
	acute := "e\u0301"
	st := Style{Cursor: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)}
	m := New(Config{Text: "a" + acute + "b", Cursor: 1, Style: st})
	if got, want := m.renderContent(), "a "+acute+" b"; got != want {
		t.Fatalf("cluster cursor: got %q, want %q", got, want)
	}
}

func TestRender_WidgetBoxUsesStyle(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	st := Style{Widget: r.NewStyle().Border(lipgloss.NormalBorder())}
	m := New(Config{Text: quoteDoc, Style: st})
	if got := rowKinds(m.layout); got != "ttwwwtt" {
		t.Fatalf("row kinds: got %q, want %q", got, "ttwwwtt")
	}
	if got := m.layout.rows[3].text; !strings.Contains(got, "│ quoted") {
		t.Fatalf("boxed content row: got %q", got)
	}
	if m.layout.rows[3].target == nil || m.layout.rows[3].target.Data != "p" {
		t.Fatalf("boxed content row must target the paragraph, got %+v", m.layout.rows[3].target)
	}
}

func TestRender_ViewScrollsToCursor(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 20; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("x")
	}
	m := New(Config{Text: sb.String(), Cursor: 2 * 15})
	m = m.SetSize(5, 4)
	if m.viewport.YOffset != 12 {
		t.Fatalf("y offset: got %d, want 12", m.viewport.YOffset)
	}
}
