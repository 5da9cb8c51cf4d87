package editor

import (
	"strings"
)

func (m *Model) renderContent() string {
	if m.state.Doc == nil {
		return ""
	}
	text := m.state.Doc.Text()
	head := m.state.Selection.Head
	cursorRow := -1
	if m.focused {
		if i, ok := m.layout.rowOf(head); ok {
			cursorRow = i
		}
	}

	out := make([]string, 0, len(m.layout.rows))
	for i, r := range m.layout.rows {
		if r.kind != rowText {
			out = append(out, r.text)
			continue
		}
		line := text[r.from:r.to]
		if i != cursorRow {
			out = append(out, renderText(m.cfg.Style, line))
			continue
		}
		out = append(out, renderCursorLine(m.cfg.Style, line, head-r.from))
	}
	return strings.Join(out, "\n")
}

func renderText(st Style, s string) string {
	if s == "" {
		return ""
	}
	return st.Text.Render(s)
}

// renderCursorLine renders line with the cursor on the cluster at byte col.
// A cursor at end of line is drawn as a one-cell space.
func renderCursorLine(st Style, line string, col int) string {
	at := clusterAt(line, col)
	after := ""
	if at == "" {
		at = " "
	} else {
		after = line[col+len(at):]
	}
	var sb strings.Builder
	sb.WriteString(renderText(st, line[:col]))
	sb.WriteString(st.Cursor.Render(at))
	sb.WriteString(renderText(st, after))
	return sb.String()
}
