package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text   lipgloss.Style
	Cursor lipgloss.Style

	// Widget frames rendered blocks.
	Widget lipgloss.Style

	Image      lipgloss.Style
	ImageError lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:   lipgloss.NewStyle(),
		Cursor: lipgloss.NewStyle().Reverse(true),
		Widget: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Image:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		ImageError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Italic(true),
	}
}
