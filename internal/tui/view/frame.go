package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Frame centers content in a width x height area painted with bg. Every
// line of the result is exactly width cells wide. A non-positive size
// returns content untouched.
func Frame(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(bg))

	fill := lipgloss.NewStyle().Background(bg)
	lines := strings.Split(placed, "\n")
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		if gap := width - lipgloss.Width(line); gap > 0 {
			line += fill.Render(strings.Repeat(" ", gap))
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}
