package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Line is one styled row of the footer. Multi-line text is allowed.
type Line struct {
	Text  string
	Style lipgloss.Style
}

// Footer stacks lines below the controls, each truncated to Width.
type Footer struct {
	Width int
	Lines []Line
}

// Render joins the footer lines. Empty lines keep their row so the layout
// does not jump when a status message appears or clears.
func (f Footer) Render() string {
	rows := make([]string, len(f.Lines))
	for i, l := range f.Lines {
		rows[i] = f.line(l)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (f Footer) line(l Line) string {
	text := l.Text
	if text == "" {
		text = " "
	}
	if f.Width <= 0 {
		return l.Style.Render(text)
	}
	inner := max(f.Width-l.Style.GetHorizontalFrameSize(), 0)
	if inner > 0 {
		rows := strings.Split(text, "\n")
		for i, r := range rows {
			rows[i] = ansi.Truncate(r, inner, "…")
		}
		text = strings.Join(rows, "\n")
	}
	return l.Style.Width(inner).Render(text)
}
