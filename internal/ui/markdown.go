package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/fatih/color"
)

// renderMarkdown renders md for the terminal. A zero width means stdout is
// not a terminal, so the output is wrapped at 80 columns and left unstyled.
func renderMarkdown(md string, width int) (string, error) {
	style := styles.DarkStyle
	if width <= 0 || color.NoColor {
		style = styles.NoTTYStyle
	}
	if width <= 0 {
		width = 80
	}

	// WithAutoStyle queries the terminal background and can block.
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}
