package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Boundary colors match the start and end controls of the picker.
var (
	colorStart  = color.New(color.FgCyan, color.Bold)
	colorEnd    = color.New(color.FgGreen, color.Bold)
	colorHeader = color.New(color.Bold)
	colorMuted  = color.New(color.FgWhite, color.Faint)
)

// stdoutWidth returns the width of the terminal on stdout, or 0 when stdout
// is not a terminal.
func stdoutWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// DisableColor turns off ANSI colors for all CLI output.
func DisableColor() {
	color.NoColor = true
}

func formatStart(s string) string  { return colorStart.Sprint(s) }
func formatEnd(s string) string    { return colorEnd.Sprint(s) }
func formatHeader(s string) string { return colorHeader.Sprint(s) }
func formatMuted(s string) string  { return colorMuted.Sprint(s) }
