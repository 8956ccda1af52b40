package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/logspan/internal/timeval"
	"github.com/javiermolinar/logspan/internal/tui/theme"
	"github.com/javiermolinar/logspan/internal/tui/timesplit"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg lipgloss.Color

	AppStyle    lipgloss.Style
	TitleStyle  lipgloss.Style
	DateStyle   lipgloss.Style
	WindowStyle lipgloss.Style
	StatusStyle lipgloss.Style
	WarnStyle   lipgloss.Style

	Controls [2]timesplit.Styles
	Help     help.Styles
}

// NewStyles creates a Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	s := &Styles{colorBg: p.Bg}

	s.AppStyle = lipgloss.NewStyle().
		Padding(1, 2)

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)

	s.DateStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		PaddingLeft(1)

	s.WindowStyle = lipgloss.NewStyle().
		Foreground(p.Fg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted)

	s.WarnStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true)

	s.Controls[timeval.Start] = timesplit.NewStyles(p, timeval.Start)
	s.Controls[timeval.End] = timesplit.NewStyles(p, timeval.End)

	s.Help = help.New().Styles
	s.Help.ShortKey = lipgloss.NewStyle().Foreground(p.Accent)
	s.Help.ShortDesc = lipgloss.NewStyle().Foreground(p.FgMuted)
	s.Help.ShortSeparator = lipgloss.NewStyle().Foreground(p.FgMuted)
	s.Help.FullKey = s.Help.ShortKey
	s.Help.FullDesc = s.Help.ShortDesc
	s.Help.FullSeparator = s.Help.ShortSeparator

	return s
}
