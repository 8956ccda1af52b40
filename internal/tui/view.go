package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/logspan/internal/timeval"
	"github.com/javiermolinar/logspan/internal/tui/view"
)

const windowLayout = "2006-01-02 15:04:05"

// View renders the picker.
func (m Model) View() string {
	if m.result != nil || m.cancelled {
		return ""
	}
	return m.renderAppContent()
}

func (m Model) renderAppContent() string {
	today := m.now().In(m.loc)

	cols := make([]string, 0, 3)
	for i, role := range roles {
		if i > 0 {
			cols = append(cols, "  ")
		}
		day := m.dates.Start
		if role == timeval.End {
			day = m.dates.End
		}
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Left,
			m.styles.DateStyle.Render(view.DateLabel(day, today)),
			m.controls[role].View(),
		))
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	statusStyle := m.styles.StatusStyle
	if m.statusWarn {
		statusStyle = m.styles.WarnStyle
	}

	innerW := 0
	if m.width > 0 {
		innerW = m.width - m.styles.AppStyle.GetHorizontalFrameSize()
	}
	footer := view.Footer{
		Width: innerW,
		Lines: []view.Line{
			{Text: m.windowLine(), Style: m.styles.WindowStyle},
			{Text: m.statusMsg, Style: statusStyle},
			{Text: m.help.View(m.keys)},
		},
	}.Render()

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.TitleStyle.Render("logspan"),
		"",
		controls,
		"",
		footer,
	)
	return view.Frame(m.styles.AppStyle.Render(content), m.width, m.height, m.styles.colorBg)
}

func (m Model) windowLine() string {
	w := m.Window()
	return fmt.Sprintf("%s → %s  %s (%s)",
		w.Start.Format(windowLayout),
		w.End.Format(windowLayout),
		w.Start.Format("MST"),
		view.FormatDuration(w.Duration()),
	)
}
