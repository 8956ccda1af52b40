package timesplit

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/logspan/internal/timeval"
	"github.com/javiermolinar/logspan/internal/tui/theme"
)

// labelWidth fits the longest field label.
const labelWidth = 7

// Styles holds the lipgloss styles of one control.
type Styles struct {
	Title        lipgloss.Style
	Field        lipgloss.Style
	FocusedField lipgloss.Style
	Separator    lipgloss.Style
	Label        lipgloss.Style
	Box          lipgloss.Style
	FocusedBox   lipgloss.Style
}

// NewStyles derives the styles of a control for role from a palette.
func NewStyles(p *theme.Palette, role timeval.Role) Styles {
	roleColor, border := p.Start, p.StartMuted
	if role == timeval.End {
		roleColor, border = p.End, p.EndMuted
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	return Styles{
		Title:        lipgloss.NewStyle().Foreground(roleColor).Bold(true),
		Field:        lipgloss.NewStyle().Foreground(p.Fg),
		FocusedField: lipgloss.NewStyle().Foreground(p.TextOnSelection).Background(p.BgSelection).Bold(true),
		Separator:    lipgloss.NewStyle().Foreground(p.FgMuted),
		Label:        lipgloss.NewStyle().Foreground(p.FgMuted).Italic(true),
		Box:          box,
		FocusedBox:   box.BorderForeground(p.FocusRing),
	}
}

func (m *Model) applyStyles() {
	for i := range m.inputs {
		m.inputs[i].TextStyle = m.styles.Field
		m.inputs[i].PlaceholderStyle = m.styles.Separator
	}
}

// View renders the control: a title, the three fields and, when focused, the
// label of the focused field.
func (m Model) View() string {
	parts := make([]string, 0, 5)
	for i, f := range timeval.Fields {
		if i > 0 {
			parts = append(parts, m.styles.Separator.Render(":"))
		}
		parts = append(parts, m.fieldView(f))
	}
	clock := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	label := ""
	if m.focused {
		label = m.field.Label()
	}
	label = runewidth.FillRight(label, labelWidth)

	title := m.styles.Title.Render(strings.ToUpper(m.role.String()))
	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		clock,
		m.styles.Label.Render(label),
	)

	if m.focused {
		return m.styles.FocusedBox.Render(body)
	}
	return m.styles.Box.Render(body)
}

func (m Model) fieldView(f timeval.Field) string {
	if m.focused && m.field == f {
		in := m.inputs[f]
		in.TextStyle = m.styles.FocusedField
		return in.View()
	}
	text := m.value.Get(f)
	if text == "" {
		return m.styles.Separator.Render(m.inputs[f].Placeholder)
	}
	return m.styles.Field.Render(runewidth.FillLeft(text, 2))
}
