package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/logspan/internal/timeval"
	"github.com/javiermolinar/logspan/internal/tui/commands"
	"github.com/javiermolinar/logspan/internal/tui/timesplit"
)

type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	StartBack  key.Binding
	StartFwd   key.Binding
	EndBack    key.Binding
	EndFwd     key.Binding
	Paste      key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	ToggleHelp key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab/→", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab/←", "prev field"),
		),
		StartBack: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "start -1d"),
		),
		StartFwd: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "start +1d"),
		),
		EndBack: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "end -1d"),
		),
		EndFwd: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "end +1d"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste timestamp"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Paste, k.Confirm, k.Cancel, k.ToggleHelp}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.StartBack, k.StartFwd, k.EndBack, k.EndFwd},
		{k.Paste, k.Confirm, k.Cancel, k.ToggleHelp},
	}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Pastes never reach a field, whichever one has focus.
	if msg.Paste {
		return m.applyPaste("bracketed", string(msg.Runes))
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.cancelled = true
		m = m.unmount()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		return m.confirm()
	case key.Matches(msg, m.keys.Paste):
		return m, commands.ReadClipboard()
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1), nil
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1), nil
	case key.Matches(msg, m.keys.StartBack):
		return m.shiftDates(timeval.Start, -1)
	case key.Matches(msg, m.keys.StartFwd):
		return m.shiftDates(timeval.Start, 1)
	case key.Matches(msg, m.keys.EndBack):
		return m.shiftDates(timeval.End, -1)
	case key.Matches(msg, m.keys.EndFwd):
		return m.shiftDates(timeval.End, 1)
	case key.Matches(msg, m.keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m.editField(msg)
}

// editField forwards a key to the focused control.
func (m Model) editField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctrl, outcome := m.controls[m.active].HandleKey(msg)
	m.controls[m.active] = ctrl

	switch outcome {
	case timesplit.Accepted:
		LogFieldEdit(m.active, ctrl.Field(), ctrl.Value())
	case timesplit.Rejected:
		LogFieldReject(m.active, ctrl.Field(), msg.String())
	}
	return m, nil
}
