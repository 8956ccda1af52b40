package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/logspan/internal/timeval"
	"github.com/javiermolinar/logspan/internal/tui/commands"
	"github.com/javiermolinar/logspan/internal/tui/timesplit"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case commands.ClipboardMsg:
		if msg.Err != nil {
			LogPasteWarn("clipboard", msg.Err)
			return m.setStatus("Clipboard unavailable", true)
		}
		return m.applyPaste("clipboard", msg.Text)

	case commands.StatusMsgCmd:
		return m.setStatus(msg.Msg, false)

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusWarn = false
		}
		return m, nil
	}

	return m, nil
}

func (m Model) setStatus(msg string, warn bool) (Model, tea.Cmd) {
	m.statusMsg = msg
	m.statusWarn = warn
	m.statusTime = m.now().Add(commands.StatusTTL())
	return m, commands.ClearStatusAfterTTL()
}

// applyPaste feeds text to every mounted control. Either every mounted
// control takes the paste or none does.
func (m Model) applyPaste(source, text string) (tea.Model, tea.Cmd) {
	next := m.controls
	applied := make(map[timeval.Role]timeval.TimeValue, len(roles))

	for _, role := range roles {
		ctrl, err := next[role].Ingest(text, m.loc)
		if errors.Is(err, timesplit.ErrNotMounted) {
			continue
		}
		if err != nil {
			LogPasteWarn(source, err)
			return m.setStatus("Pasted text is not a timestamp", true)
		}
		next[role] = ctrl
		applied[role] = ctrl.Value()
	}

	if len(applied) == 0 {
		LogPasteWarn(source, timesplit.ErrNotMounted)
		return m, nil
	}

	m.controls = next
	LogPaste(source, applied)
	return m.setStatus(fmt.Sprintf("Pasted %s - %s",
		m.controls[timeval.Start].Value(), m.controls[timeval.End].Value()), false)
}

// moveFocus blurs the focused field, reconciles its control and focuses the
// field delta steps away. Fields of both controls form one cycle.
func (m Model) moveFocus(delta int) Model {
	const n = len(roles) * len(timeval.Fields)

	cur := m.controls[m.active]
	pos := int(m.active)*len(timeval.Fields) + int(cur.Field())
	if cur.Focused() {
		m = m.blur()
	}

	pos = ((pos+delta)%n + n) % n
	m.active = timeval.Role(pos / len(timeval.Fields))
	m.controls[m.active] = m.controls[m.active].Focus(timeval.Field(pos % len(timeval.Fields)))
	return m
}

// blur removes focus from the active control and reconciles it.
func (m Model) blur() Model {
	ctrl := m.controls[m.active]
	LogFieldBlur(m.active, ctrl.Field(), ctrl.Value())
	m.controls[m.active] = ctrl.Blur()
	return m.reconcile(m.active, "blur")
}

// reconcile normalizes the control for role and pushes its sibling when the
// range would otherwise be inverted.
func (m Model) reconcile(role timeval.Role, trigger string) Model {
	sib := role.Sibling()
	r := timeval.Reconcile(role, m.controls[role].Value(), m.dates, m.controls[sib].Value(), m.sameDay)

	m.controls[role] = m.controls[role].SetValue(r.Time)
	if r.SiblingChanged {
		m.controls[sib] = m.controls[sib].SetValue(r.Sibling)
	}
	LogReconcile(role, trigger, r)
	return m
}

// reconcileAll reconciles start then end.
func (m Model) reconcileAll(trigger string) Model {
	for _, role := range roles {
		m = m.reconcile(role, trigger)
	}
	return m
}

func (m Model) shiftDates(role timeval.Role, days int) (tea.Model, tea.Cmd) {
	shift := m.dates.ShiftStart
	if role == timeval.End {
		shift = m.dates.ShiftEnd
	}
	next, err := shift(days)
	if err != nil {
		LogError("date change", err)
		return m.setStatus("End date cannot be before start date", true)
	}

	m.dates = next
	LogDateChange(next)
	return m.reconcileAll("date"), nil
}

func (m Model) confirm() (tea.Model, tea.Cmd) {
	field := m.controls[m.active].Field()
	if m.controls[m.active].Focused() {
		m = m.blur()
	}

	w := m.Window()
	if w.End.Before(w.Start) {
		m.controls[m.active] = m.controls[m.active].Focus(field)
		return m.setStatus("End is before start", true)
	}

	m.result = &w
	return m.unmount(), tea.Quit
}

func (m Model) unmount() Model {
	for _, role := range roles {
		m.controls[role] = m.controls[role].Blur().Unmount()
	}
	return m
}
