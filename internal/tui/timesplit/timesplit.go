// Package timesplit provides the HH:mm:ss control used for one boundary of
// the picked range.
package timesplit

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/logspan/internal/timeval"
)

// ErrNotMounted is returned when a value arrives for a control that has
// already been torn down.
var ErrNotMounted = errors.New("time control is not mounted")

// Outcome tells the caller what a key did to the focused field.
type Outcome int

const (
	Ignored Outcome = iota
	Accepted
	Rejected
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "ignored"
	}
}

// Model is one time control: three digit inputs bound to a role.
type Model struct {
	role   timeval.Role
	value  timeval.TimeValue
	inputs [3]textinput.Model

	field   timeval.Field
	focused bool
	// fresh is set when a field gains focus; the next edit replaces the
	// whole field instead of appending to it.
	fresh bool

	mounted bool
	styles  Styles
}

// New creates a control for role holding value.
func New(role timeval.Role, value timeval.TimeValue, styles Styles) Model {
	m := Model{role: role, styles: styles}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "00"
		ti.Width = 2
		ti.Cursor.SetMode(cursor.CursorStatic)
		m.inputs[i] = ti
	}
	m.applyStyles()
	return m.SetValue(value)
}

// Role returns the boundary this control edits.
func (m Model) Role() timeval.Role { return m.role }

// Value returns the current value.
func (m Model) Value() timeval.TimeValue { return m.value }

// Field returns the focused field. Only meaningful when Focused is true.
func (m Model) Field() timeval.Field { return m.field }

// Focused reports whether one of the fields has focus.
func (m Model) Focused() bool { return m.focused }

// Mounted reports whether the control accepts asynchronous values.
func (m Model) Mounted() bool { return m.mounted }

// Mount marks the control as live.
func (m Model) Mount() Model {
	m.mounted = true
	return m
}

// Unmount marks the control as torn down. Late clipboard results are then
// rejected with ErrNotMounted.
func (m Model) Unmount() Model {
	m.mounted = false
	return m
}

// SetValue replaces the value and the text of every input.
func (m Model) SetValue(v timeval.TimeValue) Model {
	m.value = v
	for _, f := range timeval.Fields {
		m.inputs[f].SetValue(v.Get(f))
		m.inputs[f].CursorEnd()
	}
	return m
}

// SetStyles replaces the styles used by View.
func (m Model) SetStyles(s Styles) Model {
	m.styles = s
	m.applyStyles()
	return m
}

// Focus gives focus to field f. The field's text is selected so the next
// digit replaces it.
func (m Model) Focus(f timeval.Field) Model {
	for _, other := range timeval.Fields {
		if other != f {
			m.inputs[other].Blur()
		}
	}
	m.inputs[f].Focus()
	m.inputs[f].CursorEnd()
	m.field = f
	m.focused = true
	m.fresh = true
	return m
}

// Blur removes focus. The caller is expected to reconcile the value.
func (m Model) Blur() Model {
	for _, f := range timeval.Fields {
		m.inputs[f].Blur()
	}
	m.focused = false
	m.fresh = false
	return m
}

// HandleKey applies a key to the focused field. Only digits, backspace and
// delete reach the input; the resulting text goes through timeval.Edit and is
// discarded when rejected.
func (m Model) HandleKey(msg tea.KeyMsg) (Model, Outcome) {
	if !m.focused || msg.Paste || !editKey(msg) {
		return m, Ignored
	}

	in := m.inputs[m.field]
	if m.fresh {
		in.SetValue("")
	}
	in, _ = in.Update(msg)

	next, ok := timeval.Edit(m.value, in.Value(), m.field)
	if !ok {
		return m, Rejected
	}
	m.value = next
	m.inputs[m.field] = in
	m.fresh = false
	return m, Accepted
}

// Ingest overwrites the value from pasted text.
func (m Model) Ingest(text string, loc *time.Location) (Model, error) {
	if !m.mounted {
		return m, ErrNotMounted
	}
	v, err := timeval.Ingest(m.role, text, loc)
	if err != nil {
		return m, err
	}
	return m.SetValue(v), nil
}

func editKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		return !msg.Alt
	case tea.KeyBackspace, tea.KeyDelete:
		return true
	default:
		return false
	}
}
