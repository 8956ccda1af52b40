package timesplit

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/logspan/internal/timestamp"
	"github.com/javiermolinar/logspan/internal/timeval"
	"github.com/javiermolinar/logspan/internal/tui/theme"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newControl(role timeval.Role, v timeval.TimeValue) Model {
	th, _ := theme.Load("mocha")
	return New(role, v, NewStyles(theme.NewPalette(th), role)).Mount()
}

func TestHandleKey_FirstKeystrokeReplacesField(t *testing.T) {
	m := newControl(timeval.Start, timeval.TimeValue{HH: "12", MM: "30", SS: "00"})
	m = m.Focus(timeval.Hours)

	m, out := m.HandleKey(runes("0"))
	if out != Accepted {
		t.Fatalf("outcome = %v, want accepted", out)
	}
	if got := m.Value().HH; got != "0" {
		t.Fatalf("HH = %q, want %q", got, "0")
	}

	m, out = m.HandleKey(runes("9"))
	if out != Accepted {
		t.Fatalf("outcome = %v, want accepted", out)
	}
	if got := m.Value().HH; got != "09" {
		t.Fatalf("HH = %q, want %q", got, "09")
	}
}

func TestHandleKey_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		field timeval.Field
		keys  []string
		want  string
	}{
		{name: "hours above max", field: timeval.Hours, keys: []string{"2", "4"}, want: "2"},
		{name: "minutes above max", field: timeval.Minutes, keys: []string{"6", "0"}, want: "6"},
		{name: "third digit", field: timeval.Seconds, keys: []string{"1", "2", "3"}, want: "12"},
		{name: "letter", field: timeval.Minutes, keys: []string{"a"}, want: "30"},
		{name: "minus sign", field: timeval.Hours, keys: []string{"-"}, want: "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newControl(timeval.Start, timeval.TimeValue{HH: "12", MM: "30", SS: "45"})
			m = m.Focus(tt.field)

			var out Outcome
			for _, k := range tt.keys {
				m, out = m.HandleKey(runes(k))
			}
			if out != Rejected {
				t.Errorf("last outcome = %v, want rejected", out)
			}
			if got := m.Value().Get(tt.field); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.field.Label(), got, tt.want)
			}
		})
	}
}

func TestHandleKey_Backspace(t *testing.T) {
	m := newControl(timeval.End, timeval.TimeValue{HH: "12", MM: "30", SS: "45"})
	m = m.Focus(timeval.Seconds)
	m, _ = m.HandleKey(runes("4"))
	m, _ = m.HandleKey(runes("7"))

	m, out := m.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	if out != Accepted {
		t.Fatalf("outcome = %v, want accepted", out)
	}
	if got := m.Value().SS; got != "4" {
		t.Fatalf("SS = %q, want %q", got, "4")
	}
}

func TestHandleKey_IgnoredKeys(t *testing.T) {
	m := newControl(timeval.Start, timeval.TimeValue{HH: "12", MM: "30", SS: "45"})

	if _, out := m.HandleKey(runes("1")); out != Ignored {
		t.Errorf("unfocused control: outcome = %v, want ignored", out)
	}

	m = m.Focus(timeval.Hours)
	paste := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1736937000000"), Paste: true}
	if _, out := m.HandleKey(paste); out != Ignored {
		t.Errorf("paste: outcome = %v, want ignored", out)
	}
	if _, out := m.HandleKey(tea.KeyMsg{Type: tea.KeyTab}); out != Ignored {
		t.Errorf("tab: outcome = %v, want ignored", out)
	}
	if got := m.Value(); got != (timeval.TimeValue{HH: "12", MM: "30", SS: "45"}) {
		t.Errorf("value changed to %v", got)
	}
}

func TestFocusBlur(t *testing.T) {
	m := newControl(timeval.Start, timeval.TimeValue{HH: "12", MM: "30", SS: "45"})
	m = m.Focus(timeval.Minutes)
	if !m.Focused() || m.Field() != timeval.Minutes {
		t.Fatalf("focused = %v field = %v", m.Focused(), m.Field())
	}
	m = m.Blur()
	if m.Focused() {
		t.Fatal("still focused after blur")
	}
}

func TestIngest(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	pasted := "1736937000000000"

	start, err := newControl(timeval.Start, timeval.TimeValue{}).Ingest(pasted, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := start.Value().String(); got != "12:29:59" {
		t.Errorf("start = %s, want 12:29:59", got)
	}

	end, err := newControl(timeval.End, timeval.TimeValue{}).Ingest(pasted, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := end.Value().String(); got != "12:30:01" {
		t.Errorf("end = %s, want 12:30:01", got)
	}
}

func TestIngest_InvalidKeepsValue(t *testing.T) {
	orig := timeval.TimeValue{HH: "08", MM: "00", SS: "00"}
	m := newControl(timeval.Start, orig)

	m, err := m.Ingest("not a timestamp", time.UTC)
	if !errors.Is(err, timestamp.ErrInvalidTimestamp) {
		t.Fatalf("error = %v, want %v", err, timestamp.ErrInvalidTimestamp)
	}
	if m.Value() != orig {
		t.Errorf("value = %v, want %v", m.Value(), orig)
	}
}

func TestIngest_Unmounted(t *testing.T) {
	orig := timeval.TimeValue{HH: "08", MM: "00", SS: "00"}
	m := newControl(timeval.End, orig).Unmount()

	m, err := m.Ingest("1736937000000", time.UTC)
	if !errors.Is(err, ErrNotMounted) {
		t.Fatalf("error = %v, want %v", err, ErrNotMounted)
	}
	if m.Value() != orig {
		t.Errorf("value = %v, want %v", m.Value(), orig)
	}
}

func TestView(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	m := newControl(timeval.End, timeval.TimeValue{HH: "23", MM: "05", SS: "59"})
	out := m.View()
	for _, want := range []string{"END", "23", "05", "59"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Minutes") {
		t.Errorf("unfocused view shows a field label:\n%s", out)
	}

	out = m.Focus(timeval.Minutes).View()
	if !strings.Contains(out, "Minutes") {
		t.Errorf("focused view missing label:\n%s", out)
	}
}
