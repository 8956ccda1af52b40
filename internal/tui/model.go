// Package tui provides the terminal user interface for logspan.
package tui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/logspan/internal/config"
	"github.com/javiermolinar/logspan/internal/dateutil"
	"github.com/javiermolinar/logspan/internal/timeval"
	"github.com/javiermolinar/logspan/internal/tui/theme"
	"github.com/javiermolinar/logspan/internal/tui/timesplit"
	"github.com/javiermolinar/logspan/internal/window"
)

// ErrCancelled is returned by Run when the picker is left without confirming.
var ErrCancelled = errors.New("selection cancelled")

// roles lists the controls in focus order.
var roles = [...]timeval.Role{timeval.Start, timeval.End}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config *config.Config
	now    func() time.Time

	// Theme and styles
	theme  *theme.Theme
	styles *Styles
	keys   keyMap
	help   help.Model

	// Rules
	loc     *time.Location
	sameDay dateutil.DayMatcher

	// Initial days, in dateutil.ParseDay syntax
	startDay string
	endDay   string

	// State
	dates    dateutil.DateRange
	controls [2]timesplit.Model
	active   timeval.Role

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusWarn bool      // Render statusMsg as a warning
	statusTime time.Time // When to clear message

	// Outcome
	result    *window.Window
	cancelled bool
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithNow overrides the clock used to resolve relative days.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// WithDays overrides the configured start and end days. Empty values keep
// the configured ones.
func WithDays(from, to string) ModelOption {
	return func(m *Model) {
		if from != "" {
			m.startDay = from
		}
		if to != "" {
			m.endDay = to
		}
	}
}

// New creates a new TUI model with the start hours field focused.
func New(cfg *config.Config, opts ...ModelOption) (*Model, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		return nil, err
	}
	styles := NewStyles(t)

	m := &Model{
		config:   cfg,
		now:      time.Now,
		theme:    t,
		styles:   styles,
		keys:     defaultKeyMap(),
		help:     help.New(),
		loc:      loc,
		sameDay:  cfg.DayMatcher(),
		startDay: cfg.Picker.StartDay,
		endDay:   cfg.Picker.EndDay,
	}
	m.help.Styles = styles.Help

	for _, opt := range opts {
		opt(m)
	}

	now := m.now().In(loc)
	from, err := dateutil.ParseDay(m.startDay, now)
	if err != nil {
		return nil, fmt.Errorf("start day %q: %w", m.startDay, err)
	}
	to, err := dateutil.ParseDay(m.endDay, now)
	if err != nil {
		return nil, fmt.Errorf("end day %q: %w", m.endDay, err)
	}
	m.dates, err = dateutil.NewDateRange(from, to)
	if err != nil {
		return nil, err
	}

	startTime, err := timeval.Parse(cfg.Picker.StartTime)
	if err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}
	endTime, err := timeval.Parse(cfg.Picker.EndTime)
	if err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}

	m.controls[timeval.Start] = timesplit.New(timeval.Start, startTime, styles.Controls[timeval.Start]).Mount()
	m.controls[timeval.End] = timesplit.New(timeval.End, endTime, styles.Controls[timeval.End]).Mount()

	*m = m.reconcileAll("init")
	m.active = timeval.Start
	m.controls[timeval.Start] = m.controls[timeval.Start].Focus(timeval.Hours)

	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	LogDateChange(m.dates)
	return nil
}

// Result returns the confirmed window, or nil when nothing was confirmed.
func (m Model) Result() *window.Window {
	return m.result
}

// Cancelled reports whether the picker was left without confirming.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Dates returns the current date range.
func (m Model) Dates() dateutil.DateRange {
	return m.dates
}

// Control returns the control for role.
func (m Model) Control(role timeval.Role) timesplit.Model {
	return m.controls[role]
}

// Window assembles the window currently shown by the controls.
func (m Model) Window() window.Window {
	return window.Build(m.dates, m.controls[timeval.Start].Value(), m.controls[timeval.End].Value(), m.loc)
}

// Run starts the TUI and returns the confirmed window.
func Run(cfg *config.Config, opts ...ModelOption) (*window.Window, error) {
	return RunWithDebug(cfg, false, opts...)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, debug bool, opts ...ModelOption) (*window.Window, error) {
	if err := InitDebugLogger(debug, ""); err != nil {
		return nil, err
	}
	defer CloseDebugLogger()

	model, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}

	// The window goes to stdout, so the picker draws on stderr.
	p := tea.NewProgram(*model, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running picker: %w", err)
	}

	final, ok := finalModel.(Model)
	if !ok || final.cancelled || final.result == nil {
		return nil, ErrCancelled
	}
	return final.result, nil
}
