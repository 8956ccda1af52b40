// Package commands provides TUI command constructors and message types.
package commands

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status message stays on screen.
const statusTTL = 3 * time.Second

// readClipboard is swapped in tests.
var readClipboard = clipboard.ReadAll

// ClipboardMsg carries the result of an explicit clipboard read.
type ClipboardMsg struct {
	Text string
	Err  error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// ReadClipboard reads the system clipboard off the event loop.
func ReadClipboard() tea.Cmd {
	return func() tea.Msg {
		text, err := readClipboard()
		if err != nil {
			return ClipboardMsg{Err: fmt.Errorf("reading clipboard: %w", err)}
		}
		return ClipboardMsg{Text: text}
	}
}

// Status creates a command that shows msg in the status line.
func Status(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// ClearStatusAfterTTL schedules a ClearStatusMsg.
func ClearStatusAfterTTL() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// StatusTTL returns how long a status message is kept.
func StatusTTL() time.Duration {
	return statusTTL
}
