package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/logspan/internal/dateutil"
	"github.com/javiermolinar/logspan/internal/timeval"
)

// DebugLogger logs TUI state, keystrokes, and events to a file.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the default path for debug logs
const DebugLogPath = "logspan-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
// An empty path means DebugLogPath.
func InitDebugLogger(enabled bool, path string) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	if path == "" {
		path = DebugLogPath
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		file:    f,
		enabled: true,
	}

	debugLog.log("DEBUG_START", map[string]any{
		"log_file": path,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
		debugLog.file = nil
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.file, "%s\n", b)
}

func debugEnabled() bool {
	return debugLog != nil && debugLog.enabled
}

// LogKeyPress logs a key press event. Pasted text is not echoed.
func LogKeyPress(msg tea.KeyMsg) {
	if !debugEnabled() {
		return
	}
	key := msg.String()
	if msg.Paste {
		key = "paste"
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key":  key,
		"type": msg.Type.String(),
	})
}

// LogFieldEdit logs an accepted field edit.
func LogFieldEdit(role timeval.Role, f timeval.Field, v timeval.TimeValue) {
	if !debugEnabled() {
		return
	}
	debugLog.log("FIELD_EDIT", map[string]any{
		"role":  role.String(),
		"field": f.Label(),
		"text":  v.Get(f),
	})
}

// LogFieldReject logs a keystroke dropped by the field editor.
func LogFieldReject(role timeval.Role, f timeval.Field, key string) {
	if !debugEnabled() {
		return
	}
	debugLog.log("FIELD_REJECT", map[string]any{
		"role":  role.String(),
		"field": f.Label(),
		"key":   key,
	})
}

// LogFieldBlur logs a field losing focus.
func LogFieldBlur(role timeval.Role, f timeval.Field, v timeval.TimeValue) {
	if !debugEnabled() {
		return
	}
	debugLog.log("FIELD_BLUR", map[string]any{
		"role":  role.String(),
		"field": f.Label(),
		"value": v.String(),
	})
}

// LogReconcile logs the outcome of a reconciliation pass.
func LogReconcile(role timeval.Role, trigger string, r timeval.Reconciliation) {
	if !debugEnabled() {
		return
	}
	data := map[string]any{
		"role":            role.String(),
		"trigger":         trigger,
		"value":           r.Time.String(),
		"sibling_changed": r.SiblingChanged,
	}
	if r.SiblingChanged {
		data["sibling"] = r.Sibling.String()
	}
	debugLog.log("RECONCILE", data)
}

// LogDateChange logs a new date range.
func LogDateChange(dates dateutil.DateRange) {
	if !debugEnabled() {
		return
	}
	debugLog.log("DATE_CHANGE", map[string]any{
		"start": dates.Start.Format(time.DateOnly),
		"end":   dates.End.Format(time.DateOnly),
	})
}

// LogPaste logs a paste applied to the mounted controls.
func LogPaste(source string, applied map[timeval.Role]timeval.TimeValue) {
	if !debugEnabled() {
		return
	}
	values := make(map[string]string, len(applied))
	for role, v := range applied {
		values[role.String()] = v.String()
	}
	debugLog.log("PASTE", map[string]any{
		"source": source,
		"values": values,
	})
}

// LogPasteWarn logs a paste that did not change any value.
func LogPasteWarn(source string, err error) {
	if !debugEnabled() {
		return
	}
	debugLog.log("PASTE_WARN", map[string]any{
		"level":  "warn",
		"source": source,
		"error":  err.Error(),
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if !debugEnabled() {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}
