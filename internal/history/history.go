// Package history defines the record of confirmed query windows.
package history

import (
	"context"
	"errors"
	"time"

	"github.com/javiermolinar/logspan/internal/window"
)

// ErrInvalidEntry is returned when an entry's end is before its start.
var ErrInvalidEntry = errors.New("entry end must not be before start")

// Source records how a window was produced.
type Source string

const (
	SourcePicker  Source = "picker"
	SourceConvert Source = "convert"
)

// Valid returns true if the source is a known value.
func (s Source) Valid() bool {
	switch s {
	case SourcePicker, SourceConvert:
		return true
	default:
		return false
	}
}

// Entry is one confirmed window.
type Entry struct {
	ID        int64
	Start     time.Time
	End       time.Time
	Source    Source
	CreatedAt time.Time
}

// NewEntry creates an Entry for w stamped with now.
func NewEntry(w window.Window, source Source, now time.Time) (*Entry, error) {
	if w.End.Before(w.Start) {
		return nil, ErrInvalidEntry
	}
	return &Entry{
		Start:     w.Start,
		End:       w.End,
		Source:    source,
		CreatedAt: now,
	}, nil
}

// Window returns the entry's bounds as a window.
func (e *Entry) Window() window.Window {
	return window.Window{Start: e.Start, End: e.End}
}

// Repository defines the storage interface for history entries.
type Repository interface {
	// Save stores an entry and sets its ID.
	Save(ctx context.Context, e *Entry) error

	// Get retrieves an entry by ID. Returns nil, nil when it does not exist.
	Get(ctx context.Context, id int64) (*Entry, error)

	// List returns the most recent entries first, at most limit of them.
	List(ctx context.Context, limit int) ([]*Entry, error)

	// Close releases any resources held by the repository.
	Close() error
}
