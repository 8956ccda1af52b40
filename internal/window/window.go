// Package window assembles the query window selected in the picker.
package window

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/javiermolinar/logspan/internal/dateutil"
	"github.com/javiermolinar/logspan/internal/timeval"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Output formats.
const (
	FormatRFC3339   = "rfc3339"
	FormatUnix      = "unix"
	FormatUnixMilli = "unix_ms"
	FormatUnixMicro = "unix_micro"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatRFC3339, FormatUnix, FormatUnixMilli, FormatUnixMicro}
}

// IsFormat reports whether f is a supported output format.
func IsFormat(f string) bool {
	for _, known := range Formats() {
		if f == known {
			return true
		}
	}
	return false
}

// Window is an inclusive time span.
type Window struct {
	Start time.Time
	End   time.Time
}

// Build combines each boundary date with its normalized clock in loc.
// A nil loc means time.Local.
func Build(dates dateutil.DateRange, start, end timeval.TimeValue, loc *time.Location) Window {
	if loc == nil {
		loc = time.Local
	}
	return Window{
		Start: at(dates.Start, start, loc),
		End:   at(dates.End, end, loc),
	}
}

func at(day time.Time, v timeval.TimeValue, loc *time.Location) time.Time {
	h, m, s := timeval.Normalize(v).Clock()
	y, mo, d := day.Date()
	return time.Date(y, mo, d, h, m, s, 0, loc)
}

// Contains reports whether t lies within the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// In returns the window with both bounds expressed in loc.
func (w Window) In(loc *time.Location) Window {
	return Window{Start: w.Start.In(loc), End: w.End.In(loc)}
}

// Duration returns the length of the window.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Format renders both bounds in the given output format.
func (w Window) Format(format string) (start, end string, err error) {
	switch format {
	case "", FormatRFC3339:
		return w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339), nil
	case FormatUnix:
		return strconv.FormatInt(w.Start.Unix(), 10), strconv.FormatInt(w.End.Unix(), 10), nil
	case FormatUnixMilli:
		return strconv.FormatInt(w.Start.UnixMilli(), 10), strconv.FormatInt(w.End.UnixMilli(), 10), nil
	case FormatUnixMicro:
		return strconv.FormatInt(w.Start.UnixMicro(), 10), strconv.FormatInt(w.End.UnixMicro(), 10), nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// String returns a human-readable representation of the window.
func (w Window) String() string {
	return fmt.Sprintf("%s - %s", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}
