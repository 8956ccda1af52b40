package timeval

import (
	"fmt"
	"time"

	"github.com/javiermolinar/logspan/internal/timestamp"
)

// PasteOffset widens a pasted instant so it falls strictly inside the
// inclusive window even after truncation to whole seconds.
const PasteOffset = time.Second

// Ingest turns pasted text into the value of a boundary. The instant is moved
// PasteOffset earlier for a start boundary and later for an end boundary, then
// read as a clock in loc. A nil loc means time.Local.
func Ingest(role Role, text string, loc *time.Location) (TimeValue, error) {
	t, err := IngestInstant(role, text)
	if err != nil {
		return TimeValue{}, err
	}
	if loc == nil {
		loc = time.Local
	}
	return FromTime(t.In(loc)), nil
}

// IngestInstant parses text and applies the role's PasteOffset.
func IngestInstant(role Role, text string) (time.Time, error) {
	t, err := timestamp.Parse(text)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing pasted text: %w", err)
	}
	if role == Start {
		return t.Add(-PasteOffset), nil
	}
	return t.Add(PasteOffset), nil
}
