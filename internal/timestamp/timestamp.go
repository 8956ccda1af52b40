// Package timestamp classifies and parses epoch timestamps found in logs.
package timestamp

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimestamp is returned when text does not resolve to an instant.
var ErrInvalidTimestamp = errors.New("invalid date or timestamp")

// unixMicroWidth is the width of a microsecond epoch for the current era.
const unixMicroWidth = 16

// maxEpochMillis bounds representable instants to +/-100,000,000 days
// around the epoch, the same range a JavaScript Date accepts.
const maxEpochMillis = 8.64e15

// IsUnixMicro reports whether s looks like a microseconds-since-epoch value:
// 16 characters that form a number, so a decimal point or a 0x prefix
// still qualifies.
func IsUnixMicro(s string) bool {
	if len(s) != unixMicroWidth {
		return false
	}
	_, ok := parseNumber(s)
	return ok
}

// UnixMicroToTime converts a microsecond epoch string to a time in UTC,
// keeping millisecond precision.
func UnixMicroToTime(s string) (time.Time, error) {
	us, ok := parseNumber(s)
	if !ok {
		return time.Time{}, ErrInvalidTimestamp
	}
	return fromMillis(us / 1000)
}

// Parse interprets text as a point in time. Microsecond epochs are detected
// with IsUnixMicro; anything else must be a numeric epoch in milliseconds.
// Surrounding whitespace is ignored.
func Parse(text string) (time.Time, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, ErrInvalidTimestamp
	}
	if IsUnixMicro(s) {
		return UnixMicroToTime(s)
	}

	ms, ok := parseNumber(s)
	if !ok {
		return time.Time{}, ErrInvalidTimestamp
	}
	return fromMillis(ms)
}

// fromMillis truncates ms towards zero and rejects values outside the
// representable range.
func fromMillis(ms float64) (time.Time, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}, ErrInvalidTimestamp
	}
	return time.UnixMilli(int64(ms)).UTC(), nil
}

// parseNumber reads a numeric literal the way clipboard timestamps are
// written in the wild: signed decimals with optional fraction and exponent,
// or unsigned 0x, 0o and 0b integers.
func parseNumber(s string) (float64, bool) {
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if strings.ContainsRune(s, '_') {
				return 0, false
			}
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}
	// ParseFloat also takes hex floats and digit separators; neither is a
	// plain decimal.
	if strings.ContainsAny(s, "_pPxX") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
