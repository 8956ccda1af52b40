// Package dateutil provides date parsing and calendar-day comparison utilities.
package dateutil

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidDateFormat  = errors.New("date must be today, yesterday, -Nd or YYYY-MM-DD")
	ErrEndDateBeforeStart = errors.New("end date must be on or after start date")
	ErrUnknownDayMatch    = errors.New("same_day must be \"date\" or \"day_month\"")
)

// DateRange holds the calendar dates of the two boundaries of a range.
// Only the day part is meaningful.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange creates a DateRange truncated to days.
// Returns ErrEndDateBeforeStart if end falls on an earlier day than start.
func NewDateRange(start, end time.Time) (DateRange, error) {
	start = TruncateToDay(start)
	end = TruncateToDay(end)
	if end.Before(start) {
		return DateRange{}, ErrEndDateBeforeStart
	}
	return DateRange{Start: start, End: end}, nil
}

// ShiftStart returns a copy of r with the start date moved by days.
func (r DateRange) ShiftStart(days int) (DateRange, error) {
	return NewDateRange(ShiftDays(r.Start, days), r.End)
}

// ShiftEnd returns a copy of r with the end date moved by days.
func (r DateRange) ShiftEnd(days int) (DateRange, error) {
	return NewDateRange(r.Start, ShiftDays(r.End, days))
}

// DayMatcher reports whether two instants are considered the same day.
type DayMatcher func(a, b time.Time) bool

// SameDay reports whether a and b share year, month and day of month.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameDayOfYear compares only month and day of month, ignoring the year.
// Kept for pickers that relied on the older comparison.
func SameDayOfYear(a, b time.Time) bool {
	_, am, ad := a.Date()
	_, bm, bd := b.Date()
	return am == bm && ad == bd
}

// Day match modes accepted by MatcherFor.
const (
	MatchDate     = "date"
	MatchDayMonth = "day_month"
)

// MatcherFor returns the DayMatcher for a configured mode.
// An empty mode selects MatchDate.
func MatcherFor(mode string) (DayMatcher, error) {
	switch strings.ToLower(mode) {
	case "", MatchDate:
		return SameDay, nil
	case MatchDayMonth:
		return SameDayOfYear, nil
	default:
		return nil, ErrUnknownDayMatch
	}
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ShiftDays moves t by the given number of calendar days.
func ShiftDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// ParseDay parses a day relative to now, in now's location:
//   - Empty string or "today": the day of now
//   - "yesterday"
//   - "-Nd": N days before now
//   - Absolute date: "2025-01-15" (YYYY-MM-DD)
//
// All inputs are case-insensitive.
// Returns ErrInvalidDateFormat for unrecognized input.
func ParseDay(s string, now time.Time) (time.Time, error) {
	today := TruncateToDay(now)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if strings.HasPrefix(input, "-") && strings.HasSuffix(input, "d") {
		n, err := strconv.Atoi(input[1 : len(input)-1])
		if err != nil || n < 0 {
			return time.Time{}, ErrInvalidDateFormat
		}
		return today.AddDate(0, 0, -n), nil
	}

	result, err := time.ParseInLocation("2006-01-02", input, now.Location())
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return result, nil
}
