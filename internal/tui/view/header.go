package view

import (
	"time"

	"github.com/javiermolinar/logspan/internal/dateutil"
)

// DateLabel renders a boundary date, marking today and yesterday.
func DateLabel(day, today time.Time) string {
	label := day.Format("Mon 2006-01-02")
	switch {
	case dateutil.SameDay(day, today):
		return label + " (today)"
	case dateutil.SameDay(day, dateutil.ShiftDays(today, -1)):
		return label + " (yesterday)"
	default:
		return label
	}
}
