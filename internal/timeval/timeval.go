// Package timeval models the HH:mm:ss value edited by one boundary of a time range.
package timeval

import (
	"fmt"
	"strconv"
	"time"
)

// Role identifies which boundary of the range a control edits.
type Role int

const (
	Start Role = iota
	End
)

// String returns the role name.
func (r Role) String() string {
	if r == End {
		return "end"
	}
	return "start"
}

// ParseRole parses "start" or "end".
func ParseRole(s string) (Role, error) {
	switch s {
	case "start":
		return Start, nil
	case "end":
		return End, nil
	default:
		return Start, fmt.Errorf("invalid role %q (expected start or end)", s)
	}
}

// Sibling returns the opposite role.
func (r Role) Sibling() Role {
	if r == Start {
		return End
	}
	return Start
}

// Field identifies one of the digit pairs of a TimeValue.
type Field int

const (
	Hours Field = iota
	Minutes
	Seconds
)

// Fields lists the fields in display order.
var Fields = [...]Field{Hours, Minutes, Seconds}

// Max returns the largest value the field accepts.
func (f Field) Max() int {
	if f == Hours {
		return 23
	}
	return 59
}

// Label returns the human readable field name.
func (f Field) Label() string {
	switch f {
	case Hours:
		return "Hours"
	case Minutes:
		return "Minutes"
	default:
		return "Seconds"
	}
}

// TimeValue is a textual time of day. Each field is empty or holds one or
// two ASCII digits; padding happens on Normalize.
type TimeValue struct {
	HH string
	MM string
	SS string
}

// Get returns the text of a field.
func (v TimeValue) Get(f Field) string {
	switch f {
	case Hours:
		return v.HH
	case Minutes:
		return v.MM
	default:
		return v.SS
	}
}

// With returns a copy of v with field f set to s.
func (v TimeValue) With(f Field, s string) TimeValue {
	switch f {
	case Hours:
		v.HH = s
	case Minutes:
		v.MM = s
	default:
		v.SS = s
	}
	return v
}

// Clock returns the numeric reading of v. Empty or malformed fields read as 0.
func (v TimeValue) Clock() (h, m, s int) {
	return number(v.HH), number(v.MM), number(v.SS)
}

// String renders v as HH:mm:ss without normalizing it.
func (v TimeValue) String() string {
	return v.HH + ":" + v.MM + ":" + v.SS
}

// FromTime returns the zero-padded clock of t in t's location.
func FromTime(t time.Time) TimeValue {
	return TimeValue{
		HH: pad2(t.Hour()),
		MM: pad2(t.Minute()),
		SS: pad2(t.Second()),
	}
}

// Parse reads "HH:mm:ss" or "HH:mm" into a normalized TimeValue.
func Parse(s string) (TimeValue, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}
	return TimeValue{}, fmt.Errorf("time must be in HH:mm:ss or HH:mm format, got %q", s)
}

func number(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
