package timeval

import "github.com/javiermolinar/logspan/internal/dateutil"

// Reconciliation is the outcome of a blur-time pass over one boundary.
type Reconciliation struct {
	// Time is the normalized value of the boundary that was edited.
	Time TimeValue
	// Sibling is the proposed value for the opposite boundary. It is only
	// meaningful when SiblingChanged is true.
	Sibling        TimeValue
	SiblingChanged bool
}

// Reconcile normalizes t and, when both dates fall on the same day according
// to sameDay, pushes the sibling boundary so that start <= end holds. The
// edited boundary always wins; only the sibling moves. Each component push is
// decided against the sibling as it was passed in.
func Reconcile(role Role, t TimeValue, dates dateutil.DateRange, sibling TimeValue, sameDay dateutil.DayMatcher) Reconciliation {
	t = Normalize(t)
	res := Reconciliation{Time: t, Sibling: sibling}

	if sameDay == nil {
		sameDay = dateutil.SameDay
	}
	if !sameDay(dates.Start, dates.End) {
		return res
	}

	th, tm, ts := t.Clock()
	sh, sm, ss := sibling.Clock()

	// ahead reports whether a is past b in the direction the sibling must
	// not cross: later for a start boundary, earlier for an end boundary.
	ahead := func(a, b int) bool {
		if role == Start {
			return a > b
		}
		return a < b
	}
	reached := func(a, b int) bool {
		return a == b || ahead(a, b)
	}

	next := sibling
	if ahead(th, sh) {
		next.HH = t.HH
		res.SiblingChanged = true
	}
	if reached(th, sh) && ahead(tm, sm) {
		next.MM = t.MM
		res.SiblingChanged = true
	}
	if reached(th, sh) && reached(tm, sm) && ahead(ts, ss) {
		next.SS = t.SS
		res.SiblingChanged = true
	}

	res.Sibling = next
	return res
}
