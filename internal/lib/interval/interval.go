package interval

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect. Back-to-back
// intervals (a.End == b.Start) do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// HasOverlap reports whether the candidate interval intersects any of the
// existing ones. Checking stops at the first overlap found.
func HasOverlap(existing []Interval, start, end time.Time) bool {
	candidate := Interval{Start: start, End: end}

	for _, iv := range existing {
		if Overlaps(iv, candidate) {
			return true
		}
	}

	return false
}
