package services

import "time"

// startOfDay returns the first instant of t's calendar day in loc.
// When a DST transition skips local midnight, time.Date normalizes into the
// previous day, so the result moves forward to the transition instead.
func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	year, month, day := t.Date()

	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	if start.Day() != day {
		if _, end := start.ZoneBounds(); !end.IsZero() {
			start = end
		}
	}
	return start
}
