package types

// TimeWindow is an optional open interval over epoch seconds.
// A nil bound leaves that side unbounded. Both bounds are exclusive:
// a row matches when timestamp > *Start and timestamp < *End.
type TimeWindow struct {
	Start *int64
	End   *int64
}

// Contains reports whether ts falls strictly inside the window.
func (w TimeWindow) Contains(ts int64) bool {
	if w.Start != nil && ts <= *w.Start {
		return false
	}
	if w.End != nil && ts >= *w.End {
		return false
	}
	return true
}
