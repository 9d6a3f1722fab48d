package filter

import "time"

// monthsBetween returns the number of whole calendar months from t's
// month up to ref's month, ignoring day and time-of-day. Both instants
// are evaluated in ref's location so that month boundaries agree.
// The result is negative when t's month is later than ref's.
func monthsBetween(t, ref time.Time) int {
	t = t.In(ref.Location())
	return (ref.Year()-t.Year())*12 + int(ref.Month()) - int(t.Month())
}

// yearsBetween returns the calendar year difference between t and ref,
// ignoring everything below the year.
func yearsBetween(t, ref time.Time) int {
	t = t.In(ref.Location())
	return ref.Year() - t.Year()
}
