package aggregate

import "time"

// Calendar helpers shared by the window-count aggregators. Rolling windows
// ("last 7 days") are relative to now; calendar windows ("this month") are
// aligned to local day/month starts.

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func StartOfPreviousMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, -1, 0)
}

// SameCalendarMonth reports whether ts falls in the calendar month of ref.
func SameCalendarMonth(ts, ref time.Time) bool {
	return ts.Year() == ref.Year() && ts.Month() == ref.Month()
}

// DaysBetween returns whole days from from to to, floored at zero. Zero-value
// timestamps yield zero so missing dates never produce absurd ages.
func DaysBetween(from, to time.Time) int {
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours() / 24)
}

// inWindow reports whether ts is set and not before since.
func inWindow(ts, since time.Time) bool {
	return !ts.IsZero() && !ts.Before(since)
}
