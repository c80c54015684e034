package quest

import "time"

// PeriodStart returns the Monday 00:00 UTC anchor of the week
// containing now. Every weekly task row is keyed on this timestamp.
func PeriodStart(now time.Time) time.Time {
	t := now.UTC()
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// PeriodEnd returns the exclusive end of the week starting at
// periodStart.
func PeriodEnd(periodStart time.Time) time.Time {
	return periodStart.AddDate(0, 0, 7)
}
