package insights

import "time"

// Status classifies a snapshot metric. Builders pick the register that
// fits their domain: goal checks use met/not_met or passed/not_met,
// health checks use healthy/warning/critical. A window whose sample is
// below the builder's floor is insufficient rather than falsely
// confident.
type Status string

const (
	StatusMet          Status = "met"
	StatusNotMet       Status = "not_met"
	StatusPassed       Status = "passed"
	StatusHealthy      Status = "healthy"
	StatusWarning      Status = "warning"
	StatusCritical     Status = "critical"
	StatusInsufficient Status = "insufficient"
)

// Metric compares a current-window rate against the preceding window
// of equal length.
type Metric struct {
	CurrentRate  float64
	PreviousRate float64
	Status       Status
}

// Window is a half-open [From, To) time range.
type Window struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// currentWindow is the windowDays-long range ending at now.
func currentWindow(now time.Time, windowDays int) Window {
	return Window{From: now.AddDate(0, 0, -windowDays), To: now}
}

// previousWindow is the equal-length range immediately before the
// current one.
func previousWindow(now time.Time, windowDays int) Window {
	return Window{
		From: now.AddDate(0, 0, -2*windowDays),
		To:   now.AddDate(0, 0, -windowDays),
	}
}

// dayKey buckets a timestamp into its UTC calendar day.
func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
