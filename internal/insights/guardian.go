package insights

import (
	"time"

	"github.com/tmaru/lexiquest/internal/store"
)

// GuardianPolicy tunes the guardian-dashboard acceptance check.
type GuardianPolicy struct {
	// LiftThreshold is the relative weekly-active-rate improvement
	// required for acceptance (0.2 means +20%).
	LiftThreshold float64
}

// DefaultGuardianPolicy returns the production threshold.
func DefaultGuardianPolicy() GuardianPolicy {
	return GuardianPolicy{LiftThreshold: 0.2}
}

// GuardianAcceptanceSnapshot compares the learner's weekly active rate
// against the previous week for the guardian-facing panel.
type GuardianAcceptanceSnapshot struct {
	CurrentActiveDays  int
	PreviousActiveDays int
	CurrentRate        float64
	PreviousRate       float64
	Lift               float64
	Status             Status
}

// ComputeGuardianAcceptanceSnapshot counts distinct active days in the
// current and previous 7-day windows. A week with zero previous active
// days has no baseline and reports insufficient rather than an
// infinite improvement.
func ComputeGuardianAcceptanceSnapshot(events []store.LearningEventRow, now time.Time, policy GuardianPolicy) GuardianAcceptanceSnapshot {
	cur := activeDayCount(events, currentWindow(now, 7))
	prev := activeDayCount(events, previousWindow(now, 7))

	snap := GuardianAcceptanceSnapshot{
		CurrentActiveDays:  cur,
		PreviousActiveDays: prev,
		CurrentRate:        float64(cur) / 7,
		PreviousRate:       float64(prev) / 7,
	}

	if prev == 0 {
		snap.Status = StatusInsufficient
		return snap
	}

	snap.Lift = snap.CurrentRate/snap.PreviousRate - 1
	snap.Status = StatusNotMet
	if snap.Lift >= policy.LiftThreshold {
		snap.Status = StatusMet
	}
	return snap
}

func activeDayCount(events []store.LearningEventRow, w Window) int {
	days := make(map[string]bool)
	for _, e := range events {
		if e.Timestamp.IsZero() || !w.Contains(e.Timestamp) {
			continue
		}
		days[dayKey(e.Timestamp)] = true
	}
	return len(days)
}
