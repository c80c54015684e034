package insights

import (
	"time"

	"github.com/tmaru/lexiquest/internal/store"
)

// RecoveryPolicy tunes the session-recovery reliability bands.
type RecoveryPolicy struct {
	WindowDays   int
	AttemptFloor int
	HealthyRate  float64
	WarningRate  float64
}

// DefaultRecoveryPolicy returns the production thresholds.
func DefaultRecoveryPolicy() RecoveryPolicy {
	return RecoveryPolicy{
		WindowDays:   30,
		AttemptFloor: 3,
		HealthyRate:  0.85,
		WarningRate:  0.6,
	}
}

// SessionRecoverySnapshot reports how reliably interrupted sessions
// were resumed inside the window.
type SessionRecoverySnapshot struct {
	Window      Window
	Attempts    int
	Successes   int
	Failures    int
	SuccessRate float64
	Status      Status
}

// ComputeSessionRecoverySnapshot folds recovery events into a success
// rate. Rows with unknown actions or zero timestamps are skipped.
func ComputeSessionRecoverySnapshot(rows []store.RecoveryEventRow, now time.Time, policy RecoveryPolicy) SessionRecoverySnapshot {
	w := currentWindow(now, policy.WindowDays)
	snap := SessionRecoverySnapshot{Window: w}

	for _, row := range rows {
		if row.Timestamp.IsZero() || !w.Contains(row.Timestamp) {
			continue
		}
		switch row.Action {
		case "attempt":
			snap.Attempts++
		case "success":
			snap.Successes++
		case "failure":
			snap.Failures++
		}
	}

	if snap.Attempts < policy.AttemptFloor {
		snap.Status = StatusInsufficient
		return snap
	}

	snap.SuccessRate = float64(snap.Successes) / float64(snap.Attempts)
	switch {
	case snap.SuccessRate >= policy.HealthyRate:
		snap.Status = StatusHealthy
	case snap.SuccessRate >= policy.WarningRate:
		snap.Status = StatusWarning
	default:
		snap.Status = StatusCritical
	}
	return snap
}
