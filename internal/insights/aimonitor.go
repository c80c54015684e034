package insights

import (
	"sort"
	"time"

	"github.com/tmaru/lexiquest/internal/store"
)

// AIMonitorPolicy tunes the LLM request health thresholds.
type AIMonitorPolicy struct {
	WindowDays           int
	CallFloor            int
	SuccessTarget        float64
	NonRateLimitedTarget float64
}

// DefaultAIMonitorPolicy returns the production thresholds.
func DefaultAIMonitorPolicy() AIMonitorPolicy {
	return AIMonitorPolicy{
		WindowDays:           7,
		CallFloor:            5,
		SuccessTarget:        0.9,
		NonRateLimitedTarget: 0.8,
	}
}

// TierHealth is the request health of one model tier (free or paid).
// Healthy requires both sub-metrics at target; critical requires both
// to fail at once, so a single degraded metric reads as warning.
type TierHealth struct {
	Tier               string
	Calls              int
	SuccessRate        float64
	NonRateLimitedRate float64
	SuccessStatus      Status // met or not_met
	RateLimitStatus    Status // met or not_met
	Status             Status
}

// AIRequestMonitorSnapshot reports per-tier LLM request health over a
// rolling window.
type AIRequestMonitorSnapshot struct {
	Window Window
	Tiers  []TierHealth
}

// ComputeAIRequestMonitorSnapshot folds LLM request rows into per-tier
// success and rate-limit health.
func ComputeAIRequestMonitorSnapshot(rows []store.LLMRequestRow, now time.Time, policy AIMonitorPolicy) AIRequestMonitorSnapshot {
	w := currentWindow(now, policy.WindowDays)

	type tally struct {
		calls          int
		successes      int
		nonRateLimited int
	}
	byTier := make(map[string]*tally)

	for _, row := range rows {
		if row.Timestamp.IsZero() || !w.Contains(row.Timestamp) {
			continue
		}
		tier := row.Tier
		if tier == "" {
			tier = "free"
		}
		t, ok := byTier[tier]
		if !ok {
			t = &tally{}
			byTier[tier] = t
		}
		t.calls++
		if row.Success {
			t.successes++
		}
		if !row.RateLimited {
			t.nonRateLimited++
		}
	}

	snap := AIRequestMonitorSnapshot{Window: w}
	for tier, t := range byTier {
		health := TierHealth{Tier: tier, Calls: t.calls}

		if t.calls < policy.CallFloor {
			health.Status = StatusInsufficient
			snap.Tiers = append(snap.Tiers, health)
			continue
		}

		health.SuccessRate = float64(t.successes) / float64(t.calls)
		health.NonRateLimitedRate = float64(t.nonRateLimited) / float64(t.calls)

		successOK := health.SuccessRate >= policy.SuccessTarget
		rateLimitOK := health.NonRateLimitedRate >= policy.NonRateLimitedTarget
		health.SuccessStatus = metStatus(successOK)
		health.RateLimitStatus = metStatus(rateLimitOK)

		switch {
		case successOK && rateLimitOK:
			health.Status = StatusHealthy
		case !successOK && !rateLimitOK:
			health.Status = StatusCritical
		default:
			health.Status = StatusWarning
		}
		snap.Tiers = append(snap.Tiers, health)
	}

	sort.Slice(snap.Tiers, func(i, j int) bool {
		return snap.Tiers[i].Tier < snap.Tiers[j].Tier
	})
	return snap
}

func metStatus(ok bool) Status {
	if ok {
		return StatusMet
	}
	return StatusNotMet
}
