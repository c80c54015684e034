package insights

import (
	"sort"
	"time"

	"github.com/tmaru/lexiquest/internal/store"
)

// RepeatCausePolicy tunes the repeated-mistake-cause snapshots.
type RepeatCausePolicy struct {
	// TaggedFloor is the minimum tagged-mistake count a window needs
	// before its repeat rate is trusted.
	TaggedFloor int

	// TargetReduction is the relative repeat-rate reduction vs the
	// baseline that counts as passed (0.2 means -20%).
	TargetReduction float64
}

// DefaultRepeatCausePolicy returns the production thresholds.
func DefaultRepeatCausePolicy() RepeatCausePolicy {
	return RepeatCausePolicy{TaggedFloor: 5, TargetReduction: 0.2}
}

// CauseCount is one mentor cause tag with its occurrence count.
type CauseCount struct {
	CauseTag string
	Count    int
}

// RepeatedCauseSnapshot summarizes how concentrated the learner's
// mistakes are on recurring causes inside one window.
type RepeatedCauseSnapshot struct {
	Window        Window
	TaggedCount   int
	RepeatedCount int
	RepeatRate    float64
	TopCauses     []CauseCount
}

// RepeatedCauseTrend compares one window against the equal-length
// window immediately before it.
type RepeatedCauseTrend struct {
	WindowDays    int
	Current       RepeatedCauseSnapshot
	Previous      RepeatedCauseSnapshot
	DeltaRate     float64
	RelativeDelta float64 // delta / previous rate; 0 when no baseline
	Status        Status
}

// RepeatedCauseGoal classifies the current repeat rate against a fixed
// historical baseline and a target relative reduction.
type RepeatedCauseGoal struct {
	Current      RepeatedCauseSnapshot
	BaselineRate float64
	TargetRate   float64
	Status       Status
}

// trendWindowDays are the windows the trend report covers.
var trendWindowDays = []int{7, 14, 30}

// ComputeRepeatedCauseSnapshot groups the tagged mistakes inside the
// window by cause. A cause is repeated when it appears at least twice;
// the repeat rate is repeated mistakes over tagged mistakes.
func ComputeRepeatedCauseSnapshot(mistakes []store.MistakeData, now time.Time, windowDays int) RepeatedCauseSnapshot {
	w := currentWindow(now, windowDays)
	return foldCauses(mistakes, w)
}

// ComputeRepeatedCauseTrends evaluates the repeat rate over 7, 14 and
// 30 day windows, each against its immediately preceding window.
func ComputeRepeatedCauseTrends(mistakes []store.MistakeData, now time.Time, policy RepeatCausePolicy) []RepeatedCauseTrend {
	trends := make([]RepeatedCauseTrend, 0, len(trendWindowDays))
	for _, days := range trendWindowDays {
		cur := foldCauses(mistakes, currentWindow(now, days))
		prev := foldCauses(mistakes, previousWindow(now, days))

		trend := RepeatedCauseTrend{
			WindowDays: days,
			Current:    cur,
			Previous:   prev,
			DeltaRate:  cur.RepeatRate - prev.RepeatRate,
		}
		if prev.RepeatRate > 0 {
			trend.RelativeDelta = trend.DeltaRate / prev.RepeatRate
		}

		switch {
		case cur.TaggedCount < policy.TaggedFloor || prev.TaggedCount < policy.TaggedFloor:
			trend.Status = StatusInsufficient
		case trend.DeltaRate <= 0:
			trend.Status = StatusPassed
		default:
			trend.Status = StatusNotMet
		}
		trends = append(trends, trend)
	}
	return trends
}

// ComputeRepeatedCauseGoal compares the current window's repeat rate
// against a fixed baseline rate, passing when the rate dropped by at
// least the target reduction.
func ComputeRepeatedCauseGoal(mistakes []store.MistakeData, now time.Time, windowDays int, baselineRate float64, policy RepeatCausePolicy) RepeatedCauseGoal {
	cur := foldCauses(mistakes, currentWindow(now, windowDays))

	goal := RepeatedCauseGoal{
		Current:      cur,
		BaselineRate: baselineRate,
		TargetRate:   baselineRate * (1 - policy.TargetReduction),
	}

	switch {
	case cur.TaggedCount < policy.TaggedFloor || baselineRate <= 0:
		goal.Status = StatusInsufficient
	case cur.RepeatRate <= goal.TargetRate:
		goal.Status = StatusPassed
	default:
		goal.Status = StatusNotMet
	}
	return goal
}

func foldCauses(mistakes []store.MistakeData, w Window) RepeatedCauseSnapshot {
	counts := make(map[string]int)
	for _, m := range mistakes {
		if m.CreatedAt.IsZero() || !w.Contains(m.CreatedAt) || m.CauseTag == "" {
			continue
		}
		counts[m.CauseTag]++
	}

	snap := RepeatedCauseSnapshot{Window: w}
	for tag, n := range counts {
		snap.TaggedCount += n
		if n >= 2 {
			snap.RepeatedCount += n
		}
		snap.TopCauses = append(snap.TopCauses, CauseCount{CauseTag: tag, Count: n})
	}
	if snap.TaggedCount > 0 {
		snap.RepeatRate = float64(snap.RepeatedCount) / float64(snap.TaggedCount)
	}

	sort.Slice(snap.TopCauses, func(i, j int) bool {
		if snap.TopCauses[i].Count != snap.TopCauses[j].Count {
			return snap.TopCauses[i].Count > snap.TopCauses[j].Count
		}
		return snap.TopCauses[i].CauseTag < snap.TopCauses[j].CauseTag
	})
	return snap
}
