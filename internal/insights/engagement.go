package insights

import (
	"time"

	"github.com/tmaru/lexiquest/internal/store"
)

// EngagementPolicy tunes the engagement snapshot thresholds.
type EngagementPolicy struct {
	WindowDays         int
	ParticipationFloor int     // min events in the current window
	RetentionFloor     int     // min candidate active days
	CompletionGoal     float64 // weekly task completion target
}

// DefaultEngagementPolicy returns the production thresholds.
func DefaultEngagementPolicy() EngagementPolicy {
	return EngagementPolicy{
		WindowDays:         7,
		ParticipationFloor: 3,
		RetentionFloor:     2,
		CompletionGoal:     0.6,
	}
}

// EngagementSnapshot summarizes learner engagement over a window.
type EngagementSnapshot struct {
	Window                      Window
	DailyChallengeParticipation Metric
	WeeklyTaskCompletion        Metric
	NextDayRetention            Metric
}

// ComputeEngagementSnapshot folds the event log and the weekly task
// rows into the three engagement metrics. currentTasks and prevTasks
// are the quest rows for the current and preceding week periods.
func ComputeEngagementSnapshot(events []store.LearningEventRow, currentTasks, prevTasks []store.TaskData, now time.Time, policy EngagementPolicy) EngagementSnapshot {
	cur := currentWindow(now, policy.WindowDays)
	prev := previousWindow(now, policy.WindowDays)

	snap := EngagementSnapshot{Window: cur}
	snap.DailyChallengeParticipation = participationMetric(events, cur, prev, policy)
	snap.WeeklyTaskCompletion = completionMetric(currentTasks, prevTasks, policy)
	snap.NextDayRetention = retentionMetric(events, cur, prev, policy)
	return snap
}

// participationMetric is the fraction of window days with a completed
// daily challenge, compared against the preceding window.
func participationMetric(events []store.LearningEventRow, cur, prev Window, policy EngagementPolicy) Metric {
	m := Metric{
		CurrentRate:  dailyCompleteRate(events, cur, policy.WindowDays),
		PreviousRate: dailyCompleteRate(events, prev, policy.WindowDays),
	}

	if countEventsIn(events, cur) < policy.ParticipationFloor {
		m.Status = StatusInsufficient
		return m
	}
	m.Status = StatusNotMet
	if m.CurrentRate >= m.PreviousRate {
		m.Status = StatusMet
	}
	return m
}

func completionMetric(currentTasks, prevTasks []store.TaskData, policy EngagementPolicy) Metric {
	m := Metric{
		CurrentRate:  completedFraction(currentTasks),
		PreviousRate: completedFraction(prevTasks),
	}

	if len(currentTasks) == 0 {
		m.Status = StatusInsufficient
		return m
	}
	m.Status = StatusNotMet
	if m.CurrentRate >= policy.CompletionGoal {
		m.Status = StatusMet
	}
	return m
}

// retentionMetric is the fraction of active days that were followed by
// another active day within 24-48h, i.e. the next calendar day.
func retentionMetric(events []store.LearningEventRow, cur, prev Window, policy EngagementPolicy) Metric {
	curRate, curCandidates := nextDayRetention(events, cur)
	prevRate, _ := nextDayRetention(events, prev)

	m := Metric{CurrentRate: curRate, PreviousRate: prevRate}
	if curCandidates < policy.RetentionFloor {
		m.Status = StatusInsufficient
		return m
	}
	m.Status = StatusNotMet
	if m.CurrentRate >= m.PreviousRate {
		m.Status = StatusMet
	}
	return m
}

func dailyCompleteRate(events []store.LearningEventRow, w Window, windowDays int) float64 {
	if windowDays <= 0 {
		return 0
	}
	days := make(map[string]bool)
	for _, e := range events {
		if e.Timestamp.IsZero() || !w.Contains(e.Timestamp) {
			continue
		}
		if e.EventType == store.EventSessionComplete && e.Source == store.SourceDaily {
			days[dayKey(e.Timestamp)] = true
		}
	}
	return float64(len(days)) / float64(windowDays)
}

func countEventsIn(events []store.LearningEventRow, w Window) int {
	n := 0
	for _, e := range events {
		if !e.Timestamp.IsZero() && w.Contains(e.Timestamp) {
			n++
		}
	}
	return n
}

func completedFraction(tasks []store.TaskData) float64 {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Status == "completed" {
			done++
		}
	}
	return float64(done) / float64(len(tasks))
}

// nextDayRetention returns the retained fraction and the number of
// candidate days. A candidate is an active day whose following day
// still fits inside the window.
func nextDayRetention(events []store.LearningEventRow, w Window) (float64, int) {
	active := make(map[string]bool)
	for _, e := range events {
		if e.Timestamp.IsZero() || !w.Contains(e.Timestamp) {
			continue
		}
		active[dayKey(e.Timestamp)] = true
	}

	candidates := 0
	retained := 0
	for day := range active {
		t, err := time.ParseInLocation("2006-01-02", day, time.UTC)
		if err != nil {
			continue
		}
		next := t.AddDate(0, 0, 1)
		if !next.Before(w.To) {
			continue
		}
		candidates++
		if active[dayKey(next)] {
			retained++
		}
	}

	if candidates == 0 {
		return 0, 0
	}
	return float64(retained) / float64(candidates), candidates
}
