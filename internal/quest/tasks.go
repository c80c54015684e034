package quest

import (
	"sort"
	"time"

	"github.com/tmaru/lexiquest/internal/store"
)

const evidenceCap = 5

// Metric defines one weekly quest: a stable task id, a numeric goal,
// and the event filter that counts toward it.
type Metric struct {
	TaskID  string
	Goal    int
	Matches func(store.LearningEventRow) bool
}

// WeeklyMetrics is the fixed quest set, evaluated every period.
func WeeklyMetrics() []Metric {
	return []Metric{
		{
			TaskID: "daily_challenge",
			Goal:   5,
			Matches: func(e store.LearningEventRow) bool {
				return e.EventType == store.EventSessionComplete && e.Source == store.SourceDaily
			},
		},
		{
			TaskID: "srs_reviews",
			Goal:   20,
			Matches: func(e store.LearningEventRow) bool {
				return e.EventType == store.EventAnswer && e.Source == store.SourceSRS
			},
		},
		{
			TaskID: "battle_precision",
			Goal:   15,
			Matches: func(e store.LearningEventRow) bool {
				return e.EventType == store.EventAnswer && e.Source == store.SourceBattle &&
					e.Result == store.ResultCorrect
			},
		},
	}
}

// BuildWeeklyTasks recomputes the quest rows for the week containing
// now from the event log. A task that was already completed keeps its
// recorded completedAt verbatim, whatever the recount says; progress
// and evidence still refresh.
func BuildWeeklyTasks(events []store.LearningEventRow, now time.Time, existing []store.TaskData) []store.TaskData {
	period := PeriodStart(now)
	periodEnd := PeriodEnd(period)

	prior := make(map[string]store.TaskData, len(existing))
	for _, t := range existing {
		if t.PeriodStart.Equal(period) {
			prior[t.TaskID] = t
		}
	}

	metrics := WeeklyMetrics()
	tasks := make([]store.TaskData, 0, len(metrics))
	for _, m := range metrics {
		matched := matchingEvents(events, m, period, periodEnd)

		task := store.TaskData{
			TaskID:      m.TaskID,
			PeriodStart: period,
			Progress:    len(matched),
			Goal:        m.Goal,
			Status:      "active",
			Evidence:    buildEvidence(matched),
		}

		if old, ok := prior[m.TaskID]; ok && old.CompletedAt != nil {
			task.Status = "completed"
			task.CompletedAt = old.CompletedAt
		} else if task.Progress >= task.Goal {
			task.Status = "completed"
			completedAt := completionTime(matched, m.Goal, now)
			task.CompletedAt = &completedAt
		}

		tasks = append(tasks, task)
	}
	return tasks
}

func matchingEvents(events []store.LearningEventRow, m Metric, from, to time.Time) []store.LearningEventRow {
	var matched []store.LearningEventRow
	for _, e := range events {
		if e.Timestamp.IsZero() || e.Timestamp.Before(from) || !e.Timestamp.Before(to) {
			continue
		}
		if m.Matches(e) {
			matched = append(matched, e)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.Before(matched[j].Timestamp)
	})
	return matched
}

// completionTime is the timestamp of the event that reached the goal.
func completionTime(matched []store.LearningEventRow, goal int, fallback time.Time) time.Time {
	if goal > 0 && len(matched) >= goal {
		return matched[goal-1].Timestamp
	}
	return fallback
}

// buildEvidence keeps the last five contributing events, most recent
// first.
func buildEvidence(matched []store.LearningEventRow) []store.TaskEvidence {
	start := 0
	if len(matched) > evidenceCap {
		start = len(matched) - evidenceCap
	}
	recent := matched[start:]

	evidence := make([]store.TaskEvidence, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		e := recent[i]
		evidence = append(evidence, store.TaskEvidence{
			Timestamp: e.Timestamp,
			Source:    string(e.Source),
			EventType: string(e.EventType),
			SkillTag:  e.SkillTag,
		})
	}
	return evidence
}
