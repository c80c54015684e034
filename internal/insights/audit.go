package insights

import (
	"math"
	"time"

	"github.com/tmaru/lexiquest/internal/store"
)

// AuditPolicy tunes the data-consistency audit.
type AuditPolicy struct {
	SampleFloor int
	Tolerance   float64 // allowed relative deviation for approximate checks
}

// DefaultAuditPolicy returns the production thresholds.
func DefaultAuditPolicy() AuditPolicy {
	return AuditPolicy{SampleFloor: 5, Tolerance: 0.2}
}

// AuditCheck is one cross-check between a derived counter and the
// event log.
type AuditCheck struct {
	Name     string
	Expected int // value derived from the event log
	Actual   int // value from the counter under audit
	Status   Status // met (ok), warning, or insufficient
}

// DataConsistencyAuditSnapshot cross-checks the profile and history
// stores against the event log. The log is the source of truth; the
// audited counters may legitimately run ahead of it (bonus rounding),
// so the profile checks are lower bounds rather than exact matches.
type DataConsistencyAuditSnapshot struct {
	Checks []AuditCheck
	Status Status
}

// ComputeDataConsistencyAudit runs every cross-check and folds their
// statuses: warning if any check warns, insufficient only when every
// check lacked sample, met otherwise.
func ComputeDataConsistencyAudit(profile *store.ProfileData, events []store.LearningEventRow, history []store.HistoryData, policy AuditPolicy) DataConsistencyAuditSnapshot {
	var prof store.ProfileData
	if profile != nil {
		prof = *profile
	}

	snap := DataConsistencyAuditSnapshot{}
	snap.Checks = append(snap.Checks,
		lowerBoundCheck("words_learned", prof.WordsLearned, countEvents(events, func(e store.LearningEventRow) bool {
			return e.EventType == store.EventAnswer && e.Result == store.ResultCorrect
		}), policy),
		lowerBoundCheck("lessons_completed", prof.LessonsCompleted, countEvents(events, func(e store.LearningEventRow) bool {
			return e.EventType == store.EventSessionComplete
		}), policy),
	)
	snap.Checks = append(snap.Checks, historyChecks(events, history, policy)...)

	snap.Status = StatusInsufficient
	allInsufficient := true
	for _, c := range snap.Checks {
		if c.Status != StatusInsufficient {
			allInsufficient = false
		}
		if c.Status == StatusWarning {
			snap.Status = StatusWarning
		}
	}
	if !allInsufficient && snap.Status != StatusWarning {
		snap.Status = StatusMet
	}
	return snap
}

// lowerBoundCheck verifies actual >= expected. The audited counter may
// exceed the log (bonuses), never trail it.
func lowerBoundCheck(name string, actual, expected int, policy AuditPolicy) AuditCheck {
	check := AuditCheck{Name: name, Expected: expected, Actual: actual}
	switch {
	case expected < policy.SampleFloor:
		check.Status = StatusInsufficient
	case actual >= expected:
		check.Status = StatusMet
	default:
		check.Status = StatusWarning
	}
	return check
}

// historyChecks compares mission history totals against non-daily
// events over the time range both stores cover.
func historyChecks(events []store.LearningEventRow, history []store.HistoryData, policy AuditPolicy) []AuditCheck {
	overlap, ok := overlapRange(events, history)
	if !ok {
		return []AuditCheck{
			{Name: "history_questions", Status: StatusInsufficient},
			{Name: "history_missions", Status: StatusInsufficient},
		}
	}

	historyQuestions := 0
	historyMissions := 0
	for _, h := range history {
		if h.Timestamp.IsZero() || !overlap.Contains(h.Timestamp) {
			continue
		}
		historyQuestions += h.TotalQuestions
		historyMissions++
	}

	eventAnswers := 0
	eventSessions := 0
	for _, e := range events {
		if e.Timestamp.IsZero() || !overlap.Contains(e.Timestamp) || e.Source == store.SourceDaily {
			continue
		}
		switch e.EventType {
		case store.EventAnswer:
			eventAnswers++
		case store.EventSessionComplete:
			eventSessions++
		}
	}

	return []AuditCheck{
		approxCheck("history_questions", historyQuestions, eventAnswers, policy),
		approxCheck("history_missions", historyMissions, eventSessions, policy),
	}
}

// approxCheck verifies the two counts agree within the tolerance band.
func approxCheck(name string, actual, expected int, policy AuditPolicy) AuditCheck {
	check := AuditCheck{Name: name, Expected: expected, Actual: actual}
	if expected < policy.SampleFloor {
		check.Status = StatusInsufficient
		return check
	}
	deviation := math.Abs(float64(actual)-float64(expected)) / float64(expected)
	if deviation <= policy.Tolerance {
		check.Status = StatusMet
	} else {
		check.Status = StatusWarning
	}
	return check
}

func countEvents(events []store.LearningEventRow, match func(store.LearningEventRow) bool) int {
	n := 0
	for _, e := range events {
		if !e.Timestamp.IsZero() && match(e) {
			n++
		}
	}
	return n
}

// overlapRange is the half-open range of whole UTC days both the
// event log and the history store cover. Day granularity keeps
// same-day records comparable even when one store's last write landed
// earlier in the day. ok is false when either store is empty or the
// ranges do not intersect.
func overlapRange(events []store.LearningEventRow, history []store.HistoryData) (Window, bool) {
	var eventMin, eventMax, histMin, histMax time.Time

	for _, e := range events {
		if e.Timestamp.IsZero() {
			continue
		}
		if eventMin.IsZero() || e.Timestamp.Before(eventMin) {
			eventMin = e.Timestamp
		}
		if e.Timestamp.After(eventMax) {
			eventMax = e.Timestamp
		}
	}
	for _, h := range history {
		if h.Timestamp.IsZero() {
			continue
		}
		if histMin.IsZero() || h.Timestamp.Before(histMin) {
			histMin = h.Timestamp
		}
		if h.Timestamp.After(histMax) {
			histMax = h.Timestamp
		}
	}

	if eventMin.IsZero() || histMin.IsZero() {
		return Window{}, false
	}

	from := eventMin
	if histMin.After(from) {
		from = histMin
	}
	to := eventMax
	if histMax.Before(to) {
		to = histMax
	}
	if to.Before(from) {
		return Window{}, false
	}
	return Window{From: startOfDay(from), To: startOfDay(to).AddDate(0, 0, 1)}, true
}

func startOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
