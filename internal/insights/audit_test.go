package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmaru/lexiquest/internal/store"
)

func auditEvents(correct, sessions int) []store.LearningEventRow {
	var events []store.LearningEventRow
	for i := 0; i < correct; i++ {
		events = append(events, store.LearningEventRow{
			Timestamp: testNow.AddDate(0, 0, -5).Add(time.Duration(i) * time.Minute),
			EventType: store.EventAnswer,
			Source:    store.SourceBattle,
			Result:    store.ResultCorrect,
		})
	}
	for i := 0; i < sessions; i++ {
		events = append(events, store.LearningEventRow{
			Timestamp: testNow.AddDate(0, 0, -4).Add(time.Duration(i) * time.Minute),
			EventType: store.EventSessionComplete,
			Source:    store.SourceBattle,
		})
	}
	return events
}

func checkByName(t *testing.T, snap *DataConsistencyAuditSnapshot, name string) AuditCheck {
	t.Helper()
	for _, c := range snap.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no check %s in %v", name, snap.Checks)
	return AuditCheck{}
}

func TestAuditProfileLowerBounds(t *testing.T) {
	events := auditEvents(10, 6)
	profile := &store.ProfileData{WordsLearned: 12, LessonsCompleted: 6}

	snap := ComputeDataConsistencyAudit(profile, events, nil, DefaultAuditPolicy())

	// Counter running ahead of the log is fine; trailing it is not.
	assert.Equal(t, StatusMet, checkByName(t, &snap, "words_learned").Status)
	assert.Equal(t, StatusMet, checkByName(t, &snap, "lessons_completed").Status)

	profile.WordsLearned = 7
	snap = ComputeDataConsistencyAudit(profile, events, nil, DefaultAuditPolicy())
	words := checkByName(t, &snap, "words_learned")
	assert.Equal(t, StatusWarning, words.Status)
	assert.Equal(t, 10, words.Expected)
	assert.Equal(t, StatusWarning, snap.Status)
}

func TestAuditHistoryWithinTolerance(t *testing.T) {
	events := auditEvents(10, 6)
	history := []store.HistoryData{
		{TotalQuestions: 2, Timestamp: testNow.AddDate(0, 0, -5).Add(time.Hour)},
		{TotalQuestions: 2, Timestamp: testNow.AddDate(0, 0, -5).Add(2 * time.Hour)},
		{TotalQuestions: 2, Timestamp: testNow.AddDate(0, 0, -5).Add(3 * time.Hour)},
		{TotalQuestions: 1, Timestamp: testNow.AddDate(0, 0, -4).Add(time.Hour)},
		{TotalQuestions: 1, Timestamp: testNow.AddDate(0, 0, -4).Add(2 * time.Hour)},
		{TotalQuestions: 1, Timestamp: testNow.AddDate(0, 0, -4).Add(3 * time.Hour)},
	}
	profile := &store.ProfileData{WordsLearned: 10, LessonsCompleted: 6}

	snap := ComputeDataConsistencyAudit(profile, events, history, DefaultAuditPolicy())

	// 9 history questions vs 10 logged answers sits inside the ±20%
	// band; 6 missions match the 6 session completes.
	questions := checkByName(t, &snap, "history_questions")
	assert.Equal(t, StatusMet, questions.Status)
	assert.Equal(t, 9, questions.Actual)
	assert.Equal(t, StatusMet, checkByName(t, &snap, "history_missions").Status)
	assert.Equal(t, StatusMet, snap.Status)
}

func TestAuditHistoryOutsideTolerance(t *testing.T) {
	events := auditEvents(10, 6)
	history := []store.HistoryData{
		{TotalQuestions: 3, Timestamp: testNow.AddDate(0, 0, -5).Add(time.Hour)},
	}

	snap := ComputeDataConsistencyAudit(nil, events, history, DefaultAuditPolicy())
	assert.Equal(t, StatusWarning, checkByName(t, &snap, "history_questions").Status)
	assert.Equal(t, StatusWarning, snap.Status)
}

func TestAuditDailyEventsExcludedFromHistoryChecks(t *testing.T) {
	events := auditEvents(10, 6)
	// Daily-challenge answers never appear in mission history.
	for i := 0; i < 20; i++ {
		events = append(events, store.LearningEventRow{
			Timestamp: testNow.AddDate(0, 0, -5).Add(time.Duration(i) * time.Second),
			EventType: store.EventAnswer,
			Source:    store.SourceDaily,
			Result:    store.ResultCorrect,
		})
	}
	history := []store.HistoryData{
		{TotalQuestions: 5, Timestamp: testNow.AddDate(0, 0, -5).Add(time.Hour)},
		{TotalQuestions: 5, Timestamp: testNow.AddDate(0, 0, -4).Add(2 * time.Hour)},
	}

	snap := ComputeDataConsistencyAudit(nil, events, history, DefaultAuditPolicy())
	questions := checkByName(t, &snap, "history_questions")
	assert.Equal(t, 10, questions.Expected)
	assert.Equal(t, StatusMet, questions.Status)
}

func TestAuditInsufficientWithoutData(t *testing.T) {
	snap := ComputeDataConsistencyAudit(nil, nil, nil, DefaultAuditPolicy())

	require.NotEmpty(t, snap.Checks)
	for _, c := range snap.Checks {
		assert.Equal(t, StatusInsufficient, c.Status, c.Name)
	}
	assert.Equal(t, StatusInsufficient, snap.Status)
}

func TestAuditMissionCountCheck(t *testing.T) {
	events := auditEvents(10, 6)
	history := []store.HistoryData{
		{TotalQuestions: 2, Timestamp: testNow.AddDate(0, 0, -5).Add(time.Hour)},
		{TotalQuestions: 2, Timestamp: testNow.AddDate(0, 0, -5).Add(2 * time.Hour)},
		{TotalQuestions: 2, Timestamp: testNow.AddDate(0, 0, -4).Add(time.Hour)},
		{TotalQuestions: 2, Timestamp: testNow.AddDate(0, 0, -4).Add(2 * time.Hour)},
		{TotalQuestions: 2, Timestamp: testNow.AddDate(0, 0, -4).Add(3 * time.Hour)},
	}

	snap := ComputeDataConsistencyAudit(nil, events, history, DefaultAuditPolicy())
	missions := checkByName(t, &snap, "history_missions")
	assert.Equal(t, 6, missions.Expected)
	assert.Equal(t, 5, missions.Actual)
	assert.Equal(t, StatusMet, missions.Status)
}
