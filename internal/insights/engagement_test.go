package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tmaru/lexiquest/internal/store"
)

func dailyCompletesOnDays(daysAgo ...int) []store.LearningEventRow {
	var events []store.LearningEventRow
	for _, d := range daysAgo {
		events = append(events, store.LearningEventRow{
			Timestamp: testNow.AddDate(0, 0, -d).Add(2 * time.Hour),
			EventType: store.EventSessionComplete,
			Source:    store.SourceDaily,
		})
	}
	return events
}

func TestEngagementParticipation(t *testing.T) {
	// Four daily-challenge days this week, two the week before.
	events := dailyCompletesOnDays(1, 2, 3, 4, 8, 9)

	snap := ComputeEngagementSnapshot(events, nil, nil, testNow, DefaultEngagementPolicy())
	m := snap.DailyChallengeParticipation

	assert.Equal(t, StatusMet, m.Status)
	assert.InDelta(t, 4.0/7, m.CurrentRate, 0.001)
	assert.InDelta(t, 2.0/7, m.PreviousRate, 0.001)
}

func TestEngagementParticipationNotMetOnDecline(t *testing.T) {
	events := dailyCompletesOnDays(1, 2, 3, 8, 9, 10, 11, 12)

	snap := ComputeEngagementSnapshot(events, nil, nil, testNow, DefaultEngagementPolicy())
	assert.Equal(t, StatusNotMet, snap.DailyChallengeParticipation.Status)
}

func TestEngagementParticipationInsufficient(t *testing.T) {
	// Below the current-window event floor.
	events := dailyCompletesOnDays(1, 9, 10, 11)

	snap := ComputeEngagementSnapshot(events, nil, nil, testNow, DefaultEngagementPolicy())
	assert.Equal(t, StatusInsufficient, snap.DailyChallengeParticipation.Status)
}

func TestEngagementTaskCompletion(t *testing.T) {
	current := []store.TaskData{
		{TaskID: "daily_challenge", Status: "completed"},
		{TaskID: "srs_reviews", Status: "completed"},
		{TaskID: "battle_precision", Status: "active"},
	}
	previous := []store.TaskData{
		{TaskID: "daily_challenge", Status: "active"},
		{TaskID: "srs_reviews", Status: "active"},
		{TaskID: "battle_precision", Status: "active"},
	}

	snap := ComputeEngagementSnapshot(nil, current, previous, testNow, DefaultEngagementPolicy())
	m := snap.WeeklyTaskCompletion

	assert.Equal(t, StatusMet, m.Status) // 2/3 beats the 0.6 goal
	assert.InDelta(t, 2.0/3, m.CurrentRate, 0.001)
	assert.InDelta(t, 0.0, m.PreviousRate, 0.001)
}

func TestEngagementTaskCompletionInsufficientWithoutTasks(t *testing.T) {
	snap := ComputeEngagementSnapshot(nil, nil, nil, testNow, DefaultEngagementPolicy())
	assert.Equal(t, StatusInsufficient, snap.WeeklyTaskCompletion.Status)
}

func TestEngagementNextDayRetention(t *testing.T) {
	// Active days 1..4 ago: days 4, 3, 2 each retained; yesterday's
	// follow-up day (today) has no activity yet.
	events := activityOnDays(1, 2, 3, 4)

	snap := ComputeEngagementSnapshot(events, nil, nil, testNow, DefaultEngagementPolicy())
	m := snap.NextDayRetention

	assert.Equal(t, StatusMet, m.Status)
	assert.InDelta(t, 0.75, m.CurrentRate, 0.001)
}

func TestEngagementNextDayRetentionWithGaps(t *testing.T) {
	// Days 6 and 1 ago lack a following active day; days 4, 3 and 2
	// retain.
	events := activityOnDays(1, 2, 3, 4, 6)

	snap := ComputeEngagementSnapshot(events, nil, nil, testNow, DefaultEngagementPolicy())
	assert.InDelta(t, 0.6, snap.NextDayRetention.CurrentRate, 0.001)
}

func TestEngagementNextDayRetentionInsufficient(t *testing.T) {
	events := activityOnDays(3)

	snap := ComputeEngagementSnapshot(events, nil, nil, testNow, DefaultEngagementPolicy())
	assert.Equal(t, StatusInsufficient, snap.NextDayRetention.Status)
}
