package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tmaru/lexiquest/internal/store"
)

func activityOnDays(daysAgo ...int) []store.LearningEventRow {
	var events []store.LearningEventRow
	for _, d := range daysAgo {
		events = append(events, store.LearningEventRow{
			Timestamp: testNow.AddDate(0, 0, -d).Add(time.Hour),
			EventType: store.EventAnswer,
			Source:    store.SourceBattle,
			Result:    store.ResultCorrect,
		})
	}
	return events
}

func TestGuardianAcceptanceMetOnLift(t *testing.T) {
	// Two active days last week, four this week: +100% lift.
	events := activityOnDays(1, 2, 3, 4, 8, 9)

	snap := ComputeGuardianAcceptanceSnapshot(events, testNow, DefaultGuardianPolicy())

	assert.Equal(t, StatusMet, snap.Status)
	assert.Equal(t, 4, snap.CurrentActiveDays)
	assert.Equal(t, 2, snap.PreviousActiveDays)
	assert.InDelta(t, 1.0, snap.Lift, 0.001)
}

func TestGuardianAcceptanceNotMetBelowThreshold(t *testing.T) {
	// Three days both weeks: zero lift.
	events := activityOnDays(1, 2, 3, 8, 9, 10)

	snap := ComputeGuardianAcceptanceSnapshot(events, testNow, DefaultGuardianPolicy())
	assert.Equal(t, StatusNotMet, snap.Status)
	assert.InDelta(t, 0.0, snap.Lift, 0.001)
}

func TestGuardianAcceptanceInsufficientWithoutBaseline(t *testing.T) {
	// No previous-week activity: no baseline, however active now.
	events := activityOnDays(1, 2, 3, 4, 5, 6)

	snap := ComputeGuardianAcceptanceSnapshot(events, testNow, DefaultGuardianPolicy())
	assert.Equal(t, StatusInsufficient, snap.Status)
	assert.Zero(t, snap.PreviousActiveDays)
}

func TestGuardianAcceptanceCountsDistinctDaysOnly(t *testing.T) {
	// Many events on one day still count as one active day.
	events := activityOnDays(1, 1, 1, 1, 8)

	snap := ComputeGuardianAcceptanceSnapshot(events, testNow, DefaultGuardianPolicy())
	assert.Equal(t, 1, snap.CurrentActiveDays)
	assert.Equal(t, 1, snap.PreviousActiveDays)
}
