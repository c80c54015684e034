package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmaru/lexiquest/internal/store"
)

func mistakesWithCauses(daysAgo int, causes ...string) []store.MistakeData {
	var out []store.MistakeData
	for i, cause := range causes {
		out = append(out, store.MistakeData{
			MistakeID: "m",
			SkillTag:  "past_tense",
			CauseTag:  cause,
			CreatedAt: testNow.AddDate(0, 0, -daysAgo).Add(time.Duration(i) * time.Minute),
		})
	}
	return out
}

func TestRepeatedCauseSnapshotRates(t *testing.T) {
	// Five tagged mistakes: two tense_confusion, two careless, one
	// vocabulary_gap. Four of five belong to repeated causes.
	mistakes := mistakesWithCauses(2,
		"tense_confusion", "tense_confusion", "careless", "careless", "vocabulary_gap")

	snap := ComputeRepeatedCauseSnapshot(mistakes, testNow, 7)

	assert.Equal(t, 5, snap.TaggedCount)
	assert.Equal(t, 4, snap.RepeatedCount)
	assert.InDelta(t, 0.8, snap.RepeatRate, 0.001)

	require.Len(t, snap.TopCauses, 3)
	assert.Equal(t, 2, snap.TopCauses[0].Count)
	assert.Equal(t, "vocabulary_gap", snap.TopCauses[2].CauseTag)
}

func TestRepeatedCauseSnapshotSkipsUntaggedAndOutOfWindow(t *testing.T) {
	mistakes := mistakesWithCauses(2, "careless", "careless")
	mistakes = append(mistakes,
		store.MistakeData{CreatedAt: testNow.AddDate(0, 0, -2)},                        // untagged
		store.MistakeData{CauseTag: "careless", CreatedAt: testNow.AddDate(0, 0, -30)}, // stale
		store.MistakeData{CauseTag: "careless"},                                        // zero timestamp
	)

	snap := ComputeRepeatedCauseSnapshot(mistakes, testNow, 7)
	assert.Equal(t, 2, snap.TaggedCount)
	assert.Equal(t, 2, snap.RepeatedCount)
}

func TestRepeatedCauseTrendsComparePrecedingWindows(t *testing.T) {
	// Current 7 days concentrated on one cause; preceding 7 days
	// spread across distinct causes.
	mistakes := mistakesWithCauses(2,
		"tense_confusion", "tense_confusion", "tense_confusion", "careless", "careless")
	mistakes = append(mistakes, mistakesWithCauses(10,
		"careless", "vocabulary_gap", "tense_confusion", "word_order", "rushed")...)

	trends := ComputeRepeatedCauseTrends(mistakes, testNow, DefaultRepeatCausePolicy())
	require.Len(t, trends, 3)

	week := trends[0]
	assert.Equal(t, 7, week.WindowDays)
	assert.InDelta(t, 1.0, week.Current.RepeatRate, 0.001)
	assert.InDelta(t, 0.0, week.Previous.RepeatRate, 0.001)
	assert.InDelta(t, 1.0, week.DeltaRate, 0.001)
	assert.Equal(t, StatusNotMet, week.Status)

	// The 14-day window holds all ten mistakes; its preceding window
	// is empty, so the trend lacks sample.
	assert.Equal(t, StatusInsufficient, trends[1].Status)
}

func TestRepeatedCauseTrendPassesOnImprovement(t *testing.T) {
	mistakes := mistakesWithCauses(2,
		"careless", "vocabulary_gap", "tense_confusion", "word_order", "rushed")
	mistakes = append(mistakes, mistakesWithCauses(10,
		"careless", "careless", "careless", "rushed", "rushed")...)

	trends := ComputeRepeatedCauseTrends(mistakes, testNow, DefaultRepeatCausePolicy())
	week := trends[0]

	assert.Equal(t, StatusPassed, week.Status)
	assert.InDelta(t, -1.0, week.DeltaRate, 0.001)
	assert.InDelta(t, -1.0, week.RelativeDelta, 0.001)
}

func TestRepeatedCauseGoal(t *testing.T) {
	mistakes := mistakesWithCauses(2,
		"careless", "careless", "vocabulary_gap", "word_order", "tense_confusion")
	// Repeat rate 0.4 against baseline 0.6: a 33% reduction beats the
	// 20% target.
	goal := ComputeRepeatedCauseGoal(mistakes, testNow, 7, 0.6, DefaultRepeatCausePolicy())
	assert.Equal(t, StatusPassed, goal.Status)
	assert.InDelta(t, 0.48, goal.TargetRate, 0.001)

	// Same mistakes against a baseline the rate no longer undercuts.
	goal = ComputeRepeatedCauseGoal(mistakes, testNow, 7, 0.45, DefaultRepeatCausePolicy())
	assert.Equal(t, StatusNotMet, goal.Status)
}

func TestRepeatedCauseGoalInsufficient(t *testing.T) {
	mistakes := mistakesWithCauses(2, "careless", "careless")

	goal := ComputeRepeatedCauseGoal(mistakes, testNow, 7, 0.6, DefaultRepeatCausePolicy())
	assert.Equal(t, StatusInsufficient, goal.Status)

	// A zero baseline has nothing to improve against.
	goal = ComputeRepeatedCauseGoal(mistakesWithCauses(2, "a", "a", "a", "a", "a"), testNow, 7, 0, DefaultRepeatCausePolicy())
	assert.Equal(t, StatusInsufficient, goal.Status)
}
