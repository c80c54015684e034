package mastery

import (
	"math"
	"testing"
)

func TestSingleCorrectAnswerIsDampened(t *testing.T) {
	result := ComputeUpdate(UpdateInput{
		PreviousScore: 0,
		PreviousState: StateNew,
		Attempts:      1,
		Correct:       1,
	}, DefaultPolicy())

	if math.Abs(result.SmoothedAccuracy-0.6) > 0.001 {
		t.Errorf("smoothed accuracy = %.3f, want 0.6 (not raw 1.0)", result.SmoothedAccuracy)
	}
	if result.Score >= 45 {
		t.Errorf("score = %.1f, want < 45 after one answer", result.Score)
	}
	if result.State != StateNew {
		t.Errorf("state = %s, want new", result.State)
	}
}

func TestStableHighPerformanceReachesConsolidated(t *testing.T) {
	result := ComputeUpdate(UpdateInput{
		PreviousScore: 66,
		PreviousState: StateLearning,
		Attempts:      6,
		Correct:       6,
	}, DefaultPolicy())

	if result.Score < 68 {
		t.Errorf("score = %.1f, want >= 68", result.Score)
	}
	if result.State != StateConsolidated {
		t.Errorf("state = %s, want consolidated", result.State)
	}
}

func TestHardMissFromMasteredDropsOneTierOnly(t *testing.T) {
	result := ComputeUpdate(UpdateInput{
		PreviousScore: 90,
		PreviousState: StateMastered,
		Attempts:      12,
		Correct:       8,
	}, DefaultPolicy())

	if result.Score >= 74 {
		t.Errorf("score = %.1f, want < 74", result.Score)
	}
	if result.State != StateConsolidated {
		t.Errorf("state = %s, want consolidated (never below on one event)", result.State)
	}
}

func TestHysteresisHoldsStateNearBoundary(t *testing.T) {
	policy := DefaultPolicy()

	// Score between the downgrade (60) and upgrade (70) thresholds of
	// the learning/consolidated boundary keeps whichever state the
	// skill is already in.
	fromBelow := nextState(StateLearning, 65, policy)
	if fromBelow != StateLearning {
		t.Errorf("learning at 65 = %s, want learning (below upgrade)", fromBelow)
	}

	fromAbove := nextState(StateConsolidated, 65, policy)
	if fromAbove != StateConsolidated {
		t.Errorf("consolidated at 65 = %s, want consolidated (above downgrade)", fromAbove)
	}
}

func TestScoreStepIsBounded(t *testing.T) {
	policy := DefaultPolicy()

	up := ComputeUpdate(UpdateInput{
		PreviousScore: 0,
		PreviousState: StateNew,
		Attempts:      20,
		Correct:       20,
	}, policy)
	if up.Score > policy.MaxStepPerEvent {
		t.Errorf("score rose %.1f in one event, cap is %.1f", up.Score, policy.MaxStepPerEvent)
	}

	down := ComputeUpdate(UpdateInput{
		PreviousScore: 100,
		PreviousState: StateMastered,
		Attempts:      20,
		Correct:       0,
	}, policy)
	if 100-down.Score > policy.MaxStepPerEvent {
		t.Errorf("score fell %.1f in one event, cap is %.1f", 100-down.Score, policy.MaxStepPerEvent)
	}
}

func TestScoreStaysInRange(t *testing.T) {
	policy := DefaultPolicy()
	score := 50.0
	state := StateLearning

	for i := 0; i < 50; i++ {
		result := ComputeUpdate(UpdateInput{
			PreviousScore: score,
			PreviousState: state,
			Attempts:      i + 1,
			Correct:       (i + 1) / 2,
		}, policy)
		if result.Score < 0 || result.Score > 100 {
			t.Fatalf("score %.2f escaped [0,100] at step %d", result.Score, i)
		}
		score = result.Score
		state = result.State
	}
}

func TestSmoothedAccuracyConvergesToRaw(t *testing.T) {
	// With many attempts the neutral prior washes out.
	got := smoothedAccuracy(400, 300, 4)
	if math.Abs(got-0.75) > 0.01 {
		t.Errorf("smoothed accuracy at high sample = %.3f, want ~0.75", got)
	}
}

func TestSmoothedAccuracyNormalizesBadCounts(t *testing.T) {
	if got := smoothedAccuracy(2, 5, 4); got > 1 {
		t.Errorf("correct > attempts produced accuracy %.3f > 1", got)
	}
	if got := smoothedAccuracy(0, 0, 4); math.Abs(got-0.5) > 0.001 {
		t.Errorf("no attempts = %.3f, want neutral 0.5", got)
	}
}
