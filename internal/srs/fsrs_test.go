package srs

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestCard() *Card {
	return NewCard("hash-1", map[string]any{"skillTag": "past_tense"}, testNow)
}

func TestFirstReviewEntersLearning(t *testing.T) {
	card := newTestCard()

	next := Review(card, RatingGood, DefaultParams(), testNow)

	if next.State != StateLearning {
		t.Errorf("state = %s, want learning", next.State)
	}
	if next.Reps != 1 {
		t.Errorf("reps = %d, want 1", next.Reps)
	}
	if next.Lapses != 0 {
		t.Errorf("lapses = %d, want 0 (again from New is not a lapse)", next.Lapses)
	}
	if next.Difficulty < 1 || next.Difficulty > 10 {
		t.Errorf("difficulty %.2f outside [1,10]", next.Difficulty)
	}
	if next.Due.Sub(testNow) > 15*time.Minute {
		t.Errorf("learning step due %v too far out", next.Due.Sub(testNow))
	}
	// Input card must not be mutated.
	if card.Reps != 0 || card.State != StateNew {
		t.Error("Review mutated its input card")
	}
}

func TestFirstReviewEasySkipsLearning(t *testing.T) {
	next := Review(newTestCard(), RatingEasy, DefaultParams(), testNow)

	if next.State != StateReview {
		t.Errorf("state = %s, want review", next.State)
	}
	if next.ScheduledDays < 1 {
		t.Errorf("scheduled_days = %.1f, want >= 1", next.ScheduledDays)
	}
}

func TestGoodGraduatesLearningCard(t *testing.T) {
	p := DefaultParams()
	card := Review(newTestCard(), RatingGood, p, testNow)

	later := testNow.Add(10 * time.Minute)
	next := Review(card, RatingGood, p, later)

	if next.State != StateReview {
		t.Errorf("state = %s, want review", next.State)
	}
	if next.Due.Before(later.AddDate(0, 0, 1)) {
		t.Errorf("graduated due %v should be at least a day out", next.Due)
	}
}

func TestAgainAlwaysReschedulesToMinutes(t *testing.T) {
	p := DefaultParams()

	// Build a well-settled card with high stability.
	card := &Card{
		QuestionHash: "hash-1",
		State:        StateReview,
		Stability:    120,
		Difficulty:   4,
		Due:          testNow,
		LastReview:   timePtr(testNow.AddDate(0, 0, -120)),
	}

	next := Review(card, RatingAgain, p, testNow)

	if next.State != StateRelearning {
		t.Errorf("state = %s, want relearning", next.State)
	}
	if next.Due.Sub(testNow) > 15*time.Minute {
		t.Errorf("again due %v must be now or very soon regardless of stability", next.Due.Sub(testNow))
	}
	if next.Stability >= card.Stability {
		t.Errorf("lapse stability %.2f should drop below %.2f", next.Stability, card.Stability)
	}
}

func TestLapsesIncrementOnlyOnAgainFromNonNew(t *testing.T) {
	p := DefaultParams()

	fromNew := Review(newTestCard(), RatingAgain, p, testNow)
	if fromNew.Lapses != 0 {
		t.Errorf("lapses from New = %d, want 0", fromNew.Lapses)
	}

	again := Review(fromNew, RatingAgain, p, testNow.Add(2*time.Minute))
	if again.Lapses != 1 {
		t.Errorf("lapses from Learning = %d, want 1", again.Lapses)
	}

	good := Review(again, RatingGood, p, testNow.Add(5*time.Minute))
	if good.Lapses != 1 {
		t.Errorf("good rating changed lapses: %d", good.Lapses)
	}
}

func TestStabilityGrowsOnSettledSuccess(t *testing.T) {
	p := DefaultParams()
	card := &Card{
		QuestionHash: "hash-1",
		State:        StateReview,
		Stability:    10,
		Difficulty:   5,
		Due:          testNow,
		LastReview:   timePtr(testNow.AddDate(0, 0, -10)),
	}

	next := Review(card, RatingGood, p, testNow)

	if next.Stability <= card.Stability {
		t.Errorf("stability %.2f should grow past %.2f on success", next.Stability, card.Stability)
	}
	if next.State != StateReview {
		t.Errorf("state = %s, want review", next.State)
	}
}

func TestEasyGrowsStabilityFasterThanHard(t *testing.T) {
	p := DefaultParams()
	base := &Card{
		QuestionHash: "hash-1",
		State:        StateReview,
		Stability:    10,
		Difficulty:   5,
		Due:          testNow,
		LastReview:   timePtr(testNow.AddDate(0, 0, -10)),
	}

	easy := Review(base, RatingEasy, p, testNow)
	hard := Review(base, RatingHard, p, testNow)

	if easy.Stability <= hard.Stability {
		t.Errorf("easy stability %.2f should exceed hard %.2f", easy.Stability, hard.Stability)
	}
}

func TestRelearningRecoversToReview(t *testing.T) {
	p := DefaultParams()
	card := &Card{
		QuestionHash: "hash-1",
		State:        StateRelearning,
		Stability:    2,
		Difficulty:   6,
		Due:          testNow,
		LastReview:   timePtr(testNow.Add(-5 * time.Minute)),
	}

	next := Review(card, RatingGood, p, testNow)

	if next.State != StateReview {
		t.Errorf("state = %s, want review", next.State)
	}
}

func TestIntervalMatchesStabilityAtDefaultRetention(t *testing.T) {
	// With the default 0.9 retention and the power curve constants,
	// the scheduled interval equals the stability.
	p := DefaultParams()
	for _, s := range []float64{1, 5, 30, 200} {
		days := nextIntervalDays(s, p)
		want := int(s)
		if days != want {
			t.Errorf("interval(S=%.0f) = %d, want %d", s, days, want)
		}
	}
}

func TestIntervalRespectsMaximum(t *testing.T) {
	p := DefaultParams()
	p.MaximumIntervalDays = 30
	if days := nextIntervalDays(500, p); days != 30 {
		t.Errorf("interval = %d, want capped 30", days)
	}
}

func TestDifficultyStaysClamped(t *testing.T) {
	p := DefaultParams()
	d := 10.0
	for i := 0; i < 20; i++ {
		d = nextDifficulty(d, RatingAgain, p)
		if d < 1 || d > 10 {
			t.Fatalf("difficulty %.2f escaped [1,10]", d)
		}
	}

	d = 1.0
	for i := 0; i < 20; i++ {
		d = nextDifficulty(d, RatingEasy, p)
		if d < 1 || d > 10 {
			t.Fatalf("difficulty %.2f escaped [1,10]", d)
		}
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
