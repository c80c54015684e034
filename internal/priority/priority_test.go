package priority

import "testing"

func symmetricInputs() Inputs {
	return Inputs{
		Stats: map[string]SkillStats{
			"weak":   {Attempts: 10, Correct: 3},
			"strong": {Attempts: 10, Correct: 9},
		},
		Mastery: map[string]MasteryState{
			"weak":   StateNew,
			"strong": StateMastered,
		},
		ReviewRisk: map[string]float64{
			"weak":   2.5,
			"strong": 0.2,
		},
		RecentMistakes: map[string]float64{
			"weak":   2,
			"strong": 0,
		},
	}
}

func TestWeakSkillOutranksMasteredSkill(t *testing.T) {
	in := symmetricInputs()

	weak := Score(QuestionInfo{SkillTag: "weak", Difficulty: "hard"}, in)
	strong := Score(QuestionInfo{SkillTag: "strong", Difficulty: "easy"}, in)

	if weak <= strong {
		t.Errorf("weak skill priority %.2f should exceed mastered %.2f", weak, strong)
	}
}

func TestMasteryPressureOrdering(t *testing.T) {
	states := []MasteryState{StateNew, StateLearning, StateConsolidated, StateMastered}
	for i := 1; i < len(states); i++ {
		if masteryPressure(states[i-1]) <= masteryPressure(states[i]) {
			t.Errorf("pressure(%s) should exceed pressure(%s)", states[i-1], states[i])
		}
	}
}

func TestReviewRiskClampsAtCap(t *testing.T) {
	q := QuestionInfo{SkillTag: "s", Difficulty: "medium"}
	base := Inputs{
		Stats:   map[string]SkillStats{"s": {Attempts: 4, Correct: 2}},
		Mastery: map[string]MasteryState{"s": StateLearning},
	}

	atCap := base
	atCap.ReviewRisk = map[string]float64{"s": 3}
	beyondCap := base
	beyondCap.ReviewRisk = map[string]float64{"s": 99}

	if Score(q, atCap) != Score(q, beyondCap) {
		t.Errorf("risk 3 and 99 should score identically: %.2f vs %.2f",
			Score(q, atCap), Score(q, beyondCap))
	}
}

func TestRecentMistakesClampAtCap(t *testing.T) {
	q := QuestionInfo{SkillTag: "s", Difficulty: "easy"}
	base := Inputs{Mastery: map[string]MasteryState{"s": StateConsolidated}}

	atCap := base
	atCap.RecentMistakes = map[string]float64{"s": 3}
	beyondCap := base
	beyondCap.RecentMistakes = map[string]float64{"s": 50}

	if Score(q, atCap) != Score(q, beyondCap) {
		t.Error("mistake counts past the cap should not change priority")
	}
}

func TestDifficultyWeightOrdering(t *testing.T) {
	if difficultyWeight("hard") <= difficultyWeight("medium") {
		t.Error("hard should outweigh medium")
	}
	if difficultyWeight("medium") <= difficultyWeight("easy") {
		t.Error("medium should outweigh easy")
	}
}

func TestUnseenSkillCarriesFullPressure(t *testing.T) {
	in := Inputs{}
	got := Score(QuestionInfo{SkillTag: "never_seen", Difficulty: "easy"}, in)

	// new pressure (3.0) + accuracy pressure (1.0) + easy weight (0.2)
	want := 4.2
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("unseen skill score = %.2f, want %.2f", got, want)
	}
}

func TestReorderTailLeavesAnsweredAlone(t *testing.T) {
	in := symmetricInputs()
	queue := []QuestionInfo{
		{SkillTag: "strong", Difficulty: "easy"},
		{SkillTag: "strong", Difficulty: "easy"},
		{SkillTag: "weak", Difficulty: "hard"},
	}

	ReorderTail(queue, 1, in)

	if queue[0].SkillTag != "strong" {
		t.Error("answered head must not move")
	}
	if queue[1].SkillTag != "weak" {
		t.Errorf("tail should lead with weak skill, got %s", queue[1].SkillTag)
	}
}

func TestReorderTailAnsweredBeyondQueue(t *testing.T) {
	queue := []QuestionInfo{{SkillTag: "a"}}
	// Must not panic.
	ReorderTail(queue, 5, Inputs{})
	ReorderTail(queue, -1, Inputs{})
}

func TestReorderTailStableForEqualScores(t *testing.T) {
	in := Inputs{Mastery: map[string]MasteryState{"x": StateLearning, "y": StateLearning}}
	queue := []QuestionInfo{
		{SkillTag: "x", Difficulty: "medium"},
		{SkillTag: "y", Difficulty: "medium"},
	}

	ReorderTail(queue, 0, in)

	if queue[0].SkillTag != "x" || queue[1].SkillTag != "y" {
		t.Error("equal-priority questions should keep their original order")
	}
}
