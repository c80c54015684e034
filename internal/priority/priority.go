// Package priority orders upcoming questions so weak, risky, recently
// missed skills surface sooner. Scoring is pure: all signals are passed
// in, nothing is read from a store.
package priority

import "sort"

// MasteryState mirrors the mastery package's ladder without importing it,
// keeping this package dependency-free.
type MasteryState string

const (
	StateNew          MasteryState = "new"
	StateLearning     MasteryState = "learning"
	StateConsolidated MasteryState = "consolidated"
	StateMastered     MasteryState = "mastered"
)

// signalCap clamps the review-risk and recent-mistake inputs. An isolated
// skill with a pathological counter must not dominate ordering
// indefinitely: any value at or beyond the cap scores identically.
const signalCap = 3.0

// QuestionInfo is the slice of a question payload the ranker needs.
type QuestionInfo struct {
	SkillTag   string
	Difficulty string // easy, medium, or hard
}

// SkillStats is the accuracy history for one skill.
type SkillStats struct {
	Attempts int
	Correct  int
}

// Inputs carries the per-skill signal maps for a ranking pass.
type Inputs struct {
	Stats          map[string]SkillStats
	Mastery        map[string]MasteryState
	ReviewRisk     map[string]float64
	RecentMistakes map[string]float64
}

// Score computes the urgency of showing a question next; higher is sooner.
func Score(q QuestionInfo, in Inputs) float64 {
	score := masteryPressure(in.Mastery[q.SkillTag])

	if st, ok := in.Stats[q.SkillTag]; ok && st.Attempts > 0 {
		accuracy := float64(st.Correct) / float64(st.Attempts)
		score += 1 - accuracy
	} else {
		// Unseen skills carry full accuracy pressure.
		score += 1
	}

	score += clampSignal(in.ReviewRisk[q.SkillTag])
	score += clampSignal(in.RecentMistakes[q.SkillTag])
	score += difficultyWeight(q.Difficulty)

	return score
}

// ReorderTail re-sorts queue[answered:] by descending priority, leaving
// already-answered items untouched. The sort is stable so equal-priority
// questions keep their generation order.
func ReorderTail(queue []QuestionInfo, answered int, in Inputs) {
	if answered < 0 {
		answered = 0
	}
	if answered >= len(queue) {
		return
	}

	tail := queue[answered:]
	sort.SliceStable(tail, func(i, j int) bool {
		return Score(tail[i], in) > Score(tail[j], in)
	})
}

// masteryPressure weighs unlearned skills far above mastered ones.
func masteryPressure(state MasteryState) float64 {
	switch state {
	case StateLearning:
		return 2.4
	case StateConsolidated:
		return 1.2
	case StateMastered:
		return 0.4
	default:
		// Unknown tags are treated as new.
		return 3.0
	}
}

func difficultyWeight(difficulty string) float64 {
	switch difficulty {
	case "hard":
		return 0.6
	case "medium":
		return 0.4
	default:
		return 0.2
	}
}

func clampSignal(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > signalCap {
		return signalCap
	}
	return v
}
