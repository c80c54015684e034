package mentor

import "strings"

// maxSlipAnswerLen is the longest correct answer (in runes) the slip rule
// applies to. Longer answers have too many plausible one-character edits
// for the rule to mean anything.
const maxSlipAnswerLen = 24

// SpellingSlipClassifier flags wrong answers that are one edit away from
// the correct answer as typos rather than knowledge gaps.
type SpellingSlipClassifier struct{}

func (c *SpellingSlipClassifier) Name() string { return "spelling-slip" }

func (c *SpellingSlipClassifier) Classify(input *ClassifyInput) (CauseTag, float64) {
	correct := strings.ToLower(strings.TrimSpace(input.CorrectAnswer))
	learner := strings.ToLower(strings.TrimSpace(input.LearnerAnswer))
	if correct == "" || learner == "" || correct == learner {
		return "", 0
	}
	if len([]rune(correct)) > maxSlipAnswerLen {
		return "", 0
	}
	if withinOneEdit(correct, learner) {
		return CauseSpellingSlip, 0.85
	}
	return "", 0
}

// withinOneEdit reports whether a and b differ by exactly one
// substitution, insertion, or deletion.
func withinOneEdit(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	switch len(ra) - len(rb) {
	case 0:
		diffs := 0
		for i := range ra {
			if ra[i] != rb[i] {
				diffs++
				if diffs > 1 {
					return false
				}
			}
		}
		return diffs == 1
	case 1:
		// ra is one rune longer; check rb matches ra with one rune skipped.
		i, j := 0, 0
		skipped := false
		for i < len(ra) && j < len(rb) {
			if ra[i] == rb[j] {
				i++
				j++
				continue
			}
			if skipped {
				return false
			}
			skipped = true
			i++
		}
		return true
	default:
		return false
	}
}
