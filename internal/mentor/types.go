package mentor

// CauseTag classifies why a learner got an answer wrong.
type CauseTag string

const (
	CauseTenseConfusion  CauseTag = "tense_confusion"
	CausePluralAgreement CauseTag = "plural_agreement"
	CauseFalseFriend     CauseTag = "false_friend"
	CauseSpellingSlip    CauseTag = "spelling_slip"
	CauseListeningGap    CauseTag = "listening_gap"
	CauseRushedGuess     CauseTag = "rushed_guess"
	CauseUnclassified    CauseTag = "unclassified"
)

// ClassifyInput holds the context for classifying a wrong answer.
type ClassifyInput struct {
	SkillTag       string
	QuestionText   string
	CorrectAnswer  string
	LearnerAnswer  string
	ResponseTimeMs int
	SkillAccuracy  float64 // historical accuracy for this skill (0.0–1.0)
}

// AnalysisResult is the output of analyzing a wrong answer.
type AnalysisResult struct {
	CauseTag        CauseTag
	Confidence      float64 // 0.0–1.0
	ClassifierName  string  // which classifier/LLM produced this result
	Analysis        string  // mentor explanation (empty for rule-based)
	RevengeQuestion map[string]any
}
