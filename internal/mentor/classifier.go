package mentor

// Classifier is a rule-based error classifier.
// Returns a cause and confidence (0.0–1.0), or ("", 0) if the rule doesn't apply.
type Classifier interface {
	Name() string
	Classify(input *ClassifyInput) (CauseTag, float64)
}

// DefaultClassifiers returns classifiers in priority order.
// Rushed-guess has highest priority since a fast wrong answer is more likely
// a rush than a slip, even when the answer is off by one character.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&RushedGuessClassifier{},
		&SpellingSlipClassifier{},
	}
}

// RunClassifiers executes rule-based classifiers in order.
// Returns the first match, or ("", 0, "") if no rules apply.
func RunClassifiers(classifiers []Classifier, input *ClassifyInput) (CauseTag, float64, string) {
	for _, c := range classifiers {
		tag, conf := c.Classify(input)
		if tag != "" {
			return tag, conf, c.Name()
		}
	}
	return "", 0, ""
}
