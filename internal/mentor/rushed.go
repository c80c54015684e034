package mentor

// RushedGuessThresholdMs is the maximum response time (exclusive) for a
// wrong answer to be classified as a rushed guess.
const RushedGuessThresholdMs = 2000

// RushedGuessClassifier flags answers submitted too quickly as guesses.
type RushedGuessClassifier struct{}

func (c *RushedGuessClassifier) Name() string { return "rushed-guess" }

func (c *RushedGuessClassifier) Classify(input *ClassifyInput) (CauseTag, float64) {
	if input.ResponseTimeMs < RushedGuessThresholdMs {
		return CauseRushedGuess, 0.9
	}
	return "", 0
}
