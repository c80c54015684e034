package mentor

import "testing"

func TestRushedGuessClassifier_UnderThreshold(t *testing.T) {
	c := &RushedGuessClassifier{}
	tag, conf := c.Classify(&ClassifyInput{ResponseTimeMs: 1500})
	if tag != CauseRushedGuess {
		t.Errorf("got cause %q, want %q", tag, CauseRushedGuess)
	}
	if conf != 0.9 {
		t.Errorf("got confidence %f, want 0.9", conf)
	}
}

func TestRushedGuessClassifier_AtThreshold(t *testing.T) {
	c := &RushedGuessClassifier{}
	tag, _ := c.Classify(&ClassifyInput{ResponseTimeMs: 2000})
	if tag != "" {
		t.Errorf("got cause %q at threshold, want empty", tag)
	}
}

func TestSpellingSlipClassifier_OneEditSubstitution(t *testing.T) {
	c := &SpellingSlipClassifier{}
	// A transposition is two substitutions, not one edit.
	tag, _ := c.Classify(&ClassifyInput{
		CorrectAnswer: "receive",
		LearnerAnswer: "recieve",
	})
	if tag != "" {
		t.Errorf("transposition got %q, want empty (two edits)", tag)
	}

	tag, conf := c.Classify(&ClassifyInput{
		CorrectAnswer: "apple",
		LearnerAnswer: "appla",
	})
	if tag != CauseSpellingSlip {
		t.Errorf("got cause %q, want %q", tag, CauseSpellingSlip)
	}
	if conf != 0.85 {
		t.Errorf("got confidence %f, want 0.85", conf)
	}
}

func TestSpellingSlipClassifier_OneEditInsertionDeletion(t *testing.T) {
	c := &SpellingSlipClassifier{}

	tag, _ := c.Classify(&ClassifyInput{CorrectAnswer: "banana", LearnerAnswer: "banan"})
	if tag != CauseSpellingSlip {
		t.Errorf("deletion: got %q, want %q", tag, CauseSpellingSlip)
	}

	tag, _ = c.Classify(&ClassifyInput{CorrectAnswer: "cat", LearnerAnswer: "cart"})
	if tag != CauseSpellingSlip {
		t.Errorf("insertion: got %q, want %q", tag, CauseSpellingSlip)
	}
}

func TestSpellingSlipClassifier_CaseAndWhitespaceInsensitive(t *testing.T) {
	c := &SpellingSlipClassifier{}
	tag, _ := c.Classify(&ClassifyInput{CorrectAnswer: "Apple ", LearnerAnswer: " appla"})
	if tag != CauseSpellingSlip {
		t.Errorf("got %q, want %q", tag, CauseSpellingSlip)
	}
}

func TestSpellingSlipClassifier_NoMatch(t *testing.T) {
	c := &SpellingSlipClassifier{}

	// Identical after normalization is not a slip.
	if tag, _ := c.Classify(&ClassifyInput{CorrectAnswer: "apple", LearnerAnswer: "Apple"}); tag != "" {
		t.Errorf("identical: got %q, want empty", tag)
	}

	// Far-apart answers.
	if tag, _ := c.Classify(&ClassifyInput{CorrectAnswer: "apple", LearnerAnswer: "orange"}); tag != "" {
		t.Errorf("distant: got %q, want empty", tag)
	}

	// Empty learner answer.
	if tag, _ := c.Classify(&ClassifyInput{CorrectAnswer: "a", LearnerAnswer: ""}); tag != "" {
		t.Errorf("empty: got %q, want empty", tag)
	}

	// Long answers are excluded.
	long := "this sentence is far too long for the slip rule"
	if tag, _ := c.Classify(&ClassifyInput{CorrectAnswer: long, LearnerAnswer: long + "x"}); tag != "" {
		t.Errorf("long: got %q, want empty", tag)
	}
}

func TestRunClassifiers_RushedPriority(t *testing.T) {
	// Both rushed AND slip match → rushed wins.
	input := &ClassifyInput{
		CorrectAnswer:  "apple",
		LearnerAnswer:  "appla",
		ResponseTimeMs: 1000,
	}
	tag, _, name := RunClassifiers(DefaultClassifiers(), input)
	if tag != CauseRushedGuess {
		t.Errorf("got cause %q, want %q (rushed should take priority)", tag, CauseRushedGuess)
	}
	if name != "rushed-guess" {
		t.Errorf("got classifier %q, want rushed-guess", name)
	}
}

func TestRunClassifiers_SlipFallback(t *testing.T) {
	input := &ClassifyInput{
		CorrectAnswer:  "apple",
		LearnerAnswer:  "appla",
		ResponseTimeMs: 5000,
	}
	tag, _, name := RunClassifiers(DefaultClassifiers(), input)
	if tag != CauseSpellingSlip {
		t.Errorf("got cause %q, want %q", tag, CauseSpellingSlip)
	}
	if name != "spelling-slip" {
		t.Errorf("got classifier %q, want spelling-slip", name)
	}
}

func TestRunClassifiers_NoMatch(t *testing.T) {
	input := &ClassifyInput{
		CorrectAnswer:  "went",
		LearnerAnswer:  "goed",
		ResponseTimeMs: 5000,
	}
	tag, conf, name := RunClassifiers(DefaultClassifiers(), input)
	if tag != "" || conf != 0 || name != "" {
		t.Errorf("got (%q, %f, %q), want empty result", tag, conf, name)
	}
}

func TestDefaultClassifiers_Order(t *testing.T) {
	classifiers := DefaultClassifiers()
	if len(classifiers) != 2 {
		t.Fatalf("got %d classifiers, want 2", len(classifiers))
	}
	if classifiers[0].Name() != "rushed-guess" {
		t.Errorf("first classifier is %q, want rushed-guess", classifiers[0].Name())
	}
	if classifiers[1].Name() != "spelling-slip" {
		t.Errorf("second classifier is %q, want spelling-slip", classifiers[1].Name())
	}
}

func TestTaxonomy_Lookup(t *testing.T) {
	if GetCause(CauseFalseFriend) == nil {
		t.Error("false_friend missing from taxonomy")
	}
	if GetCause("no_such_cause") != nil {
		t.Error("unknown tag should return nil")
	}
	if got := len(AllCauses()); got != 6 {
		t.Errorf("taxonomy has %d causes, want 6", got)
	}
}
