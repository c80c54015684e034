package mentor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/tmaru/lexiquest/internal/llm"
)

func analysisRequest() *AnalysisRequest {
	return &AnalysisRequest{
		SkillTag:      "past_tense",
		QuestionText:  "Yesterday, she ___ to school.",
		CorrectAnswer: "went",
		LearnerAnswer: "goes",
		Candidates:    AllCauses(),
	}
}

func TestAnalyzer_MatchesCause(t *testing.T) {
	resp := json.RawMessage(`{"cause_tag":"tense_confusion","confidence":0.92,"mentor_analysis":"Past tense is needed after Yesterday.","revenge_question":null}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	a := NewAnalyzer(mock, DefaultAnalyzerConfig())

	result, err := a.Analyze(context.Background(), analysisRequest())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if result.CauseTag != CauseTenseConfusion {
		t.Errorf("cause = %q, want %q", result.CauseTag, CauseTenseConfusion)
	}
	if result.Confidence != 0.92 {
		t.Errorf("confidence = %f, want 0.92", result.Confidence)
	}
	if result.Analysis == "" {
		t.Error("mentor analysis is empty")
	}
	if result.RevengeQuestion != nil {
		t.Error("revenge question should be nil")
	}
}

func TestAnalyzer_NullCause(t *testing.T) {
	resp := json.RawMessage(`{"cause_tag":null,"confidence":0.3,"mentor_analysis":"No clear pattern.","revenge_question":null}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	a := NewAnalyzer(mock, DefaultAnalyzerConfig())

	result, err := a.Analyze(context.Background(), analysisRequest())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if result.CauseTag != CauseUnclassified {
		t.Errorf("cause = %q, want %q", result.CauseTag, CauseUnclassified)
	}
}

func TestAnalyzer_InvalidTagRejected(t *testing.T) {
	resp := json.RawMessage(`{"cause_tag":"fake_tag","confidence":0.9,"mentor_analysis":"test","revenge_question":null}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	a := NewAnalyzer(mock, DefaultAnalyzerConfig())

	result, err := a.Analyze(context.Background(), analysisRequest())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if result.CauseTag != CauseUnclassified {
		t.Errorf("cause = %q, want %q (invalid tag should be rejected)", result.CauseTag, CauseUnclassified)
	}
}

func TestAnalyzer_CarriesRevengeQuestion(t *testing.T) {
	resp := json.RawMessage(`{"cause_tag":"tense_confusion","confidence":0.9,"mentor_analysis":"ok","revenge_question":{"question_text":"Last week, they ___ a movie.","correct_answer":"watched","distractors":["watch"]}}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	a := NewAnalyzer(mock, DefaultAnalyzerConfig())

	result, err := a.Analyze(context.Background(), analysisRequest())
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if result.RevengeQuestion == nil {
		t.Fatal("revenge question missing")
	}
	if result.RevengeQuestion["correct_answer"] != "watched" {
		t.Errorf("correct_answer = %v, want watched", result.RevengeQuestion["correct_answer"])
	}
}

func TestAnalyzer_LLMError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → ErrProviderUnavailable
	a := NewAnalyzer(mock, DefaultAnalyzerConfig())

	if _, err := a.Analyze(context.Background(), analysisRequest()); err == nil {
		t.Error("expected error from empty mock provider")
	}
}

func TestBuildAnalysisMessage(t *testing.T) {
	msg, err := buildAnalysisMessage(analysisRequest())
	if err != nil {
		t.Fatalf("buildAnalysisMessage failed: %v", err)
	}
	if !strings.Contains(msg, "past_tense") {
		t.Error("message should contain the skill tag")
	}
	if !strings.Contains(msg, "Yesterday, she ___ to school.") {
		t.Error("message should contain the question text")
	}
	if !strings.Contains(msg, "tense_confusion") {
		t.Error("message should list candidate cause tags")
	}
}
