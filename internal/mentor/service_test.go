package mentor

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/tmaru/lexiquest/internal/llm"
	"github.com/tmaru/lexiquest/internal/store"
)

// fakeMistakeRepo records Enrich calls and signals on each one.
type fakeMistakeRepo struct {
	store.MistakeRepo

	mu       sync.Mutex
	enriched []enrichCall
	signal   chan struct{}
}

type enrichCall struct {
	mistakeID string
	causeTag  string
	analysis  string
	revenge   map[string]any
}

func newFakeMistakeRepo() *fakeMistakeRepo {
	return &fakeMistakeRepo{signal: make(chan struct{}, 8)}
}

func (f *fakeMistakeRepo) Enrich(_ context.Context, mistakeID, causeTag, analysis string, revenge map[string]any) error {
	f.mu.Lock()
	f.enriched = append(f.enriched, enrichCall{mistakeID, causeTag, analysis, revenge})
	f.mu.Unlock()
	f.signal <- struct{}{}
	return nil
}

func (f *fakeMistakeRepo) lastEnrich(t *testing.T) enrichCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.enriched) == 0 {
		t.Fatal("no Enrich calls recorded")
	}
	return f.enriched[len(f.enriched)-1]
}

func (f *fakeMistakeRepo) waitEnrich(t *testing.T) {
	t.Helper()
	select {
	case <-f.signal:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for async enrichment")
	}
}

func rushedInput() *ClassifyInput {
	return &ClassifyInput{
		SkillTag:       "past_tense",
		QuestionText:   "Yesterday, she ___ to school.",
		CorrectAnswer:  "went",
		LearnerAnswer:  "goes",
		ResponseTimeMs: 800,
	}
}

func unclassifiableInput() *ClassifyInput {
	return &ClassifyInput{
		SkillTag:       "past_tense",
		QuestionText:   "Yesterday, she ___ to school.",
		CorrectAnswer:  "went",
		LearnerAnswer:  "goed",
		ResponseTimeMs: 5000,
	}
}

func TestService_RuleBasedEnrichesSynchronously(t *testing.T) {
	repo := newFakeMistakeRepo()
	svc := NewService(nil, repo)
	defer svc.Close()

	result := svc.Analyze(context.Background(), "m-1", rushedInput())
	if result.CauseTag != CauseRushedGuess {
		t.Errorf("got %q, want %q", result.CauseTag, CauseRushedGuess)
	}
	if result.ClassifierName != "rushed-guess" {
		t.Errorf("got classifier %q, want rushed-guess", result.ClassifierName)
	}

	call := repo.lastEnrich(t)
	if call.mistakeID != "m-1" || call.causeTag != "rushed_guess" {
		t.Errorf("enriched (%q, %q), want (m-1, rushed_guess)", call.mistakeID, call.causeTag)
	}
	if call.analysis != "" || call.revenge != nil {
		t.Error("rule-based enrichment should carry no analysis or revenge question")
	}
}

func TestService_UnclassifiedWithoutLLM(t *testing.T) {
	repo := newFakeMistakeRepo()
	svc := NewService(nil, repo)
	defer svc.Close()

	result := svc.Analyze(context.Background(), "m-1", unclassifiableInput())
	if result.CauseTag != CauseUnclassified {
		t.Errorf("got %q, want %q", result.CauseTag, CauseUnclassified)
	}
	if result.ClassifierName != "none" {
		t.Errorf("got classifier %q, want none", result.ClassifierName)
	}
	if len(repo.enriched) != 0 {
		t.Errorf("got %d Enrich calls, want 0", len(repo.enriched))
	}
}

func TestService_LLMEnrichesAsync(t *testing.T) {
	resp := json.RawMessage(`{
		"cause_tag": "tense_confusion",
		"confidence": 0.9,
		"mentor_analysis": "You used the base form where the past tense is needed.",
		"revenge_question": {
			"question_text": "Last week, they ___ a movie.",
			"correct_answer": "watched",
			"distractors": ["watch", "watches"]
		}
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	repo := newFakeMistakeRepo()
	svc := NewService(mock, repo)
	defer svc.Close()

	syncResult := svc.Analyze(context.Background(), "m-7", unclassifiableInput())
	if syncResult.CauseTag != CauseUnclassified {
		t.Errorf("sync result: got %q, want %q", syncResult.CauseTag, CauseUnclassified)
	}

	repo.waitEnrich(t)

	call := repo.lastEnrich(t)
	if call.mistakeID != "m-7" {
		t.Errorf("enriched mistake %q, want m-7", call.mistakeID)
	}
	if call.causeTag != "tense_confusion" {
		t.Errorf("cause tag = %q, want tense_confusion", call.causeTag)
	}
	if call.analysis == "" {
		t.Error("mentor analysis not written")
	}
	if call.revenge["correct_answer"] != "watched" {
		t.Errorf("revenge correct_answer = %v, want watched", call.revenge["correct_answer"])
	}

	pending := svc.TakePending()
	if len(pending) != 1 {
		t.Fatalf("got %d pending revenge questions, want 1", len(pending))
	}
	if pending[0].MistakeID != "m-7" || pending[0].SkillTag != "past_tense" {
		t.Errorf("pending = %+v", pending[0])
	}

	// Drained.
	if got := svc.TakePending(); len(got) != 0 {
		t.Errorf("second TakePending returned %d entries, want 0", len(got))
	}
}

func TestService_LLMInvalidTag(t *testing.T) {
	resp := json.RawMessage(`{"cause_tag":"made_up_tag","confidence":0.8,"mentor_analysis":"hmm","revenge_question":null}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	repo := newFakeMistakeRepo()
	svc := NewService(mock, repo)
	defer svc.Close()

	svc.Analyze(context.Background(), "m-2", unclassifiableInput())
	repo.waitEnrich(t)

	call := repo.lastEnrich(t)
	if call.causeTag != "unclassified" {
		t.Errorf("cause tag = %q, want unclassified (invalid tag rejected)", call.causeTag)
	}
	if got := svc.TakePending(); len(got) != 0 {
		t.Errorf("null revenge question queued %d entries, want 0", len(got))
	}
}

func TestService_RulePriorityOverLLM(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue, must not be called
	repo := newFakeMistakeRepo()
	svc := NewService(mock, repo)
	defer svc.Close()

	result := svc.Analyze(context.Background(), "m-3", rushedInput())
	if result.CauseTag != CauseRushedGuess {
		t.Errorf("got %q, want %q", result.CauseTag, CauseRushedGuess)
	}
	if mock.CallCount() != 0 {
		t.Errorf("LLM was called %d times, want 0", mock.CallCount())
	}
}

func TestService_PendingQueueBounded(t *testing.T) {
	svc := &Service{}
	for i := 0; i < maxPendingRevenge+5; i++ {
		svc.pushPending(PendingRevenge{MistakeID: string(rune('a' + i))})
	}
	pending := svc.TakePending()
	if len(pending) != maxPendingRevenge {
		t.Fatalf("queue holds %d entries, want %d", len(pending), maxPendingRevenge)
	}
	// Oldest entries were dropped.
	if pending[0].MistakeID != string(rune('a'+5)) {
		t.Errorf("oldest kept entry = %q, want %q", pending[0].MistakeID, string(rune('a'+5)))
	}
}
