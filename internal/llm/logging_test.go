package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/tmaru/lexiquest/internal/store"
)

// recordingEventRepo captures appended LLM request events.
type recordingEventRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
}

func (r *recordingEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &recordingEventRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 10, OutputTokens: 20},
	})
	p := WithLogging(mock, "anthropic", repo)

	ctx := WithPurpose(context.Background(), "mentor-analysis")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if !e.Success || e.RateLimited {
		t.Errorf("flags = success %v rateLimited %v, want true/false", e.Success, e.RateLimited)
	}
	if e.Provider != "anthropic" || e.Tier != "free" {
		t.Errorf("provider/tier = %s/%s", e.Provider, e.Tier)
	}
	if e.Purpose != "mentor-analysis" {
		t.Errorf("purpose = %s", e.Purpose)
	}
	if e.InputTokens != 10 || e.OutputTokens != 20 {
		t.Errorf("tokens = %d/%d", e.InputTokens, e.OutputTokens)
	}
}

func TestLogging_RecordsRateLimit(t *testing.T) {
	repo := &recordingEventRepo{}
	mock := NewMockProvider(MockResponse{
		Err: &ErrRateLimit{Err: errors.New("429")},
	})
	p := WithLogging(mock, "openai", repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	e := repo.events[0]
	if e.Success {
		t.Error("rate limited call logged as success")
	}
	if !e.RateLimited {
		t.Error("rate limited call not flagged")
	}
	if e.ErrorMessage == "" {
		t.Error("error message not recorded")
	}
}

func TestLogging_NonRateLimitFailure(t *testing.T) {
	repo := &recordingEventRepo{}
	mock := NewMockProvider(MockResponse{
		Err: &ErrProviderUnavailable{Err: errors.New("down")},
	})
	p := WithLogging(mock, "gemini", repo)

	_, _ = p.Generate(context.Background(), Request{})

	e := repo.events[0]
	if e.Success || e.RateLimited {
		t.Errorf("flags = success %v rateLimited %v, want false/false", e.Success, e.RateLimited)
	}
}
