package store

import (
	"context"
	"fmt"
	"time"

	"github.com/tmaru/lexiquest/ent"
	"github.com/tmaru/lexiquest/ent/llmrequestevent"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetTier(data.Tier).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetRateLimited(data.RateLimited).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) LLMRequestsBetween(ctx context.Context, from, to time.Time) ([]LLMRequestRow, error) {
	events, err := r.client.LLMRequestEvent.Query().
		Where(
			llmrequestevent.TimestampGTE(from),
			llmrequestevent.TimestampLT(to),
		).
		Order(ent.Asc(llmrequestevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	rows := make([]LLMRequestRow, len(events))
	for i, e := range events {
		rows[i] = LLMRequestRow{
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
			Provider:     e.Provider,
			Model:        e.Model,
			Tier:         e.Tier,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			Success:      e.Success,
			RateLimited:  e.RateLimited,
			LatencyMs:    e.LatencyMs,
		}
	}
	return rows, nil
}
