package store

import (
	"context"
	"fmt"
	"time"

	"github.com/tmaru/lexiquest/ent"
	"github.com/tmaru/lexiquest/ent/masteryevent"
)

func (r *eventRepo) AppendMasteryEvent(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetSkillTag(data.SkillTag).
		SetFromState(data.FromState).
		SetToState(data.ToState).
		SetTrigger(data.Trigger).
		SetScore(data.Score)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}

func (r *eventRepo) MasteryEventsBetween(ctx context.Context, from, to time.Time) ([]MasteryEventRow, error) {
	events, err := r.client.MasteryEvent.Query().
		Where(
			masteryevent.TimestampGTE(from),
			masteryevent.TimestampLT(to),
		).
		Order(ent.Asc(masteryevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery events: %w", err)
	}

	rows := make([]MasteryEventRow, len(events))
	for i, e := range events {
		rows[i] = MasteryEventRow{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			SkillTag:  e.SkillTag,
			FromState: e.FromState,
			ToState:   e.ToState,
			Trigger:   e.Trigger,
			Score:     e.Score,
		}
	}
	return rows, nil
}
