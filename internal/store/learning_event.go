package store

import (
	"context"
	"fmt"
	"time"

	"github.com/tmaru/lexiquest/ent"
	"github.com/tmaru/lexiquest/ent/learningevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLearningEvent(ctx context.Context, data LearningEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.LearningEvent.Create().
		SetSequence(seqNum).
		SetEventType(string(data.EventType)).
		SetSource(string(data.Source)).
		SetResult(string(data.Result)).
		SetSkillTag(data.SkillTag).
		SetQuestionHash(data.QuestionHash).
		SetSessionID(data.SessionID)

	if !data.Timestamp.IsZero() {
		builder = builder.SetTimestamp(data.Timestamp)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save learning event: %w", err)
	}
	return nil
}

func (r *eventRepo) LearningEventsBetween(ctx context.Context, from, to time.Time) ([]LearningEventRow, error) {
	events, err := r.client.LearningEvent.Query().
		Where(
			learningevent.TimestampGTE(from),
			learningevent.TimestampLT(to),
		).
		Order(ent.Asc(learningevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query learning events: %w", err)
	}
	return learningRows(events), nil
}

func (r *eventRepo) AllLearningEvents(ctx context.Context) ([]LearningEventRow, error) {
	events, err := r.client.LearningEvent.Query().
		Order(ent.Asc(learningevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query learning events: %w", err)
	}
	return learningRows(events), nil
}

func (r *eventRepo) CorrectAnswerCount(ctx context.Context) (int, error) {
	n, err := r.client.LearningEvent.Query().
		Where(
			learningevent.EventType(string(EventAnswer)),
			learningevent.Result(string(ResultCorrect)),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count correct answers: %w", err)
	}
	return n, nil
}

func (r *eventRepo) SessionCompleteCount(ctx context.Context) (int, error) {
	n, err := r.client.LearningEvent.Query().
		Where(learningevent.EventType(string(EventSessionComplete))).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count session completes: %w", err)
	}
	return n, nil
}

func (r *eventRepo) RecentWrongBySkill(ctx context.Context, since time.Time) (map[string]int, error) {
	events, err := r.client.LearningEvent.Query().
		Where(
			learningevent.EventType(string(EventAnswer)),
			learningevent.Result(string(ResultWrong)),
			learningevent.TimestampGTE(since),
			learningevent.SkillTagNEQ(""),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent wrong answers: %w", err)
	}

	counts := make(map[string]int)
	for _, e := range events {
		counts[e.SkillTag]++
	}
	return counts, nil
}

func learningRows(events []*ent.LearningEvent) []LearningEventRow {
	rows := make([]LearningEventRow, len(events))
	for i, e := range events {
		rows[i] = LearningEventRow{
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
			EventType:    EventType(e.EventType),
			Source:       Source(e.Source),
			Result:       Result(e.Result),
			SkillTag:     e.SkillTag,
			QuestionHash: e.QuestionHash,
			SessionID:    e.SessionID,
		}
	}
	return rows
}
