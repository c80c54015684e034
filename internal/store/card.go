package store

import (
	"context"
	"fmt"
	"time"

	"github.com/tmaru/lexiquest/ent"
	"github.com/tmaru/lexiquest/ent/reviewcard"
)

// cardRepo implements CardRepo using the ent client.
type cardRepo struct {
	client *ent.Client
}

func (r *cardRepo) Get(ctx context.Context, questionHash string) (*CardData, error) {
	rc, err := r.client.ReviewCard.Query().
		Where(reviewcard.QuestionHash(questionHash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query card %s: %w", questionHash, err)
	}
	return cardData(rc), nil
}

func (r *cardRepo) Save(ctx context.Context, card *CardData) error {
	existing, err := r.client.ReviewCard.Query().
		Where(reviewcard.QuestionHash(card.QuestionHash)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query card %s: %w", card.QuestionHash, err)
	}

	if ent.IsNotFound(err) {
		builder := r.client.ReviewCard.Create().
			SetQuestionHash(card.QuestionHash).
			SetDue(card.Due).
			SetStability(card.Stability).
			SetDifficulty(card.Difficulty).
			SetElapsedDays(card.ElapsedDays).
			SetScheduledDays(card.ScheduledDays).
			SetReps(card.Reps).
			SetLapses(card.Lapses).
			SetState(card.State).
			SetNillableLastReview(card.LastReview)
		if card.Payload != nil {
			builder = builder.SetPayload(card.Payload)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("create card %s: %w", card.QuestionHash, err)
		}
		return nil
	}

	builder := existing.Update().
		SetDue(card.Due).
		SetStability(card.Stability).
		SetDifficulty(card.Difficulty).
		SetElapsedDays(card.ElapsedDays).
		SetScheduledDays(card.ScheduledDays).
		SetReps(card.Reps).
		SetLapses(card.Lapses).
		SetState(card.State).
		SetNillableLastReview(card.LastReview)
	if card.Payload != nil {
		builder = builder.SetPayload(card.Payload)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("update card %s: %w", card.QuestionHash, err)
	}
	return nil
}

func (r *cardRepo) Due(ctx context.Context, now time.Time, limit int) ([]CardData, error) {
	q := r.client.ReviewCard.Query().
		Where(reviewcard.DueLTE(now)).
		Order(ent.Asc(reviewcard.FieldDue))
	if limit > 0 {
		q = q.Limit(limit)
	}

	cards, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due cards: %w", err)
	}
	return cardDataList(cards), nil
}

func (r *cardRepo) All(ctx context.Context) ([]CardData, error) {
	cards, err := r.client.ReviewCard.Query().
		Order(ent.Asc(reviewcard.FieldQuestionHash)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cards: %w", err)
	}
	return cardDataList(cards), nil
}

func cardData(rc *ent.ReviewCard) *CardData {
	return &CardData{
		QuestionHash:  rc.QuestionHash,
		Due:           rc.Due,
		Stability:     rc.Stability,
		Difficulty:    rc.Difficulty,
		ElapsedDays:   rc.ElapsedDays,
		ScheduledDays: rc.ScheduledDays,
		Reps:          rc.Reps,
		Lapses:        rc.Lapses,
		State:         rc.State,
		LastReview:    rc.LastReview,
		Payload:       rc.Payload,
	}
}

func cardDataList(cards []*ent.ReviewCard) []CardData {
	out := make([]CardData, len(cards))
	for i, rc := range cards {
		out[i] = *cardData(rc)
	}
	return out
}
