package store

import (
	"context"
	"fmt"

	"github.com/tmaru/lexiquest/ent"
	"github.com/tmaru/lexiquest/ent/skillmastery"
)

// masteryRepo implements MasteryRepo using the ent client.
type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Get(ctx context.Context, skillTag string) (*SkillMasteryData, error) {
	sm, err := r.client.SkillMastery.Query().
		Where(skillmastery.SkillTag(skillTag)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query mastery %s: %w", skillTag, err)
	}
	return masteryData(sm), nil
}

func (r *masteryRepo) Save(ctx context.Context, rec *SkillMasteryData) error {
	existing, err := r.client.SkillMastery.Query().
		Where(skillmastery.SkillTag(rec.SkillTag)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query mastery %s: %w", rec.SkillTag, err)
	}

	if ent.IsNotFound(err) {
		_, err := r.client.SkillMastery.Create().
			SetSkillTag(rec.SkillTag).
			SetScore(rec.Score).
			SetState(rec.State).
			SetAttempts(rec.Attempts).
			SetCorrect(rec.Correct).
			SetNillableLastReviewedAt(rec.LastReviewedAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create mastery %s: %w", rec.SkillTag, err)
		}
		return nil
	}

	_, err = existing.Update().
		SetScore(rec.Score).
		SetState(rec.State).
		SetAttempts(rec.Attempts).
		SetCorrect(rec.Correct).
		SetNillableLastReviewedAt(rec.LastReviewedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update mastery %s: %w", rec.SkillTag, err)
	}
	return nil
}

func (r *masteryRepo) All(ctx context.Context) ([]SkillMasteryData, error) {
	records, err := r.client.SkillMastery.Query().
		Order(ent.Asc(skillmastery.FieldSkillTag)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery records: %w", err)
	}

	out := make([]SkillMasteryData, len(records))
	for i, sm := range records {
		out[i] = *masteryData(sm)
	}
	return out, nil
}

func masteryData(sm *ent.SkillMastery) *SkillMasteryData {
	return &SkillMasteryData{
		SkillTag:       sm.SkillTag,
		Score:          sm.Score,
		State:          sm.State,
		Attempts:       sm.Attempts,
		Correct:        sm.Correct,
		LastReviewedAt: sm.LastReviewedAt,
		UpdatedAt:      sm.UpdatedAt,
	}
}
