package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tmaru/lexiquest/ent"
	"github.com/tmaru/lexiquest/ent/mistake"
)

// mistakeRepo implements MistakeRepo using the ent client.
type mistakeRepo struct {
	client *ent.Client
}

func (r *mistakeRepo) Create(ctx context.Context, data MistakeData) error {
	if data.MistakeID == "" {
		data.MistakeID = uuid.New().String()
	}
	builder := r.client.Mistake.Create().
		SetMistakeID(data.MistakeID).
		SetQuestionHash(data.QuestionHash).
		SetSkillTag(data.SkillTag).
		SetQuestionText(data.QuestionText).
		SetCorrectAnswer(data.CorrectAnswer).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCauseTag(data.CauseTag).
		SetMentorAnalysis(data.MentorAnalysis)

	if !data.CreatedAt.IsZero() {
		builder = builder.SetCreatedAt(data.CreatedAt)
	}
	if data.RevengeQuestion != nil {
		builder = builder.SetRevengeQuestion(data.RevengeQuestion)
	}

	_, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("create mistake: %w", err)
	}
	return nil
}

func (r *mistakeRepo) Enrich(ctx context.Context, mistakeID, causeTag, analysis string, revenge map[string]any) error {
	m, err := r.client.Mistake.Query().
		Where(mistake.MistakeID(mistakeID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// Deleted by the learner before analysis arrived. Not an error.
			return nil
		}
		return fmt.Errorf("query mistake %s: %w", mistakeID, err)
	}

	builder := m.Update().
		SetCauseTag(causeTag).
		SetMentorAnalysis(analysis)
	if revenge != nil {
		builder = builder.SetRevengeQuestion(revenge)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("enrich mistake %s: %w", mistakeID, err)
	}
	return nil
}

func (r *mistakeRepo) Delete(ctx context.Context, mistakeID string) error {
	_, err := r.client.Mistake.Delete().
		Where(mistake.MistakeID(mistakeID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete mistake %s: %w", mistakeID, err)
	}
	return nil
}

func (r *mistakeRepo) Between(ctx context.Context, from, to time.Time) ([]MistakeData, error) {
	records, err := r.client.Mistake.Query().
		Where(
			mistake.CreatedAtGTE(from),
			mistake.CreatedAtLT(to),
		).
		Order(ent.Asc(mistake.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mistakes: %w", err)
	}
	return mistakeDataList(records), nil
}

func (r *mistakeRepo) All(ctx context.Context) ([]MistakeData, error) {
	records, err := r.client.Mistake.Query().
		Order(ent.Asc(mistake.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mistakes: %w", err)
	}
	return mistakeDataList(records), nil
}

func mistakeDataList(records []*ent.Mistake) []MistakeData {
	out := make([]MistakeData, len(records))
	for i, m := range records {
		out[i] = MistakeData{
			MistakeID:       m.MistakeID,
			QuestionHash:    m.QuestionHash,
			SkillTag:        m.SkillTag,
			QuestionText:    m.QuestionText,
			CorrectAnswer:   m.CorrectAnswer,
			LearnerAnswer:   m.LearnerAnswer,
			CauseTag:        m.CauseTag,
			MentorAnalysis:  m.MentorAnalysis,
			RevengeQuestion: m.RevengeQuestion,
			CreatedAt:       m.CreatedAt,
		}
	}
	return out
}
