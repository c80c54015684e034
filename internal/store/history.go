package store

import (
	"context"
	"fmt"
	"time"

	"github.com/tmaru/lexiquest/ent"
	"github.com/tmaru/lexiquest/ent/history"
	entschema "github.com/tmaru/lexiquest/ent/schema"
)

// historyRepo implements HistoryRepo using the ent client.
type historyRepo struct {
	client *ent.Client
}

func (r *historyRepo) Append(ctx context.Context, data HistoryData) error {
	var stats []entschema.SkillStat
	for _, s := range data.SkillStats {
		stats = append(stats, entschema.SkillStat{
			SkillTag: s.SkillTag,
			Attempts: s.Attempts,
			Correct:  s.Correct,
		})
	}

	builder := r.client.History.Create().
		SetScore(data.Score).
		SetTotalQuestions(data.TotalQuestions).
		SetTotalCorrect(data.TotalCorrect).
		SetLevelTitle(data.LevelTitle)

	if !data.Timestamp.IsZero() {
		builder = builder.SetTimestamp(data.Timestamp)
	}
	if len(stats) > 0 {
		builder = builder.SetSkillStats(stats)
	}

	_, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save history record: %w", err)
	}
	return nil
}

func (r *historyRepo) Between(ctx context.Context, from, to time.Time) ([]HistoryData, error) {
	records, err := r.client.History.Query().
		Where(
			history.TimestampGTE(from),
			history.TimestampLT(to),
		).
		Order(ent.Asc(history.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	return historyDataList(records), nil
}

func (r *historyRepo) All(ctx context.Context) ([]HistoryData, error) {
	records, err := r.client.History.Query().
		Order(ent.Asc(history.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	return historyDataList(records), nil
}

func historyDataList(records []*ent.History) []HistoryData {
	out := make([]HistoryData, len(records))
	for i, h := range records {
		var stats []SkillStat
		for _, s := range h.SkillStats {
			stats = append(stats, SkillStat{
				SkillTag: s.SkillTag,
				Attempts: s.Attempts,
				Correct:  s.Correct,
			})
		}
		out[i] = HistoryData{
			Score:          h.Score,
			TotalQuestions: h.TotalQuestions,
			TotalCorrect:   h.TotalCorrect,
			SkillStats:     stats,
			LevelTitle:     h.LevelTitle,
			Timestamp:      h.Timestamp,
		}
	}
	return out
}
