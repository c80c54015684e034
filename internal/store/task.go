package store

import (
	"context"
	"fmt"
	"time"

	"github.com/tmaru/lexiquest/ent"
	"github.com/tmaru/lexiquest/ent/learningtask"
	entschema "github.com/tmaru/lexiquest/ent/schema"
)

// taskRepo implements TaskRepo using the ent client.
type taskRepo struct {
	client *ent.Client
}

func (r *taskRepo) ForPeriod(ctx context.Context, periodStart time.Time) ([]TaskData, error) {
	rows, err := r.client.LearningTask.Query().
		Where(learningtask.PeriodStartEQ(periodStart)).
		Order(ent.Asc(learningtask.FieldTaskID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}

	out := make([]TaskData, len(rows))
	for i, t := range rows {
		var evidence []TaskEvidence
		for _, e := range t.Evidence {
			ts, err := time.Parse(time.RFC3339, e.Timestamp)
			if err != nil {
				continue
			}
			evidence = append(evidence, TaskEvidence{
				Timestamp: ts,
				Source:    e.Source,
				EventType: e.EventType,
				SkillTag:  e.SkillTag,
			})
		}
		out[i] = TaskData{
			TaskID:      t.TaskID,
			PeriodStart: t.PeriodStart,
			Progress:    t.Progress,
			Goal:        t.Goal,
			Status:      t.Status,
			CompletedAt: t.CompletedAt,
			Evidence:    evidence,
		}
	}
	return out, nil
}

func (r *taskRepo) Save(ctx context.Context, task TaskData) error {
	var evidence []entschema.TaskEvidence
	for _, e := range task.Evidence {
		evidence = append(evidence, entschema.TaskEvidence{
			Timestamp: e.Timestamp.Format(time.RFC3339),
			Source:    e.Source,
			EventType: e.EventType,
			SkillTag:  e.SkillTag,
		})
	}

	existing, err := r.client.LearningTask.Query().
		Where(
			learningtask.TaskID(task.TaskID),
			learningtask.PeriodStartEQ(task.PeriodStart),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query task %s: %w", task.TaskID, err)
	}

	if ent.IsNotFound(err) {
		builder := r.client.LearningTask.Create().
			SetTaskID(task.TaskID).
			SetPeriodStart(task.PeriodStart).
			SetProgress(task.Progress).
			SetGoal(task.Goal).
			SetStatus(task.Status).
			SetNillableCompletedAt(task.CompletedAt)
		if len(evidence) > 0 {
			builder = builder.SetEvidence(evidence)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("create task %s: %w", task.TaskID, err)
		}
		return nil
	}

	builder := existing.Update().
		SetProgress(task.Progress).
		SetGoal(task.Goal).
		SetStatus(task.Status).
		SetNillableCompletedAt(task.CompletedAt)
	if len(evidence) > 0 {
		builder = builder.SetEvidence(evidence)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("update task %s: %w", task.TaskID, err)
	}
	return nil
}
