package quest

import (
	"context"
	"fmt"
	"time"

	"github.com/tmaru/lexiquest/internal/store"
)

// Service recomputes and persists the weekly quest rows.
type Service struct {
	events store.EventRepo
	tasks  store.TaskRepo
}

// NewService creates a quest service over the store repos.
func NewService(events store.EventRepo, tasks store.TaskRepo) *Service {
	return &Service{events: events, tasks: tasks}
}

// WeeklyTasks rebuilds the current week's quest rows from the event
// log, persists them, and returns the fresh rows.
func (s *Service) WeeklyTasks(ctx context.Context, now time.Time) ([]store.TaskData, error) {
	period := PeriodStart(now)

	events, err := s.events.LearningEventsBetween(ctx, period, PeriodEnd(period))
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	existing, err := s.tasks.ForPeriod(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("load existing tasks: %w", err)
	}

	tasks := BuildWeeklyTasks(events, now, existing)
	for _, task := range tasks {
		if err := s.tasks.Save(ctx, task); err != nil {
			return nil, fmt.Errorf("save task %s: %w", task.TaskID, err)
		}
	}
	return tasks, nil
}
