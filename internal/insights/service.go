package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/tmaru/lexiquest/internal/quest"
	"github.com/tmaru/lexiquest/internal/store"
)

// Service wraps the pure snapshot builders with store reads.
type Service struct {
	events   store.EventRepo
	mistakes store.MistakeRepo
	history  store.HistoryRepo
	profile  store.ProfileRepo
	tasks    store.TaskRepo
}

// NewService creates an insights service over the store repos.
func NewService(events store.EventRepo, mistakes store.MistakeRepo, history store.HistoryRepo, profile store.ProfileRepo, tasks store.TaskRepo) *Service {
	return &Service{
		events:   events,
		mistakes: mistakes,
		history:  history,
		profile:  profile,
		tasks:    tasks,
	}
}

// GetEngagementSnapshot reads the event log and the weekly quest rows
// for the current and previous periods, then folds them.
func (s *Service) GetEngagementSnapshot(ctx context.Context, now time.Time) (*EngagementSnapshot, error) {
	policy := DefaultEngagementPolicy()

	events, err := s.eventsSince(ctx, now, 2*policy.WindowDays)
	if err != nil {
		return nil, err
	}

	period := quest.PeriodStart(now)
	currentTasks, err := s.tasks.ForPeriod(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("load current tasks: %w", err)
	}
	prevTasks, err := s.tasks.ForPeriod(ctx, period.AddDate(0, 0, -7))
	if err != nil {
		return nil, fmt.Errorf("load previous tasks: %w", err)
	}

	snap := ComputeEngagementSnapshot(events, currentTasks, prevTasks, now, policy)
	return &snap, nil
}

// GetRepeatedCauseSnapshot folds the mistakes of the last windowDays.
func (s *Service) GetRepeatedCauseSnapshot(ctx context.Context, windowDays int, now time.Time) (*RepeatedCauseSnapshot, error) {
	mistakes, err := s.mistakes.Between(ctx, now.AddDate(0, 0, -windowDays), now)
	if err != nil {
		return nil, fmt.Errorf("load mistakes: %w", err)
	}
	snap := ComputeRepeatedCauseSnapshot(mistakes, now, windowDays)
	return &snap, nil
}

// GetRepeatedCauseTrends folds the 7/14/30-day trend windows.
func (s *Service) GetRepeatedCauseTrends(ctx context.Context, now time.Time) ([]RepeatedCauseTrend, error) {
	// 30-day window plus its preceding comparison window.
	mistakes, err := s.mistakes.Between(ctx, now.AddDate(0, 0, -60), now)
	if err != nil {
		return nil, fmt.Errorf("load mistakes: %w", err)
	}
	return ComputeRepeatedCauseTrends(mistakes, now, DefaultRepeatCausePolicy()), nil
}

// GetRepeatedCauseGoal checks the current repeat rate against a fixed
// baseline.
func (s *Service) GetRepeatedCauseGoal(ctx context.Context, windowDays int, baselineRate float64, now time.Time) (*RepeatedCauseGoal, error) {
	mistakes, err := s.mistakes.Between(ctx, now.AddDate(0, 0, -windowDays), now)
	if err != nil {
		return nil, fmt.Errorf("load mistakes: %w", err)
	}
	goal := ComputeRepeatedCauseGoal(mistakes, now, windowDays, baselineRate, DefaultRepeatCausePolicy())
	return &goal, nil
}

// GetSessionRecoverySnapshot folds the recent recovery events.
func (s *Service) GetSessionRecoverySnapshot(ctx context.Context, now time.Time) (*SessionRecoverySnapshot, error) {
	policy := DefaultRecoveryPolicy()
	rows, err := s.events.RecoveryEventsBetween(ctx, now.AddDate(0, 0, -policy.WindowDays), now)
	if err != nil {
		return nil, fmt.Errorf("load recovery events: %w", err)
	}
	snap := ComputeSessionRecoverySnapshot(rows, now, policy)
	return &snap, nil
}

// GetAIRequestMonitorSnapshot folds the recent LLM request events.
func (s *Service) GetAIRequestMonitorSnapshot(ctx context.Context, now time.Time) (*AIRequestMonitorSnapshot, error) {
	policy := DefaultAIMonitorPolicy()
	rows, err := s.events.LLMRequestsBetween(ctx, now.AddDate(0, 0, -policy.WindowDays), now)
	if err != nil {
		return nil, fmt.Errorf("load llm request events: %w", err)
	}
	snap := ComputeAIRequestMonitorSnapshot(rows, now, policy)
	return &snap, nil
}

// GetGuardianAcceptanceSnapshot folds the last two weeks of events.
func (s *Service) GetGuardianAcceptanceSnapshot(ctx context.Context, now time.Time) (*GuardianAcceptanceSnapshot, error) {
	events, err := s.eventsSince(ctx, now, 14)
	if err != nil {
		return nil, err
	}
	snap := ComputeGuardianAcceptanceSnapshot(events, now, DefaultGuardianPolicy())
	return &snap, nil
}

// GetDataConsistencyAudit cross-checks the profile and history stores
// against the entire event log.
func (s *Service) GetDataConsistencyAudit(ctx context.Context) (*DataConsistencyAuditSnapshot, error) {
	profile, err := s.profile.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	events, err := s.events.AllLearningEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	history, err := s.history.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	snap := ComputeDataConsistencyAudit(profile, events, history, DefaultAuditPolicy())
	return &snap, nil
}

func (s *Service) eventsSince(ctx context.Context, now time.Time, days int) ([]store.LearningEventRow, error) {
	events, err := s.events.LearningEventsBetween(ctx, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	return events, nil
}
