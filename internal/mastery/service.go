package mastery

import (
	"context"
	"fmt"
	"time"

	"github.com/tmaru/lexiquest/internal/store"
)

// Service maintains per-skill mastery records on top of the store.
type Service struct {
	mastery store.MasteryRepo
	events  store.EventRepo
	policy  Policy
}

// NewService creates a mastery service. events may be nil; state
// transitions are then not logged.
func NewService(mastery store.MasteryRepo, events store.EventRepo, policy Policy) *Service {
	return &Service{mastery: mastery, events: events, policy: policy}
}

// RecordAnswer folds one answer outcome into the skill's mastery
// record. Returns the state transition if the answer caused one,
// nil otherwise.
func (s *Service) RecordAnswer(ctx context.Context, skillTag string, correct bool, sessionID string, now time.Time) (*StateTransition, error) {
	rec, err := s.mastery.Get(ctx, skillTag)
	if err != nil {
		return nil, fmt.Errorf("load mastery record: %w", err)
	}
	if rec == nil {
		rec = &store.SkillMasteryData{
			SkillTag: skillTag,
			State:    string(StateNew),
		}
	}

	rec.Attempts++
	if correct {
		rec.Correct++
	}

	prevState := MasteryState(rec.State)
	result := ComputeUpdate(UpdateInput{
		PreviousScore: rec.Score,
		PreviousState: prevState,
		Attempts:      rec.Attempts,
		Correct:       rec.Correct,
	}, s.policy)

	rec.Score = result.Score
	rec.State = string(result.State)
	rec.LastReviewedAt = &now
	rec.UpdatedAt = now

	if err := s.mastery.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save mastery record: %w", err)
	}

	if result.State == prevState {
		return nil, nil
	}

	transition := &StateTransition{
		SkillTag: skillTag,
		From:     prevState,
		To:       result.State,
		Trigger:  "upgrade",
		Score:    result.Score,
	}
	if result.State.Rank() < prevState.Rank() {
		transition.Trigger = "downgrade"
	}

	if s.events != nil {
		err := s.events.AppendMasteryEvent(ctx, store.MasteryEventData{
			SkillTag:  skillTag,
			FromState: string(prevState),
			ToState:   string(result.State),
			Trigger:   transition.Trigger,
			Score:     result.Score,
			SessionID: sessionID,
		})
		if err != nil {
			return nil, fmt.Errorf("log mastery transition: %w", err)
		}
	}

	return transition, nil
}

// Get returns the mastery record for a skill tag, or a fresh record in
// state new if the skill has never been answered.
func (s *Service) Get(ctx context.Context, skillTag string) (*store.SkillMasteryData, error) {
	rec, err := s.mastery.Get(ctx, skillTag)
	if err != nil {
		return nil, fmt.Errorf("load mastery record: %w", err)
	}
	if rec == nil {
		rec = &store.SkillMasteryData{
			SkillTag: skillTag,
			State:    string(StateNew),
		}
	}
	return rec, nil
}

// AggregateSnapshot summarizes the mastery records for display.
type AggregateSnapshot struct {
	Total         int
	ByState       map[MasteryState]int
	WindowDays    int
	NewlyMastered int // transitions into mastered inside the window
	MasteredDelta int // vs the preceding window of equal length
}

// AggregateSnapshot folds the current mastery records plus the recent
// transition log into per-state counts and a mastered-delta comparison
// against the preceding window of equal length.
func (s *Service) AggregateSnapshot(ctx context.Context, windowDays int, now time.Time) (*AggregateSnapshot, error) {
	records, err := s.mastery.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load mastery records: %w", err)
	}

	snap := &AggregateSnapshot{
		ByState:    make(map[MasteryState]int),
		WindowDays: windowDays,
	}
	for _, rec := range records {
		snap.Total++
		snap.ByState[MasteryState(rec.State)]++
	}

	if s.events == nil {
		return snap, nil
	}

	windowStart := now.AddDate(0, 0, -windowDays)
	prevStart := now.AddDate(0, 0, -2*windowDays)

	current, err := s.events.MasteryEventsBetween(ctx, windowStart, now)
	if err != nil {
		return nil, fmt.Errorf("load mastery transitions: %w", err)
	}
	previous, err := s.events.MasteryEventsBetween(ctx, prevStart, windowStart)
	if err != nil {
		return nil, fmt.Errorf("load mastery transitions: %w", err)
	}

	snap.NewlyMastered = countMasteredEntries(current)
	snap.MasteredDelta = snap.NewlyMastered - countMasteredEntries(previous)
	return snap, nil
}

func countMasteredEntries(rows []store.MasteryEventRow) int {
	n := 0
	for _, row := range rows {
		if MasteryState(row.ToState) == StateMastered && MasteryState(row.FromState) != StateMastered {
			n++
		}
	}
	return n
}
