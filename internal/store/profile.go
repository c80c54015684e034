package store

import (
	"context"
	"fmt"

	"github.com/tmaru/lexiquest/ent"
	"github.com/tmaru/lexiquest/ent/profile"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

const profileSingletonID = 1

func (r *profileRepo) Get(ctx context.Context) (*ProfileData, error) {
	p, err := r.client.Profile.Query().
		Where(profile.SingletonID(profileSingletonID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &ProfileData{}, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}

	return &ProfileData{
		WordsLearned:     p.WordsLearned,
		LessonsCompleted: p.LessonsCompleted,
		TotalXP:          p.TotalXp,
		CurrentStreak:    p.CurrentStreak,
		BestStreak:       p.BestStreak,
		UpdatedAt:        p.UpdatedAt,
	}, nil
}

func (r *profileRepo) Apply(ctx context.Context, delta ProfileDelta) error {
	p, err := r.client.Profile.Query().
		Where(profile.SingletonID(profileSingletonID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query profile: %w", err)
	}

	if ent.IsNotFound(err) {
		best := 0
		if delta.Streak > 0 {
			best = delta.Streak
		}
		_, err := r.client.Profile.Create().
			SetSingletonID(profileSingletonID).
			SetWordsLearned(delta.WordsLearned).
			SetLessonsCompleted(delta.LessonsCompleted).
			SetTotalXp(delta.XP).
			SetCurrentStreak(maxInt(delta.Streak, 0)).
			SetBestStreak(best).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	}

	builder := p.Update().
		AddWordsLearned(delta.WordsLearned).
		AddLessonsCompleted(delta.LessonsCompleted).
		AddTotalXp(delta.XP)

	if delta.Streak >= 0 {
		builder = builder.SetCurrentStreak(delta.Streak)
		if delta.Streak > p.BestStreak {
			builder = builder.SetBestStreak(delta.Streak)
		}
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
