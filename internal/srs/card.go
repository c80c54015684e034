package srs

import (
	"time"

	"github.com/tmaru/lexiquest/internal/store"
)

// State is a card's position in the review lifecycle.
type State string

const (
	StateNew        State = "new"
	StateLearning   State = "learning"
	StateReview     State = "review"
	StateRelearning State = "relearning"
)

// Rating grades a single review.
type Rating int

const (
	RatingAgain Rating = 1
	RatingHard  Rating = 2
	RatingGood  Rating = 3
	RatingEasy  Rating = 4
)

// Card holds the spaced repetition state for a single question,
// keyed by a stable hash of its text.
type Card struct {
	QuestionHash  string
	Due           time.Time
	Stability     float64
	Difficulty    float64
	ElapsedDays   float64
	ScheduledDays float64
	Reps          int
	Lapses        int
	State         State
	LastReview    *time.Time
	Payload       map[string]any
}

// NewCard creates a card in the New state, due immediately.
func NewCard(questionHash string, payload map[string]any, now time.Time) *Card {
	return &Card{
		QuestionHash: questionHash,
		Due:          now,
		Stability:    0,
		Difficulty:   0,
		State:        StateNew,
		Payload:      payload,
	}
}

// IsDue reports whether the card is due at or before now.
func (c *Card) IsDue(now time.Time) bool {
	return !now.Before(c.Due)
}

// SkillTag extracts the skill tag from the denormalized payload, if any.
func (c *Card) SkillTag() string {
	if c.Payload == nil {
		return ""
	}
	if tag, ok := c.Payload["skillTag"].(string); ok {
		return tag
	}
	return ""
}

// FromStoreData converts a persisted card to its domain form.
func FromStoreData(d *store.CardData) *Card {
	return &Card{
		QuestionHash:  d.QuestionHash,
		Due:           d.Due,
		Stability:     d.Stability,
		Difficulty:    d.Difficulty,
		ElapsedDays:   d.ElapsedDays,
		ScheduledDays: d.ScheduledDays,
		Reps:          d.Reps,
		Lapses:        d.Lapses,
		State:         State(d.State),
		LastReview:    d.LastReview,
		Payload:       d.Payload,
	}
}

// ToStoreData converts a card to its persisted form.
func (c *Card) ToStoreData() *store.CardData {
	return &store.CardData{
		QuestionHash:  c.QuestionHash,
		Due:           c.Due,
		Stability:     c.Stability,
		Difficulty:    c.Difficulty,
		ElapsedDays:   c.ElapsedDays,
		ScheduledDays: c.ScheduledDays,
		Reps:          c.Reps,
		Lapses:        c.Lapses,
		State:         string(c.State),
		LastReview:    c.LastReview,
		Payload:       c.Payload,
	}
}
