package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewCard is the per-question spaced repetition record. One row per
// distinct question, keyed by a stable hash of its text. Created on first
// review, mutated on every subsequent review, never deleted (historical
// value for retention stats).
type ReviewCard struct {
	ent.Schema
}

func (ReviewCard) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_hash").
			NotEmpty().
			Unique(),
		field.Time("due"),
		field.Float("stability"),
		field.Float("difficulty"),
		field.Float("elapsed_days").
			Default(0),
		field.Float("scheduled_days").
			Default(0),
		field.Int("reps").
			Default(0),
		field.Int("lapses").
			Default(0),
		field.String("state").
			Default("new").
			Comment("new, learning, review, or relearning"),
		field.Time("last_review").
			Optional().
			Nillable(),
		field.JSON("payload", map[string]any{}).
			Optional().
			Comment("Denormalized question payload for offline review"),
	}
}

func (ReviewCard) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("due"),
		index.Fields("state"),
	}
}
