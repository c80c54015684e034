package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningEvent is the append-only record every downstream fold consumes.
// One row per answer or session completion, regardless of which game mode
// produced it.
type LearningEvent struct {
	ent.Schema
}

func (LearningEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LearningEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_type").
			NotEmpty().
			Comment("answer or session_complete"),
		field.String("source").
			NotEmpty().
			Comment("battle, srs, or daily"),
		field.String("result").
			Default("").
			Comment("correct or wrong (answer events only)"),
		field.String("skill_tag").
			Default("").
			Comment("Skill the question exercised, if tagged"),
		field.String("question_hash").
			Default("").
			Comment("Stable hash of the question text"),
		field.String("session_id").
			Default("").
			Comment("UUID grouping events in a play session"),
	}
}

func (LearningEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_type"),
		index.Fields("source"),
		index.Fields("skill_tag"),
	}
}
