package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Mistake is created for every wrong answer and optionally enriched later
// when mentor analysis arrives. Unlike events, mistakes are deletable by
// the learner.
type Mistake struct {
	ent.Schema
}

func (Mistake) Fields() []ent.Field {
	return []ent.Field{
		field.String("mistake_id").
			NotEmpty().
			Unique().
			Comment("UUID"),
		field.String("question_hash").
			Default(""),
		field.String("skill_tag").
			Default(""),
		field.String("question_text").
			NotEmpty(),
		field.String("correct_answer").
			NotEmpty(),
		field.String("learner_answer").
			NotEmpty(),
		field.String("cause_tag").
			Default("").
			Comment("Mentor-assigned root cause, e.g. tense_confusion"),
		field.String("mentor_analysis").
			Default(""),
		field.JSON("revenge_question", map[string]any{}).
			Optional().
			Comment("Follow-up question targeting the same cause"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Mistake) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_tag"),
		index.Fields("cause_tag"),
		index.Fields("created_at"),
	}
}
