package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SkillMastery is the per-skill mastery record, recomputed after every
// answer event tagged with that skill.
type SkillMastery struct {
	ent.Schema
}

func (SkillMastery) Fields() []ent.Field {
	return []ent.Field{
		field.String("skill_tag").
			NotEmpty().
			Unique(),
		field.Float("score").
			Default(0).
			Comment("0-100"),
		field.String("state").
			Default("new").
			Comment("new, learning, consolidated, or mastered"),
		field.Int("attempts").
			Default(0),
		field.Int("correct").
			Default(0),
		field.Time("last_reviewed_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (SkillMastery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
	}
}
