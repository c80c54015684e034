package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// History is a write-once record per completed mission.
type History struct {
	ent.Schema
}

// SkillStat is the serialized per-skill tally inside a history record.
type SkillStat struct {
	SkillTag string `json:"skill_tag"`
	Attempts int    `json:"attempts"`
	Correct  int    `json:"correct"`
}

func (History) Fields() []ent.Field {
	return []ent.Field{
		field.Int("score"),
		field.Int("total_questions"),
		field.Int("total_correct"),
		field.JSON("skill_stats", []SkillStat{}).
			Optional(),
		field.String("level_title").
			Default(""),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (History) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
