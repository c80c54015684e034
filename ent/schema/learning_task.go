package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningTask is a weekly quest row, one per metric per week period.
// Progress is recomputed from the event window on every load, but a
// recorded completed_at must survive recomputation verbatim.
type LearningTask struct {
	ent.Schema
}

// TaskEvidence is a serialized contributing event, most recent first.
type TaskEvidence struct {
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
	EventType string `json:"event_type"`
	SkillTag  string `json:"skill_tag,omitempty"`
}

func (LearningTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			NotEmpty(),
		field.Time("period_start").
			Comment("Monday 00:00 UTC of the quest week"),
		field.Int("progress").
			Default(0),
		field.Int("goal"),
		field.String("status").
			Default("active").
			Comment("active, completed, or expired"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.JSON("evidence", []TaskEvidence{}).
			Optional().
			Comment("Last 5 contributing events"),
	}
}

func (LearningTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "period_start").
			Unique(),
		index.Fields("period_start"),
	}
}
