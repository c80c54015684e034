package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Profile is the singleton lifetime-counter record. It accumulates
// additively after answer and session events. The consistency audit
// cross-checks it against the event log; it is not the source of truth.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.Int("singleton_id").
			Unique().
			Immutable().
			Comment("Always 1"),
		field.Int("words_learned").
			Default(0),
		field.Int("lessons_completed").
			Default(0),
		field.Int("total_xp").
			Default(0),
		field.Int("current_streak").
			Default(0),
		field.Int("best_streak").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
