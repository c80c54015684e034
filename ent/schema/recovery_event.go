package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RecoveryEvent records an attempt to resume an interrupted session.
type RecoveryEvent struct {
	ent.Schema
}

func (RecoveryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RecoveryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session being resumed"),
		field.String("action").
			NotEmpty().
			Comment("attempt, success, or failure"),
		field.String("reason").
			Default("").
			Comment("Failure reason, if any"),
	}
}

func (RecoveryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
