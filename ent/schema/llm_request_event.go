package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent records every LLM API call. The AI request monitor folds
// these rows per tier, so rate-limit hits are recorded separately from
// generic failures.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Provider name: anthropic, openai, gemini"),
		field.String("model").
			Comment("Actual model ID used"),
		field.String("tier").
			Default("free").
			Comment("free or paid"),
		field.String("purpose").
			Comment("Consumer-provided label: mentor-analysis, revenge-question"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success").
			Comment("Whether the request succeeded"),
		field.Bool("rate_limited").
			Default(false).
			Comment("Whether the request hit a 429"),
		field.String("error_message").
			Default(""),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tier"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
