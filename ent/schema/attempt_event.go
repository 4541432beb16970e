package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records attempt lifecycle events (start, round transitions,
// finish).
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("UUID grouping events in an attempt"),
		field.String("action").
			NotEmpty().
			Comment("start, round_start, round_complete, or finish"),
		field.String("round").
			Default("").
			Comment("Round the action applies to, empty for start/finish"),
		field.Int("questions_answered").
			Default(0).
			Comment("Answers recorded in the round (on round_complete only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Round duration in seconds (on round_complete only)"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("action"),
	}
}
