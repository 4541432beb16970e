package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ViolationEvent records a proctoring violation raised during an attempt.
type ViolationEvent struct {
	ent.Schema
}

func (ViolationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ViolationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Links to AttemptEvent"),
		field.String("proctor_session_id").
			Default("").
			Comment("Backend proctoring session, empty for tab switches raised before start"),
		field.String("violation_type").
			NotEmpty().
			Comment("no_face, multiple_faces, looking_away, phone_detected, tab_switch"),
		field.String("details").
			Default("").
			Comment("Human-readable description shown to the candidate"),
		field.Bool("reported").
			Comment("Whether the backend accepted the event log call"),
	}
}

func (ViolationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("violation_type"),
	}
}
