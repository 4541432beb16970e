package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single submitted answer within an attempt.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Links to AttemptEvent"),
		field.String("round").
			NotEmpty().
			Comment("mcq, psychometric, technical, or text-based"),
		field.Int("question_id").
			Comment("Backend question identifier"),
		field.String("answer_kind").
			NotEmpty().
			Comment("option, rating, text, or code"),
		field.String("answer_value").
			Default("").
			Comment("Serialized answer as sent to the backend"),
		field.Bool("submitted").
			Comment("Whether the backend accepted the submission"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("round"),
	}
}
