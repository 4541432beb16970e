package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// APIRequestEvent records every backend API call for debugging and the
// events inspector.
type APIRequestEvent struct {
	ent.Schema
}

func (APIRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (APIRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("method").
			NotEmpty().
			Comment("HTTP method"),
		field.String("path").
			NotEmpty().
			Comment("Request path without the base URL"),
		field.Int("status_code").
			Default(0).
			Comment("HTTP status, 0 when the request never completed"),
		field.Int("attempts").
			Default(1).
			Comment("Total attempts including retries"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time across all attempts"),
		field.Bool("success").
			Comment("Whether the call ultimately succeeded"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
	}
}

func (APIRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("path"),
		index.Fields("success"),
	}
}
