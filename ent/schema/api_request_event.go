package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// APIRequestEvent records every HTTP call made to the competency API.
type APIRequestEvent struct {
	ent.Schema
}

func (APIRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (APIRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("request_id").
			Comment("X-Request-ID sent with the call"),
		field.String("method").
			Comment("HTTP method"),
		field.String("endpoint").
			Comment("Request path without query string"),
		field.Int("status").
			Default(0).
			Comment("HTTP status, 0 when no response was received"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the call"),
		field.Int("attempt").
			Default(1).
			Comment("1 for the first try, higher for retries"),
		field.Bool("success").
			Comment("Whether the call returned a 2xx status"),
		field.String("error_message").
			Default("").
			Comment("Transport or API error, if any"),
		field.String("api_version").
			Default("").
			Comment("X-API-Version reported by the server"),
	}
}

func (APIRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("endpoint"),
		index.Fields("success"),
		index.Fields("request_id"),
	}
}
