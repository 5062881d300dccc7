package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for a stress-test task.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("name").
			Comment("Human-readable task name"),
		field.Enum("status").
			Values("created", "locked", "running", "stopping",
				"completed", "failed", "failed_requests", "stopped").
			Default("created"),
		field.String("target_host").
			Comment("Base URL of the endpoint under test"),
		field.String("api_path").
			Default("/chat/completions"),
		field.String("model").
			Optional(),
		field.String("stream_mode").
			Default("true").
			Comment(`"true" or "false" — kept as text for store compatibility`),
		field.Int("concurrent_users").
			Min(1).
			Max(5000),
		field.Int("spawn_rate").
			Min(1).
			Max(100),
		field.Int("duration").
			Min(1).
			Max(172800).
			Comment("Run time in seconds"),
		field.Int("chat_type").
			Default(0).
			Comment("0=text, 1=multimodal"),
		field.Text("headers").
			Optional().
			Comment("JSON object applied to every request"),
		field.Text("cookies").
			Optional().
			Comment("JSON object applied to every request"),
		field.String("cert_file").
			Optional(),
		field.String("key_file").
			Optional(),
		field.Text("request_payload").
			Optional().
			Comment("JSON request template"),
		field.Text("field_mapping").
			Optional().
			Comment("JSON field map for custom APIs"),
		field.Text("test_data").
			Optional().
			Comment(`"" = template only; "default" = built-in dataset; inline JSONL; or file path`),
		field.Text("error_message").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("results", TaskResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
	}
}
