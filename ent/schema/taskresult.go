package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskResult holds one persisted metric row for a finished task: either a
// per-endpoint latency row (metric_type = endpoint or timing metric name) or
// the single aggregated "token_metrics" row.
type TaskResult struct {
	ent.Schema
}

// Fields of the TaskResult.
func (TaskResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("task_id").
			Immutable(),
		field.String("metric_type").
			NotEmpty().
			Comment(`Endpoint or metric name; "token_metrics" marks the aggregated-token row`),
		field.Int64("num_requests").
			Default(0),
		field.Int64("num_failures").
			Default(0),
		field.Float("avg_latency").
			Default(0),
		field.Float("min_latency").
			Default(0),
		field.Float("max_latency").
			Default(0),
		field.Float("median_latency").
			Default(0),
		field.Float("p90_latency").
			Default(0),
		field.Float("rps").
			Default(0),
		field.Float("avg_content_length").
			Default(0),
		field.Float("completion_tps").
			Default(0),
		field.Float("total_tps").
			Default(0),
		field.Float("avg_total_tokens_per_req").
			Default(0),
		field.Float("avg_completion_tokens_per_req").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the TaskResult.
func (TaskResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("results").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TaskResult.
func (TaskResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("task_id", "metric_type"),
	}
}
