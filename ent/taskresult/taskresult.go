// Code generated by ent, DO NOT EDIT.

package taskresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the taskresult type in the database.
	Label = "task_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldMetricType holds the string denoting the metric_type field in the database.
	FieldMetricType = "metric_type"
	// FieldNumRequests holds the string denoting the num_requests field in the database.
	FieldNumRequests = "num_requests"
	// FieldNumFailures holds the string denoting the num_failures field in the database.
	FieldNumFailures = "num_failures"
	// FieldAvgLatency holds the string denoting the avg_latency field in the database.
	FieldAvgLatency = "avg_latency"
	// FieldMinLatency holds the string denoting the min_latency field in the database.
	FieldMinLatency = "min_latency"
	// FieldMaxLatency holds the string denoting the max_latency field in the database.
	FieldMaxLatency = "max_latency"
	// FieldMedianLatency holds the string denoting the median_latency field in the database.
	FieldMedianLatency = "median_latency"
	// FieldP90Latency holds the string denoting the p90_latency field in the database.
	FieldP90Latency = "p90_latency"
	// FieldRps holds the string denoting the rps field in the database.
	FieldRps = "rps"
	// FieldAvgContentLength holds the string denoting the avg_content_length field in the database.
	FieldAvgContentLength = "avg_content_length"
	// FieldCompletionTps holds the string denoting the completion_tps field in the database.
	FieldCompletionTps = "completion_tps"
	// FieldTotalTps holds the string denoting the total_tps field in the database.
	FieldTotalTps = "total_tps"
	// FieldAvgTotalTokensPerReq holds the string denoting the avg_total_tokens_per_req field in the database.
	FieldAvgTotalTokensPerReq = "avg_total_tokens_per_req"
	// FieldAvgCompletionTokensPerReq holds the string denoting the avg_completion_tokens_per_req field in the database.
	FieldAvgCompletionTokensPerReq = "avg_completion_tokens_per_req"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the taskresult in the database.
	Table = "task_results"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "task_results"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for taskresult fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldMetricType,
	FieldNumRequests,
	FieldNumFailures,
	FieldAvgLatency,
	FieldMinLatency,
	FieldMaxLatency,
	FieldMedianLatency,
	FieldP90Latency,
	FieldRps,
	FieldAvgContentLength,
	FieldCompletionTps,
	FieldTotalTps,
	FieldAvgTotalTokensPerReq,
	FieldAvgCompletionTokensPerReq,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// MetricTypeValidator is a validator for the "metric_type" field. It is called by the builders before save.
	MetricTypeValidator func(string) error
	// DefaultNumRequests holds the default value on creation for the "num_requests" field.
	DefaultNumRequests int64
	// DefaultNumFailures holds the default value on creation for the "num_failures" field.
	DefaultNumFailures int64
	// DefaultAvgLatency holds the default value on creation for the "avg_latency" field.
	DefaultAvgLatency float64
	// DefaultMinLatency holds the default value on creation for the "min_latency" field.
	DefaultMinLatency float64
	// DefaultMaxLatency holds the default value on creation for the "max_latency" field.
	DefaultMaxLatency float64
	// DefaultMedianLatency holds the default value on creation for the "median_latency" field.
	DefaultMedianLatency float64
	// DefaultP90Latency holds the default value on creation for the "p90_latency" field.
	DefaultP90Latency float64
	// DefaultRps holds the default value on creation for the "rps" field.
	DefaultRps float64
	// DefaultAvgContentLength holds the default value on creation for the "avg_content_length" field.
	DefaultAvgContentLength float64
	// DefaultCompletionTps holds the default value on creation for the "completion_tps" field.
	DefaultCompletionTps float64
	// DefaultTotalTps holds the default value on creation for the "total_tps" field.
	DefaultTotalTps float64
	// DefaultAvgTotalTokensPerReq holds the default value on creation for the "avg_total_tokens_per_req" field.
	DefaultAvgTotalTokensPerReq float64
	// DefaultAvgCompletionTokensPerReq holds the default value on creation for the "avg_completion_tokens_per_req" field.
	DefaultAvgCompletionTokensPerReq float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the TaskResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByMetricType orders the results by the metric_type field.
func ByMetricType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetricType, opts...).ToFunc()
}

// ByNumRequests orders the results by the num_requests field.
func ByNumRequests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumRequests, opts...).ToFunc()
}

// ByNumFailures orders the results by the num_failures field.
func ByNumFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumFailures, opts...).ToFunc()
}

// ByAvgLatency orders the results by the avg_latency field.
func ByAvgLatency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgLatency, opts...).ToFunc()
}

// ByMinLatency orders the results by the min_latency field.
func ByMinLatency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinLatency, opts...).ToFunc()
}

// ByMaxLatency orders the results by the max_latency field.
func ByMaxLatency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxLatency, opts...).ToFunc()
}

// ByMedianLatency orders the results by the median_latency field.
func ByMedianLatency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedianLatency, opts...).ToFunc()
}

// ByP90Latency orders the results by the p90_latency field.
func ByP90Latency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldP90Latency, opts...).ToFunc()
}

// ByRps orders the results by the rps field.
func ByRps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRps, opts...).ToFunc()
}

// ByAvgContentLength orders the results by the avg_content_length field.
func ByAvgContentLength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgContentLength, opts...).ToFunc()
}

// ByCompletionTps orders the results by the completion_tps field.
func ByCompletionTps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionTps, opts...).ToFunc()
}

// ByTotalTps orders the results by the total_tps field.
func ByTotalTps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTps, opts...).ToFunc()
}

// ByAvgTotalTokensPerReq orders the results by the avg_total_tokens_per_req field.
func ByAvgTotalTokensPerReq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgTotalTokensPerReq, opts...).ToFunc()
}

// ByAvgCompletionTokensPerReq orders the results by the avg_completion_tokens_per_req field.
func ByAvgCompletionTokensPerReq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgCompletionTokensPerReq, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
