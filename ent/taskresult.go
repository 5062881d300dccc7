// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/perfflow/perfflow/ent/task"
	"github.com/perfflow/perfflow/ent/taskresult"
)

// TaskResult is the model entity for the TaskResult schema.
type TaskResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Endpoint or metric name; "token_metrics" marks the aggregated-token row
	MetricType string `json:"metric_type,omitempty"`
	// NumRequests holds the value of the "num_requests" field.
	NumRequests int64 `json:"num_requests,omitempty"`
	// NumFailures holds the value of the "num_failures" field.
	NumFailures int64 `json:"num_failures,omitempty"`
	// AvgLatency holds the value of the "avg_latency" field.
	AvgLatency float64 `json:"avg_latency,omitempty"`
	// MinLatency holds the value of the "min_latency" field.
	MinLatency float64 `json:"min_latency,omitempty"`
	// MaxLatency holds the value of the "max_latency" field.
	MaxLatency float64 `json:"max_latency,omitempty"`
	// MedianLatency holds the value of the "median_latency" field.
	MedianLatency float64 `json:"median_latency,omitempty"`
	// P90Latency holds the value of the "p90_latency" field.
	P90Latency float64 `json:"p90_latency,omitempty"`
	// Rps holds the value of the "rps" field.
	Rps float64 `json:"rps,omitempty"`
	// AvgContentLength holds the value of the "avg_content_length" field.
	AvgContentLength float64 `json:"avg_content_length,omitempty"`
	// CompletionTps holds the value of the "completion_tps" field.
	CompletionTps float64 `json:"completion_tps,omitempty"`
	// TotalTps holds the value of the "total_tps" field.
	TotalTps float64 `json:"total_tps,omitempty"`
	// AvgTotalTokensPerReq holds the value of the "avg_total_tokens_per_req" field.
	AvgTotalTokensPerReq float64 `json:"avg_total_tokens_per_req,omitempty"`
	// AvgCompletionTokensPerReq holds the value of the "avg_completion_tokens_per_req" field.
	AvgCompletionTokensPerReq float64 `json:"avg_completion_tokens_per_req,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskResultQuery when eager-loading is set.
	Edges        TaskResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskResultEdges holds the relations/edges for other nodes in the graph.
type TaskResultEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskResultEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskresult.FieldAvgLatency, taskresult.FieldMinLatency, taskresult.FieldMaxLatency, taskresult.FieldMedianLatency, taskresult.FieldP90Latency, taskresult.FieldRps, taskresult.FieldAvgContentLength, taskresult.FieldCompletionTps, taskresult.FieldTotalTps, taskresult.FieldAvgTotalTokensPerReq, taskresult.FieldAvgCompletionTokensPerReq:
			values[i] = new(sql.NullFloat64)
		case taskresult.FieldID, taskresult.FieldNumRequests, taskresult.FieldNumFailures:
			values[i] = new(sql.NullInt64)
		case taskresult.FieldTaskID, taskresult.FieldMetricType:
			values[i] = new(sql.NullString)
		case taskresult.FieldCreatedAt, taskresult.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskResult fields.
func (_m *TaskResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case taskresult.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case taskresult.FieldMetricType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metric_type", values[i])
			} else if value.Valid {
				_m.MetricType = value.String
			}
		case taskresult.FieldNumRequests:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field num_requests", values[i])
			} else if value.Valid {
				_m.NumRequests = value.Int64
			}
		case taskresult.FieldNumFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field num_failures", values[i])
			} else if value.Valid {
				_m.NumFailures = value.Int64
			}
		case taskresult.FieldAvgLatency:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_latency", values[i])
			} else if value.Valid {
				_m.AvgLatency = value.Float64
			}
		case taskresult.FieldMinLatency:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field min_latency", values[i])
			} else if value.Valid {
				_m.MinLatency = value.Float64
			}
		case taskresult.FieldMaxLatency:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_latency", values[i])
			} else if value.Valid {
				_m.MaxLatency = value.Float64
			}
		case taskresult.FieldMedianLatency:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field median_latency", values[i])
			} else if value.Valid {
				_m.MedianLatency = value.Float64
			}
		case taskresult.FieldP90Latency:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field p90_latency", values[i])
			} else if value.Valid {
				_m.P90Latency = value.Float64
			}
		case taskresult.FieldRps:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rps", values[i])
			} else if value.Valid {
				_m.Rps = value.Float64
			}
		case taskresult.FieldAvgContentLength:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_content_length", values[i])
			} else if value.Valid {
				_m.AvgContentLength = value.Float64
			}
		case taskresult.FieldCompletionTps:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_tps", values[i])
			} else if value.Valid {
				_m.CompletionTps = value.Float64
			}
		case taskresult.FieldTotalTps:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tps", values[i])
			} else if value.Valid {
				_m.TotalTps = value.Float64
			}
		case taskresult.FieldAvgTotalTokensPerReq:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_total_tokens_per_req", values[i])
			} else if value.Valid {
				_m.AvgTotalTokensPerReq = value.Float64
			}
		case taskresult.FieldAvgCompletionTokensPerReq:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_completion_tokens_per_req", values[i])
			} else if value.Valid {
				_m.AvgCompletionTokensPerReq = value.Float64
			}
		case taskresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case taskresult.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskResult.
// This includes values selected through modifiers, order, etc.
func (_m *TaskResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the TaskResult entity.
func (_m *TaskResult) QueryTask() *TaskQuery {
	return NewTaskResultClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this TaskResult.
// Note that you need to call TaskResult.Unwrap() before calling this method if this TaskResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskResult) Update() *TaskResultUpdateOne {
	return NewTaskResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskResult) Unwrap() *TaskResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskResult) String() string {
	var builder strings.Builder
	builder.WriteString("TaskResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("metric_type=")
	builder.WriteString(_m.MetricType)
	builder.WriteString(", ")
	builder.WriteString("num_requests=")
	builder.WriteString(fmt.Sprintf("%v", _m.NumRequests))
	builder.WriteString(", ")
	builder.WriteString("num_failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.NumFailures))
	builder.WriteString(", ")
	builder.WriteString("avg_latency=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgLatency))
	builder.WriteString(", ")
	builder.WriteString("min_latency=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinLatency))
	builder.WriteString(", ")
	builder.WriteString("max_latency=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxLatency))
	builder.WriteString(", ")
	builder.WriteString("median_latency=")
	builder.WriteString(fmt.Sprintf("%v", _m.MedianLatency))
	builder.WriteString(", ")
	builder.WriteString("p90_latency=")
	builder.WriteString(fmt.Sprintf("%v", _m.P90Latency))
	builder.WriteString(", ")
	builder.WriteString("rps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rps))
	builder.WriteString(", ")
	builder.WriteString("avg_content_length=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgContentLength))
	builder.WriteString(", ")
	builder.WriteString("completion_tps=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionTps))
	builder.WriteString(", ")
	builder.WriteString("total_tps=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTps))
	builder.WriteString(", ")
	builder.WriteString("avg_total_tokens_per_req=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgTotalTokensPerReq))
	builder.WriteString(", ")
	builder.WriteString("avg_completion_tokens_per_req=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgCompletionTokensPerReq))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TaskResults is a parsable slice of TaskResult.
type TaskResults []*TaskResult
