// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/perfflow/perfflow/ent/task"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Human-readable task name
	Name string `json:"name,omitempty"`
	// Status holds the value of the "status" field.
	Status task.Status `json:"status,omitempty"`
	// Base URL of the endpoint under test
	TargetHost string `json:"target_host,omitempty"`
	// APIPath holds the value of the "api_path" field.
	APIPath string `json:"api_path,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// "true" or "false" — kept as text for store compatibility
	StreamMode string `json:"stream_mode,omitempty"`
	// ConcurrentUsers holds the value of the "concurrent_users" field.
	ConcurrentUsers int `json:"concurrent_users,omitempty"`
	// SpawnRate holds the value of the "spawn_rate" field.
	SpawnRate int `json:"spawn_rate,omitempty"`
	// Run time in seconds
	Duration int `json:"duration,omitempty"`
	// 0=text, 1=multimodal
	ChatType int `json:"chat_type,omitempty"`
	// JSON object applied to every request
	Headers string `json:"headers,omitempty"`
	// JSON object applied to every request
	Cookies string `json:"cookies,omitempty"`
	// CertFile holds the value of the "cert_file" field.
	CertFile string `json:"cert_file,omitempty"`
	// KeyFile holds the value of the "key_file" field.
	KeyFile string `json:"key_file,omitempty"`
	// JSON request template
	RequestPayload string `json:"request_payload,omitempty"`
	// JSON field map for custom APIs
	FieldMapping string `json:"field_mapping,omitempty"`
	// "" = template only; "default" = built-in dataset; inline JSONL; or file path
	TestData string `json:"test_data,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// Results holds the value of the results edge.
	Results []*TaskResult `json:"results,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ResultsOrErr returns the Results value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) ResultsOrErr() ([]*TaskResult, error) {
	if e.loadedTypes[0] {
		return e.Results, nil
	}
	return nil, &NotLoadedError{edge: "results"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldConcurrentUsers, task.FieldSpawnRate, task.FieldDuration, task.FieldChatType:
			values[i] = new(sql.NullInt64)
		case task.FieldID, task.FieldName, task.FieldStatus, task.FieldTargetHost, task.FieldAPIPath, task.FieldModel, task.FieldStreamMode, task.FieldHeaders, task.FieldCookies, task.FieldCertFile, task.FieldKeyFile, task.FieldRequestPayload, task.FieldFieldMapping, task.FieldTestData, task.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case task.FieldCreatedAt, task.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case task.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case task.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = task.Status(value.String)
			}
		case task.FieldTargetHost:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_host", values[i])
			} else if value.Valid {
				_m.TargetHost = value.String
			}
		case task.FieldAPIPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_path", values[i])
			} else if value.Valid {
				_m.APIPath = value.String
			}
		case task.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case task.FieldStreamMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stream_mode", values[i])
			} else if value.Valid {
				_m.StreamMode = value.String
			}
		case task.FieldConcurrentUsers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field concurrent_users", values[i])
			} else if value.Valid {
				_m.ConcurrentUsers = int(value.Int64)
			}
		case task.FieldSpawnRate:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field spawn_rate", values[i])
			} else if value.Valid {
				_m.SpawnRate = int(value.Int64)
			}
		case task.FieldDuration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration", values[i])
			} else if value.Valid {
				_m.Duration = int(value.Int64)
			}
		case task.FieldChatType:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chat_type", values[i])
			} else if value.Valid {
				_m.ChatType = int(value.Int64)
			}
		case task.FieldHeaders:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field headers", values[i])
			} else if value.Valid {
				_m.Headers = value.String
			}
		case task.FieldCookies:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cookies", values[i])
			} else if value.Valid {
				_m.Cookies = value.String
			}
		case task.FieldCertFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cert_file", values[i])
			} else if value.Valid {
				_m.CertFile = value.String
			}
		case task.FieldKeyFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key_file", values[i])
			} else if value.Valid {
				_m.KeyFile = value.String
			}
		case task.FieldRequestPayload:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_payload", values[i])
			} else if value.Valid {
				_m.RequestPayload = value.String
			}
		case task.FieldFieldMapping:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_mapping", values[i])
			} else if value.Valid {
				_m.FieldMapping = value.String
			}
		case task.FieldTestData:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_data", values[i])
			} else if value.Valid {
				_m.TestData = value.String
			}
		case task.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case task.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case task.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryResults queries the "results" edge of the Task entity.
func (_m *Task) QueryResults() *TaskResultQuery {
	return NewTaskClient(_m.config).QueryResults(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("target_host=")
	builder.WriteString(_m.TargetHost)
	builder.WriteString(", ")
	builder.WriteString("api_path=")
	builder.WriteString(_m.APIPath)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("stream_mode=")
	builder.WriteString(_m.StreamMode)
	builder.WriteString(", ")
	builder.WriteString("concurrent_users=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConcurrentUsers))
	builder.WriteString(", ")
	builder.WriteString("spawn_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpawnRate))
	builder.WriteString(", ")
	builder.WriteString("duration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Duration))
	builder.WriteString(", ")
	builder.WriteString("chat_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChatType))
	builder.WriteString(", ")
	builder.WriteString("headers=")
	builder.WriteString(_m.Headers)
	builder.WriteString(", ")
	builder.WriteString("cookies=")
	builder.WriteString(_m.Cookies)
	builder.WriteString(", ")
	builder.WriteString("cert_file=")
	builder.WriteString(_m.CertFile)
	builder.WriteString(", ")
	builder.WriteString("key_file=")
	builder.WriteString(_m.KeyFile)
	builder.WriteString(", ")
	builder.WriteString("request_payload=")
	builder.WriteString(_m.RequestPayload)
	builder.WriteString(", ")
	builder.WriteString("field_mapping=")
	builder.WriteString(_m.FieldMapping)
	builder.WriteString(", ")
	builder.WriteString("test_data=")
	builder.WriteString(_m.TestData)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task
