// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTargetHost holds the string denoting the target_host field in the database.
	FieldTargetHost = "target_host"
	// FieldAPIPath holds the string denoting the api_path field in the database.
	FieldAPIPath = "api_path"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldStreamMode holds the string denoting the stream_mode field in the database.
	FieldStreamMode = "stream_mode"
	// FieldConcurrentUsers holds the string denoting the concurrent_users field in the database.
	FieldConcurrentUsers = "concurrent_users"
	// FieldSpawnRate holds the string denoting the spawn_rate field in the database.
	FieldSpawnRate = "spawn_rate"
	// FieldDuration holds the string denoting the duration field in the database.
	FieldDuration = "duration"
	// FieldChatType holds the string denoting the chat_type field in the database.
	FieldChatType = "chat_type"
	// FieldHeaders holds the string denoting the headers field in the database.
	FieldHeaders = "headers"
	// FieldCookies holds the string denoting the cookies field in the database.
	FieldCookies = "cookies"
	// FieldCertFile holds the string denoting the cert_file field in the database.
	FieldCertFile = "cert_file"
	// FieldKeyFile holds the string denoting the key_file field in the database.
	FieldKeyFile = "key_file"
	// FieldRequestPayload holds the string denoting the request_payload field in the database.
	FieldRequestPayload = "request_payload"
	// FieldFieldMapping holds the string denoting the field_mapping field in the database.
	FieldFieldMapping = "field_mapping"
	// FieldTestData holds the string denoting the test_data field in the database.
	FieldTestData = "test_data"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeResults holds the string denoting the results edge name in mutations.
	EdgeResults = "results"
	// TaskResultFieldID holds the string denoting the ID field of the TaskResult.
	TaskResultFieldID = "id"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// ResultsTable is the table that holds the results relation/edge.
	ResultsTable = "task_results"
	// ResultsInverseTable is the table name for the TaskResult entity.
	// It exists in this package in order to avoid circular dependency with the "taskresult" package.
	ResultsInverseTable = "task_results"
	// ResultsColumn is the table column denoting the results relation/edge.
	ResultsColumn = "task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldStatus,
	FieldTargetHost,
	FieldAPIPath,
	FieldModel,
	FieldStreamMode,
	FieldConcurrentUsers,
	FieldSpawnRate,
	FieldDuration,
	FieldChatType,
	FieldHeaders,
	FieldCookies,
	FieldCertFile,
	FieldKeyFile,
	FieldRequestPayload,
	FieldFieldMapping,
	FieldTestData,
	FieldErrorMessage,
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
	// DefaultAPIPath holds the default value on creation for the "api_path" field.
	DefaultAPIPath string
	// DefaultStreamMode holds the default value on creation for the "stream_mode" field.
	DefaultStreamMode string
	// ConcurrentUsersValidator is a validator for the "concurrent_users" field. It is called by the builders before save.
	ConcurrentUsersValidator func(int) error
	// SpawnRateValidator is a validator for the "spawn_rate" field. It is called by the builders before save.
	SpawnRateValidator func(int) error
	// DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	DurationValidator func(int) error
	// DefaultChatType holds the default value on creation for the "chat_type" field.
	DefaultChatType int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusCreated is the default value of the Status enum.
const DefaultStatus = StatusCreated

// Status values.
const (
	StatusCreated        Status = "created"
	StatusLocked         Status = "locked"
	StatusRunning        Status = "running"
	StatusStopping       Status = "stopping"
	StatusCompleted      Status = "completed"
	StatusFailed         Status = "failed"
	StatusFailedRequests Status = "failed_requests"
	StatusStopped        Status = "stopped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCreated, StatusLocked, StatusRunning, StatusStopping, StatusCompleted, StatusFailed, StatusFailedRequests, StatusStopped:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTargetHost orders the results by the target_host field.
func ByTargetHost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetHost, opts...).ToFunc()
}

// ByAPIPath orders the results by the api_path field.
func ByAPIPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAPIPath, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByStreamMode orders the results by the stream_mode field.
func ByStreamMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreamMode, opts...).ToFunc()
}

// ByConcurrentUsers orders the results by the concurrent_users field.
func ByConcurrentUsers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConcurrentUsers, opts...).ToFunc()
}

// BySpawnRate orders the results by the spawn_rate field.
func BySpawnRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpawnRate, opts...).ToFunc()
}

// ByDuration orders the results by the duration field.
func ByDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuration, opts...).ToFunc()
}

// ByChatType orders the results by the chat_type field.
func ByChatType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatType, opts...).ToFunc()
}

// ByHeaders orders the results by the headers field.
func ByHeaders(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeaders, opts...).ToFunc()
}

// ByCookies orders the results by the cookies field.
func ByCookies(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCookies, opts...).ToFunc()
}

// ByCertFile orders the results by the cert_file field.
func ByCertFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCertFile, opts...).ToFunc()
}

// ByKeyFile orders the results by the key_file field.
func ByKeyFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeyFile, opts...).ToFunc()
}

// ByRequestPayload orders the results by the request_payload field.
func ByRequestPayload(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestPayload, opts...).ToFunc()
}

// ByFieldMapping orders the results by the field_mapping field.
func ByFieldMapping(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldMapping, opts...).ToFunc()
}

// ByTestData orders the results by the test_data field.
func ByTestData(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestData, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByResultsCount orders the results by results count.
func ByResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newResultsStep(), opts...)
	}
}

// ByResults orders the results by results terms.
func ByResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResultsInverseTable, TaskResultFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
	)
}
