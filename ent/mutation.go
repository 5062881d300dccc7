// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/perfflow/perfflow/ent/predicate"
	"github.com/perfflow/perfflow/ent/task"
	"github.com/perfflow/perfflow/ent/taskresult"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeTask       = "Task"
	TypeTaskResult = "TaskResult"
)

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	name                *string
	status              *task.Status
	target_host         *string
	api_path            *string
	model               *string
	stream_mode         *string
	concurrent_users    *int
	addconcurrent_users *int
	spawn_rate          *int
	addspawn_rate       *int
	duration            *int
	addduration         *int
	chat_type           *int
	addchat_type        *int
	headers             *string
	cookies             *string
	cert_file           *string
	key_file            *string
	request_payload     *string
	field_mapping       *string
	test_data           *string
	error_message       *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	results             map[int]struct{}
	removedresults      map[int]struct{}
	clearedresults      bool
	done                bool
	oldValue            func(context.Context) (*Task, error)
	predicates          []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TaskMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TaskMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TaskMutation) ResetName() {
	m.name = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetTargetHost sets the "target_host" field.
func (m *TaskMutation) SetTargetHost(s string) {
	m.target_host = &s
}

// TargetHost returns the value of the "target_host" field in the mutation.
func (m *TaskMutation) TargetHost() (r string, exists bool) {
	v := m.target_host
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetHost returns the old "target_host" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTargetHost(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetHost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetHost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetHost: %w", err)
	}
	return oldValue.TargetHost, nil
}

// ResetTargetHost resets all changes to the "target_host" field.
func (m *TaskMutation) ResetTargetHost() {
	m.target_host = nil
}

// SetAPIPath sets the "api_path" field.
func (m *TaskMutation) SetAPIPath(s string) {
	m.api_path = &s
}

// APIPath returns the value of the "api_path" field in the mutation.
func (m *TaskMutation) APIPath() (r string, exists bool) {
	v := m.api_path
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIPath returns the old "api_path" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAPIPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIPath: %w", err)
	}
	return oldValue.APIPath, nil
}

// ResetAPIPath resets all changes to the "api_path" field.
func (m *TaskMutation) ResetAPIPath() {
	m.api_path = nil
}

// SetModel sets the "model" field.
func (m *TaskMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *TaskMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *TaskMutation) ClearModel() {
	m.model = nil
	m.clearedFields[task.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *TaskMutation) ModelCleared() bool {
	_, ok := m.clearedFields[task.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *TaskMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, task.FieldModel)
}

// SetStreamMode sets the "stream_mode" field.
func (m *TaskMutation) SetStreamMode(s string) {
	m.stream_mode = &s
}

// StreamMode returns the value of the "stream_mode" field in the mutation.
func (m *TaskMutation) StreamMode() (r string, exists bool) {
	v := m.stream_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamMode returns the old "stream_mode" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStreamMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamMode: %w", err)
	}
	return oldValue.StreamMode, nil
}

// ResetStreamMode resets all changes to the "stream_mode" field.
func (m *TaskMutation) ResetStreamMode() {
	m.stream_mode = nil
}

// SetConcurrentUsers sets the "concurrent_users" field.
func (m *TaskMutation) SetConcurrentUsers(i int) {
	m.concurrent_users = &i
	m.addconcurrent_users = nil
}

// ConcurrentUsers returns the value of the "concurrent_users" field in the mutation.
func (m *TaskMutation) ConcurrentUsers() (r int, exists bool) {
	v := m.concurrent_users
	if v == nil {
		return
	}
	return *v, true
}

// OldConcurrentUsers returns the old "concurrent_users" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldConcurrentUsers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConcurrentUsers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConcurrentUsers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConcurrentUsers: %w", err)
	}
	return oldValue.ConcurrentUsers, nil
}

// AddConcurrentUsers adds i to the "concurrent_users" field.
func (m *TaskMutation) AddConcurrentUsers(i int) {
	if m.addconcurrent_users != nil {
		*m.addconcurrent_users += i
	} else {
		m.addconcurrent_users = &i
	}
}

// AddedConcurrentUsers returns the value that was added to the "concurrent_users" field in this mutation.
func (m *TaskMutation) AddedConcurrentUsers() (r int, exists bool) {
	v := m.addconcurrent_users
	if v == nil {
		return
	}
	return *v, true
}

// ResetConcurrentUsers resets all changes to the "concurrent_users" field.
func (m *TaskMutation) ResetConcurrentUsers() {
	m.concurrent_users = nil
	m.addconcurrent_users = nil
}

// SetSpawnRate sets the "spawn_rate" field.
func (m *TaskMutation) SetSpawnRate(i int) {
	m.spawn_rate = &i
	m.addspawn_rate = nil
}

// SpawnRate returns the value of the "spawn_rate" field in the mutation.
func (m *TaskMutation) SpawnRate() (r int, exists bool) {
	v := m.spawn_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldSpawnRate returns the old "spawn_rate" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldSpawnRate(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpawnRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpawnRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpawnRate: %w", err)
	}
	return oldValue.SpawnRate, nil
}

// AddSpawnRate adds i to the "spawn_rate" field.
func (m *TaskMutation) AddSpawnRate(i int) {
	if m.addspawn_rate != nil {
		*m.addspawn_rate += i
	} else {
		m.addspawn_rate = &i
	}
}

// AddedSpawnRate returns the value that was added to the "spawn_rate" field in this mutation.
func (m *TaskMutation) AddedSpawnRate() (r int, exists bool) {
	v := m.addspawn_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpawnRate resets all changes to the "spawn_rate" field.
func (m *TaskMutation) ResetSpawnRate() {
	m.spawn_rate = nil
	m.addspawn_rate = nil
}

// SetDuration sets the "duration" field.
func (m *TaskMutation) SetDuration(i int) {
	m.duration = &i
	m.addduration = nil
}

// Duration returns the value of the "duration" field in the mutation.
func (m *TaskMutation) Duration() (r int, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDuration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// AddDuration adds i to the "duration" field.
func (m *TaskMutation) AddDuration(i int) {
	if m.addduration != nil {
		*m.addduration += i
	} else {
		m.addduration = &i
	}
}

// AddedDuration returns the value that was added to the "duration" field in this mutation.
func (m *TaskMutation) AddedDuration() (r int, exists bool) {
	v := m.addduration
	if v == nil {
		return
	}
	return *v, true
}

// ResetDuration resets all changes to the "duration" field.
func (m *TaskMutation) ResetDuration() {
	m.duration = nil
	m.addduration = nil
}

// SetChatType sets the "chat_type" field.
func (m *TaskMutation) SetChatType(i int) {
	m.chat_type = &i
	m.addchat_type = nil
}

// ChatType returns the value of the "chat_type" field in the mutation.
func (m *TaskMutation) ChatType() (r int, exists bool) {
	v := m.chat_type
	if v == nil {
		return
	}
	return *v, true
}

// OldChatType returns the old "chat_type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldChatType(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatType: %w", err)
	}
	return oldValue.ChatType, nil
}

// AddChatType adds i to the "chat_type" field.
func (m *TaskMutation) AddChatType(i int) {
	if m.addchat_type != nil {
		*m.addchat_type += i
	} else {
		m.addchat_type = &i
	}
}

// AddedChatType returns the value that was added to the "chat_type" field in this mutation.
func (m *TaskMutation) AddedChatType() (r int, exists bool) {
	v := m.addchat_type
	if v == nil {
		return
	}
	return *v, true
}

// ResetChatType resets all changes to the "chat_type" field.
func (m *TaskMutation) ResetChatType() {
	m.chat_type = nil
	m.addchat_type = nil
}

// SetHeaders sets the "headers" field.
func (m *TaskMutation) SetHeaders(s string) {
	m.headers = &s
}

// Headers returns the value of the "headers" field in the mutation.
func (m *TaskMutation) Headers() (r string, exists bool) {
	v := m.headers
	if v == nil {
		return
	}
	return *v, true
}

// OldHeaders returns the old "headers" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldHeaders(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeaders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeaders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeaders: %w", err)
	}
	return oldValue.Headers, nil
}

// ClearHeaders clears the value of the "headers" field.
func (m *TaskMutation) ClearHeaders() {
	m.headers = nil
	m.clearedFields[task.FieldHeaders] = struct{}{}
}

// HeadersCleared returns if the "headers" field was cleared in this mutation.
func (m *TaskMutation) HeadersCleared() bool {
	_, ok := m.clearedFields[task.FieldHeaders]
	return ok
}

// ResetHeaders resets all changes to the "headers" field.
func (m *TaskMutation) ResetHeaders() {
	m.headers = nil
	delete(m.clearedFields, task.FieldHeaders)
}

// SetCookies sets the "cookies" field.
func (m *TaskMutation) SetCookies(s string) {
	m.cookies = &s
}

// Cookies returns the value of the "cookies" field in the mutation.
func (m *TaskMutation) Cookies() (r string, exists bool) {
	v := m.cookies
	if v == nil {
		return
	}
	return *v, true
}

// OldCookies returns the old "cookies" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCookies(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCookies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCookies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCookies: %w", err)
	}
	return oldValue.Cookies, nil
}

// ClearCookies clears the value of the "cookies" field.
func (m *TaskMutation) ClearCookies() {
	m.cookies = nil
	m.clearedFields[task.FieldCookies] = struct{}{}
}

// CookiesCleared returns if the "cookies" field was cleared in this mutation.
func (m *TaskMutation) CookiesCleared() bool {
	_, ok := m.clearedFields[task.FieldCookies]
	return ok
}

// ResetCookies resets all changes to the "cookies" field.
func (m *TaskMutation) ResetCookies() {
	m.cookies = nil
	delete(m.clearedFields, task.FieldCookies)
}

// SetCertFile sets the "cert_file" field.
func (m *TaskMutation) SetCertFile(s string) {
	m.cert_file = &s
}

// CertFile returns the value of the "cert_file" field in the mutation.
func (m *TaskMutation) CertFile() (r string, exists bool) {
	v := m.cert_file
	if v == nil {
		return
	}
	return *v, true
}

// OldCertFile returns the old "cert_file" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCertFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCertFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCertFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCertFile: %w", err)
	}
	return oldValue.CertFile, nil
}

// ClearCertFile clears the value of the "cert_file" field.
func (m *TaskMutation) ClearCertFile() {
	m.cert_file = nil
	m.clearedFields[task.FieldCertFile] = struct{}{}
}

// CertFileCleared returns if the "cert_file" field was cleared in this mutation.
func (m *TaskMutation) CertFileCleared() bool {
	_, ok := m.clearedFields[task.FieldCertFile]
	return ok
}

// ResetCertFile resets all changes to the "cert_file" field.
func (m *TaskMutation) ResetCertFile() {
	m.cert_file = nil
	delete(m.clearedFields, task.FieldCertFile)
}

// SetKeyFile sets the "key_file" field.
func (m *TaskMutation) SetKeyFile(s string) {
	m.key_file = &s
}

// KeyFile returns the value of the "key_file" field in the mutation.
func (m *TaskMutation) KeyFile() (r string, exists bool) {
	v := m.key_file
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyFile returns the old "key_file" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldKeyFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyFile: %w", err)
	}
	return oldValue.KeyFile, nil
}

// ClearKeyFile clears the value of the "key_file" field.
func (m *TaskMutation) ClearKeyFile() {
	m.key_file = nil
	m.clearedFields[task.FieldKeyFile] = struct{}{}
}

// KeyFileCleared returns if the "key_file" field was cleared in this mutation.
func (m *TaskMutation) KeyFileCleared() bool {
	_, ok := m.clearedFields[task.FieldKeyFile]
	return ok
}

// ResetKeyFile resets all changes to the "key_file" field.
func (m *TaskMutation) ResetKeyFile() {
	m.key_file = nil
	delete(m.clearedFields, task.FieldKeyFile)
}

// SetRequestPayload sets the "request_payload" field.
func (m *TaskMutation) SetRequestPayload(s string) {
	m.request_payload = &s
}

// RequestPayload returns the value of the "request_payload" field in the mutation.
func (m *TaskMutation) RequestPayload() (r string, exists bool) {
	v := m.request_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestPayload returns the old "request_payload" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldRequestPayload(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestPayload: %w", err)
	}
	return oldValue.RequestPayload, nil
}

// ClearRequestPayload clears the value of the "request_payload" field.
func (m *TaskMutation) ClearRequestPayload() {
	m.request_payload = nil
	m.clearedFields[task.FieldRequestPayload] = struct{}{}
}

// RequestPayloadCleared returns if the "request_payload" field was cleared in this mutation.
func (m *TaskMutation) RequestPayloadCleared() bool {
	_, ok := m.clearedFields[task.FieldRequestPayload]
	return ok
}

// ResetRequestPayload resets all changes to the "request_payload" field.
func (m *TaskMutation) ResetRequestPayload() {
	m.request_payload = nil
	delete(m.clearedFields, task.FieldRequestPayload)
}

// SetFieldMapping sets the "field_mapping" field.
func (m *TaskMutation) SetFieldMapping(s string) {
	m.field_mapping = &s
}

// FieldMapping returns the value of the "field_mapping" field in the mutation.
func (m *TaskMutation) FieldMapping() (r string, exists bool) {
	v := m.field_mapping
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldMapping returns the old "field_mapping" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldFieldMapping(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldMapping is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldMapping requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldMapping: %w", err)
	}
	return oldValue.FieldMapping, nil
}

// ClearFieldMapping clears the value of the "field_mapping" field.
func (m *TaskMutation) ClearFieldMapping() {
	m.field_mapping = nil
	m.clearedFields[task.FieldFieldMapping] = struct{}{}
}

// FieldMappingCleared returns if the "field_mapping" field was cleared in this mutation.
func (m *TaskMutation) FieldMappingCleared() bool {
	_, ok := m.clearedFields[task.FieldFieldMapping]
	return ok
}

// ResetFieldMapping resets all changes to the "field_mapping" field.
func (m *TaskMutation) ResetFieldMapping() {
	m.field_mapping = nil
	delete(m.clearedFields, task.FieldFieldMapping)
}

// SetTestData sets the "test_data" field.
func (m *TaskMutation) SetTestData(s string) {
	m.test_data = &s
}

// TestData returns the value of the "test_data" field in the mutation.
func (m *TaskMutation) TestData() (r string, exists bool) {
	v := m.test_data
	if v == nil {
		return
	}
	return *v, true
}

// OldTestData returns the old "test_data" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTestData(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestData: %w", err)
	}
	return oldValue.TestData, nil
}

// ClearTestData clears the value of the "test_data" field.
func (m *TaskMutation) ClearTestData() {
	m.test_data = nil
	m.clearedFields[task.FieldTestData] = struct{}{}
}

// TestDataCleared returns if the "test_data" field was cleared in this mutation.
func (m *TaskMutation) TestDataCleared() bool {
	_, ok := m.clearedFields[task.FieldTestData]
	return ok
}

// ResetTestData resets all changes to the "test_data" field.
func (m *TaskMutation) ResetTestData() {
	m.test_data = nil
	delete(m.clearedFields, task.FieldTestData)
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[task.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, task.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddResultIDs adds the "results" edge to the TaskResult entity by ids.
func (m *TaskMutation) AddResultIDs(ids ...int) {
	if m.results == nil {
		m.results = make(map[int]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the TaskResult entity.
func (m *TaskMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the TaskResult entity was cleared.
func (m *TaskMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the TaskResult entity by IDs.
func (m *TaskMutation) RemoveResultIDs(ids ...int) {
	if m.removedresults == nil {
		m.removedresults = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the TaskResult entity.
func (m *TaskMutation) RemovedResultsIDs() (ids []int) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *TaskMutation) ResultsIDs() (ids []int) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *TaskMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.name != nil {
		fields = append(fields, task.FieldName)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.target_host != nil {
		fields = append(fields, task.FieldTargetHost)
	}
	if m.api_path != nil {
		fields = append(fields, task.FieldAPIPath)
	}
	if m.model != nil {
		fields = append(fields, task.FieldModel)
	}
	if m.stream_mode != nil {
		fields = append(fields, task.FieldStreamMode)
	}
	if m.concurrent_users != nil {
		fields = append(fields, task.FieldConcurrentUsers)
	}
	if m.spawn_rate != nil {
		fields = append(fields, task.FieldSpawnRate)
	}
	if m.duration != nil {
		fields = append(fields, task.FieldDuration)
	}
	if m.chat_type != nil {
		fields = append(fields, task.FieldChatType)
	}
	if m.headers != nil {
		fields = append(fields, task.FieldHeaders)
	}
	if m.cookies != nil {
		fields = append(fields, task.FieldCookies)
	}
	if m.cert_file != nil {
		fields = append(fields, task.FieldCertFile)
	}
	if m.key_file != nil {
		fields = append(fields, task.FieldKeyFile)
	}
	if m.request_payload != nil {
		fields = append(fields, task.FieldRequestPayload)
	}
	if m.field_mapping != nil {
		fields = append(fields, task.FieldFieldMapping)
	}
	if m.test_data != nil {
		fields = append(fields, task.FieldTestData)
	}
	if m.error_message != nil {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldName:
		return m.Name()
	case task.FieldStatus:
		return m.Status()
	case task.FieldTargetHost:
		return m.TargetHost()
	case task.FieldAPIPath:
		return m.APIPath()
	case task.FieldModel:
		return m.Model()
	case task.FieldStreamMode:
		return m.StreamMode()
	case task.FieldConcurrentUsers:
		return m.ConcurrentUsers()
	case task.FieldSpawnRate:
		return m.SpawnRate()
	case task.FieldDuration:
		return m.Duration()
	case task.FieldChatType:
		return m.ChatType()
	case task.FieldHeaders:
		return m.Headers()
	case task.FieldCookies:
		return m.Cookies()
	case task.FieldCertFile:
		return m.CertFile()
	case task.FieldKeyFile:
		return m.KeyFile()
	case task.FieldRequestPayload:
		return m.RequestPayload()
	case task.FieldFieldMapping:
		return m.FieldMapping()
	case task.FieldTestData:
		return m.TestData()
	case task.FieldErrorMessage:
		return m.ErrorMessage()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldName:
		return m.OldName(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldTargetHost:
		return m.OldTargetHost(ctx)
	case task.FieldAPIPath:
		return m.OldAPIPath(ctx)
	case task.FieldModel:
		return m.OldModel(ctx)
	case task.FieldStreamMode:
		return m.OldStreamMode(ctx)
	case task.FieldConcurrentUsers:
		return m.OldConcurrentUsers(ctx)
	case task.FieldSpawnRate:
		return m.OldSpawnRate(ctx)
	case task.FieldDuration:
		return m.OldDuration(ctx)
	case task.FieldChatType:
		return m.OldChatType(ctx)
	case task.FieldHeaders:
		return m.OldHeaders(ctx)
	case task.FieldCookies:
		return m.OldCookies(ctx)
	case task.FieldCertFile:
		return m.OldCertFile(ctx)
	case task.FieldKeyFile:
		return m.OldKeyFile(ctx)
	case task.FieldRequestPayload:
		return m.OldRequestPayload(ctx)
	case task.FieldFieldMapping:
		return m.OldFieldMapping(ctx)
	case task.FieldTestData:
		return m.OldTestData(ctx)
	case task.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldTargetHost:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetHost(v)
		return nil
	case task.FieldAPIPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIPath(v)
		return nil
	case task.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case task.FieldStreamMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamMode(v)
		return nil
	case task.FieldConcurrentUsers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConcurrentUsers(v)
		return nil
	case task.FieldSpawnRate:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpawnRate(v)
		return nil
	case task.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case task.FieldChatType:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatType(v)
		return nil
	case task.FieldHeaders:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeaders(v)
		return nil
	case task.FieldCookies:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCookies(v)
		return nil
	case task.FieldCertFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCertFile(v)
		return nil
	case task.FieldKeyFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyFile(v)
		return nil
	case task.FieldRequestPayload:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestPayload(v)
		return nil
	case task.FieldFieldMapping:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldMapping(v)
		return nil
	case task.FieldTestData:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestData(v)
		return nil
	case task.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addconcurrent_users != nil {
		fields = append(fields, task.FieldConcurrentUsers)
	}
	if m.addspawn_rate != nil {
		fields = append(fields, task.FieldSpawnRate)
	}
	if m.addduration != nil {
		fields = append(fields, task.FieldDuration)
	}
	if m.addchat_type != nil {
		fields = append(fields, task.FieldChatType)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldConcurrentUsers:
		return m.AddedConcurrentUsers()
	case task.FieldSpawnRate:
		return m.AddedSpawnRate()
	case task.FieldDuration:
		return m.AddedDuration()
	case task.FieldChatType:
		return m.AddedChatType()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldConcurrentUsers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConcurrentUsers(v)
		return nil
	case task.FieldSpawnRate:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpawnRate(v)
		return nil
	case task.FieldDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuration(v)
		return nil
	case task.FieldChatType:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChatType(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldModel) {
		fields = append(fields, task.FieldModel)
	}
	if m.FieldCleared(task.FieldHeaders) {
		fields = append(fields, task.FieldHeaders)
	}
	if m.FieldCleared(task.FieldCookies) {
		fields = append(fields, task.FieldCookies)
	}
	if m.FieldCleared(task.FieldCertFile) {
		fields = append(fields, task.FieldCertFile)
	}
	if m.FieldCleared(task.FieldKeyFile) {
		fields = append(fields, task.FieldKeyFile)
	}
	if m.FieldCleared(task.FieldRequestPayload) {
		fields = append(fields, task.FieldRequestPayload)
	}
	if m.FieldCleared(task.FieldFieldMapping) {
		fields = append(fields, task.FieldFieldMapping)
	}
	if m.FieldCleared(task.FieldTestData) {
		fields = append(fields, task.FieldTestData)
	}
	if m.FieldCleared(task.FieldErrorMessage) {
		fields = append(fields, task.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldModel:
		m.ClearModel()
		return nil
	case task.FieldHeaders:
		m.ClearHeaders()
		return nil
	case task.FieldCookies:
		m.ClearCookies()
		return nil
	case task.FieldCertFile:
		m.ClearCertFile()
		return nil
	case task.FieldKeyFile:
		m.ClearKeyFile()
		return nil
	case task.FieldRequestPayload:
		m.ClearRequestPayload()
		return nil
	case task.FieldFieldMapping:
		m.ClearFieldMapping()
		return nil
	case task.FieldTestData:
		m.ClearTestData()
		return nil
	case task.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldName:
		m.ResetName()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldTargetHost:
		m.ResetTargetHost()
		return nil
	case task.FieldAPIPath:
		m.ResetAPIPath()
		return nil
	case task.FieldModel:
		m.ResetModel()
		return nil
	case task.FieldStreamMode:
		m.ResetStreamMode()
		return nil
	case task.FieldConcurrentUsers:
		m.ResetConcurrentUsers()
		return nil
	case task.FieldSpawnRate:
		m.ResetSpawnRate()
		return nil
	case task.FieldDuration:
		m.ResetDuration()
		return nil
	case task.FieldChatType:
		m.ResetChatType()
		return nil
	case task.FieldHeaders:
		m.ResetHeaders()
		return nil
	case task.FieldCookies:
		m.ResetCookies()
		return nil
	case task.FieldCertFile:
		m.ResetCertFile()
		return nil
	case task.FieldKeyFile:
		m.ResetKeyFile()
		return nil
	case task.FieldRequestPayload:
		m.ResetRequestPayload()
		return nil
	case task.FieldFieldMapping:
		m.ResetFieldMapping()
		return nil
	case task.FieldTestData:
		m.ResetTestData()
		return nil
	case task.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.results != nil {
		edges = append(edges, task.EdgeResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedresults != nil {
		edges = append(edges, task.EdgeResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedresults {
		edges = append(edges, task.EdgeResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeResults:
		return m.clearedresults
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeResults:
		m.ResetResults()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TaskResultMutation represents an operation that mutates the TaskResult nodes in the graph.
type TaskResultMutation struct {
	config
	op                               Op
	typ                              string
	id                               *int
	metric_type                      *string
	num_requests                     *int64
	addnum_requests                  *int64
	num_failures                     *int64
	addnum_failures                  *int64
	avg_latency                      *float64
	addavg_latency                   *float64
	min_latency                      *float64
	addmin_latency                   *float64
	max_latency                      *float64
	addmax_latency                   *float64
	median_latency                   *float64
	addmedian_latency                *float64
	p90_latency                      *float64
	addp90_latency                   *float64
	rps                              *float64
	addrps                           *float64
	avg_content_length               *float64
	addavg_content_length            *float64
	completion_tps                   *float64
	addcompletion_tps                *float64
	total_tps                        *float64
	addtotal_tps                     *float64
	avg_total_tokens_per_req         *float64
	addavg_total_tokens_per_req      *float64
	avg_completion_tokens_per_req    *float64
	addavg_completion_tokens_per_req *float64
	created_at                       *time.Time
	updated_at                       *time.Time
	clearedFields                    map[string]struct{}
	task                             *string
	clearedtask                      bool
	done                             bool
	oldValue                         func(context.Context) (*TaskResult, error)
	predicates                       []predicate.TaskResult
}

var _ ent.Mutation = (*TaskResultMutation)(nil)

// taskresultOption allows management of the mutation configuration using functional options.
type taskresultOption func(*TaskResultMutation)

// newTaskResultMutation creates new mutation for the TaskResult entity.
func newTaskResultMutation(c config, op Op, opts ...taskresultOption) *TaskResultMutation {
	m := &TaskResultMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskResultID sets the ID field of the mutation.
func withTaskResultID(id int) taskresultOption {
	return func(m *TaskResultMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskResult
		)
		m.oldValue = func(ctx context.Context) (*TaskResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskResult sets the old TaskResult of the mutation.
func withTaskResult(node *TaskResult) taskresultOption {
	return func(m *TaskResultMutation) {
		m.oldValue = func(context.Context) (*TaskResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TaskResultMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskResultMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskResultMutation) ResetTaskID() {
	m.task = nil
}

// SetMetricType sets the "metric_type" field.
func (m *TaskResultMutation) SetMetricType(s string) {
	m.metric_type = &s
}

// MetricType returns the value of the "metric_type" field in the mutation.
func (m *TaskResultMutation) MetricType() (r string, exists bool) {
	v := m.metric_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMetricType returns the old "metric_type" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldMetricType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetricType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetricType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetricType: %w", err)
	}
	return oldValue.MetricType, nil
}

// ResetMetricType resets all changes to the "metric_type" field.
func (m *TaskResultMutation) ResetMetricType() {
	m.metric_type = nil
}

// SetNumRequests sets the "num_requests" field.
func (m *TaskResultMutation) SetNumRequests(i int64) {
	m.num_requests = &i
	m.addnum_requests = nil
}

// NumRequests returns the value of the "num_requests" field in the mutation.
func (m *TaskResultMutation) NumRequests() (r int64, exists bool) {
	v := m.num_requests
	if v == nil {
		return
	}
	return *v, true
}

// OldNumRequests returns the old "num_requests" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldNumRequests(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumRequests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumRequests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumRequests: %w", err)
	}
	return oldValue.NumRequests, nil
}

// AddNumRequests adds i to the "num_requests" field.
func (m *TaskResultMutation) AddNumRequests(i int64) {
	if m.addnum_requests != nil {
		*m.addnum_requests += i
	} else {
		m.addnum_requests = &i
	}
}

// AddedNumRequests returns the value that was added to the "num_requests" field in this mutation.
func (m *TaskResultMutation) AddedNumRequests() (r int64, exists bool) {
	v := m.addnum_requests
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumRequests resets all changes to the "num_requests" field.
func (m *TaskResultMutation) ResetNumRequests() {
	m.num_requests = nil
	m.addnum_requests = nil
}

// SetNumFailures sets the "num_failures" field.
func (m *TaskResultMutation) SetNumFailures(i int64) {
	m.num_failures = &i
	m.addnum_failures = nil
}

// NumFailures returns the value of the "num_failures" field in the mutation.
func (m *TaskResultMutation) NumFailures() (r int64, exists bool) {
	v := m.num_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldNumFailures returns the old "num_failures" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldNumFailures(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumFailures: %w", err)
	}
	return oldValue.NumFailures, nil
}

// AddNumFailures adds i to the "num_failures" field.
func (m *TaskResultMutation) AddNumFailures(i int64) {
	if m.addnum_failures != nil {
		*m.addnum_failures += i
	} else {
		m.addnum_failures = &i
	}
}

// AddedNumFailures returns the value that was added to the "num_failures" field in this mutation.
func (m *TaskResultMutation) AddedNumFailures() (r int64, exists bool) {
	v := m.addnum_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumFailures resets all changes to the "num_failures" field.
func (m *TaskResultMutation) ResetNumFailures() {
	m.num_failures = nil
	m.addnum_failures = nil
}

// SetAvgLatency sets the "avg_latency" field.
func (m *TaskResultMutation) SetAvgLatency(f float64) {
	m.avg_latency = &f
	m.addavg_latency = nil
}

// AvgLatency returns the value of the "avg_latency" field in the mutation.
func (m *TaskResultMutation) AvgLatency() (r float64, exists bool) {
	v := m.avg_latency
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgLatency returns the old "avg_latency" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldAvgLatency(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgLatency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgLatency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgLatency: %w", err)
	}
	return oldValue.AvgLatency, nil
}

// AddAvgLatency adds f to the "avg_latency" field.
func (m *TaskResultMutation) AddAvgLatency(f float64) {
	if m.addavg_latency != nil {
		*m.addavg_latency += f
	} else {
		m.addavg_latency = &f
	}
}

// AddedAvgLatency returns the value that was added to the "avg_latency" field in this mutation.
func (m *TaskResultMutation) AddedAvgLatency() (r float64, exists bool) {
	v := m.addavg_latency
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgLatency resets all changes to the "avg_latency" field.
func (m *TaskResultMutation) ResetAvgLatency() {
	m.avg_latency = nil
	m.addavg_latency = nil
}

// SetMinLatency sets the "min_latency" field.
func (m *TaskResultMutation) SetMinLatency(f float64) {
	m.min_latency = &f
	m.addmin_latency = nil
}

// MinLatency returns the value of the "min_latency" field in the mutation.
func (m *TaskResultMutation) MinLatency() (r float64, exists bool) {
	v := m.min_latency
	if v == nil {
		return
	}
	return *v, true
}

// OldMinLatency returns the old "min_latency" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldMinLatency(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinLatency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinLatency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinLatency: %w", err)
	}
	return oldValue.MinLatency, nil
}

// AddMinLatency adds f to the "min_latency" field.
func (m *TaskResultMutation) AddMinLatency(f float64) {
	if m.addmin_latency != nil {
		*m.addmin_latency += f
	} else {
		m.addmin_latency = &f
	}
}

// AddedMinLatency returns the value that was added to the "min_latency" field in this mutation.
func (m *TaskResultMutation) AddedMinLatency() (r float64, exists bool) {
	v := m.addmin_latency
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinLatency resets all changes to the "min_latency" field.
func (m *TaskResultMutation) ResetMinLatency() {
	m.min_latency = nil
	m.addmin_latency = nil
}

// SetMaxLatency sets the "max_latency" field.
func (m *TaskResultMutation) SetMaxLatency(f float64) {
	m.max_latency = &f
	m.addmax_latency = nil
}

// MaxLatency returns the value of the "max_latency" field in the mutation.
func (m *TaskResultMutation) MaxLatency() (r float64, exists bool) {
	v := m.max_latency
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxLatency returns the old "max_latency" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldMaxLatency(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxLatency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxLatency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxLatency: %w", err)
	}
	return oldValue.MaxLatency, nil
}

// AddMaxLatency adds f to the "max_latency" field.
func (m *TaskResultMutation) AddMaxLatency(f float64) {
	if m.addmax_latency != nil {
		*m.addmax_latency += f
	} else {
		m.addmax_latency = &f
	}
}

// AddedMaxLatency returns the value that was added to the "max_latency" field in this mutation.
func (m *TaskResultMutation) AddedMaxLatency() (r float64, exists bool) {
	v := m.addmax_latency
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxLatency resets all changes to the "max_latency" field.
func (m *TaskResultMutation) ResetMaxLatency() {
	m.max_latency = nil
	m.addmax_latency = nil
}

// SetMedianLatency sets the "median_latency" field.
func (m *TaskResultMutation) SetMedianLatency(f float64) {
	m.median_latency = &f
	m.addmedian_latency = nil
}

// MedianLatency returns the value of the "median_latency" field in the mutation.
func (m *TaskResultMutation) MedianLatency() (r float64, exists bool) {
	v := m.median_latency
	if v == nil {
		return
	}
	return *v, true
}

// OldMedianLatency returns the old "median_latency" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldMedianLatency(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedianLatency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedianLatency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedianLatency: %w", err)
	}
	return oldValue.MedianLatency, nil
}

// AddMedianLatency adds f to the "median_latency" field.
func (m *TaskResultMutation) AddMedianLatency(f float64) {
	if m.addmedian_latency != nil {
		*m.addmedian_latency += f
	} else {
		m.addmedian_latency = &f
	}
}

// AddedMedianLatency returns the value that was added to the "median_latency" field in this mutation.
func (m *TaskResultMutation) AddedMedianLatency() (r float64, exists bool) {
	v := m.addmedian_latency
	if v == nil {
		return
	}
	return *v, true
}

// ResetMedianLatency resets all changes to the "median_latency" field.
func (m *TaskResultMutation) ResetMedianLatency() {
	m.median_latency = nil
	m.addmedian_latency = nil
}

// SetP90Latency sets the "p90_latency" field.
func (m *TaskResultMutation) SetP90Latency(f float64) {
	m.p90_latency = &f
	m.addp90_latency = nil
}

// P90Latency returns the value of the "p90_latency" field in the mutation.
func (m *TaskResultMutation) P90Latency() (r float64, exists bool) {
	v := m.p90_latency
	if v == nil {
		return
	}
	return *v, true
}

// OldP90Latency returns the old "p90_latency" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldP90Latency(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldP90Latency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldP90Latency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldP90Latency: %w", err)
	}
	return oldValue.P90Latency, nil
}

// AddP90Latency adds f to the "p90_latency" field.
func (m *TaskResultMutation) AddP90Latency(f float64) {
	if m.addp90_latency != nil {
		*m.addp90_latency += f
	} else {
		m.addp90_latency = &f
	}
}

// AddedP90Latency returns the value that was added to the "p90_latency" field in this mutation.
func (m *TaskResultMutation) AddedP90Latency() (r float64, exists bool) {
	v := m.addp90_latency
	if v == nil {
		return
	}
	return *v, true
}

// ResetP90Latency resets all changes to the "p90_latency" field.
func (m *TaskResultMutation) ResetP90Latency() {
	m.p90_latency = nil
	m.addp90_latency = nil
}

// SetRps sets the "rps" field.
func (m *TaskResultMutation) SetRps(f float64) {
	m.rps = &f
	m.addrps = nil
}

// Rps returns the value of the "rps" field in the mutation.
func (m *TaskResultMutation) Rps() (r float64, exists bool) {
	v := m.rps
	if v == nil {
		return
	}
	return *v, true
}

// OldRps returns the old "rps" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldRps(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRps: %w", err)
	}
	return oldValue.Rps, nil
}

// AddRps adds f to the "rps" field.
func (m *TaskResultMutation) AddRps(f float64) {
	if m.addrps != nil {
		*m.addrps += f
	} else {
		m.addrps = &f
	}
}

// AddedRps returns the value that was added to the "rps" field in this mutation.
func (m *TaskResultMutation) AddedRps() (r float64, exists bool) {
	v := m.addrps
	if v == nil {
		return
	}
	return *v, true
}

// ResetRps resets all changes to the "rps" field.
func (m *TaskResultMutation) ResetRps() {
	m.rps = nil
	m.addrps = nil
}

// SetAvgContentLength sets the "avg_content_length" field.
func (m *TaskResultMutation) SetAvgContentLength(f float64) {
	m.avg_content_length = &f
	m.addavg_content_length = nil
}

// AvgContentLength returns the value of the "avg_content_length" field in the mutation.
func (m *TaskResultMutation) AvgContentLength() (r float64, exists bool) {
	v := m.avg_content_length
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgContentLength returns the old "avg_content_length" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldAvgContentLength(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgContentLength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgContentLength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgContentLength: %w", err)
	}
	return oldValue.AvgContentLength, nil
}

// AddAvgContentLength adds f to the "avg_content_length" field.
func (m *TaskResultMutation) AddAvgContentLength(f float64) {
	if m.addavg_content_length != nil {
		*m.addavg_content_length += f
	} else {
		m.addavg_content_length = &f
	}
}

// AddedAvgContentLength returns the value that was added to the "avg_content_length" field in this mutation.
func (m *TaskResultMutation) AddedAvgContentLength() (r float64, exists bool) {
	v := m.addavg_content_length
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgContentLength resets all changes to the "avg_content_length" field.
func (m *TaskResultMutation) ResetAvgContentLength() {
	m.avg_content_length = nil
	m.addavg_content_length = nil
}

// SetCompletionTps sets the "completion_tps" field.
func (m *TaskResultMutation) SetCompletionTps(f float64) {
	m.completion_tps = &f
	m.addcompletion_tps = nil
}

// CompletionTps returns the value of the "completion_tps" field in the mutation.
func (m *TaskResultMutation) CompletionTps() (r float64, exists bool) {
	v := m.completion_tps
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTps returns the old "completion_tps" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldCompletionTps(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTps: %w", err)
	}
	return oldValue.CompletionTps, nil
}

// AddCompletionTps adds f to the "completion_tps" field.
func (m *TaskResultMutation) AddCompletionTps(f float64) {
	if m.addcompletion_tps != nil {
		*m.addcompletion_tps += f
	} else {
		m.addcompletion_tps = &f
	}
}

// AddedCompletionTps returns the value that was added to the "completion_tps" field in this mutation.
func (m *TaskResultMutation) AddedCompletionTps() (r float64, exists bool) {
	v := m.addcompletion_tps
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTps resets all changes to the "completion_tps" field.
func (m *TaskResultMutation) ResetCompletionTps() {
	m.completion_tps = nil
	m.addcompletion_tps = nil
}

// SetTotalTps sets the "total_tps" field.
func (m *TaskResultMutation) SetTotalTps(f float64) {
	m.total_tps = &f
	m.addtotal_tps = nil
}

// TotalTps returns the value of the "total_tps" field in the mutation.
func (m *TaskResultMutation) TotalTps() (r float64, exists bool) {
	v := m.total_tps
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTps returns the old "total_tps" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldTotalTps(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTps: %w", err)
	}
	return oldValue.TotalTps, nil
}

// AddTotalTps adds f to the "total_tps" field.
func (m *TaskResultMutation) AddTotalTps(f float64) {
	if m.addtotal_tps != nil {
		*m.addtotal_tps += f
	} else {
		m.addtotal_tps = &f
	}
}

// AddedTotalTps returns the value that was added to the "total_tps" field in this mutation.
func (m *TaskResultMutation) AddedTotalTps() (r float64, exists bool) {
	v := m.addtotal_tps
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTps resets all changes to the "total_tps" field.
func (m *TaskResultMutation) ResetTotalTps() {
	m.total_tps = nil
	m.addtotal_tps = nil
}

// SetAvgTotalTokensPerReq sets the "avg_total_tokens_per_req" field.
func (m *TaskResultMutation) SetAvgTotalTokensPerReq(f float64) {
	m.avg_total_tokens_per_req = &f
	m.addavg_total_tokens_per_req = nil
}

// AvgTotalTokensPerReq returns the value of the "avg_total_tokens_per_req" field in the mutation.
func (m *TaskResultMutation) AvgTotalTokensPerReq() (r float64, exists bool) {
	v := m.avg_total_tokens_per_req
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgTotalTokensPerReq returns the old "avg_total_tokens_per_req" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldAvgTotalTokensPerReq(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgTotalTokensPerReq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgTotalTokensPerReq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgTotalTokensPerReq: %w", err)
	}
	return oldValue.AvgTotalTokensPerReq, nil
}

// AddAvgTotalTokensPerReq adds f to the "avg_total_tokens_per_req" field.
func (m *TaskResultMutation) AddAvgTotalTokensPerReq(f float64) {
	if m.addavg_total_tokens_per_req != nil {
		*m.addavg_total_tokens_per_req += f
	} else {
		m.addavg_total_tokens_per_req = &f
	}
}

// AddedAvgTotalTokensPerReq returns the value that was added to the "avg_total_tokens_per_req" field in this mutation.
func (m *TaskResultMutation) AddedAvgTotalTokensPerReq() (r float64, exists bool) {
	v := m.addavg_total_tokens_per_req
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgTotalTokensPerReq resets all changes to the "avg_total_tokens_per_req" field.
func (m *TaskResultMutation) ResetAvgTotalTokensPerReq() {
	m.avg_total_tokens_per_req = nil
	m.addavg_total_tokens_per_req = nil
}

// SetAvgCompletionTokensPerReq sets the "avg_completion_tokens_per_req" field.
func (m *TaskResultMutation) SetAvgCompletionTokensPerReq(f float64) {
	m.avg_completion_tokens_per_req = &f
	m.addavg_completion_tokens_per_req = nil
}

// AvgCompletionTokensPerReq returns the value of the "avg_completion_tokens_per_req" field in the mutation.
func (m *TaskResultMutation) AvgCompletionTokensPerReq() (r float64, exists bool) {
	v := m.avg_completion_tokens_per_req
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgCompletionTokensPerReq returns the old "avg_completion_tokens_per_req" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldAvgCompletionTokensPerReq(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgCompletionTokensPerReq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgCompletionTokensPerReq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgCompletionTokensPerReq: %w", err)
	}
	return oldValue.AvgCompletionTokensPerReq, nil
}

// AddAvgCompletionTokensPerReq adds f to the "avg_completion_tokens_per_req" field.
func (m *TaskResultMutation) AddAvgCompletionTokensPerReq(f float64) {
	if m.addavg_completion_tokens_per_req != nil {
		*m.addavg_completion_tokens_per_req += f
	} else {
		m.addavg_completion_tokens_per_req = &f
	}
}

// AddedAvgCompletionTokensPerReq returns the value that was added to the "avg_completion_tokens_per_req" field in this mutation.
func (m *TaskResultMutation) AddedAvgCompletionTokensPerReq() (r float64, exists bool) {
	v := m.addavg_completion_tokens_per_req
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgCompletionTokensPerReq resets all changes to the "avg_completion_tokens_per_req" field.
func (m *TaskResultMutation) ResetAvgCompletionTokensPerReq() {
	m.avg_completion_tokens_per_req = nil
	m.addavg_completion_tokens_per_req = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskResultMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskResultMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TaskResult entity.
// If the TaskResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskResultMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskResultMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TaskResultMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[taskresult.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TaskResultMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TaskResultMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TaskResultMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TaskResultMutation builder.
func (m *TaskResultMutation) Where(ps ...predicate.TaskResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskResult).
func (m *TaskResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskResultMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.task != nil {
		fields = append(fields, taskresult.FieldTaskID)
	}
	if m.metric_type != nil {
		fields = append(fields, taskresult.FieldMetricType)
	}
	if m.num_requests != nil {
		fields = append(fields, taskresult.FieldNumRequests)
	}
	if m.num_failures != nil {
		fields = append(fields, taskresult.FieldNumFailures)
	}
	if m.avg_latency != nil {
		fields = append(fields, taskresult.FieldAvgLatency)
	}
	if m.min_latency != nil {
		fields = append(fields, taskresult.FieldMinLatency)
	}
	if m.max_latency != nil {
		fields = append(fields, taskresult.FieldMaxLatency)
	}
	if m.median_latency != nil {
		fields = append(fields, taskresult.FieldMedianLatency)
	}
	if m.p90_latency != nil {
		fields = append(fields, taskresult.FieldP90Latency)
	}
	if m.rps != nil {
		fields = append(fields, taskresult.FieldRps)
	}
	if m.avg_content_length != nil {
		fields = append(fields, taskresult.FieldAvgContentLength)
	}
	if m.completion_tps != nil {
		fields = append(fields, taskresult.FieldCompletionTps)
	}
	if m.total_tps != nil {
		fields = append(fields, taskresult.FieldTotalTps)
	}
	if m.avg_total_tokens_per_req != nil {
		fields = append(fields, taskresult.FieldAvgTotalTokensPerReq)
	}
	if m.avg_completion_tokens_per_req != nil {
		fields = append(fields, taskresult.FieldAvgCompletionTokensPerReq)
	}
	if m.created_at != nil {
		fields = append(fields, taskresult.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, taskresult.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskresult.FieldTaskID:
		return m.TaskID()
	case taskresult.FieldMetricType:
		return m.MetricType()
	case taskresult.FieldNumRequests:
		return m.NumRequests()
	case taskresult.FieldNumFailures:
		return m.NumFailures()
	case taskresult.FieldAvgLatency:
		return m.AvgLatency()
	case taskresult.FieldMinLatency:
		return m.MinLatency()
	case taskresult.FieldMaxLatency:
		return m.MaxLatency()
	case taskresult.FieldMedianLatency:
		return m.MedianLatency()
	case taskresult.FieldP90Latency:
		return m.P90Latency()
	case taskresult.FieldRps:
		return m.Rps()
	case taskresult.FieldAvgContentLength:
		return m.AvgContentLength()
	case taskresult.FieldCompletionTps:
		return m.CompletionTps()
	case taskresult.FieldTotalTps:
		return m.TotalTps()
	case taskresult.FieldAvgTotalTokensPerReq:
		return m.AvgTotalTokensPerReq()
	case taskresult.FieldAvgCompletionTokensPerReq:
		return m.AvgCompletionTokensPerReq()
	case taskresult.FieldCreatedAt:
		return m.CreatedAt()
	case taskresult.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskresult.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskresult.FieldMetricType:
		return m.OldMetricType(ctx)
	case taskresult.FieldNumRequests:
		return m.OldNumRequests(ctx)
	case taskresult.FieldNumFailures:
		return m.OldNumFailures(ctx)
	case taskresult.FieldAvgLatency:
		return m.OldAvgLatency(ctx)
	case taskresult.FieldMinLatency:
		return m.OldMinLatency(ctx)
	case taskresult.FieldMaxLatency:
		return m.OldMaxLatency(ctx)
	case taskresult.FieldMedianLatency:
		return m.OldMedianLatency(ctx)
	case taskresult.FieldP90Latency:
		return m.OldP90Latency(ctx)
	case taskresult.FieldRps:
		return m.OldRps(ctx)
	case taskresult.FieldAvgContentLength:
		return m.OldAvgContentLength(ctx)
	case taskresult.FieldCompletionTps:
		return m.OldCompletionTps(ctx)
	case taskresult.FieldTotalTps:
		return m.OldTotalTps(ctx)
	case taskresult.FieldAvgTotalTokensPerReq:
		return m.OldAvgTotalTokensPerReq(ctx)
	case taskresult.FieldAvgCompletionTokensPerReq:
		return m.OldAvgCompletionTokensPerReq(ctx)
	case taskresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case taskresult.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TaskResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskresult.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskresult.FieldMetricType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetricType(v)
		return nil
	case taskresult.FieldNumRequests:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumRequests(v)
		return nil
	case taskresult.FieldNumFailures:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumFailures(v)
		return nil
	case taskresult.FieldAvgLatency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgLatency(v)
		return nil
	case taskresult.FieldMinLatency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinLatency(v)
		return nil
	case taskresult.FieldMaxLatency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxLatency(v)
		return nil
	case taskresult.FieldMedianLatency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedianLatency(v)
		return nil
	case taskresult.FieldP90Latency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetP90Latency(v)
		return nil
	case taskresult.FieldRps:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRps(v)
		return nil
	case taskresult.FieldAvgContentLength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgContentLength(v)
		return nil
	case taskresult.FieldCompletionTps:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTps(v)
		return nil
	case taskresult.FieldTotalTps:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTps(v)
		return nil
	case taskresult.FieldAvgTotalTokensPerReq:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgTotalTokensPerReq(v)
		return nil
	case taskresult.FieldAvgCompletionTokensPerReq:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgCompletionTokensPerReq(v)
		return nil
	case taskresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case taskresult.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TaskResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskResultMutation) AddedFields() []string {
	var fields []string
	if m.addnum_requests != nil {
		fields = append(fields, taskresult.FieldNumRequests)
	}
	if m.addnum_failures != nil {
		fields = append(fields, taskresult.FieldNumFailures)
	}
	if m.addavg_latency != nil {
		fields = append(fields, taskresult.FieldAvgLatency)
	}
	if m.addmin_latency != nil {
		fields = append(fields, taskresult.FieldMinLatency)
	}
	if m.addmax_latency != nil {
		fields = append(fields, taskresult.FieldMaxLatency)
	}
	if m.addmedian_latency != nil {
		fields = append(fields, taskresult.FieldMedianLatency)
	}
	if m.addp90_latency != nil {
		fields = append(fields, taskresult.FieldP90Latency)
	}
	if m.addrps != nil {
		fields = append(fields, taskresult.FieldRps)
	}
	if m.addavg_content_length != nil {
		fields = append(fields, taskresult.FieldAvgContentLength)
	}
	if m.addcompletion_tps != nil {
		fields = append(fields, taskresult.FieldCompletionTps)
	}
	if m.addtotal_tps != nil {
		fields = append(fields, taskresult.FieldTotalTps)
	}
	if m.addavg_total_tokens_per_req != nil {
		fields = append(fields, taskresult.FieldAvgTotalTokensPerReq)
	}
	if m.addavg_completion_tokens_per_req != nil {
		fields = append(fields, taskresult.FieldAvgCompletionTokensPerReq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskresult.FieldNumRequests:
		return m.AddedNumRequests()
	case taskresult.FieldNumFailures:
		return m.AddedNumFailures()
	case taskresult.FieldAvgLatency:
		return m.AddedAvgLatency()
	case taskresult.FieldMinLatency:
		return m.AddedMinLatency()
	case taskresult.FieldMaxLatency:
		return m.AddedMaxLatency()
	case taskresult.FieldMedianLatency:
		return m.AddedMedianLatency()
	case taskresult.FieldP90Latency:
		return m.AddedP90Latency()
	case taskresult.FieldRps:
		return m.AddedRps()
	case taskresult.FieldAvgContentLength:
		return m.AddedAvgContentLength()
	case taskresult.FieldCompletionTps:
		return m.AddedCompletionTps()
	case taskresult.FieldTotalTps:
		return m.AddedTotalTps()
	case taskresult.FieldAvgTotalTokensPerReq:
		return m.AddedAvgTotalTokensPerReq()
	case taskresult.FieldAvgCompletionTokensPerReq:
		return m.AddedAvgCompletionTokensPerReq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskresult.FieldNumRequests:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumRequests(v)
		return nil
	case taskresult.FieldNumFailures:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumFailures(v)
		return nil
	case taskresult.FieldAvgLatency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgLatency(v)
		return nil
	case taskresult.FieldMinLatency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinLatency(v)
		return nil
	case taskresult.FieldMaxLatency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxLatency(v)
		return nil
	case taskresult.FieldMedianLatency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMedianLatency(v)
		return nil
	case taskresult.FieldP90Latency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddP90Latency(v)
		return nil
	case taskresult.FieldRps:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRps(v)
		return nil
	case taskresult.FieldAvgContentLength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgContentLength(v)
		return nil
	case taskresult.FieldCompletionTps:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTps(v)
		return nil
	case taskresult.FieldTotalTps:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTps(v)
		return nil
	case taskresult.FieldAvgTotalTokensPerReq:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgTotalTokensPerReq(v)
		return nil
	case taskresult.FieldAvgCompletionTokensPerReq:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgCompletionTokensPerReq(v)
		return nil
	}
	return fmt.Errorf("unknown TaskResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskResultMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskResultMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TaskResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskResultMutation) ResetField(name string) error {
	switch name {
	case taskresult.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskresult.FieldMetricType:
		m.ResetMetricType()
		return nil
	case taskresult.FieldNumRequests:
		m.ResetNumRequests()
		return nil
	case taskresult.FieldNumFailures:
		m.ResetNumFailures()
		return nil
	case taskresult.FieldAvgLatency:
		m.ResetAvgLatency()
		return nil
	case taskresult.FieldMinLatency:
		m.ResetMinLatency()
		return nil
	case taskresult.FieldMaxLatency:
		m.ResetMaxLatency()
		return nil
	case taskresult.FieldMedianLatency:
		m.ResetMedianLatency()
		return nil
	case taskresult.FieldP90Latency:
		m.ResetP90Latency()
		return nil
	case taskresult.FieldRps:
		m.ResetRps()
		return nil
	case taskresult.FieldAvgContentLength:
		m.ResetAvgContentLength()
		return nil
	case taskresult.FieldCompletionTps:
		m.ResetCompletionTps()
		return nil
	case taskresult.FieldTotalTps:
		m.ResetTotalTps()
		return nil
	case taskresult.FieldAvgTotalTokensPerReq:
		m.ResetAvgTotalTokensPerReq()
		return nil
	case taskresult.FieldAvgCompletionTokensPerReq:
		m.ResetAvgCompletionTokensPerReq()
		return nil
	case taskresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case taskresult.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TaskResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, taskresult.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case taskresult.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, taskresult.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskResultMutation) EdgeCleared(name string) bool {
	switch name {
	case taskresult.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskResultMutation) ClearEdge(name string) error {
	switch name {
	case taskresult.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TaskResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskResultMutation) ResetEdge(name string) error {
	switch name {
	case taskresult.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TaskResult edge %s", name)
}
