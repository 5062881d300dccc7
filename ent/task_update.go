// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/perfflow/perfflow/ent/predicate"
	"github.com/perfflow/perfflow/ent/task"
	"github.com/perfflow/perfflow/ent/taskresult"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TaskUpdate) SetName(v string) *TaskUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableName(v *string) *TaskUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTargetHost sets the "target_host" field.
func (_u *TaskUpdate) SetTargetHost(v string) *TaskUpdate {
	_u.mutation.SetTargetHost(v)
	return _u
}

// SetNillableTargetHost sets the "target_host" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTargetHost(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTargetHost(*v)
	}
	return _u
}

// SetAPIPath sets the "api_path" field.
func (_u *TaskUpdate) SetAPIPath(v string) *TaskUpdate {
	_u.mutation.SetAPIPath(v)
	return _u
}

// SetNillableAPIPath sets the "api_path" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAPIPath(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAPIPath(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *TaskUpdate) SetModel(v string) *TaskUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableModel(v *string) *TaskUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *TaskUpdate) ClearModel() *TaskUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetStreamMode sets the "stream_mode" field.
func (_u *TaskUpdate) SetStreamMode(v string) *TaskUpdate {
	_u.mutation.SetStreamMode(v)
	return _u
}

// SetNillableStreamMode sets the "stream_mode" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStreamMode(v *string) *TaskUpdate {
	if v != nil {
		_u.SetStreamMode(*v)
	}
	return _u
}

// SetConcurrentUsers sets the "concurrent_users" field.
func (_u *TaskUpdate) SetConcurrentUsers(v int) *TaskUpdate {
	_u.mutation.ResetConcurrentUsers()
	_u.mutation.SetConcurrentUsers(v)
	return _u
}

// SetNillableConcurrentUsers sets the "concurrent_users" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableConcurrentUsers(v *int) *TaskUpdate {
	if v != nil {
		_u.SetConcurrentUsers(*v)
	}
	return _u
}

// AddConcurrentUsers adds value to the "concurrent_users" field.
func (_u *TaskUpdate) AddConcurrentUsers(v int) *TaskUpdate {
	_u.mutation.AddConcurrentUsers(v)
	return _u
}

// SetSpawnRate sets the "spawn_rate" field.
func (_u *TaskUpdate) SetSpawnRate(v int) *TaskUpdate {
	_u.mutation.ResetSpawnRate()
	_u.mutation.SetSpawnRate(v)
	return _u
}

// SetNillableSpawnRate sets the "spawn_rate" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableSpawnRate(v *int) *TaskUpdate {
	if v != nil {
		_u.SetSpawnRate(*v)
	}
	return _u
}

// AddSpawnRate adds value to the "spawn_rate" field.
func (_u *TaskUpdate) AddSpawnRate(v int) *TaskUpdate {
	_u.mutation.AddSpawnRate(v)
	return _u
}

// SetDuration sets the "duration" field.
func (_u *TaskUpdate) SetDuration(v int) *TaskUpdate {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDuration(v *int) *TaskUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *TaskUpdate) AddDuration(v int) *TaskUpdate {
	_u.mutation.AddDuration(v)
	return _u
}

// SetChatType sets the "chat_type" field.
func (_u *TaskUpdate) SetChatType(v int) *TaskUpdate {
	_u.mutation.ResetChatType()
	_u.mutation.SetChatType(v)
	return _u
}

// SetNillableChatType sets the "chat_type" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableChatType(v *int) *TaskUpdate {
	if v != nil {
		_u.SetChatType(*v)
	}
	return _u
}

// AddChatType adds value to the "chat_type" field.
func (_u *TaskUpdate) AddChatType(v int) *TaskUpdate {
	_u.mutation.AddChatType(v)
	return _u
}

// SetHeaders sets the "headers" field.
func (_u *TaskUpdate) SetHeaders(v string) *TaskUpdate {
	_u.mutation.SetHeaders(v)
	return _u
}

// SetNillableHeaders sets the "headers" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableHeaders(v *string) *TaskUpdate {
	if v != nil {
		_u.SetHeaders(*v)
	}
	return _u
}

// ClearHeaders clears the value of the "headers" field.
func (_u *TaskUpdate) ClearHeaders() *TaskUpdate {
	_u.mutation.ClearHeaders()
	return _u
}

// SetCookies sets the "cookies" field.
func (_u *TaskUpdate) SetCookies(v string) *TaskUpdate {
	_u.mutation.SetCookies(v)
	return _u
}

// SetNillableCookies sets the "cookies" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCookies(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCookies(*v)
	}
	return _u
}

// ClearCookies clears the value of the "cookies" field.
func (_u *TaskUpdate) ClearCookies() *TaskUpdate {
	_u.mutation.ClearCookies()
	return _u
}

// SetCertFile sets the "cert_file" field.
func (_u *TaskUpdate) SetCertFile(v string) *TaskUpdate {
	_u.mutation.SetCertFile(v)
	return _u
}

// SetNillableCertFile sets the "cert_file" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCertFile(v *string) *TaskUpdate {
	if v != nil {
		_u.SetCertFile(*v)
	}
	return _u
}

// ClearCertFile clears the value of the "cert_file" field.
func (_u *TaskUpdate) ClearCertFile() *TaskUpdate {
	_u.mutation.ClearCertFile()
	return _u
}

// SetKeyFile sets the "key_file" field.
func (_u *TaskUpdate) SetKeyFile(v string) *TaskUpdate {
	_u.mutation.SetKeyFile(v)
	return _u
}

// SetNillableKeyFile sets the "key_file" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableKeyFile(v *string) *TaskUpdate {
	if v != nil {
		_u.SetKeyFile(*v)
	}
	return _u
}

// ClearKeyFile clears the value of the "key_file" field.
func (_u *TaskUpdate) ClearKeyFile() *TaskUpdate {
	_u.mutation.ClearKeyFile()
	return _u
}

// SetRequestPayload sets the "request_payload" field.
func (_u *TaskUpdate) SetRequestPayload(v string) *TaskUpdate {
	_u.mutation.SetRequestPayload(v)
	return _u
}

// SetNillableRequestPayload sets the "request_payload" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRequestPayload(v *string) *TaskUpdate {
	if v != nil {
		_u.SetRequestPayload(*v)
	}
	return _u
}

// ClearRequestPayload clears the value of the "request_payload" field.
func (_u *TaskUpdate) ClearRequestPayload() *TaskUpdate {
	_u.mutation.ClearRequestPayload()
	return _u
}

// SetFieldMapping sets the "field_mapping" field.
func (_u *TaskUpdate) SetFieldMapping(v string) *TaskUpdate {
	_u.mutation.SetFieldMapping(v)
	return _u
}

// SetNillableFieldMapping sets the "field_mapping" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableFieldMapping(v *string) *TaskUpdate {
	if v != nil {
		_u.SetFieldMapping(*v)
	}
	return _u
}

// ClearFieldMapping clears the value of the "field_mapping" field.
func (_u *TaskUpdate) ClearFieldMapping() *TaskUpdate {
	_u.mutation.ClearFieldMapping()
	return _u
}

// SetTestData sets the "test_data" field.
func (_u *TaskUpdate) SetTestData(v string) *TaskUpdate {
	_u.mutation.SetTestData(v)
	return _u
}

// SetNillableTestData sets the "test_data" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTestData(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTestData(*v)
	}
	return _u
}

// ClearTestData clears the value of the "test_data" field.
func (_u *TaskUpdate) ClearTestData() *TaskUpdate {
	_u.mutation.ClearTestData()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdate) SetErrorMessage(v string) *TaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableErrorMessage(v *string) *TaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdate) ClearErrorMessage() *TaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddResultIDs adds the "results" edge to the TaskResult entity by IDs.
func (_u *TaskUpdate) AddResultIDs(ids ...int) *TaskUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the TaskResult entity.
func (_u *TaskUpdate) AddResults(v ...*TaskResult) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearResults clears all "results" edges to the TaskResult entity.
func (_u *TaskUpdate) ClearResults() *TaskUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to TaskResult entities by IDs.
func (_u *TaskUpdate) RemoveResultIDs(ids ...int) *TaskUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to TaskResult entities.
func (_u *TaskUpdate) RemoveResults(v ...*TaskResult) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConcurrentUsers(); ok {
		if err := task.ConcurrentUsersValidator(v); err != nil {
			return &ValidationError{Name: "concurrent_users", err: fmt.Errorf(`ent: validator failed for field "Task.concurrent_users": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SpawnRate(); ok {
		if err := task.SpawnRateValidator(v); err != nil {
			return &ValidationError{Name: "spawn_rate", err: fmt.Errorf(`ent: validator failed for field "Task.spawn_rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := task.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "Task.duration": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(task.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetHost(); ok {
		_spec.SetField(task.FieldTargetHost, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIPath(); ok {
		_spec.SetField(task.FieldAPIPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(task.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(task.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.StreamMode(); ok {
		_spec.SetField(task.FieldStreamMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConcurrentUsers(); ok {
		_spec.SetField(task.FieldConcurrentUsers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConcurrentUsers(); ok {
		_spec.AddField(task.FieldConcurrentUsers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpawnRate(); ok {
		_spec.SetField(task.FieldSpawnRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpawnRate(); ok {
		_spec.AddField(task.FieldSpawnRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(task.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(task.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChatType(); ok {
		_spec.SetField(task.FieldChatType, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChatType(); ok {
		_spec.AddField(task.FieldChatType, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(task.FieldHeaders, field.TypeString, value)
	}
	if _u.mutation.HeadersCleared() {
		_spec.ClearField(task.FieldHeaders, field.TypeString)
	}
	if value, ok := _u.mutation.Cookies(); ok {
		_spec.SetField(task.FieldCookies, field.TypeString, value)
	}
	if _u.mutation.CookiesCleared() {
		_spec.ClearField(task.FieldCookies, field.TypeString)
	}
	if value, ok := _u.mutation.CertFile(); ok {
		_spec.SetField(task.FieldCertFile, field.TypeString, value)
	}
	if _u.mutation.CertFileCleared() {
		_spec.ClearField(task.FieldCertFile, field.TypeString)
	}
	if value, ok := _u.mutation.KeyFile(); ok {
		_spec.SetField(task.FieldKeyFile, field.TypeString, value)
	}
	if _u.mutation.KeyFileCleared() {
		_spec.ClearField(task.FieldKeyFile, field.TypeString)
	}
	if value, ok := _u.mutation.RequestPayload(); ok {
		_spec.SetField(task.FieldRequestPayload, field.TypeString, value)
	}
	if _u.mutation.RequestPayloadCleared() {
		_spec.ClearField(task.FieldRequestPayload, field.TypeString)
	}
	if value, ok := _u.mutation.FieldMapping(); ok {
		_spec.SetField(task.FieldFieldMapping, field.TypeString, value)
	}
	if _u.mutation.FieldMappingCleared() {
		_spec.ClearField(task.FieldFieldMapping, field.TypeString)
	}
	if value, ok := _u.mutation.TestData(); ok {
		_spec.SetField(task.FieldTestData, field.TypeString, value)
	}
	if _u.mutation.TestDataCleared() {
		_spec.ClearField(task.FieldTestData, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ResultsTable,
			Columns: []string{task.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskresult.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ResultsTable,
			Columns: []string{task.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskresult.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ResultsTable,
			Columns: []string{task.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskresult.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetName sets the "name" field.
func (_u *TaskUpdateOne) SetName(v string) *TaskUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableName(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTargetHost sets the "target_host" field.
func (_u *TaskUpdateOne) SetTargetHost(v string) *TaskUpdateOne {
	_u.mutation.SetTargetHost(v)
	return _u
}

// SetNillableTargetHost sets the "target_host" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTargetHost(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTargetHost(*v)
	}
	return _u
}

// SetAPIPath sets the "api_path" field.
func (_u *TaskUpdateOne) SetAPIPath(v string) *TaskUpdateOne {
	_u.mutation.SetAPIPath(v)
	return _u
}

// SetNillableAPIPath sets the "api_path" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAPIPath(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAPIPath(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *TaskUpdateOne) SetModel(v string) *TaskUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableModel(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *TaskUpdateOne) ClearModel() *TaskUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetStreamMode sets the "stream_mode" field.
func (_u *TaskUpdateOne) SetStreamMode(v string) *TaskUpdateOne {
	_u.mutation.SetStreamMode(v)
	return _u
}

// SetNillableStreamMode sets the "stream_mode" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStreamMode(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetStreamMode(*v)
	}
	return _u
}

// SetConcurrentUsers sets the "concurrent_users" field.
func (_u *TaskUpdateOne) SetConcurrentUsers(v int) *TaskUpdateOne {
	_u.mutation.ResetConcurrentUsers()
	_u.mutation.SetConcurrentUsers(v)
	return _u
}

// SetNillableConcurrentUsers sets the "concurrent_users" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableConcurrentUsers(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetConcurrentUsers(*v)
	}
	return _u
}

// AddConcurrentUsers adds value to the "concurrent_users" field.
func (_u *TaskUpdateOne) AddConcurrentUsers(v int) *TaskUpdateOne {
	_u.mutation.AddConcurrentUsers(v)
	return _u
}

// SetSpawnRate sets the "spawn_rate" field.
func (_u *TaskUpdateOne) SetSpawnRate(v int) *TaskUpdateOne {
	_u.mutation.ResetSpawnRate()
	_u.mutation.SetSpawnRate(v)
	return _u
}

// SetNillableSpawnRate sets the "spawn_rate" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableSpawnRate(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetSpawnRate(*v)
	}
	return _u
}

// AddSpawnRate adds value to the "spawn_rate" field.
func (_u *TaskUpdateOne) AddSpawnRate(v int) *TaskUpdateOne {
	_u.mutation.AddSpawnRate(v)
	return _u
}

// SetDuration sets the "duration" field.
func (_u *TaskUpdateOne) SetDuration(v int) *TaskUpdateOne {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDuration(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *TaskUpdateOne) AddDuration(v int) *TaskUpdateOne {
	_u.mutation.AddDuration(v)
	return _u
}

// SetChatType sets the "chat_type" field.
func (_u *TaskUpdateOne) SetChatType(v int) *TaskUpdateOne {
	_u.mutation.ResetChatType()
	_u.mutation.SetChatType(v)
	return _u
}

// SetNillableChatType sets the "chat_type" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableChatType(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetChatType(*v)
	}
	return _u
}

// AddChatType adds value to the "chat_type" field.
func (_u *TaskUpdateOne) AddChatType(v int) *TaskUpdateOne {
	_u.mutation.AddChatType(v)
	return _u
}

// SetHeaders sets the "headers" field.
func (_u *TaskUpdateOne) SetHeaders(v string) *TaskUpdateOne {
	_u.mutation.SetHeaders(v)
	return _u
}

// SetNillableHeaders sets the "headers" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableHeaders(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetHeaders(*v)
	}
	return _u
}

// ClearHeaders clears the value of the "headers" field.
func (_u *TaskUpdateOne) ClearHeaders() *TaskUpdateOne {
	_u.mutation.ClearHeaders()
	return _u
}

// SetCookies sets the "cookies" field.
func (_u *TaskUpdateOne) SetCookies(v string) *TaskUpdateOne {
	_u.mutation.SetCookies(v)
	return _u
}

// SetNillableCookies sets the "cookies" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCookies(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCookies(*v)
	}
	return _u
}

// ClearCookies clears the value of the "cookies" field.
func (_u *TaskUpdateOne) ClearCookies() *TaskUpdateOne {
	_u.mutation.ClearCookies()
	return _u
}

// SetCertFile sets the "cert_file" field.
func (_u *TaskUpdateOne) SetCertFile(v string) *TaskUpdateOne {
	_u.mutation.SetCertFile(v)
	return _u
}

// SetNillableCertFile sets the "cert_file" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCertFile(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetCertFile(*v)
	}
	return _u
}

// ClearCertFile clears the value of the "cert_file" field.
func (_u *TaskUpdateOne) ClearCertFile() *TaskUpdateOne {
	_u.mutation.ClearCertFile()
	return _u
}

// SetKeyFile sets the "key_file" field.
func (_u *TaskUpdateOne) SetKeyFile(v string) *TaskUpdateOne {
	_u.mutation.SetKeyFile(v)
	return _u
}

// SetNillableKeyFile sets the "key_file" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableKeyFile(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetKeyFile(*v)
	}
	return _u
}

// ClearKeyFile clears the value of the "key_file" field.
func (_u *TaskUpdateOne) ClearKeyFile() *TaskUpdateOne {
	_u.mutation.ClearKeyFile()
	return _u
}

// SetRequestPayload sets the "request_payload" field.
func (_u *TaskUpdateOne) SetRequestPayload(v string) *TaskUpdateOne {
	_u.mutation.SetRequestPayload(v)
	return _u
}

// SetNillableRequestPayload sets the "request_payload" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRequestPayload(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetRequestPayload(*v)
	}
	return _u
}

// ClearRequestPayload clears the value of the "request_payload" field.
func (_u *TaskUpdateOne) ClearRequestPayload() *TaskUpdateOne {
	_u.mutation.ClearRequestPayload()
	return _u
}

// SetFieldMapping sets the "field_mapping" field.
func (_u *TaskUpdateOne) SetFieldMapping(v string) *TaskUpdateOne {
	_u.mutation.SetFieldMapping(v)
	return _u
}

// SetNillableFieldMapping sets the "field_mapping" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableFieldMapping(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetFieldMapping(*v)
	}
	return _u
}

// ClearFieldMapping clears the value of the "field_mapping" field.
func (_u *TaskUpdateOne) ClearFieldMapping() *TaskUpdateOne {
	_u.mutation.ClearFieldMapping()
	return _u
}

// SetTestData sets the "test_data" field.
func (_u *TaskUpdateOne) SetTestData(v string) *TaskUpdateOne {
	_u.mutation.SetTestData(v)
	return _u
}

// SetNillableTestData sets the "test_data" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTestData(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTestData(*v)
	}
	return _u
}

// ClearTestData clears the value of the "test_data" field.
func (_u *TaskUpdateOne) ClearTestData() *TaskUpdateOne {
	_u.mutation.ClearTestData()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdateOne) SetErrorMessage(v string) *TaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableErrorMessage(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdateOne) ClearErrorMessage() *TaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddResultIDs adds the "results" edge to the TaskResult entity by IDs.
func (_u *TaskUpdateOne) AddResultIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the TaskResult entity.
func (_u *TaskUpdateOne) AddResults(v ...*TaskResult) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearResults clears all "results" edges to the TaskResult entity.
func (_u *TaskUpdateOne) ClearResults() *TaskUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to TaskResult entities by IDs.
func (_u *TaskUpdateOne) RemoveResultIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to TaskResult entities.
func (_u *TaskUpdateOne) RemoveResults(v ...*TaskResult) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConcurrentUsers(); ok {
		if err := task.ConcurrentUsersValidator(v); err != nil {
			return &ValidationError{Name: "concurrent_users", err: fmt.Errorf(`ent: validator failed for field "Task.concurrent_users": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SpawnRate(); ok {
		if err := task.SpawnRateValidator(v); err != nil {
			return &ValidationError{Name: "spawn_rate", err: fmt.Errorf(`ent: validator failed for field "Task.spawn_rate": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := task.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "Task.duration": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(task.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetHost(); ok {
		_spec.SetField(task.FieldTargetHost, field.TypeString, value)
	}
	if value, ok := _u.mutation.APIPath(); ok {
		_spec.SetField(task.FieldAPIPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(task.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(task.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.StreamMode(); ok {
		_spec.SetField(task.FieldStreamMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConcurrentUsers(); ok {
		_spec.SetField(task.FieldConcurrentUsers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConcurrentUsers(); ok {
		_spec.AddField(task.FieldConcurrentUsers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SpawnRate(); ok {
		_spec.SetField(task.FieldSpawnRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpawnRate(); ok {
		_spec.AddField(task.FieldSpawnRate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(task.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(task.FieldDuration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChatType(); ok {
		_spec.SetField(task.FieldChatType, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChatType(); ok {
		_spec.AddField(task.FieldChatType, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Headers(); ok {
		_spec.SetField(task.FieldHeaders, field.TypeString, value)
	}
	if _u.mutation.HeadersCleared() {
		_spec.ClearField(task.FieldHeaders, field.TypeString)
	}
	if value, ok := _u.mutation.Cookies(); ok {
		_spec.SetField(task.FieldCookies, field.TypeString, value)
	}
	if _u.mutation.CookiesCleared() {
		_spec.ClearField(task.FieldCookies, field.TypeString)
	}
	if value, ok := _u.mutation.CertFile(); ok {
		_spec.SetField(task.FieldCertFile, field.TypeString, value)
	}
	if _u.mutation.CertFileCleared() {
		_spec.ClearField(task.FieldCertFile, field.TypeString)
	}
	if value, ok := _u.mutation.KeyFile(); ok {
		_spec.SetField(task.FieldKeyFile, field.TypeString, value)
	}
	if _u.mutation.KeyFileCleared() {
		_spec.ClearField(task.FieldKeyFile, field.TypeString)
	}
	if value, ok := _u.mutation.RequestPayload(); ok {
		_spec.SetField(task.FieldRequestPayload, field.TypeString, value)
	}
	if _u.mutation.RequestPayloadCleared() {
		_spec.ClearField(task.FieldRequestPayload, field.TypeString)
	}
	if value, ok := _u.mutation.FieldMapping(); ok {
		_spec.SetField(task.FieldFieldMapping, field.TypeString, value)
	}
	if _u.mutation.FieldMappingCleared() {
		_spec.ClearField(task.FieldFieldMapping, field.TypeString)
	}
	if value, ok := _u.mutation.TestData(); ok {
		_spec.SetField(task.FieldTestData, field.TypeString, value)
	}
	if _u.mutation.TestDataCleared() {
		_spec.ClearField(task.FieldTestData, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ResultsTable,
			Columns: []string{task.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskresult.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ResultsTable,
			Columns: []string{task.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskresult.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ResultsTable,
			Columns: []string{task.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskresult.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
