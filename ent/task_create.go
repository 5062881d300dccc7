// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/perfflow/perfflow/ent/task"
	"github.com/perfflow/perfflow/ent/taskresult"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *TaskCreate) SetName(v string) *TaskCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTargetHost sets the "target_host" field.
func (_c *TaskCreate) SetTargetHost(v string) *TaskCreate {
	_c.mutation.SetTargetHost(v)
	return _c
}

// SetAPIPath sets the "api_path" field.
func (_c *TaskCreate) SetAPIPath(v string) *TaskCreate {
	_c.mutation.SetAPIPath(v)
	return _c
}

// SetNillableAPIPath sets the "api_path" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAPIPath(v *string) *TaskCreate {
	if v != nil {
		_c.SetAPIPath(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *TaskCreate) SetModel(v string) *TaskCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *TaskCreate) SetNillableModel(v *string) *TaskCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetStreamMode sets the "stream_mode" field.
func (_c *TaskCreate) SetStreamMode(v string) *TaskCreate {
	_c.mutation.SetStreamMode(v)
	return _c
}

// SetNillableStreamMode sets the "stream_mode" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStreamMode(v *string) *TaskCreate {
	if v != nil {
		_c.SetStreamMode(*v)
	}
	return _c
}

// SetConcurrentUsers sets the "concurrent_users" field.
func (_c *TaskCreate) SetConcurrentUsers(v int) *TaskCreate {
	_c.mutation.SetConcurrentUsers(v)
	return _c
}

// SetSpawnRate sets the "spawn_rate" field.
func (_c *TaskCreate) SetSpawnRate(v int) *TaskCreate {
	_c.mutation.SetSpawnRate(v)
	return _c
}

// SetDuration sets the "duration" field.
func (_c *TaskCreate) SetDuration(v int) *TaskCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetChatType sets the "chat_type" field.
func (_c *TaskCreate) SetChatType(v int) *TaskCreate {
	_c.mutation.SetChatType(v)
	return _c
}

// SetNillableChatType sets the "chat_type" field if the given value is not nil.
func (_c *TaskCreate) SetNillableChatType(v *int) *TaskCreate {
	if v != nil {
		_c.SetChatType(*v)
	}
	return _c
}

// SetHeaders sets the "headers" field.
func (_c *TaskCreate) SetHeaders(v string) *TaskCreate {
	_c.mutation.SetHeaders(v)
	return _c
}

// SetNillableHeaders sets the "headers" field if the given value is not nil.
func (_c *TaskCreate) SetNillableHeaders(v *string) *TaskCreate {
	if v != nil {
		_c.SetHeaders(*v)
	}
	return _c
}

// SetCookies sets the "cookies" field.
func (_c *TaskCreate) SetCookies(v string) *TaskCreate {
	_c.mutation.SetCookies(v)
	return _c
}

// SetNillableCookies sets the "cookies" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCookies(v *string) *TaskCreate {
	if v != nil {
		_c.SetCookies(*v)
	}
	return _c
}

// SetCertFile sets the "cert_file" field.
func (_c *TaskCreate) SetCertFile(v string) *TaskCreate {
	_c.mutation.SetCertFile(v)
	return _c
}

// SetNillableCertFile sets the "cert_file" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCertFile(v *string) *TaskCreate {
	if v != nil {
		_c.SetCertFile(*v)
	}
	return _c
}

// SetKeyFile sets the "key_file" field.
func (_c *TaskCreate) SetKeyFile(v string) *TaskCreate {
	_c.mutation.SetKeyFile(v)
	return _c
}

// SetNillableKeyFile sets the "key_file" field if the given value is not nil.
func (_c *TaskCreate) SetNillableKeyFile(v *string) *TaskCreate {
	if v != nil {
		_c.SetKeyFile(*v)
	}
	return _c
}

// SetRequestPayload sets the "request_payload" field.
func (_c *TaskCreate) SetRequestPayload(v string) *TaskCreate {
	_c.mutation.SetRequestPayload(v)
	return _c
}

// SetNillableRequestPayload sets the "request_payload" field if the given value is not nil.
func (_c *TaskCreate) SetNillableRequestPayload(v *string) *TaskCreate {
	if v != nil {
		_c.SetRequestPayload(*v)
	}
	return _c
}

// SetFieldMapping sets the "field_mapping" field.
func (_c *TaskCreate) SetFieldMapping(v string) *TaskCreate {
	_c.mutation.SetFieldMapping(v)
	return _c
}

// SetNillableFieldMapping sets the "field_mapping" field if the given value is not nil.
func (_c *TaskCreate) SetNillableFieldMapping(v *string) *TaskCreate {
	if v != nil {
		_c.SetFieldMapping(*v)
	}
	return _c
}

// SetTestData sets the "test_data" field.
func (_c *TaskCreate) SetTestData(v string) *TaskCreate {
	_c.mutation.SetTestData(v)
	return _c
}

// SetNillableTestData sets the "test_data" field if the given value is not nil.
func (_c *TaskCreate) SetNillableTestData(v *string) *TaskCreate {
	if v != nil {
		_c.SetTestData(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TaskCreate) SetErrorMessage(v string) *TaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TaskCreate) SetNillableErrorMessage(v *string) *TaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUpdatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddResultIDs adds the "results" edge to the TaskResult entity by IDs.
func (_c *TaskCreate) AddResultIDs(ids ...int) *TaskCreate {
	_c.mutation.AddResultIDs(ids...)
	return _c
}

// AddResults adds the "results" edges to the TaskResult entity.
func (_c *TaskCreate) AddResults(v ...*TaskResult) *TaskCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResultIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.APIPath(); !ok {
		v := task.DefaultAPIPath
		_c.mutation.SetAPIPath(v)
	}
	if _, ok := _c.mutation.StreamMode(); !ok {
		v := task.DefaultStreamMode
		_c.mutation.SetStreamMode(v)
	}
	if _, ok := _c.mutation.ChatType(); !ok {
		v := task.DefaultChatType
		_c.mutation.SetChatType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Task.name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetHost(); !ok {
		return &ValidationError{Name: "target_host", err: errors.New(`ent: missing required field "Task.target_host"`)}
	}
	if _, ok := _c.mutation.APIPath(); !ok {
		return &ValidationError{Name: "api_path", err: errors.New(`ent: missing required field "Task.api_path"`)}
	}
	if _, ok := _c.mutation.StreamMode(); !ok {
		return &ValidationError{Name: "stream_mode", err: errors.New(`ent: missing required field "Task.stream_mode"`)}
	}
	if _, ok := _c.mutation.ConcurrentUsers(); !ok {
		return &ValidationError{Name: "concurrent_users", err: errors.New(`ent: missing required field "Task.concurrent_users"`)}
	}
	if v, ok := _c.mutation.ConcurrentUsers(); ok {
		if err := task.ConcurrentUsersValidator(v); err != nil {
			return &ValidationError{Name: "concurrent_users", err: fmt.Errorf(`ent: validator failed for field "Task.concurrent_users": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SpawnRate(); !ok {
		return &ValidationError{Name: "spawn_rate", err: errors.New(`ent: missing required field "Task.spawn_rate"`)}
	}
	if v, ok := _c.mutation.SpawnRate(); ok {
		if err := task.SpawnRateValidator(v); err != nil {
			return &ValidationError{Name: "spawn_rate", err: fmt.Errorf(`ent: validator failed for field "Task.spawn_rate": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Duration(); !ok {
		return &ValidationError{Name: "duration", err: errors.New(`ent: missing required field "Task.duration"`)}
	}
	if v, ok := _c.mutation.Duration(); ok {
		if err := task.DurationValidator(v); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`ent: validator failed for field "Task.duration": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChatType(); !ok {
		return &ValidationError{Name: "chat_type", err: errors.New(`ent: missing required field "Task.chat_type"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(task.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TargetHost(); ok {
		_spec.SetField(task.FieldTargetHost, field.TypeString, value)
		_node.TargetHost = value
	}
	if value, ok := _c.mutation.APIPath(); ok {
		_spec.SetField(task.FieldAPIPath, field.TypeString, value)
		_node.APIPath = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(task.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.StreamMode(); ok {
		_spec.SetField(task.FieldStreamMode, field.TypeString, value)
		_node.StreamMode = value
	}
	if value, ok := _c.mutation.ConcurrentUsers(); ok {
		_spec.SetField(task.FieldConcurrentUsers, field.TypeInt, value)
		_node.ConcurrentUsers = value
	}
	if value, ok := _c.mutation.SpawnRate(); ok {
		_spec.SetField(task.FieldSpawnRate, field.TypeInt, value)
		_node.SpawnRate = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(task.FieldDuration, field.TypeInt, value)
		_node.Duration = value
	}
	if value, ok := _c.mutation.ChatType(); ok {
		_spec.SetField(task.FieldChatType, field.TypeInt, value)
		_node.ChatType = value
	}
	if value, ok := _c.mutation.Headers(); ok {
		_spec.SetField(task.FieldHeaders, field.TypeString, value)
		_node.Headers = value
	}
	if value, ok := _c.mutation.Cookies(); ok {
		_spec.SetField(task.FieldCookies, field.TypeString, value)
		_node.Cookies = value
	}
	if value, ok := _c.mutation.CertFile(); ok {
		_spec.SetField(task.FieldCertFile, field.TypeString, value)
		_node.CertFile = value
	}
	if value, ok := _c.mutation.KeyFile(); ok {
		_spec.SetField(task.FieldKeyFile, field.TypeString, value)
		_node.KeyFile = value
	}
	if value, ok := _c.mutation.RequestPayload(); ok {
		_spec.SetField(task.FieldRequestPayload, field.TypeString, value)
		_node.RequestPayload = value
	}
	if value, ok := _c.mutation.FieldMapping(); ok {
		_spec.SetField(task.FieldFieldMapping, field.TypeString, value)
		_node.FieldMapping = value
	}
	if value, ok := _c.mutation.TestData(); ok {
		_spec.SetField(task.FieldTestData, field.TypeString, value)
		_node.TestData = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
