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

// TaskResultCreate is the builder for creating a TaskResult entity.
type TaskResultCreate struct {
	config
	mutation *TaskResultMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *TaskResultCreate) SetTaskID(v string) *TaskResultCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetMetricType sets the "metric_type" field.
func (_c *TaskResultCreate) SetMetricType(v string) *TaskResultCreate {
	_c.mutation.SetMetricType(v)
	return _c
}

// SetNumRequests sets the "num_requests" field.
func (_c *TaskResultCreate) SetNumRequests(v int64) *TaskResultCreate {
	_c.mutation.SetNumRequests(v)
	return _c
}

// SetNillableNumRequests sets the "num_requests" field if the given value is not nil.
func (_c *TaskResultCreate) SetNillableNumRequests(v *int64) *TaskResultCreate {
	if v != nil {
		_c.SetNumRequests(*v)
	}
	return _c
}

// SetNumFailures sets the "num_failures" field.
func (_c *TaskResultCreate) SetNumFailures(v int64) *TaskResultCreate {
	_c.mutation.SetNumFailures(v)
	return _c
}

// SetNillableNumFailures sets the "num_failures" field if the given value is not nil.
func (_c *TaskResultCreate) SetNillableNumFailures(v *int64) *TaskResultCreate {
	if v != nil {
		_c.SetNumFailures(*v)
	}
	return _c
}

// SetAvgLatency sets the "avg_latency" field.
func (_c *TaskResultCreate) SetAvgLatency(v float64) *TaskResultCreate {
	_c.mutation.SetAvgLatency(v)
	return _c
}

// SetNillableAvgLatency sets the "avg_latency" field if the given value is not nil.
func (_c *TaskResultCreate) SetNillableAvgLatency(v *float64) *TaskResultCreate {
	if v != nil {
		_c.SetAvgLatency(*v)
	}
	return _c
}

// SetMinLatency sets the "min_latency" field.
func (_c *TaskResultCreate) SetMinLatency(v float64) *TaskResultCreate {
	_c.mutation.SetMinLatency(v)
	return _c
}

// SetNillableMinLatency sets the "min_latency" field if the given value is not nil.
func (_c *TaskResultCreate) SetNillableMinLatency(v *float64) *TaskResultCreate {
	if v != nil {
		_c.SetMinLatency(*v)
	}
	return _c
}

// SetMaxLatency sets the "max_latency" field.
func (_c *TaskResultCreate) SetMaxLatency(v float64) *TaskResultCreate {
	_c.mutation.SetMaxLatency(v)
	return _c
}

// SetNillableMaxLatency sets the "max_latency" field if the given value is not nil.
func (_c *TaskResultCreate) SetNillableMaxLatency(v *float64) *TaskResultCreate {
	if v != nil {
		_c.SetMaxLatency(*v)
	}
	return _c
}

// SetMedianLatency sets the "median_latency" field.
func (_c *TaskResultCreate) SetMedianLatency(v float64) *TaskResultCreate {
	_c.mutation.SetMedianLatency(v)
	return _c
}

// SetNillableMedianLatency sets the "median_latency" field if the given value is not nil.
func (_c *TaskResultCreate) SetNillableMedianLatency(v *float64) *TaskResultCreate {
	if v != nil {
		_c.SetMedianLatency(*v)
	}
	return _c
}

// SetP90Latency sets the "p90_latency" field.
func (_c *TaskResultCreate) SetP90Latency(v float64) *TaskResultCreate {
	_c.mutation.SetP90Latency(v)
	return _c
}

// SetNillableP90Latency sets the "p90_latency" field if the given value is not nil.
func (_c *TaskResultCreate) SetNillableP90Latency(v *float64) *TaskResultCreate {
	if v != nil {
		_c.SetP90Latency(*v)
	}
	return _c
}

// SetRps sets the "rps" field.
func (_c *TaskResultCreate) SetRps(v float64) *TaskResultCreate {
	_c.mutation.SetRps(v)
	return _c
}

// SetNillableRps sets the "rps" field if the given value is not nil.
func (_c *TaskResultCreate) SetNillableRps(v *float64) *TaskResultCreate {
	if v != nil {
		_c.SetRps(*v)
	}
	return _c
}

// SetAvgContentLength sets the "avg_content_length" field.
func (_c *TaskResultCreate) SetAvgContentLength(v float64) *TaskResultCreate {
	_c.mutation.SetAvgContentLength(v)
	return _c
}

// SetNillableAvgContentLength sets the "avg_content_length" field if the given value is not nil.
func (_c *TaskResultCreate) SetNillableAvgContentLength(v *float64) *TaskResultCreate {
	if v != nil {
		_c.SetAvgContentLength(*v)
	}
	return _c
}

// SetCompletionTps sets the "completion_tps" field.
func (_c *TaskResultCreate) SetCompletionTps(v float64) *TaskResultCreate {
	_c.mutation.SetCompletionTps(v)
	return _c
}

// SetNillableCompletionTps sets the "completion_tps" field if the given value is not nil.
func (_c *TaskResultCreate) SetNillableCompletionTps(v *float64) *TaskResultCreate {
	if v != nil {
		_c.SetCompletionTps(*v)
	}
	return _c
}

// SetTotalTps sets the "total_tps" field.
func (_c *TaskResultCreate) SetTotalTps(v float64) *TaskResultCreate {
	_c.mutation.SetTotalTps(v)
	return _c
}

// SetNillableTotalTps sets the "total_tps" field if the given value is not nil.
func (_c *TaskResultCreate) SetNillableTotalTps(v *float64) *TaskResultCreate {
	if v != nil {
		_c.SetTotalTps(*v)
	}
	return _c
}

// SetAvgTotalTokensPerReq sets the "avg_total_tokens_per_req" field.
func (_c *TaskResultCreate) SetAvgTotalTokensPerReq(v float64) *TaskResultCreate {
	_c.mutation.SetAvgTotalTokensPerReq(v)
	return _c
}

// SetNillableAvgTotalTokensPerReq sets the "avg_total_tokens_per_req" field if the given value is not nil.
func (_c *TaskResultCreate) SetNillableAvgTotalTokensPerReq(v *float64) *TaskResultCreate {
	if v != nil {
		_c.SetAvgTotalTokensPerReq(*v)
	}
	return _c
}

// SetAvgCompletionTokensPerReq sets the "avg_completion_tokens_per_req" field.
func (_c *TaskResultCreate) SetAvgCompletionTokensPerReq(v float64) *TaskResultCreate {
	_c.mutation.SetAvgCompletionTokensPerReq(v)
	return _c
}

// SetNillableAvgCompletionTokensPerReq sets the "avg_completion_tokens_per_req" field if the given value is not nil.
func (_c *TaskResultCreate) SetNillableAvgCompletionTokensPerReq(v *float64) *TaskResultCreate {
	if v != nil {
		_c.SetAvgCompletionTokensPerReq(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskResultCreate) SetCreatedAt(v time.Time) *TaskResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskResultCreate) SetNillableCreatedAt(v *time.Time) *TaskResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskResultCreate) SetUpdatedAt(v time.Time) *TaskResultCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskResultCreate) SetNillableUpdatedAt(v *time.Time) *TaskResultCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *TaskResultCreate) SetTask(v *Task) *TaskResultCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TaskResultMutation object of the builder.
func (_c *TaskResultCreate) Mutation() *TaskResultMutation {
	return _c.mutation
}

// Save creates the TaskResult in the database.
func (_c *TaskResultCreate) Save(ctx context.Context) (*TaskResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskResultCreate) SaveX(ctx context.Context) *TaskResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskResultCreate) defaults() {
	if _, ok := _c.mutation.NumRequests(); !ok {
		v := taskresult.DefaultNumRequests
		_c.mutation.SetNumRequests(v)
	}
	if _, ok := _c.mutation.NumFailures(); !ok {
		v := taskresult.DefaultNumFailures
		_c.mutation.SetNumFailures(v)
	}
	if _, ok := _c.mutation.AvgLatency(); !ok {
		v := taskresult.DefaultAvgLatency
		_c.mutation.SetAvgLatency(v)
	}
	if _, ok := _c.mutation.MinLatency(); !ok {
		v := taskresult.DefaultMinLatency
		_c.mutation.SetMinLatency(v)
	}
	if _, ok := _c.mutation.MaxLatency(); !ok {
		v := taskresult.DefaultMaxLatency
		_c.mutation.SetMaxLatency(v)
	}
	if _, ok := _c.mutation.MedianLatency(); !ok {
		v := taskresult.DefaultMedianLatency
		_c.mutation.SetMedianLatency(v)
	}
	if _, ok := _c.mutation.P90Latency(); !ok {
		v := taskresult.DefaultP90Latency
		_c.mutation.SetP90Latency(v)
	}
	if _, ok := _c.mutation.Rps(); !ok {
		v := taskresult.DefaultRps
		_c.mutation.SetRps(v)
	}
	if _, ok := _c.mutation.AvgContentLength(); !ok {
		v := taskresult.DefaultAvgContentLength
		_c.mutation.SetAvgContentLength(v)
	}
	if _, ok := _c.mutation.CompletionTps(); !ok {
		v := taskresult.DefaultCompletionTps
		_c.mutation.SetCompletionTps(v)
	}
	if _, ok := _c.mutation.TotalTps(); !ok {
		v := taskresult.DefaultTotalTps
		_c.mutation.SetTotalTps(v)
	}
	if _, ok := _c.mutation.AvgTotalTokensPerReq(); !ok {
		v := taskresult.DefaultAvgTotalTokensPerReq
		_c.mutation.SetAvgTotalTokensPerReq(v)
	}
	if _, ok := _c.mutation.AvgCompletionTokensPerReq(); !ok {
		v := taskresult.DefaultAvgCompletionTokensPerReq
		_c.mutation.SetAvgCompletionTokensPerReq(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := taskresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := taskresult.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskResultCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskResult.task_id"`)}
	}
	if _, ok := _c.mutation.MetricType(); !ok {
		return &ValidationError{Name: "metric_type", err: errors.New(`ent: missing required field "TaskResult.metric_type"`)}
	}
	if v, ok := _c.mutation.MetricType(); ok {
		if err := taskresult.MetricTypeValidator(v); err != nil {
			return &ValidationError{Name: "metric_type", err: fmt.Errorf(`ent: validator failed for field "TaskResult.metric_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NumRequests(); !ok {
		return &ValidationError{Name: "num_requests", err: errors.New(`ent: missing required field "TaskResult.num_requests"`)}
	}
	if _, ok := _c.mutation.NumFailures(); !ok {
		return &ValidationError{Name: "num_failures", err: errors.New(`ent: missing required field "TaskResult.num_failures"`)}
	}
	if _, ok := _c.mutation.AvgLatency(); !ok {
		return &ValidationError{Name: "avg_latency", err: errors.New(`ent: missing required field "TaskResult.avg_latency"`)}
	}
	if _, ok := _c.mutation.MinLatency(); !ok {
		return &ValidationError{Name: "min_latency", err: errors.New(`ent: missing required field "TaskResult.min_latency"`)}
	}
	if _, ok := _c.mutation.MaxLatency(); !ok {
		return &ValidationError{Name: "max_latency", err: errors.New(`ent: missing required field "TaskResult.max_latency"`)}
	}
	if _, ok := _c.mutation.MedianLatency(); !ok {
		return &ValidationError{Name: "median_latency", err: errors.New(`ent: missing required field "TaskResult.median_latency"`)}
	}
	if _, ok := _c.mutation.P90Latency(); !ok {
		return &ValidationError{Name: "p90_latency", err: errors.New(`ent: missing required field "TaskResult.p90_latency"`)}
	}
	if _, ok := _c.mutation.Rps(); !ok {
		return &ValidationError{Name: "rps", err: errors.New(`ent: missing required field "TaskResult.rps"`)}
	}
	if _, ok := _c.mutation.AvgContentLength(); !ok {
		return &ValidationError{Name: "avg_content_length", err: errors.New(`ent: missing required field "TaskResult.avg_content_length"`)}
	}
	if _, ok := _c.mutation.CompletionTps(); !ok {
		return &ValidationError{Name: "completion_tps", err: errors.New(`ent: missing required field "TaskResult.completion_tps"`)}
	}
	if _, ok := _c.mutation.TotalTps(); !ok {
		return &ValidationError{Name: "total_tps", err: errors.New(`ent: missing required field "TaskResult.total_tps"`)}
	}
	if _, ok := _c.mutation.AvgTotalTokensPerReq(); !ok {
		return &ValidationError{Name: "avg_total_tokens_per_req", err: errors.New(`ent: missing required field "TaskResult.avg_total_tokens_per_req"`)}
	}
	if _, ok := _c.mutation.AvgCompletionTokensPerReq(); !ok {
		return &ValidationError{Name: "avg_completion_tokens_per_req", err: errors.New(`ent: missing required field "TaskResult.avg_completion_tokens_per_req"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaskResult.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TaskResult.updated_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "TaskResult.task"`)}
	}
	return nil
}

func (_c *TaskResultCreate) sqlSave(ctx context.Context) (*TaskResult, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskResultCreate) createSpec() (*TaskResult, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskresult.Table, sqlgraph.NewFieldSpec(taskresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.MetricType(); ok {
		_spec.SetField(taskresult.FieldMetricType, field.TypeString, value)
		_node.MetricType = value
	}
	if value, ok := _c.mutation.NumRequests(); ok {
		_spec.SetField(taskresult.FieldNumRequests, field.TypeInt64, value)
		_node.NumRequests = value
	}
	if value, ok := _c.mutation.NumFailures(); ok {
		_spec.SetField(taskresult.FieldNumFailures, field.TypeInt64, value)
		_node.NumFailures = value
	}
	if value, ok := _c.mutation.AvgLatency(); ok {
		_spec.SetField(taskresult.FieldAvgLatency, field.TypeFloat64, value)
		_node.AvgLatency = value
	}
	if value, ok := _c.mutation.MinLatency(); ok {
		_spec.SetField(taskresult.FieldMinLatency, field.TypeFloat64, value)
		_node.MinLatency = value
	}
	if value, ok := _c.mutation.MaxLatency(); ok {
		_spec.SetField(taskresult.FieldMaxLatency, field.TypeFloat64, value)
		_node.MaxLatency = value
	}
	if value, ok := _c.mutation.MedianLatency(); ok {
		_spec.SetField(taskresult.FieldMedianLatency, field.TypeFloat64, value)
		_node.MedianLatency = value
	}
	if value, ok := _c.mutation.P90Latency(); ok {
		_spec.SetField(taskresult.FieldP90Latency, field.TypeFloat64, value)
		_node.P90Latency = value
	}
	if value, ok := _c.mutation.Rps(); ok {
		_spec.SetField(taskresult.FieldRps, field.TypeFloat64, value)
		_node.Rps = value
	}
	if value, ok := _c.mutation.AvgContentLength(); ok {
		_spec.SetField(taskresult.FieldAvgContentLength, field.TypeFloat64, value)
		_node.AvgContentLength = value
	}
	if value, ok := _c.mutation.CompletionTps(); ok {
		_spec.SetField(taskresult.FieldCompletionTps, field.TypeFloat64, value)
		_node.CompletionTps = value
	}
	if value, ok := _c.mutation.TotalTps(); ok {
		_spec.SetField(taskresult.FieldTotalTps, field.TypeFloat64, value)
		_node.TotalTps = value
	}
	if value, ok := _c.mutation.AvgTotalTokensPerReq(); ok {
		_spec.SetField(taskresult.FieldAvgTotalTokensPerReq, field.TypeFloat64, value)
		_node.AvgTotalTokensPerReq = value
	}
	if value, ok := _c.mutation.AvgCompletionTokensPerReq(); ok {
		_spec.SetField(taskresult.FieldAvgCompletionTokensPerReq, field.TypeFloat64, value)
		_node.AvgCompletionTokensPerReq = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(taskresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(taskresult.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskresult.TaskTable,
			Columns: []string{taskresult.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskResultCreateBulk is the builder for creating many TaskResult entities in bulk.
type TaskResultCreateBulk struct {
	config
	err      error
	builders []*TaskResultCreate
}

// Save creates the TaskResult entities in the database.
func (_c *TaskResultCreateBulk) Save(ctx context.Context) ([]*TaskResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskResultMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *TaskResultCreateBulk) SaveX(ctx context.Context) []*TaskResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
