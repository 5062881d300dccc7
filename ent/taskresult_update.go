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
	"github.com/perfflow/perfflow/ent/taskresult"
)

// TaskResultUpdate is the builder for updating TaskResult entities.
type TaskResultUpdate struct {
	config
	hooks    []Hook
	mutation *TaskResultMutation
}

// Where appends a list predicates to the TaskResultUpdate builder.
func (_u *TaskResultUpdate) Where(ps ...predicate.TaskResult) *TaskResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMetricType sets the "metric_type" field.
func (_u *TaskResultUpdate) SetMetricType(v string) *TaskResultUpdate {
	_u.mutation.SetMetricType(v)
	return _u
}

// SetNillableMetricType sets the "metric_type" field if the given value is not nil.
func (_u *TaskResultUpdate) SetNillableMetricType(v *string) *TaskResultUpdate {
	if v != nil {
		_u.SetMetricType(*v)
	}
	return _u
}

// SetNumRequests sets the "num_requests" field.
func (_u *TaskResultUpdate) SetNumRequests(v int64) *TaskResultUpdate {
	_u.mutation.ResetNumRequests()
	_u.mutation.SetNumRequests(v)
	return _u
}

// SetNillableNumRequests sets the "num_requests" field if the given value is not nil.
func (_u *TaskResultUpdate) SetNillableNumRequests(v *int64) *TaskResultUpdate {
	if v != nil {
		_u.SetNumRequests(*v)
	}
	return _u
}

// AddNumRequests adds value to the "num_requests" field.
func (_u *TaskResultUpdate) AddNumRequests(v int64) *TaskResultUpdate {
	_u.mutation.AddNumRequests(v)
	return _u
}

// SetNumFailures sets the "num_failures" field.
func (_u *TaskResultUpdate) SetNumFailures(v int64) *TaskResultUpdate {
	_u.mutation.ResetNumFailures()
	_u.mutation.SetNumFailures(v)
	return _u
}

// SetNillableNumFailures sets the "num_failures" field if the given value is not nil.
func (_u *TaskResultUpdate) SetNillableNumFailures(v *int64) *TaskResultUpdate {
	if v != nil {
		_u.SetNumFailures(*v)
	}
	return _u
}

// AddNumFailures adds value to the "num_failures" field.
func (_u *TaskResultUpdate) AddNumFailures(v int64) *TaskResultUpdate {
	_u.mutation.AddNumFailures(v)
	return _u
}

// SetAvgLatency sets the "avg_latency" field.
func (_u *TaskResultUpdate) SetAvgLatency(v float64) *TaskResultUpdate {
	_u.mutation.ResetAvgLatency()
	_u.mutation.SetAvgLatency(v)
	return _u
}

// SetNillableAvgLatency sets the "avg_latency" field if the given value is not nil.
func (_u *TaskResultUpdate) SetNillableAvgLatency(v *float64) *TaskResultUpdate {
	if v != nil {
		_u.SetAvgLatency(*v)
	}
	return _u
}

// AddAvgLatency adds value to the "avg_latency" field.
func (_u *TaskResultUpdate) AddAvgLatency(v float64) *TaskResultUpdate {
	_u.mutation.AddAvgLatency(v)
	return _u
}

// SetMinLatency sets the "min_latency" field.
func (_u *TaskResultUpdate) SetMinLatency(v float64) *TaskResultUpdate {
	_u.mutation.ResetMinLatency()
	_u.mutation.SetMinLatency(v)
	return _u
}

// SetNillableMinLatency sets the "min_latency" field if the given value is not nil.
func (_u *TaskResultUpdate) SetNillableMinLatency(v *float64) *TaskResultUpdate {
	if v != nil {
		_u.SetMinLatency(*v)
	}
	return _u
}

// AddMinLatency adds value to the "min_latency" field.
func (_u *TaskResultUpdate) AddMinLatency(v float64) *TaskResultUpdate {
	_u.mutation.AddMinLatency(v)
	return _u
}

// SetMaxLatency sets the "max_latency" field.
func (_u *TaskResultUpdate) SetMaxLatency(v float64) *TaskResultUpdate {
	_u.mutation.ResetMaxLatency()
	_u.mutation.SetMaxLatency(v)
	return _u
}

// SetNillableMaxLatency sets the "max_latency" field if the given value is not nil.
func (_u *TaskResultUpdate) SetNillableMaxLatency(v *float64) *TaskResultUpdate {
	if v != nil {
		_u.SetMaxLatency(*v)
	}
	return _u
}

// AddMaxLatency adds value to the "max_latency" field.
func (_u *TaskResultUpdate) AddMaxLatency(v float64) *TaskResultUpdate {
	_u.mutation.AddMaxLatency(v)
	return _u
}

// SetMedianLatency sets the "median_latency" field.
func (_u *TaskResultUpdate) SetMedianLatency(v float64) *TaskResultUpdate {
	_u.mutation.ResetMedianLatency()
	_u.mutation.SetMedianLatency(v)
	return _u
}

// SetNillableMedianLatency sets the "median_latency" field if the given value is not nil.
func (_u *TaskResultUpdate) SetNillableMedianLatency(v *float64) *TaskResultUpdate {
	if v != nil {
		_u.SetMedianLatency(*v)
	}
	return _u
}

// AddMedianLatency adds value to the "median_latency" field.
func (_u *TaskResultUpdate) AddMedianLatency(v float64) *TaskResultUpdate {
	_u.mutation.AddMedianLatency(v)
	return _u
}

// SetP90Latency sets the "p90_latency" field.
func (_u *TaskResultUpdate) SetP90Latency(v float64) *TaskResultUpdate {
	_u.mutation.ResetP90Latency()
	_u.mutation.SetP90Latency(v)
	return _u
}

// SetNillableP90Latency sets the "p90_latency" field if the given value is not nil.
func (_u *TaskResultUpdate) SetNillableP90Latency(v *float64) *TaskResultUpdate {
	if v != nil {
		_u.SetP90Latency(*v)
	}
	return _u
}

// AddP90Latency adds value to the "p90_latency" field.
func (_u *TaskResultUpdate) AddP90Latency(v float64) *TaskResultUpdate {
	_u.mutation.AddP90Latency(v)
	return _u
}

// SetRps sets the "rps" field.
func (_u *TaskResultUpdate) SetRps(v float64) *TaskResultUpdate {
	_u.mutation.ResetRps()
	_u.mutation.SetRps(v)
	return _u
}

// SetNillableRps sets the "rps" field if the given value is not nil.
func (_u *TaskResultUpdate) SetNillableRps(v *float64) *TaskResultUpdate {
	if v != nil {
		_u.SetRps(*v)
	}
	return _u
}

// AddRps adds value to the "rps" field.
func (_u *TaskResultUpdate) AddRps(v float64) *TaskResultUpdate {
	_u.mutation.AddRps(v)
	return _u
}

// SetAvgContentLength sets the "avg_content_length" field.
func (_u *TaskResultUpdate) SetAvgContentLength(v float64) *TaskResultUpdate {
	_u.mutation.ResetAvgContentLength()
	_u.mutation.SetAvgContentLength(v)
	return _u
}

// SetNillableAvgContentLength sets the "avg_content_length" field if the given value is not nil.
func (_u *TaskResultUpdate) SetNillableAvgContentLength(v *float64) *TaskResultUpdate {
	if v != nil {
		_u.SetAvgContentLength(*v)
	}
	return _u
}

// AddAvgContentLength adds value to the "avg_content_length" field.
func (_u *TaskResultUpdate) AddAvgContentLength(v float64) *TaskResultUpdate {
	_u.mutation.AddAvgContentLength(v)
	return _u
}

// SetCompletionTps sets the "completion_tps" field.
func (_u *TaskResultUpdate) SetCompletionTps(v float64) *TaskResultUpdate {
	_u.mutation.ResetCompletionTps()
	_u.mutation.SetCompletionTps(v)
	return _u
}

// SetNillableCompletionTps sets the "completion_tps" field if the given value is not nil.
func (_u *TaskResultUpdate) SetNillableCompletionTps(v *float64) *TaskResultUpdate {
	if v != nil {
		_u.SetCompletionTps(*v)
	}
	return _u
}

// AddCompletionTps adds value to the "completion_tps" field.
func (_u *TaskResultUpdate) AddCompletionTps(v float64) *TaskResultUpdate {
	_u.mutation.AddCompletionTps(v)
	return _u
}

// SetTotalTps sets the "total_tps" field.
func (_u *TaskResultUpdate) SetTotalTps(v float64) *TaskResultUpdate {
	_u.mutation.ResetTotalTps()
	_u.mutation.SetTotalTps(v)
	return _u
}

// SetNillableTotalTps sets the "total_tps" field if the given value is not nil.
func (_u *TaskResultUpdate) SetNillableTotalTps(v *float64) *TaskResultUpdate {
	if v != nil {
		_u.SetTotalTps(*v)
	}
	return _u
}

// AddTotalTps adds value to the "total_tps" field.
func (_u *TaskResultUpdate) AddTotalTps(v float64) *TaskResultUpdate {
	_u.mutation.AddTotalTps(v)
	return _u
}

// SetAvgTotalTokensPerReq sets the "avg_total_tokens_per_req" field.
func (_u *TaskResultUpdate) SetAvgTotalTokensPerReq(v float64) *TaskResultUpdate {
	_u.mutation.ResetAvgTotalTokensPerReq()
	_u.mutation.SetAvgTotalTokensPerReq(v)
	return _u
}

// SetNillableAvgTotalTokensPerReq sets the "avg_total_tokens_per_req" field if the given value is not nil.
func (_u *TaskResultUpdate) SetNillableAvgTotalTokensPerReq(v *float64) *TaskResultUpdate {
	if v != nil {
		_u.SetAvgTotalTokensPerReq(*v)
	}
	return _u
}

// AddAvgTotalTokensPerReq adds value to the "avg_total_tokens_per_req" field.
func (_u *TaskResultUpdate) AddAvgTotalTokensPerReq(v float64) *TaskResultUpdate {
	_u.mutation.AddAvgTotalTokensPerReq(v)
	return _u
}

// SetAvgCompletionTokensPerReq sets the "avg_completion_tokens_per_req" field.
func (_u *TaskResultUpdate) SetAvgCompletionTokensPerReq(v float64) *TaskResultUpdate {
	_u.mutation.ResetAvgCompletionTokensPerReq()
	_u.mutation.SetAvgCompletionTokensPerReq(v)
	return _u
}

// SetNillableAvgCompletionTokensPerReq sets the "avg_completion_tokens_per_req" field if the given value is not nil.
func (_u *TaskResultUpdate) SetNillableAvgCompletionTokensPerReq(v *float64) *TaskResultUpdate {
	if v != nil {
		_u.SetAvgCompletionTokensPerReq(*v)
	}
	return _u
}

// AddAvgCompletionTokensPerReq adds value to the "avg_completion_tokens_per_req" field.
func (_u *TaskResultUpdate) AddAvgCompletionTokensPerReq(v float64) *TaskResultUpdate {
	_u.mutation.AddAvgCompletionTokensPerReq(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskResultUpdate) SetUpdatedAt(v time.Time) *TaskResultUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskResultMutation object of the builder.
func (_u *TaskResultUpdate) Mutation() *TaskResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskResultUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskResultUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := taskresult.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskResultUpdate) check() error {
	if v, ok := _u.mutation.MetricType(); ok {
		if err := taskresult.MetricTypeValidator(v); err != nil {
			return &ValidationError{Name: "metric_type", err: fmt.Errorf(`ent: validator failed for field "TaskResult.metric_type": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskResult.task"`)
	}
	return nil
}

func (_u *TaskResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskresult.Table, taskresult.Columns, sqlgraph.NewFieldSpec(taskresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MetricType(); ok {
		_spec.SetField(taskresult.FieldMetricType, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumRequests(); ok {
		_spec.SetField(taskresult.FieldNumRequests, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNumRequests(); ok {
		_spec.AddField(taskresult.FieldNumRequests, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NumFailures(); ok {
		_spec.SetField(taskresult.FieldNumFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNumFailures(); ok {
		_spec.AddField(taskresult.FieldNumFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgLatency(); ok {
		_spec.SetField(taskresult.FieldAvgLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgLatency(); ok {
		_spec.AddField(taskresult.FieldAvgLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MinLatency(); ok {
		_spec.SetField(taskresult.FieldMinLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinLatency(); ok {
		_spec.AddField(taskresult.FieldMinLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxLatency(); ok {
		_spec.SetField(taskresult.FieldMaxLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxLatency(); ok {
		_spec.AddField(taskresult.FieldMaxLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MedianLatency(); ok {
		_spec.SetField(taskresult.FieldMedianLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMedianLatency(); ok {
		_spec.AddField(taskresult.FieldMedianLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.P90Latency(); ok {
		_spec.SetField(taskresult.FieldP90Latency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedP90Latency(); ok {
		_spec.AddField(taskresult.FieldP90Latency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rps(); ok {
		_spec.SetField(taskresult.FieldRps, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRps(); ok {
		_spec.AddField(taskresult.FieldRps, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgContentLength(); ok {
		_spec.SetField(taskresult.FieldAvgContentLength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgContentLength(); ok {
		_spec.AddField(taskresult.FieldAvgContentLength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletionTps(); ok {
		_spec.SetField(taskresult.FieldCompletionTps, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionTps(); ok {
		_spec.AddField(taskresult.FieldCompletionTps, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalTps(); ok {
		_spec.SetField(taskresult.FieldTotalTps, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalTps(); ok {
		_spec.AddField(taskresult.FieldTotalTps, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgTotalTokensPerReq(); ok {
		_spec.SetField(taskresult.FieldAvgTotalTokensPerReq, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTotalTokensPerReq(); ok {
		_spec.AddField(taskresult.FieldAvgTotalTokensPerReq, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgCompletionTokensPerReq(); ok {
		_spec.SetField(taskresult.FieldAvgCompletionTokensPerReq, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgCompletionTokensPerReq(); ok {
		_spec.AddField(taskresult.FieldAvgCompletionTokensPerReq, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(taskresult.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskResultUpdateOne is the builder for updating a single TaskResult entity.
type TaskResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskResultMutation
}

// SetMetricType sets the "metric_type" field.
func (_u *TaskResultUpdateOne) SetMetricType(v string) *TaskResultUpdateOne {
	_u.mutation.SetMetricType(v)
	return _u
}

// SetNillableMetricType sets the "metric_type" field if the given value is not nil.
func (_u *TaskResultUpdateOne) SetNillableMetricType(v *string) *TaskResultUpdateOne {
	if v != nil {
		_u.SetMetricType(*v)
	}
	return _u
}

// SetNumRequests sets the "num_requests" field.
func (_u *TaskResultUpdateOne) SetNumRequests(v int64) *TaskResultUpdateOne {
	_u.mutation.ResetNumRequests()
	_u.mutation.SetNumRequests(v)
	return _u
}

// SetNillableNumRequests sets the "num_requests" field if the given value is not nil.
func (_u *TaskResultUpdateOne) SetNillableNumRequests(v *int64) *TaskResultUpdateOne {
	if v != nil {
		_u.SetNumRequests(*v)
	}
	return _u
}

// AddNumRequests adds value to the "num_requests" field.
func (_u *TaskResultUpdateOne) AddNumRequests(v int64) *TaskResultUpdateOne {
	_u.mutation.AddNumRequests(v)
	return _u
}

// SetNumFailures sets the "num_failures" field.
func (_u *TaskResultUpdateOne) SetNumFailures(v int64) *TaskResultUpdateOne {
	_u.mutation.ResetNumFailures()
	_u.mutation.SetNumFailures(v)
	return _u
}

// SetNillableNumFailures sets the "num_failures" field if the given value is not nil.
func (_u *TaskResultUpdateOne) SetNillableNumFailures(v *int64) *TaskResultUpdateOne {
	if v != nil {
		_u.SetNumFailures(*v)
	}
	return _u
}

// AddNumFailures adds value to the "num_failures" field.
func (_u *TaskResultUpdateOne) AddNumFailures(v int64) *TaskResultUpdateOne {
	_u.mutation.AddNumFailures(v)
	return _u
}

// SetAvgLatency sets the "avg_latency" field.
func (_u *TaskResultUpdateOne) SetAvgLatency(v float64) *TaskResultUpdateOne {
	_u.mutation.ResetAvgLatency()
	_u.mutation.SetAvgLatency(v)
	return _u
}

// SetNillableAvgLatency sets the "avg_latency" field if the given value is not nil.
func (_u *TaskResultUpdateOne) SetNillableAvgLatency(v *float64) *TaskResultUpdateOne {
	if v != nil {
		_u.SetAvgLatency(*v)
	}
	return _u
}

// AddAvgLatency adds value to the "avg_latency" field.
func (_u *TaskResultUpdateOne) AddAvgLatency(v float64) *TaskResultUpdateOne {
	_u.mutation.AddAvgLatency(v)
	return _u
}

// SetMinLatency sets the "min_latency" field.
func (_u *TaskResultUpdateOne) SetMinLatency(v float64) *TaskResultUpdateOne {
	_u.mutation.ResetMinLatency()
	_u.mutation.SetMinLatency(v)
	return _u
}

// SetNillableMinLatency sets the "min_latency" field if the given value is not nil.
func (_u *TaskResultUpdateOne) SetNillableMinLatency(v *float64) *TaskResultUpdateOne {
	if v != nil {
		_u.SetMinLatency(*v)
	}
	return _u
}

// AddMinLatency adds value to the "min_latency" field.
func (_u *TaskResultUpdateOne) AddMinLatency(v float64) *TaskResultUpdateOne {
	_u.mutation.AddMinLatency(v)
	return _u
}

// SetMaxLatency sets the "max_latency" field.
func (_u *TaskResultUpdateOne) SetMaxLatency(v float64) *TaskResultUpdateOne {
	_u.mutation.ResetMaxLatency()
	_u.mutation.SetMaxLatency(v)
	return _u
}

// SetNillableMaxLatency sets the "max_latency" field if the given value is not nil.
func (_u *TaskResultUpdateOne) SetNillableMaxLatency(v *float64) *TaskResultUpdateOne {
	if v != nil {
		_u.SetMaxLatency(*v)
	}
	return _u
}

// AddMaxLatency adds value to the "max_latency" field.
func (_u *TaskResultUpdateOne) AddMaxLatency(v float64) *TaskResultUpdateOne {
	_u.mutation.AddMaxLatency(v)
	return _u
}

// SetMedianLatency sets the "median_latency" field.
func (_u *TaskResultUpdateOne) SetMedianLatency(v float64) *TaskResultUpdateOne {
	_u.mutation.ResetMedianLatency()
	_u.mutation.SetMedianLatency(v)
	return _u
}

// SetNillableMedianLatency sets the "median_latency" field if the given value is not nil.
func (_u *TaskResultUpdateOne) SetNillableMedianLatency(v *float64) *TaskResultUpdateOne {
	if v != nil {
		_u.SetMedianLatency(*v)
	}
	return _u
}

// AddMedianLatency adds value to the "median_latency" field.
func (_u *TaskResultUpdateOne) AddMedianLatency(v float64) *TaskResultUpdateOne {
	_u.mutation.AddMedianLatency(v)
	return _u
}

// SetP90Latency sets the "p90_latency" field.
func (_u *TaskResultUpdateOne) SetP90Latency(v float64) *TaskResultUpdateOne {
	_u.mutation.ResetP90Latency()
	_u.mutation.SetP90Latency(v)
	return _u
}

// SetNillableP90Latency sets the "p90_latency" field if the given value is not nil.
func (_u *TaskResultUpdateOne) SetNillableP90Latency(v *float64) *TaskResultUpdateOne {
	if v != nil {
		_u.SetP90Latency(*v)
	}
	return _u
}

// AddP90Latency adds value to the "p90_latency" field.
func (_u *TaskResultUpdateOne) AddP90Latency(v float64) *TaskResultUpdateOne {
	_u.mutation.AddP90Latency(v)
	return _u
}

// SetRps sets the "rps" field.
func (_u *TaskResultUpdateOne) SetRps(v float64) *TaskResultUpdateOne {
	_u.mutation.ResetRps()
	_u.mutation.SetRps(v)
	return _u
}

// SetNillableRps sets the "rps" field if the given value is not nil.
func (_u *TaskResultUpdateOne) SetNillableRps(v *float64) *TaskResultUpdateOne {
	if v != nil {
		_u.SetRps(*v)
	}
	return _u
}

// AddRps adds value to the "rps" field.
func (_u *TaskResultUpdateOne) AddRps(v float64) *TaskResultUpdateOne {
	_u.mutation.AddRps(v)
	return _u
}

// SetAvgContentLength sets the "avg_content_length" field.
func (_u *TaskResultUpdateOne) SetAvgContentLength(v float64) *TaskResultUpdateOne {
	_u.mutation.ResetAvgContentLength()
	_u.mutation.SetAvgContentLength(v)
	return _u
}

// SetNillableAvgContentLength sets the "avg_content_length" field if the given value is not nil.
func (_u *TaskResultUpdateOne) SetNillableAvgContentLength(v *float64) *TaskResultUpdateOne {
	if v != nil {
		_u.SetAvgContentLength(*v)
	}
	return _u
}

// AddAvgContentLength adds value to the "avg_content_length" field.
func (_u *TaskResultUpdateOne) AddAvgContentLength(v float64) *TaskResultUpdateOne {
	_u.mutation.AddAvgContentLength(v)
	return _u
}

// SetCompletionTps sets the "completion_tps" field.
func (_u *TaskResultUpdateOne) SetCompletionTps(v float64) *TaskResultUpdateOne {
	_u.mutation.ResetCompletionTps()
	_u.mutation.SetCompletionTps(v)
	return _u
}

// SetNillableCompletionTps sets the "completion_tps" field if the given value is not nil.
func (_u *TaskResultUpdateOne) SetNillableCompletionTps(v *float64) *TaskResultUpdateOne {
	if v != nil {
		_u.SetCompletionTps(*v)
	}
	return _u
}

// AddCompletionTps adds value to the "completion_tps" field.
func (_u *TaskResultUpdateOne) AddCompletionTps(v float64) *TaskResultUpdateOne {
	_u.mutation.AddCompletionTps(v)
	return _u
}

// SetTotalTps sets the "total_tps" field.
func (_u *TaskResultUpdateOne) SetTotalTps(v float64) *TaskResultUpdateOne {
	_u.mutation.ResetTotalTps()
	_u.mutation.SetTotalTps(v)
	return _u
}

// SetNillableTotalTps sets the "total_tps" field if the given value is not nil.
func (_u *TaskResultUpdateOne) SetNillableTotalTps(v *float64) *TaskResultUpdateOne {
	if v != nil {
		_u.SetTotalTps(*v)
	}
	return _u
}

// AddTotalTps adds value to the "total_tps" field.
func (_u *TaskResultUpdateOne) AddTotalTps(v float64) *TaskResultUpdateOne {
	_u.mutation.AddTotalTps(v)
	return _u
}

// SetAvgTotalTokensPerReq sets the "avg_total_tokens_per_req" field.
func (_u *TaskResultUpdateOne) SetAvgTotalTokensPerReq(v float64) *TaskResultUpdateOne {
	_u.mutation.ResetAvgTotalTokensPerReq()
	_u.mutation.SetAvgTotalTokensPerReq(v)
	return _u
}

// SetNillableAvgTotalTokensPerReq sets the "avg_total_tokens_per_req" field if the given value is not nil.
func (_u *TaskResultUpdateOne) SetNillableAvgTotalTokensPerReq(v *float64) *TaskResultUpdateOne {
	if v != nil {
		_u.SetAvgTotalTokensPerReq(*v)
	}
	return _u
}

// AddAvgTotalTokensPerReq adds value to the "avg_total_tokens_per_req" field.
func (_u *TaskResultUpdateOne) AddAvgTotalTokensPerReq(v float64) *TaskResultUpdateOne {
	_u.mutation.AddAvgTotalTokensPerReq(v)
	return _u
}

// SetAvgCompletionTokensPerReq sets the "avg_completion_tokens_per_req" field.
func (_u *TaskResultUpdateOne) SetAvgCompletionTokensPerReq(v float64) *TaskResultUpdateOne {
	_u.mutation.ResetAvgCompletionTokensPerReq()
	_u.mutation.SetAvgCompletionTokensPerReq(v)
	return _u
}

// SetNillableAvgCompletionTokensPerReq sets the "avg_completion_tokens_per_req" field if the given value is not nil.
func (_u *TaskResultUpdateOne) SetNillableAvgCompletionTokensPerReq(v *float64) *TaskResultUpdateOne {
	if v != nil {
		_u.SetAvgCompletionTokensPerReq(*v)
	}
	return _u
}

// AddAvgCompletionTokensPerReq adds value to the "avg_completion_tokens_per_req" field.
func (_u *TaskResultUpdateOne) AddAvgCompletionTokensPerReq(v float64) *TaskResultUpdateOne {
	_u.mutation.AddAvgCompletionTokensPerReq(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskResultUpdateOne) SetUpdatedAt(v time.Time) *TaskResultUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TaskResultMutation object of the builder.
func (_u *TaskResultUpdateOne) Mutation() *TaskResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskResultUpdate builder.
func (_u *TaskResultUpdateOne) Where(ps ...predicate.TaskResult) *TaskResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskResultUpdateOne) Select(field string, fields ...string) *TaskResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskResult entity.
func (_u *TaskResultUpdateOne) Save(ctx context.Context) (*TaskResult, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskResultUpdateOne) SaveX(ctx context.Context) *TaskResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskResultUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := taskresult.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskResultUpdateOne) check() error {
	if v, ok := _u.mutation.MetricType(); ok {
		if err := taskresult.MetricTypeValidator(v); err != nil {
			return &ValidationError{Name: "metric_type", err: fmt.Errorf(`ent: validator failed for field "TaskResult.metric_type": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskResult.task"`)
	}
	return nil
}

func (_u *TaskResultUpdateOne) sqlSave(ctx context.Context) (_node *TaskResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskresult.Table, taskresult.Columns, sqlgraph.NewFieldSpec(taskresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskresult.FieldID)
		for _, f := range fields {
			if !taskresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskresult.FieldID {
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
	if value, ok := _u.mutation.MetricType(); ok {
		_spec.SetField(taskresult.FieldMetricType, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumRequests(); ok {
		_spec.SetField(taskresult.FieldNumRequests, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNumRequests(); ok {
		_spec.AddField(taskresult.FieldNumRequests, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NumFailures(); ok {
		_spec.SetField(taskresult.FieldNumFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNumFailures(); ok {
		_spec.AddField(taskresult.FieldNumFailures, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvgLatency(); ok {
		_spec.SetField(taskresult.FieldAvgLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgLatency(); ok {
		_spec.AddField(taskresult.FieldAvgLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MinLatency(); ok {
		_spec.SetField(taskresult.FieldMinLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinLatency(); ok {
		_spec.AddField(taskresult.FieldMinLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxLatency(); ok {
		_spec.SetField(taskresult.FieldMaxLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxLatency(); ok {
		_spec.AddField(taskresult.FieldMaxLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MedianLatency(); ok {
		_spec.SetField(taskresult.FieldMedianLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMedianLatency(); ok {
		_spec.AddField(taskresult.FieldMedianLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.P90Latency(); ok {
		_spec.SetField(taskresult.FieldP90Latency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedP90Latency(); ok {
		_spec.AddField(taskresult.FieldP90Latency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rps(); ok {
		_spec.SetField(taskresult.FieldRps, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRps(); ok {
		_spec.AddField(taskresult.FieldRps, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgContentLength(); ok {
		_spec.SetField(taskresult.FieldAvgContentLength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgContentLength(); ok {
		_spec.AddField(taskresult.FieldAvgContentLength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletionTps(); ok {
		_spec.SetField(taskresult.FieldCompletionTps, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionTps(); ok {
		_spec.AddField(taskresult.FieldCompletionTps, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalTps(); ok {
		_spec.SetField(taskresult.FieldTotalTps, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalTps(); ok {
		_spec.AddField(taskresult.FieldTotalTps, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgTotalTokensPerReq(); ok {
		_spec.SetField(taskresult.FieldAvgTotalTokensPerReq, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTotalTokensPerReq(); ok {
		_spec.AddField(taskresult.FieldAvgTotalTokensPerReq, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgCompletionTokensPerReq(); ok {
		_spec.SetField(taskresult.FieldAvgCompletionTokensPerReq, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgCompletionTokensPerReq(); ok {
		_spec.AddField(taskresult.FieldAvgCompletionTokensPerReq, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(taskresult.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TaskResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
