// Code generated by ent, DO NOT EDIT.

package taskresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/perfflow/perfflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldTaskID, v))
}

// MetricType applies equality check predicate on the "metric_type" field. It's identical to MetricTypeEQ.
func MetricType(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldMetricType, v))
}

// NumRequests applies equality check predicate on the "num_requests" field. It's identical to NumRequestsEQ.
func NumRequests(v int64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldNumRequests, v))
}

// NumFailures applies equality check predicate on the "num_failures" field. It's identical to NumFailuresEQ.
func NumFailures(v int64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldNumFailures, v))
}

// AvgLatency applies equality check predicate on the "avg_latency" field. It's identical to AvgLatencyEQ.
func AvgLatency(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldAvgLatency, v))
}

// MinLatency applies equality check predicate on the "min_latency" field. It's identical to MinLatencyEQ.
func MinLatency(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldMinLatency, v))
}

// MaxLatency applies equality check predicate on the "max_latency" field. It's identical to MaxLatencyEQ.
func MaxLatency(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldMaxLatency, v))
}

// MedianLatency applies equality check predicate on the "median_latency" field. It's identical to MedianLatencyEQ.
func MedianLatency(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldMedianLatency, v))
}

// P90Latency applies equality check predicate on the "p90_latency" field. It's identical to P90LatencyEQ.
func P90Latency(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldP90Latency, v))
}

// Rps applies equality check predicate on the "rps" field. It's identical to RpsEQ.
func Rps(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldRps, v))
}

// AvgContentLength applies equality check predicate on the "avg_content_length" field. It's identical to AvgContentLengthEQ.
func AvgContentLength(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldAvgContentLength, v))
}

// CompletionTps applies equality check predicate on the "completion_tps" field. It's identical to CompletionTpsEQ.
func CompletionTps(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldCompletionTps, v))
}

// TotalTps applies equality check predicate on the "total_tps" field. It's identical to TotalTpsEQ.
func TotalTps(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldTotalTps, v))
}

// AvgTotalTokensPerReq applies equality check predicate on the "avg_total_tokens_per_req" field. It's identical to AvgTotalTokensPerReqEQ.
func AvgTotalTokensPerReq(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldAvgTotalTokensPerReq, v))
}

// AvgCompletionTokensPerReq applies equality check predicate on the "avg_completion_tokens_per_req" field. It's identical to AvgCompletionTokensPerReqEQ.
func AvgCompletionTokensPerReq(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldAvgCompletionTokensPerReq, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldUpdatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldContainsFold(FieldTaskID, v))
}

// MetricTypeEQ applies the EQ predicate on the "metric_type" field.
func MetricTypeEQ(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldMetricType, v))
}

// MetricTypeNEQ applies the NEQ predicate on the "metric_type" field.
func MetricTypeNEQ(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldMetricType, v))
}

// MetricTypeIn applies the In predicate on the "metric_type" field.
func MetricTypeIn(vs ...string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldMetricType, vs...))
}

// MetricTypeNotIn applies the NotIn predicate on the "metric_type" field.
func MetricTypeNotIn(vs ...string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldMetricType, vs...))
}

// MetricTypeGT applies the GT predicate on the "metric_type" field.
func MetricTypeGT(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldMetricType, v))
}

// MetricTypeGTE applies the GTE predicate on the "metric_type" field.
func MetricTypeGTE(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldMetricType, v))
}

// MetricTypeLT applies the LT predicate on the "metric_type" field.
func MetricTypeLT(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldMetricType, v))
}

// MetricTypeLTE applies the LTE predicate on the "metric_type" field.
func MetricTypeLTE(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldMetricType, v))
}

// MetricTypeContains applies the Contains predicate on the "metric_type" field.
func MetricTypeContains(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldContains(FieldMetricType, v))
}

// MetricTypeHasPrefix applies the HasPrefix predicate on the "metric_type" field.
func MetricTypeHasPrefix(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldHasPrefix(FieldMetricType, v))
}

// MetricTypeHasSuffix applies the HasSuffix predicate on the "metric_type" field.
func MetricTypeHasSuffix(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldHasSuffix(FieldMetricType, v))
}

// MetricTypeEqualFold applies the EqualFold predicate on the "metric_type" field.
func MetricTypeEqualFold(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEqualFold(FieldMetricType, v))
}

// MetricTypeContainsFold applies the ContainsFold predicate on the "metric_type" field.
func MetricTypeContainsFold(v string) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldContainsFold(FieldMetricType, v))
}

// NumRequestsEQ applies the EQ predicate on the "num_requests" field.
func NumRequestsEQ(v int64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldNumRequests, v))
}

// NumRequestsNEQ applies the NEQ predicate on the "num_requests" field.
func NumRequestsNEQ(v int64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldNumRequests, v))
}

// NumRequestsIn applies the In predicate on the "num_requests" field.
func NumRequestsIn(vs ...int64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldNumRequests, vs...))
}

// NumRequestsNotIn applies the NotIn predicate on the "num_requests" field.
func NumRequestsNotIn(vs ...int64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldNumRequests, vs...))
}

// NumRequestsGT applies the GT predicate on the "num_requests" field.
func NumRequestsGT(v int64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldNumRequests, v))
}

// NumRequestsGTE applies the GTE predicate on the "num_requests" field.
func NumRequestsGTE(v int64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldNumRequests, v))
}

// NumRequestsLT applies the LT predicate on the "num_requests" field.
func NumRequestsLT(v int64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldNumRequests, v))
}

// NumRequestsLTE applies the LTE predicate on the "num_requests" field.
func NumRequestsLTE(v int64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldNumRequests, v))
}

// NumFailuresEQ applies the EQ predicate on the "num_failures" field.
func NumFailuresEQ(v int64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldNumFailures, v))
}

// NumFailuresNEQ applies the NEQ predicate on the "num_failures" field.
func NumFailuresNEQ(v int64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldNumFailures, v))
}

// NumFailuresIn applies the In predicate on the "num_failures" field.
func NumFailuresIn(vs ...int64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldNumFailures, vs...))
}

// NumFailuresNotIn applies the NotIn predicate on the "num_failures" field.
func NumFailuresNotIn(vs ...int64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldNumFailures, vs...))
}

// NumFailuresGT applies the GT predicate on the "num_failures" field.
func NumFailuresGT(v int64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldNumFailures, v))
}

// NumFailuresGTE applies the GTE predicate on the "num_failures" field.
func NumFailuresGTE(v int64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldNumFailures, v))
}

// NumFailuresLT applies the LT predicate on the "num_failures" field.
func NumFailuresLT(v int64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldNumFailures, v))
}

// NumFailuresLTE applies the LTE predicate on the "num_failures" field.
func NumFailuresLTE(v int64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldNumFailures, v))
}

// AvgLatencyEQ applies the EQ predicate on the "avg_latency" field.
func AvgLatencyEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldAvgLatency, v))
}

// AvgLatencyNEQ applies the NEQ predicate on the "avg_latency" field.
func AvgLatencyNEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldAvgLatency, v))
}

// AvgLatencyIn applies the In predicate on the "avg_latency" field.
func AvgLatencyIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldAvgLatency, vs...))
}

// AvgLatencyNotIn applies the NotIn predicate on the "avg_latency" field.
func AvgLatencyNotIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldAvgLatency, vs...))
}

// AvgLatencyGT applies the GT predicate on the "avg_latency" field.
func AvgLatencyGT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldAvgLatency, v))
}

// AvgLatencyGTE applies the GTE predicate on the "avg_latency" field.
func AvgLatencyGTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldAvgLatency, v))
}

// AvgLatencyLT applies the LT predicate on the "avg_latency" field.
func AvgLatencyLT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldAvgLatency, v))
}

// AvgLatencyLTE applies the LTE predicate on the "avg_latency" field.
func AvgLatencyLTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldAvgLatency, v))
}

// MinLatencyEQ applies the EQ predicate on the "min_latency" field.
func MinLatencyEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldMinLatency, v))
}

// MinLatencyNEQ applies the NEQ predicate on the "min_latency" field.
func MinLatencyNEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldMinLatency, v))
}

// MinLatencyIn applies the In predicate on the "min_latency" field.
func MinLatencyIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldMinLatency, vs...))
}

// MinLatencyNotIn applies the NotIn predicate on the "min_latency" field.
func MinLatencyNotIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldMinLatency, vs...))
}

// MinLatencyGT applies the GT predicate on the "min_latency" field.
func MinLatencyGT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldMinLatency, v))
}

// MinLatencyGTE applies the GTE predicate on the "min_latency" field.
func MinLatencyGTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldMinLatency, v))
}

// MinLatencyLT applies the LT predicate on the "min_latency" field.
func MinLatencyLT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldMinLatency, v))
}

// MinLatencyLTE applies the LTE predicate on the "min_latency" field.
func MinLatencyLTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldMinLatency, v))
}

// MaxLatencyEQ applies the EQ predicate on the "max_latency" field.
func MaxLatencyEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldMaxLatency, v))
}

// MaxLatencyNEQ applies the NEQ predicate on the "max_latency" field.
func MaxLatencyNEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldMaxLatency, v))
}

// MaxLatencyIn applies the In predicate on the "max_latency" field.
func MaxLatencyIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldMaxLatency, vs...))
}

// MaxLatencyNotIn applies the NotIn predicate on the "max_latency" field.
func MaxLatencyNotIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldMaxLatency, vs...))
}

// MaxLatencyGT applies the GT predicate on the "max_latency" field.
func MaxLatencyGT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldMaxLatency, v))
}

// MaxLatencyGTE applies the GTE predicate on the "max_latency" field.
func MaxLatencyGTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldMaxLatency, v))
}

// MaxLatencyLT applies the LT predicate on the "max_latency" field.
func MaxLatencyLT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldMaxLatency, v))
}

// MaxLatencyLTE applies the LTE predicate on the "max_latency" field.
func MaxLatencyLTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldMaxLatency, v))
}

// MedianLatencyEQ applies the EQ predicate on the "median_latency" field.
func MedianLatencyEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldMedianLatency, v))
}

// MedianLatencyNEQ applies the NEQ predicate on the "median_latency" field.
func MedianLatencyNEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldMedianLatency, v))
}

// MedianLatencyIn applies the In predicate on the "median_latency" field.
func MedianLatencyIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldMedianLatency, vs...))
}

// MedianLatencyNotIn applies the NotIn predicate on the "median_latency" field.
func MedianLatencyNotIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldMedianLatency, vs...))
}

// MedianLatencyGT applies the GT predicate on the "median_latency" field.
func MedianLatencyGT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldMedianLatency, v))
}

// MedianLatencyGTE applies the GTE predicate on the "median_latency" field.
func MedianLatencyGTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldMedianLatency, v))
}

// MedianLatencyLT applies the LT predicate on the "median_latency" field.
func MedianLatencyLT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldMedianLatency, v))
}

// MedianLatencyLTE applies the LTE predicate on the "median_latency" field.
func MedianLatencyLTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldMedianLatency, v))
}

// P90LatencyEQ applies the EQ predicate on the "p90_latency" field.
func P90LatencyEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldP90Latency, v))
}

// P90LatencyNEQ applies the NEQ predicate on the "p90_latency" field.
func P90LatencyNEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldP90Latency, v))
}

// P90LatencyIn applies the In predicate on the "p90_latency" field.
func P90LatencyIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldP90Latency, vs...))
}

// P90LatencyNotIn applies the NotIn predicate on the "p90_latency" field.
func P90LatencyNotIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldP90Latency, vs...))
}

// P90LatencyGT applies the GT predicate on the "p90_latency" field.
func P90LatencyGT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldP90Latency, v))
}

// P90LatencyGTE applies the GTE predicate on the "p90_latency" field.
func P90LatencyGTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldP90Latency, v))
}

// P90LatencyLT applies the LT predicate on the "p90_latency" field.
func P90LatencyLT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldP90Latency, v))
}

// P90LatencyLTE applies the LTE predicate on the "p90_latency" field.
func P90LatencyLTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldP90Latency, v))
}

// RpsEQ applies the EQ predicate on the "rps" field.
func RpsEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldRps, v))
}

// RpsNEQ applies the NEQ predicate on the "rps" field.
func RpsNEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldRps, v))
}

// RpsIn applies the In predicate on the "rps" field.
func RpsIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldRps, vs...))
}

// RpsNotIn applies the NotIn predicate on the "rps" field.
func RpsNotIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldRps, vs...))
}

// RpsGT applies the GT predicate on the "rps" field.
func RpsGT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldRps, v))
}

// RpsGTE applies the GTE predicate on the "rps" field.
func RpsGTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldRps, v))
}

// RpsLT applies the LT predicate on the "rps" field.
func RpsLT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldRps, v))
}

// RpsLTE applies the LTE predicate on the "rps" field.
func RpsLTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldRps, v))
}

// AvgContentLengthEQ applies the EQ predicate on the "avg_content_length" field.
func AvgContentLengthEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldAvgContentLength, v))
}

// AvgContentLengthNEQ applies the NEQ predicate on the "avg_content_length" field.
func AvgContentLengthNEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldAvgContentLength, v))
}

// AvgContentLengthIn applies the In predicate on the "avg_content_length" field.
func AvgContentLengthIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldAvgContentLength, vs...))
}

// AvgContentLengthNotIn applies the NotIn predicate on the "avg_content_length" field.
func AvgContentLengthNotIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldAvgContentLength, vs...))
}

// AvgContentLengthGT applies the GT predicate on the "avg_content_length" field.
func AvgContentLengthGT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldAvgContentLength, v))
}

// AvgContentLengthGTE applies the GTE predicate on the "avg_content_length" field.
func AvgContentLengthGTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldAvgContentLength, v))
}

// AvgContentLengthLT applies the LT predicate on the "avg_content_length" field.
func AvgContentLengthLT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldAvgContentLength, v))
}

// AvgContentLengthLTE applies the LTE predicate on the "avg_content_length" field.
func AvgContentLengthLTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldAvgContentLength, v))
}

// CompletionTpsEQ applies the EQ predicate on the "completion_tps" field.
func CompletionTpsEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldCompletionTps, v))
}

// CompletionTpsNEQ applies the NEQ predicate on the "completion_tps" field.
func CompletionTpsNEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldCompletionTps, v))
}

// CompletionTpsIn applies the In predicate on the "completion_tps" field.
func CompletionTpsIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldCompletionTps, vs...))
}

// CompletionTpsNotIn applies the NotIn predicate on the "completion_tps" field.
func CompletionTpsNotIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldCompletionTps, vs...))
}

// CompletionTpsGT applies the GT predicate on the "completion_tps" field.
func CompletionTpsGT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldCompletionTps, v))
}

// CompletionTpsGTE applies the GTE predicate on the "completion_tps" field.
func CompletionTpsGTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldCompletionTps, v))
}

// CompletionTpsLT applies the LT predicate on the "completion_tps" field.
func CompletionTpsLT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldCompletionTps, v))
}

// CompletionTpsLTE applies the LTE predicate on the "completion_tps" field.
func CompletionTpsLTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldCompletionTps, v))
}

// TotalTpsEQ applies the EQ predicate on the "total_tps" field.
func TotalTpsEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldTotalTps, v))
}

// TotalTpsNEQ applies the NEQ predicate on the "total_tps" field.
func TotalTpsNEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldTotalTps, v))
}

// TotalTpsIn applies the In predicate on the "total_tps" field.
func TotalTpsIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldTotalTps, vs...))
}

// TotalTpsNotIn applies the NotIn predicate on the "total_tps" field.
func TotalTpsNotIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldTotalTps, vs...))
}

// TotalTpsGT applies the GT predicate on the "total_tps" field.
func TotalTpsGT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldTotalTps, v))
}

// TotalTpsGTE applies the GTE predicate on the "total_tps" field.
func TotalTpsGTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldTotalTps, v))
}

// TotalTpsLT applies the LT predicate on the "total_tps" field.
func TotalTpsLT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldTotalTps, v))
}

// TotalTpsLTE applies the LTE predicate on the "total_tps" field.
func TotalTpsLTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldTotalTps, v))
}

// AvgTotalTokensPerReqEQ applies the EQ predicate on the "avg_total_tokens_per_req" field.
func AvgTotalTokensPerReqEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldAvgTotalTokensPerReq, v))
}

// AvgTotalTokensPerReqNEQ applies the NEQ predicate on the "avg_total_tokens_per_req" field.
func AvgTotalTokensPerReqNEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldAvgTotalTokensPerReq, v))
}

// AvgTotalTokensPerReqIn applies the In predicate on the "avg_total_tokens_per_req" field.
func AvgTotalTokensPerReqIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldAvgTotalTokensPerReq, vs...))
}

// AvgTotalTokensPerReqNotIn applies the NotIn predicate on the "avg_total_tokens_per_req" field.
func AvgTotalTokensPerReqNotIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldAvgTotalTokensPerReq, vs...))
}

// AvgTotalTokensPerReqGT applies the GT predicate on the "avg_total_tokens_per_req" field.
func AvgTotalTokensPerReqGT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldAvgTotalTokensPerReq, v))
}

// AvgTotalTokensPerReqGTE applies the GTE predicate on the "avg_total_tokens_per_req" field.
func AvgTotalTokensPerReqGTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldAvgTotalTokensPerReq, v))
}

// AvgTotalTokensPerReqLT applies the LT predicate on the "avg_total_tokens_per_req" field.
func AvgTotalTokensPerReqLT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldAvgTotalTokensPerReq, v))
}

// AvgTotalTokensPerReqLTE applies the LTE predicate on the "avg_total_tokens_per_req" field.
func AvgTotalTokensPerReqLTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldAvgTotalTokensPerReq, v))
}

// AvgCompletionTokensPerReqEQ applies the EQ predicate on the "avg_completion_tokens_per_req" field.
func AvgCompletionTokensPerReqEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldAvgCompletionTokensPerReq, v))
}

// AvgCompletionTokensPerReqNEQ applies the NEQ predicate on the "avg_completion_tokens_per_req" field.
func AvgCompletionTokensPerReqNEQ(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldAvgCompletionTokensPerReq, v))
}

// AvgCompletionTokensPerReqIn applies the In predicate on the "avg_completion_tokens_per_req" field.
func AvgCompletionTokensPerReqIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldAvgCompletionTokensPerReq, vs...))
}

// AvgCompletionTokensPerReqNotIn applies the NotIn predicate on the "avg_completion_tokens_per_req" field.
func AvgCompletionTokensPerReqNotIn(vs ...float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldAvgCompletionTokensPerReq, vs...))
}

// AvgCompletionTokensPerReqGT applies the GT predicate on the "avg_completion_tokens_per_req" field.
func AvgCompletionTokensPerReqGT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldAvgCompletionTokensPerReq, v))
}

// AvgCompletionTokensPerReqGTE applies the GTE predicate on the "avg_completion_tokens_per_req" field.
func AvgCompletionTokensPerReqGTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldAvgCompletionTokensPerReq, v))
}

// AvgCompletionTokensPerReqLT applies the LT predicate on the "avg_completion_tokens_per_req" field.
func AvgCompletionTokensPerReqLT(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldAvgCompletionTokensPerReq, v))
}

// AvgCompletionTokensPerReqLTE applies the LTE predicate on the "avg_completion_tokens_per_req" field.
func AvgCompletionTokensPerReqLTE(v float64) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldAvgCompletionTokensPerReq, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TaskResult {
	return predicate.TaskResult(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.TaskResult {
	return predicate.TaskResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.TaskResult {
	return predicate.TaskResult(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskResult) predicate.TaskResult {
	return predicate.TaskResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskResult) predicate.TaskResult {
	return predicate.TaskResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskResult) predicate.TaskResult {
	return predicate.TaskResult(sql.NotPredicates(p))
}
