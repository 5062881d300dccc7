// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/perfflow/perfflow/ent/schema"
	"github.com/perfflow/perfflow/ent/task"
	"github.com/perfflow/perfflow/ent/taskresult"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescAPIPath is the schema descriptor for api_path field.
	taskDescAPIPath := taskFields[4].Descriptor()
	// task.DefaultAPIPath holds the default value on creation for the api_path field.
	task.DefaultAPIPath = taskDescAPIPath.Default.(string)
	// taskDescStreamMode is the schema descriptor for stream_mode field.
	taskDescStreamMode := taskFields[6].Descriptor()
	// task.DefaultStreamMode holds the default value on creation for the stream_mode field.
	task.DefaultStreamMode = taskDescStreamMode.Default.(string)
	// taskDescConcurrentUsers is the schema descriptor for concurrent_users field.
	taskDescConcurrentUsers := taskFields[7].Descriptor()
	// task.ConcurrentUsersValidator is a validator for the "concurrent_users" field. It is called by the builders before save.
	task.ConcurrentUsersValidator = func() func(int) error {
		validators := taskDescConcurrentUsers.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(concurrent_users int) error {
			for _, fn := range fns {
				if err := fn(concurrent_users); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescSpawnRate is the schema descriptor for spawn_rate field.
	taskDescSpawnRate := taskFields[8].Descriptor()
	// task.SpawnRateValidator is a validator for the "spawn_rate" field. It is called by the builders before save.
	task.SpawnRateValidator = func() func(int) error {
		validators := taskDescSpawnRate.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(spawn_rate int) error {
			for _, fn := range fns {
				if err := fn(spawn_rate); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescDuration is the schema descriptor for duration field.
	taskDescDuration := taskFields[9].Descriptor()
	// task.DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	task.DurationValidator = func() func(int) error {
		validators := taskDescDuration.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(duration int) error {
			for _, fn := range fns {
				if err := fn(duration); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescChatType is the schema descriptor for chat_type field.
	taskDescChatType := taskFields[10].Descriptor()
	// task.DefaultChatType holds the default value on creation for the chat_type field.
	task.DefaultChatType = taskDescChatType.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[19].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[20].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskresultFields := schema.TaskResult{}.Fields()
	_ = taskresultFields
	// taskresultDescMetricType is the schema descriptor for metric_type field.
	taskresultDescMetricType := taskresultFields[1].Descriptor()
	// taskresult.MetricTypeValidator is a validator for the "metric_type" field. It is called by the builders before save.
	taskresult.MetricTypeValidator = taskresultDescMetricType.Validators[0].(func(string) error)
	// taskresultDescNumRequests is the schema descriptor for num_requests field.
	taskresultDescNumRequests := taskresultFields[2].Descriptor()
	// taskresult.DefaultNumRequests holds the default value on creation for the num_requests field.
	taskresult.DefaultNumRequests = taskresultDescNumRequests.Default.(int64)
	// taskresultDescNumFailures is the schema descriptor for num_failures field.
	taskresultDescNumFailures := taskresultFields[3].Descriptor()
	// taskresult.DefaultNumFailures holds the default value on creation for the num_failures field.
	taskresult.DefaultNumFailures = taskresultDescNumFailures.Default.(int64)
	// taskresultDescAvgLatency is the schema descriptor for avg_latency field.
	taskresultDescAvgLatency := taskresultFields[4].Descriptor()
	// taskresult.DefaultAvgLatency holds the default value on creation for the avg_latency field.
	taskresult.DefaultAvgLatency = taskresultDescAvgLatency.Default.(float64)
	// taskresultDescMinLatency is the schema descriptor for min_latency field.
	taskresultDescMinLatency := taskresultFields[5].Descriptor()
	// taskresult.DefaultMinLatency holds the default value on creation for the min_latency field.
	taskresult.DefaultMinLatency = taskresultDescMinLatency.Default.(float64)
	// taskresultDescMaxLatency is the schema descriptor for max_latency field.
	taskresultDescMaxLatency := taskresultFields[6].Descriptor()
	// taskresult.DefaultMaxLatency holds the default value on creation for the max_latency field.
	taskresult.DefaultMaxLatency = taskresultDescMaxLatency.Default.(float64)
	// taskresultDescMedianLatency is the schema descriptor for median_latency field.
	taskresultDescMedianLatency := taskresultFields[7].Descriptor()
	// taskresult.DefaultMedianLatency holds the default value on creation for the median_latency field.
	taskresult.DefaultMedianLatency = taskresultDescMedianLatency.Default.(float64)
	// taskresultDescP90Latency is the schema descriptor for p90_latency field.
	taskresultDescP90Latency := taskresultFields[8].Descriptor()
	// taskresult.DefaultP90Latency holds the default value on creation for the p90_latency field.
	taskresult.DefaultP90Latency = taskresultDescP90Latency.Default.(float64)
	// taskresultDescRps is the schema descriptor for rps field.
	taskresultDescRps := taskresultFields[9].Descriptor()
	// taskresult.DefaultRps holds the default value on creation for the rps field.
	taskresult.DefaultRps = taskresultDescRps.Default.(float64)
	// taskresultDescAvgContentLength is the schema descriptor for avg_content_length field.
	taskresultDescAvgContentLength := taskresultFields[10].Descriptor()
	// taskresult.DefaultAvgContentLength holds the default value on creation for the avg_content_length field.
	taskresult.DefaultAvgContentLength = taskresultDescAvgContentLength.Default.(float64)
	// taskresultDescCompletionTps is the schema descriptor for completion_tps field.
	taskresultDescCompletionTps := taskresultFields[11].Descriptor()
	// taskresult.DefaultCompletionTps holds the default value on creation for the completion_tps field.
	taskresult.DefaultCompletionTps = taskresultDescCompletionTps.Default.(float64)
	// taskresultDescTotalTps is the schema descriptor for total_tps field.
	taskresultDescTotalTps := taskresultFields[12].Descriptor()
	// taskresult.DefaultTotalTps holds the default value on creation for the total_tps field.
	taskresult.DefaultTotalTps = taskresultDescTotalTps.Default.(float64)
	// taskresultDescAvgTotalTokensPerReq is the schema descriptor for avg_total_tokens_per_req field.
	taskresultDescAvgTotalTokensPerReq := taskresultFields[13].Descriptor()
	// taskresult.DefaultAvgTotalTokensPerReq holds the default value on creation for the avg_total_tokens_per_req field.
	taskresult.DefaultAvgTotalTokensPerReq = taskresultDescAvgTotalTokensPerReq.Default.(float64)
	// taskresultDescAvgCompletionTokensPerReq is the schema descriptor for avg_completion_tokens_per_req field.
	taskresultDescAvgCompletionTokensPerReq := taskresultFields[14].Descriptor()
	// taskresult.DefaultAvgCompletionTokensPerReq holds the default value on creation for the avg_completion_tokens_per_req field.
	taskresult.DefaultAvgCompletionTokensPerReq = taskresultDescAvgCompletionTokensPerReq.Default.(float64)
	// taskresultDescCreatedAt is the schema descriptor for created_at field.
	taskresultDescCreatedAt := taskresultFields[15].Descriptor()
	// taskresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskresult.DefaultCreatedAt = taskresultDescCreatedAt.Default.(func() time.Time)
	// taskresultDescUpdatedAt is the schema descriptor for updated_at field.
	taskresultDescUpdatedAt := taskresultFields[16].Descriptor()
	// taskresult.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	taskresult.DefaultUpdatedAt = taskresultDescUpdatedAt.Default.(func() time.Time)
	// taskresult.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	taskresult.UpdateDefaultUpdatedAt = taskresultDescUpdatedAt.UpdateDefault.(func() time.Time)
}
