package results

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfflow/perfflow/ent/taskresult"
	"github.com/perfflow/perfflow/pkg/loadgen"
	testdb "github.com/perfflow/perfflow/test/database"
)

func TestWriter_PersistsEndpointAndTokenRows(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	taskID := uuid.New().String()
	_, err := client.Task.Create().
		SetID(taskID).
		SetName("persist test").
		SetTargetHost("http://localhost:9999").
		SetConcurrentUsers(10).
		SetSpawnRate(2).
		SetDuration(60).
		Save(ctx)
	require.NoError(t, err)

	snap := &loadgen.RunSnapshot{
		CustomMetrics: loadgen.CustomMetrics{
			ReqsNum:                   200,
			ReqThroughput:             3.3,
			CompletionTPS:             120.5,
			TotalTPS:                  150.25,
			AvgTotalTokensPerReq:      45.5,
			AvgCompletionTokensPerReq: 36.4,
		},
		LocustStats: []loadgen.StatRow{
			{
				TaskID: taskID, MetricType: "chat_completions",
				NumRequests: 200, NumFailures: 3,
				AvgLatency: 812.5, MinLatency: 120, MaxLatency: 4100,
				MedianLatency: 790, P90Latency: 1900,
				AvgContentLength: 2048, RPS: 3.3,
			},
			{
				TaskID: taskID, MetricType: "Time_to_first_output_token",
				NumRequests: 197, AvgLatency: 210.4, MinLatency: 95,
				MaxLatency: 880, MedianLatency: 198, P90Latency: 420,
			},
		},
	}

	writer := NewWriter(client.Client)
	require.NoError(t, writer.Persist(ctx, taskID, snap))

	rows, err := client.TaskResult.Query().
		Where(taskresult.TaskIDEQ(taskID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byType := map[string]int{}
	for _, r := range rows {
		byType[r.MetricType]++
	}
	assert.Equal(t, 1, byType["chat_completions"])
	assert.Equal(t, 1, byType["Time_to_first_output_token"])
	assert.Equal(t, 1, byType[TokenMetricType])

	token, err := client.TaskResult.Query().
		Where(taskresult.TaskIDEQ(taskID), taskresult.MetricTypeEQ(TokenMetricType)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(200), token.NumRequests)
	assert.InDelta(t, 3.3, token.Rps, 1e-9)
	assert.InDelta(t, 120.5, token.CompletionTps, 1e-9)
	assert.InDelta(t, 150.25, token.TotalTps, 1e-9)
	assert.InDelta(t, 45.5, token.AvgTotalTokensPerReq, 1e-9)
	assert.InDelta(t, 36.4, token.AvgCompletionTokensPerReq, 1e-9)

	endpoint, err := client.TaskResult.Query().
		Where(taskresult.TaskIDEQ(taskID), taskresult.MetricTypeEQ("chat_completions")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), endpoint.NumFailures)
	assert.InDelta(t, 790.0, endpoint.MedianLatency, 1e-9)
	assert.InDelta(t, 1900.0, endpoint.P90Latency, 1e-9)
}

func TestWriter_RollsBackOnBadRow(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	taskID := uuid.New().String()
	_, err := client.Task.Create().
		SetID(taskID).
		SetName("rollback test").
		SetTargetHost("http://localhost:9999").
		SetConcurrentUsers(5).
		SetSpawnRate(1).
		SetDuration(30).
		Save(ctx)
	require.NoError(t, err)

	// metric_type is required; the empty value fails validation and must
	// roll back the already-inserted first row.
	snap := &loadgen.RunSnapshot{
		LocustStats: []loadgen.StatRow{
			{TaskID: taskID, MetricType: "chat_completions", NumRequests: 10},
			{TaskID: taskID, MetricType: "", NumRequests: 1},
		},
	}

	writer := NewWriter(client.Client)
	err = writer.Persist(ctx, taskID, snap)
	require.Error(t, err)

	count, err := client.TaskResult.Query().
		Where(taskresult.TaskIDEQ(taskID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
