// Package results promotes a finished run's snapshot into task_results
// rows.
package results

import (
	"context"
	"fmt"

	"github.com/perfflow/perfflow/ent"
	"github.com/perfflow/perfflow/pkg/loadgen"
)

// TokenMetricType marks the single aggregated-token row of a task.
const TokenMetricType = "token_metrics"

// Writer persists run snapshots.
type Writer struct {
	client *ent.Client
}

func NewWriter(client *ent.Client) *Writer {
	return &Writer{client: client}
}

// Persist inserts one row per endpoint entry plus the token_metrics row, in
// a single transaction. Any failure rolls back everything.
func (w *Writer) Persist(ctx context.Context, taskID string, snap *loadgen.RunSnapshot) error {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("starting results transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, row := range snap.LocustStats {
		if err := tx.TaskResult.Create().
			SetTaskID(taskID).
			SetMetricType(row.MetricType).
			SetNumRequests(row.NumRequests).
			SetNumFailures(row.NumFailures).
			SetAvgLatency(row.AvgLatency).
			SetMinLatency(row.MinLatency).
			SetMaxLatency(row.MaxLatency).
			SetMedianLatency(row.MedianLatency).
			SetP90Latency(row.P90Latency).
			SetRps(row.RPS).
			SetAvgContentLength(row.AvgContentLength).
			Exec(ctx); err != nil {
			return fmt.Errorf("inserting %s row for task %s: %w", row.MetricType, taskID, err)
		}
	}

	cm := snap.CustomMetrics
	if err := tx.TaskResult.Create().
		SetTaskID(taskID).
		SetMetricType(TokenMetricType).
		SetNumRequests(cm.ReqsNum).
		SetRps(cm.ReqThroughput).
		SetCompletionTps(cm.CompletionTPS).
		SetTotalTps(cm.TotalTPS).
		SetAvgTotalTokensPerReq(cm.AvgTotalTokensPerReq).
		SetAvgCompletionTokensPerReq(cm.AvgCompletionTokensPerReq).
		Exec(ctx); err != nil {
		return fmt.Errorf("inserting token_metrics row for task %s: %w", taskID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing results for task %s: %w", taskID, err)
	}
	return nil
}
