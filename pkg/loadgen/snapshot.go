package loadgen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/perfflow/perfflow/pkg/stats"
)

const snapshotTimeLayout = "2006-01-02 15:04:05"

// CustomMetrics is the aggregated token block of the run snapshot.
type CustomMetrics struct {
	ReqsNum                   int64   `json:"reqs_num"`
	ReqThroughput             float64 `json:"req_throughput"`
	CompletionTPS             float64 `json:"completion_tps"`
	TotalTPS                  float64 `json:"total_tps"`
	AvgTotalTokensPerReq      float64 `json:"avg_total_tokens_per_req"`
	AvgCompletionTokensPerReq float64 `json:"avg_completion_tokens_per_req"`
}

// StatRow is one per-endpoint line of the run snapshot.
type StatRow struct {
	TaskID           string  `json:"task_id"`
	MetricType       string  `json:"metric_type"`
	NumRequests      int64   `json:"num_requests"`
	NumFailures      int64   `json:"num_failures"`
	AvgLatency       float64 `json:"avg_latency"`
	MinLatency       float64 `json:"min_latency"`
	MaxLatency       float64 `json:"max_latency"`
	MedianLatency    float64 `json:"median_latency"`
	P90Latency       float64 `json:"p90_latency"`
	AvgContentLength float64 `json:"avg_content_length"`
	RPS              float64 `json:"rps"`
	CreatedAt        string  `json:"created_at"`
}

// RunSnapshot is the aggregate JSON the master leaves behind for the engine
// to promote into the task store.
type RunSnapshot struct {
	CustomMetrics CustomMetrics `json:"custom_metrics"`
	LocustStats   []StatRow     `json:"locust_stats"`
}

// ResultPath returns the snapshot location for a task:
// <tmpdir>/locust_result/<task_id>/result.json.
func ResultPath(taskID string) string {
	return filepath.Join(os.TempDir(), "locust_result", taskID, "result.json")
}

// BuildRunSnapshot assembles the snapshot from the master's aggregated
// stats and run totals.
func BuildRunSnapshot(taskID string, reports []stats.Report,
	requests, completionTokens, totalTokens int64, elapsed time.Duration) RunSnapshot {

	cm := CustomMetrics{ReqsNum: requests}
	if sec := elapsed.Seconds(); sec > 0 {
		cm.ReqThroughput = float64(requests) / sec
		cm.CompletionTPS = float64(completionTokens) / sec
		cm.TotalTPS = float64(totalTokens) / sec
	}
	if requests > 0 {
		cm.AvgTotalTokensPerReq = float64(totalTokens) / float64(requests)
		cm.AvgCompletionTokensPerReq = float64(completionTokens) / float64(requests)
	}

	createdAt := time.Now().Format(snapshotTimeLayout)
	rows := make([]StatRow, 0, len(reports))
	for _, rep := range reports {
		rows = append(rows, StatRow{
			TaskID:           taskID,
			MetricType:       rep.Name,
			NumRequests:      rep.NumRequests,
			NumFailures:      rep.NumFailures,
			AvgLatency:       rep.AvgLatency,
			MinLatency:       rep.MinLatency,
			MaxLatency:       rep.MaxLatency,
			MedianLatency:    rep.MedianLatency,
			P90Latency:       rep.P90Latency,
			AvgContentLength: rep.AvgContentLength,
			RPS:              rep.RPS,
			CreatedAt:        createdAt,
		})
	}
	return RunSnapshot{CustomMetrics: cm, LocustStats: rows}
}

// WriteSnapshot persists the snapshot for taskID, creating the directory as
// needed. The write goes through a temp file so the engine never reads a
// partial snapshot.
func WriteSnapshot(taskID string, snap RunSnapshot) error {
	path := ResultPath(taskID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return os.Rename(tmp, path)
}

// ReadSnapshot loads the snapshot for taskID.
func ReadSnapshot(taskID string) (*RunSnapshot, error) {
	raw, err := os.ReadFile(ResultPath(taskID))
	if err != nil {
		return nil, err
	}
	var snap RunSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot for task %s: %w", taskID, err)
	}
	return &snap, nil
}
