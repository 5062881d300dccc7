package api

import (
	"time"

	"github.com/perfflow/perfflow/ent"
)

// TaskResponse is the wire form of a task record.
type TaskResponse struct {
	ID              string    `json:"task_id"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
	TargetHost      string    `json:"target_host"`
	APIPath         string    `json:"api_path"`
	Model           string    `json:"model,omitempty"`
	StreamMode      string    `json:"stream_mode"`
	ConcurrentUsers int       `json:"concurrent_users"`
	SpawnRate       int       `json:"spawn_rate"`
	Duration        int       `json:"duration"`
	ChatType        int       `json:"chat_type"`
	TestData        string    `json:"test_data,omitempty"`
	ErrorMessage    string    `json:"error_message,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toTaskResponse(t *ent.Task) TaskResponse {
	return TaskResponse{
		ID:              t.ID,
		Name:            t.Name,
		Status:          string(t.Status),
		TargetHost:      t.TargetHost,
		APIPath:         t.APIPath,
		Model:           t.Model,
		StreamMode:      t.StreamMode,
		ConcurrentUsers: t.ConcurrentUsers,
		SpawnRate:       t.SpawnRate,
		Duration:        t.Duration,
		ChatType:        t.ChatType,
		TestData:        t.TestData,
		ErrorMessage:    t.ErrorMessage,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// TaskResultResponse is the wire form of one persisted metric row.
type TaskResultResponse struct {
	ID                        int       `json:"id"`
	TaskID                    string    `json:"task_id"`
	MetricType                string    `json:"metric_type"`
	NumRequests               int64     `json:"num_requests"`
	NumFailures               int64     `json:"num_failures"`
	AvgLatency                float64   `json:"avg_latency"`
	MinLatency                float64   `json:"min_latency"`
	MaxLatency                float64   `json:"max_latency"`
	MedianLatency             float64   `json:"median_latency"`
	P90Latency                float64   `json:"p90_latency"`
	RPS                       float64   `json:"rps"`
	AvgContentLength          float64   `json:"avg_content_length"`
	CompletionTPS             float64   `json:"completion_tps"`
	TotalTPS                  float64   `json:"total_tps"`
	AvgTotalTokensPerReq      float64   `json:"avg_total_tokens_per_req"`
	AvgCompletionTokensPerReq float64   `json:"avg_completion_tokens_per_req"`
	CreatedAt                 time.Time `json:"created_at"`
}

func toTaskResultResponse(r *ent.TaskResult) TaskResultResponse {
	return TaskResultResponse{
		ID:                        r.ID,
		TaskID:                    r.TaskID,
		MetricType:                r.MetricType,
		NumRequests:               r.NumRequests,
		NumFailures:               r.NumFailures,
		AvgLatency:                r.AvgLatency,
		MinLatency:                r.MinLatency,
		MaxLatency:                r.MaxLatency,
		MedianLatency:             r.MedianLatency,
		P90Latency:                r.P90Latency,
		RPS:                       r.Rps,
		AvgContentLength:          r.AvgContentLength,
		CompletionTPS:             r.CompletionTps,
		TotalTPS:                  r.TotalTps,
		AvgTotalTokensPerReq:      r.AvgTotalTokensPerReq,
		AvgCompletionTokensPerReq: r.AvgCompletionTokensPerReq,
		CreatedAt:                 r.CreatedAt,
	}
}
