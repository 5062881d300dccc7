package loadgen

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/perfflow/perfflow/pkg/coordinator"
	"github.com/perfflow/perfflow/pkg/stats"
)

// Aggregator owns one worker process's counters and produces bus snapshots
// with a monotonic request_id.
type Aggregator struct {
	counters *Counters
	stats    *stats.Store
	workerID string
	pid      int
	seq      atomic.Int64
}

// NewAggregator derives the canonical worker identity "<pid>_<start_ms>";
// PIDs alone can be reused across the run.
func NewAggregator(counters *Counters, st *stats.Store) *Aggregator {
	pid := os.Getpid()
	return &Aggregator{
		counters: counters,
		stats:    st,
		workerID: fmt.Sprintf("%d_%d", pid, time.Now().UnixMilli()),
		pid:      pid,
	}
}

func (a *Aggregator) WorkerID() string {
	return a.workerID
}

// Snapshot drains the counter queue and returns the worker's cumulative
// state, including its per-endpoint distributions.
func (a *Aggregator) Snapshot() coordinator.Snapshot {
	requests, completion, total := a.counters.Drain()
	return coordinator.Snapshot{
		WorkerID:         a.workerID,
		PID:              a.pid,
		RequestID:        fmt.Sprintf("%s_%d", a.workerID, a.seq.Add(1)),
		Timestamp:        time.Now().UnixMilli(),
		RequestCount:     requests,
		CompletionTokens: completion,
		TotalTokens:      total,
		Endpoints:        a.stats.Export(),
	}
}
