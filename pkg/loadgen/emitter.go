package loadgen

import (
	"log/slog"

	"github.com/perfflow/perfflow/pkg/stats"
)

// Emitter records request outcomes into the worker's stats store and token
// counters. It also satisfies the stream parser's timing sink: each timing
// metric becomes its own endpoint entry, so latency rows like
// Time_to_first_output_token aggregate exactly like request rows.
type Emitter struct {
	stats    *stats.Store
	counters *Counters
	logger   *slog.Logger
}

func NewEmitter(st *stats.Store, counters *Counters, logger *slog.Logger) *Emitter {
	return &Emitter{stats: st, counters: counters, logger: logger}
}

// RecordSuccess registers one successful request under name.
func (e *Emitter) RecordSuccess(name string, responseTimeMs float64, responseLength int64) {
	e.stats.RecordSuccess(name, responseTimeMs, responseLength)
}

// RecordFailure registers one failed request under name.
func (e *Emitter) RecordFailure(name string, responseTimeMs float64, responseLength int64, cause error) {
	e.stats.RecordFailure(name, responseTimeMs, responseLength)
	e.logger.Warn("Request failed", "name", name, "error", cause)
}

// EmitTiming implements sse.Emitter.
func (e *Emitter) EmitTiming(name string, ms float64) {
	e.stats.RecordSuccess(name, ms, 0)
}

// PushTokens forwards a completed request's token counts to the counters.
func (e *Emitter) PushTokens(completion, total int64) {
	e.counters.Push(completion, total)
}
