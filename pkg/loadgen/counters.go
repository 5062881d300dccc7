// Package loadgen hosts the load-generation runtime: virtual users, the
// per-worker counters and emitter, the worker aggregator, and the master
// run loop that writes the run snapshot file.
package loadgen

import "sync"

type tokenPair struct {
	completion int64
	total      int64
}

// Counters collects per-worker request and token tallies. Token pushes
// queue up; the queue is folded into the running totals exactly once per
// snapshot drain.
type Counters struct {
	mu               sync.Mutex
	pending          []tokenPair
	requestCount     int64
	completionTokens int64
	totalTokens      int64
}

func NewCounters() *Counters {
	return &Counters{}
}

// Push records the token outcome of one completed request.
func (c *Counters) Push(completion, total int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requestCount++
	c.pending = append(c.pending, tokenPair{completion: completion, total: total})
}

// Drain folds the queued pairs into the cumulative totals and returns them.
func (c *Counters) Drain() (requests, completion, total int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.pending {
		c.completionTokens += p.completion
		c.totalTokens += p.total
	}
	c.pending = c.pending[:0]
	return c.requestCount, c.completionTokens, c.totalTokens
}
