// Package stats maintains per-endpoint latency distributions: running
// count/sum/min/max plus a bounded sample reservoir for median and p90.
// Stores merge commutatively, so worker stores can be folded into the
// master's store in any order.
package stats

import (
	"math/rand/v2"
	"sort"
	"sync"
)

// maxSamples bounds the per-endpoint reservoir used for quantiles.
const maxSamples = 10000

// Endpoint is the serializable state of one endpoint's distribution. It is
// both the wire form shipped from workers and the unit of merging.
type Endpoint struct {
	Name               string    `json:"name"`
	NumRequests        int64     `json:"num_requests"`
	NumFailures        int64     `json:"num_failures"`
	Sum                float64   `json:"sum"`
	Min                float64   `json:"min"`
	Max                float64   `json:"max"`
	TotalContentLength int64     `json:"total_content_length"`
	Samples            []float64 `json:"samples"`

	seen int64 // reservoir bookkeeping, local only
}

// Report is the computed view of one endpoint used for snapshots and
// persisted rows.
type Report struct {
	Name             string  `json:"name"`
	NumRequests      int64   `json:"num_requests"`
	NumFailures      int64   `json:"num_failures"`
	AvgLatency       float64 `json:"avg_latency"`
	MinLatency       float64 `json:"min_latency"`
	MaxLatency       float64 `json:"max_latency"`
	MedianLatency    float64 `json:"median_latency"`
	P90Latency       float64 `json:"p90_latency"`
	RPS              float64 `json:"rps"`
	AvgContentLength float64 `json:"avg_content_length"`
}

// Store accumulates endpoint distributions. Safe for concurrent use.
type Store struct {
	mu            sync.Mutex
	endpoints     map[string]*Endpoint
	totalFailures int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{endpoints: make(map[string]*Endpoint)}
}

// RecordSuccess adds one successful observation for name.
func (s *Store) RecordSuccess(name string, responseTimeMs float64, responseLength int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(name).observe(responseTimeMs, responseLength, false)
}

// RecordFailure adds one failed observation for name and bumps the global
// failure counter.
func (s *Store) RecordFailure(name string, responseTimeMs float64, responseLength int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(name).observe(responseTimeMs, responseLength, true)
	s.totalFailures++
}

// TotalFailures returns the number of failed observations across endpoints.
func (s *Store) TotalFailures() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalFailures
}

// Merge folds serialized endpoint states (typically from a worker) into the
// store: counters sum, min/max extend, samples append into the reservoir.
func (s *Store) Merge(endpoints []Endpoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range endpoints {
		in := &endpoints[i]
		e := s.entry(in.Name)
		if e.NumRequests == 0 || (in.NumRequests > 0 && in.Min < e.Min) {
			if in.NumRequests > 0 {
				e.Min = in.Min
			}
		}
		if in.Max > e.Max {
			e.Max = in.Max
		}
		e.NumRequests += in.NumRequests
		e.NumFailures += in.NumFailures
		e.Sum += in.Sum
		e.TotalContentLength += in.TotalContentLength
		for _, v := range in.Samples {
			e.addSample(v)
		}
		s.totalFailures += in.NumFailures
	}
}

// Export returns the serializable endpoint states for shipping to a master.
func (s *Store) Export() []Endpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Endpoint, 0, len(s.endpoints))
	for _, e := range s.endpoints {
		cp := *e
		cp.Samples = append([]float64(nil), e.Samples...)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Reports computes the endpoint views. elapsedSec scales the RPS column.
func (s *Store) Reports(elapsedSec float64) []Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Report, 0, len(s.endpoints))
	for _, e := range s.endpoints {
		out = append(out, e.report(elapsedSec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Store) entry(name string) *Endpoint {
	e, ok := s.endpoints[name]
	if !ok {
		e = &Endpoint{Name: name}
		s.endpoints[name] = e
	}
	return e
}

func (e *Endpoint) observe(responseTimeMs float64, responseLength int64, failed bool) {
	if e.NumRequests == 0 || responseTimeMs < e.Min {
		e.Min = responseTimeMs
	}
	if responseTimeMs > e.Max {
		e.Max = responseTimeMs
	}
	e.NumRequests++
	if failed {
		e.NumFailures++
	}
	e.Sum += responseTimeMs
	e.TotalContentLength += responseLength
	e.addSample(responseTimeMs)
}

// addSample keeps a uniform reservoir of at most maxSamples observations.
func (e *Endpoint) addSample(v float64) {
	e.seen++
	if len(e.Samples) < maxSamples {
		e.Samples = append(e.Samples, v)
		return
	}
	if idx := rand.Int64N(e.seen); idx < int64(maxSamples) {
		e.Samples[idx] = v
	}
}

func (e *Endpoint) report(elapsedSec float64) Report {
	r := Report{
		Name:        e.Name,
		NumRequests: e.NumRequests,
		NumFailures: e.NumFailures,
		MinLatency:  e.Min,
		MaxLatency:  e.Max,
	}
	if e.NumRequests > 0 {
		r.AvgLatency = e.Sum / float64(e.NumRequests)
		r.AvgContentLength = float64(e.TotalContentLength) / float64(e.NumRequests)
	}
	if elapsedSec > 0 {
		r.RPS = float64(e.NumRequests) / elapsedSec
	}
	if len(e.Samples) > 0 {
		sorted := append([]float64(nil), e.Samples...)
		sort.Float64s(sorted)
		r.MedianLatency = percentile(sorted, 50)
		r.P90Latency = percentile(sorted, 90)
	}
	return r
}

// percentile interpolates the p-th percentile over sorted values.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	index := (p / 100.0) * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
