package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RecordAndReport(t *testing.T) {
	s := NewStore()
	s.RecordSuccess("chat_completions", 100, 50)
	s.RecordSuccess("chat_completions", 200, 150)
	s.RecordFailure("chat_completions", 300, 0)

	reports := s.Reports(10)
	require.Len(t, reports, 1)
	r := reports[0]

	assert.Equal(t, "chat_completions", r.Name)
	assert.Equal(t, int64(3), r.NumRequests)
	assert.Equal(t, int64(1), r.NumFailures)
	assert.InDelta(t, 200.0, r.AvgLatency, 0.001)
	assert.Equal(t, 100.0, r.MinLatency)
	assert.Equal(t, 300.0, r.MaxLatency)
	assert.InDelta(t, 200.0, r.MedianLatency, 0.001)
	assert.InDelta(t, 0.3, r.RPS, 0.001)
	assert.InDelta(t, 66.666, r.AvgContentLength, 0.01)
	assert.Equal(t, int64(1), s.TotalFailures())
}

func TestStore_ReportsSortedByName(t *testing.T) {
	s := NewStore()
	s.RecordSuccess("token_metrics", 1, 0)
	s.RecordSuccess("chat_completions", 1, 0)

	reports := s.Reports(1)
	require.Len(t, reports, 2)
	assert.Equal(t, "chat_completions", reports[0].Name)
	assert.Equal(t, "token_metrics", reports[1].Name)
}

func TestStore_MergeCombinesWorkers(t *testing.T) {
	w1 := NewStore()
	w1.RecordSuccess("chat_completions", 100, 10)
	w1.RecordFailure("chat_completions", 400, 0)

	w2 := NewStore()
	w2.RecordSuccess("chat_completions", 50, 30)
	w2.RecordSuccess("chat_completions", 250, 30)

	master := NewStore()
	master.Merge(w1.Export())
	master.Merge(w2.Export())

	reports := master.Reports(0)
	require.Len(t, reports, 1)
	r := reports[0]
	assert.Equal(t, int64(4), r.NumRequests)
	assert.Equal(t, int64(1), r.NumFailures)
	assert.Equal(t, 50.0, r.MinLatency)
	assert.Equal(t, 400.0, r.MaxLatency)
	assert.InDelta(t, 200.0, r.AvgLatency, 0.001)
	assert.Equal(t, int64(1), master.TotalFailures())
}

func TestStore_MergeEmptyEndpointKeepsMin(t *testing.T) {
	master := NewStore()
	master.RecordSuccess("chat_completions", 75, 0)
	master.Merge([]Endpoint{{Name: "chat_completions"}})

	r := master.Reports(0)[0]
	assert.Equal(t, 75.0, r.MinLatency)
	assert.Equal(t, int64(1), r.NumRequests)
}

func TestPercentile_Interpolates(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}
	assert.InDelta(t, 30.0, percentile(sorted, 50), 0.001)
	assert.InDelta(t, 46.0, percentile(sorted, 90), 0.001)
	assert.Equal(t, 50.0, percentile(sorted, 100))
	assert.Equal(t, 10.0, percentile(sorted, 0))
	assert.Equal(t, 7.0, percentile([]float64{7}, 90))
	assert.Equal(t, 0.0, percentile(nil, 50))
}

func TestReservoir_CapsSamples(t *testing.T) {
	e := &Endpoint{Name: "x"}
	for i := 0; i < maxSamples+500; i++ {
		e.addSample(float64(i))
	}
	assert.Len(t, e.Samples, maxSamples)
}
