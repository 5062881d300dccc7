package loadgen

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/perfflow/perfflow/pkg/httpx"
	"github.com/perfflow/perfflow/pkg/payload"
	"github.com/perfflow/perfflow/pkg/runcfg"
	"github.com/perfflow/perfflow/pkg/stats"
	"github.com/perfflow/perfflow/pkg/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func testConfig(t *testing.T, host string, f func(*runcfg.Flags)) *runcfg.Config {
	t.Helper()
	flags := runcfg.Flags{
		TaskID:     uuid.NewString(),
		Host:       host,
		ModelName:  "M",
		StreamMode: true,
		Users:      1,
		SpawnRate:  1,
		RunTime:    2,
	}
	if f != nil {
		f(&flags)
	}
	cfg, err := flags.Build()
	require.NoError(t, err)
	return cfg
}

func testUser(t *testing.T, cfg *runcfg.Config) (*User, *stats.Store, *Counters) {
	t.Helper()
	client, err := httpx.NewClient(cfg)
	require.NoError(t, err)
	store := stats.NewStore()
	counters := NewCounters()
	emitter := NewEmitter(store, counters, testLogger())
	return NewUser(cfg, client, payload.NewBuilder(cfg), nil, tokenizer.NewRegistry(), emitter, testLogger()), store, counters
}

func sseHandler(chunks ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		for _, c := range chunks {
			fmt.Fprintf(w, "data: %s\n\n", c)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}
}

func TestCounters_DrainFoldsQueueOnce(t *testing.T) {
	c := NewCounters()
	c.Push(10, 15)
	c.Push(20, 25)

	reqs, completion, total := c.Drain()
	assert.Equal(t, int64(2), reqs)
	assert.Equal(t, int64(30), completion)
	assert.Equal(t, int64(40), total)

	// Nothing queued: totals are stable.
	reqs, completion, total = c.Drain()
	assert.Equal(t, int64(2), reqs)
	assert.Equal(t, int64(30), completion)
	assert.Equal(t, int64(40), total)

	c.Push(5, 5)
	reqs, completion, total = c.Drain()
	assert.Equal(t, int64(3), reqs)
	assert.Equal(t, int64(35), completion)
	assert.Equal(t, int64(45), total)
}

func TestAggregator_MonotonicRequestIDs(t *testing.T) {
	agg := NewAggregator(NewCounters(), stats.NewStore())

	s1 := agg.Snapshot()
	s2 := agg.Snapshot()
	assert.Equal(t, agg.WorkerID(), s1.WorkerID)
	assert.Equal(t, os.Getpid(), s1.PID)
	assert.NotEqual(t, s1.RequestID, s2.RequestID)
	assert.Equal(t, fmt.Sprintf("%s_1", agg.WorkerID()), s1.RequestID)
	assert.Equal(t, fmt.Sprintf("%s_2", agg.WorkerID()), s2.RequestID)
}

func TestUser_StreamHappyPath(t *testing.T) {
	srv := httptest.NewServer(sseHandler(
		`{"choices":[{"delta":{"content":"a"}}]}`,
		`{"choices":[{"delta":{"content":"a"}}]}`,
		`{"choices":[{"delta":{"content":"a"}}]}`,
	))
	defer srv.Close()

	cfg := testConfig(t, srv.URL, nil)
	user, store, counters := testUser(t, cfg)
	user.runOnce(context.Background())

	reports := store.Reports(1)
	byName := map[string]stats.Report{}
	for _, r := range reports {
		byName[r.Name] = r
	}

	chat := byName["chat_completions"]
	assert.Equal(t, int64(1), chat.NumRequests)
	assert.Equal(t, int64(0), chat.NumFailures)
	assert.Equal(t, int64(1), byName["Time_to_first_output_token"].NumRequests)
	assert.Equal(t, int64(1), byName["Time_to_output_completion"].NumRequests)
	assert.Equal(t, int64(1), byName["Total_time"].NumRequests)
	// Content "aaa" counted, not zero.
	reqs, completion, _ := counters.Drain()
	assert.Equal(t, int64(1), reqs)
	assert.Greater(t, completion, int64(0))
}

func TestUser_UsageOverridesTokenCounting(t *testing.T) {
	srv := httptest.NewServer(sseHandler(
		`{"choices":[{"delta":{"content":"a"}}]}`,
		`{"choices":[{"delta":{"content":""}}],"usage":{"prompt_tokens":4,"completion_tokens":214,"total_tokens":218}}`,
	))
	defer srv.Close()

	cfg := testConfig(t, srv.URL, nil)
	user, _, counters := testUser(t, cfg)
	user.runOnce(context.Background())

	_, completion, total := counters.Drain()
	assert.Equal(t, int64(214), completion)
	assert.Equal(t, int64(218), total)
}

func TestUser_HTTPFailureIsIsolated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL, nil)
	user, store, counters := testUser(t, cfg)
	user.runOnce(context.Background())
	user.runOnce(context.Background())

	assert.Equal(t, int64(2), store.TotalFailures())
	reqs, completion, total := counters.Drain()
	assert.Zero(t, reqs)
	assert.Zero(t, completion)
	assert.Zero(t, total)
}

func TestUser_RunEndCancellationIsNotAFailure(t *testing.T) {
	// The server streams one chunk and then holds the connection open, so
	// the request is still in flight when the run duration expires.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"a\"}}]}\n\n")
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		<-r.Context().Done()
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL, nil)
	user, store, _ := testUser(t, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	user.Run(ctx)

	assert.Zero(t, store.TotalFailures())
}

func TestUser_NonStreamResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"choices":[{"message":{"content":"hello world"}}],"usage":{"prompt_tokens":3,"completion_tokens":2,"total_tokens":5}}`)
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL, func(f *runcfg.Flags) {
		f.StreamMode = false
	})
	user, store, counters := testUser(t, cfg)
	user.runOnce(context.Background())

	reports := store.Reports(1)
	byName := map[string]stats.Report{}
	for _, r := range reports {
		byName[r.Name] = r
	}
	assert.Equal(t, int64(1), byName["chat_completions"].NumRequests)
	assert.Equal(t, int64(1), byName["Total_time"].NumRequests)
	_, ok := byName["Time_to_first_output_token"]
	assert.False(t, ok)

	_, completion, total := counters.Drain()
	assert.Equal(t, int64(2), completion)
	assert.Equal(t, int64(5), total)
}

func TestBuildRunSnapshot_DerivedFields(t *testing.T) {
	reports := []stats.Report{{Name: "chat_completions", NumRequests: 2000}}
	snap := BuildRunSnapshot("task-1", reports, 2000, 20000, 24000, 20*time.Second)

	cm := snap.CustomMetrics
	assert.Equal(t, int64(2000), cm.ReqsNum)
	assert.InDelta(t, 100.0, cm.ReqThroughput, 0.001)
	assert.InDelta(t, 1000.0, cm.CompletionTPS, 0.001)
	assert.InDelta(t, 1200.0, cm.TotalTPS, 0.001)
	assert.InDelta(t, 10.0, cm.AvgCompletionTokensPerReq, 0.001)
	assert.InDelta(t, 12.0, cm.AvgTotalTokensPerReq, 0.001)

	require.Len(t, snap.LocustStats, 1)
	assert.Equal(t, "task-1", snap.LocustStats[0].TaskID)
	assert.Equal(t, "chat_completions", snap.LocustStats[0].MetricType)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, snap.LocustStats[0].CreatedAt)
}

func TestBuildRunSnapshot_ZeroRequestsNoDivide(t *testing.T) {
	snap := BuildRunSnapshot("t", nil, 0, 0, 0, 0)
	assert.Zero(t, snap.CustomMetrics.AvgTotalTokensPerReq)
	assert.Zero(t, snap.CustomMetrics.CompletionTPS)
}

func TestSnapshotFileRoundTrip(t *testing.T) {
	taskID := uuid.NewString()
	t.Cleanup(func() {
		os.RemoveAll(filepath.Dir(ResultPath(taskID)))
	})

	in := BuildRunSnapshot(taskID, []stats.Report{{Name: "custom_api", NumRequests: 7}}, 7, 70, 90, time.Second)
	require.NoError(t, WriteSnapshot(taskID, in))

	out, err := ReadSnapshot(taskID)
	require.NoError(t, err)
	assert.Equal(t, in.CustomMetrics, out.CustomMetrics)
	require.Len(t, out.LocustStats, 1)
	assert.Equal(t, int64(7), out.LocustStats[0].NumRequests)
}

func TestReadSnapshot_MissingFile(t *testing.T) {
	_, err := ReadSnapshot(uuid.NewString())
	assert.Error(t, err)
}

func TestRunSingle_WritesSnapshotAndReportsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL, func(f *runcfg.Flags) {
		f.RunTime = 1
	})
	t.Cleanup(func() {
		os.RemoveAll(filepath.Dir(ResultPath(cfg.TaskID)))
	})

	runner := NewRunner(cfg, testLogger())
	failed, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, failed)

	snap, err := ReadSnapshot(cfg.TaskID)
	require.NoError(t, err)
	assert.Zero(t, snap.CustomMetrics.ReqsNum)
}
