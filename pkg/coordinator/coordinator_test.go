package coordinator

import (
	"bytes"
	"fmt"
	"log/slog"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()
	return port
}

func TestFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := Message{
		Kind:     KindWorkerCustomMetrics,
		WorkerID: "100_1700000000000",
		Snapshot: &Snapshot{
			WorkerID:         "100_1700000000000",
			PID:              100,
			RequestID:        "100_1700000000000_1",
			RequestCount:     42,
			CompletionTokens: 500,
			TotalTokens:      600,
		},
	}
	require.NoError(t, WriteFrame(&buf, in))

	out, err := ReadFrame(&buf)
	require.NoError(t, err)
	assert.Equal(t, in.Kind, out.Kind)
	require.NotNil(t, out.Snapshot)
	assert.Equal(t, int64(42), out.Snapshot.RequestCount)
}

func TestReadFrame_RejectsOversizedFrame(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0xff, 0xff, 0xff, 0xff})
	_, err := ReadFrame(buf)
	assert.Error(t, err)
}

func TestMaster_DeduplicatesByRequestID(t *testing.T) {
	m, err := NewMaster(freePort(t), testLogger())
	require.NoError(t, err)
	defer m.Close()

	snap := Snapshot{WorkerID: "w1", RequestID: "w1_1", RequestCount: 10}
	for i := 0; i < 3; i++ {
		m.handle(Message{Kind: KindWorkerCustomMetrics, Snapshot: &snap})
	}
	assert.Equal(t, 1, m.SnapshotCount())
}

func TestMaster_CollectsWorkerSnapshots(t *testing.T) {
	port := freePort(t)
	m, err := NewMaster(port, testLogger())
	require.NoError(t, err)
	defer m.Close()
	go m.Serve()

	var seq atomic.Int64
	workerID := "200_1700000000000"
	w, err := DialMaster(port, workerID, func() Snapshot {
		n := seq.Add(1)
		return Snapshot{
			WorkerID:     workerID,
			RequestID:    fmt.Sprintf("%s_%d", workerID, n),
			Timestamp:    time.Now().UnixMilli(),
			RequestCount: 7,
		}
	}, testLogger())
	require.NoError(t, err)
	defer w.Close()

	stopCh := make(chan struct{})
	defer close(stopCh)
	go w.Serve(stopCh)

	snaps := m.CollectFinal(1)
	require.Len(t, snaps, 1)
	assert.Equal(t, int64(7), snaps[0].RequestCount)
	assert.Equal(t, workerID, snaps[0].WorkerID)
}

func TestMaster_HeartbeatRoundTrip(t *testing.T) {
	port := freePort(t)
	m, err := NewMaster(port, testLogger())
	require.NoError(t, err)
	defer m.Close()
	go m.Serve()

	w, err := DialMaster(port, "w1", func() Snapshot { return Snapshot{} }, testLogger())
	require.NoError(t, err)
	defer w.Close()

	stopCh := make(chan struct{})
	defer close(stopCh)
	go w.Serve(stopCh)

	// Give the read loops a moment to register the connection.
	time.Sleep(100 * time.Millisecond)
	m.Broadcast(KindWorkerHeartbeat)

	require.Eventually(t, func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		st, ok := m.workers["w1"]
		return ok && !st.lastHeartbeat.IsZero()
	}, 2*time.Second, 50*time.Millisecond)
}

func TestAggregate_DedupesByWorkerID(t *testing.T) {
	snaps := []Snapshot{
		{WorkerID: "w1", RequestID: "w1_1", Timestamp: 1, RequestCount: 500, CompletionTokens: 5000, TotalTokens: 6000},
		{WorkerID: "w2", RequestID: "w2_1", Timestamp: 1, RequestCount: 501, CompletionTokens: 5010, TotalTokens: 6010},
		{WorkerID: "w3", RequestID: "w3_1", Timestamp: 1, RequestCount: 499, CompletionTokens: 4990, TotalTokens: 5990},
		{WorkerID: "w4", RequestID: "w4_1", Timestamp: 1, RequestCount: 500, CompletionTokens: 5000, TotalTokens: 6000},
		// Duplicate delivery from w1 with identical counters.
		{WorkerID: "w1", RequestID: "w1_2", Timestamp: 2, RequestCount: 500, CompletionTokens: 5000, TotalTokens: 6000},
	}
	reqs, completion, total, perWorker := Aggregate(snaps)
	assert.Equal(t, int64(2000), reqs)
	assert.Equal(t, int64(20000), completion)
	assert.Equal(t, int64(24000), total)
	assert.Len(t, perWorker, 4)
}

func TestAggregate_KeepsLatestPerWorker(t *testing.T) {
	snaps := []Snapshot{
		{WorkerID: "w1", RequestID: "w1_1", Timestamp: 1, RequestCount: 100},
		{WorkerID: "w1", RequestID: "w1_2", Timestamp: 5, RequestCount: 250},
	}
	reqs, _, _, _ := Aggregate(snaps)
	assert.Equal(t, int64(250), reqs)
}
