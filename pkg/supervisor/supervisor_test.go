package supervisor

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestWorkerProcesses_Formula(t *testing.T) {
	// Below the threshold or on a single CPU: run in-process.
	assert.Equal(t, 0, workerProcesses(1000, 8))
	assert.Equal(t, 0, workerProcesses(1, 8))
	assert.Equal(t, 0, workerProcesses(5000, 1))

	// Scaled by users, capped by CPU count and the hard limit.
	assert.Equal(t, 2, workerProcesses(1400, 8))
	assert.Equal(t, 3, workerProcesses(2000, 8))
	assert.Equal(t, 2, workerProcesses(2000, 2))
	assert.Equal(t, 8, workerProcesses(5000, 32))
	// 1001/600 floors to 1.
	assert.Equal(t, 1, workerProcesses(1001, 8))
}

func TestWorkerCount_ForceSingleOverride(t *testing.T) {
	spec := RunSpec{Users: 5000}

	t.Setenv("PERFFLOW_FORCE_SINGLE", "true")
	forced, err := New(testLogger())
	require.NoError(t, err)
	assert.Equal(t, 0, forced.workerCount(spec))

	t.Setenv("PERFFLOW_FORCE_SINGLE", "")
	normal, err := New(testLogger())
	require.NoError(t, err)
	assert.Equal(t, spec.processes(), normal.workerCount(spec))
}

func TestGeneratorArgs(t *testing.T) {
	spec := RunSpec{
		TaskID:     "task-9",
		Host:       "http://localhost:8000",
		APIPath:    "/chat/completions",
		ModelName:  "M",
		StreamMode: true,
		Users:      2000,
		SpawnRate:  10,
		Duration:   30 * time.Second,
		Headers:    `{"Authorization":"Bearer x"}`,
	}
	args := spec.generatorArgs(3, 5557)
	joined := strings.Join(args, " ")

	assert.Contains(t, joined, "--task-id task-9")
	assert.Contains(t, joined, "--users 2000")
	assert.Contains(t, joined, "--run-time 30")
	assert.Contains(t, joined, "--processes 3")
	assert.Contains(t, joined, "--master-port 5557")
	assert.Contains(t, joined, "--stream_mode=true")
	assert.Contains(t, joined, "--model_name M")
	assert.Contains(t, joined, `--headers {"Authorization":"Bearer x"}`)
	assert.NotContains(t, joined, "--cert_file")
}

func TestGeneratorArgs_NoPortForSingleProcess(t *testing.T) {
	spec := RunSpec{TaskID: "t", Host: "h", APIPath: "/x", Users: 1, SpawnRate: 1, Duration: time.Second}
	joined := strings.Join(spec.generatorArgs(0, 0), " ")
	assert.Contains(t, joined, "--processes 0")
	assert.NotContains(t, joined, "--master-port")
}

func TestPortAllocation_ReservesAndReleases(t *testing.T) {
	s, err := New(testLogger())
	require.NoError(t, err)

	p1, err := s.allocatePort("task-a")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, p1, portRangeStart)
	assert.Less(t, p1, portRangeEnd)

	p2, err := s.allocatePort("task-b")
	require.NoError(t, err)
	assert.NotEqual(t, p1, p2)
	assert.Equal(t, "task-a", s.ports[p1])

	s.releasePort(p1)
	_, reserved := s.ports[p1]
	assert.False(t, reserved)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short"))

	long := strings.Repeat("e", ErrorFieldLimit+100)
	got := Truncate(long)
	assert.Len(t, got, ErrorFieldLimit)
	assert.True(t, strings.HasSuffix(got, truncationMarker))
}

func TestTailWriter_KeepsTail(t *testing.T) {
	w := &tailWriter{}
	_, err := w.Write(bytes.Repeat([]byte("a"), ErrorFieldLimit))
	require.NoError(t, err)
	_, err = w.Write([]byte("zzz"))
	require.NoError(t, err)

	out := w.String()
	assert.Len(t, out, ErrorFieldLimit)
	assert.True(t, strings.HasSuffix(out, "zzz"))
	assert.True(t, strings.HasPrefix(out, "a"))
}

func TestTerminate_UnknownTaskIsSuccess(t *testing.T) {
	s, err := New(testLogger())
	require.NoError(t, err)
	assert.NoError(t, s.Terminate("never-started"))
}

type fakeReconcileStore struct {
	active []string
	failed map[string]string
}

func (f *fakeReconcileStore) ActiveTaskIDs(context.Context) ([]string, error) {
	return f.active, nil
}

func (f *fakeReconcileStore) MarkFailed(_ context.Context, taskID, reason string) error {
	f.failed[taskID] = reason
	return nil
}

func TestReconcile_MissingProcessFailsTask(t *testing.T) {
	store := &fakeReconcileStore{
		// No process carries this identifier in its command line.
		active: []string{"b2f8d7c1-none-such-task"},
		failed: map[string]string{},
	}
	require.NoError(t, Reconcile(context.Background(), store, testLogger()))
	assert.Equal(t, ReasonProcessMissing, store.failed["b2f8d7c1-none-such-task"])
}

func TestReconcile_NothingActive(t *testing.T) {
	store := &fakeReconcileStore{failed: map[string]string{}}
	require.NoError(t, Reconcile(context.Background(), store, testLogger()))
	assert.Empty(t, store.failed)
}
