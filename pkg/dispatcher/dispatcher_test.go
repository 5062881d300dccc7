package dispatcher

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perfflow/perfflow/ent"
	"github.com/perfflow/perfflow/ent/task"
	"github.com/perfflow/perfflow/pkg/cleanup"
	"github.com/perfflow/perfflow/pkg/results"
	"github.com/perfflow/perfflow/pkg/supervisor"
	testdb "github.com/perfflow/perfflow/test/database"
)

func newTestDispatcher(t *testing.T, client *ent.Client) *Dispatcher {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sup, err := supervisor.New(logger)
	require.NoError(t, err)
	return New(client, sup, results.NewWriter(client), cleanup.NewCleaner(logger))
}

func createTask(t *testing.T, client *ent.Client, status task.Status, createdAt time.Time) *ent.Task {
	t.Helper()
	created, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetName("dispatch test").
		SetTargetHost("http://localhost:8000").
		SetConcurrentUsers(10).
		SetSpawnRate(1).
		SetDuration(60).
		SetStatus(status).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return created
}

func TestClaimNextTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	d := newTestDispatcher(t, client.Client)
	ctx := context.Background()

	t.Run("empty queue", func(t *testing.T) {
		_, err := d.claimNextTask(ctx)
		assert.ErrorIs(t, err, ErrNoTasksAvailable)
	})

	t.Run("claims oldest created task and locks it", func(t *testing.T) {
		now := time.Now()
		older := createTask(t, client.Client, task.StatusCreated, now.Add(-2*time.Minute))
		createTask(t, client.Client, task.StatusCreated, now.Add(-1*time.Minute))

		claimed, err := d.claimNextTask(ctx)
		require.NoError(t, err)
		assert.Equal(t, older.ID, claimed.ID)
		assert.Equal(t, task.StatusLocked, claimed.Status)

		stored, err := client.Task.Get(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusLocked, stored.Status)
	})

	t.Run("locked tasks are not reclaimed", func(t *testing.T) {
		// Previous subtest left one created task; claim it, then the queue
		// must be empty even though two locked rows exist.
		_, err := d.claimNextTask(ctx)
		require.NoError(t, err)

		_, err = d.claimNextTask(ctx)
		assert.ErrorIs(t, err, ErrNoTasksAvailable)
	})
}

func TestMarkRunning(t *testing.T) {
	client := testdb.NewTestClient(t)
	d := newTestDispatcher(t, client.Client)
	ctx := context.Background()

	t.Run("locked task starts", func(t *testing.T) {
		locked := createTask(t, client.Client, task.StatusLocked, time.Now())

		started, err := d.markRunning(ctx, locked.ID)
		require.NoError(t, err)
		assert.True(t, started)

		stored, err := client.Task.Get(ctx, locked.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusRunning, stored.Status)
	})

	t.Run("stop racing the claim wins", func(t *testing.T) {
		// A stop request between the claim commit and the running write
		// moves the task to stopping; the pipeline must not overwrite it.
		stopping := createTask(t, client.Client, task.StatusStopping, time.Now())

		started, err := d.markRunning(ctx, stopping.ID)
		require.NoError(t, err)
		assert.False(t, started)

		stored, err := client.Task.Get(ctx, stopping.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusStopping, stored.Status)
	})
}

func TestFinalize_TerminalStatusIsMonotonic(t *testing.T) {
	client := testdb.NewTestClient(t)
	d := newTestDispatcher(t, client.Client)
	ctx := context.Background()

	t.Run("running task gets terminal status and error", func(t *testing.T) {
		running := createTask(t, client.Client, task.StatusRunning, time.Now())
		d.finalize(running, task.StatusFailed, "generator crashed")

		stored, err := client.Task.Get(ctx, running.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, stored.Status)
		assert.Equal(t, "generator crashed", stored.ErrorMessage)
	})

	t.Run("terminal task is not rewritten", func(t *testing.T) {
		done := createTask(t, client.Client, task.StatusCompleted, time.Now())
		d.finalize(done, task.StatusFailed, "late failure")

		stored, err := client.Task.Get(ctx, done.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, stored.Status)
		assert.Empty(t, stored.ErrorMessage)
	})
}

func TestMarkStopped(t *testing.T) {
	client := testdb.NewTestClient(t)
	d := newTestDispatcher(t, client.Client)
	ctx := context.Background()

	t.Run("stopping task becomes stopped", func(t *testing.T) {
		stopping := createTask(t, client.Client, task.StatusStopping, time.Now())
		d.markStopped(ctx, stopping.ID, task.StatusStopped, "")

		stored, err := client.Task.Get(ctx, stopping.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusStopped, stored.Status)
	})

	t.Run("only stopping tasks are touched", func(t *testing.T) {
		running := createTask(t, client.Client, task.StatusRunning, time.Now())
		d.markStopped(ctx, running.ID, task.StatusStopped, "")

		stored, err := client.Task.Get(ctx, running.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusRunning, stored.Status)
	})
}

func TestRunSpecFrom(t *testing.T) {
	created := &ent.Task{
		ID:              "t-1",
		TargetHost:      "https://inference.local",
		APIPath:         "/chat/completions",
		Model:           "llama-3.1-8b",
		StreamMode:      "true",
		ChatType:        1,
		ConcurrentUsers: 1500,
		SpawnRate:       10,
		Duration:        300,
		TestData:        "default",
	}

	spec := runSpecFrom(created)
	assert.Equal(t, "t-1", spec.TaskID)
	assert.True(t, spec.StreamMode)
	assert.Equal(t, 1500, spec.Users)
	assert.Equal(t, 5*time.Minute, spec.Duration)

	created.StreamMode = "false"
	assert.False(t, runSpecFrom(created).StreamMode)
}
