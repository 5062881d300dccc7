// Package dispatcher runs the engine's task loops: claiming created tasks
// from the store and executing them through the supervisor, and terminating
// tasks whose status moved to stopping.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/perfflow/perfflow/ent"
	"github.com/perfflow/perfflow/ent/task"
	"github.com/perfflow/perfflow/pkg/cleanup"
	"github.com/perfflow/perfflow/pkg/loadgen"
	"github.com/perfflow/perfflow/pkg/results"
	"github.com/perfflow/perfflow/pkg/supervisor"
)

const (
	createPollInterval = 3 * time.Second
	stopPollInterval   = 5 * time.Second
	storeErrorBackoff  = 30 * time.Second
)

// ErrNoTasksAvailable signals an empty queue, not a failure.
var ErrNoTasksAvailable = errors.New("no tasks available")

// Generator exit codes with a defined terminal-status mapping.
const (
	exitCompleted      = 0
	exitFailedRequests = 1
)

// Dispatcher owns the create and stop loops.
type Dispatcher struct {
	client  *ent.Client
	sup     *supervisor.Supervisor
	writer  *results.Writer
	cleaner *cleanup.Cleaner

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func New(client *ent.Client, sup *supervisor.Supervisor, writer *results.Writer, cleaner *cleanup.Cleaner) *Dispatcher {
	return &Dispatcher{
		client:  client,
		sup:     sup,
		writer:  writer,
		cleaner: cleaner,
		stopCh:  make(chan struct{}),
	}
}

// Start launches both loops.
func (d *Dispatcher) Start(ctx context.Context) {
	d.wg.Add(2)
	go d.createLoop(ctx)
	go d.stopLoop(ctx)
	slog.Info("Dispatcher started",
		"create_poll", createPollInterval, "stop_poll", stopPollInterval)
}

// Stop signals both loops and waits for in-flight pipelines to finish. Safe
// to call multiple times.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() { close(d.stopCh) })
	d.wg.Wait()
	slog.Info("Dispatcher stopped")
}

func (d *Dispatcher) createLoop(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-d.stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		claimed, err := d.claimNextTask(ctx)
		if err != nil {
			if errors.Is(err, ErrNoTasksAvailable) {
				d.sleep(createPollInterval)
				continue
			}
			slog.Error("Task claim failed; backing off", "error", err)
			d.sleep(storeErrorBackoff)
			continue
		}

		d.wg.Add(1)
		go func(t *ent.Task) {
			defer d.wg.Done()
			d.runPipeline(ctx, t)
		}(claimed)
	}
}

// claimNextTask atomically claims the oldest created task using
// FOR UPDATE SKIP LOCKED, so concurrent engine replicas never double-claim.
func (d *Dispatcher) claimNextTask(ctx context.Context) (*ent.Task, error) {
	tx, err := d.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	t, err := tx.Task.Query().
		Where(task.StatusEQ(task.StatusCreated)).
		Order(ent.Asc(task.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTasksAvailable
		}
		return nil, fmt.Errorf("querying created tasks: %w", err)
	}

	t, err = t.Update().
		SetStatus(task.StatusLocked).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("locking task %s: %w", t.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing claim: %w", err)
	}
	return t, nil
}

// runPipeline executes one claimed task end to end.
func (d *Dispatcher) runPipeline(ctx context.Context, t *ent.Task) {
	log := slog.With("task_id", t.ID, "task_name", t.Name)
	log.Info("Task execution starting",
		"users", t.ConcurrentUsers, "duration_s", t.Duration, "host", t.TargetHost)

	started, err := d.markRunning(ctx, t.ID)
	if err != nil {
		log.Error("Could not mark task running", "error", err)
		return
	}
	if !started {
		// A stop arrived between the claim and here; never start the run.
		d.finalize(t, task.StatusStopped, "")
		log.Info("Task stopped before execution started")
		return
	}

	result, runErr := d.sup.Run(ctx, runSpecFrom(t))

	refreshed, err := d.client.Task.Get(context.Background(), t.ID)
	if err != nil {
		log.Error("Could not refresh task after run", "error", err)
		return
	}

	// A stop that raced the run wins: the snapshot is never promoted.
	if refreshed.Status == task.StatusStopping || refreshed.Status == task.StatusStopped {
		d.finalize(t, task.StatusStopped, "")
		log.Info("Task stopped during execution")
		return
	}

	if runErr != nil {
		d.finalize(t, task.StatusFailed, supervisor.Truncate(runErr.Error()))
		log.Error("Task supervision failed", "error", runErr)
		return
	}

	switch result.ExitCode {
	case exitCompleted:
		d.promoteSnapshot(t, task.StatusCompleted, log)
	case exitFailedRequests:
		d.promoteSnapshot(t, task.StatusFailedRequests, log)
	default:
		d.finalize(t, task.StatusFailed, supervisor.Truncate(result.StderrTail))
		log.Error("Generator failed", "exit_code", result.ExitCode)
	}
}

// promoteSnapshot reads the run snapshot and persists its rows; a missing
// or unwritable snapshot turns the task into a failure.
func (d *Dispatcher) promoteSnapshot(t *ent.Task, status task.Status, log *slog.Logger) {
	ctx := context.Background()

	snap, err := loadgen.ReadSnapshot(t.ID)
	if err != nil {
		d.finalize(t, task.StatusFailed,
			supervisor.Truncate(fmt.Sprintf("reading run snapshot: %v", err)))
		log.Error("Run snapshot unreadable", "error", err)
		return
	}
	if err := d.writer.Persist(ctx, t.ID, snap); err != nil {
		d.finalize(t, task.StatusFailed, supervisor.Truncate(err.Error()))
		log.Error("Result persistence failed", "error", err)
		return
	}

	d.finalize(t, status, "")
	log.Info("Task finished", "status", status,
		"requests", snap.CustomMetrics.ReqsNum)
}

// finalize writes the terminal status and releases the task's files.
// Terminal states are monotonic: an already-terminal task is not rewritten.
func (d *Dispatcher) finalize(t *ent.Task, status task.Status, errorMessage string) {
	ctx := context.Background()
	update := d.client.Task.Update().
		Where(
			task.IDEQ(t.ID),
			task.StatusNotIn(task.StatusCompleted, task.StatusFailed,
				task.StatusFailedRequests, task.StatusStopped),
		).
		SetStatus(status)
	if errorMessage != "" {
		update = update.SetErrorMessage(errorMessage)
	}
	if _, err := update.Save(ctx); err != nil {
		slog.Error("Terminal status update failed", "task_id", t.ID, "error", err)
	}

	d.cleaner.Clean(t.ID, cleanup.TaskFiles{
		TestData: t.TestData,
		CertFile: t.CertFile,
		KeyFile:  t.KeyFile,
	})
}

// markRunning moves a locked task to running. false with a nil error means
// the task left locked in the meantime, which only a stop request can cause.
func (d *Dispatcher) markRunning(ctx context.Context, taskID string) (bool, error) {
	n, err := d.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.StatusEQ(task.StatusLocked),
		).
		SetStatus(task.StatusRunning).
		Save(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (d *Dispatcher) stopLoop(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-d.stopCh:
			return
		case <-ctx.Done():
			return
		case <-time.After(stopPollInterval):
		}

		ids, err := d.client.Task.Query().
			Where(task.StatusEQ(task.StatusStopping)).
			IDs(ctx)
		if err != nil {
			slog.Error("Stop loop query failed", "error", err)
			continue
		}

		for _, id := range ids {
			// Idempotent: a group that is already gone is success.
			if err := d.sup.Terminate(id); err != nil {
				slog.Error("Stop request failed", "task_id", id, "error", err)
				d.markStopped(ctx, id, task.StatusFailed, supervisor.Truncate(err.Error()))
				continue
			}
			d.markStopped(ctx, id, task.StatusStopped, "")
			slog.Info("Task stopped", "task_id", id)
		}
	}
}

func (d *Dispatcher) markStopped(ctx context.Context, taskID string, status task.Status, errorMessage string) {
	update := d.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.StatusEQ(task.StatusStopping),
		).
		SetStatus(status)
	if errorMessage != "" {
		update = update.SetErrorMessage(errorMessage)
	}
	if _, err := update.Save(ctx); err != nil {
		slog.Error("Stop status update failed", "task_id", taskID, "error", err)
	}
}

func (d *Dispatcher) sleep(duration time.Duration) {
	select {
	case <-d.stopCh:
	case <-time.After(duration):
	}
}

// runSpecFrom lifts a task record into the supervisor's run spec.
func runSpecFrom(t *ent.Task) supervisor.RunSpec {
	return supervisor.RunSpec{
		TaskID:         t.ID,
		Host:           t.TargetHost,
		APIPath:        t.APIPath,
		ModelName:      t.Model,
		StreamMode:     t.StreamMode == "true",
		ChatType:       t.ChatType,
		Headers:        t.Headers,
		Cookies:        t.Cookies,
		RequestPayload: t.RequestPayload,
		FieldMapping:   t.FieldMapping,
		TestData:       t.TestData,
		CertFile:       t.CertFile,
		KeyFile:        t.KeyFile,
		Users:          t.ConcurrentUsers,
		SpawnRate:      t.SpawnRate,
		Duration:       time.Duration(t.Duration) * time.Second,
	}
}

// ReconcileStore returns the task-store view startup reconciliation needs.
func ReconcileStore(client *ent.Client) supervisor.ReconcileStore {
	return entReconcileStore{client: client}
}

type entReconcileStore struct {
	client *ent.Client
}

func (s entReconcileStore) ActiveTaskIDs(ctx context.Context) ([]string, error) {
	return s.client.Task.Query().
		Where(task.StatusIn(task.StatusRunning, task.StatusLocked)).
		IDs(ctx)
}

func (s entReconcileStore) MarkFailed(ctx context.Context, taskID, reason string) error {
	return s.client.Task.Update().
		Where(task.IDEQ(taskID)).
		SetStatus(task.StatusFailed).
		SetErrorMessage(reason).
		Exec(ctx)
}
