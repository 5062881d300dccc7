package loadgen

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"github.com/perfflow/perfflow/pkg/coordinator"
	"github.com/perfflow/perfflow/pkg/dataset"
	"github.com/perfflow/perfflow/pkg/fieldmap"
	"github.com/perfflow/perfflow/pkg/httpx"
	"github.com/perfflow/perfflow/pkg/payload"
	"github.com/perfflow/perfflow/pkg/runcfg"
	"github.com/perfflow/perfflow/pkg/stats"
	"github.com/perfflow/perfflow/pkg/tokenizer"
)

// workerExitGrace bounds how long the master waits for its workers to exit
// after the bus is torn down.
const workerExitGrace = 10 * time.Second

// Runner executes one generator process: the master role (optionally
// spawning worker children), or the worker role inside such a child.
type Runner struct {
	cfg    *runcfg.Config
	logger *slog.Logger
}

func NewRunner(cfg *runcfg.Config, logger *slog.Logger) *Runner {
	return &Runner{cfg: cfg, logger: logger}
}

// Run executes the process's role. The returned flag reports whether any
// request failed; a non-nil error means the run itself could not execute.
func (r *Runner) Run(ctx context.Context) (failed bool, err error) {
	if r.cfg.Worker {
		return r.runWorker(ctx)
	}
	if r.cfg.Processes > 0 {
		return r.runMaster(ctx)
	}
	return r.runSingle(ctx)
}

type runtimeDeps struct {
	source   *dataset.Source
	client   *httpx.Client
	builder  *payload.Builder
	tokens   *tokenizer.Registry
	store    *stats.Store
	counters *Counters
	emitter  *Emitter
	agg      *Aggregator
}

func (r *Runner) buildDeps() (*runtimeDeps, error) {
	source, err := dataset.Load(r.cfg.TestData)
	if err != nil {
		return nil, err
	}
	client, err := httpx.NewClient(r.cfg)
	if err != nil {
		return nil, err
	}
	store := stats.NewStore()
	counters := NewCounters()
	return &runtimeDeps{
		source:   source,
		client:   client,
		builder:  payload.NewBuilder(r.cfg),
		tokens:   tokenizer.NewRegistry(),
		store:    store,
		counters: counters,
		emitter:  NewEmitter(store, counters, r.logger),
		agg:      NewAggregator(counters, store),
	}, nil
}

// runUsers hosts count virtual users until ctx is cancelled, ramping up at
// the configured spawn rate.
func (r *Runner) runUsers(ctx context.Context, deps *runtimeDeps, count int) {
	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			delay := time.Duration(idx) * time.Second / time.Duration(r.cfg.SpawnRate)
			if !sleepCtx(ctx, delay) {
				return
			}
			user := NewUser(r.cfg, deps.client, deps.builder, deps.source, deps.tokens, deps.emitter, r.logger)
			user.Run(ctx)
		}(i)
	}
	wg.Wait()
	deps.client.CloseIdleConnections()
}

// runSingle is the no-worker path: the master hosts every virtual user
// itself and snapshots its own aggregator at the end.
func (r *Runner) runSingle(ctx context.Context) (bool, error) {
	deps, err := r.buildDeps()
	if err != nil {
		return false, err
	}

	r.logger.Info("Starting load generation",
		"task_id", r.cfg.TaskID, "users", r.cfg.Users, "duration", r.cfg.Duration)

	runCtx, cancel := context.WithTimeout(ctx, r.cfg.Duration)
	defer cancel()
	start := time.Now()
	r.runUsers(runCtx, deps, r.cfg.Users)
	elapsed := time.Since(start)

	snap := deps.agg.Snapshot()
	requests, completion, total, _ := coordinator.Aggregate([]coordinator.Snapshot{snap})
	run := BuildRunSnapshot(r.cfg.TaskID, deps.store.Reports(elapsed.Seconds()),
		requests, completion, total, elapsed)
	if err := WriteSnapshot(r.cfg.TaskID, run); err != nil {
		return false, err
	}
	return deps.store.TotalFailures() > 0, nil
}

// runMaster spawns the worker children, waits out the test, collects their
// final snapshots over the bus, and writes the run snapshot.
func (r *Runner) runMaster(ctx context.Context) (bool, error) {
	master, err := coordinator.NewMaster(r.cfg.MasterPort, r.logger)
	if err != nil {
		return false, err
	}
	defer master.Close()
	go master.Serve()

	stopHeartbeats := make(chan struct{})
	go master.RunHeartbeats(stopHeartbeats)
	defer close(stopHeartbeats)

	workers, err := r.spawnWorkers(ctx)
	if err != nil {
		return false, err
	}

	r.logger.Info("Load test running",
		"task_id", r.cfg.TaskID, "workers", len(workers),
		"users", r.cfg.Users, "duration", r.cfg.Duration)

	start := time.Now()
	select {
	case <-ctx.Done():
		r.logger.Info("Run cancelled before scheduled end", "task_id", r.cfg.TaskID)
	case <-time.After(r.cfg.Duration):
	}
	elapsed := time.Since(start)

	snapshots := master.CollectFinal(len(workers))
	requests, completion, total, perWorker := coordinator.Aggregate(snapshots)

	merged := stats.NewStore()
	for _, s := range perWorker {
		merged.Merge(s.Endpoints)
	}

	run := BuildRunSnapshot(r.cfg.TaskID, merged.Reports(elapsed.Seconds()),
		requests, completion, total, elapsed)
	if err := WriteSnapshot(r.cfg.TaskID, run); err != nil {
		return false, err
	}

	// Dropping the bus connections releases the workers' serve loops.
	master.Close()
	r.waitWorkers(workers)
	return merged.TotalFailures() > 0, nil
}

// runWorker hosts this child's share of the virtual users and serves the
// bus until the master disconnects.
func (r *Runner) runWorker(ctx context.Context) (bool, error) {
	deps, err := r.buildDeps()
	if err != nil {
		return false, err
	}

	worker, err := coordinator.DialMaster(r.cfg.MasterPort, deps.agg.WorkerID(), deps.agg.Snapshot, r.logger)
	if err != nil {
		return false, err
	}
	defer worker.Close()

	runCtx, cancel := context.WithTimeout(ctx, r.cfg.Duration)
	defer cancel()

	usersDone := make(chan struct{})
	go func() {
		r.runUsers(runCtx, deps, r.cfg.Users)
		close(usersDone)
	}()

	// Serve returns once the master closes the bus, which only happens
	// after final metrics were collected.
	stopCh := make(chan struct{})
	go func() {
		<-ctx.Done()
		close(stopCh)
	}()
	worker.Serve(stopCh)

	cancel()
	<-usersDone
	return deps.store.TotalFailures() > 0, nil
}

func (r *Runner) spawnWorkers(ctx context.Context) ([]*exec.Cmd, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolving generator binary: %w", err)
	}

	count := r.cfg.Processes
	base := r.cfg.Users / count
	extra := r.cfg.Users % count

	cmds := make([]*exec.Cmd, 0, count)
	for i := 0; i < count; i++ {
		users := base
		if i < extra {
			users++
		}
		if users == 0 {
			continue
		}
		cmd := exec.CommandContext(ctx, exe, r.workerArgs(users)...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Start(); err != nil {
			for _, started := range cmds {
				_ = started.Process.Kill()
			}
			return nil, fmt.Errorf("spawning worker %d: %w", i, err)
		}
		r.logger.Info("Worker spawned", "pid", cmd.Process.Pid, "users", users)
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// workerArgs rebuilds the generator CLI for a worker child carrying the
// given share of users.
func (r *Runner) workerArgs(users int) []string {
	c := r.cfg
	spawnRate := c.SpawnRate / c.Processes
	if spawnRate < 1 {
		spawnRate = 1
	}

	args := []string{
		"--task-id", c.TaskID,
		"--host", c.Host,
		"--api_path", c.APIPath,
		"--users", strconv.Itoa(users),
		"--spawn-rate", strconv.Itoa(spawnRate),
		"--run-time", strconv.Itoa(int(c.Duration / time.Second)),
		fmt.Sprintf("--stream_mode=%t", c.StreamMode),
		"--chat_type", strconv.Itoa(c.ChatType),
		"--worker",
		"--master-port", strconv.Itoa(c.MasterPort),
	}
	if c.ModelName != "" {
		args = append(args, "--model_name", c.ModelName)
	}
	if c.SystemPrompt != "" {
		args = append(args, "--system_prompt", c.SystemPrompt)
	}
	if c.RequestPayload != "" {
		args = append(args, "--request_payload", c.RequestPayload)
	}
	if c.TestData != "" {
		args = append(args, "--test_data", c.TestData)
	}
	if c.CertFile != "" {
		args = append(args, "--cert_file", c.CertFile)
	}
	if c.KeyFile != "" {
		args = append(args, "--key_file", c.KeyFile)
	}
	if len(c.Headers) > 0 {
		raw, _ := json.Marshal(c.Headers)
		args = append(args, "--headers", string(raw))
	}
	if len(c.Cookies) > 0 {
		raw, _ := json.Marshal(c.Cookies)
		args = append(args, "--cookies", string(raw))
	}
	if c.FieldMap != (fieldmap.FieldMap{}) {
		raw, _ := json.Marshal(c.FieldMap)
		args = append(args, "--field_mapping", string(raw))
	}
	return args
}

func (r *Runner) waitWorkers(cmds []*exec.Cmd) {
	done := make(chan struct{})
	go func() {
		for _, cmd := range cmds {
			if err := cmd.Wait(); err != nil {
				r.logger.Warn("Worker exited with error", "pid", cmd.Process.Pid, "error", err)
			}
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(workerExitGrace):
		r.logger.Warn("Workers did not exit in time; killing")
		for _, cmd := range cmds {
			_ = cmd.Process.Kill()
		}
	}
}
