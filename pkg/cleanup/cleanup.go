// Package cleanup removes the per-task files under the shared upload
// directory once a task reaches a terminal status: the dataset file (when
// test_data is an actual path) and the TLS client certificate pair.
package cleanup

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/perfflow/perfflow/ent"
	"github.com/perfflow/perfflow/ent/task"
)

// TaskFiles holds the file references of one task record.
type TaskFiles struct {
	TestData string
	CertFile string
	KeyFile  string
}

// Cleaner deletes task-scoped files. Deleting a file that is already gone
// is success.
type Cleaner struct {
	logger *slog.Logger
}

func NewCleaner(logger *slog.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean removes every file the task references.
func (c *Cleaner) Clean(taskID string, files TaskFiles) {
	for _, path := range files.paths() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			c.logger.Warn("Could not remove task file",
				"task_id", taskID, "path", path, "error", err)
			continue
		}
		c.logger.Info("Removed task file", "task_id", taskID, "path", path)
	}
}

func (f TaskFiles) paths() []string {
	var out []string
	if IsDatasetFilePath(f.TestData) {
		out = append(out, strings.TrimSpace(f.TestData))
	}
	if f.CertFile != "" {
		out = append(out, f.CertFile)
	}
	if f.KeyFile != "" {
		out = append(out, f.KeyFile)
	}
	return out
}

// IsDatasetFilePath reports whether test_data references a file on disk, as
// opposed to being empty, the built-in dataset selector, or inline JSONL
// content.
func IsDatasetFilePath(testData string) bool {
	v := strings.TrimSpace(testData)
	if v == "" || v == "default" {
		return false
	}
	if strings.HasPrefix(v, "{") || strings.ContainsAny(v, "\n") {
		return false
	}
	return true
}

const defaultSweepInterval = 10 * time.Minute

// Service periodically sweeps terminal tasks whose files may still exist,
// catching tasks that terminated while the engine was down. All operations
// are idempotent.
type Service struct {
	client   *ent.Client
	cleaner  *Cleaner
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func NewService(client *ent.Client, cleaner *Cleaner, logger *slog.Logger) *Service {
	return &Service{
		client:   client,
		cleaner:  cleaner,
		interval: defaultSweepInterval,
		logger:   logger,
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.run(ctx)
	s.logger.Info("File cleanup service started", "interval", s.interval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("File cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	tasks, err := s.client.Task.Query().
		Where(
			task.StatusIn(task.StatusCompleted, task.StatusFailed,
				task.StatusFailedRequests, task.StatusStopped),
			task.Or(
				task.TestDataNEQ(""),
				task.CertFileNEQ(""),
				task.KeyFileNEQ(""),
			),
		).
		All(ctx)
	if err != nil {
		s.logger.Warn("Cleanup sweep query failed", "error", err)
		return
	}
	for _, t := range tasks {
		s.cleaner.Clean(t.ID, TaskFiles{
			TestData: t.TestData,
			CertFile: t.CertFile,
			KeyFile:  t.KeyFile,
		})
	}
}
