package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// Reconciliation failure reasons written to the task store.
const (
	ReasonProcessOrphaned = "process orphaned by engine restart"
	ReasonProcessMissing  = "Task process was not found after an engine restart."
)

// ReconcileStore is the slice of the task store reconciliation needs.
type ReconcileStore interface {
	// ActiveTaskIDs returns tasks left in running or locked state.
	ActiveTaskIDs(ctx context.Context) ([]string, error)
	// MarkFailed moves a task to failed with the given reason.
	MarkFailed(ctx context.Context, taskID, reason string) error
}

// Reconcile resolves tasks a previous engine instance left behind: any
// surviving generator process is terminated, and the task is failed either
// way since its pipeline no longer exists.
func Reconcile(ctx context.Context, store ReconcileStore, logger *slog.Logger) error {
	taskIDs, err := store.ActiveTaskIDs(ctx)
	if err != nil {
		return fmt.Errorf("listing active tasks for reconciliation: %w", err)
	}
	if len(taskIDs) == 0 {
		return nil
	}

	procs, err := process.Processes()
	if err != nil {
		return fmt.Errorf("scanning processes for reconciliation: %w", err)
	}

	for _, taskID := range taskIDs {
		found := false
		for _, p := range procs {
			if cmdlineHasTask(p, taskID) {
				found = true
				logger.Warn("Terminating generator from previous engine instance",
					"task_id", taskID, "pid", p.Pid)
				if err := p.Terminate(); err != nil {
					_ = p.Kill()
				}
			}
		}

		reason := ReasonProcessMissing
		if found {
			reason = ReasonProcessOrphaned
		}
		if err := store.MarkFailed(ctx, taskID, reason); err != nil {
			return fmt.Errorf("failing task %s during reconciliation: %w", taskID, err)
		}
		logger.Info("Reconciled stale task", "task_id", taskID, "reason", reason)
	}
	return nil
}

func cmdlineHasTask(p *process.Process, taskID string) bool {
	cmdline, err := p.Cmdline()
	if err != nil {
		return false
	}
	return strings.Contains(cmdline, taskID)
}
