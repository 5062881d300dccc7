package supervisor

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

const (
	reaperInterval = 1 * time.Minute
	orphanMinAge   = 5 * time.Minute
)

// RunOrphanReaper periodically kills generator processes older than five
// minutes that no active task accounts for. It runs until stopCh closes.
func (s *Supervisor) RunOrphanReaper(stopCh <-chan struct{}) {
	ticker := time.NewTicker(reaperInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			s.reapOrphans()
		}
	}
}

func (s *Supervisor) reapOrphans() {
	procs, err := process.Processes()
	if err != nil {
		s.logger.Warn("Orphan sweep could not list processes", "error", err)
		return
	}

	binName := filepath.Base(s.binPath)
	active := s.ActiveTaskIDs()
	cutoff := time.Now().Add(-orphanMinAge).UnixMilli()

	for _, p := range procs {
		cmdline, err := p.Cmdline()
		if err != nil || !strings.Contains(cmdline, binName) {
			continue
		}
		created, err := p.CreateTime()
		if err != nil || created > cutoff {
			continue
		}
		if belongsToActiveTask(cmdline, active) {
			continue
		}

		s.logger.Warn("Reaping orphaned generator process",
			"pid", p.Pid, "age", time.Since(time.UnixMilli(created)).Round(time.Second))
		if err := p.Terminate(); err != nil {
			_ = p.Kill()
		}
	}
}

func belongsToActiveTask(cmdline string, taskIDs []string) bool {
	for _, id := range taskIDs {
		if strings.Contains(cmdline, id) {
			return true
		}
	}
	return false
}
