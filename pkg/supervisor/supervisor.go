package supervisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

const (
	portRangeStart = 5557
	portRangeEnd   = 5657

	// Extra slack the generator gets past its configured duration before
	// the supervisor declares it stuck.
	teardownSlack = 99*time.Second + 60*time.Second

	childStableIntervals = 3
	childCaptureInterval = 1 * time.Second
	childCaptureCap      = 15 * time.Second

	gracefulStopWait = 10 * time.Second
	killResidualWait = 5 * time.Second
)

// generatorBinEnv overrides where the generator binary is found; by default
// it sits next to the engine binary.
const generatorBinEnv = "PERFFLOW_LOADGEN_BIN"

// forceSingleEnv pins every task to a single generator process when set to
// "true", regardless of user count or host size.
const forceSingleEnv = "PERFFLOW_FORCE_SINGLE"

// RunResult is the outcome of one supervised generator run.
type RunResult struct {
	ExitCode   int
	StderrTail string
}

type group struct {
	taskID   string
	cmd      *exec.Cmd
	port     int
	children []int32
	stderr   *tailWriter
}

// Supervisor owns the generator process groups of all running tasks.
type Supervisor struct {
	logger      *slog.Logger
	binPath     string
	forceSingle bool

	mu     sync.Mutex
	ports  map[int]string    // port -> task_id
	groups map[string]*group // task_id -> group
}

// New creates a Supervisor. The generator binary is resolved once, from the
// override env var or the engine binary's directory.
func New(logger *slog.Logger) (*Supervisor, error) {
	binPath := os.Getenv(generatorBinEnv)
	if binPath == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("resolving engine binary path: %w", err)
		}
		binPath = filepath.Join(filepath.Dir(exe), "loadgen")
	}
	return &Supervisor{
		logger:      logger,
		binPath:     binPath,
		forceSingle: os.Getenv(forceSingleEnv) == "true",
		ports:       make(map[int]string),
		groups:      make(map[string]*group),
	}, nil
}

// workerCount picks N for the run; the force-single override wins over the
// load-shape formula.
func (s *Supervisor) workerCount(spec RunSpec) int {
	if s.forceSingle {
		return 0
	}
	return spec.processes()
}

// Run launches the generator for spec and blocks until it exits or blows
// its time budget. The returned error marks a supervision failure, not a
// failing test; failing tests surface through the exit code.
func (s *Supervisor) Run(ctx context.Context, spec RunSpec) (RunResult, error) {
	processes := s.workerCount(spec)
	port := 0
	if processes > 0 {
		var err error
		port, err = s.allocatePort(spec.TaskID)
		if err != nil {
			return RunResult{}, err
		}
	}

	stderr := &tailWriter{}
	cmd := exec.Command(s.binPath, spec.generatorArgs(processes, port)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = stderr
	if err := cmd.Start(); err != nil {
		s.releasePort(port)
		return RunResult{}, fmt.Errorf("spawning generator for task %s: %w", spec.TaskID, err)
	}

	g := &group{taskID: spec.TaskID, cmd: cmd, port: port, stderr: stderr}
	s.mu.Lock()
	s.groups[spec.TaskID] = g
	s.mu.Unlock()
	defer s.forget(g)

	s.logger.Info("Generator started",
		"task_id", spec.TaskID, "pid", cmd.Process.Pid,
		"worker_processes", processes, "master_port", port)

	g.children = s.captureChildren(cmd.Process.Pid)

	waitErr := make(chan error, 1)
	go func() { waitErr <- cmd.Wait() }()

	budget := spec.Duration + teardownSlack
	select {
	case err := <-waitErr:
		return s.finishRun(g, err)
	case <-ctx.Done():
		s.terminateGroup(g)
		return s.finishRun(g, <-waitErr)
	case <-time.After(budget):
		s.logger.Warn("Generator exceeded time budget; tearing down",
			"task_id", spec.TaskID, "budget", budget)
		s.terminateGroup(g)
		return s.finishRun(g, <-waitErr)
	}
}

func (s *Supervisor) finishRun(g *group, waitErr error) (RunResult, error) {
	res := RunResult{StderrTail: g.stderr.String()}
	var exitErr *exec.ExitError
	switch {
	case waitErr == nil:
		res.ExitCode = 0
	case errors.As(waitErr, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		return res, fmt.Errorf("waiting for generator of task %s: %w", g.taskID, waitErr)
	}
	return res, nil
}

// Terminate stops the process group of taskID. Terminating a group that is
// already gone is success.
func (s *Supervisor) Terminate(taskID string) error {
	s.mu.Lock()
	g, ok := s.groups[taskID]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	s.terminateGroup(g)
	return nil
}

// terminateGroup sends graceful terminates to the master and every recorded
// child, escalates to kill, and logs anything that survives.
func (s *Supervisor) terminateGroup(g *group) {
	pids := append([]int32{int32(g.cmd.Process.Pid)}, g.children...)
	for _, pid := range pids {
		if p, err := process.NewProcess(pid); err == nil {
			_ = p.Terminate()
		}
	}

	deadline := time.Now().Add(gracefulStopWait)
	for time.Now().Before(deadline) && anyRunning(pids) {
		time.Sleep(250 * time.Millisecond)
	}

	for _, pid := range pids {
		if p, err := process.NewProcess(pid); err == nil {
			if running, _ := p.IsRunning(); running {
				_ = p.Kill()
			}
		}
	}

	deadline = time.Now().Add(killResidualWait)
	for time.Now().Before(deadline) && anyRunning(pids) {
		time.Sleep(250 * time.Millisecond)
	}
	for _, pid := range pids {
		if p, err := process.NewProcess(pid); err == nil {
			if running, _ := p.IsRunning(); running {
				s.logger.Error("Process survived kill", "task_id", g.taskID, "pid", pid)
			}
		}
	}
}

func anyRunning(pids []int32) bool {
	for _, pid := range pids {
		if p, err := process.NewProcess(pid); err == nil {
			if running, _ := p.IsRunning(); running {
				return true
			}
		}
	}
	return false
}

// captureChildren polls the master's child PIDs until the set is stable for
// three consecutive intervals, capped at fifteen seconds.
func (s *Supervisor) captureChildren(masterPID int) []int32 {
	master, err := process.NewProcess(int32(masterPID))
	if err != nil {
		return nil
	}

	var last []int32
	stable := 0
	deadline := time.Now().Add(childCaptureCap)
	for time.Now().Before(deadline) {
		time.Sleep(childCaptureInterval)
		current := childPIDs(master)
		if samePIDs(current, last) {
			stable++
			if stable >= childStableIntervals {
				break
			}
		} else {
			stable = 1
			last = current
		}
	}
	return last
}

func childPIDs(master *process.Process) []int32 {
	children, err := master.Children()
	if err != nil {
		return nil
	}
	pids := make([]int32, 0, len(children))
	for _, c := range children {
		pids = append(pids, c.Pid)
	}
	return pids
}

func samePIDs(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[int32]struct{}, len(a))
	for _, pid := range a {
		seen[pid] = struct{}{}
	}
	for _, pid := range b {
		if _, ok := seen[pid]; !ok {
			return false
		}
	}
	return true
}

// ActiveTaskIDs lists tasks with a live process group.
func (s *Supervisor) ActiveTaskIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.groups))
	for id := range s.groups {
		ids = append(ids, id)
	}
	return ids
}

func (s *Supervisor) allocatePort(taskID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for port := portRangeStart; port < portRangeEnd; port++ {
		if _, reserved := s.ports[port]; reserved {
			continue
		}
		ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err != nil {
			continue
		}
		ln.Close()
		s.ports[port] = taskID
		return port, nil
	}
	return 0, fmt.Errorf("no free coordinator port in [%d, %d)", portRangeStart, portRangeEnd)
}

func (s *Supervisor) releasePort(port int) {
	if port == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ports, port)
}

func (s *Supervisor) forget(g *group) {
	s.releasePort(g.port)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.groups, g.taskID)
}
