package coordinator

import (
	"fmt"
	"log/slog"
	"net"
	"sort"
	"sync"
	"time"
)

const (
	finalBroadcasts    = 3
	broadcastGap       = 1 * time.Second
	collectTimeout     = 15 * time.Second
	rebroadcastEvery   = 5 * time.Second
	collectPollEvery   = 250 * time.Millisecond
	heartbeatInterval  = 5 * time.Second
)

type workerState struct {
	lastHeartbeat time.Time
	metricsCount  int
	lastSnapshot  *Snapshot
}

// Master is the bus server side: it accepts worker connections, records
// snapshots exactly once per request_id, and aggregates at test end.
type Master struct {
	listener net.Listener
	logger   *slog.Logger

	mu           sync.Mutex
	conns        map[net.Conn]struct{}
	seenRequests map[string]struct{}
	workers      map[string]*workerState
	snapshots    []Snapshot
	closed       bool

	wg sync.WaitGroup
}

// NewMaster starts listening on the allocated localhost port.
func NewMaster(port int, logger *slog.Logger) (*Master, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return nil, fmt.Errorf("listening on coordinator port %d: %w", port, err)
	}
	return &Master{
		listener:     ln,
		logger:       logger,
		conns:        make(map[net.Conn]struct{}),
		seenRequests: make(map[string]struct{}),
		workers:      make(map[string]*workerState),
	}, nil
}

// Serve runs the accept loop until Close. Call it on its own goroutine.
func (m *Master) Serve() {
	for {
		conn, err := m.listener.Accept()
		if err != nil {
			return
		}
		m.mu.Lock()
		if m.closed {
			m.mu.Unlock()
			conn.Close()
			return
		}
		m.conns[conn] = struct{}{}
		m.mu.Unlock()

		m.wg.Add(1)
		go m.readLoop(conn)
	}
}

func (m *Master) readLoop(conn net.Conn) {
	defer m.wg.Done()
	defer func() {
		m.mu.Lock()
		delete(m.conns, conn)
		m.mu.Unlock()
		conn.Close()
	}()

	for {
		msg, err := ReadFrame(conn)
		if err != nil {
			return
		}
		m.handle(msg)
	}
}

func (m *Master) handle(msg Message) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch msg.Kind {
	case KindWorkerCustomMetrics:
		if msg.Snapshot == nil {
			return
		}
		snap := *msg.Snapshot
		if _, dup := m.seenRequests[snap.RequestID]; dup {
			m.logger.Info("Dropping duplicate metrics delivery",
				"worker_id", snap.WorkerID, "request_id", snap.RequestID)
			return
		}
		m.seenRequests[snap.RequestID] = struct{}{}
		m.snapshots = append(m.snapshots, snap)
		st := m.worker(snap.WorkerID)
		st.lastSnapshot = &snap

	case KindWorkerMetricsSent:
		m.worker(msg.WorkerID).metricsCount++

	case KindWorkerHeartbeatResponse:
		m.worker(msg.WorkerID).lastHeartbeat = time.Now()
	}
}

func (m *Master) worker(id string) *workerState {
	st, ok := m.workers[id]
	if !ok {
		st = &workerState{}
		m.workers[id] = st
	}
	return st
}

// Broadcast sends a master-originated message to every connected worker.
func (m *Master) Broadcast(kind string) {
	m.mu.Lock()
	conns := make([]net.Conn, 0, len(m.conns))
	for c := range m.conns {
		conns = append(conns, c)
	}
	m.mu.Unlock()

	for _, c := range conns {
		if err := WriteFrame(c, Message{Kind: kind}); err != nil {
			m.logger.Warn("Broadcast to worker failed", "kind", kind, "error", err)
		}
	}
}

// RunHeartbeats probes worker liveness until stopCh closes.
func (m *Master) RunHeartbeats(stopCh <-chan struct{}) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			m.Broadcast(KindWorkerHeartbeat)
		}
	}
}

// SnapshotCount returns how many unique snapshots have been recorded.
func (m *Master) SnapshotCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.snapshots)
}

// CollectFinal runs the end-of-test protocol: broadcast request_metrics up
// to three times one second apart, then poll up to fifteen seconds for at
// least workerCount snapshots, re-broadcasting every five seconds. A
// shortfall is logged and tolerated.
func (m *Master) CollectFinal(workerCount int) []Snapshot {
	for i := 0; i < finalBroadcasts; i++ {
		m.Broadcast(KindRequestMetrics)
		if m.SnapshotCount() >= workerCount {
			break
		}
		time.Sleep(broadcastGap)
	}

	deadline := time.Now().Add(collectTimeout)
	lastBroadcast := time.Now()
	for m.SnapshotCount() < workerCount && time.Now().Before(deadline) {
		if time.Since(lastBroadcast) >= rebroadcastEvery {
			m.Broadcast(KindRequestMetrics)
			lastBroadcast = time.Now()
		}
		time.Sleep(collectPollEvery)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.snapshots) < workerCount {
		m.logger.Warn("Proceeding with incomplete worker metrics",
			"received", len(m.snapshots), "expected", workerCount,
			"missing_worker_ids", m.missingWorkersLocked())
	}
	return append([]Snapshot(nil), m.snapshots...)
}

func (m *Master) missingWorkersLocked() []string {
	var missing []string
	for id, st := range m.workers {
		if st.lastSnapshot == nil {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)
	return missing
}

// Aggregate folds the received snapshots into run totals, keeping the most
// recent snapshot per worker_id. Snapshots arriving after this call are
// discarded.
func Aggregate(snapshots []Snapshot) (requestCount, completionTokens, totalTokens int64, perWorker []Snapshot) {
	latest := make(map[string]Snapshot)
	for _, s := range snapshots {
		cur, ok := latest[s.WorkerID]
		if !ok || s.Timestamp >= cur.Timestamp {
			latest[s.WorkerID] = s
		}
	}
	ids := make([]string, 0, len(latest))
	for id := range latest {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		s := latest[id]
		requestCount += s.RequestCount
		completionTokens += s.CompletionTokens
		totalTokens += s.TotalTokens
		perWorker = append(perWorker, s)
	}
	return requestCount, completionTokens, totalTokens, perWorker
}

// Close stops the accept loop and drops all worker connections.
func (m *Master) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	conns := make([]net.Conn, 0, len(m.conns))
	for c := range m.conns {
		conns = append(conns, c)
	}
	m.mu.Unlock()

	m.listener.Close()
	for _, c := range conns {
		c.Close()
	}
	m.wg.Wait()
}
