package coordinator

import (
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"
)

const (
	dialRetryWindow = 10 * time.Second
	dialRetryGap    = 250 * time.Millisecond
	sendAttempts    = 3
	sendBackoff     = 500 * time.Millisecond
)

// Worker is the bus client side: it answers heartbeat probes and delivers
// snapshots when the master asks for them.
type Worker struct {
	conn     net.Conn
	workerID string
	snapshot func() Snapshot
	logger   *slog.Logger

	writeMu sync.Mutex
}

// DialMaster connects to the master's bus port, retrying briefly since the
// master and its workers start concurrently.
func DialMaster(port int, workerID string, snapshot func() Snapshot, logger *slog.Logger) (*Worker, error) {
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	deadline := time.Now().Add(dialRetryWindow)
	var conn net.Conn
	var err error
	for {
		conn, err = net.DialTimeout("tcp", addr, dialRetryGap)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("connecting to master at %s: %w", addr, err)
		}
		time.Sleep(dialRetryGap)
	}
	return &Worker{conn: conn, workerID: workerID, snapshot: snapshot, logger: logger}, nil
}

// Serve handles bus messages until the connection drops or stopCh closes.
func (w *Worker) Serve(stopCh <-chan struct{}) {
	go func() {
		<-stopCh
		w.conn.Close()
	}()

	for {
		msg, err := ReadFrame(w.conn)
		if err != nil {
			return
		}
		switch msg.Kind {
		case KindRequestMetrics:
			w.deliverSnapshot()
		case KindWorkerHeartbeat:
			w.send(Message{Kind: KindWorkerHeartbeatResponse, WorkerID: w.workerID})
		}
	}
}

func (w *Worker) deliverSnapshot() {
	snap := w.snapshot()
	msg := Message{Kind: KindWorkerCustomMetrics, WorkerID: w.workerID, Snapshot: &snap}

	var err error
	for attempt := 1; attempt <= sendAttempts; attempt++ {
		if err = w.send(msg); err == nil {
			w.send(Message{Kind: KindWorkerMetricsSent, WorkerID: w.workerID})
			return
		}
		w.logger.Warn("Snapshot delivery failed",
			"attempt", attempt, "request_id", snap.RequestID, "error", err)
		time.Sleep(sendBackoff)
	}
	w.logger.Error("Giving up on snapshot delivery",
		"request_id", snap.RequestID, "error", err)
}

func (w *Worker) send(msg Message) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()
	return WriteFrame(w.conn, msg)
}

// Close drops the bus connection.
func (w *Worker) Close() {
	w.conn.Close()
}
