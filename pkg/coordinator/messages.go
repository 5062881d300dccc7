// Package coordinator implements the master-worker message bus for one
// load-test run: length-prefixed JSON frames over localhost TCP, snapshot
// deduplication, heartbeat tracking, and the end-of-test collection
// protocol.
package coordinator

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"github.com/perfflow/perfflow/pkg/stats"
)

// Message kinds on the bus.
const (
	KindRequestMetrics          = "request_metrics"
	KindWorkerHeartbeat         = "worker_heartbeat"
	KindWorkerCustomMetrics     = "worker_custom_metrics"
	KindWorkerMetricsSent       = "worker_metrics_sent"
	KindWorkerHeartbeatResponse = "worker_heartbeat_response"
)

// Snapshot is one worker's cumulative state at a point in time. RequestID is
// monotonic and unique within the worker; WorkerID is "<pid>_<start_ms>" and
// stays unique even when PIDs are reused.
type Snapshot struct {
	WorkerID         string           `json:"worker_id"`
	PID              int              `json:"pid"`
	RequestID        string           `json:"request_id"`
	Timestamp        int64            `json:"timestamp"`
	RequestCount     int64            `json:"request_count"`
	CompletionTokens int64            `json:"completion_tokens"`
	TotalTokens      int64            `json:"total_tokens"`
	Endpoints        []stats.Endpoint `json:"endpoints,omitempty"`
}

// Message is one frame on the bus.
type Message struct {
	Kind     string    `json:"kind"`
	WorkerID string    `json:"worker_id,omitempty"`
	Snapshot *Snapshot `json:"snapshot,omitempty"`
}

// maxFrameSize bounds a single frame; endpoint sample payloads stay well
// under this.
const maxFrameSize = 16 * 1024 * 1024

// WriteFrame writes msg as a 4-byte big-endian length followed by JSON.
func WriteFrame(w io.Writer, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	var header [4]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(payload)))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err = w.Write(payload)
	return err
}

// ReadFrame reads one length-prefixed message.
func ReadFrame(r io.Reader) (Message, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return Message{}, err
	}
	size := binary.BigEndian.Uint32(header[:])
	if size > maxFrameSize {
		return Message{}, fmt.Errorf("frame of %d bytes exceeds limit", size)
	}
	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Message{}, err
	}
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, fmt.Errorf("decoding frame: %w", err)
	}
	return msg, nil
}
