package supervisor

import "sync"

// ErrorFieldLimit caps user-visible error text persisted to the task store.
const ErrorFieldLimit = 65000

const truncationMarker = "... (truncated)"

// Truncate caps s at ErrorFieldLimit characters with a tail marker.
func Truncate(s string) string {
	if len(s) <= ErrorFieldLimit {
		return s
	}
	return s[:ErrorFieldLimit-len(truncationMarker)] + truncationMarker
}

// tailWriter retains the last ErrorFieldLimit bytes written to it. It backs
// the generator's stderr so a crashing run leaves a bounded, recent tail.
type tailWriter struct {
	mu  sync.Mutex
	buf []byte
}

func (w *tailWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buf = append(w.buf, p...)
	if over := len(w.buf) - ErrorFieldLimit; over > 0 {
		w.buf = w.buf[over:]
	}
	return len(p), nil
}

func (w *tailWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return string(w.buf)
}
