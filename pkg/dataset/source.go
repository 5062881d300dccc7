// Package dataset implements the prompt source: a lazy, cyclic iterator over
// prompt records loaded from a JSONL dataset, a file path, or the built-in
// default set.
package dataset

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// ErrInvalidDataset indicates the dataset was unreadable or produced zero
// valid records. Fatal to the virtual-user runtime.
var ErrInvalidDataset = errors.New("invalid dataset")

// ModeDefault selects the built-in prompt set.
const ModeDefault = "default"

// warnQueueSize is the record count above which loading logs a warning.
// Not a hard cap.
const warnQueueSize = 1000000

// PromptRecord is one dataset entry.
type PromptRecord struct {
	ID          string `json:"id"`
	Prompt      string `json:"prompt"`
	Image       string `json:"image,omitempty"` // local path, URL, or raw base64
	ImageBase64 string `json:"image_base64,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// HasImage reports whether the record carries multimodal content.
func (r PromptRecord) HasImage() bool {
	return r.ImageBase64 != "" || r.ImageURL != ""
}

// Source yields prompt records cyclically: after the last record, the next
// call yields the first again. Safe for concurrent use by virtual users.
type Source struct {
	mu      sync.Mutex
	records []PromptRecord
	next    int
}

// Load builds a Source for the given dataset mode:
//
//	""         → empty source; the request template must be self-contained
//	"default"  → built-in prompts
//	JSONL text → parsed inline (detected by a newline or a leading "{")
//	otherwise  → treated as a filesystem path to a JSONL file
func Load(mode string) (*Source, error) {
	trimmed := strings.TrimSpace(mode)
	switch {
	case trimmed == "":
		return &Source{}, nil
	case trimmed == ModeDefault:
		return &Source{records: defaultRecords()}, nil
	case strings.Contains(trimmed, "\n") || strings.HasPrefix(trimmed, "{"):
		return fromJSONL(trimmed, "<inline>")
	default:
		data, err := os.ReadFile(trimmed)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidDataset, trimmed, err)
		}
		return fromJSONL(string(data), trimmed)
	}
}

// fromJSONL parses one record per line. Unparseable lines are logged and
// skipped; zero valid lines is an error.
func fromJSONL(content, origin string) (*Source, error) {
	var records []PromptRecord
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var rec PromptRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil || rec.Prompt == "" {
			slog.Warn("Skipping unparseable dataset line",
				"origin", origin, "line", i+1, "error", err)
			continue
		}
		resolveImage(&rec)
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no valid lines in %s", ErrInvalidDataset, origin)
	}
	if len(records) > warnQueueSize {
		slog.Warn("Dataset is very large; memory use may be significant",
			"origin", origin, "records", len(records))
	}
	return &Source{records: records}, nil
}

// resolveImage normalizes the free-form image field. Local paths are
// base64-encoded once at load time, never per request.
func resolveImage(rec *PromptRecord) {
	if rec.Image == "" {
		return
	}
	switch {
	case strings.HasPrefix(rec.Image, "http://"), strings.HasPrefix(rec.Image, "https://"):
		rec.ImageURL = rec.Image
	default:
		if data, err := os.ReadFile(rec.Image); err == nil {
			rec.ImageBase64 = base64.StdEncoding.EncodeToString(data)
		} else {
			// Not a readable file: assume it is already base64 content.
			rec.ImageBase64 = rec.Image
		}
	}
	rec.Image = ""
}

// Next yields the next record, wrapping after the last. ok is false when
// the source is empty (dataset mode "").
func (s *Source) Next() (rec PromptRecord, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.records) == 0 {
		return PromptRecord{}, false
	}
	rec = s.records[s.next]
	s.next = (s.next + 1) % len(s.records)
	return rec, true
}

// Len returns the number of loaded records.
func (s *Source) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// defaultRecords returns the built-in prompt set: a spread of short, medium,
// and long prompts so the default run exercises both prefill and decode.
func defaultRecords() []PromptRecord {
	prompts := []string{
		"What is 2+2?",
		"Name three primary colors.",
		"Say hello in French.",
		"Summarize the plot of Romeo and Juliet in two sentences.",
		"Explain the difference between TCP and UDP.",
		"Write a haiku about distributed systems.",
		"List five common HTTP status codes and what they mean.",
		"Explain what a large language model is to a ten-year-old.",
		"You are reviewing the architecture of a service that ingests clickstream " +
			"events at 50,000 events per second and must serve aggregate dashboards " +
			"with sub-second freshness. Describe a design covering ingestion, storage, " +
			"aggregation, and failure handling, and call out the main trade-offs.",
		"Write a detailed comparison of optimistic and pessimistic concurrency " +
			"control in databases. Cover lock management, abort rates under " +
			"contention, throughput characteristics, and give an example workload " +
			"where each approach is clearly preferable.",
	}
	records := make([]PromptRecord, len(prompts))
	for i, p := range prompts {
		records[i] = PromptRecord{ID: fmt.Sprintf("default-%d", i), Prompt: p}
	}
	return records
}
