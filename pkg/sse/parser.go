package sse

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/perfflow/perfflow/pkg/fieldmap"
)

// Timing metric names emitted while a response is consumed.
const (
	MetricTimeToFirstOutputToken    = "Time_to_first_output_token"
	MetricTimeToFirstReasoningToken = "Time_to_first_reasoning_token"
	MetricTimeToReasoningCompletion = "Time_to_reasoning_completion"
	MetricTimeToOutputCompletion    = "Time_to_output_completion"
	MetricTotalTime                 = "Total_time"
)

// Emitter receives timing observations as the stream progresses.
type Emitter interface {
	EmitTiming(name string, ms float64)
}

// FormatError reports a record that could not be parsed as JSON.
type FormatError struct {
	Record string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unparseable stream record: %s", e.Record)
}

// ResponseError reports an error object carried inside the stream itself.
type ResponseError struct {
	Detail string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("error in response stream: %s", e.Detail)
}

// Result is the accumulated outcome of one parsed response.
type Result struct {
	Content          string
	ReasoningContent string

	// UsageExtracted marks the token counts as server-reported and
	// authoritative; the tokenizer must not be consulted.
	UsageExtracted   bool
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

// Parser is the per-request state machine. Feed it records in order, then
// call Finish once the stream ended cleanly.
type Parser struct {
	fm      fieldmap.FieldMap
	start   time.Time
	emitter Emitter
	now     func() time.Time

	content   strings.Builder
	reasoning strings.Builder
	result    Result

	outputSeen       bool
	firstOutputAt    time.Time
	reasoningSeen    bool
	firstReasoningAt time.Time
	reasoningActive  bool
	reasoningEnded   bool
}

// NewParser creates a parser for one request started at start.
func NewParser(fm fieldmap.FieldMap, start time.Time, emitter Emitter) *Parser {
	return &Parser{fm: fm, start: start, emitter: emitter, now: time.Now}
}

// Feed processes one record. It returns done=true when the record signals
// the end of the stream; a non-nil error also ends the stream and the
// request counts as failed.
func (p *Parser) Feed(record string) (done bool, err error) {
	rec := strings.ToValidUTF8(record, "�")
	switch {
	case p.fm.EndPrefix != "":
		rec = strings.TrimPrefix(rec, p.fm.EndPrefix)
	case p.fm.StreamPrefix != "" && strings.HasPrefix(rec, p.fm.StreamPrefix):
		rec = strings.TrimPrefix(rec, p.fm.StreamPrefix)
	}
	rec = strings.TrimSpace(rec)

	if rec == p.fm.StopFlag {
		return true, nil
	}
	if p.fm.DataFormat != "json" {
		return false, nil
	}

	var obj any
	if err := json.Unmarshal([]byte(rec), &obj); err != nil {
		return true, &FormatError{Record: snippet(rec)}
	}

	if p.fm.EndField != "" {
		if fieldmap.GetString(obj, p.fm.EndField) == p.fm.StopFlag {
			return true, nil
		}
	}
	if detail, bad := responseError(obj); bad {
		return true, &ResponseError{Detail: detail}
	}

	p.extractUsage(obj)

	content := p.pathString(obj, p.fm.Content)
	if content != "" {
		if !p.outputSeen {
			p.outputSeen = true
			p.firstOutputAt = p.now()
			p.emit(MetricTimeToFirstOutputToken, p.sinceMs(p.start))
		}
		if !p.result.UsageExtracted {
			p.content.WriteString(content)
		}
	}

	reasoning := p.pathString(obj, p.fm.ReasoningContent)
	if reasoning != "" {
		p.reasoningActive = true
		if !p.reasoningSeen {
			p.reasoningSeen = true
			p.firstReasoningAt = p.now()
			p.emit(MetricTimeToFirstReasoningToken, p.sinceMs(p.start))
		}
		if !p.result.UsageExtracted {
			p.reasoning.WriteString(reasoning)
		}
	}

	// The first content-only record after a reasoning phase marks the
	// reasoning-to-output transition.
	if p.reasoningActive && !p.reasoningEnded && reasoning == "" && content != "" {
		p.reasoningEnded = true
		p.emit(MetricTimeToReasoningCompletion, p.sinceMs(p.firstReasoningAt))
	}

	return false, nil
}

// Finish emits the completion timings for a cleanly ended stream.
func (p *Parser) Finish() {
	var outputMs float64
	if p.outputSeen {
		outputMs = p.sinceMs(p.firstOutputAt)
	}
	p.emit(MetricTimeToOutputCompletion, outputMs)
	p.emit(MetricTotalTime, p.sinceMs(p.start))
}

// Result returns the accumulated content and token counts.
func (p *Parser) Result() Result {
	r := p.result
	r.Content = p.content.String()
	r.ReasoningContent = p.reasoning.String()
	return r
}

func (p *Parser) extractUsage(obj any) {
	if p.fm.Usage == "" || p.result.UsageExtracted {
		return
	}
	usage, ok := fieldmap.Get(obj, p.fm.Usage)
	if !ok {
		return
	}
	completion := intField(usage, "completion_tokens")
	total := intField(usage, "total_tokens")
	if completion == 0 || total == 0 {
		return
	}
	p.result.UsageExtracted = true
	p.result.CompletionTokens = completion
	p.result.TotalTokens = total
	p.result.PromptTokens = intField(usage, "prompt_tokens")
}

func (p *Parser) pathString(obj any, path string) string {
	if path == "" {
		return ""
	}
	return fieldmap.GetString(obj, path)
}

func (p *Parser) emit(name string, ms float64) {
	if p.emitter != nil {
		p.emitter.EmitTiming(name, ms)
	}
}

func (p *Parser) sinceMs(t time.Time) float64 {
	return float64(p.now().Sub(t)) / float64(time.Millisecond)
}

func intField(usage any, key string) int64 {
	m, ok := usage.(map[string]any)
	if !ok {
		return 0
	}
	v, ok := m[key].(float64)
	if !ok {
		return 0
	}
	return int64(v)
}

// responseError checks a parsed record for the in-band error shapes used by
// inference servers: a negative code, a non-empty error string, an error
// object/event marker, or a nested error with type or message.
func responseError(obj any) (string, bool) {
	m, ok := obj.(map[string]any)
	if !ok {
		return "", false
	}
	if code, ok := m["code"].(float64); ok && code < 0 {
		return fmt.Sprintf("code=%d", int64(code)), true
	}
	if s, ok := m["error"].(string); ok && s != "" {
		return s, true
	}
	if s, ok := m["object"].(string); ok && s == "error" {
		return messageOf(m), true
	}
	if s, ok := m["event"].(string); ok && s == "error" {
		return messageOf(m), true
	}
	if errObj, ok := m["error"].(map[string]any); ok {
		typ, _ := errObj["type"].(string)
		msg, _ := errObj["message"].(string)
		if typ != "" || msg != "" {
			return strings.TrimSpace(typ + " " + msg), true
		}
	}
	return "", false
}

func messageOf(m map[string]any) string {
	if s, ok := m["message"].(string); ok && s != "" {
		return s
	}
	raw, _ := json.Marshal(m)
	return snippet(string(raw))
}

func snippet(s string) string {
	const limit = 200
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
