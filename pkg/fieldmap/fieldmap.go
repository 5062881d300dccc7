// Package fieldmap implements the dotted-path field map used to dissect
// responses from non-OpenAI ("custom") APIs, and the pure path helpers
// shared by the payload builder and the stream parser.
package fieldmap

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Default values applied when the corresponding field is unset.
const (
	DefaultStreamPrefix = "data:"
	DefaultDataFormat   = "json"
	DefaultStopFlag     = "[DONE]"
)

// FieldMap describes how to interpret records of a custom API stream.
// All fields are optional; zero values fall back to the defaults above.
type FieldMap struct {
	StreamPrefix     string `json:"stream_prefix,omitempty"`
	DataFormat       string `json:"data_format,omitempty"`
	StopFlag         string `json:"stop_flag,omitempty"`
	EndPrefix        string `json:"end_prefix,omitempty"`
	EndField         string `json:"end_field,omitempty"`
	Content          string `json:"content,omitempty"`
	ReasoningContent string `json:"reasoning_content,omitempty"`
	Prompt           string `json:"prompt,omitempty"`
	Usage            string `json:"usage,omitempty"`
}

// Parse decodes a JSON field map. An empty string yields the zero map
// (defaults still apply via WithDefaults).
func Parse(raw string) (FieldMap, error) {
	var m FieldMap
	if strings.TrimSpace(raw) == "" {
		return m, nil
	}
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return FieldMap{}, fmt.Errorf("invalid field_mapping JSON: %w", err)
	}
	return m, nil
}

// WithDefaults returns a copy with unset protocol fields filled in.
func (m FieldMap) WithDefaults() FieldMap {
	if m.StreamPrefix == "" {
		m.StreamPrefix = DefaultStreamPrefix
	}
	if m.DataFormat == "" {
		m.DataFormat = DefaultDataFormat
	}
	if m.StopFlag == "" {
		m.StopFlag = DefaultStopFlag
	}
	return m
}

// Get resolves a dotted path against a decoded JSON value. Integer segments
// index lists; other segments read object keys. When the current value is a
// list but the segment is not an integer, Get descends into element 0 once
// and retries the same segment (compatibility quirk — callers rely on it).
// A missing segment yields (nil, false).
func Get(obj any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	cur := obj
	for _, seg := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			if idx, err := strconv.Atoi(seg); err == nil {
				if idx < 0 {
					idx += len(node)
				}
				if idx < 0 || idx >= len(node) {
					return nil, false
				}
				cur = node[idx]
				continue
			}
			// Non-integer segment over a list: descend into element 0 and retry.
			if len(node) == 0 {
				return nil, false
			}
			inner, ok := node[0].(map[string]any)
			if !ok {
				return nil, false
			}
			v, ok := inner[seg]
			if !ok {
				return nil, false
			}
			cur = v
		default:
			return nil, false
		}
	}
	return cur, true
}

// GetString resolves a dotted path and renders the result as a string.
// Missing paths and JSON null yield "".
func GetString(obj any, path string) string {
	v, ok := Get(obj, path)
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// Set writes value at a dotted path inside a decoded JSON value, mutating
// maps and lists in place. Intermediate object keys are created as needed;
// list indices (negative permitted when already in range) must exist.
func Set(obj any, path string, value any) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}
	segments := strings.Split(path, ".")
	cur := obj
	for i, seg := range segments {
		last := i == len(segments)-1
		switch node := cur.(type) {
		case map[string]any:
			if last {
				node[seg] = value
				return nil
			}
			next, ok := node[seg]
			if !ok || next == nil {
				created := map[string]any{}
				node[seg] = created
				cur = created
				continue
			}
			cur = next
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return fmt.Errorf("list index expected at %q", seg)
			}
			if idx < 0 {
				idx += len(node)
			}
			if idx < 0 || idx >= len(node) {
				return fmt.Errorf("list index %s out of range (len %d)", seg, len(node))
			}
			if last {
				node[idx] = value
				return nil
			}
			cur = node[idx]
		default:
			return fmt.Errorf("cannot descend into %T at %q", cur, seg)
		}
	}
	return nil
}
