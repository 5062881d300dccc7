// Package runcfg holds the process-wide immutable configuration of one
// load-generation run, constructed once from CLI flags at generator startup
// and passed down the call stack explicitly.
package runcfg

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/perfflow/perfflow/pkg/fieldmap"
)

// OpenAIChatPath is the API path that switches the generator into OpenAI
// chat-completions mode.
const OpenAIChatPath = "/chat/completions"

// Chat types.
const (
	ChatTypeText       = 0
	ChatTypeMultimodal = 1
)

// Flags mirrors the generator CLI surface one to one. String fields carry
// raw (possibly JSON) flag values; Build validates and decodes them.
type Flags struct {
	TaskID         string
	Host           string
	APIPath        string
	Headers        string
	Cookies        string
	RequestPayload string
	ModelName      string
	SystemPrompt   string
	StreamMode     bool
	ChatType       int
	CertFile       string
	KeyFile        string
	FieldMapping   string
	TestData       string
	Users          int
	SpawnRate      int
	RunTime        int // seconds
	Processes      int

	// Internal wiring between the master and its worker children.
	Worker     bool
	MasterPort int
}

// Config is the validated, immutable run context.
type Config struct {
	TaskID         string
	Host           string
	APIPath        string
	ModelName      string
	SystemPrompt   string
	StreamMode     bool
	ChatType       int
	Headers        map[string]string
	Cookies        map[string]string
	RequestPayload string
	CertFile       string
	KeyFile        string
	FieldMap       fieldmap.FieldMap
	TestData       string
	Duration       time.Duration
	Users          int
	SpawnRate      int
	Processes      int

	Worker     bool
	MasterPort int
}

// Build validates flag values and assembles the run context.
func (f Flags) Build() (*Config, error) {
	if f.Host == "" {
		return nil, fmt.Errorf("host is required")
	}
	if f.Users < 1 {
		return nil, fmt.Errorf("users must be >= 1, got %d", f.Users)
	}
	if f.RunTime < 1 {
		return nil, fmt.Errorf("run-time must be >= 1s, got %d", f.RunTime)
	}

	headers, err := decodeStringMap(f.Headers)
	if err != nil {
		return nil, fmt.Errorf("invalid headers: %w", err)
	}
	cookies, err := decodeStringMap(f.Cookies)
	if err != nil {
		return nil, fmt.Errorf("invalid cookies: %w", err)
	}
	fm, err := fieldmap.Parse(f.FieldMapping)
	if err != nil {
		return nil, err
	}

	apiPath := f.APIPath
	if apiPath == "" {
		apiPath = OpenAIChatPath
	}

	spawnRate := f.SpawnRate
	if spawnRate < 1 {
		spawnRate = 1
	}

	return &Config{
		TaskID:         f.TaskID,
		Host:           strings.TrimRight(f.Host, "/"),
		APIPath:        apiPath,
		ModelName:      f.ModelName,
		SystemPrompt:   f.SystemPrompt,
		StreamMode:     f.StreamMode,
		ChatType:       f.ChatType,
		Headers:        headers,
		Cookies:        cookies,
		RequestPayload: f.RequestPayload,
		CertFile:       f.CertFile,
		KeyFile:        f.KeyFile,
		FieldMap:       fm,
		TestData:       f.TestData,
		Duration:       time.Duration(f.RunTime) * time.Second,
		Users:          f.Users,
		SpawnRate:      spawnRate,
		Processes:      f.Processes,
		Worker:         f.Worker,
		MasterPort:     f.MasterPort,
	}, nil
}

// OpenAIMode reports whether the run targets an OpenAI-style chat endpoint.
func (c *Config) OpenAIMode() bool {
	return c.APIPath == OpenAIChatPath
}

// EndpointName is the metric name requests are recorded under.
func (c *Config) EndpointName() string {
	if c.OpenAIMode() {
		return "chat_completions"
	}
	return "custom_api"
}

// EffectiveFieldMap returns the field map with protocol defaults applied
// and, in OpenAI mode, the well-known chunk paths filled in for any field
// the task did not override.
func (c *Config) EffectiveFieldMap() fieldmap.FieldMap {
	fm := c.FieldMap.WithDefaults()
	if !c.OpenAIMode() {
		return fm
	}
	if fm.Content == "" {
		if c.StreamMode {
			fm.Content = "choices.0.delta.content"
		} else {
			fm.Content = "choices.0.message.content"
		}
	}
	if fm.ReasoningContent == "" {
		if c.StreamMode {
			fm.ReasoningContent = "choices.0.delta.reasoning_content"
		} else {
			fm.ReasoningContent = "choices.0.message.reasoning_content"
		}
	}
	if fm.Usage == "" {
		fm.Usage = "usage"
	}
	if fm.Prompt == "" {
		fm.Prompt = "messages.0.content"
	}
	return fm
}

func decodeStringMap(raw string) (map[string]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, err
	}
	return m, nil
}
