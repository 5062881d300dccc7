// Package supervisor launches and tears down the generator process group
// for each task: one master plus optional worker children, a reserved bus
// port, startup reconciliation, and a periodic orphan reaper.
package supervisor

import (
	"fmt"
	"runtime"
	"strconv"
	"time"
)

const (
	// Above this many users the run is split across worker processes.
	multiProcessThreshold = 1000
	minUsersPerProcess    = 600
	maxWorkerProcesses    = 8
)

// RunSpec carries everything the generator needs for one task, lifted from
// the task record by the dispatcher.
type RunSpec struct {
	TaskID         string
	Host           string
	APIPath        string
	ModelName      string
	SystemPrompt   string
	StreamMode     bool
	ChatType       int
	Headers        string
	Cookies        string
	RequestPayload string
	FieldMapping   string
	TestData       string
	CertFile       string
	KeyFile        string
	Users          int
	SpawnRate      int
	Duration       time.Duration
}

// workerProcesses picks N for the run: single-process below the user
// threshold or on tiny hosts, otherwise scaled by users with CPU and a hard
// cap as ceilings.
func workerProcesses(users, cpus int) int {
	if users <= multiProcessThreshold || cpus <= 1 {
		return 0
	}
	n := users / minUsersPerProcess
	if limit := min(cpus, maxWorkerProcesses); n > limit {
		n = limit
	}
	if n < 1 {
		n = 1
	}
	return n
}

func (spec RunSpec) processes() int {
	return workerProcesses(spec.Users, runtime.NumCPU())
}

// generatorArgs renders the generator CLI for the master process.
func (spec RunSpec) generatorArgs(processes, masterPort int) []string {
	args := []string{
		"--task-id", spec.TaskID,
		"--host", spec.Host,
		"--api_path", spec.APIPath,
		"--users", strconv.Itoa(spec.Users),
		"--spawn-rate", strconv.Itoa(spec.SpawnRate),
		"--run-time", strconv.Itoa(int(spec.Duration / time.Second)),
		fmt.Sprintf("--stream_mode=%t", spec.StreamMode),
		"--chat_type", strconv.Itoa(spec.ChatType),
		"--processes", strconv.Itoa(processes),
	}
	if masterPort > 0 {
		args = append(args, "--master-port", strconv.Itoa(masterPort))
	}
	optional := []struct{ flag, value string }{
		{"--model_name", spec.ModelName},
		{"--system_prompt", spec.SystemPrompt},
		{"--headers", spec.Headers},
		{"--cookies", spec.Cookies},
		{"--request_payload", spec.RequestPayload},
		{"--field_mapping", spec.FieldMapping},
		{"--test_data", spec.TestData},
		{"--cert_file", spec.CertFile},
		{"--key_file", spec.KeyFile},
	}
	for _, opt := range optional {
		if opt.value != "" {
			args = append(args, opt.flag, opt.value)
		}
	}
	return args
}
