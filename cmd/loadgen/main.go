// loadgen drives load against an LLM inference endpoint. One process per
// task in single-process mode; in multi-process mode the engine starts it as
// a master that forks --worker children and aggregates their metrics.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/perfflow/perfflow/pkg/loadgen"
	"github.com/perfflow/perfflow/pkg/runcfg"
)

// Exit codes consumed by the engine's dispatcher.
const (
	exitOK             = 0
	exitFailedRequests = 1
	exitError          = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	var flags runcfg.Flags

	cmd := &cobra.Command{
		Use:           "loadgen",
		Short:         "LLM inference load generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.Build()
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			})).With("task_id", cfg.TaskID, "pid", os.Getpid())

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			failed, err := loadgen.NewRunner(cfg, logger).Run(ctx)
			if err != nil {
				return err
			}
			if failed {
				return errFailedRequests
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&flags.TaskID, "task-id", "", "task identifier")
	fs.StringVar(&flags.Host, "host", "", "target host, scheme included")
	fs.StringVar(&flags.APIPath, "api_path", "", "API path on the target host")
	fs.StringVar(&flags.Headers, "headers", "", "extra request headers as a JSON object")
	fs.StringVar(&flags.Cookies, "cookies", "", "request cookies as a JSON object")
	fs.StringVar(&flags.RequestPayload, "request_payload", "", "custom request payload template")
	fs.StringVar(&flags.ModelName, "model_name", "", "model name sent in the payload")
	fs.StringVar(&flags.SystemPrompt, "system_prompt", "", "system prompt prepended to each request")
	fs.BoolVar(&flags.StreamMode, "stream_mode", true, "request streaming responses")
	fs.IntVar(&flags.ChatType, "chat_type", runcfg.ChatTypeText, "0 text, 1 multimodal")
	fs.StringVar(&flags.CertFile, "cert_file", "", "client TLS certificate file")
	fs.StringVar(&flags.KeyFile, "key_file", "", "client TLS key file")
	fs.StringVar(&flags.FieldMapping, "field_mapping", "", "response field mapping as a JSON object")
	fs.StringVar(&flags.TestData, "test_data", "", "dataset selector, file path, or inline JSON")
	fs.IntVar(&flags.Users, "users", 1, "concurrent virtual users")
	fs.IntVar(&flags.SpawnRate, "spawn-rate", 1, "users started per second")
	fs.IntVar(&flags.RunTime, "run-time", 60, "run duration in seconds")
	fs.IntVar(&flags.Processes, "processes", 0, "worker process count, 0 for single-process")

	// Internal flags set by the master when spawning workers.
	fs.BoolVar(&flags.Worker, "worker", false, "run as a worker child")
	fs.IntVar(&flags.MasterPort, "master-port", 0, "master metrics port")
	_ = fs.MarkHidden("worker")
	_ = fs.MarkHidden("master-port")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, errFailedRequests) {
			return exitFailedRequests
		}
		fmt.Fprintln(os.Stderr, "loadgen:", err)
		return exitError
	}
	return exitOK
}

var errFailedRequests = fmt.Errorf("run finished with failed requests")
