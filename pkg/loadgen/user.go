package loadgen

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/perfflow/perfflow/pkg/dataset"
	"github.com/perfflow/perfflow/pkg/fieldmap"
	"github.com/perfflow/perfflow/pkg/httpx"
	"github.com/perfflow/perfflow/pkg/payload"
	"github.com/perfflow/perfflow/pkg/runcfg"
	"github.com/perfflow/perfflow/pkg/sse"
	"github.com/perfflow/perfflow/pkg/tokenizer"
)

const (
	paceMin = 1 * time.Second
	paceMax = 3 * time.Second
)

// User is one virtual user: a cooperative loop that fetches a prompt,
// builds a payload, executes the request, parses the response, and emits
// metrics. A failed iteration never terminates the loop.
type User struct {
	cfg     *runcfg.Config
	fm      fieldmap.FieldMap
	client  *httpx.Client
	builder *payload.Builder
	source  *dataset.Source
	tokens  *tokenizer.Registry
	emitter *Emitter
	logger  *slog.Logger
}

func NewUser(cfg *runcfg.Config, client *httpx.Client, builder *payload.Builder,
	source *dataset.Source, tokens *tokenizer.Registry, emitter *Emitter, logger *slog.Logger) *User {
	return &User{
		cfg:     cfg,
		fm:      cfg.EffectiveFieldMap(),
		client:  client,
		builder: builder,
		source:  source,
		tokens:  tokens,
		emitter: emitter,
		logger:  logger,
	}
}

// Run loops until ctx is cancelled, pacing iterations uniformly between one
// and three seconds.
func (u *User) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		u.runOnce(ctx)
		if !sleepCtx(ctx, pace()) {
			return
		}
	}
}

func (u *User) runOnce(ctx context.Context) {
	var rec *dataset.PromptRecord
	if u.source != nil {
		if r, ok := u.source.Next(); ok {
			rec = &r
		}
	}

	body, prompt, err := u.builder.Build(rec)
	if err != nil {
		u.logger.Warn("Skipping iteration: request payload could not be built", "error", err)
		return
	}

	start := time.Now()
	resp, err := u.client.Post(ctx, body)
	if err != nil {
		// A request aborted by run-end cancellation is not a failure.
		if ctx.Err() != nil {
			return
		}
		u.emitter.RecordFailure(u.cfg.EndpointName(), msSince(start), 0, err)
		return
	}
	defer resp.Body.Close()

	var result sse.Result
	var ok bool
	if u.cfg.StreamMode {
		result, ok = u.consumeStream(ctx, resp.Body, start)
	} else {
		result, ok = u.consumeSingle(ctx, resp.Body, start)
	}
	if !ok {
		return
	}

	length := int64(len(result.Content) + len(result.ReasoningContent))
	u.emitter.RecordSuccess(u.cfg.EndpointName(), msSince(start), length)

	completion, total := u.tokenCounts(prompt, result)
	u.emitter.PushTokens(completion, total)
}

func (u *User) consumeStream(ctx context.Context, body io.Reader, start time.Time) (sse.Result, bool) {
	parser := sse.NewParser(u.fm, start, u.emitter)
	reader := sse.NewRecordReader(body)
	for {
		record, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			if ctx.Err() != nil {
				return sse.Result{}, false
			}
			u.emitter.RecordFailure(u.cfg.EndpointName(), msSince(start), 0, err)
			return sse.Result{}, false
		}
		done, perr := parser.Feed(record)
		if perr != nil {
			u.emitter.RecordFailure(u.cfg.EndpointName(), msSince(start), 0, perr)
			return sse.Result{}, false
		}
		if done {
			break
		}
	}
	parser.Finish()
	return parser.Result(), true
}

// consumeSingle handles a non-streaming response: one JSON body, one
// Total_time observation.
func (u *User) consumeSingle(ctx context.Context, body io.Reader, start time.Time) (sse.Result, bool) {
	raw, err := io.ReadAll(body)
	if err != nil {
		if ctx.Err() != nil {
			return sse.Result{}, false
		}
		u.emitter.RecordFailure(u.cfg.EndpointName(), msSince(start), 0, err)
		return sse.Result{}, false
	}
	parser := sse.NewParser(u.fm, start, nil)
	if _, perr := parser.Feed(string(raw)); perr != nil {
		u.emitter.RecordFailure(u.cfg.EndpointName(), msSince(start), 0, perr)
		return sse.Result{}, false
	}
	u.emitter.EmitTiming(sse.MetricTotalTime, msSince(start))
	return parser.Result(), true
}

// tokenCounts prefers the server-reported usage; otherwise it tokenizes the
// prompts and accumulated output.
func (u *User) tokenCounts(prompt string, res sse.Result) (completion, total int64) {
	if res.UsageExtracted {
		return res.CompletionTokens, res.TotalTokens
	}
	model := u.cfg.ModelName
	completion = int64(u.tokens.Count(res.ReasoningContent, model) + u.tokens.Count(res.Content, model))
	prompts := int64(u.tokens.Count(u.cfg.SystemPrompt, model) + u.tokens.Count(prompt, model))
	return completion, completion + prompts
}

func pace() time.Duration {
	return paceMin + time.Duration(rand.Int64N(int64(paceMax-paceMin)))
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t)) / float64(time.Millisecond)
}
