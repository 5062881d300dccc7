package sse

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/perfflow/perfflow/pkg/fieldmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEmitter struct {
	names []string
	ms    map[string]float64
}

func newRecordingEmitter() *recordingEmitter {
	return &recordingEmitter{ms: make(map[string]float64)}
}

func (e *recordingEmitter) EmitTiming(name string, ms float64) {
	e.names = append(e.names, name)
	e.ms[name] = ms
}

func openAIStreamMap(t *testing.T) fieldmap.FieldMap {
	t.Helper()
	fm, err := fieldmap.Parse("")
	require.NoError(t, err)
	fm = fm.WithDefaults()
	fm.Content = "choices.0.delta.content"
	fm.ReasoningContent = "choices.0.delta.reasoning_content"
	fm.Usage = "usage"
	return fm
}

func feedAll(t *testing.T, p *Parser, records ...string) {
	t.Helper()
	for _, rec := range records {
		done, err := p.Feed(rec)
		require.NoError(t, err)
		if done {
			return
		}
	}
	t.Fatal("stream never signalled completion")
}

func reasoningChunk(text string) string {
	return `{"choices":[{"delta":{"reasoning_content":"` + text + `"}}]}`
}

func contentChunk(text string) string {
	return `{"choices":[{"delta":{"content":"` + text + `"}}]}`
}

func TestParser_ReasoningThenOutputRoundTrip(t *testing.T) {
	em := newRecordingEmitter()
	p := NewParser(openAIStreamMap(t), time.Now(), em)

	feedAll(t, p,
		reasoningChunk("think "),
		reasoningChunk("hard"),
		contentChunk("hello "),
		contentChunk("world"),
		"[DONE]",
	)
	p.Finish()

	assert.Equal(t, []string{
		MetricTimeToFirstReasoningToken,
		MetricTimeToFirstOutputToken,
		MetricTimeToReasoningCompletion,
		MetricTimeToOutputCompletion,
		MetricTotalTime,
	}, em.names)

	r := p.Result()
	assert.Equal(t, "hello world", r.Content)
	assert.Equal(t, "think hard", r.ReasoningContent)
	assert.False(t, r.UsageExtracted)
}

func TestParser_OutputOnlyStream(t *testing.T) {
	em := newRecordingEmitter()
	p := NewParser(openAIStreamMap(t), time.Now(), em)

	feedAll(t, p, contentChunk("a"), contentChunk("b"), "[DONE]")
	p.Finish()

	assert.Equal(t, []string{
		MetricTimeToFirstOutputToken,
		MetricTimeToOutputCompletion,
		MetricTotalTime,
	}, em.names)
	assert.Equal(t, "ab", p.Result().Content)
}

func TestParser_EmptyStreamEmitsZeroOutputCompletion(t *testing.T) {
	em := newRecordingEmitter()
	p := NewParser(openAIStreamMap(t), time.Now(), em)

	feedAll(t, p, "[DONE]")
	p.Finish()

	assert.Equal(t, []string{MetricTimeToOutputCompletion, MetricTotalTime}, em.names)
	assert.Zero(t, em.ms[MetricTimeToOutputCompletion])
}

func TestParser_UsageIsAuthoritative(t *testing.T) {
	em := newRecordingEmitter()
	p := NewParser(openAIStreamMap(t), time.Now(), em)

	done, err := p.Feed(`{"choices":[{"delta":{}}],"usage":{"prompt_tokens":12,"completion_tokens":34,"total_tokens":46}}`)
	require.NoError(t, err)
	require.False(t, done)

	// Content arriving after an authoritative usage is not accumulated.
	done, err = p.Feed(contentChunk("late text"))
	require.NoError(t, err)
	require.False(t, done)

	r := p.Result()
	assert.True(t, r.UsageExtracted)
	assert.Equal(t, int64(34), r.CompletionTokens)
	assert.Equal(t, int64(46), r.TotalTokens)
	assert.Equal(t, int64(12), r.PromptTokens)
	assert.Empty(t, r.Content)
	// Timing is still observed for the late content.
	assert.Contains(t, em.names, MetricTimeToFirstOutputToken)
}

func TestParser_ZeroUsageIgnored(t *testing.T) {
	p := NewParser(openAIStreamMap(t), time.Now(), newRecordingEmitter())
	_, err := p.Feed(`{"choices":[{"delta":{"content":"x"}}],"usage":{"completion_tokens":0,"total_tokens":0}}`)
	require.NoError(t, err)

	r := p.Result()
	assert.False(t, r.UsageExtracted)
	assert.Equal(t, "x", r.Content)
}

func TestParser_MalformedJSONFailsStream(t *testing.T) {
	p := NewParser(openAIStreamMap(t), time.Now(), newRecordingEmitter())
	done, err := p.Feed(`{"choices": [broken`)
	assert.True(t, done)

	var fmtErr *FormatError
	require.ErrorAs(t, err, &fmtErr)
	assert.Contains(t, fmtErr.Record, "broken")
}

func TestParser_ResponseErrorIndicators(t *testing.T) {
	records := []string{
		`{"code":-1,"message":"bad"}`,
		`{"error":"boom"}`,
		`{"object":"error","message":"denied"}`,
		`{"event":"error"}`,
		`{"error":{"type":"overloaded_error","message":"busy"}}`,
	}
	for _, rec := range records {
		p := NewParser(openAIStreamMap(t), time.Now(), newRecordingEmitter())
		done, err := p.Feed(rec)
		assert.True(t, done, rec)
		var respErr *ResponseError
		assert.ErrorAs(t, err, &respErr, rec)
	}
}

func TestParser_ErrorObjectWithNullErrorFieldIsFine(t *testing.T) {
	p := NewParser(openAIStreamMap(t), time.Now(), newRecordingEmitter())
	done, err := p.Feed(`{"choices":[{"delta":{"content":"ok"}}],"error":null,"code":200}`)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, "ok", p.Result().Content)
}

func TestParser_EndFieldStopsStream(t *testing.T) {
	fm := openAIStreamMap(t)
	fm.EndField = "status"
	fm.StopFlag = "finished"
	p := NewParser(fm, time.Now(), newRecordingEmitter())

	done, err := p.Feed(`{"status":"running","choices":[{"delta":{"content":"a"}}]}`)
	require.NoError(t, err)
	require.False(t, done)

	done, err = p.Feed(`{"status":"finished"}`)
	require.NoError(t, err)
	assert.True(t, done)
}

func TestParser_CustomPrefixStripped(t *testing.T) {
	fm := openAIStreamMap(t)
	fm.StreamPrefix = "chunk:"
	p := NewParser(fm, time.Now(), newRecordingEmitter())

	done, err := p.Feed(`chunk:{"choices":[{"delta":{"content":"y"}}]}`)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, "y", p.Result().Content)
}

func TestRecordReader_SplitsAndStripsRecords(t *testing.T) {
	body := "data: one\n\n" +
		": keep-alive comment\n\n" +
		"data: two\ndata: three\n\n" +
		"data: [DONE]\n\n"
	rr := NewRecordReader(strings.NewReader(body))

	rec, err := rr.Next()
	require.NoError(t, err)
	assert.Equal(t, "one", rec)

	rec, err = rr.Next()
	require.NoError(t, err)
	assert.Equal(t, "two\nthree", rec)

	rec, err = rr.Next()
	require.NoError(t, err)
	assert.Equal(t, "[DONE]", rec)

	_, err = rr.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestRecordReader_CRLFAndTruncatedTail(t *testing.T) {
	body := "data: first\r\n\r\ndata: last"
	rr := NewRecordReader(strings.NewReader(body))

	rec, err := rr.Next()
	require.NoError(t, err)
	assert.Equal(t, "first", rec)

	rec, err = rr.Next()
	require.NoError(t, err)
	assert.Equal(t, "last", rec)

	_, err = rr.Next()
	assert.ErrorIs(t, err, io.EOF)
}
