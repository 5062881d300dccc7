package payload

import (
	"testing"

	"github.com/perfflow/perfflow/pkg/dataset"
	"github.com/perfflow/perfflow/pkg/runcfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatConfig(t *testing.T, f func(*runcfg.Flags)) *runcfg.Config {
	t.Helper()
	flags := runcfg.Flags{
		TaskID:     "t1",
		Host:       "http://localhost:8000",
		Users:      1,
		RunTime:    10,
		ModelName:  "test-model",
		StreamMode: true,
	}
	if f != nil {
		f(&flags)
	}
	cfg, err := flags.Build()
	require.NoError(t, err)
	return cfg
}

func TestBuild_SynthesizesBlankTemplate(t *testing.T) {
	cfg := chatConfig(t, nil)
	b := NewBuilder(cfg)

	body, prompt, err := b.Build(nil)
	require.NoError(t, err)

	assert.Equal(t, "test-model", body["model"])
	assert.Equal(t, true, body["stream"])
	assert.Equal(t, "Hi", prompt)
}

func TestBuild_RejectsNonJSONTemplate(t *testing.T) {
	cfg := chatConfig(t, func(f *runcfg.Flags) {
		f.RequestPayload = "this is not json"
	})
	b := NewBuilder(cfg)

	_, _, err := b.Build(nil)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestBuild_NoDatasetUsesTemplateAsIs(t *testing.T) {
	cfg := chatConfig(t, func(f *runcfg.Flags) {
		f.RequestPayload = `{"model":"M","stream":true,"messages":[{"role":"user","content":"Hello there"}]}`
	})
	b := NewBuilder(cfg)

	body, prompt, err := b.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, "M", body["model"])
	assert.Equal(t, "Hello there", prompt)
}

func TestBuild_DatasetReplacesMessages(t *testing.T) {
	cfg := chatConfig(t, func(f *runcfg.Flags) {
		f.RequestPayload = `{"model":"M","messages":[{"role":"user","content":"old"}]}`
	})
	b := NewBuilder(cfg)

	rec := &dataset.PromptRecord{ID: "1", Prompt: "fresh prompt"}
	body, prompt, err := b.Build(rec)
	require.NoError(t, err)

	assert.Equal(t, "fresh prompt", prompt)
	messages := body["messages"].([]any)
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "fresh prompt", msg["content"])
	// stream absent in template: auto-filled from config.
	assert.Equal(t, true, body["stream"])
}

func TestBuild_SystemPromptPrepended(t *testing.T) {
	cfg := chatConfig(t, func(f *runcfg.Flags) {
		f.SystemPrompt = "be brief"
	})
	b := NewBuilder(cfg)

	body, _, err := b.Build(&dataset.PromptRecord{Prompt: "hi"})
	require.NoError(t, err)

	messages := body["messages"].([]any)
	require.Len(t, messages, 2)
	sys := messages[0].(map[string]any)
	assert.Equal(t, "system", sys["role"])
	assert.Equal(t, "be brief", sys["content"])
}

func TestBuild_MultimodalContentBlock(t *testing.T) {
	cfg := chatConfig(t, func(f *runcfg.Flags) {
		f.ChatType = runcfg.ChatTypeMultimodal
	})
	b := NewBuilder(cfg)

	rec := &dataset.PromptRecord{Prompt: "describe", ImageBase64: "AAAA"}
	body, _, err := b.Build(rec)
	require.NoError(t, err)

	messages := body["messages"].([]any)
	content := messages[0].(map[string]any)["content"].([]any)
	require.Len(t, content, 2)
	assert.Equal(t, "text", content[0].(map[string]any)["type"])
	img := content[1].(map[string]any)["image_url"].(map[string]any)
	assert.Equal(t, "data:image/jpeg;base64,AAAA", img["url"])
}

func TestBuild_MultimodalChatTypeForcesContentParts(t *testing.T) {
	cfg := chatConfig(t, func(f *runcfg.Flags) {
		f.ChatType = runcfg.ChatTypeMultimodal
	})
	b := NewBuilder(cfg)

	// Text-only record: the multimodal chat type still renders the
	// content-parts form, just without an image part.
	body, _, err := b.Build(&dataset.PromptRecord{Prompt: "describe"})
	require.NoError(t, err)

	messages := body["messages"].([]any)
	content := messages[0].(map[string]any)["content"].([]any)
	require.Len(t, content, 1)
	part := content[0].(map[string]any)
	assert.Equal(t, "text", part["type"])
	assert.Equal(t, "describe", part["text"])
}

func TestBuild_TextChatTypeKeepsPlainContent(t *testing.T) {
	cfg := chatConfig(t, nil)
	b := NewBuilder(cfg)

	body, _, err := b.Build(&dataset.PromptRecord{Prompt: "hi"})
	require.NoError(t, err)

	messages := body["messages"].([]any)
	assert.Equal(t, "hi", messages[0].(map[string]any)["content"])
}

func TestBuild_ModelNotOverwrittenWhenSet(t *testing.T) {
	cfg := chatConfig(t, func(f *runcfg.Flags) {
		f.RequestPayload = `{"model":"explicit","stream":false,"messages":[]}`
	})
	b := NewBuilder(cfg)

	body, _, err := b.Build(&dataset.PromptRecord{Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "explicit", body["model"])
	assert.Equal(t, false, body["stream"])
}

func TestBuild_CustomAPISetsPromptPath(t *testing.T) {
	cfg := chatConfig(t, func(f *runcfg.Flags) {
		f.APIPath = "/v2/generate"
		f.RequestPayload = `{"input":{"query":"old"},"params":{"max_tokens":64}}`
		f.FieldMapping = `{"prompt":"input.query","content":"output.text"}`
	})
	b := NewBuilder(cfg)

	body, prompt, err := b.Build(&dataset.PromptRecord{Prompt: "new question"})
	require.NoError(t, err)

	assert.Equal(t, "new question", prompt)
	input := body["input"].(map[string]any)
	assert.Equal(t, "new question", input["query"])
	// Untouched siblings survive.
	params := body["params"].(map[string]any)
	assert.Equal(t, float64(64), params["max_tokens"])
}

func TestBuild_CustomAPIWithoutPromptPathPassesTemplate(t *testing.T) {
	cfg := chatConfig(t, func(f *runcfg.Flags) {
		f.APIPath = "/v2/generate"
		f.RequestPayload = `{"input":"fixed"}`
	})
	b := NewBuilder(cfg)

	body, _, err := b.Build(&dataset.PromptRecord{Prompt: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", body["input"])
}
