package runcfg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFlags() Flags {
	return Flags{
		TaskID:  "task-1",
		Host:    "http://localhost:8000/",
		Users:   10,
		RunTime: 60,
	}
}

func TestBuild_Defaults(t *testing.T) {
	cfg, err := validFlags().Build()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.Host)
	assert.Equal(t, OpenAIChatPath, cfg.APIPath)
	assert.Equal(t, 60*time.Second, cfg.Duration)
	assert.Equal(t, 1, cfg.SpawnRate)
	assert.True(t, cfg.OpenAIMode())
	assert.Equal(t, "chat_completions", cfg.EndpointName())
}

func TestBuild_Validation(t *testing.T) {
	f := validFlags()
	f.Host = ""
	_, err := f.Build()
	assert.Error(t, err)

	f = validFlags()
	f.Users = 0
	_, err = f.Build()
	assert.Error(t, err)

	f = validFlags()
	f.RunTime = 0
	_, err = f.Build()
	assert.Error(t, err)
}

func TestBuild_DecodesHeaderAndCookieJSON(t *testing.T) {
	f := validFlags()
	f.Headers = `{"Authorization":"Bearer xyz"}`
	f.Cookies = `{"session":"abc"}`

	cfg, err := f.Build()
	require.NoError(t, err)
	assert.Equal(t, "Bearer xyz", cfg.Headers["Authorization"])
	assert.Equal(t, "abc", cfg.Cookies["session"])
}

func TestBuild_RejectsBadHeaderJSON(t *testing.T) {
	f := validFlags()
	f.Headers = `{"broken`
	_, err := f.Build()
	assert.Error(t, err)
}

func TestEndpointName_CustomAPI(t *testing.T) {
	f := validFlags()
	f.APIPath = "/v2/generate"

	cfg, err := f.Build()
	require.NoError(t, err)
	assert.False(t, cfg.OpenAIMode())
	assert.Equal(t, "custom_api", cfg.EndpointName())
}

func TestEffectiveFieldMap_OpenAIStreamDefaults(t *testing.T) {
	f := validFlags()
	f.StreamMode = true

	cfg, err := f.Build()
	require.NoError(t, err)

	fm := cfg.EffectiveFieldMap()
	assert.Equal(t, "choices.0.delta.content", fm.Content)
	assert.Equal(t, "choices.0.delta.reasoning_content", fm.ReasoningContent)
	assert.Equal(t, "usage", fm.Usage)
	assert.Equal(t, "[DONE]", fm.StopFlag)
}

func TestEffectiveFieldMap_OpenAINonStreamDefaults(t *testing.T) {
	cfg, err := validFlags().Build()
	require.NoError(t, err)

	fm := cfg.EffectiveFieldMap()
	assert.Equal(t, "choices.0.message.content", fm.Content)
}

func TestEffectiveFieldMap_CustomAPIKeepsUserPaths(t *testing.T) {
	f := validFlags()
	f.APIPath = "/v2/generate"
	f.FieldMapping = `{"content":"data.text","stop_flag":"<END>"}`

	cfg, err := f.Build()
	require.NoError(t, err)

	fm := cfg.EffectiveFieldMap()
	assert.Equal(t, "data.text", fm.Content)
	assert.Equal(t, "<END>", fm.StopFlag)
	assert.Empty(t, fm.Usage)
}
