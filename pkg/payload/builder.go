// Package payload assembles the request body for each virtual-user call:
// either OpenAI chat format or a custom JSON template with a dotted-path
// field map.
package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/perfflow/perfflow/pkg/dataset"
	"github.com/perfflow/perfflow/pkg/fieldmap"
	"github.com/perfflow/perfflow/pkg/runcfg"
)

// ErrInvalidPayload indicates the request template is not valid JSON and no
// payload could be synthesized. The virtual user skips the iteration.
var ErrInvalidPayload = errors.New("invalid request payload")

// Builder produces request bodies from the run's template and, in dataset
// mode, the current prompt record.
type Builder struct {
	cfg      *runcfg.Config
	fm       fieldmap.FieldMap
	template string

	warnNoPromptPath sync.Once
}

// NewBuilder creates a Builder for the run. A blank request template is
// replaced by a minimal OpenAI chat payload synthesized from config values.
func NewBuilder(cfg *runcfg.Config) *Builder {
	template := cfg.RequestPayload
	if strings.TrimSpace(template) == "" {
		synth := map[string]any{
			"model":  cfg.ModelName,
			"stream": cfg.StreamMode,
			"messages": []any{
				map[string]any{"role": "user", "content": "Hi"},
			},
		}
		raw, _ := json.Marshal(synth)
		template = string(raw)
	}
	return &Builder{
		cfg:      cfg,
		fm:       cfg.EffectiveFieldMap(),
		template: template,
	}
}

// Build returns the request body for one call plus the user-visible prompt
// text (used for fallback token counting). rec is nil when the run has no
// dataset; the template is then used as-is.
func (b *Builder) Build(rec *dataset.PromptRecord) (map[string]any, string, error) {
	var body map[string]any
	if err := json.Unmarshal([]byte(b.template), &body); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	if rec == nil {
		return body, fieldmap.GetString(body, b.fm.Prompt), nil
	}

	if b.cfg.OpenAIMode() {
		b.applyChatPrompt(body, rec)
		return body, rec.Prompt, nil
	}

	if b.fm.Prompt == "" {
		b.warnNoPromptPath.Do(func() {
			slog.Warn("No prompt path configured in field map; sending template unchanged",
				"api_path", b.cfg.APIPath)
		})
		return body, rec.Prompt, nil
	}

	if err := fieldmap.Set(body, b.fm.Prompt, rec.Prompt); err != nil {
		return nil, "", fmt.Errorf("%w: setting prompt at %q: %v", ErrInvalidPayload, b.fm.Prompt, err)
	}
	return body, rec.Prompt, nil
}

// applyChatPrompt rewrites the messages array for the current prompt record
// and fills stream/model from config when the template leaves them unset.
func (b *Builder) applyChatPrompt(body map[string]any, rec *dataset.PromptRecord) {
	userMsg := map[string]any{
		"role":    "user",
		"content": b.chatContent(rec),
	}

	messages := []any{}
	if b.cfg.SystemPrompt != "" {
		messages = append(messages, map[string]any{
			"role":    "system",
			"content": b.cfg.SystemPrompt,
		})
	}
	messages = append(messages, userMsg)
	body["messages"] = messages

	if isUnset(body["stream"]) {
		body["stream"] = b.cfg.StreamMode
	}
	if isUnset(body["model"]) {
		body["model"] = b.cfg.ModelName
	}
}

// chatContent renders the message content. Multimodal runs always use the
// content-parts form (vision chat templates require it even for text-only
// records); text runs attach an image part only when the record carries one.
func (b *Builder) chatContent(rec *dataset.PromptRecord) any {
	multimodal := b.cfg.ChatType == runcfg.ChatTypeMultimodal
	if !multimodal && !rec.HasImage() {
		return rec.Prompt
	}
	parts := []any{
		map[string]any{"type": "text", "text": rec.Prompt},
	}
	if rec.HasImage() {
		url := rec.ImageURL
		if rec.ImageBase64 != "" {
			url = "data:image/jpeg;base64," + rec.ImageBase64
		}
		parts = append(parts, map[string]any{
			"type":      "image_url",
			"image_url": map[string]any{"url": url},
		})
	}
	return parts
}

// isUnset treats missing, null, and empty-string values as absent.
func isUnset(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
