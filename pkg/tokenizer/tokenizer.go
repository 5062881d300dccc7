// Package tokenizer provides deterministic token counting for (text, model)
// pairs. A model-specific BPE backend is used when the model is a known
// family; otherwise a rule-based counter approximates tokenization. Any
// backend error falls through to a byte-length heuristic.
package tokenizer

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

const cacheSize = 10000

// Counter counts tokens for a single model's tokenization scheme.
type Counter interface {
	Count(text string) (int, error)
}

// Registry resolves and caches a Counter per model and memoizes results
// for identical (sha256(text), model) pairs.
type Registry struct {
	mu       sync.Mutex
	backends map[string]Counter
	cache    *lru.Cache[string, int]
}

// NewRegistry creates an empty tokenizer registry.
func NewRegistry() *Registry {
	cache, err := lru.New[string, int](cacheSize)
	if err != nil {
		// lru.New only fails on non-positive size.
		panic(err)
	}
	return &Registry{
		backends: make(map[string]Counter),
		cache:    cache,
	}
}

// Count returns the token count of text under the given model's tokenizer.
// Blank text (empty or whitespace only) counts as 0; any other input counts
// as at least 1.
func (r *Registry) Count(text, model string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	key := cacheKey(text, model)
	if n, ok := r.cache.Get(key); ok {
		return n
	}

	n, err := r.backendFor(model).Count(text)
	if err != nil || n <= 0 {
		if err != nil {
			slog.Warn("Tokenizer backend failed, using byte heuristic",
				"model", model, "error", err)
		}
		n = heuristicCount(text)
	}
	if n < 1 {
		n = 1
	}

	r.cache.Add(key, n)
	return n
}

// backendFor returns the cached Counter for a model, resolving it on first
// use. Resolution prefers the BPE backend and falls back to the rule-based
// counter for unknown model families.
func (r *Registry) backendFor(model string) Counter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.backends[model]; ok {
		return c
	}

	var c Counter
	if bpe, err := newBPECounter(model); err == nil {
		c = bpe
	} else {
		c = ruleCounter{}
	}
	r.backends[model] = c
	return c
}

func cacheKey(text, model string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:]) + "|" + model
}

// heuristicCount estimates tokens from byte length: one token per CJK
// character plus roughly one per four remaining UTF-8 bytes.
func heuristicCount(text string) int {
	chinese := 0
	for _, r := range text {
		if isCJK(r) {
			chinese++
		}
	}
	rest := (len(text) - 3*chinese) / 4
	if rest < 0 {
		rest = 0
	}
	n := chinese + rest
	if n < 1 {
		n = 1
	}
	return n
}
