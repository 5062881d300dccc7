package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount_BlankTextIsZero(t *testing.T) {
	reg := NewRegistry()

	assert.Equal(t, 0, reg.Count("", "any-model"))
	assert.Equal(t, 0, reg.Count("   \t\n", "any-model"))
}

func TestCount_NonBlankAtLeastOne(t *testing.T) {
	reg := NewRegistry()

	assert.GreaterOrEqual(t, reg.Count(".", "unknown-model"), 1)
	assert.GreaterOrEqual(t, reg.Count("a", "unknown-model"), 1)
}

func TestCount_Deterministic(t *testing.T) {
	reg := NewRegistry()

	first := reg.Count("The quick brown fox jumps over the lazy dog.", "unknown-model")
	second := reg.Count("The quick brown fox jumps over the lazy dog.", "unknown-model")
	assert.Equal(t, first, second)
}

func TestRuleCounter_Words(t *testing.T) {
	n, err := ruleCounter{}.Count("hello world")
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRuleCounter_Punctuation(t *testing.T) {
	n, err := ruleCounter{}.Count("hello, world!")
	assert.NoError(t, err)
	// hello , world !
	assert.Equal(t, 4, n)
}

func TestRuleCounter_CJKPerCodepoint(t *testing.T) {
	n, err := ruleCounter{}.Count("你好世界")
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestRuleCounter_MixedCJKAndWords(t *testing.T) {
	n, err := ruleCounter{}.Count("hi 你好")
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRuleCounter_Emoji(t *testing.T) {
	n, err := ruleCounter{}.Count("go 🚀🚀")
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestHeuristicCount(t *testing.T) {
	// Pure ASCII: bytes/4.
	assert.Equal(t, 3, heuristicCount("abcdefghijkl")) // 12 bytes / 4

	// Pure CJK: one per character (3 bytes each cancels the remainder).
	assert.Equal(t, 2, heuristicCount("你好"))

	// Clamped to at least 1.
	assert.Equal(t, 1, heuristicCount("ab"))
}

func TestCount_CachesResults(t *testing.T) {
	reg := NewRegistry()

	text := "cache me once"
	n := reg.Count(text, "unknown-model")
	if got, ok := reg.cache.Get(cacheKey(text, "unknown-model")); assert.True(t, ok) {
		assert.Equal(t, n, got)
	}
}
