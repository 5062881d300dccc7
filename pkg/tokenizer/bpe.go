package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// bpeCounter wraps a tiktoken encoding for models of a known family.
type bpeCounter struct {
	enc *tiktoken.Tiktoken
}

// newBPECounter resolves the BPE encoding for a model. Unknown models
// return an error so the caller can fall back to the rule-based counter.
func newBPECounter(model string) (Counter, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("no BPE encoding for model %q: %w", model, err)
	}
	return &bpeCounter{enc: enc}, nil
}

func (c *bpeCounter) Count(text string) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("bpe encode panic: %v", r)
		}
	}()
	return len(c.enc.Encode(text, nil, nil)), nil
}
