package tokenizer

import "unicode"

// ruleCounter approximates tokenization without a model vocabulary:
// CJK characters and emoji count one token per codepoint; everything else
// is split into word and punctuation tokens.
type ruleCounter struct{}

func (ruleCounter) Count(text string) (int, error) {
	tokens := 0
	inWord := false
	for _, r := range text {
		switch {
		case isCJK(r) || isEmoji(r):
			tokens++
			inWord = false
		case unicode.IsSpace(r):
			inWord = false
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\'':
			if !inWord {
				tokens++
				inWord = true
			}
		default:
			// Punctuation and symbols stand alone.
			tokens++
			inWord = false
		}
	}
	return tokens, nil
}

// isCJK reports whether r is a CJK ideograph (including extensions and
// compatibility blocks).
func isCJK(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF: // unified ideographs
		return true
	case r >= 0x3400 && r <= 0x4DBF: // extension A
		return true
	case r >= 0x20000 && r <= 0x2A6DF: // extension B
		return true
	case r >= 0xF900 && r <= 0xFAFF: // compatibility ideographs
		return true
	case r >= 0x3040 && r <= 0x30FF: // hiragana + katakana
		return true
	case r >= 0xAC00 && r <= 0xD7AF: // hangul syllables
		return true
	}
	return false
}

// isEmoji covers the common emoji and pictograph blocks.
func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF:
		return true
	case r >= 0x1F000 && r <= 0x1F2FF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r == 0xFE0F || r == 0x200D: // variation selector, ZWJ
		return true
	}
	return false
}
