// Package query implements the tokenizer, stop-word set and query parser
// (C1/C2/C3): splitting raw text and raw queries into words the same way
// the original SplitIntoWords/StringHasSpecialSymbols did, byte-wise and
// without any Unicode interpretation.
package query

// SplitWords splits text on runs of one or more ASCII spaces (0x20),
// yielding non-empty words in order. Ported from
// original_source/search-server/string_processing.cpp's SplitIntoWords.
func SplitWords(text string) []string {
	var words []string
	start := -1
	for i := 0; i < len(text); i++ {
		if text[i] == ' ' {
			if start != -1 {
				words = append(words, text[start:i])
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, text[start:])
	}
	return words
}

// HasControlBytes reports whether s contains any byte in [0x00, 0x1F],
// ported from StringHasSpecialSymbols.
func HasControlBytes(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] <= 0x1F {
			return true
		}
	}
	return false
}
