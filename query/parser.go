package query

import (
	"fmt"
	"sort"

	"lexidex/types"
)

// Query is a parsed search query: the bag of words that must appear
// (Plus) and the bag that must not (Minus). In types.Par mode both bags may
// retain duplicates (the scorer and matcher tolerate this); in types.Seq
// mode Parse returns them sorted and deduplicated.
type Query struct {
	Plus  []string
	Minus []string
}

// Parse tokenizes raw, strips stop-words, and splits the remaining tokens
// into plus- and minus-words, mirroring ParseQuery/ParseQueryWord. In Seq
// mode the result is sorted and deduplicated; in Par mode duplicates (and
// original token order) are preserved; the parallel scoring path dedupes
// plus-words itself before scoring, and the parallel matcher dedupes its
// output, so a repeated word is still counted once.
func Parse(raw string, stopWords *StopWords, mode types.Mode) (Query, error) {
	var q Query
	for _, word := range SplitWords(raw) {
		if word == "-" {
			return Query{}, fmt.Errorf("%w: bare \"-\" in query %q", types.ErrInvalidInput, raw)
		}
		if len(word) >= 2 && word[0] == '-' && word[1] == '-' {
			return Query{}, fmt.Errorf("%w: double-minus token %q in query %q", types.ErrInvalidInput, word, raw)
		}
		if HasControlBytes(word) {
			return Query{}, fmt.Errorf("%w: control byte in query token %q", types.ErrInvalidInput, word)
		}

		isMinus := false
		data := word
		if word[0] == '-' {
			isMinus = true
			data = word[1:]
		}
		if stopWords.Contains(data) {
			continue
		}
		if isMinus {
			q.Minus = append(q.Minus, data)
		} else {
			q.Plus = append(q.Plus, data)
		}
	}

	if mode == types.Seq {
		q.Plus = sortUnique(q.Plus)
		q.Minus = sortUnique(q.Minus)
	}
	return q, nil
}

func sortUnique(words []string) []string {
	if len(words) == 0 {
		return words
	}
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	out := sorted[:1]
	for _, w := range sorted[1:] {
		if w != out[len(out)-1] {
			out = append(out, w)
		}
	}
	return out
}
