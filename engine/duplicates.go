package engine

import (
	"fmt"
	"sort"
)

// RemoveDuplicates scans e's live documents in ascending id order and drops
// every document whose word-set (ignoring term frequencies) is structurally
// identical to one already seen, keeping only the first id for each
// word-set. Grounded on original_source/search-server/remove_duplicates.cpp,
// re-expressed against the engine's public surface (LiveIDs,
// GetWordFrequencies, RemoveDocument) per SPEC_FULL.md §4.7.
func RemoveDuplicates(e *Engine) {
	seen := make(map[string]struct{})
	var duplicates []int32

	for _, id := range e.LiveIDs() {
		key := wordSetKey(e.GetWordFrequencies(id))
		if _, found := seen[key]; found {
			duplicates = append(duplicates, id)
			e.opts.Logger.WithField("id", id).Info(fmt.Sprintf("Found duplicate document id %d", id))
			continue
		}
		seen[key] = struct{}{}
	}

	for _, id := range duplicates {
		e.RemoveDocument(id)
		e.metrics.duplicatesRemoved.Inc()
	}
}

// wordSetKey canonicalizes a word_count table into a set-equality key: the
// distinct words, sorted and joined, ignoring frequencies. Go has no native
// set-of-sets membership test, so structural equality is reduced to string
// equality over this canonical form.
func wordSetKey(wordCount map[string]float64) string {
	words := make([]string, 0, len(wordCount))
	for w := range wordCount {
		words = append(words, w)
	}
	sort.Strings(words)

	var size int
	for _, w := range words {
		size += len(w) + 1
	}
	buf := make([]byte, 0, size)
	for _, w := range words {
		buf = append(buf, w...)
		buf = append(buf, '\n')
	}
	return string(buf)
}
