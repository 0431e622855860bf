package query

import (
	"fmt"

	"lexidex/types"
)

// StopWords is a deduplicated set of words ignored during indexing and
// querying, configured once at construction time.
type StopWords struct {
	set map[string]struct{}
}

// NewStopWords builds a StopWords set from either a single
// whitespace-separated string or a []string. Empty words are dropped
// silently; any word containing a control byte fails construction with
// ErrInvalidInput, matching the source's templated-container constructor.
func NewStopWords(words interface{}) (*StopWords, error) {
	var raw []string
	switch w := words.(type) {
	case string:
		raw = SplitWords(w)
	case []string:
		raw = w
	case nil:
		raw = nil
	default:
		return nil, fmt.Errorf("%w: unsupported stop-word container type %T", types.ErrInvalidInput, words)
	}

	sw := &StopWords{set: make(map[string]struct{}, len(raw))}
	for _, word := range raw {
		if word == "" {
			continue
		}
		if HasControlBytes(word) {
			return nil, fmt.Errorf("%w: control byte in stop-word %q", types.ErrInvalidInput, word)
		}
		sw.set[word] = struct{}{}
	}
	return sw, nil
}

// Contains reports whether word is a stop-word.
func (sw *StopWords) Contains(word string) bool {
	if sw == nil {
		return false
	}
	_, found := sw.set[word]
	return found
}
