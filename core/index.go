// Package core implements the inverted index, document store (C4/C5), the
// TF-IDF scorer (C6) and the concurrent accumulator (C7): the part of the
// system where correctness of scoring and the read/write discipline over
// shared state actually live.
package core

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"lexidex/internal/intern"
	"lexidex/query"
	"lexidex/types"
)

// documentData is the per-live-id record, grounded on the original source's
// DocumentData struct and on the teacher's types.DocInfo.
type documentData struct {
	Rating    int32
	Status    types.Status
	Text      string
	WordCount map[string]float64
}

// Index is the inverted index plus document store, sharing one intern pool
// so a word's interned string is stored exactly once and referenced by both
// the posting lists and every document's word_count table. Writers
// (AddDocument/RemoveDocument) are the caller's responsibility to serialize
// against all other operations (SPEC_FULL.md §5); the RWMutex here exists
// to keep concurrent *readers* safe of each other and of the Go race
// detector, the same way the teacher guards DocInfosShard/InvertedIndexShard.
type Index struct {
	mu sync.RWMutex

	inverted map[string]map[int32]float64 // word -> docID -> tf
	docs     map[int32]*documentData
	liveIDs  []int32 // ascending

	pool      *intern.Pool
	stopWords *query.StopWords
}

// NewIndex builds an empty index configured with the given stop-words.
func NewIndex(stopWords *query.StopWords) *Index {
	return &Index{
		inverted:  make(map[string]map[int32]float64),
		docs:      make(map[int32]*documentData),
		pool:      intern.New(),
		stopWords: stopWords,
	}
}

// AddDocument tokenizes doc.Text, drops stop-words, and records the
// resulting term frequencies in the inverted index and the document's
// word_count table. See SPEC_FULL.md §4.4 for the exact accounting rules.
func (idx *Index) AddDocument(doc types.Document) error {
	if doc.ID < 0 {
		return fmt.Errorf("%w: document id %d is negative", types.ErrInvalidInput, doc.ID)
	}
	if query.HasControlBytes(doc.Text) {
		return fmt.Errorf("%w: control byte in document text", types.ErrInvalidInput)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, found := idx.docs[doc.ID]; found {
		return fmt.Errorf("%w: id %d", types.ErrDuplicate, doc.ID)
	}

	words := make([]string, 0, len(doc.Text)/4)
	for _, w := range query.SplitWords(doc.Text) {
		if idx.stopWords.Contains(w) {
			continue
		}
		words = append(words, idx.pool.Intern(w))
	}

	wordCount := make(map[string]float64, len(words))
	if n := len(words); n > 0 {
		inv := 1.0 / float64(n)
		for _, w := range words {
			wordCount[w] += inv
			if idx.inverted[w] == nil {
				idx.inverted[w] = make(map[int32]float64)
			}
			idx.inverted[w][doc.ID] += inv
		}
	}

	idx.docs[doc.ID] = &documentData{
		Rating:    averageRating(doc.Ratings),
		Status:    doc.Status,
		Text:      doc.Text,
		WordCount: wordCount,
	}
	idx.insertLiveID(doc.ID)
	return nil
}

// RemoveDocument deletes id's postings and document record. A no-op, not an
// error, if id isn't live.
func (idx *Index) RemoveDocument(id int32) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.removeDocumentLocked(id)
}

func (idx *Index) removeDocumentLocked(id int32) {
	data, found := idx.docs[id]
	if !found {
		return
	}
	for w := range data.WordCount {
		postings := idx.inverted[w]
		delete(postings, id)
		if len(postings) == 0 {
			delete(idx.inverted, w)
		}
	}
	delete(idx.docs, id)
	idx.removeLiveID(id)
}

// DocumentCount returns the number of currently live documents.
func (idx *Index) DocumentCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.docs)
}

// WordFrequencies returns a copy of id's word_count table, or an empty,
// non-nil map if id is unknown.
func (idx *Index) WordFrequencies(id int32) map[string]float64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	data, found := idx.docs[id]
	if !found {
		return map[string]float64{}
	}
	out := make(map[string]float64, len(data.WordCount))
	for w, f := range data.WordCount {
		out[w] = f
	}
	return out
}

// WordToFreqs returns a copy of the full inverted index, word -> docID -> tf.
func (idx *Index) WordToFreqs() map[string]map[int32]float64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make(map[string]map[int32]float64, len(idx.inverted))
	for w, postings := range idx.inverted {
		copied := make(map[int32]float64, len(postings))
		for id, tf := range postings {
			copied[id] = tf
		}
		out[w] = copied
	}
	return out
}

// LiveIDs returns the live document ids in ascending order.
func (idx *Index) LiveIDs() []int32 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]int32, len(idx.liveIDs))
	copy(out, idx.liveIDs)
	return out
}

// Document looks up id's status/rating, taking the read lock itself; used
// by MatchDocument and by callers outside the scoring hot path.
func (idx *Index) Document(id int32) (status types.Status, rating int32, found bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	data, ok := idx.docs[id]
	if !ok {
		return 0, 0, false
	}
	return data.Status, data.Rating, true
}

// postings returns word's posting list (nil if the word has no entries)
// without copying; callers must hold idx.mu for reading.
func (idx *Index) postings(word string) map[int32]float64 {
	return idx.inverted[word]
}

// idf computes ln(N / |postings(word)|); callers must hold idx.mu and have
// already established that the word has at least one posting.
func (idx *Index) idf(word string, liveCount int) float64 {
	return math.Log(float64(liveCount) / float64(len(idx.inverted[word])))
}

// Materialize turns a relevance map (as produced by ScoreSeq/ScorePar) into
// []types.Result, reading each surviving id's rating and status under the
// read lock — the same short locked-read-per-document shape as the
// teacher's core/ranker.go Rank loop.
func (idx *Index) Materialize(scores map[int32]float64) []types.Result {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]types.Result, 0, len(scores))
	for id, rel := range scores {
		data, ok := idx.docs[id]
		if !ok {
			continue
		}
		out = append(out, types.Result{ID: id, Relevance: rel, Rating: data.Rating, Status: data.Status})
	}
	return out
}

func (idx *Index) insertLiveID(id int32) {
	i := sort.Search(len(idx.liveIDs), func(i int) bool { return idx.liveIDs[i] >= id })
	idx.liveIDs = append(idx.liveIDs, 0)
	copy(idx.liveIDs[i+1:], idx.liveIDs[i:])
	idx.liveIDs[i] = id
}

func (idx *Index) removeLiveID(id int32) {
	i := sort.Search(len(idx.liveIDs), func(i int) bool { return idx.liveIDs[i] >= id })
	if i < len(idx.liveIDs) && idx.liveIDs[i] == id {
		idx.liveIDs = append(idx.liveIDs[:i], idx.liveIDs[i+1:]...)
	}
}

// averageRating computes sum(ratings)/len(ratings) using Go's truncating
// integer division, or 0 if ratings is empty. Matches
// ComputeAverageRating's truncation-toward-zero behavior.
func averageRating(ratings []int32) int32 {
	if len(ratings) == 0 {
		return 0
	}
	var sum int64
	for _, r := range ratings {
		sum += int64(r)
	}
	return int32(sum / int64(len(ratings)))
}
