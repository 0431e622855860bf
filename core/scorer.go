package core

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"lexidex/query"
	"lexidex/types"
)

// ScoreSeq computes TF-IDF relevance for q sequentially: iterate plus-words,
// iterate their postings, accumulate into an id -> score map while applying
// pred at the accumulate point; then iterate minus-words, erasing any
// matched id entirely. Grounded on search_server.cpp's FindAllDocuments.
func (idx *Index) ScoreSeq(q query.Query, pred types.Predicate) map[int32]float64 {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	liveCount := len(idx.docs)
	scores := make(map[int32]float64)

	for _, w := range q.Plus {
		postings := idx.postings(w)
		if postings == nil {
			continue
		}
		idf := idx.idf(w, liveCount)
		for id, tf := range postings {
			data := idx.docs[id]
			if !pred(id, data.Status, data.Rating) {
				continue
			}
			scores[id] += tf * idf
		}
	}

	for _, w := range q.Minus {
		for id := range idx.postings(w) {
			delete(scores, id)
		}
	}
	return scores
}

// ScorePar computes the same relevance map as ScoreSeq, but fans the
// plus-word loop out across goroutines via the Accumulator (C7), joined
// with an errgroup.Group. Minus-word erasure also runs in parallel, guarded
// by a single mutex over the (by then ordinary) result map.
func (idx *Index) ScorePar(q query.Query, pred types.Predicate, bucketCount int) map[int32]float64 {
	idx.mu.RLock()
	liveCount := len(idx.docs)

	if bucketCount < 1 {
		bucketCount = liveCount
		if bucketCount < 1 {
			bucketCount = 1
		}
	}
	acc := NewAccumulator(bucketCount)

	var g errgroup.Group
	for _, w := range distinct(q.Plus) {
		w := w
		g.Go(func() error {
			postings := idx.postings(w)
			if postings == nil {
				return nil
			}
			idf := idx.idf(w, liveCount)
			for id, tf := range postings {
				data := idx.docs[id]
				if !pred(id, data.Status, data.Rating) {
					continue
				}
				h := acc.At(id)
				h.Add(tf * idf)
				h.Release()
			}
			return nil
		})
	}
	_ = g.Wait()

	scores := acc.Finalize()

	var mu sync.Mutex
	var eg errgroup.Group
	for _, w := range q.Minus {
		w := w
		eg.Go(func() error {
			ids := make([]int32, 0)
			for id := range idx.postings(w) {
				ids = append(ids, id)
			}
			if len(ids) == 0 {
				return nil
			}
			mu.Lock()
			for _, id := range ids {
				delete(scores, id)
			}
			mu.Unlock()
			return nil
		})
	}
	_ = eg.Wait()

	idx.mu.RUnlock()
	return scores
}

// distinct returns words with duplicates removed, order unimportant. Par
// mode's parser deliberately leaves q.Plus/q.Minus with duplicates (§4.3),
// but scoring — unlike MatchDocument — must still run over the set of
// distinct plus-words: the source scores over a std::set<string> of
// plus_words (search_server.cpp), so a repeated token must contribute its
// idf*tf exactly once, not once per repetition.
func distinct(words []string) []string {
	if len(words) < 2 {
		return words
	}
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
