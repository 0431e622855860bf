// Package engine is the public orchestration surface (C8): parse → score →
// rank → top-K → filter, in both sequential and parallel modes, plus the
// maintenance (C9), batch (C10), metrics (C11) and logging (C12) concerns
// layered on top of core.Index. Grounded on the teacher's engine.Engine
// struct/Init/Search shape, simplified from channel-worker dispatch to
// direct calls since this spec's concurrency model is "caller excludes
// writers", not an internal actor system.
package engine

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"lexidex/core"
	"lexidex/query"
	"lexidex/types"
)

// Engine is the full-text search index. The zero value is not usable; build
// one with New. An *Engine is safe for concurrent readers once any writer
// call (AddDocument, RemoveDocument, RemoveDuplicates) has returned and no
// other writer call is in flight — see SPEC_FULL.md §5.
type Engine struct {
	index     *core.Index
	stopWords *query.StopWords
	opts      types.Options

	metrics *collector
}

// New builds an engine with the given stop-words (a whitespace-separated
// string or a []string) and optional Options.
func New(stopWords interface{}, opts ...types.Options) (*Engine, error) {
	var o types.Options
	if len(opts) > 0 {
		o = opts[0]
	}
	o.Init()

	sw, err := query.NewStopWords(stopWords)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		index:     core.NewIndex(sw),
		stopWords: sw,
		opts:      o,
		metrics:   newCollector(),
	}
	o.Logger.WithField("component", "engine").Info("engine constructed")
	return e, nil
}

// AddDocument tokenizes and indexes doc, all-or-nothing: a rejected call
// leaves the engine unchanged.
func (e *Engine) AddDocument(id int32, text string, status types.Status, ratings []int32) error {
	err := e.index.AddDocument(types.Document{ID: id, Text: text, Status: status, Ratings: ratings})
	if err != nil {
		return err
	}
	e.metrics.documentsIndexed.Inc()
	return nil
}

// RemoveDocument deletes id. A silent no-op if id isn't live. Unlike
// FindTopDocuments/MatchDocument, removal has no parallel variant worth
// distinguishing — it's a single critical-section map-delete in both the
// original and here — so there is no Mode parameter.
func (e *Engine) RemoveDocument(id int32) {
	if _, _, found := e.index.Document(id); !found {
		return
	}
	e.index.RemoveDocument(id)
	e.metrics.documentsRemoved.Inc()
}

// GetDocumentCount returns the number of currently live documents.
func (e *Engine) GetDocumentCount() int {
	return e.index.DocumentCount()
}

// GetWordFrequencies returns id's word->frequency table, or an empty map if
// id is unknown.
func (e *Engine) GetWordFrequencies(id int32) map[string]float64 {
	return e.index.WordFrequencies(id)
}

// GetWordToFreqs returns the full inverted index, word -> docID -> tf.
func (e *Engine) GetWordToFreqs() map[string]map[int32]float64 {
	return e.index.WordToFreqs()
}

// LiveIDs returns the currently live document ids in ascending order.
func (e *Engine) LiveIDs() []int32 {
	return e.index.LiveIDs()
}

// FindTopDocuments parses rawQuery, scores the corpus, ranks and truncates
// to MaxResultDocumentCount. pred selects which overload this call is: none
// given defaults to types.StatusPredicate(types.ACTUAL); a single
// types.Predicate is used as-is (the "predicate form" and, via
// types.StatusPredicate, the "status form" of SPEC_FULL.md §4.5).
func (e *Engine) FindTopDocuments(mode types.Mode, rawQuery string, pred ...types.Predicate) ([]types.Result, error) {
	start := time.Now()
	p := types.StatusPredicate(types.ACTUAL)
	if len(pred) > 0 {
		p = pred[0]
	}

	q, err := query.Parse(rawQuery, e.stopWords, mode)
	if err != nil {
		return nil, err
	}

	var scores map[int32]float64
	if mode == types.Par {
		scores = e.index.ScorePar(q, p, e.opts.AccumulatorBuckets)
	} else {
		scores = e.index.ScoreSeq(q, p)
	}

	results := e.index.Materialize(scores)
	sort.Sort(types.ScoredResults(results))
	if len(results) > types.MaxResultDocumentCount {
		results = results[:types.MaxResultDocumentCount]
	}

	e.metrics.queriesServed.WithLabelValues(mode.String()).Inc()
	e.metrics.scoringDuration.Observe(time.Since(start).Seconds())
	return results, nil
}

// FindTopDocumentsDefault is FindTopDocuments using opts.DefaultMode,
// for callers that don't want to name a Mode explicitly on every call.
func (e *Engine) FindTopDocumentsDefault(rawQuery string, pred ...types.Predicate) ([]types.Result, error) {
	return e.FindTopDocuments(e.opts.DefaultMode, rawQuery, pred...)
}

// MatchDocument parses rawQuery and reports which of its plus-words appear
// in id's indexed text, or an empty slice if any minus-word does.
func (e *Engine) MatchDocument(mode types.Mode, rawQuery string, id int32) ([]string, types.Status, error) {
	status, _, found := e.index.Document(id)
	if !found {
		return nil, 0, fmt.Errorf("%w: id %d", types.ErrNotFound, id)
	}

	q, err := query.Parse(rawQuery, e.stopWords, mode)
	if err != nil {
		return nil, 0, err
	}
	freqs := e.index.WordFrequencies(id)

	for _, w := range q.Minus {
		if _, present := freqs[w]; present {
			return []string{}, status, nil
		}
	}

	var matched []string
	if mode == types.Par {
		matched = matchPlusWordsParallel(q.Plus, freqs)
	} else {
		matched = matchPlusWordsSeq(q.Plus, freqs)
	}
	return matched, status, nil
}

// MatchDocumentDefault is MatchDocument using opts.DefaultMode.
func (e *Engine) MatchDocumentDefault(rawQuery string, id int32) ([]string, types.Status, error) {
	return e.MatchDocument(e.opts.DefaultMode, rawQuery, id)
}

func matchPlusWordsSeq(plus []string, freqs map[string]float64) []string {
	seen := make(map[string]struct{}, len(plus))
	var out []string
	for _, w := range plus {
		if _, present := freqs[w]; !present {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func matchPlusWordsParallel(plus []string, freqs map[string]float64) []string {
	var mu sync.Mutex
	var matched []string
	var g errgroup.Group
	for _, w := range plus {
		w := w
		g.Go(func() error {
			if _, present := freqs[w]; !present {
				return nil
			}
			mu.Lock()
			matched = append(matched, w)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.Strings(matched)
	out := matched[:0]
	for i, w := range matched {
		if i == 0 || w != out[len(out)-1] {
			out = append(out, w)
		}
	}
	return out
}
