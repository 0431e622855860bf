// Package types holds the small, mostly behavior-free value types shared
// across the index, query and engine packages: documents, statuses, results,
// errors and the construction-time Options.
package types

import "fmt"

// Status is a document's lifecycle/visibility state, mirroring the four
// values of the original DocumentStatus enum.
type Status int

const (
	ACTUAL Status = iota
	IRRELEVANT
	BANNED
	REMOVED
)

func (s Status) String() string {
	switch s {
	case ACTUAL:
		return "ACTUAL"
	case IRRELEVANT:
		return "IRRELEVANT"
	case BANNED:
		return "BANNED"
	case REMOVED:
		return "REMOVED"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Mode selects between the sequential and parallel execution paths of the
// query engine. It replaces per-mode method overloads with a single
// explicit argument threaded through the public API (see SPEC_FULL.md §9).
type Mode int

const (
	Seq Mode = iota
	Par
)

func (m Mode) String() string {
	if m == Par {
		return "par"
	}
	return "seq"
}

// Document is the immutable record handed to AddDocument.
type Document struct {
	ID      int32
	Text    string
	Status  Status
	Ratings []int32
}

// Result is a single scored, ranked document returned from a search.
type Result struct {
	ID        int32
	Relevance float64
	Rating    int32
	Status    Status
}

// ScoredResults implements sort.Interface in descending relevance order,
// with rating as the tiebreaker inside RelevanceThreshold.
type ScoredResults []Result

func (r ScoredResults) Len() int      { return len(r) }
func (r ScoredResults) Swap(i, j int) { r[i], r[j] = r[j], r[i] }
func (r ScoredResults) Less(i, j int) bool {
	if Abs(r[i].Relevance-r[j].Relevance) < RelevanceThreshold {
		return r[i].Rating > r[j].Rating
	}
	return r[i].Relevance > r[j].Relevance
}

// Abs is a tiny float64 absolute value helper, kept local to avoid pulling
// in math for a one-liner used only by the tie-break comparison above.
func Abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// Predicate filters documents during scoring by id, status and rating.
type Predicate func(id int32, status Status, rating int32) bool

// StatusPredicate builds a Predicate equivalent to `status == s`, backing
// the engine's status-form FindTopDocuments overload.
func StatusPredicate(s Status) Predicate {
	return func(_ int32, status Status, _ int32) bool {
		return status == s
	}
}

const (
	// MaxResultDocumentCount bounds the number of ranked results returned
	// from a single FindTopDocuments call.
	MaxResultDocumentCount = 5

	// RelevanceThreshold is the equivalence band used when comparing two
	// relevance scores for ranking purposes.
	RelevanceThreshold = 1e-6
)
