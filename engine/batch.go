package engine

import (
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"lexidex/types"
)

// ProcessQueries runs each of queries against e using the parallel scoring
// path and the default (status=ACTUAL) predicate, executing the M queries
// themselves in parallel via an errgroup.Group. Grounded on
// original_source/search-server/process_queries.cpp. Input order is
// preserved in the output slice. A malformed query (ErrInvalidInput) does
// not abort the batch: its slot comes back as an empty result slice, and
// every such error is collected into the returned multierror rather than
// raising immediately.
func ProcessQueries(e *Engine, queries []string) ([][]types.Result, error) {
	results := make([][]types.Result, len(queries))
	errs := make([]error, len(queries))

	var g errgroup.Group
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			res, err := e.FindTopDocuments(types.Par, q)
			if err != nil {
				errs[i] = err
				return nil
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	var merged *multierror.Error
	for _, err := range errs {
		if err != nil {
			merged = multierror.Append(merged, err)
		}
	}
	return results, merged.ErrorOrNil()
}

// ProcessQueriesJoined behaves like ProcessQueries but flattens the M result
// slices into one, preserving per-query order (all of query 1's results,
// then all of query 2's, ...). Same error-aggregation behavior.
func ProcessQueriesJoined(e *Engine, queries []string) ([]types.Result, error) {
	perQuery, err := ProcessQueries(e, queries)
	joined := make([]types.Result, 0, len(perQuery))
	for _, res := range perQuery {
		joined = append(joined, res...)
	}
	return joined, err
}
