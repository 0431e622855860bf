package engine

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"lexidex/types"
)

func TestEngineSatisfiesPrometheusCollector(t *testing.T) {
	e := newTestEngine(t, "")
	reg := prometheus.NewRegistry()
	if err := reg.Register(e); err != nil {
		t.Fatalf("Register(engine): %v", err)
	}
}

func TestMetricsCountDocumentsIndexedAndRemoved(t *testing.T) {
	e := newTestEngine(t, "")
	mustAddDoc(t, e, 1, "cat", types.ACTUAL, nil)
	mustAddDoc(t, e, 2, "dog", types.ACTUAL, nil)
	e.RemoveDocument(1)

	if got := testutil.ToFloat64(e.metrics.documentsIndexed); got != 2 {
		t.Errorf("documentsIndexed = %v, want 2", got)
	}
	if got := testutil.ToFloat64(e.metrics.documentsRemoved); got != 1 {
		t.Errorf("documentsRemoved = %v, want 1", got)
	}
}

func TestMetricsCountQueriesServedByMode(t *testing.T) {
	e := newTestEngine(t, "")
	mustAddDoc(t, e, 1, "cat", types.ACTUAL, nil)

	if _, err := e.FindTopDocuments(types.Seq, "cat"); err != nil {
		t.Fatalf("FindTopDocuments: %v", err)
	}
	if _, err := e.FindTopDocuments(types.Par, "cat"); err != nil {
		t.Fatalf("FindTopDocuments: %v", err)
	}

	if got := testutil.ToFloat64(e.metrics.queriesServed.WithLabelValues("seq")); got != 1 {
		t.Errorf("queriesServed{mode=seq} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(e.metrics.queriesServed.WithLabelValues("par")); got != 1 {
		t.Errorf("queriesServed{mode=par} = %v, want 1", got)
	}
}

func TestMetricsCountDuplicatesRemoved(t *testing.T) {
	e := newTestEngine(t, "")
	mustAddDoc(t, e, 1, "cat", types.ACTUAL, nil)
	mustAddDoc(t, e, 2, "cat", types.ACTUAL, nil)

	RemoveDuplicates(e)

	if got := testutil.ToFloat64(e.metrics.duplicatesRemoved); got != 1 {
		t.Errorf("duplicatesRemoved = %v, want 1", got)
	}
}
