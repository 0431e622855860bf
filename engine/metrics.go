package engine

import "github.com/prometheus/client_golang/prometheus"

// collector is the engine's internal instrumentation surface (C11),
// descending from the teacher's atomic counters (numDocumentsIndexed,
// numIndexingRequests, ...) turned into registerable Prometheus metrics.
type collector struct {
	documentsIndexed  prometheus.Counter
	documentsRemoved  prometheus.Counter
	duplicatesRemoved prometheus.Counter
	queriesServed     *prometheus.CounterVec
	scoringDuration   prometheus.Histogram
}

func newCollector() *collector {
	return &collector{
		documentsIndexed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lexidex_documents_indexed_total",
			Help: "Total number of documents successfully added to the index.",
		}),
		documentsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lexidex_documents_removed_total",
			Help: "Total number of documents removed from the index.",
		}),
		duplicatesRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lexidex_duplicates_removed_total",
			Help: "Total number of documents removed by RemoveDuplicates.",
		}),
		queriesServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lexidex_queries_served_total",
			Help: "Total number of FindTopDocuments calls, by execution mode.",
		}, []string{"mode"}),
		scoringDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lexidex_scoring_duration_seconds",
			Help:    "Time spent scoring and ranking a single FindTopDocuments call.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Describe implements prometheus.Collector.
func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	c.documentsIndexed.Describe(ch)
	c.documentsRemoved.Describe(ch)
	c.duplicatesRemoved.Describe(ch)
	c.queriesServed.Describe(ch)
	c.scoringDuration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *collector) Collect(ch chan<- prometheus.Metric) {
	c.documentsIndexed.Collect(ch)
	c.documentsRemoved.Collect(ch)
	c.duplicatesRemoved.Collect(ch)
	c.queriesServed.Collect(ch)
	c.scoringDuration.Collect(ch)
}

// Describe implements prometheus.Collector for Engine, so an embedder can
// prometheus.MustRegister(engine) directly.
func (e *Engine) Describe(ch chan<- *prometheus.Desc) { e.metrics.Describe(ch) }

// Collect implements prometheus.Collector for Engine.
func (e *Engine) Collect(ch chan<- prometheus.Metric) { e.metrics.Collect(ch) }
