// Package metrics registers and exposes Prometheus collectors for the
// question-answering pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles every collector the pipeline records into.
type Metrics struct {
	registry *prometheus.Registry

	QuestionsTotal    *prometheus.CounterVec
	StageDuration     *prometheus.HistogramVec
	CacheHits         prometheus.Counter
	CacheMisses       prometheus.Counter
	RetrievalFailures prometheus.Counter
}

// New registers all pipeline collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		QuestionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "legalai",
			Name:      "questions_total",
			Help:      "Questions answered, by resolved category.",
		}, []string{"category"}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "legalai",
			Name:      "stage_duration_seconds",
			Help:      "Latency of each pipeline stage.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"stage"}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "legalai",
			Name:      "answer_cache_hits_total",
			Help:      "Answers served from the cache.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "legalai",
			Name:      "answer_cache_misses_total",
			Help:      "Questions that missed the answer cache.",
		}),
		RetrievalFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "legalai",
			Name:      "retrieval_failures_total",
			Help:      "Corpus retrievals that failed and degraded the answer.",
		}),
	}
	reg.MustRegister(
		m.QuestionsTotal,
		m.StageDuration,
		m.CacheHits,
		m.CacheMisses,
		m.RetrievalFailures,
	)
	return m
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
