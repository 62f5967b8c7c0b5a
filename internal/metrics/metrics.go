// Package metrics holds the site's domain counters. All methods are safe
// on a nil *Metrics, which tests use to skip instrumentation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "thechief"

// Fallback sources.
const (
	SourceContent = "content"
	SourceMock    = "mock"
	SourceNone    = "none"
)

// Metrics holds the domain collectors.
type Metrics struct {
	resolverHits   *prometheus.CounterVec
	resolverMisses prometheus.Counter
	fallback       *prometheus.CounterVec
	storeQuery     *prometheus.HistogramVec
	pageCache      *prometheus.CounterVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		resolverHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolver_hits_total",
			Help:      "Slug resolutions answered, by winning strategy",
		}, []string{"strategy"}),
		resolverMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolver_misses_total",
			Help:      "Slug resolutions where every strategy missed",
		}),
		fallback: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallback_total",
			Help:      "Page views by data source (content, mock, none)",
		}, []string{"page", "source"}),
		storeQuery: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_query_duration_seconds",
			Help:      "Content store query latency by operation",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),
		pageCache: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_cache_total",
			Help:      "Page cache lookups by result (hit, miss, error)",
		}, []string{"result"}),
	}
}

func (m *Metrics) ResolverHit(strategy string) {
	if m == nil {
		return
	}
	m.resolverHits.WithLabelValues(strategy).Inc()
}

func (m *Metrics) ResolverMiss() {
	if m == nil {
		return
	}
	m.resolverMisses.Inc()
}

// Fallback records which source served a page.
func (m *Metrics) Fallback(page, source string) {
	if m == nil {
		return
	}
	m.fallback.WithLabelValues(page, source).Inc()
}

// ObserveStoreQuery records the latency of one store operation.
func (m *Metrics) ObserveStoreQuery(operation string, d time.Duration) {
	if m == nil {
		return
	}
	m.storeQuery.WithLabelValues(operation).Observe(d.Seconds())
}

// PageCache records a cache lookup result.
func (m *Metrics) PageCache(result string) {
	if m == nil {
		return
	}
	m.pageCache.WithLabelValues(result).Inc()
}
