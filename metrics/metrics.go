// Package metrics defines the prometheus collectors of lvroute.
//
// Collectors are registered on an injected prometheus.Registerer rather than
// the default registry, so tests and embedders can use isolated registries.
// All methods are safe on a nil *Metrics, which records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lvroute"

// Search outcome labels.
const (
	StatusFound     = "found"
	StatusExhausted = "exhausted"
	StatusInvalid   = "invalid"
)

// Metrics groups the search and graph collectors.
type Metrics struct {
	searchTotal    *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
	searchPops     prometheus.Histogram
	graphNodes     prometheus.Gauge
	graphArcs      prometheus.Gauge
	buildDuration  prometheus.Histogram
}

// New registers every collector on reg. It panics if any is already
// registered there, as promauto does.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		searchTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_total",
			Help:      "Queries by kind and outcome.",
		}, []string{"kind", "status"}),
		searchDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of a single query.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"kind"}),
		searchPops: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_pops",
			Help:      "Heap extractions per query.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}),
		graphNodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Nodes in the loaded routing graph.",
		}),
		graphArcs: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_arcs",
			Help:      "Arcs in the loaded routing graph.",
		}),
		buildDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Time to ingest and compact a map.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		}),
	}
}

// ObserveSearch records one finished query. kind is "route" or "reach".
func (m *Metrics) ObserveSearch(kind, status string, elapsed time.Duration, pops int) {
	if m == nil {
		return
	}
	m.searchTotal.WithLabelValues(kind, status).Inc()
	m.searchDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
	m.searchPops.Observe(float64(pops))
}

// ObserveInvalid records a query rejected before it ran.
func (m *Metrics) ObserveInvalid(kind string) {
	if m == nil {
		return
	}
	m.searchTotal.WithLabelValues(kind, StatusInvalid).Inc()
}

// SetGraph publishes the size of the loaded graph.
func (m *Metrics) SetGraph(nodes, arcs int) {
	if m == nil {
		return
	}
	m.graphNodes.Set(float64(nodes))
	m.graphArcs.Set(float64(arcs))
}

// ObserveBuild records the time taken to ingest and compact a map.
func (m *Metrics) ObserveBuild(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.buildDuration.Observe(elapsed.Seconds())
}
