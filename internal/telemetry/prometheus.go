package telemetry

import "github.com/prometheus/client_golang/prometheus"

// PrometheusCollector exports search samples as Prometheus metrics.
type PrometheusCollector struct {
	searches  *prometheus.CounterVec
	duration  prometheus.Histogram
	expanded  prometheus.Histogram
	allocated prometheus.Histogram
}

// NewPrometheusCollector creates the metrics and registers them on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheusCollector(reg prometheus.Registerer) (*PrometheusCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &PrometheusCollector{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "waypath_searches_total",
			Help: "Total searches by outcome",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "waypath_search_duration_seconds",
			Help:    "Wall time of searches",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
		expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "waypath_search_expanded_nodes",
			Help:    "Nodes expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		allocated: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "waypath_search_allocated_nodes",
			Help:    "Nodes held by the session arena when a search ends",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}

	for _, m := range []prometheus.Collector{c.searches, c.duration, c.expanded, c.allocated} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordSearch implements MetricsCollector.
func (c *PrometheusCollector) RecordSearch(s SearchSample) {
	c.searches.WithLabelValues(string(s.Outcome)).Inc()
	c.duration.Observe(s.Duration.Seconds())
	c.expanded.Observe(float64(s.Expanded))
	c.allocated.Observe(float64(s.Allocated))
}
