package telemetry

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicCollector(t *testing.T) {
	var c BasicCollector
	c.RecordSearch(SearchSample{Outcome: OutcomeFound, Expanded: 10, Duration: time.Millisecond})
	c.RecordSearch(SearchSample{Outcome: OutcomePartial, Expanded: 20})
	c.RecordSearch(SearchSample{Outcome: OutcomeNoPath, Expanded: 30})

	assert.Equal(t, int64(3), c.Searches.Load())
	assert.Equal(t, int64(1), c.Found.Load())
	assert.Equal(t, int64(1), c.Partial.Load())
	assert.Equal(t, int64(1), c.Failed.Load())
	assert.InDelta(t, 20.0, c.MeanExpanded(), 1e-9)
	assert.Equal(t, time.Millisecond.Nanoseconds(), c.TotalNanos.Load())
}

func TestBasicCollectorEmpty(t *testing.T) {
	var c BasicCollector
	assert.Zero(t, c.MeanExpanded())
}

func TestNoopCollector(t *testing.T) {
	var c MetricsCollector = NoopCollector{}
	c.RecordSearch(SearchSample{Outcome: OutcomeFound})
}

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewPrometheusCollector(reg)
	require.NoError(t, err)

	c.RecordSearch(SearchSample{Outcome: OutcomeFound, Expanded: 5, Allocated: 40, Duration: 2 * time.Millisecond})
	c.RecordSearch(SearchSample{Outcome: OutcomeFound, Expanded: 7})
	c.RecordSearch(SearchSample{Outcome: OutcomeBudget, Expanded: 100})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.searches.WithLabelValues(string(OutcomeFound))))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.searches.WithLabelValues(string(OutcomeBudget))))
	assert.Equal(t, 2, testutil.CollectAndCount(c.searches))

	_, err = NewPrometheusCollector(reg)
	assert.Error(t, err, "registering twice fails")
}

func TestMultiCollector(t *testing.T) {
	var a, b BasicCollector
	m := MultiCollector{&a, &b, NoopCollector{}}
	m.RecordSearch(SearchSample{Outcome: OutcomeFound, Expanded: 3})

	assert.Equal(t, int64(1), a.Found.Load())
	assert.Equal(t, int64(3), b.ExpandedNodes.Load())
}
