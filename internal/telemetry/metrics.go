// Package telemetry collects operational metrics from the search driver.
package telemetry

import (
	"sync/atomic"
	"time"
)

// Outcome classifies how a search ended.
type Outcome string

const (
	OutcomeFound    Outcome = "found"
	OutcomePartial  Outcome = "partial"
	OutcomeNoPath   Outcome = "no_path"
	OutcomeBudget   Outcome = "budget"
	OutcomeCanceled Outcome = "canceled"
	OutcomeError    Outcome = "error"
)

// SearchSample describes one completed search.
type SearchSample struct {
	Outcome   Outcome
	Expanded  int           // nodes popped and expanded
	Allocated int           // nodes live in the session arena at the end
	Duration  time.Duration // wall time of the search
}

// MetricsCollector receives a sample after every search.
// Implementations must be safe for concurrent use; batch searches report
// from several goroutines.
type MetricsCollector interface {
	RecordSearch(s SearchSample)
}

// NoopCollector discards every sample.
type NoopCollector struct{}

// RecordSearch implements MetricsCollector.
func (NoopCollector) RecordSearch(SearchSample) {}

// BasicCollector keeps in-memory counters.
// Useful for tests and debugging without external dependencies.
type BasicCollector struct {
	Searches      atomic.Int64
	Found         atomic.Int64
	Partial       atomic.Int64
	Failed        atomic.Int64
	ExpandedNodes atomic.Int64
	TotalNanos    atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicCollector) RecordSearch(s SearchSample) {
	b.Searches.Add(1)
	b.ExpandedNodes.Add(int64(s.Expanded))
	b.TotalNanos.Add(s.Duration.Nanoseconds())
	switch s.Outcome {
	case OutcomeFound:
		b.Found.Add(1)
	case OutcomePartial:
		b.Partial.Add(1)
	default:
		b.Failed.Add(1)
	}
}

// MeanExpanded returns the average number of expanded nodes per search.
func (b *BasicCollector) MeanExpanded() float64 {
	n := b.Searches.Load()
	if n == 0 {
		return 0
	}
	return float64(b.ExpandedNodes.Load()) / float64(n)
}

// MultiCollector fans every sample out to several collectors.
type MultiCollector []MetricsCollector

// RecordSearch implements MetricsCollector.
func (m MultiCollector) RecordSearch(s SearchSample) {
	for _, c := range m {
		c.RecordSearch(s)
	}
}
