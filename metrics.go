package kdtree

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    insertCounter   prometheus.Counter
//	    searchHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordInsert(duration time.Duration, inserted bool, err error) {
//	    p.insertCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordBuild is called after each bulk build.
	// count is the number of input points.
	RecordBuild(count int, duration time.Duration, err error)

	// RecordInsert is called after each insert operation.
	// inserted is false when the point was already stored.
	RecordInsert(duration time.Duration, inserted bool, err error)

	// RecordDelete is called after each delete operation.
	// deleted is false when the point was not stored.
	RecordDelete(duration time.Duration, deleted bool, err error)

	// RecordContains is called after each membership test.
	RecordContains(duration time.Duration, found bool, err error)

	// RecordSearch is called after each nearest-neighbor search.
	// n is the number of neighbors requested, results the number returned.
	RecordSearch(n, results int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration, error)       {}
func (NoopMetricsCollector) RecordInsert(time.Duration, bool, error)     {}
func (NoopMetricsCollector) RecordDelete(time.Duration, bool, error)     {}
func (NoopMetricsCollector) RecordContains(time.Duration, bool, error)   {}
func (NoopMetricsCollector) RecordSearch(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount       atomic.Int64
	BuildPoints      atomic.Int64
	BuildErrors      atomic.Int64
	InsertCount      atomic.Int64
	InsertDuplicates atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	DeleteCount      atomic.Int64
	DeleteMisses     atomic.Int64
	DeleteErrors     atomic.Int64
	ContainsCount    atomic.Int64
	ContainsHits     atomic.Int64
	ContainsErrors   atomic.Int64
	SearchCount      atomic.Int64
	SearchResults    atomic.Int64
	SearchErrors     atomic.Int64
	SearchTotalNanos atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(count int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.BuildPoints.Add(int64(count))
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, inserted bool, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	switch {
	case err != nil:
		b.InsertErrors.Add(1)
	case !inserted:
		b.InsertDuplicates.Add(1)
	}
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(duration time.Duration, deleted bool, err error) {
	b.DeleteCount.Add(1)
	switch {
	case err != nil:
		b.DeleteErrors.Add(1)
	case !deleted:
		b.DeleteMisses.Add(1)
	}
}

// RecordContains implements MetricsCollector.
func (b *BasicMetricsCollector) RecordContains(duration time.Duration, found bool, err error) {
	b.ContainsCount.Add(1)
	switch {
	case err != nil:
		b.ContainsErrors.Add(1)
	case found:
		b.ContainsHits.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(n, results int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
		return
	}
	b.SearchResults.Add(int64(results))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:       b.BuildCount.Load(),
		BuildPoints:      b.BuildPoints.Load(),
		BuildErrors:      b.BuildErrors.Load(),
		InsertCount:      b.InsertCount.Load(),
		InsertDuplicates: b.InsertDuplicates.Load(),
		InsertErrors:     b.InsertErrors.Load(),
		InsertAvgNanos:   avgNanos(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		DeleteCount:      b.DeleteCount.Load(),
		DeleteMisses:     b.DeleteMisses.Load(),
		DeleteErrors:     b.DeleteErrors.Load(),
		ContainsCount:    b.ContainsCount.Load(),
		ContainsHits:     b.ContainsHits.Load(),
		ContainsErrors:   b.ContainsErrors.Load(),
		SearchCount:      b.SearchCount.Load(),
		SearchResults:    b.SearchResults.Load(),
		SearchErrors:     b.SearchErrors.Load(),
		SearchAvgNanos:   avgNanos(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount       int64
	BuildPoints      int64
	BuildErrors      int64
	InsertCount      int64
	InsertDuplicates int64
	InsertErrors     int64
	InsertAvgNanos   int64
	DeleteCount      int64
	DeleteMisses     int64
	DeleteErrors     int64
	ContainsCount    int64
	ContainsHits     int64
	ContainsErrors   int64
	SearchCount      int64
	SearchResults    int64
	SearchErrors     int64
	SearchAvgNanos   int64
}
