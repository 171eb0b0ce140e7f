package vector

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting storage metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    relocations prometheus.Counter
//	    latency     prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordRelocation(count int, s vector.Strategy, d time.Duration, err error) {
//	    p.relocations.Inc()
//	    p.latency.Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordAllocation is called after each attempt to obtain a block.
	// bytes is the requested size, 0 if it is not representable.
	// err is nil if the block was obtained.
	RecordAllocation(capacity int, bytes int64, err error)

	// RecordRelease is called after a block is released.
	RecordRelease(capacity int, bytes int64)

	// RecordRelocation is called after live elements were moved or copied
	// into a replacement block (including construction of any new tail).
	// err is nil if the replacement block was adopted.
	RecordRelocation(count int, strategy Strategy, duration time.Duration, err error)

	// RecordRollback is called when an operation undid its partial work
	// because an element operation failed.
	RecordRollback(op string, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocation(int, int64, error)                   {}
func (NoopMetricsCollector) RecordRelease(int, int64)                             {}
func (NoopMetricsCollector) RecordRelocation(int, Strategy, time.Duration, error) {}
func (NoopMetricsCollector) RecordRollback(string, error)                         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocationCount      atomic.Int64
	AllocationErrors     atomic.Int64
	BytesAllocated       atomic.Int64
	ReleaseCount         atomic.Int64
	BytesReleased        atomic.Int64
	RelocationCount      atomic.Int64
	RelocationErrors     atomic.Int64
	RelocatedElements    atomic.Int64
	RelocationsByCopy    atomic.Int64
	RelocationTotalNanos atomic.Int64
	RollbackCount        atomic.Int64
}

// RecordAllocation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocation(capacity int, bytes int64, err error) {
	b.AllocationCount.Add(1)
	if err != nil {
		b.AllocationErrors.Add(1)
		return
	}
	b.BytesAllocated.Add(bytes)
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(capacity int, bytes int64) {
	b.ReleaseCount.Add(1)
	b.BytesReleased.Add(bytes)
}

// RecordRelocation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelocation(count int, strategy Strategy, duration time.Duration, err error) {
	b.RelocationCount.Add(1)
	b.RelocationTotalNanos.Add(duration.Nanoseconds())
	if strategy == StrategyCopy {
		b.RelocationsByCopy.Add(1)
	}
	if err != nil {
		b.RelocationErrors.Add(1)
		return
	}
	b.RelocatedElements.Add(int64(count))
}

// RecordRollback implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRollback(op string, err error) {
	b.RollbackCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AllocationCount:    b.AllocationCount.Load(),
		AllocationErrors:   b.AllocationErrors.Load(),
		BytesAllocated:     b.BytesAllocated.Load(),
		ReleaseCount:       b.ReleaseCount.Load(),
		BytesReleased:      b.BytesReleased.Load(),
		RelocationCount:    b.RelocationCount.Load(),
		RelocationErrors:   b.RelocationErrors.Load(),
		RelocatedElements:  b.RelocatedElements.Load(),
		RelocationsByCopy:  b.RelocationsByCopy.Load(),
		RelocationAvgNanos: b.getAvgRelocationNanos(),
		RollbackCount:      b.RollbackCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRelocationNanos() int64 {
	count := b.RelocationCount.Load()
	if count == 0 {
		return 0
	}
	return b.RelocationTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AllocationCount    int64
	AllocationErrors   int64
	BytesAllocated     int64
	ReleaseCount       int64
	BytesReleased      int64
	RelocationCount    int64
	RelocationErrors   int64
	RelocatedElements  int64
	RelocationsByCopy  int64
	RelocationAvgNanos int64
	RollbackCount      int64
}
