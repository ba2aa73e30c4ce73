package longset

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Collectors are called on the hot path of Add and Remove, so implementations
// should be cheap and must be safe for concurrent use when shared between sets.
type MetricsCollector interface {
	// RecordAdd is called after each Add. added is false for a duplicate key.
	RecordAdd(added bool)

	// RecordRemove is called after each Remove. removed is false for an absent key.
	RecordRemove(removed bool)

	// RecordRehash is called after the table has been rebuilt with a new capacity,
	// either by automatic growth or by SetCapacity/ReserveRoom.
	RecordRehash(oldCapacity, newCapacity int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(bool)                       {}
func (NoopMetricsCollector) RecordRemove(bool)                    {}
func (NoopMetricsCollector) RecordRehash(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount         atomic.Int64
	AddDuplicates    atomic.Int64
	RemoveCount      atomic.Int64
	RemoveMisses     atomic.Int64
	RehashCount      atomic.Int64
	RehashTotalNanos atomic.Int64
	MaxCapacity      atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(added bool) {
	b.AddCount.Add(1)
	if !added {
		b.AddDuplicates.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(removed bool) {
	b.RemoveCount.Add(1)
	if !removed {
		b.RemoveMisses.Add(1)
	}
}

// RecordRehash implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRehash(_, newCapacity int, duration time.Duration) {
	b.RehashCount.Add(1)
	b.RehashTotalNanos.Add(duration.Nanoseconds())

	for {
		cur := b.MaxCapacity.Load()
		if int64(newCapacity) <= cur || b.MaxCapacity.CompareAndSwap(cur, int64(newCapacity)) {
			return
		}
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:       b.AddCount.Load(),
		AddDuplicates:  b.AddDuplicates.Load(),
		RemoveCount:    b.RemoveCount.Load(),
		RemoveMisses:   b.RemoveMisses.Load(),
		RehashCount:    b.RehashCount.Load(),
		RehashAvgNanos: b.getAvgRehashNanos(),
		MaxCapacity:    b.MaxCapacity.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRehashNanos() int64 {
	count := b.RehashCount.Load()
	if count == 0 {
		return 0
	}
	return b.RehashTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount       int64
	AddDuplicates  int64
	RemoveCount    int64
	RemoveMisses   int64
	RehashCount    int64
	RehashAvgNanos int64
	MaxCapacity    int64
}
