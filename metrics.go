package lazyvec

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    writeCounter prometheus.Counter
//	    growCounter  prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordWrite(firstWrite bool) {
//	    p.writeCounter.Inc()
//	    // ... record first-write state, etc.
//	}
type MetricsCollector interface {
	// RecordWrite is called after each write operation.
	// firstWrite is true when the write allocated a fresh slot.
	RecordWrite(firstWrite bool)

	// RecordRead is called after each read operation.
	// err is nil if successful.
	RecordRead(err error)

	// RecordGrow is called after each index-table reallocation.
	RecordGrow(oldCap, newCap int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordWrite(bool)    {}
func (NoopMetricsCollector) RecordRead(error)    {}
func (NoopMetricsCollector) RecordGrow(int, int) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	WriteCount      atomic.Int64
	FirstWriteCount atomic.Int64
	ReadCount       atomic.Int64
	ReadErrors      atomic.Int64
	GrowCount       atomic.Int64
}

// RecordWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWrite(firstWrite bool) {
	b.WriteCount.Add(1)
	if firstWrite {
		b.FirstWriteCount.Add(1)
	}
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(err error) {
	b.ReadCount.Add(1)
	if err != nil {
		b.ReadErrors.Add(1)
	}
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(oldCap, newCap int) {
	b.GrowCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		WriteCount:      b.WriteCount.Load(),
		FirstWriteCount: b.FirstWriteCount.Load(),
		ReadCount:       b.ReadCount.Load(),
		ReadErrors:      b.ReadErrors.Load(),
		GrowCount:       b.GrowCount.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	WriteCount      int64
	FirstWriteCount int64
	ReadCount       int64
	ReadErrors      int64
	GrowCount       int64
}
