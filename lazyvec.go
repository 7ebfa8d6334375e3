package lazyvec

import (
	"github.com/BartMassey/lazy-vec/internal/lazytable"
)

// LazyVec is a self-initializing array: a container addressable by arbitrary
// non-negative integer index. It is created in constant time regardless of
// its eventual extent, reads and writes in amortized constant time, and
// occupies space proportional to the number of distinct indexes actually
// written, not to the largest index used.
//
// LazyVec is not safe for concurrent use; callers requiring concurrent
// access must serialize all operations externally.
type LazyVec[T any] struct {
	table   *lazytable.Table[T]
	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty LazyVec.
func New[T any](optFns ...Option) *LazyVec[T] {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	return &LazyVec[T]{
		table:   lazytable.New[T](o.capacity),
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// Len returns the notional size: one past the highest index ever written,
// 0 if nothing has been written. O(1), no side effects.
func (l *LazyVec[T]) Len() int {
	return l.table.Len()
}

// Cap returns the current capacity of the index table. It is monotonically
// non-decreasing and always >= Len. O(1), no side effects.
func (l *LazyVec[T]) Cap() int {
	return l.table.Cap()
}

// Write stores v at index i. The first write to an index allocates its slot;
// later writes to the same index update the slot in place.
//
// Write panics on negative i, and panics with ErrCapacityOverflow when the
// required index-table growth is unrepresentable.
func (l *LazyVec[T]) Write(i int, v T) {
	capBefore := l.table.Cap()
	first := l.table.Write(i, v)
	l.afterWrite(i, capBefore, first)
}

// Read returns a copy of the value at index i.
//
// It fails with *ErrOutOfRange when i is negative or >= Len, and with
// *ErrUninitialized when i is below Len but was never itself written.
func (l *LazyVec[T]) Read(i int) (T, error) {
	v, err := l.table.Read(i)
	err = translateError(err)
	l.metrics.RecordRead(err)

	return v, err
}

// Stats returns a snapshot of the container's storage accounting.
func (l *LazyVec[T]) Stats() Stats {
	return Stats{
		Len:   l.table.Len(),
		Cap:   l.table.Cap(),
		Slots: l.table.Slots(),
		Grows: l.table.Grows(),
	}
}

func (l *LazyVec[T]) afterWrite(i, capBefore int, first bool) {
	if capAfter := l.table.Cap(); capAfter != capBefore {
		l.logger.LogGrow(i, capBefore, capAfter)
		l.metrics.RecordGrow(capBefore, capAfter)
	}
	l.metrics.RecordWrite(first)
}

// Stats is a snapshot of a LazyVec's storage accounting.
//
// Note on semantics:
//   - Len: notional size, one past the highest index written
//   - Cap: current index-table capacity
//   - Slots: occupied value-store slots (distinct indexes written)
//   - Grows: number of index-table reallocations so far
type Stats struct {
	Len   int
	Cap   int
	Slots int
	Grows int
}
