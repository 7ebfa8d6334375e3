package lazytable

import (
	"errors"
	"fmt"
)

// ErrCapacityOverflow is the panic value used when an index-table growth
// request exceeds the representable slice length.
var ErrCapacityOverflow = errors.New("lazytable: index table capacity overflow")

// OutOfRangeError indicates a read of an index at or beyond the notional size.
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("lazytable: index %d out of range [0, %d)", e.Index, e.Len)
}

// UninitializedError indicates a read of an index below the notional size
// that was never written, only skipped over by a write to a larger index.
type UninitializedError struct {
	Index int
}

func (e *UninitializedError) Error() string {
	return fmt.Sprintf("lazytable: index %d has never been written", e.Index)
}

// Table is a self-initializing sparse array.
//
// The zero indirection rule: every access resolves the logical index through
// the index table to a candidate slot, then validates the candidate against
// the ownership table before trusting the value store. Index-table entries
// for never-written indexes hold whatever the allocator left there (zero in
// Go); validation makes that harmless.
type Table[T any] struct {
	// size is the notional size: one past the highest index ever written.
	size int
	// values is the value store, append-only, addressed by slot.
	values []T
	// owners is the ownership table, parallel to values; owners[slot] is the
	// logical index that owns slot.
	owners []int
	// index is the index table; index[i] is an untrusted candidate slot.
	index []int
	// grows counts index-table reallocations.
	grows int
}

// New creates an empty table. A positive capacityHint pre-grows the index
// table so writes below the hint never reallocate it; the hint does not
// initialize anything and Len stays 0.
func New[T any](capacityHint int) *Table[T] {
	t := &Table[T]{}
	if capacityHint > 0 {
		t.index = make([]int, capacityHint)
	}
	return t
}

// Len returns the notional size: one past the highest index ever written,
// 0 if nothing has been written.
func (t *Table[T]) Len() int { return t.size }

// Cap returns the current length of the index table. Always >= Len and
// monotonically non-decreasing.
func (t *Table[T]) Cap() int { return len(t.index) }

// Slots returns the number of occupied value-store slots, i.e. the number of
// distinct indexes ever written.
func (t *Table[T]) Slots() int { return len(t.values) }

// Grows returns the number of times the index table has been reallocated.
func (t *Table[T]) Grows() int { return t.grows }

// lookup resolves i to its value-store slot, reporting whether the
// index-table candidate survived ownership validation.
func (t *Table[T]) lookup(i int) (int, bool) {
	if i < 0 || i >= len(t.index) {
		return 0, false
	}
	slot := t.index[i]
	if slot >= len(t.values) || t.owners[slot] != i {
		return 0, false
	}
	return slot, true
}

// Read returns the value at index i.
//
// It fails with *OutOfRangeError when i is negative or >= Len, and with
// *UninitializedError when i is below Len but was itself never written.
func (t *Table[T]) Read(i int) (T, error) {
	var zero T
	if i < 0 || i >= t.size {
		return zero, &OutOfRangeError{Index: i, Len: t.size}
	}
	slot, ok := t.lookup(i)
	if !ok {
		return zero, &UninitializedError{Index: i}
	}
	return t.values[slot], nil
}

// Ref returns a pointer to the value at index i, with the same validation
// and failure modes as Read. The pointer never refers to an uninitialized
// slot. It is invalidated by the next operation that appends to the value
// store.
func (t *Table[T]) Ref(i int) (*T, error) {
	if i < 0 || i >= t.size {
		return nil, &OutOfRangeError{Index: i, Len: t.size}
	}
	slot, ok := t.lookup(i)
	if !ok {
		return nil, &UninitializedError{Index: i}
	}
	return &t.values[slot], nil
}

// Write stores v at index i, growing the index table as needed. It reports
// whether this was the first write to i (a new slot was allocated).
//
// Write panics on negative i, and panics with ErrCapacityOverflow when the
// required index-table growth exceeds the representable slice length.
func (t *Table[T]) Write(i int, v T) bool {
	ptr, inserted := t.GetOrInsert(i, v)
	if !inserted {
		*ptr = v
	}
	return inserted
}

// GetOrInsert returns a pointer to the value at index i, storing v there
// first if i has never been written. It reports whether an insert happened.
// An existing value is left untouched.
//
// The returned pointer is invalidated by the next operation that appends to
// the value store. Panics as Write does on negative i or capacity overflow.
func (t *Table[T]) GetOrInsert(i int, v T) (*T, bool) {
	t.ensureIndexCapacity(i)
	if slot, ok := t.lookup(i); ok {
		return &t.values[slot], false
	}
	return t.insert(i, v), true
}

// GetOrInsertFunc is GetOrInsert with a lazily produced value: f runs only
// when i has never been written.
func (t *Table[T]) GetOrInsertFunc(i int, f func() T) (*T, bool) {
	t.ensureIndexCapacity(i)
	if slot, ok := t.lookup(i); ok {
		return &t.values[slot], false
	}
	return t.insert(i, f()), true
}

// insert allocates a fresh slot for i. Caller has already ensured index
// capacity and validated that i owns no slot.
func (t *Table[T]) insert(i int, v T) *T {
	slot := len(t.values)
	t.values = append(t.values, v)
	t.owners = append(t.owners, i)
	t.index[i] = slot
	if i+1 > t.size {
		t.size = i + 1
	}
	return &t.values[slot]
}

// ensureIndexCapacity grows the index table so that it covers i. Growth is
// geometric (at least doubling), so any sequence of writes costs amortized
// O(1) per write regardless of index order.
func (t *Table[T]) ensureIndexCapacity(i int) {
	if i < 0 {
		panic(fmt.Sprintf("lazytable: negative index %d", i))
	}
	if i < len(t.index) {
		return
	}
	newCap := i + 1
	if newCap <= 0 { // i+1 overflowed
		panic(ErrCapacityOverflow)
	}
	if doubled := 2 * len(t.index); doubled > newCap {
		newCap = doubled
	}
	grown := make([]int, newCap)
	copy(grown, t.index)
	t.index = grown
	t.grows++
}
