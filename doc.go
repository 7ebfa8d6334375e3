// Package lazyvec provides a self-initializing array for Go.
//
// A LazyVec is addressable by arbitrary non-negative integer index. It is
// created in O(1) time no matter how large its eventual extent, reads and
// writes in amortized O(1), and uses memory proportional to the number of
// distinct indexes actually written, not to the largest index used. The
// classic trick: allocation never zero-fills the index space, and an
// ownership table distinguishes genuinely written slots from garbage without
// scanning.
//
// # Quick Start
//
//	a := lazyvec.New[int]()
//	a.Write(77, -12)
//
//	v, _ := a.Read(77) // -12
//	a.Len()            // 78
//
//	_, err := a.Read(76) // *ErrUninitialized: 76 was skipped over
//	_, err = a.Read(78)  // *ErrOutOfRange: beyond the notional size
//
// Pre-grow the index table when the extent is known up front; the allocation
// is paid once but nothing is initialized:
//
//	a := lazyvec.New[int](lazyvec.WithCapacity(1_000_000))
//	a.Len() // still 0
//
// # Access Modes
//
// Two access conventions share one engine. The value-copy mode (Write/Read)
// suits cheaply copyable element types. The reference mode (Ref/GetOrInsert/
// GetOrInsertFunc) hands out pointers into the value store for in-place
// mutation of larger types:
//
//	buf := a.GetOrInsertFunc(42, func() []byte { return make([]byte, 4096) })
//	copy(*buf, payload)
//
// Slots are always assigned a value before a pointer escapes, so no pointer
// to unspecified content is ever observable. A returned pointer is valid
// only until the next first-write to any index, which may relocate the
// value store.
//
// # Failure Model
//
// Reads fail fast with typed errors (*ErrOutOfRange, *ErrUninitialized)
// rather than substituting defaults. Writes are infallible except for
// allocation failure; an index-table growth request beyond the representable
// slice length panics with ErrCapacityOverflow.
//
// # Concurrency
//
// LazyVec is single-threaded by design: no internal locking, no atomics.
// Callers requiring concurrent access must serialize every operation
// externally and must never retain a reference-mode pointer across another
// operation on the same container.
package lazyvec
