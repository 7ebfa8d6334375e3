package lazyvec

// Reference-mode access. These methods expose the same validation path as
// Read/Write but hand out pointers into the value store, for element types
// that are expensive to copy or need in-place mutation.
//
// Pointer lifetime rule: a pointer returned by Ref, GetOrInsert or
// GetOrInsertFunc is valid only until the next operation that allocates a
// slot (any first write), which may relocate the value store. Do not retain
// such a pointer across other operations on the same container.

// Ref returns a pointer to the value at index i, with the same failure modes
// as Read. The pointer never refers to an uninitialized slot.
func (l *LazyVec[T]) Ref(i int) (*T, error) {
	p, err := l.table.Ref(i)
	err = translateError(err)
	l.metrics.RecordRead(err)

	return p, err
}

// GetOrInsert returns a pointer to the value at index i, first storing v
// there if i has never been written. An existing value is left untouched.
//
// The slot is assigned before the pointer is returned, so no pointer to
// unspecified content is ever observable. Panics as Write does on negative i
// or capacity overflow.
func (l *LazyVec[T]) GetOrInsert(i int, v T) *T {
	capBefore := l.table.Cap()
	p, inserted := l.table.GetOrInsert(i, v)
	l.afterWrite(i, capBefore, inserted)

	return p
}

// GetOrInsertFunc is GetOrInsert with a lazily produced value: f runs only
// when i has never been written.
func (l *LazyVec[T]) GetOrInsertFunc(i int, f func() T) *T {
	capBefore := l.table.Cap()
	p, inserted := l.table.GetOrInsertFunc(i, f)
	l.afterWrite(i, capBefore, inserted)

	return p
}
