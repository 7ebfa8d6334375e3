package lazyvec

import (
	"errors"
	"fmt"

	"github.com/BartMassey/lazy-vec/internal/lazytable"
)

// ErrCapacityOverflow is the panic value used when a write would grow the
// index table beyond the representable slice length. Write and GetOrInsert
// are otherwise infallible, so overflow surfaces as a panic in the manner of
// bytes.ErrTooLarge; match it with errors.Is after recover.
var ErrCapacityOverflow = lazytable.ErrCapacityOverflow

// ErrOutOfRange indicates a read of an index at or beyond Len.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrOutOfRange struct {
	Index int
	Len   int
	cause error
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *ErrOutOfRange) Unwrap() error { return e.cause }

// ErrUninitialized indicates a read of an index below Len that was never
// itself written, only skipped over by a write to a larger index.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrUninitialized struct {
	Index int
	cause error
}

func (e *ErrUninitialized) Error() string {
	return fmt.Sprintf("index %d has never been written", e.Index)
}

func (e *ErrUninitialized) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var oor *lazytable.OutOfRangeError
	if errors.As(err, &oor) {
		return &ErrOutOfRange{Index: oor.Index, Len: oor.Len, cause: err}
	}
	var un *lazytable.UninitializedError
	if errors.As(err, &un) {
		return &ErrUninitialized{Index: un.Index, cause: err}
	}

	return err
}
