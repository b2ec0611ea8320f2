package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfBound reports an index or start offset outside the view.
	ErrIndexOutOfBound = errors.New("buffer: index out of bound")
	// ErrLengthOutOfBound reports a sub-range that runs past the end of the view.
	ErrLengthOutOfBound = errors.New("buffer: length out of bound")
	// ErrEmptyBuffer reports a zero-length buffer where samples are required.
	ErrEmptyBuffer = errors.New("buffer: empty buffer")
	// ErrLengthMismatch reports buffers that must be the same length but are not.
	ErrLengthMismatch = errors.New("buffer: buffer lengths differ")
)

// RangeError describes a rejected index or sub-range request.
// It unwraps to ErrIndexOutOfBound or ErrLengthOutOfBound.
type RangeError struct {
	Op     string
	Start  int
	Length int
	Len    int
	Err    error
}

func (e *RangeError) Error() string {
	if e.Op == "get" || e.Op == "assign" {
		return fmt.Sprintf("buffer: %s index %d out of range for length %d", e.Op, e.Start, e.Len)
	}
	return fmt.Sprintf("buffer: %s(%d, %d) out of range for length %d", e.Op, e.Start, e.Length, e.Len)
}

func (e *RangeError) Unwrap() error { return e.Err }

func checkIndex(op string, i, n int) error {
	if i < 0 || i >= n {
		return &RangeError{Op: op, Start: i, Length: 1, Len: n, Err: ErrIndexOutOfBound}
	}
	return nil
}

// checkRange validates [start, start+length) against n without overflowing.
func checkRange(op string, start, length, n int) error {
	if start < 0 || start > n {
		return &RangeError{Op: op, Start: start, Length: length, Len: n, Err: ErrIndexOutOfBound}
	}
	if length < 0 || length > n-start {
		return &RangeError{Op: op, Start: start, Length: length, Len: n, Err: ErrLengthOutOfBound}
	}
	return nil
}
