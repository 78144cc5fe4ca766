package scope

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is flagged for ranges that are out of bounds, reversed,
	// or not aligned to a character boundary.
	ErrInvalidRange = errors.New("scope: invalid range")
	// ErrOverlappingRanges is flagged if two ranges share at least one byte.
	ErrOverlappingRanges = errors.New("scope: overlapping ranges")
)

// RangeError reports a single offending range. It unwraps to either
// ErrInvalidRange or ErrOverlappingRanges.
type RangeError struct {
	Range  Range  // the offending range
	Other  Range  // for overlaps: the range overlapped with
	Len    int    // byte length of the input
	Reason string // human-readable description of the issue
	err    error
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	if errors.Is(e.err, ErrOverlappingRanges) {
		return fmt.Sprintf("%s: %s overlaps %s", e.err, e.Range, e.Other)
	}
	return fmt.Sprintf("%s: %s for input of length %d: %s", e.err, e.Range, e.Len, e.Reason)
}

// Unwrap returns the sentinel error of e.
func (e *RangeError) Unwrap() error {
	return e.err
}

func invalidRange(r Range, n int, reason string) *RangeError {
	return &RangeError{Range: r, Len: n, Reason: reason, err: ErrInvalidRange}
}

func overlappingRanges(r, other Range, n int) *RangeError {
	return &RangeError{Range: r, Other: other, Len: n, Reason: "ranges overlap", err: ErrOverlappingRanges}
}
