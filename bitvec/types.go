package bitvec

import "errors"

var (
	// ErrLengthMismatch is returned when a binary op is given operands of
	// differing bit lengths.
	ErrLengthMismatch = errors.New("bitvec: operand length mismatch")

	// ErrNegativeLength is returned by New when asked to build a vector
	// of negative length.
	ErrNegativeLength = errors.New("bitvec: negative length")

	// ErrIndexRange is the panic value of Set/Clear/Test when the index cannot
	// possibly correspond to any bit, regardless of vector length (a
	// negative index). In-range-but-unset-capacity indices are the
	// caller's responsibility per the package doc.
	ErrIndexRange = errors.New("bitvec: negative bit index")
)
