package spmat

import "errors"

// Sentinel errors for sparse assembly and solving.
var (
	// ErrNonPositiveSize indicates a matrix dimension ≤ 0.
	ErrNonPositiveSize = errors.New("spmat: size must be positive")
	// ErrIndexOutOfRange indicates a triplet coordinate outside [0, n).
	ErrIndexOutOfRange = errors.New("spmat: index out of range")
	// ErrSingular indicates the matrix is singular to working precision.
	ErrSingular = errors.New("spmat: matrix is singular")
	// ErrDimensionMismatch indicates a right-hand side of the wrong length.
	ErrDimensionMismatch = errors.New("spmat: dimension mismatch")
)
