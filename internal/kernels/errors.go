package kernels

import (
	"errors"
	"fmt"
)

// Precondition errors reported by the Validate functions.
var (
	ErrDim       = errors.New("dimension must be positive")
	ErrShape     = errors.New("buffer too small for shape")
	ErrScratch   = errors.New("scratch buffer shorter than reduction width")
	ErrDepth     = errors.New("reduction depth does not match width")
	ErrSparse    = errors.New("malformed sparse encoding")
	ErrNotSquare = errors.New("transpose requires a square matrix")
	ErrStride    = errors.New("stride must be positive")
)

// ShapeError describes which operand of which kernel broke a precondition.
type ShapeError struct {
	Op      string // Kernel name (e.g., "matmul", "conv")
	Operand string // Offending operand or parameter
	Want    int    // Required size or value
	Got     int    // Actual size or value
	Err     error  // One of the Err* sentinels
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Operand == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v (want %d, got %d)", e.Op, e.Operand, e.Err, e.Want, e.Got)
}

// Unwrap returns the underlying sentinel.
func (e *ShapeError) Unwrap() error {
	return e.Err
}

func shapeErr(op, operand string, want, got int, err error) *ShapeError {
	return &ShapeError{Op: op, Operand: operand, Want: want, Got: got, Err: err}
}
