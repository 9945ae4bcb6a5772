package kdtree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when the requested neighbor count is negative.
	ErrInvalidK = errors.New("neighbor count must not be negative")
)

// ErrDimensionMismatch indicates a point/query dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int // Dimension of the tree
	Actual   int // Length of the offending point
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}
