package topology

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrDimensionMismatch = errors.New("input length does not match node fan-in")
	ErrInvalidSize       = errors.New("layer size must not be negative")
	ErrIndexOutOfRange   = errors.New("node index out of range")
	ErrInvalidReference  = errors.New("reference to a released or collected layer")
	ErrNilLayer          = errors.New("layer is nil")
	ErrNilNode           = errors.New("node factory returned nil")
	ErrForeignReference  = errors.New("linker returned a node outside the source layer")
	ErrLinkerNotFound    = errors.New("linker not found")
)

// DimensionError describes a Compute call whose input does not match the
// node's weight vector.
type DimensionError struct {
	Want int // Fan-in of the node
	Got  int // Length of the input
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: want %d, got %d", ErrDimensionMismatch, e.Want, e.Got)
}

// Unwrap lets errors.Is match ErrDimensionMismatch.
func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}
