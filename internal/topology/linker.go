package topology

import (
	"fmt"

	"github.com/axlina/axlina/internal/activation"
)

// FullLinkerName is the registered name of Full.
const FullLinkerName = "full"

// Linker decides which source nodes feed target.
//
// A linker must not mutate its arguments and must only return references
// obtained from source. Connection trusts this unless built with
// WithValidation.
type Linker[T activation.Scalar] func(source *Layer[T], target *Node[T]) []NodeRef[T]

// Full wires every source node to the target, in source index order.
func Full[T activation.Scalar](source *Layer[T], _ *Node[T]) []NodeRef[T] {
	return source.Refs()
}

// LinkerByName returns the linker registered under name.
func LinkerByName[T activation.Scalar](name string) (Linker[T], error) {
	switch name {
	case FullLinkerName:
		return Full[T], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrLinkerNotFound, name)
	}
}
