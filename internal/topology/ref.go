package topology

import (
	"fmt"
	"weak"

	"github.com/google/uuid"

	"github.com/axlina/axlina/internal/activation"
)

// NodeRef is a non-owning reference to a node: the identity of its layer
// plus the node's index there.
//
// Holding a NodeRef never keeps the layer alive. The zero NodeRef refers to
// nothing and never resolves.
type NodeRef[T activation.Scalar] struct {
	layerID uuid.UUID
	layer   weak.Pointer[Layer[T]]
	index   int
}

// LayerID returns the identity of the referenced layer.
func (r NodeRef[T]) LayerID() uuid.UUID {
	return r.layerID
}

// Index returns the node index within its layer.
func (r NodeRef[T]) Index() int {
	return r.index
}

// Resolve returns the referenced node.
//
// Fails with ErrInvalidReference if the layer was released or is no longer
// reachable.
func (r NodeRef[T]) Resolve() (*Node[T], error) {
	l := r.layer.Value()
	if l == nil || l.id != r.layerID {
		return nil, fmt.Errorf("%w: layer %s", ErrInvalidReference, r.layerID)
	}
	return l.At(r.index)
}

// BelongsTo reports whether r points at an existing index of l.
func (r NodeRef[T]) BelongsTo(l *Layer[T]) bool {
	return l != nil && r.layerID == l.id && r.index >= 0 && r.index < l.Size()
}

// String implements fmt.Stringer.
func (r NodeRef[T]) String() string {
	return fmt.Sprintf("%s[%d]", r.layerID, r.index)
}
