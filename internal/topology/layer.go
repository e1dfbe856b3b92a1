package topology

import (
	"fmt"
	"sync/atomic"
	"weak"

	"github.com/google/uuid"

	"github.com/axlina/axlina/internal/activation"
)

// Layer is a fixed-size, index-addressable collection of nodes.
//
// The layer owns its nodes. Index order is stable and is the identity used
// by linkers and by Connection adjacency lists. Every layer carries a
// unique ID so references into it can be checked without holding it alive.
type Layer[T activation.Scalar] struct {
	id       uuid.UUID
	nodes    []*Node[T]
	self     weak.Pointer[Layer[T]]
	released atomic.Bool
}

// LayerOption configures how NewLayer builds its nodes.
type LayerOption[T activation.Scalar] func(*layerOptions[T])

type layerOptions[T activation.Scalar] struct {
	fanIn    int
	nodeOpts []NodeOption[T]
	factory  func(i int) (*Node[T], error)
}

// WithFanIn gives every default node a zero weight vector of length n.
func WithFanIn[T activation.Scalar](n int) LayerOption[T] {
	return func(o *layerOptions[T]) {
		o.fanIn = n
	}
}

// WithNodeOptions applies opts to every default node.
func WithNodeOptions[T activation.Scalar](opts ...NodeOption[T]) LayerOption[T] {
	return func(o *layerOptions[T]) {
		o.nodeOpts = append(o.nodeOpts, opts...)
	}
}

// WithNodeFactory builds node i with fn instead of the default node.
// It takes precedence over WithFanIn and WithNodeOptions.
func WithNodeFactory[T activation.Scalar](fn func(i int) (*Node[T], error)) LayerOption[T] {
	return func(o *layerOptions[T]) {
		o.factory = fn
	}
}

// NewLayer creates a layer of size nodes.
//
// Without options every node has fan-in 0, zero bias and the default
// activator. A size of 0 yields an empty layer. Nodes returned by a
// factory are copied so the layer holds them exclusively.
//
// Example:
//
//	hidden, err := topology.NewLayer[float64](16, topology.WithFanIn[float64](4))
func NewLayer[T activation.Scalar](size int, opts ...LayerOption[T]) (*Layer[T], error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	o := &layerOptions[T]{}
	for _, opt := range opts {
		opt(o)
	}
	if o.fanIn < 0 {
		return nil, fmt.Errorf("%w: fan-in %d", ErrInvalidSize, o.fanIn)
	}

	l := &Layer[T]{
		id:    uuid.New(),
		nodes: make([]*Node[T], size),
	}
	l.self = weak.Make(l)

	for i := range l.nodes {
		if o.factory == nil {
			l.nodes[i] = NewNode(make([]T, o.fanIn), o.nodeOpts...)
			continue
		}
		n, err := o.factory(i)
		if err != nil {
			return nil, fmt.Errorf("build node %d: %w", i, err)
		}
		if n == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilNode, i)
		}
		l.nodes[i] = NewNode(n.weight, WithBias(n.bias), WithTransfer(n.transfer))
	}
	return l, nil
}

// MustNewLayer is like NewLayer but panics on error.
func MustNewLayer[T activation.Scalar](size int, opts ...LayerOption[T]) *Layer[T] {
	l, err := NewLayer(size, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// ID returns the layer identity.
func (l *Layer[T]) ID() uuid.UUID {
	return l.id
}

// Size returns the number of nodes. It never changes.
func (l *Layer[T]) Size() int {
	return len(l.nodes)
}

// At returns node i.
func (l *Layer[T]) At(i int) (*Node[T], error) {
	if l.released.Load() {
		return nil, fmt.Errorf("%w: layer %s", ErrInvalidReference, l.id)
	}
	if i < 0 || i >= len(l.nodes) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(l.nodes))
	}
	return l.nodes[i], nil
}

// Ref returns a non-owning reference to node i.
func (l *Layer[T]) Ref(i int) (NodeRef[T], error) {
	if _, err := l.At(i); err != nil {
		return NodeRef[T]{}, err
	}
	return l.ref(i), nil
}

// Refs returns references to every node in index order.
// A released layer has no referable nodes and yields nil.
func (l *Layer[T]) Refs() []NodeRef[T] {
	if l.released.Load() {
		return nil
	}
	refs := make([]NodeRef[T], len(l.nodes))
	for i := range l.nodes {
		refs[i] = l.ref(i)
	}
	return refs
}

func (l *Layer[T]) ref(i int) NodeRef[T] {
	return NodeRef[T]{layerID: l.id, layer: l.self, index: i}
}

// Release tears the layer down. Every later At, Ref or NodeRef.Resolve
// against it fails with ErrInvalidReference. Release is idempotent.
func (l *Layer[T]) Release() {
	l.released.Store(true)
}

// Released reports whether Release has been called.
func (l *Layer[T]) Released() bool {
	return l.released.Load()
}
