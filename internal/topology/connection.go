package topology

import (
	"fmt"
	"slices"
	"weak"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/axlina/axlina/internal/activation"
)

// Connection is the adjacency between a source and a target layer.
//
// For every target index i, Edges(i) lists the source nodes feeding target
// node i, in the order the linker produced them. The adjacency is computed
// once in NewConnection and never changes.
//
// A Connection does not own either layer and does not keep them alive.
// Once a layer is released or collected, every accessor that needs it
// fails with ErrInvalidReference.
type Connection[T activation.Scalar] struct {
	sourceID  uuid.UUID
	targetID  uuid.UUID
	source    weak.Pointer[Layer[T]]
	target    weak.Pointer[Layer[T]]
	adjacency [][]NodeRef[T]
}

// ConnectionOption configures NewConnection.
type ConnectionOption[T activation.Scalar] func(*connectionOptions[T])

type connectionOptions[T activation.Scalar] struct {
	linker   Linker[T]
	validate bool
}

// WithLinker sets the linker. The default is Full; nil keeps it.
func WithLinker[T activation.Scalar](l Linker[T]) ConnectionOption[T] {
	return func(o *connectionOptions[T]) {
		if l != nil {
			o.linker = l
		}
	}
}

// WithValidation checks every edge the linker returns against the source
// layer and fails with ErrForeignReference on the first stray one.
func WithValidation[T activation.Scalar]() ConnectionOption[T] {
	return func(o *connectionOptions[T]) {
		o.validate = true
	}
}

// NewConnection wires source to target.
//
// The linker is called once per target node, in target index order, and
// its result is stored as that node's edge list.
//
// Example:
//
//	in := topology.MustNewLayer[float64](16)
//	out := topology.MustNewLayer[float64](16)
//	conn, err := topology.NewConnection(in, out) // fully connected
func NewConnection[T activation.Scalar](source, target *Layer[T], opts ...ConnectionOption[T]) (*Connection[T], error) {
	if source == nil || target == nil {
		return nil, ErrNilLayer
	}
	if source.Released() {
		return nil, fmt.Errorf("%w: source layer %s", ErrInvalidReference, source.id)
	}
	if target.Released() {
		return nil, fmt.Errorf("%w: target layer %s", ErrInvalidReference, target.id)
	}

	o := &connectionOptions[T]{linker: Full[T]}
	for _, opt := range opts {
		opt(o)
	}

	adjacency := make([][]NodeRef[T], target.Size())
	for i, node := range target.nodes {
		edges := o.linker(source, node)
		if o.validate {
			for j, ref := range edges {
				if !ref.BelongsTo(source) {
					return nil, fmt.Errorf("%w: target %d edge %d -> %s", ErrForeignReference, i, j, ref)
				}
			}
		}
		adjacency[i] = slices.Clone(edges)
	}

	return &Connection[T]{
		sourceID:  source.id,
		targetID:  target.id,
		source:    source.self,
		target:    target.self,
		adjacency: adjacency,
	}, nil
}

// Len returns the number of target nodes, which equals the target size.
func (c *Connection[T]) Len() int {
	return len(c.adjacency)
}

// Edges returns a copy of the edge list of target node i.
func (c *Connection[T]) Edges(i int) ([]NodeRef[T], error) {
	if i < 0 || i >= len(c.adjacency) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(c.adjacency))
	}
	return slices.Clone(c.adjacency[i]), nil
}

// Fanin returns the number of edges into each target node.
func (c *Connection[T]) Fanin() []int {
	counts := make([]int, len(c.adjacency))
	for i, edges := range c.adjacency {
		counts[i] = len(edges)
	}
	return counts
}

// Resolve returns the source nodes feeding target node i.
func (c *Connection[T]) Resolve(i int) ([]*Node[T], error) {
	edges, err := c.Edges(i)
	if err != nil {
		return nil, err
	}
	if _, err := c.Source(); err != nil {
		return nil, err
	}

	nodes := make([]*Node[T], len(edges))
	for j, ref := range edges {
		n, err := ref.Resolve()
		if err != nil {
			return nil, fmt.Errorf("target %d edge %d: %w", i, j, err)
		}
		nodes[j] = n
	}
	return nodes, nil
}

// Source returns the source layer.
func (c *Connection[T]) Source() (*Layer[T], error) {
	return resolveLayer(c.source, c.sourceID, "source")
}

// Target returns the target layer.
func (c *Connection[T]) Target() (*Layer[T], error) {
	return resolveLayer(c.target, c.targetID, "target")
}

// SourceID returns the identity of the source layer.
func (c *Connection[T]) SourceID() uuid.UUID {
	return c.sourceID
}

// TargetID returns the identity of the target layer.
func (c *Connection[T]) TargetID() uuid.UUID {
	return c.targetID
}

// Matrix returns the adjacency as a target×source matrix whose entry (i, j)
// counts the edges from source node j into target node i.
//
// Returns nil when either layer is empty.
func (c *Connection[T]) Matrix() (*mat.Dense, error) {
	source, err := c.Source()
	if err != nil {
		return nil, err
	}
	rows, cols := len(c.adjacency), source.Size()
	if rows == 0 || cols == 0 {
		return nil, nil
	}

	m := mat.NewDense(rows, cols, nil)
	for i, edges := range c.adjacency {
		for j, ref := range edges {
			if !ref.BelongsTo(source) {
				return nil, fmt.Errorf("%w: target %d edge %d -> %s", ErrForeignReference, i, j, ref)
			}
			m.Set(i, ref.Index(), m.At(i, ref.Index())+1)
		}
	}
	return m, nil
}

func resolveLayer[T activation.Scalar](p weak.Pointer[Layer[T]], id uuid.UUID, role string) (*Layer[T], error) {
	l := p.Value()
	if l == nil || l.Released() {
		return nil, fmt.Errorf("%w: %s layer %s", ErrInvalidReference, role, id)
	}
	return l, nil
}
