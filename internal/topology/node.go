// Package topology builds the static structure of a feed-forward network:
// nodes, fixed-size layers that own them, and connections that describe
// which source nodes feed each target node.
//
// Construction is synchronous and nothing is mutated once built. A
// Connection never owns the layers it wires: it keeps (layer identity,
// index) references and resolves them on use, failing with
// ErrInvalidReference once a layer has been released.
package topology

import (
	"gonum.org/v1/gonum/floats"

	"github.com/axlina/axlina/internal/activation"
)

// Node is a single computational unit: a weight vector, a bias and a
// transfer function.
//
// A Node is immutable after construction and owned by exactly one Layer
// when built through NewLayer.
type Node[T activation.Scalar] struct {
	weight   []T
	bias     T
	transfer activation.Func[T]
}

// NodeOption configures a Node.
type NodeOption[T activation.Scalar] func(*Node[T])

// WithBias sets the node bias. The default is zero.
func WithBias[T activation.Scalar](bias T) NodeOption[T] {
	return func(n *Node[T]) {
		n.bias = bias
	}
}

// WithTransfer sets the node transfer function. A nil fn keeps the default.
func WithTransfer[T activation.Scalar](fn activation.Func[T]) NodeOption[T] {
	return func(n *Node[T]) {
		if fn != nil {
			n.transfer = fn
		}
	}
}

// NewNode creates a node with a copy of weight.
//
// The fan-in of the node is len(weight). An empty weight is legal; Compute
// then only accepts empty input and returns transfer(bias).
//
// Example:
//
//	n := topology.NewNode([]float64{2, 3},
//	    topology.WithBias(1.0),
//	    topology.WithTransfer(activation.Linear[float64]))
//	out, _ := n.Compute([]float64{1, 1}) // 6
func NewNode[T activation.Scalar](weight []T, opts ...NodeOption[T]) *Node[T] {
	n := &Node[T]{
		weight:   append([]T(nil), weight...),
		transfer: activation.Default[T](),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Compute returns transfer(dot(weight, input) + bias).
//
// Returns a *DimensionError if len(input) differs from the fan-in.
func (n *Node[T]) Compute(input []T) (T, error) {
	if len(input) != len(n.weight) {
		return 0, &DimensionError{Want: len(n.weight), Got: len(input)}
	}
	return n.Transfer()(dot(n.weight, input) + n.bias), nil
}

// FanIn returns the length of the weight vector.
func (n *Node[T]) FanIn() int {
	return len(n.weight)
}

// Weight returns a copy of the weight vector.
func (n *Node[T]) Weight() []T {
	return append([]T(nil), n.weight...)
}

// Bias returns the node bias.
func (n *Node[T]) Bias() T {
	return n.bias
}

// Transfer returns the node transfer function. A zero Node uses the default.
func (n *Node[T]) Transfer() activation.Func[T] {
	if n.transfer == nil {
		return activation.Default[T]()
	}
	return n.transfer
}

func dot[T activation.Scalar](a, b []T) T {
	// float64 slices go through gonum's unrolled kernel.
	if a64, ok := any(a).([]float64); ok {
		return T(floats.Dot(a64, any(b).([]float64)))
	}
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
