// Copyright 2025 Axlina Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package topology describes the static structure of a feed-forward network.
//
// # Overview
//
//   - Node: weight vector, bias and transfer function; Compute evaluates it
//   - Layer: fixed-size, owned, index-addressable collection of nodes
//   - Linker: policy choosing which source nodes feed a target node
//   - Connection: immutable adjacency from a source to a target layer
//
// # Basic Usage
//
//	in := topology.MustNewLayer[float64](16)
//	out := topology.MustNewLayer(16, topology.WithFanIn[float64](16))
//
//	conn, err := topology.NewConnection(in, out)
//	if err != nil {
//	    return err
//	}
//	feeding, err := conn.Resolve(0) // the 16 nodes of in, in index order
//
// # Lifetimes
//
// A Connection never owns its layers. It stores (layer ID, index) pairs and
// weak layer pointers, resolving them only on use. After Layer.Release, or
// once a layer is no longer reachable, resolution fails with
// ErrInvalidReference instead of returning a stale node.
package topology

import (
	"github.com/axlina/axlina/activation"
	"github.com/axlina/axlina/internal/topology"
)

// Node is a single computational unit.
type Node[T activation.Scalar] = topology.Node[T]

// NodeOption configures a Node.
type NodeOption[T activation.Scalar] = topology.NodeOption[T]

// Layer is a fixed-size collection of nodes.
type Layer[T activation.Scalar] = topology.Layer[T]

// LayerOption configures how NewLayer builds its nodes.
type LayerOption[T activation.Scalar] = topology.LayerOption[T]

// NodeRef is a non-owning reference to a node in a layer.
type NodeRef[T activation.Scalar] = topology.NodeRef[T]

// Linker decides which source nodes feed a target node.
type Linker[T activation.Scalar] = topology.Linker[T]

// Connection is the adjacency between two layers.
type Connection[T activation.Scalar] = topology.Connection[T]

// ConnectionOption configures NewConnection.
type ConnectionOption[T activation.Scalar] = topology.ConnectionOption[T]

// DimensionError reports a Compute input of the wrong length.
type DimensionError = topology.DimensionError

// FullLinkerName is the registered name of Full.
const FullLinkerName = topology.FullLinkerName

// Errors.
var (
	ErrDimensionMismatch = topology.ErrDimensionMismatch
	ErrInvalidSize       = topology.ErrInvalidSize
	ErrIndexOutOfRange   = topology.ErrIndexOutOfRange
	ErrInvalidReference  = topology.ErrInvalidReference
	ErrNilLayer          = topology.ErrNilLayer
	ErrNilNode           = topology.ErrNilNode
	ErrForeignReference  = topology.ErrForeignReference
	ErrLinkerNotFound    = topology.ErrLinkerNotFound
)

// NewNode creates a node with a copy of weight.
//
// Example:
//
//	n := topology.NewNode([]float64{2, 3}, topology.WithBias(1.0))
func NewNode[T activation.Scalar](weight []T, opts ...NodeOption[T]) *Node[T] {
	return topology.NewNode(weight, opts...)
}

// WithBias sets the node bias.
func WithBias[T activation.Scalar](bias T) NodeOption[T] {
	return topology.WithBias(bias)
}

// WithTransfer sets the node transfer function.
func WithTransfer[T activation.Scalar](fn activation.Func[T]) NodeOption[T] {
	return topology.WithTransfer(fn)
}

// NewLayer creates a layer of size nodes.
func NewLayer[T activation.Scalar](size int, opts ...LayerOption[T]) (*Layer[T], error) {
	return topology.NewLayer(size, opts...)
}

// MustNewLayer is like NewLayer but panics on error.
func MustNewLayer[T activation.Scalar](size int, opts ...LayerOption[T]) *Layer[T] {
	return topology.MustNewLayer(size, opts...)
}

// WithFanIn gives every default node a zero weight vector of length n.
func WithFanIn[T activation.Scalar](n int) LayerOption[T] {
	return topology.WithFanIn[T](n)
}

// WithNodeOptions applies opts to every default node.
func WithNodeOptions[T activation.Scalar](opts ...NodeOption[T]) LayerOption[T] {
	return topology.WithNodeOptions(opts...)
}

// WithNodeFactory builds node i with fn.
//
// Example:
//
//	l, err := topology.NewLayer(3, topology.WithNodeFactory(func(i int) (*topology.Node[float64], error) {
//	    return topology.NewNode(weights[i]), nil
//	}))
func WithNodeFactory[T activation.Scalar](fn func(i int) (*Node[T], error)) LayerOption[T] {
	return topology.WithNodeFactory(fn)
}

// Full wires every source node to the target, in source index order.
func Full[T activation.Scalar](source *Layer[T], target *Node[T]) []NodeRef[T] {
	return topology.Full(source, target)
}

// LinkerByName returns the linker registered under name.
func LinkerByName[T activation.Scalar](name string) (Linker[T], error) {
	return topology.LinkerByName[T](name)
}

// NewConnection wires source to target. The default linker is Full.
func NewConnection[T activation.Scalar](source, target *Layer[T], opts ...ConnectionOption[T]) (*Connection[T], error) {
	return topology.NewConnection(source, target, opts...)
}

// WithLinker sets the connection linker.
func WithLinker[T activation.Scalar](l Linker[T]) ConnectionOption[T] {
	return topology.WithLinker(l)
}

// WithValidation checks every linker edge against the source layer.
func WithValidation[T activation.Scalar]() ConnectionOption[T] {
	return topology.WithValidation[T]()
}
