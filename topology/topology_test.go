// Copyright 2025 Axlina Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package topology_test

import (
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axlina/axlina/activation"
	"github.com/axlina/axlina/topology"
)

// TestPublicAPI walks the full construction path through the public packages.
func TestPublicAPI(t *testing.T) {
	weights := [][]float64{{1, 0}, {0, 1}, {1, 1}}
	source, err := topology.NewLayer(len(weights), topology.WithNodeFactory(func(i int) (*topology.Node[float64], error) {
		return topology.NewNode(weights[i], topology.WithTransfer(activation.Linear[float64])), nil
	}))
	require.NoError(t, err)
	// Connections hold layers weakly; the test owns them.
	defer runtime.KeepAlive(source)

	target := topology.MustNewLayer(1,
		topology.WithFanIn[float64](3),
		topology.WithNodeOptions(topology.WithTransfer(activation.Softplus[float64])))

	full, err := topology.LinkerByName[float64](topology.FullLinkerName)
	require.NoError(t, err)

	conn, err := topology.NewConnection(source, target,
		topology.WithLinker(full),
		topology.WithValidation[float64]())
	require.NoError(t, err)
	require.Equal(t, 1, conn.Len())

	feeding, err := conn.Resolve(0)
	require.NoError(t, err)
	require.Len(t, feeding, 3)

	input := []float64{2, 5}
	outputs := make([]float64, len(feeding))
	for j, n := range feeding {
		outputs[j], err = n.Compute(input)
		require.NoError(t, err)
	}
	assert.Equal(t, []float64{2, 5, 7}, outputs)

	dst, err := target.At(0)
	require.NoError(t, err)
	out, err := dst.Compute(outputs)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(2), out, 1e-12)

	_, err = dst.Compute(input)
	assert.ErrorIs(t, err, topology.ErrDimensionMismatch)
}

func TestPublicRelease(t *testing.T) {
	source := topology.MustNewLayer[float32](2)
	target := topology.MustNewLayer[float32](2)

	conn, err := topology.NewConnection(source, target)
	require.NoError(t, err)

	source.Release()
	_, err = conn.Resolve(0)
	assert.ErrorIs(t, err, topology.ErrInvalidReference)
}

func TestPublicRegistry(t *testing.T) {
	reg := activation.NewRegistry[float64]()
	require.NoError(t, reg.Register("relu", func(s float64) float64 { return max(s, 0) }))

	relu, err := reg.Get("relu")
	require.NoError(t, err)

	n := topology.NewNode([]float64{1, 1}, topology.WithBias(-3.0), topology.WithTransfer(relu))
	out, err := n.Compute([]float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, out)

	_, err = reg.Get("gelu")
	assert.ErrorIs(t, err, activation.ErrActivatorNotFound)
}
