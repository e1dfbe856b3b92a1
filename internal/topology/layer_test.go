package topology

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axlina/axlina/internal/activation"
)

func TestNewLayerSize(t *testing.T) {
	for _, size := range []int{0, 1, 3, 16} {
		l, err := NewLayer[float64](size)
		require.NoError(t, err)
		assert.Equal(t, size, l.Size())

		for i := 0; i < size; i++ {
			n, err := l.At(i)
			require.NoError(t, err)
			require.NotNil(t, n)
		}
		for _, i := range []int{-1, size, size + 1} {
			n, err := l.At(i)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			assert.Nil(t, n)
		}
	}
}

func TestNewLayerNegativeSize(t *testing.T) {
	l, err := NewLayer[float64](-1)
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.Nil(t, l)

	_, err = NewLayer(2, WithFanIn[float64](-3))
	assert.ErrorIs(t, err, ErrInvalidSize)

	assert.Panics(t, func() { MustNewLayer[float64](-1) })
}

func TestNewLayerDefaultNodes(t *testing.T) {
	l := MustNewLayer[float64](2)

	n, err := l.At(1)
	require.NoError(t, err)
	assert.Equal(t, 0, n.FanIn())
	assert.Equal(t, 0.0, n.Bias())

	out, err := n.Compute(nil)
	require.NoError(t, err)
	assert.Equal(t, math.Tanh(0), out)
}

func TestNewLayerFanInAndNodeOptions(t *testing.T) {
	l := MustNewLayer(3,
		WithFanIn[float64](2),
		WithNodeOptions(WithBias(0.5), WithTransfer(activation.Linear[float64])))

	for i := 0; i < l.Size(); i++ {
		n, err := l.At(i)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0}, n.Weight())

		out, err := n.Compute([]float64{7, 9})
		require.NoError(t, err)
		assert.Equal(t, 0.5, out)
	}
}

func TestNewLayerNodeFactory(t *testing.T) {
	weights := [][]float64{{1, 0}, {0, 1}, {1, 1}}
	l := MustNewLayer(len(weights), WithNodeFactory(func(i int) (*Node[float64], error) {
		return NewNode(weights[i], WithTransfer(activation.Linear[float64])), nil
	}))

	for i, w := range weights {
		n, err := l.At(i)
		require.NoError(t, err)
		assert.Equal(t, w, n.Weight())
	}

	n, err := l.At(2)
	require.NoError(t, err)
	out, err := n.Compute([]float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 7.0, out)
}

func TestNewLayerNodeFactoryCopiesNodes(t *testing.T) {
	shared := NewNode([]float64{1})
	l := MustNewLayer(2, WithNodeFactory(func(int) (*Node[float64], error) {
		return shared, nil
	}))

	a, err := l.At(0)
	require.NoError(t, err)
	b, err := l.At(1)
	require.NoError(t, err)
	assert.NotSame(t, shared, a)
	assert.NotSame(t, a, b)
	assert.Equal(t, shared.Weight(), a.Weight())
}

func TestNewLayerNodeFactoryErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := NewLayer(3, WithNodeFactory(func(i int) (*Node[float64], error) {
		if i == 1 {
			return nil, boom
		}
		return NewNode([]float64{1}), nil
	}))
	assert.ErrorIs(t, err, boom)

	_, err = NewLayer(1, WithNodeFactory(func(int) (*Node[float64], error) {
		return nil, nil
	}))
	assert.ErrorIs(t, err, ErrNilNode)
}

func TestLayerIdentity(t *testing.T) {
	a := MustNewLayer[float64](1)
	b := MustNewLayer[float64](1)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestLayerRefs(t *testing.T) {
	l := MustNewLayer[float64](3)

	refs := l.Refs()
	require.Len(t, refs, 3)
	for i, ref := range refs {
		assert.Equal(t, i, ref.Index())
		assert.Equal(t, l.ID(), ref.LayerID())
		assert.True(t, ref.BelongsTo(l))

		want, err := l.At(i)
		require.NoError(t, err)
		got, err := ref.Resolve()
		require.NoError(t, err)
		assert.Same(t, want, got)
	}

	ref, err := l.Ref(2)
	require.NoError(t, err)
	assert.Equal(t, refs[2], ref)

	_, err = l.Ref(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestLayerRelease(t *testing.T) {
	l := MustNewLayer[float64](2)
	ref, err := l.Ref(0)
	require.NoError(t, err)

	assert.False(t, l.Released())
	l.Release()
	l.Release()
	assert.True(t, l.Released())

	_, err = l.At(0)
	assert.ErrorIs(t, err, ErrInvalidReference)
	_, err = l.Ref(0)
	assert.ErrorIs(t, err, ErrInvalidReference)
	_, err = ref.Resolve()
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.Nil(t, l.Refs())
	assert.Equal(t, 2, l.Size())
}

func TestNodeRefZeroValue(t *testing.T) {
	var ref NodeRef[float64]

	_, err := ref.Resolve()
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.False(t, ref.BelongsTo(MustNewLayer[float64](1)))
	assert.False(t, ref.BelongsTo(nil))
}

func TestNodeRefBelongsToOtherLayer(t *testing.T) {
	a := MustNewLayer[float64](2)
	b := MustNewLayer[float64](2)

	ref, err := a.Ref(1)
	require.NoError(t, err)
	assert.True(t, ref.BelongsTo(a))
	assert.False(t, ref.BelongsTo(b))
	assert.Contains(t, ref.String(), a.ID().String())
}
