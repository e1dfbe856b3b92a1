// Package activation implements the scalar transfer functions used by
// topology nodes.
//
// Every activator is a pure function of one scalar:
//   - Linear: f(s) = s
//   - Tanh: f(s) = tanh(s)
//   - Sigmoid: the tanh curve, bounded in (-1, 1)
//   - ELU: f(s) = s for s >= 0, e^s - 1 otherwise
//   - Softplus: f(s) = log(1 + e^s)
//   - BentIdentity: f(s) = (sqrt(s*s + 1) - 1) / 2 + s
//
// Functions are generic over the scalar type so a topology built with
// float32 never widens through float64 state of its own.
package activation

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the constraint for node weights, biases and activator values.
type Scalar interface {
	constraints.Float
}

// Func is a transfer function applied to a node's weighted sum.
type Func[T Scalar] func(s T) T

// Linear returns its input unchanged.
func Linear[T Scalar](s T) T {
	return s
}

// Tanh is the hyperbolic tangent.
func Tanh[T Scalar](s T) T {
	return T(math.Tanh(float64(s)))
}

// Sigmoid is the default node transfer function.
//
// It follows the tanh curve (range (-1, 1)), not the logistic curve.
// Topologies described against "sigmoid" rely on that range.
func Sigmoid[T Scalar](s T) T {
	return Tanh(s)
}

// ELU is the exponential linear unit with alpha = 1.
//
// Negative inputs map to e^s - 1 exactly once, so the result lies in [-1, 0).
// It reaches -1 only where e^s underflows the scalar's precision.
func ELU[T Scalar](s T) T {
	if s >= 0 {
		return s
	}
	return T(math.Expm1(float64(s)))
}

// Softplus computes log(1 + e^s) without overflowing for large s.
func Softplus[T Scalar](s T) T {
	x := float64(s)
	return T(math.Max(x, 0) + math.Log1p(math.Exp(-math.Abs(x))))
}

// BentIdentity computes (sqrt(s*s + 1) - 1) / 2 + s.
func BentIdentity[T Scalar](s T) T {
	x := float64(s)
	h := math.Hypot(x, 1)
	// sqrt(x*x+1) - 1 loses precision near zero; use the conjugate form there.
	var d float64
	if math.Abs(x) < 1 {
		d = x * x / (h + 1)
	} else {
		d = h - 1
	}
	return T(d/2 + x)
}

// Default returns the activator nodes use when none is given.
func Default[T Scalar]() Func[T] {
	return Sigmoid[T]
}
