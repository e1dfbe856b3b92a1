// Copyright 2025 Axlina Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation

import (
	"github.com/axlina/axlina/internal/activation"
)

// Scalar is the constraint for node weights, biases and activator values.
type Scalar = activation.Scalar

// Func is a scalar transfer function.
type Func[T Scalar] = activation.Func[T]

// Registry maps names to activators.
type Registry[T Scalar] = activation.Registry[T]

// Names of the built-in activators.
const (
	LinearName       = activation.LinearName
	TanhName         = activation.TanhName
	SigmoidName      = activation.SigmoidName
	ELUName          = activation.ELUName
	SoftplusName     = activation.SoftplusName
	BentIdentityName = activation.BentIdentityName
	DefaultName      = activation.DefaultName
)

// Registry errors.
var (
	ErrInvalidName       = activation.ErrInvalidName
	ErrNilActivator      = activation.ErrNilActivator
	ErrActivatorExists   = activation.ErrActivatorExists
	ErrActivatorNotFound = activation.ErrActivatorNotFound
)

// NewRegistry creates a registry holding the built-in activators.
func NewRegistry[T Scalar]() *Registry[T] {
	return activation.NewRegistry[T]()
}

// Default returns the activator nodes use when none is given.
func Default[T Scalar]() Func[T] {
	return activation.Default[T]()
}

// Linear returns s.
func Linear[T Scalar](s T) T { return activation.Linear(s) }

// Tanh returns tanh(s).
func Tanh[T Scalar](s T) T { return activation.Tanh(s) }

// Sigmoid follows the tanh curve.
func Sigmoid[T Scalar](s T) T { return activation.Sigmoid(s) }

// ELU returns s for s >= 0 and e^s - 1 otherwise.
func ELU[T Scalar](s T) T { return activation.ELU(s) }

// Softplus returns log(1 + e^s).
func Softplus[T Scalar](s T) T { return activation.Softplus(s) }

// BentIdentity returns (sqrt(s*s + 1) - 1) / 2 + s.
func BentIdentity[T Scalar](s T) T { return activation.BentIdentity(s) }
