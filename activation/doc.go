// Copyright 2025 Axlina Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation provides the transfer functions applied by topology
// nodes after their weighted sum.
//
// # Built-ins
//
//	linear         f(s) = s
//	tanh           f(s) = tanh(s)
//	sigmoid        the tanh curve, range (-1, 1); the default for new nodes
//	elu            f(s) = s for s >= 0, e^s - 1 otherwise
//	softplus       f(s) = log(1 + e^s), overflow-safe
//	bent-identity  f(s) = (sqrt(s*s + 1) - 1) / 2 + s
//
// # Registry
//
// A Registry maps names to activators of one scalar type and accepts new
// entries at runtime:
//
//	reg := activation.NewRegistry[float64]()
//	_ = reg.Register("relu", func(s float64) float64 { return max(s, 0) })
//	fn, err := reg.Get("softplus")
package activation
