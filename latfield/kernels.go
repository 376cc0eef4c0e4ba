// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latfield

import "github.com/lat2d/u1hmc/parallel"

// defaultPool is shared by every kernel in this package; its worker count
// is fixed for the process lifetime (GOMAXPROCS at package initialisation), which is
// what keeps the partitioned reductions below deterministic for repeated
// calls within one run.
var defaultPool = parallel.NewPool()

// RealDot returns Σ a_i b_i over a real field (momentum/force inner
// product), following gosl/la's VecDot naming.
func RealDot(a, b *Real) float64 {
	n := len(a.V)
	return defaultPool.Reduce(n, func(lo, hi int) float64 {
		var s float64
		for i := lo; i < hi; i++ {
			s += a.V[i] * b.V[i]
		}
		return s
	})
}

// RealNorm2 returns Σ a_i² over a real field, following gosl/la's VecNorm
// (squared, to avoid a redundant Sqrt where only the square is needed).
func RealNorm2(a *Real) float64 {
	return RealDot(a, a)
}

// RealAxpy computes Y ← a*X + Y in place, following gosl/la's VecAdd2/
// axpy naming.
func RealAxpy(a float64, X, Y *Real) {
	n := len(X.V)
	defaultPool.For(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			Y.V[i] += a * X.V[i]
		}
	})
}

// RealScale computes X ← a*X in place.
func RealScale(a float64, X *Real) {
	n := len(X.V)
	defaultPool.For(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			X.V[i] *= a
		}
	})
}
