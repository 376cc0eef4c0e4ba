// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latfield

import "github.com/cpmech/gosl/chk"

// Dot returns Σ conj(a_i) b_i, the conjugate-linear inner product used
// throughout the Dirac/CG machinery, the complex analogue of cblas128's
// Dotc. The real and imaginary partial sums are reduced independently so
// the result is deterministic for a fixed worker count.
func Dot(a, b *Spinor) complex128 {
	n := len(a.Psi)
	re := defaultPool.Reduce(n, func(lo, hi int) float64 {
		var s float64
		for i := lo; i < hi; i++ {
			c := a.Psi[i]
			d := b.Psi[i]
			s += real(c)*real(d) + imag(c)*imag(d)
		}
		return s
	})
	im := defaultPool.Reduce(n, func(lo, hi int) float64 {
		var s float64
		for i := lo; i < hi; i++ {
			c := a.Psi[i]
			d := b.Psi[i]
			s += real(c)*imag(d) - imag(c)*real(d)
		}
		return s
	})
	return complex(re, im)
}

// Norm2 returns Σ |a_i|² = Re⟨a,a⟩.
func Norm2(a *Spinor) float64 {
	n := len(a.Psi)
	return defaultPool.Reduce(n, func(lo, hi int) float64 {
		var s float64
		for i := lo; i < hi; i++ {
			c := a.Psi[i]
			s += real(c)*real(c) + imag(c)*imag(c)
		}
		return s
	})
}

// Caxpy computes Y ← a*X + Y in place (a complex128).
func Caxpy(a complex128, X, Y *Spinor) {
	n := len(X.Psi)
	defaultPool.For(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			Y.Psi[i] += a * X.Psi[i]
		}
	})
}

// Caxpby computes out ← a*X + b*Y. out may alias X or Y.
func Caxpby(a complex128, X *Spinor, b complex128, Y *Spinor, out *Spinor) {
	n := len(X.Psi)
	if len(Y.Psi) != n || len(out.Psi) != n {
		chk.Panic("latfield: Caxpby length mismatch")
	}
	defaultPool.For(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out.Psi[i] = a*X.Psi[i] + b*Y.Psi[i]
		}
	})
}

// Xpaypbz computes out ← X + a*Y + b*Z, a fused three-term combination.
// out may alias X, Y or Z.
func Xpaypbz(X *Spinor, a complex128, Y *Spinor, b complex128, Z *Spinor, out *Spinor) {
	n := len(X.Psi)
	defaultPool.For(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out.Psi[i] = X.Psi[i] + a*Y.Psi[i] + b*Z.Psi[i]
		}
	})
}
