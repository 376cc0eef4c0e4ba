// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cg implements the conjugate-gradient solver for the
// Hermitian positive-definite normal operator A = D†D.
// It depends only on latfield (not on dirac), taking the operator as a
// narrow function value rather than depending on a concrete operator
// type.
package cg

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/lat2d/u1hmc/latfield"
)

// Operator applies a linear operator: out <- A*in. out must not alias in.
type Operator func(out, in *latfield.Spinor)

// Result carries the outcome of one CG solve.
type Result struct {
	Iters  int     // number of iterations performed
	RelRes float64 // final relative residual sqrt(rsq)/sqrt(<b,b>)
}

// NonConvergenceError reports a CG failure to converge within maxIter
// iterations. The caller treats this as a fatal, run-aborting error, but
// it still carries the final relative residual for diagnostics.
type NonConvergenceError struct {
	MaxIter int
	RelRes  float64
}

func (e *NonConvergenceError) Error() string {
	return io.Sf("cg: failed to converge in %d iterations (relative residual = %.3e)", e.MaxIter, e.RelRes)
}

// Solve solves A x = b via conjugate gradient to relative-residual
// tolerance eps, starting from the optional initial guess x0 (nil or a
// zeroed spinor both mean x0 = 0). It returns the solution (a new
// spinor, safe for the caller to keep as a warm-start guess for a later
// call) and the convergence Result, or a *NonConvergenceError if maxIter
// is exhausted.
func Solve(A Operator, b, x0 *latfield.Spinor, maxIter int, eps float64) (x *latfield.Spinor, res Result, err error) {
	g := b.G
	x = latfield.NewSpinor(g)
	if x0 != nil {
		x.CopyFrom(x0)
	}

	bNorm := math.Sqrt(latfield.Norm2(b))
	if bNorm == 0 {
		return x, Result{Iters: 0, RelRes: 0}, nil
	}

	Ax := latfield.NewSpinor(g)
	A(Ax, x)

	r := latfield.NewSpinor(g)
	latfield.Caxpby(1, b, -1, Ax, r) // r <- b - Ax
	p := latfield.NewSpinor(g)
	p.CopyFrom(r)

	rsq := latfield.Norm2(r)
	relRes := math.Sqrt(rsq) / bNorm
	if relRes < eps {
		return x, Result{Iters: 0, RelRes: relRes}, nil
	}

	Ap := latfield.NewSpinor(g)
	for k := 1; k <= maxIter; k++ {
		A(Ap, p)
		pAp := real(latfield.Dot(p, Ap))
		alpha := rsq / pAp

		latfield.Caxpy(complex(alpha, 0), p, x)
		latfield.Caxpy(complex(-alpha, 0), Ap, r)

		rsqNew := latfield.Norm2(r)
		relRes = math.Sqrt(rsqNew) / bNorm
		if relRes < eps {
			return x, Result{Iters: k, RelRes: relRes}, nil
		}

		beta := rsqNew / rsq
		latfield.Caxpby(1, r, complex(beta, 0), p, p)
		rsq = rsqNew
	}

	return x, Result{Iters: maxIter, RelRes: relRes}, &NonConvergenceError{MaxIter: maxIter, RelRes: relRes}
}
