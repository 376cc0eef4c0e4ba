// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cg

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/lat2d/u1hmc/dirac"
	"github.com/lat2d/u1hmc/latfield"
)

func randomGauge(g latfield.Geometry, seed int64) *latfield.Gauge {
	rnd := rand.New(rand.NewSource(seed))
	U := latfield.NewGauge(g)
	for i := range U.U {
		theta := rnd.Float64() * 2 * math.Pi
		U.U[i] = cmplx.Exp(complex(0, theta))
	}
	return U
}

func randomSpinor(g latfield.Geometry, seed int64) *latfield.Spinor {
	rnd := rand.New(rand.NewSource(seed))
	psi := latfield.NewSpinor(g)
	for i := range psi.Psi {
		psi.Psi[i] = complex(rnd.NormFloat64(), rnd.NormFloat64())
	}
	return psi
}

func TestCGIdentity(tst *testing.T) {
	chk.PrintTitle("CGIdentity")
	g := latfield.NewGeometry(4, 4)
	U := randomGauge(g, 41)
	b := randomSpinor(g, 42)
	m := 0.1
	eps := 1e-10

	op := func(out, in *latfield.Spinor) { dirac.ApplyDdagD(out, in, U, m) }
	x, res, err := Solve(op, b, nil, 500, eps)
	if err != nil {
		tst.Fatalf("CG did not converge: %v", err)
	}

	Ax := latfield.NewSpinor(g)
	op(Ax, x)
	diff := latfield.NewSpinor(g)
	latfield.Caxpby(1, b, -1, Ax, diff)
	relErr := math.Sqrt(latfield.Norm2(diff)) / math.Sqrt(latfield.Norm2(b))
	if relErr > eps*10 {
		tst.Fatalf("CG identity ||b-A*Ainv*b||/||b|| = %g exceeds eps (res.iters=%d relres=%g)", relErr, res.Iters, res.RelRes)
	}
}

func TestCGZeroGuessTolerated(tst *testing.T) {
	chk.PrintTitle("CGZeroGuessTolerated")
	g := latfield.NewGeometry(4, 4)
	U := randomGauge(g, 51)
	b := randomSpinor(g, 52)
	m := 0.3

	op := func(out, in *latfield.Spinor) { dirac.ApplyDdagD(out, in, U, m) }
	x0 := latfield.NewSpinor(g) // explicit zero guess
	_, res, err := Solve(op, b, x0, 500, 1e-10)
	if err != nil {
		tst.Fatalf("CG with zero guess failed: %v", err)
	}
	if res.Iters == 0 {
		tst.Fatalf("expected CG to iterate from a nontrivial rhs")
	}
}

func TestCGNonConvergence(tst *testing.T) {
	chk.PrintTitle("CGNonConvergence")
	g := latfield.NewGeometry(4, 4)
	U := randomGauge(g, 61)
	b := randomSpinor(g, 62)
	m := 0.1

	op := func(out, in *latfield.Spinor) { dirac.ApplyDdagD(out, in, U, m) }
	_, _, err := Solve(op, b, nil, 1, 1e-14)
	if err == nil {
		tst.Fatalf("expected non-convergence error with maxIter=1")
	}
	if _, ok := err.(*NonConvergenceError); !ok {
		tst.Fatalf("expected *NonConvergenceError, got %T", err)
	}
}
