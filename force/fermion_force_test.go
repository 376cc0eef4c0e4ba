// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/lat2d/u1hmc/action"
	"github.com/lat2d/u1hmc/cg"
	"github.com/lat2d/u1hmc/dirac"
	"github.com/lat2d/u1hmc/latfield"
)

func randomSpinor(g latfield.Geometry, seed int64) *latfield.Spinor {
	rnd := rand.New(rand.NewSource(seed))
	s := latfield.NewSpinor(g)
	for i := range s.Psi {
		s.Psi[i] = complex(rnd.NormFloat64(), rnd.NormFloat64())
	}
	return s
}

// fermionAction solves (D†D)ψ = φ from scratch and returns
// S_F(θ) = φ†ψ at the link configuration carried by U.
func fermionAction(tst *testing.T, U *latfield.Gauge, phi *latfield.Spinor, m float64) float64 {
	op := func(o, in *latfield.Spinor) { dirac.ApplyDdagD(o, in, U, m) }
	psi, _, err := cg.Solve(op, phi, nil, 1000, 1e-13)
	if err != nil {
		tst.Fatalf("cg solve: %v", err)
	}
	return action.FermionActionFromPhi(phi, psi)
}

// TestFermionForceMatchesNumericalGradient checks f_D(x,y,mu) = dS_F/dtheta
// by central finite difference, with phi held fixed across the
// perturbation (phi is the pseudofermion source, not a function of theta
// during a trajectory). This is the direct regression test for the
// term1 component-combination sign in the P+ bilinear: a wrong sign
// there throws this comparison off by double-digit percentages while
// leaving the formula's overall shape intact, which is exactly the kind
// of error a mere "does it run" test cannot catch.
func TestFermionForceMatchesNumericalGradient(tst *testing.T) {
	chk.PrintTitle("FermionForceMatchesNumericalGradient")
	g := latfield.NewGeometry(3, 2)
	U := randomGauge(g, 23)
	phi := randomSpinor(g, 29)
	const m = 0.3

	f := latfield.NewReal(g)
	guess := latfield.NewSpinor(g)
	if _, err := FermionForce(f, U, phi, m, 1000, 1e-13, guess); err != nil {
		tst.Fatalf("fermion force: %v", err)
	}

	h := 1e-6
	perturb := func(x, y, mu int, dh float64) *latfield.Gauge {
		U2 := latfield.NewGauge(g)
		U2.CopyFrom(U)
		U2.Set(x, y, mu, U.At(x, y, mu)*cmplx.Exp(complex(0, dh)))
		return U2
	}

	for _, link := range [][3]int{{0, 0, 0}, {1, 1, 0}, {2, 0, 1}, {0, 1, 1}} {
		x, y, mu := link[0], link[1], link[2]
		sPlus := fermionAction(tst, perturb(x, y, mu, h), phi, m)
		sMinus := fermionAction(tst, perturb(x, y, mu, -h), phi, m)
		numeric := (sPlus - sMinus) / (2 * h)
		analytic := f.At(x, y, mu)
		relErr := math.Abs(numeric-analytic) / math.Max(math.Abs(numeric), 1e-12)
		if relErr > 5e-3 {
			tst.Fatalf("link (%d,%d,%d): numeric=%g analytic=%g relerr=%g", x, y, mu, numeric, analytic, relErr)
		}
	}
}
