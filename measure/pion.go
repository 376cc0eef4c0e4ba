// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"sync"

	"github.com/cpmech/gosl/io"
	"github.com/lat2d/u1hmc/cg"
	"github.com/lat2d/u1hmc/dirac"
	"github.com/lat2d/u1hmc/latfield"
)

// PionCorrelator computes the point-source pion two-point function
// C(t) = Σ_x Σ_{s0,s} |S(x,t;0,0,s0)_s|², t = 0..LY-1, where S is the
// quark propagator from the origin built by two CG solves (one per
// source spin component): rhs = D†δ, ψ = (D†D)⁻¹rhs = D⁻¹δ.
//
// The "time" axis is taken to be μ=1, consistent with PolyakovLoop.
func PionCorrelator(U *latfield.Gauge, m float64, maxIter int, eps float64) ([]float64, error) {
	g := U.G
	corr := make([]float64, g.LY)

	for s0 := 0; s0 < 2; s0++ {
		delta := latfield.NewSpinor(g)
		delta.Set(0, 0, s0, complex(1, 0))

		rhs := latfield.NewSpinor(g)
		dirac.ApplyDdag(rhs, delta, U, m)

		op := func(out, in *latfield.Spinor) { dirac.ApplyDdagD(out, in, U, m) }
		psi, _, err := cg.Solve(op, rhs, nil, maxIter, eps)
		if err != nil {
			return nil, err
		}

		for x := 0; x < g.LX; x++ {
			for t := 0; t < g.LY; t++ {
				for s := 0; s < 2; s++ {
					a := psi.At(x, t, s)
					corr[t] += real(a)*real(a) + imag(a)*imag(a)
				}
			}
		}
	}
	return corr, nil
}

var smearingLoggedOnce sync.Once

// ApplySmearing would APE-smear the gauge links used to build the pion
// source/sink (smearIter iterations, mixing weight alpha) before the
// point-source propagator is built. It is not implemented: smearing
// only affects the measurement's signal-to-noise, not the core's
// accept/reject semantics, so it is logged once and skipped.
func ApplySmearing(smearIter int, alpha float64) {
	if smearIter <= 0 {
		return
	}
	smearingLoggedOnce.Do(func() {
		io.Pfyel("measure: smearIter=%d alpha=%g requested but APE smearing is not implemented; skipping\n", smearIter, alpha)
	})
}
