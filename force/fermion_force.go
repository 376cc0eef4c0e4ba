// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"github.com/lat2d/u1hmc/cg"
	"github.com/lat2d/u1hmc/dirac"
	"github.com/lat2d/u1hmc/latfield"
)

// r is the Wilson parameter, fixed at 1.
const r = 1.0

// FermionForce computes the pseudofermion force f_D[x,y,μ] into out:
//  1. ψ ← (D†D)⁻¹φ via CG (warm-started from guess, which is updated
//     in place to the converged ψ for the next trajectory step's CG;
//     a nil guess means a zero start and nothing is written back).
//  2. χ ← γ₃Dψ.
//  3. f_D[x,y,μ] = Re( i·[ U_μ(x)†·(conj(ψ(x+μ̂))·P₊_μ·χ(x)) −
//     U_μ(x)·(conj(ψ(x))·P₋_μ·χ(x+μ̂)) ] ).
//
// Returns the CG iteration count, or a *cg.NonConvergenceError, a hard
// failure the driver aborts the run on.
func FermionForce(out *latfield.Real, U *latfield.Gauge, phi *latfield.Spinor, m float64, maxIter int, eps float64, guess *latfield.Spinor) (iters int, err error) {
	g := U.G
	op := func(o, in *latfield.Spinor) { dirac.ApplyDdagD(o, in, U, m) }
	psi, res, err := cg.Solve(op, phi, guess, maxIter, eps)
	if err != nil {
		return res.Iters, err
	}
	if guess != nil {
		guess.CopyFrom(psi)
	}

	chi := latfield.NewSpinor(g)
	dirac.ApplyG3D(chi, psi, U, m)

	for x := 0; x < g.LX; x++ {
		xp := g.Xp1(x)
		for y := 0; y < g.LY; y++ {
			yp := g.Yp1(y)

			psiX0, psiX1 := psi.At(x, y, 0), psi.At(x, y, 1)
			chiX0, chiX1 := chi.At(x, y, 0), chi.At(x, y, 1)

			// mu=0
			{
				psiXp0, psiXp1 := psi.At(xp, y, 0), psi.At(xp, y, 1)
				chiXp0, chiXp1 := chi.At(xp, y, 0), chi.At(xp, y, 1)
				U0 := U.At(x, y, 0)

				// P+_0 upper=((r,1),(1,r)) acting on chi(x): (r*c0+c1, c0+r*c1)
				pPlusChiX0 := complex(r, 0)*chiX0 + chiX1
				pPlusChiX1 := chiX0 + complex(r, 0)*chiX1
				term1 := cconj(U0) * (cconj(psiXp0)*pPlusChiX0 - cconj(psiXp1)*pPlusChiX1)

				// P-_0 lower=((r,-1),(1,-r)) acting on chi(x+mu): (r*c0-c1, c0-r*c1)
				pMinusChiXp0 := complex(r, 0)*chiXp0 - chiXp1
				pMinusChiXp1 := chiXp0 - complex(r, 0)*chiXp1
				term2 := U0 * (cconj(psiX0)*pMinusChiXp0 + cconj(psiX1)*pMinusChiXp1)

				fD := real(complex(0, 1) * (term1 - term2))
				out.Set(x, y, 0, fD)
			}

			// mu=1
			{
				psiYp0, psiYp1 := psi.At(x, yp, 0), psi.At(x, yp, 1)
				chiYp0, chiYp1 := chi.At(x, yp, 0), chi.At(x, yp, 1)
				U1 := U.At(x, y, 1)

				// P+_1 upper=((r,-i),(i,r)) acting on chi(x): (r*c0-i*c1, i*c0+r*c1)
				pPlusChiX0 := complex(r, 0)*chiX0 - complex(0, 1)*chiX1
				pPlusChiX1 := complex(0, 1)*chiX0 + complex(r, 0)*chiX1
				term1 := cconj(U1) * (cconj(psiYp0)*pPlusChiX0 - cconj(psiYp1)*pPlusChiX1)

				// P-_1 lower=((r,i),(i,-r)) acting on chi(x+mu): (r*c0+i*c1, i*c0-r*c1)
				pMinusChiYp0 := complex(r, 0)*chiYp0 + complex(0, 1)*chiYp1
				pMinusChiYp1 := complex(0, 1)*chiYp0 - complex(r, 0)*chiYp1
				term2 := U1 * (cconj(psiX0)*pMinusChiYp0 + cconj(psiX1)*pMinusChiYp1)

				fD := real(complex(0, 1) * (term1 - term2))
				out.Set(x, y, 1, fD)
			}
		}
	}
	return res.Iters, nil
}
