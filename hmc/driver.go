// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hmc drives the Hybrid Monte Carlo update: heatbath, leapfrog
// trajectory, and Metropolis accept/reject, plus the running diagnostic
// averages reported alongside each measurement.
package hmc

import (
	"math"

	"github.com/lat2d/u1hmc/action"
	"github.com/lat2d/u1hmc/cg"
	"github.com/lat2d/u1hmc/dirac"
	"github.com/lat2d/u1hmc/integrator"
	"github.com/lat2d/u1hmc/latfield"
	"github.com/lat2d/u1hmc/rng"
)

// Params collects the HMC run-time parameters that are not per-field.
type Params struct {
	Beta      float64
	M         float64
	Tau       float64
	Nstep     int
	MaxIterCG int
	Eps       float64
	Dynamic   bool
	Therm     int
}

// Driver owns the gauge field and the accumulators feeding the
// diagnostic measurement log.
type Driver struct {
	U     *latfield.Gauge
	cfg   Params
	rng   *rng.Stream
	guess *latfield.Spinor // CG warm-start across trajectories
	arena *latfield.Arena  // per-trajectory scratch, acquired/released in Step

	sumExpDH float64
	sumDH    float64
	nStat    int // number of iterations contributing to the above
	nAccept  int
	nTotal   int
}

// NewDriver constructs a Driver over U, seeded from stream.
func NewDriver(U *latfield.Gauge, cfg Params, stream *rng.Stream) *Driver {
	return &Driver{
		U:     U,
		cfg:   cfg,
		rng:   stream,
		guess: latfield.NewSpinor(U.G),
		arena: latfield.NewArena(U.G),
	}
}

// Step performs one HMC iteration (0-indexed iter) per the algorithm:
//  1. Save U_old.
//  2. Heatbath-sample momentum pi, and (if dynamic) the pseudofermion
//     source chi, building phi = gamma3*D*chi.
//  3. If iter >= therm: compute H_old.
//  4. Run the leapfrog trajectory in place.
//  5. If iter >= therm: compute H_new (one extra CG solve).
//  6. If iter < therm: always accept. Else: Metropolis test; on
//     rejection restore U <- U_old.
//
// Only iterations with iter >= 2*therm contribute to the running
// ⟨exp(−ΔH)⟩/⟨ΔH⟩ diagnostic averages.
func (d *Driver) Step(iter int) (accepted bool, err error) {
	g := d.U.G
	therm := d.cfg.Therm

	uoldH := d.arena.AcquireGauge()
	defer uoldH.Release()
	Uold := uoldH.Gauge
	Uold.CopyFrom(d.U)

	piH := d.arena.AcquireReal()
	defer piH.Release()
	pi := piH.Real
	for x := 0; x < g.LX; x++ {
		for y := 0; y < g.LY; y++ {
			for mu := 0; mu < 2; mu++ {
				pi.Set(x, y, mu, d.rng.Momentum())
			}
		}
	}

	chiH := d.arena.AcquireSpinor()
	defer chiH.Release()
	chi := chiH.Spinor

	phiH := d.arena.AcquireSpinor()
	defer phiH.Release()
	phi := phiH.Spinor
	if d.cfg.Dynamic {
		for x := 0; x < g.LX; x++ {
			for y := 0; y < g.LY; y++ {
				for s := 0; s < 2; s++ {
					chi.Set(x, y, s, d.rng.PseudoFermionComponent())
				}
			}
		}
		dirac.ApplyG3D(phi, chi, d.U, d.cfg.M)
	}

	track := iter >= therm
	var hOld float64
	if track {
		fermion := 0.0
		if d.cfg.Dynamic {
			fermion = action.FermionActionFromChi(chi)
		}
		hOld = action.Hamiltonian(pi, d.U, d.cfg.Beta, fermion)
	}

	icfg := integrator.Params{
		Beta: d.cfg.Beta, M: d.cfg.M, Tau: d.cfg.Tau,
		Nstep: d.cfg.Nstep, MaxIterCG: d.cfg.MaxIterCG, Eps: d.cfg.Eps,
		Dynamic: d.cfg.Dynamic,
	}
	if ierr := integrator.Integrate(d.U, pi, phi, icfg, d.guess); ierr != nil {
		return false, ierr
	}

	d.nTotal++

	if !track {
		d.nAccept++
		return true, nil
	}

	var hNew float64
	if d.cfg.Dynamic {
		op := func(out, in *latfield.Spinor) { dirac.ApplyDdagD(out, in, d.U, d.cfg.M) }
		psi, _, serr := cg.Solve(op, phi, d.guess, d.cfg.MaxIterCG, d.cfg.Eps)
		if serr != nil {
			return false, serr
		}
		d.guess.CopyFrom(psi)
		fermion := action.FermionActionFromPhi(phi, psi)
		hNew = action.Hamiltonian(pi, d.U, d.cfg.Beta, fermion)
	} else {
		hNew = action.Hamiltonian(pi, d.U, d.cfg.Beta, 0)
	}

	dH := hNew - hOld
	expDH := math.Exp(-dH)

	if iter < 2*therm {
		// Accept/reject runs, but does not feed the running averages.
	} else {
		d.sumExpDH += expDH
		d.sumDH += dH
		d.nStat++
	}

	if iter < therm {
		accepted = true
	} else {
		u := d.rng.Uniform()
		accepted = u <= expDH
		if !accepted {
			d.U.CopyFrom(Uold)
		}
	}
	if accepted {
		d.nAccept++
	}
	return accepted, nil
}

// MeanExpDH returns the running average of exp(−ΔH).
func (d *Driver) MeanExpDH() float64 {
	if d.nStat == 0 {
		return 0
	}
	return d.sumExpDH / float64(d.nStat)
}

// MeanDH returns the running average of ΔH.
func (d *Driver) MeanDH() float64 {
	if d.nStat == 0 {
		return 0
	}
	return d.sumDH / float64(d.nStat)
}

// Acceptance returns the fraction of iterations accepted so far.
func (d *Driver) Acceptance() float64 {
	if d.nTotal == 0 {
		return 0
	}
	return float64(d.nAccept) / float64(d.nTotal)
}
