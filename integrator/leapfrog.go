// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrator implements the symplectic leapfrog trajectory
// integrator driving the molecular-dynamics step of the HMC update.
package integrator

import (
	"math/cmplx"

	"github.com/lat2d/u1hmc/force"
	"github.com/lat2d/u1hmc/latfield"
)

// Params collects everything a trajectory needs besides the fields
// themselves.
type Params struct {
	Beta      float64
	M         float64
	Tau       float64
	Nstep     int
	MaxIterCG int
	Eps       float64
	Dynamic   bool
}

// Integrate advances (U, pi) along a leapfrog trajectory of length
// cfg.Tau in cfg.Nstep steps of dtau = cfg.Tau/cfg.Nstep:
//
//	half-kick; (Nstep-1) x (drift + full kick); final drift; final half-kick
//
// where a kick updates pi using forceU - forceD and a drift updates U
// via the unitary exponential map U <- exp(i*dtau*pi)*U. phi is held
// fixed for the whole trajectory (it is the pseudofermion source).
// guess carries the CG warm-start spinor between force evaluations and
// is updated in place; its final value is the caller's responsibility
// to keep across driver iterations. Returns a *cg.NonConvergenceError
// if any fermion-force CG solve fails to converge.
func Integrate(U *latfield.Gauge, pi *latfield.Real, phi *latfield.Spinor, cfg Params, guess *latfield.Spinor) error {
	g := U.G
	dtau := cfg.Tau / float64(cfg.Nstep)

	forceU := latfield.NewReal(g)
	forceD := latfield.NewReal(g)

	evalForce := func() error {
		force.GaugeForce(forceU, U, cfg.Beta)
		if cfg.Dynamic {
			_, err := force.FermionForce(forceD, U, phi, cfg.M, cfg.MaxIterCG, cfg.Eps, guess)
			if err != nil {
				return err
			}
		} else {
			forceD.Zero()
		}
		return nil
	}

	kick := func(dt float64) {
		for i := range pi.V {
			pi.V[i] -= dt * (forceU.V[i] - forceD.V[i])
		}
	}

	drift := func(dt float64) {
		for x := 0; x < g.LX; x++ {
			for y := 0; y < g.LY; y++ {
				for mu := 0; mu < 2; mu++ {
					phase := dt * pi.At(x, y, mu)
					U.Set(x, y, mu, cmplx.Exp(complex(0, phase))*U.At(x, y, mu))
				}
			}
		}
	}

	if err := evalForce(); err != nil {
		return err
	}
	kick(dtau / 2)

	for n := 0; n < cfg.Nstep-1; n++ {
		drift(dtau)
		if err := evalForce(); err != nil {
			return err
		}
		kick(dtau)
	}

	drift(dtau)
	if err := evalForce(); err != nil {
		return err
	}
	kick(dtau / 2)

	return nil
}
