// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package action computes the plaquette (gauge), kinetic (momentum) and
// fermion contributions to the lattice action, and the Hamiltonian
// accounting needed by the HMC driver.
package action

import (
	"github.com/lat2d/u1hmc/latfield"
)

// MeanPlaquette returns (1/N_plaq) Σ_x Re(U_P(x)), the quantity
// conventionally reported as "the plaquette", equal to 1 for the free field.
func MeanPlaquette(U *latfield.Gauge) float64 {
	g := U.G
	var sum float64
	for x := 0; x < g.LX; x++ {
		for y := 0; y < g.LY; y++ {
			sum += real(U.Plaquette(x, y))
		}
	}
	return sum / float64(g.NSites())
}

// GaugeAction returns S_g = β Σ_x Re(1 − U_P(x)).
func GaugeAction(U *latfield.Gauge, beta float64) float64 {
	g := U.G
	var sum float64
	for x := 0; x < g.LX; x++ {
		for y := 0; y < g.LY; y++ {
			sum += 1 - real(U.Plaquette(x, y))
		}
	}
	return beta * sum
}

// Kinetic returns ½ Σ π² over the momentum field.
func Kinetic(pi *latfield.Real) float64 {
	return 0.5 * latfield.RealNorm2(pi)
}

// FermionActionFromChi returns ⟨χ,χ⟩, the fermion contribution to the
// Hamiltonian at heatbath time: since φ = γ₃Dχ and (γ₃D)†(γ₃D) = D†D,
// ⟨φ,(D†D)⁻¹φ⟩ = ⟨χ,χ⟩ exactly, so no CG solve is needed to evaluate
// H_old.
func FermionActionFromChi(chi *latfield.Spinor) float64 {
	return latfield.Norm2(chi)
}

// FermionActionFromPhi returns ⟨φ,ψ⟩ where ψ = (D†D)⁻¹φ has already been
// computed by the caller's CG solve. This is the fermion contribution to H_new.
func FermionActionFromPhi(phi, psi *latfield.Spinor) float64 {
	return real(latfield.Dot(phi, psi))
}

// Hamiltonian sums the kinetic, gauge and fermion contributions.
func Hamiltonian(pi *latfield.Real, U *latfield.Gauge, beta, fermion float64) float64 {
	return Kinetic(pi) + GaugeAction(U, beta) + fermion
}
