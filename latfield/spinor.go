// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latfield

import "github.com/cpmech/gosl/chk"

// Spinor holds a 2-component Dirac spinor field ψ(x,y,s), s ∈ {0,1}, on a
// periodic 2D lattice. Used for the pseudofermion φ, the heatbath source
// χ, and every intermediate CG/force vector.
type Spinor struct {
	G  Geometry
	Psi []complex128
}

// NewSpinor allocates a zeroed Spinor field.
func NewSpinor(g Geometry) *Spinor {
	return &Spinor{G: g, Psi: make([]complex128, g.NSpinorComps())}
}

// At returns ψ(x,y,s).
func (o *Spinor) At(x, y, s int) complex128 {
	return o.Psi[o.G.SpinorIndex(x, y, s)]
}

// Set assigns ψ(x,y,s).
func (o *Spinor) Set(x, y, s int, v complex128) {
	o.Psi[o.G.SpinorIndex(x, y, s)] = v
}

// Zero sets every component to 0.
func (o *Spinor) Zero() {
	for i := range o.Psi {
		o.Psi[i] = 0
	}
}

// CopyFrom overwrites o with a copy of src. Panics if geometries differ.
func (o *Spinor) CopyFrom(src *Spinor) {
	if o.G != src.G {
		chk.Panic("latfield: CopyFrom geometry mismatch")
	}
	copy(o.Psi, src.Psi)
}
