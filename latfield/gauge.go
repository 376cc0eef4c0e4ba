// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latfield

import (
	"math"
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
)

// Gauge holds the U(1) link variables U_μ(x,y) = e^{iθ_μ(x,y)} on a
// periodic 2D lattice, stored flat and row-major via Geometry.LinkIndex.
// Invariant: |U_μ(x,y)| = 1 within floating tolerance after every update.
type Gauge struct {
	G  Geometry
	U  []complex128
}

// NewGauge allocates a Gauge field initialised to the unit link (cold
// start); callers wanting a hot start overwrite U afterwards.
func NewGauge(g Geometry) *Gauge {
	o := &Gauge{G: g, U: make([]complex128, g.NLinks())}
	o.SetUnity()
	return o
}

// At returns U_μ(x,y).
func (o *Gauge) At(x, y, mu int) complex128 {
	return o.U[o.G.LinkIndex(x, y, mu)]
}

// Set assigns U_μ(x,y).
func (o *Gauge) Set(x, y, mu int, v complex128) {
	o.U[o.G.LinkIndex(x, y, mu)] = v
}

// SetUnity sets every link to 1+0i (the free-field / β=∞ configuration).
func (o *Gauge) SetUnity() {
	for i := range o.U {
		o.U[i] = 1
	}
}

// CopyFrom overwrites o with a copy of src. Panics if geometries differ.
func (o *Gauge) CopyFrom(src *Gauge) {
	if o.G != src.G {
		chk.Panic("latfield: CopyFrom geometry mismatch")
	}
	copy(o.U, src.U)
}

// MaxUnitarityDefect returns max_{x,y,μ} | |U_μ(x,y)| − 1 |, the quantity
// the unitarity invariant is checked against.
func (o *Gauge) MaxUnitarityDefect() float64 {
	var maxDefect float64
	for _, u := range o.U {
		d := math.Abs(cmplx.Abs(u) - 1)
		if d > maxDefect {
			maxDefect = d
		}
	}
	return maxDefect
}

// Plaquette returns the ordered plaquette product
// U_0(x,y)·U_1(x+1,y)·U_0†(x,y+1)·U_1†(x,y) at site (x,y).
func (o *Gauge) Plaquette(x, y int) complex128 {
	xp, yp := o.G.Xp1(x), o.G.Yp1(y)
	return o.At(x, y, 0) * o.At(xp, y, 1) * cmplx.Conj(o.At(x, yp, 0)) * cmplx.Conj(o.At(x, y, 1))
}
