// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latfield

import "github.com/cpmech/gosl/chk"

// Real holds a real-valued field indexed like a Gauge field (one value per
// link, x outer/y middle/μ inner), used for the momentum field π and the
// gauge/fermion forces f_U, f_D.
type Real struct {
	G Geometry
	V []float64
}

// NewReal allocates a zeroed Real field.
func NewReal(g Geometry) *Real {
	return &Real{G: g, V: make([]float64, g.NLinks())}
}

// At returns the value at link (x,y,mu).
func (o *Real) At(x, y, mu int) float64 {
	return o.V[o.G.LinkIndex(x, y, mu)]
}

// Set assigns the value at link (x,y,mu).
func (o *Real) Set(x, y, mu int, v float64) {
	o.V[o.G.LinkIndex(x, y, mu)] = v
}

// Zero sets every component to 0.
func (o *Real) Zero() {
	for i := range o.V {
		o.V[i] = 0
	}
}

// CopyFrom overwrites o with a copy of src. Panics if geometries differ.
func (o *Real) CopyFrom(src *Real) {
	if o.G != src.G {
		chk.Panic("latfield: CopyFrom geometry mismatch")
	}
	copy(o.V, src.V)
}
