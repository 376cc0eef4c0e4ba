// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package latfield implements the periodic 2D lattice geometry, the
// gauge/spinor/real field containers, and the BLAS-1-style kernels
// (zero, copy, dot, norm2, axpy, caxpby, xpaypbz) every other package
// in this module builds on. Kernels are data-parallel over the site
// index and fan out through parallel.Pool, joining before returning.
package latfield

import "github.com/cpmech/gosl/chk"

// Geometry holds the periodic 2D lattice extents and the flat-index
// arithmetic every field container is built on. A row-major, idx(x,y,mu)
// layout is used throughout (Design Notes: flat 1D storage beats
// pointer-of-pointer layouts for the six-neighbor-read stencil).
type Geometry struct {
	LX, LY int
}

// NewGeometry validates LX,LY > 0 and returns a Geometry.
func NewGeometry(lx, ly int) Geometry {
	if lx <= 0 || ly <= 0 {
		chk.Panic("latfield: lattice extents must be positive: LX=%d LY=%d", lx, ly)
	}
	return Geometry{LX: lx, LY: ly}
}

// NSites returns LX*LY.
func (g Geometry) NSites() int { return g.LX * g.LY }

// NLinks returns LX*LY*2 (two link directions per site).
func (g Geometry) NLinks() int { return g.LX * g.LY * 2 }

// NSpinorComps returns LX*LY*2 (two Dirac components per site).
func (g Geometry) NSpinorComps() int { return g.LX * g.LY * 2 }

// Xp1 returns (x+1) mod LX.
func (g Geometry) Xp1(x int) int {
	if x+1 == g.LX {
		return 0
	}
	return x + 1
}

// Xm1 returns (x-1) mod LX.
func (g Geometry) Xm1(x int) int {
	if x == 0 {
		return g.LX - 1
	}
	return x - 1
}

// Yp1 returns (y+1) mod LY.
func (g Geometry) Yp1(y int) int {
	if y+1 == g.LY {
		return 0
	}
	return y + 1
}

// Ym1 returns (y-1) mod LY.
func (g Geometry) Ym1(y int) int {
	if y == 0 {
		return g.LY - 1
	}
	return y - 1
}

// SiteIndex returns the flat index of site (x,y). The checkpoint wire
// format is x outer, y middle, mu inner, so the in-memory layout matches
// that order directly, not y outer.
func (g Geometry) SiteIndex(x, y int) int {
	return x*g.LY + y
}

// LinkIndex returns the flat index of link (x,y,mu), mu in {0,1}.
func (g Geometry) LinkIndex(x, y, mu int) int {
	return (x*g.LY+y)*2 + mu
}

// SpinorIndex returns the flat index of spinor component (x,y,s), s in {0,1}.
func (g Geometry) SpinorIndex(x, y, s int) int {
	return (x*g.LY+y)*2 + s
}
