// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"github.com/lat2d/u1hmc/latfield"
)

// WilsonLoop returns the lattice average of the R (spatial, μ=0) by T
// (temporal, μ=1) rectangular Wilson loop, Re⟨Tr W(R,T)⟩ averaged over
// every lattice site, with R up to LX/2 and T up to LY/2 meaningful
// before periodic wraparound folds the loop onto itself.
func WilsonLoop(U *latfield.Gauge, R, T int) float64 {
	g := U.G
	var sum float64
	for x := 0; x < g.LX; x++ {
		for y := 0; y < g.LY; y++ {
			sum += real(wilsonLoopAt(U, x, y, R, T))
		}
	}
	return sum / float64(g.NSites())
}

func wilsonLoopAt(U *latfield.Gauge, x0, y0, R, T int) complex128 {
	g := U.G
	w := complex(1, 0)
	x, y := x0, y0
	for i := 0; i < R; i++ {
		w *= U.At(x, y, 0)
		x = g.Xp1(x)
	}
	for j := 0; j < T; j++ {
		w *= U.At(x, y, 1)
		y = g.Yp1(y)
	}
	for i := 0; i < R; i++ {
		x = g.Xm1(x)
		w *= cconj(U.At(x, y, 0))
	}
	for j := 0; j < T; j++ {
		y = g.Ym1(y)
		w *= cconj(U.At(x, y, 1))
	}
	return w
}

// LoopMax returns the largest loop extent meaningful in both directions,
// min(LX,LY)/2, beyond which a square Wilson loop wraps around the
// periodic torus.
func LoopMax(g latfield.Geometry) int {
	m := g.LX
	if g.LY < m {
		m = g.LY
	}
	return m / 2
}

// PolyakovLoop returns the average, over spatial position x, of the
// product of μ=1 links winding once around the periodic "time"
// direction. This is the order parameter for deconfinement in 2D U(1).
func PolyakovLoop(U *latfield.Gauge) complex128 {
	g := U.G
	var sum complex128
	for x := 0; x < g.LX; x++ {
		p := complex(1, 0)
		for y := 0; y < g.LY; y++ {
			p *= U.At(x, y, 1)
		}
		sum += p
	}
	return sum / complex(float64(g.LX), 0)
}

func cconj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}
