// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package force computes the gauge force ∂S_g/∂θ and the pseudofermion
// force.
package force

import (
	"github.com/lat2d/u1hmc/latfield"
)

// GaugeForce computes forceU[x,y,μ] = β·Im(sum of the two plaquettes
// touching link (x,y,μ)), overwriting out.
func GaugeForce(out *latfield.Real, U *latfield.Gauge, beta float64) {
	g := U.G
	for x := 0; x < g.LX; x++ {
		xp, xm := g.Xp1(x), g.Xm1(x)
		for y := 0; y < g.LY; y++ {
			yp, ym := g.Yp1(y), g.Ym1(y)

			// mu=0: plaquette at (x,y) minus plaquette at (x,y-1)
			pUp := U.At(x, y, 0) * U.At(xp, y, 1) * cconj(U.At(x, yp, 0)) * cconj(U.At(x, y, 1))
			pDown := U.At(x, ym, 0) * U.At(xp, ym, 1) * cconj(U.At(x, y, 0)) * cconj(U.At(x, ym, 1))
			out.Set(x, y, 0, beta*(imag(pUp)-imag(pDown)))

			// mu=1: plaquette built leftward from (x,y) minus the mu=0 forward plaquette at (x,y)
			pLeft := U.At(x, y, 1) * cconj(U.At(xm, yp, 0)) * cconj(U.At(xm, y, 1)) * U.At(xm, y, 0)
			out.Set(x, y, 1, beta*(imag(pLeft)-imag(pUp)))
		}
	}
}

func cconj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}
