// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package force

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/lat2d/u1hmc/action"
	"github.com/lat2d/u1hmc/latfield"
)

func randomGauge(g latfield.Geometry, seed int64) *latfield.Gauge {
	rnd := rand.New(rand.NewSource(seed))
	U := latfield.NewGauge(g)
	for i := range U.U {
		theta := rnd.Float64() * 2 * math.Pi
		U.U[i] = cmplx.Exp(complex(0, theta))
	}
	return U
}

func TestGaugeForceColdStartIsZero(tst *testing.T) {
	chk.PrintTitle("GaugeForceColdStartIsZero")
	g := latfield.NewGeometry(4, 4)
	U := latfield.NewGauge(g)
	f := latfield.NewReal(g)
	GaugeForce(f, U, 3.0)
	for _, v := range f.V {
		chk.Scalar(tst, "f", 1e-14, v, 0.0)
	}
}

// TestGaugeForceMatchesNumericalGradient checks f_U(x,y,mu) = dS_g/dtheta
// by central finite difference, consistent with the leapfrog sign
// convention pi -= dtau*(f_U - f_D) implementing dpi/dtau = -dS/dtheta.
func TestGaugeForceMatchesNumericalGradient(tst *testing.T) {
	chk.PrintTitle("GaugeForceMatchesNumericalGradient")
	g := latfield.NewGeometry(4, 4)
	U := randomGauge(g, 7)
	beta := 2.5
	f := latfield.NewReal(g)
	GaugeForce(f, U, beta)

	h := 1e-6
	perturb := func(x, y, mu int, dh float64) *latfield.Gauge {
		U2 := latfield.NewGauge(g)
		U2.CopyFrom(U)
		U2.Set(x, y, mu, U.At(x, y, mu)*cmplx.Exp(complex(0, dh)))
		return U2
	}

	for _, link := range [][3]int{{0, 0, 0}, {1, 2, 0}, {2, 3, 1}, {3, 1, 1}} {
		x, y, mu := link[0], link[1], link[2]
		sPlus := action.GaugeAction(perturb(x, y, mu, h), beta)
		sMinus := action.GaugeAction(perturb(x, y, mu, -h), beta)
		numeric := (sPlus - sMinus) / (2 * h)
		analytic := f.At(x, y, mu)
		if math.Abs(numeric-analytic) > 1e-5 {
			tst.Fatalf("link (%d,%d,%d): numeric=%g analytic=%g", x, y, mu, numeric, analytic)
		}
	}
}
