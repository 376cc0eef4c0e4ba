// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package action

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/lat2d/u1hmc/latfield"
)

func TestColdStartPlaquetteIsOne(tst *testing.T) {
	chk.PrintTitle("ColdStartPlaquetteIsOne")
	g := latfield.NewGeometry(4, 4)
	U := latfield.NewGauge(g) // cold start: every link = 1
	plaq := MeanPlaquette(U)
	chk.Scalar(tst, "plaq", 1e-15, plaq, 1.0)
	chk.Scalar(tst, "gaugeAction", 1e-15, GaugeAction(U, 3.0), 0.0)
}

func TestKineticZeroMomentum(tst *testing.T) {
	chk.PrintTitle("KineticZeroMomentum")
	g := latfield.NewGeometry(4, 4)
	pi := latfield.NewReal(g)
	chk.Scalar(tst, "kinetic", 1e-15, Kinetic(pi), 0.0)
}
