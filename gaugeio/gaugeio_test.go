// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gaugeio

import (
	"math"
	"math/cmplx"
	"math/rand"
	"path/filepath"
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

func TestWriteReadRoundTrip(tst *testing.T) {
	chk.PrintTitle("WriteReadRoundTrip")
	g := latfield.NewGeometry(4, 3)
	U := randomGauge(g, 5)
	plaq := action.MeanPlaquette(U)

	path := filepath.Join(tst.TempDir(), "gauge.dat")
	if err := Write(path, U, plaq); err != nil {
		tst.Fatalf("write: %v", err)
	}

	U2, headerPlaq, err := Read(path, g)
	if err != nil {
		tst.Fatalf("read: %v", err)
	}
	chk.Scalar(tst, "headerPlaq", 1e-10, headerPlaq, plaq)
	for x := 0; x < g.LX; x++ {
		for y := 0; y < g.LY; y++ {
			for mu := 0; mu < 2; mu++ {
				if cmplx.Abs(U2.At(x, y, mu)-U.At(x, y, mu)) > 1e-9 {
					tst.Fatalf("link (%d,%d,%d) mismatch after round trip", x, y, mu)
				}
			}
		}
	}
}

func TestReadRejectsPlaquetteMismatch(tst *testing.T) {
	chk.PrintTitle("ReadRejectsPlaquetteMismatch")
	g := latfield.NewGeometry(3, 3)
	U := randomGauge(g, 9)
	plaq := action.MeanPlaquette(U)

	path := filepath.Join(tst.TempDir(), "gauge.dat")
	if err := Write(path, U, plaq+0.5); err != nil {
		tst.Fatalf("write: %v", err)
	}
	if _, _, err := Read(path, g); err == nil {
		tst.Fatalf("expected plaquette-mismatch error")
	}
}
