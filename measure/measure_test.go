// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/lat2d/u1hmc/latfield"
)

func TestTopologicalChargeColdStartIsZero(tst *testing.T) {
	chk.PrintTitle("TopologicalChargeColdStartIsZero")
	g := latfield.NewGeometry(6, 6)
	U := latfield.NewGauge(g)
	chk.IntAssert(TopologicalCharge(U), 0)
}

func TestWilsonAndPolyakovColdStartAreOne(tst *testing.T) {
	chk.PrintTitle("WilsonAndPolyakovColdStartAreOne")
	g := latfield.NewGeometry(6, 6)
	U := latfield.NewGauge(g)
	chk.Scalar(tst, "wilson(2,2)", 1e-14, WilsonLoop(U, 2, 2), 1.0)
	p := PolyakovLoop(U)
	chk.Scalar(tst, "polyakov.real", 1e-14, real(p), 1.0)
	chk.Scalar(tst, "polyakov.imag", 1e-14, imag(p), 0.0)
}

func TestStuckCounter(tst *testing.T) {
	chk.PrintTitle("StuckCounter")
	s := NewStuckCounter()
	if s.Observe(0) {
		tst.Fatalf("first observation should never be stuck")
	}
	if !s.Observe(0) {
		tst.Fatalf("repeated charge should be stuck")
	}
	if s.Observe(1) {
		tst.Fatalf("changed charge should not be stuck")
	}
	chk.Scalar(tst, "fraction", 1e-12, s.Fraction(), 1.0/3.0)
}

func TestWritePlaquetteRecord(tst *testing.T) {
	chk.PrintTitle("WritePlaquetteRecord")
	path := filepath.Join(tst.TempDir(), "data.dat")
	r := PlaquetteRecord{Iter: 1, Time: 0.5, PlaqAvg: 0.9, StuckFrac: 0.1, ExpDHAvg: 1.0, DHAvg: 0.0, Acceptance: 0.8, TopCharge: 2}
	if err := WritePlaquetteRecord(path, r); err != nil {
		tst.Fatalf("write: %v", err)
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		tst.Fatalf("read back: %v", err)
	}
	if len(buf) == 0 {
		tst.Fatalf("expected non-empty record file")
	}
}

func TestPionCorrelatorColdStartIsFinite(tst *testing.T) {
	chk.PrintTitle("PionCorrelatorColdStartIsFinite")
	g := latfield.NewGeometry(4, 4)
	U := latfield.NewGauge(g)
	corr, err := PionCorrelator(U, 0.1, 500, 1e-10)
	if err != nil {
		tst.Fatalf("pion correlator: %v", err)
	}
	if len(corr) != g.LY {
		tst.Fatalf("expected %d time slices, got %d", g.LY, len(corr))
	}
	if corr[0] <= 0 {
		tst.Fatalf("expected positive correlator at t=0, got %g", corr[0])
	}
}
