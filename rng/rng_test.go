// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rng

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestMomentumMeanAndVariance(tst *testing.T) {
	chk.PrintTitle("MomentumMeanAndVariance")
	s := New(42)
	const n = 200000
	var sum, sumsq float64
	for i := 0; i < n; i++ {
		v := s.Momentum()
		sum += v
		sumsq += v * v
	}
	mean := sum / n
	variance := sumsq/n - mean*mean
	chk.Scalar(tst, "mean", 0.02, mean, 0.0)
	chk.Scalar(tst, "variance", 0.05, variance, 1.0)
}

func TestPseudoFermionComponentVariance(tst *testing.T) {
	chk.PrintTitle("PseudoFermionComponentVariance")
	s := New(99)
	const n = 200000
	var sumsq float64
	for i := 0; i < n; i++ {
		c := s.PseudoFermionComponent()
		sumsq += real(c)*real(c) + imag(c)*imag(c)
	}
	mean := sumsq / n
	if math.Abs(mean-1.0) > 0.05 {
		tst.Fatalf("E|chi|^2 = %g, want close to 1.0", mean)
	}
}

func TestUniformRange(tst *testing.T) {
	chk.PrintTitle("UniformRange")
	s := New(7)
	for i := 0; i < 10000; i++ {
		u := s.Uniform()
		if u < 0 || u >= 1 {
			tst.Fatalf("uniform draw out of range: %g", u)
		}
	}
}
