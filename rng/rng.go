// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rng provides the single seeded random stream feeding the
// momentum heatbath, the pseudofermion heatbath and the Metropolis
// accept/reject draw.
package rng

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Stream is a single sequential PRNG stream seeded once at startup; it
// is not safe for concurrent use, matching the driver's strictly serial
// call pattern (heatbath, then trajectory, then accept/reject).
type Stream struct {
	src    *rand.Rand
	normal distuv.Normal
}

// New seeds a Stream from seed.
func New(seed int64) *Stream {
	src := rand.New(rand.NewSource(seed))
	return &Stream{
		src:    src,
		normal: distuv.Normal{Mu: 0, Sigma: 1, Src: src},
	}
}

// Momentum draws one unit-variance real Gaussian, density ∝ exp(−π²/2).
func (s *Stream) Momentum() float64 {
	return s.normal.Rand()
}

// PseudoFermionComponent draws one unit-variance complex Gaussian,
// density ∝ exp(−|χ|²): independent real and imaginary parts each with
// σ = 1/√2 so that E|χ|² = 1.
func (s *Stream) PseudoFermionComponent() complex128 {
	const sigma = 0.70710678118654752440 // 1/sqrt(2)
	re := sigma * s.normal.Rand()
	im := sigma * s.normal.Rand()
	return complex(re, im)
}

// Uniform draws one sample from U(0,1), used for the Metropolis test.
func (s *Stream) Uniform() float64 {
	return s.src.Float64()
}
