// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/lat2d/u1hmc/latfield"
)

// TopologicalCharge returns round(Σ arg(U_P(x)) / 2π), the field-theoretic
// winding number of the 2D U(1) field.
func TopologicalCharge(U *latfield.Gauge) int {
	g := U.G
	var sum float64
	for x := 0; x < g.LX; x++ {
		for y := 0; y < g.LY; y++ {
			sum += cmplx.Phase(U.Plaquette(x, y))
		}
	}
	return int(math.Round(sum / (2 * math.Pi)))
}

// ChargeHistogram accumulates a histogram of measured integer charges.
type ChargeHistogram struct {
	counts map[int]int
}

// NewChargeHistogram returns an empty histogram.
func NewChargeHistogram() *ChargeHistogram {
	return &ChargeHistogram{counts: make(map[int]int)}
}

// Add records one measurement of top.
func (h *ChargeHistogram) Add(top int) {
	h.counts[top]++
}

// Count returns how many times top has been measured.
func (h *ChargeHistogram) Count(top int) int {
	return h.counts[top]
}

// Snapshot returns the histogram's (charge, count) pairs sorted by
// charge, for logging or writing to a file at run end.
func (h *ChargeHistogram) Snapshot() []struct{ Top, Count int } {
	keys := make([]int, 0, len(h.counts))
	for k := range h.counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	out := make([]struct{ Top, Count int }, len(keys))
	for i, k := range keys {
		out[i] = struct{ Top, Count int }{Top: k, Count: h.counts[k]}
	}
	return out
}

// StuckCounter tracks the "topological charge did not change between
// consecutive accepted trajectories" fraction.
type StuckCounter struct {
	topOld       int
	haveOld      bool
	stuckCount   int
	measureCount int
}

// NewStuckCounter returns an empty counter.
func NewStuckCounter() *StuckCounter {
	return &StuckCounter{}
}

// Observe records a new topological charge measurement (called once
// per accepted trajectory) and returns whether it was stuck relative to
// the previous measurement.
func (s *StuckCounter) Observe(top int) (stuck bool) {
	if s.haveOld && s.topOld == top {
		stuck = true
		s.stuckCount++
	}
	s.topOld = top
	s.haveOld = true
	s.measureCount++
	return stuck
}

// Fraction returns the stuck count divided by the number of observations,
// or 0 if none have been recorded yet.
func (s *StuckCounter) Fraction() float64 {
	if s.measureCount == 0 {
		return 0
	}
	return float64(s.stuckCount) / float64(s.measureCount)
}
