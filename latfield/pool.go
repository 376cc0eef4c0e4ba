// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package latfield

// Arena is the scratch-buffer pool of Design Notes §9: a small typed
// stack of spinor/real-field buffers, acquired and released within one
// HMC trajectory and never shared across concurrent operations (spec
// §3 "Ownership & lifecycle", §5 "Shared resources"). It replaces the
// named-bank-of-preallocated-arrays pattern of the original source
// (global_struct{b01..b19, c01..c03}) with handles that are acquired,
// used, and released on every exit path via defer.
type Arena struct {
	g       Geometry
	spinors []*Spinor
	reals   []*Real
	gauges  []*Gauge
}

// NewArena returns an empty Arena for the given geometry.
func NewArena(g Geometry) *Arena {
	return &Arena{g: g}
}

// SpinorHandle is a borrowed *Spinor; call Release when done with it.
type SpinorHandle struct {
	Spinor *Spinor
	arena  *Arena
}

// Release returns the underlying buffer to the arena for reuse. Safe to
// call multiple times; subsequent calls are no-ops.
func (h *SpinorHandle) Release() {
	if h.arena == nil {
		return
	}
	h.arena.spinors = append(h.arena.spinors, h.Spinor)
	h.arena = nil
}

// RealHandle is a borrowed *Real; call Release when done with it.
type RealHandle struct {
	Real  *Real
	arena *Arena
}

// Release returns the underlying buffer to the arena for reuse.
func (h *RealHandle) Release() {
	if h.arena == nil {
		return
	}
	h.arena.reals = append(h.arena.reals, h.Real)
	h.arena = nil
}

// GaugeHandle is a borrowed *Gauge; call Release when done with it.
type GaugeHandle struct {
	Gauge *Gauge
	arena *Arena
}

// Release returns the underlying buffer to the arena for reuse.
func (h *GaugeHandle) Release() {
	if h.arena == nil {
		return
	}
	h.arena.gauges = append(h.arena.gauges, h.Gauge)
	h.arena = nil
}

// AcquireGauge pops a gauge-field buffer off the arena's stack,
// allocating a new one only if the stack is empty. The caller overwrites
// it (e.g. via CopyFrom) before reading it back.
func (o *Arena) AcquireGauge() *GaugeHandle {
	var u *Gauge
	if n := len(o.gauges); n > 0 {
		u = o.gauges[n-1]
		o.gauges = o.gauges[:n-1]
	} else {
		u = NewGauge(o.g)
	}
	return &GaugeHandle{Gauge: u, arena: o}
}

// AcquireSpinor pops a zeroed spinor buffer off the arena's stack,
// allocating a new one only if the stack is empty.
func (o *Arena) AcquireSpinor() *SpinorHandle {
	var s *Spinor
	if n := len(o.spinors); n > 0 {
		s = o.spinors[n-1]
		o.spinors = o.spinors[:n-1]
		s.Zero()
	} else {
		s = NewSpinor(o.g)
	}
	return &SpinorHandle{Spinor: s, arena: o}
}

// AcquireReal pops a zeroed real-field buffer off the arena's stack,
// allocating a new one only if the stack is empty.
func (o *Arena) AcquireReal() *RealHandle {
	var r *Real
	if n := len(o.reals); n > 0 {
		r = o.reals[n-1]
		o.reals = o.reals[:n-1]
		r.Zero()
	} else {
		r = NewReal(o.g)
	}
	return &RealHandle{Real: r, arena: o}
}
