// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gaugeio reads and writes gauge-configuration checkpoint
// files: a header line carrying the plaquette measured at write time,
// followed by the link phase angles in (x outer, y middle, μ inner)
// order.
package gaugeio

import (
	"bytes"
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/lat2d/u1hmc/action"
	"github.com/lat2d/u1hmc/latfield"
)

// maxPlaqRelError is the tolerance Read enforces between the header
// plaquette and the value recomputed from the loaded links.
const maxPlaqRelError = 1e-12

// Write writes a checkpoint of U to path: a 20-digit fixed header line
// carrying plaq, followed by LX*LY*2 phase angles, 12-digit fixed, one
// per line, in (x outer, y middle, μ inner) order.
func Write(path string, U *latfield.Gauge, plaq float64) error {
	var buf bytes.Buffer
	io.Ff(&buf, "%20.20f\n", plaq)

	g := U.G
	for x := 0; x < g.LX; x++ {
		for y := 0; y < g.LY; y++ {
			for mu := 0; mu < 2; mu++ {
				theta := cmplx.Phase(U.At(x, y, mu))
				io.Ff(&buf, "%12.12f\n", theta)
			}
		}
	}
	return io.WriteFile(path, &buf)
}

// Read loads a checkpoint for geometry g from path, recomputes the
// plaquette from the loaded links, and returns an error if it disagrees
// with the header value by more than maxPlaqRelError relative error.
func Read(path string, g latfield.Geometry) (U *latfield.Gauge, headerPlaq float64, err error) {
	raw, err := io.ReadFile(path)
	if err != nil {
		return nil, 0, chk.Err("gaugeio: read %s: %v", path, err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	want := 1 + g.LX*g.LY*2
	if len(lines) < want {
		return nil, 0, chk.Err("gaugeio: %s: expected %d lines, got %d", path, want, len(lines))
	}

	if _, err := fmt.Sscanf(lines[0], "%f", &headerPlaq); err != nil {
		return nil, 0, chk.Err("gaugeio: %s: malformed header: %v", path, err)
	}

	U = latfield.NewGauge(g)
	lineNo := 1
	for x := 0; x < g.LX; x++ {
		for y := 0; y < g.LY; y++ {
			for mu := 0; mu < 2; mu++ {
				var theta float64
				if _, err := fmt.Sscanf(lines[lineNo], "%f", &theta); err != nil {
					return nil, 0, chk.Err("gaugeio: %s: malformed link (%d,%d,%d): %v", path, x, y, mu, err)
				}
				U.Set(x, y, mu, cmplx.Exp(complex(0, theta)))
				lineNo++
			}
		}
	}

	recomputed := action.MeanPlaquette(U)
	relErr := math.Abs(recomputed-headerPlaq) / math.Max(math.Abs(headerPlaq), 1e-300)
	if relErr > maxPlaqRelError {
		return nil, 0, chk.Err("gaugeio: %s: plaquette mismatch: header=%.15g recomputed=%.15g relerr=%.3e", path, headerPlaq, recomputed, relErr)
	}
	return U, headerPlaq, nil
}
