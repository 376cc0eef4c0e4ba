// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package measure implements the external measurement collaborators
// (plaquette logging, topological charge, Wilson/Polyakov loops, pion
// correlator) that consume the core's exported (U, iter, topOld)
// contract; none of them feed back into the accept/reject decision.
package measure

import (
	"fmt"
	"os"
)

// PlaquetteRecord is one line of the running-average measurement log,
// mirroring the data/data/data*.dat record of the original source.
type PlaquetteRecord struct {
	Iter       int
	Time       float64
	PlaqAvg    float64
	StuckFrac  float64
	ExpDHAvg   float64
	DHAvg      float64
	Acceptance float64
	TopCharge  int
}

// WritePlaquetteRecord appends r to path, creating it if necessary.
func WritePlaquetteRecord(path string, r PlaquetteRecord) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("measure: open %s: %w", path, err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%d %.16e %.16e %.16e %.16e %.16e %.16e %d\n",
		r.Iter, r.Time, r.PlaqAvg, r.StuckFrac, r.ExpDHAvg, r.DHAvg, r.Acceptance, r.TopCharge)
	if err != nil {
		return fmt.Errorf("measure: write %s: %w", path, err)
	}
	return nil
}
