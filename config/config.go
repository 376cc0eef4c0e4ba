// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config parses and validates the positional CLI surface of a
// simulation run.
package config

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Config is the validated representation of the CLI arguments. LX, LY
// are not part of Config; the caller (root main) reads them from the two
// command-line arguments that precede the ones Parse handles.
type Config struct {
	Beta             float64
	IterHMC          int
	Therm            int
	Skip             int
	Chkpt            int
	CheckpointStart  int
	Nstep            int
	Tau              float64
	SmearIter        int
	Alpha            float64
	Seed             int64
	Dynamic          bool
	M                float64
	MaxIterCG        int
	Eps              float64
	ArpackTol        float64
	ArpackMaxiter    int
	PolyACC          float64
	Amax             float64
	Amin             float64
	NPoly            int
	MeasPL           bool
	MeasWL           bool
	MeasPC           bool
	MeasVT           bool
}

// nargs is the number of positional arguments Parse expects.
const nargs = 25

// Parse parses args (normally flag.Args()) into a validated Config, or
// returns an error on the first missing, malformed or out-of-range
// argument.
func Parse(args []string) (cfg *Config, err error) {
	if len(args) < nargs {
		return nil, chk.Err("config: expected %d positional arguments, got %d", nargs, len(args))
	}

	defer func() {
		if r := recover(); r != nil {
			cfg = nil
			err = chk.Err("config: malformed argument: %v", r)
		}
	}()

	c := &Config{
		Beta:            io.Atof(args[0]),
		IterHMC:         io.Atoi(args[1]),
		Therm:           io.Atoi(args[2]),
		Skip:            io.Atoi(args[3]),
		Chkpt:           io.Atoi(args[4]),
		CheckpointStart: io.Atoi(args[5]),
		Nstep:           io.Atoi(args[6]),
		Tau:             io.Atof(args[7]),
		SmearIter:       io.Atoi(args[8]),
		Alpha:           io.Atof(args[9]),
		Seed:            int64(io.Atoi(args[10])),
		Dynamic:         io.Atob(args[11]),
		M:               io.Atof(args[12]),
		MaxIterCG:       io.Atoi(args[13]),
		Eps:             io.Atof(args[14]),
		ArpackTol:       io.Atof(args[15]),
		ArpackMaxiter:   io.Atoi(args[16]),
		PolyACC:         io.Atof(args[17]),
		Amax:            io.Atof(args[18]),
		Amin:            io.Atof(args[19]),
		NPoly:           io.Atoi(args[20]),
		MeasPL:          io.Atob(args[21]),
		MeasWL:          io.Atob(args[22]),
		MeasPC:          io.Atob(args[23]),
		MeasVT:          io.Atob(args[24]),
	}

	if err := validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

func validate(c *Config) error {
	switch {
	case c.Nstep < 1:
		return chk.Err("config: nstep must be >= 1, got %d", c.Nstep)
	case c.Tau <= 0:
		return chk.Err("config: tau must be > 0, got %g", c.Tau)
	case c.Eps <= 0 || c.Eps >= 1:
		return chk.Err("config: eps must be in (0,1), got %g", c.Eps)
	case c.MaxIterCG < 1:
		return chk.Err("config: maxIterCG must be >= 1, got %d", c.MaxIterCG)
	case c.IterHMC < 1:
		return chk.Err("config: iterHMC must be >= 1, got %d", c.IterHMC)
	case c.Therm < 0:
		return chk.Err("config: therm must be >= 0, got %d", c.Therm)
	case c.Skip < 1:
		return chk.Err("config: skip must be >= 1, got %d", c.Skip)
	case c.Chkpt < 1:
		return chk.Err("config: chkpt must be >= 1, got %d", c.Chkpt)
	}
	return nil
}
