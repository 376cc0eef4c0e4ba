// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/lat2d/u1hmc/action"
	"github.com/lat2d/u1hmc/cg"
	"github.com/lat2d/u1hmc/config"
	"github.com/lat2d/u1hmc/gaugeio"
	"github.com/lat2d/u1hmc/hmc"
	"github.com/lat2d/u1hmc/latfield"
	"github.com/lat2d/u1hmc/measure"
	"github.com/lat2d/u1hmc/rng"
)

// exitCode classifies the fatal-error taxonomy into the process exit
// status: 0 clean, 1 configuration/CG-non-convergence, 2 checkpoint
// mismatch.
type exitCode int

const (
	exitClean         exitCode = 0
	exitConfigOrCG    exitCode = 1
	exitCheckpointBad exitCode = 2
)

func main() {
	code := exitClean

	defer func() {
		if r := recover(); r != nil {
			chk.Verbose = true
			io.Pfred("ERROR: %v\n", r)
			os.Exit(int(exitConfigOrCG))
		}
		os.Exit(int(code))
	}()

	flag.Parse()
	args := flag.Args()
	if len(args) < 2 {
		panic("usage: u1hmc LX LY beta iterHMC therm skip chkpt checkpointStart nstep tau smearIter alpha seed dynamic m maxIterCG eps arpackTol arpackMaxiter polyACC amax amin n_poly measPL measWL measPC measVT")
	}

	lx := io.Atoi(args[0])
	ly := io.Atoi(args[1])
	cfg, err := config.Parse(args[2:])
	if err != nil {
		io.Pfred("ERROR: %v\n", err)
		code = exitConfigOrCG
		return
	}

	io.PfWhite("\nu1hmc -- 2D U(1) HMC with Wilson fermions\n\n")

	g := latfield.NewGeometry(lx, ly)
	U := latfield.NewGauge(g)
	iterOffset := 0

	if cfg.CheckpointStart > 0 {
		path := checkpointPath(cfg.CheckpointStart)
		loaded, _, err := gaugeio.Read(path, g)
		if err != nil {
			io.Pfred("ERROR: %v\n", err)
			code = exitCheckpointBad
			return
		}
		U = loaded
		iterOffset = cfg.CheckpointStart
		io.Pfgreen(">> resumed from %s at iter=%d\n", path, iterOffset)
	}

	stream := rng.New(cfg.Seed)
	driver := hmc.NewDriver(U, hmc.Params{
		Beta: cfg.Beta, M: cfg.M, Tau: cfg.Tau, Nstep: cfg.Nstep,
		MaxIterCG: cfg.MaxIterCG, Eps: cfg.Eps, Dynamic: cfg.Dynamic,
		Therm: cfg.Therm,
	}, stream)

	measure.ApplySmearing(cfg.SmearIter, cfg.Alpha)

	io.Pforan(">> thermalizing: %d + %d iterations\n", cfg.Therm, cfg.Therm)
	start := time.Now()

	topOld := 0
	stuck := measure.NewStuckCounter()
	hist := measure.NewChargeHistogram()

	var plaqSum float64
	var count int

	for iter := iterOffset; iter < cfg.IterHMC+2*cfg.Therm; iter++ {
		accepted, err := driver.Step(iter)
		if err != nil {
			if _, ok := err.(*cg.NonConvergenceError); ok {
				io.Pfred("ERROR: %v\n", err)
				code = exitConfigOrCG
				return
			}
			panic(err)
		}

		if iter < 2*cfg.Therm {
			continue
		}

		if accepted {
			topOld = measure.TopologicalCharge(driver.U)
			hist.Add(topOld)
			stuck.Observe(topOld)
		}

		if (iter+1)%cfg.Skip == 0 {
			count++
			plaq := action.MeanPlaquette(driver.U)
			plaqSum += plaq

			if (iter+1)%cfg.Chkpt == 0 {
				path := checkpointPath(iter + 1)
				if err := gaugeio.Write(path, driver.U, plaq); err != nil {
					io.Pfred("ERROR: %v\n", err)
					code = exitConfigOrCG
					return
				}
			}

			elapsed := time.Since(start).Seconds()
			rec := measure.PlaquetteRecord{
				Iter:       iter + 1,
				Time:       elapsed,
				PlaqAvg:    plaqSum / float64(count),
				StuckFrac:  stuck.Fraction(),
				ExpDHAvg:   driver.MeanExpDH(),
				DHAvg:      driver.MeanDH(),
				Acceptance: driver.Acceptance(),
				TopCharge:  topOld,
			}
			if err := measure.WritePlaquetteRecord("data.dat", rec); err != nil {
				io.Pfyel("WARNING: %v\n", err)
			}
			io.Pf("%d %.6f %.6f %.6f %.6f %.6f %.6f %d\n",
				rec.Iter, rec.Time, rec.PlaqAvg, rec.StuckFrac, rec.ExpDHAvg, rec.DHAvg, rec.Acceptance, rec.TopCharge)

			if cfg.MeasWL {
				for r := 1; r <= measure.LoopMax(g); r++ {
					io.Pf("wilson(%d,%d)=%.8f\n", r, r, measure.WilsonLoop(driver.U, r, r))
				}
			}
			if cfg.MeasPL {
				pl := measure.PolyakovLoop(driver.U)
				io.Pf("polyakov=%.8f%+.8fi\n", real(pl), imag(pl))
			}
			if cfg.MeasPC {
				corr, perr := measure.PionCorrelator(driver.U, cfg.M, cfg.MaxIterCG, cfg.Eps)
				if perr != nil {
					io.Pfyel("WARNING: pion correlator: %v\n", perr)
				} else {
					io.Pf("pion=%v\n", corr)
				}
			}
		}
	}

	io.Pfgreen("\n>> done: acceptance=%.4f  <exp(-dH)>=%.6f  <dH>=%.6f\n",
		driver.Acceptance(), driver.MeanExpDH(), driver.MeanDH())

	for _, bin := range hist.Snapshot() {
		io.Pf("top_hist %d %d\n", bin.Top, bin.Count)
	}
}

func checkpointPath(iter int) string {
	return filepath.Join("gauge", fmt.Sprintf("gauge_traj%d.dat", iter))
}
