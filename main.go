// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/godem/dem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// print the chain of callers on panic
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// command line
	simfn, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	nworkers := io.ArgToInt(3, -1)
	doprof := io.ArgToInt(4, 0)
	if verbose {
		io.PfWhite("\nGodem -- bonded spherical particles by the discrete element method\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"simulation file", "simfn", simfn,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"goroutines in loops (-1 => from .sim)", "nworkers", nworkers,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}
	if doprof > 0 {
		defer utl.Prof(doprof == 2, !verbose)()
	}

	// allocate particles, walls and control module
	sim, err := dem.NewMain(simfn, erasePrev, verbose)
	if err != nil {
		chk.Panic("cannot start simulation:\n%v", err)
	}
	if nworkers > 0 {
		sim.Dom.Nworkers = nworkers
		if sim.Ctrl != nil {
			sim.Ctrl.Nworkers = nworkers
		}
	}

	// time loop
	if err = sim.Run(); err != nil {
		chk.Panic("simulation failed at t=%g:\n%v", sim.Dom.Info.T, err)
	}
	if verbose {
		io.Pf("> %d steps, %d bonds, %d broken\n", sim.Summary.Nsteps, sim.Summary.Nbonds, sim.Summary.Nbroken)
	}
}
