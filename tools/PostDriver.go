// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"encoding/json"

	"github.com/cpmech/godem/out"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

type Input struct {
	SimFn  string   // simulation filename including path
	Ids    []int    // particles to be plotted
	Keys   []string // values to be plotted versus time; e.g. "z", "sz"
	FigKey string   // key of figure

	// derived
	inpfn string
}

func (o *Input) PostProcess() {
	if len(o.Keys) == 0 {
		o.Keys = []string{"z", "sz"}
	}
	if o.FigKey == "" {
		o.FigKey = io.FnKey(o.SimFn)
	}
}

func (o Input) String() (l string) {
	l = io.ArgsTable("INPUT ARGUMENTS",
		"input filename", "inpfn", o.inpfn,
		"simulation filename", "SimFn", o.SimFn,
		"particles", "Ids", io.Sf("%v", o.Ids),
		"keys", "Keys", io.Sf("%v", o.Keys),
		"figure key", "FigKey", o.FigKey,
	)
	return
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data file
	var in Input
	in.inpfn, _ = io.ArgToFilename(0, "data/post", ".inp", true)

	// read and parse input data
	b := io.ReadFile(in.inpfn)
	err := json.Unmarshal(b, &in)
	if err != nil {
		io.PfRed("cannot parse %s\n", in.inpfn)
		return
	}
	in.PostProcess()

	// print input table
	io.Pf("%v\n", in)

	// load results
	err = out.Start(in.SimFn)
	if err != nil {
		io.PfRed("cannot load results:\n%v\n", err)
		return
	}
	io.Pf("> %d steps; %d outputs; %d of %d bonds broken\n", out.Sum.Nsteps, len(out.Sum.OutTimes), out.Sum.Nbroken, out.Sum.Nbonds)

	// control module
	if out.Hist != nil {
		err = out.PlotControl(out.Sim.DirOut, in.FigKey, out.Hist)
		if err != nil {
			io.PfRed("cannot plot control history:\n%v\n", err)
			return
		}
	}

	// particles
	if len(in.Ids) == 0 {
		return
	}
	out.Splots, out.Csplot = nil, nil
	for _, key := range in.Keys {
		out.Splot(key, "")
		for _, id := range in.Ids {
			vals, err := out.ParticleSeries(id, key)
			if err != nil {
				io.PfRed("cannot read particle results:\n%v\n", err)
				return
			}
			l := io.Sf("%s: particle %d", key, id)
			err = out.Plot(out.Sum.OutTimes, vals, l, &plt.A{M: ".", L: l})
			if err != nil {
				io.PfRed("cannot plot:\n%v\n", err)
				return
			}
		}
	}
	out.Draw(out.Sim.DirOut, "particles-"+in.FigKey, -1, 1)
}
