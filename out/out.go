// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements DEM simulation output handling for analyses and plotting
package out

import (
	"github.com/cpmech/godem/ele"
	"github.com/cpmech/godem/inp"
	"github.com/cpmech/gosl/chk"
)

// Global variables
var (

	// options
	Verbose bool // show messages when writing files

	// data set by Start
	Sim  *inp.Simulation // simulation data
	Sum  *Summary        // summary of previous simulation
	Hist *History        // control history; nil if there is no control module

	// subplots
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
)

// Start starts handling of results given a simulation input file
func Start(simfnpath string) (err error) {

	// input data
	Sim, err = inp.ReadSim(simfnpath, false, false)
	if err != nil {
		return
	}

	// summary
	Sum, err = ReadSummary(Sim.DirOut, Sim.Key, Sim.EncType)
	if err != nil {
		return
	}

	// control history
	Hist = nil
	if Sim.Control.Fcn != "" {
		Hist, err = ReadHistory(Sim.DirOut, Sim.Key)
		if err != nil {
			return
		}
	}

	// clear previous data
	Splots = make([]*SplotDat, 0)
	Csplot = nil
	return
}

// ParticleSeries returns the values of key for particle id at all output times
//  key -- "x", "y", "z", "vx", "vy", "vz", "sx", "sy", "sz", "sxy", "syz", "szx", "mass" or "nbroken"
func ParticleSeries(id int, key string) (vals []float64, err error) {
	if Sum == nil {
		return nil, chk.Err("summary must be loaded with Start before reading results")
	}
	vals = make([]float64, len(Sum.OutTimes))
	for tidx := range Sum.OutTimes {
		states, err := ReadStates(Sum.Dirout, Sum.Fnkey, Sum.EncType, tidx)
		if err != nil {
			return nil, err
		}
		s := findState(states, id)
		if s == nil {
			return nil, chk.Err("cannot find particle %d in output %d", id, tidx)
		}
		vals[tidx], err = stateValue(s, key)
		if err != nil {
			return nil, err
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func findState(states []*ele.State, id int) *ele.State {
	for _, s := range states {
		if s.Id == id {
			return s
		}
	}
	return nil
}

func stateValue(s *ele.State, key string) (float64, error) {
	switch key {
	case "x":
		return s.X[0], nil
	case "y":
		return s.X[1], nil
	case "z":
		return s.X[2], nil
	case "vx":
		return s.V[0], nil
	case "vy":
		return s.V[1], nil
	case "vz":
		return s.V[2], nil
	case "sx":
		return s.Sig[0], nil
	case "sy":
		return s.Sig[1], nil
	case "sz":
		return s.Sig[2], nil
	case "sxy":
		return s.Sig[3], nil
	case "syz":
		return s.Sig[4], nil
	case "szx":
		return s.Sig[5], nil
	case "mass":
		return s.Mass, nil
	case "nbroken":
		return float64(s.Nbroken), nil
	}
	return 0, chk.Err("particle state has no value named %q", key)
}
