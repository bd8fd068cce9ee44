// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dem implements the driver of discrete element simulations with bonded particles
package dem

import (
	"time"

	"github.com/cpmech/godem/ctrl"
	"github.com/cpmech/godem/inp"
	"github.com/cpmech/godem/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for a simulation using the discrete element method
type Main struct {
	Sim     *inp.Simulation // simulation data
	Dom     *Domain         // particles and faces
	Ctrl    *ctrl.Module    // control module; may be nil
	Summary *out.Summary    // summary structure
	Dt      float64         // time step size
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   erasePrev   -- erase previous results files
//   verbose     -- show messages
func NewMain(simfilepath string, erasePrev, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.ShowMsg = verbose

	// read input data
	o.Sim, err = inp.ReadSim(simfilepath, erasePrev, true)
	if err != nil {
		return nil, chk.Err("cannot read simulation input data:\n%v", err)
	}
	if o.ShowMsg {
		io.Pf("> Simulation (.sim) file read\n")
	}

	// domain
	o.Dom, err = NewDomain(o.Sim, verbose)
	if err != nil {
		return nil, chk.Err("cannot allocate domain:\n%v", err)
	}

	// time step size
	o.Dt = o.Sim.Time.Dt
	if o.Dt == 0 {
		dtcrit, err := o.Dom.CriticalTimeStep()
		if err != nil {
			return nil, err
		}
		o.Dt = o.Sim.Time.DtFac * dtcrit
		if o.ShowMsg {
			io.Pf("> Critical time step = %g => Δt = %g\n", dtcrit, o.Dt)
		}
	}

	// control module
	if o.Sim.Control.Fcn != "" {
		target, err := o.Sim.Functions.Get(o.Sim.Control.Fcn)
		if err != nil {
			return nil, chk.Err("cannot get target function of control module:\n%v", err)
		}
		o.Ctrl, err = ctrl.New(&o.Sim.Control, target, o.Dt)
		if err != nil {
			return nil, err
		}
		o.Ctrl.Nworkers = o.Dom.Nworkers
		o.Ctrl.ShowMsg = verbose
		if len(o.Dom.Top) == 0 {
			return nil, chk.Err("control module requires particles on the controlled face (top)")
		}
		o.Dom.Info.Stress = true // reactions are measured with the stresses of top particles
	}

	// summary
	o.Summary = out.NewSummary(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType)
	o.Summary.Dt = o.Dt
	out.Verbose = verbose
	return
}

// Run runs DEM simulation
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// plot functions
	if o.Sim.PlotF != nil {
		err = o.Sim.Functions.PlotAll(o.Sim.PlotF, o.Sim.DirOut, o.Sim.Key)
		if err != nil {
			return
		}
		if o.ShowMsg {
			io.Pf("> Functions plotted\n")
		}
		return
	}

	// message
	if o.ShowMsg {
		io.Pf("> Running DEM solver\n")
	}

	// time loop
	d := o.Dom
	info := d.Info
	info.Reset()
	info.Dt = o.Dt
	tf := o.Sim.Time.Tf
	dtout := o.Sim.Time.DtOut
	tout := dtout
	ε := o.Dt * 1e-8
	nsearch := o.Sim.Data.Nsearch
	if nsearch < 1 {
		nsearch = 1
	}
	for step := 0; info.T < tf-ε; step++ {
		info.Step = step

		// neighbours
		if step%nsearch == 0 {
			err = d.UpdateNeighbours()
			if err != nil {
				return
			}
		}

		// control module
		if o.Ctrl != nil {
			o.Ctrl.ExecuteInitializeSolutionStep(info.T, info.Dt, step, d.Top)
		}

		// forces
		d.ComputeForces()

		// motion
		v := 0.0
		if o.Ctrl != nil {
			v = o.Ctrl.ImposedVelocity()
		}
		d.Move(v)

		// finalize
		if o.Ctrl != nil {
			o.Ctrl.ExecuteFinalizeSolutionStep(info.Dt, d.Top)
		}
		d.FinalizeStep()
		info.T += info.Dt
		o.Summary.Nsteps = step + 1

		// output
		if info.T >= tout-ε || info.T >= tf-ε {
			err = o.SaveResults()
			if err != nil {
				return
			}
			for tout <= info.T+ε {
				tout += dtout
			}
		}
	}
	return
}

// SaveResults saves the states of particles and the bond elements at the current time
func (o *Main) SaveResults() (err error) {
	tidx := o.Summary.Tidx()
	err = out.WriteStates(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, tidx, o.Dom.Particles)
	if err != nil {
		return
	}
	if o.Dom.Info.ContactMesh {
		err = out.WriteBonds(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType, tidx, o.Dom.Bonds)
		if err != nil {
			return
		}
	}
	o.Summary.OutTimes = append(o.Summary.OutTimes, o.Dom.Info.T)
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// onexit prints final message with simulation and cpu times and saves summary and history
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {

	// show final message
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}

	// save summary and history
	if o.Summary != nil && o.Sim.PlotF == nil {
		o.Summary.Nbonds = o.Dom.NumBonds()
		o.Summary.Nbroken = o.Dom.NumBroken()
		err = o.Summary.Save()
		if err == nil && o.Ctrl != nil {
			err = out.NewHistory(o.Ctrl.History).Write(o.Sim.DirOut, o.Sim.Key)
		}
	}

	// skip if previous error is not nil
	if prevErr != nil {
		err = prevErr
	}
	return
}
