// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {

	// global information
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/godem
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" "json"

	// options
	Rotation    bool      `json:"rotation"`    // particles rotate
	RollFr      bool      `json:"rollfr"`      // rolling friction
	Stress      bool      `json:"stress"`      // compute stress tensors
	VirtMass    bool      `json:"virtmass"`    // virtual mass option
	MassCoef    float64   `json:"masscoef"`    // virtual mass coefficient; must be < 1
	ContactMesh bool      `json:"contactmesh"` // export bond elements
	MeanArea    bool      `json:"meanarea"`    // use the two-phase mean contact area instead of area weighting
	Distr       bool      `json:"distr"`       // particles belong to partitions (see ParticleData.Part)
	Gravity     []float64 `json:"gravity"`     // gravity acceleration vector

	// neighbour search
	SearchTol float64 `json:"searchtol"` // relative tolerance: neighbours if d ≤ (R1+R2)(1+tol)
	Nsearch   int     `json:"nsearch"`   // number of steps between neighbour searches
	Nworkers  int     `json:"nworkers"`  // number of goroutines in parallel loops; 0 means number of CPUs
}

// TimeControl holds data for defining the simulation time stepping
type TimeControl struct {
	Tf    float64 `json:"tf"`    // final time
	Dt    float64 `json:"dt"`    // time step size; 0 means use critical time step
	DtOut float64 `json:"dtout"` // time step size for output
	DtFac float64 `json:"dtfac"` // factor multiplying the critical time step
}

// ParticleData holds particle data
type ParticleData struct {
	Id    int       `json:"id"`    // unique identifier
	X     []float64 `json:"x"`     // coordinates of centre
	R     float64   `json:"r"`     // radius
	V     []float64 `json:"v"`     // initial velocity
	W     []float64 `json:"w"`     // initial angular velocity
	Group int       `json:"grp"`   // continuum group; 0 means none
	Skin  bool      `json:"skin"`  // skin particle
	Part  int       `json:"part"`  // partition
	Mat   string    `json:"mat"`   // material name
	Fixed bool      `json:"fixed"` // particle does not move
	Top   bool      `json:"top"`   // particle is driven by the control module and belongs to the controlled face
}

// WallData holds data of rigid faces
type WallData struct {
	Id  int       `json:"id"`  // unique identifier
	X   []float64 `json:"x"`   // point on face
	N   []float64 `json:"n"`   // unit normal pointing towards the particles
	Mat string    `json:"mat"` // material name
}

// ControlData holds data for the multiaxial control module
type ControlData struct {
	Fcn       string  `json:"fcn"`       // name of target stress function (from functions database). empty means no control
	V0        float64 `json:"v0"`        // initial velocity
	Vlim      float64 `json:"vlim"`      // limit velocity
	VelFactor float64 `json:"velfactor"` // factor multiplying velocity increments
	L         float64 `json:"L"`         // compression length
	E         float64 `json:"E"`         // Young's modulus to estimate the initial stiffness E/L
	Tstart    float64 `json:"tstart"`    // start time
	Tol       float64 `json:"tol"`       // stress increment tolerance
	FixStiff  bool    `json:"fixstiff"`  // do not update stiffness
	Tavg      float64 `json:"tavg"`      // averaging time of the reaction stress
	Alternate bool    `json:"alternate"` // alternate axis loading
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data            `json:"data"`      // stores global simulation data
	Functions FuncsData       `json:"functions"` // stores all functions
	PlotF     *PlotFdata      `json:"plotf"`     // plot functions
	Time      TimeControl     `json:"time"`      // time control
	Particles []*ParticleData `json:"particles"` // all particles
	Walls     []*WallData     `json:"walls"`     // all rigid faces
	Control   ControlData     `json:"control"`   // control module

	// derived
	DirOut    string // directory to save results
	Key       string // simulation key; e.g. mysim01.sim => mysim01
	EncType   string // encoder type
	MatModels *MatDb // materials and models
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string, erasePrev, createDirOut bool) (o *Simulation, err error) {

	// new sim
	o = new(Simulation)

	// read file
	b, err := readFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// set default values
	o.Data.SetDefault()
	o.Time.SetDefault()
	o.Control.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	o.Key = io.FnKey(filepath.Base(simfilepath))

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/godem/" + o.Key
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			return nil, chk.Err("cannot create directory for output results (%s):\n%v", o.DirOut, err)
		}
	}

	// erase previous simulation results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, o.Key))
	}

	// read materials database
	o.MatModels, err = ReadMat(dir, o.Data.Matfile)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read materials file:\n%v", err)
	}

	// check
	err = o.check()
	return
}

// GetParticleMat returns the material of a particle
func (o *Simulation) GetParticleMat(p *ParticleData) (mat *Material, err error) {
	mat, ok := o.MatModels.Particles[p.Mat]
	if !ok {
		return nil, chk.Err("cannot find particle material named %q (particle %d)", p.Mat, p.Id)
	}
	return
}

// GetWallMat returns the material of a wall
func (o *Simulation) GetWallMat(w *WallData) (mat *Material, err error) {
	mat, ok := o.MatModels.Walls[w.Mat]
	if !ok {
		return nil, chk.Err("cannot find wall material named %q (wall %d)", w.Mat, w.Id)
	}
	return
}

// extra settings //////////////////////////////////////////////////////////////////////////////////

// SetDefault sets defaults values
func (o *Data) SetDefault() {
	o.Encoder = "gob"
	o.SearchTol = 0.05
	o.Nsearch = 10
}

// SetDefault sets defaults values
func (o *TimeControl) SetDefault() {
	o.Tf = 1
	o.DtFac = 0.5
}

// SetDefault sets defaults values
func (o *ControlData) SetDefault() {
	o.VelFactor = 1
	o.Tol = 1e-3
	o.Tavg = 1e-5
}

// check checks consistency of input data
func (o *Simulation) check() (err error) {

	// virtual mass
	if o.Data.MassCoef >= 1 {
		return chk.Err("virtual mass coefficient must be smaller than 1. masscoef=%g is invalid", o.Data.MassCoef)
	}

	// time control
	if o.Time.Dt < 0 || o.Time.Tf <= 0 {
		return chk.Err("invalid time control: {dt=%g, tf=%g}; dt must be non-negative and tf positive", o.Time.Dt, o.Time.Tf)
	}
	if o.Time.DtOut <= 0 {
		o.Time.DtOut = o.Time.Tf
	}

	// particles
	ids := make(map[int]bool)
	for _, p := range o.Particles {
		if ids[p.Id] {
			return chk.Err("particle id %d is repeated", p.Id)
		}
		ids[p.Id] = true
		if len(p.X) != 3 {
			return chk.Err("particle %d: coordinates must have 3 components", p.Id)
		}
		if p.R <= 0 || math.IsNaN(p.R) {
			return chk.Err("particle %d: radius=%g must be positive", p.Id, p.R)
		}
		if _, err = o.GetParticleMat(p); err != nil {
			return
		}
	}

	// walls
	for _, w := range o.Walls {
		if len(w.X) != 3 || len(w.N) != 3 {
			return chk.Err("wall %d: point and normal must have 3 components", w.Id)
		}
		if _, err = o.GetWallMat(w); err != nil {
			return
		}
	}

	// control module
	if o.Control.Fcn != "" {
		if o.Control.L <= 0 {
			return chk.Err("control module: compression length L=%g must be positive", o.Control.L)
		}
		if o.Control.E <= 0 || o.Control.Vlim <= 0 {
			return chk.Err("control module: E=%g and vlim=%g must be positive", o.Control.E, o.Control.Vlim)
		}
		if _, err = o.Functions.Get(o.Control.Fcn); err != nil {
			return
		}
	}
	return
}
