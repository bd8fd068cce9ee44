// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dem

import (
	"math"
	"runtime"
	"sync"

	"github.com/cpmech/godem/ctrl"
	"github.com/cpmech/godem/ele"
	"github.com/cpmech/godem/inp"
	"github.com/cpmech/godem/mdl/contact"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/spatial/r3"
)

// Domain holds all particles and rigid faces of a simulation
type Domain struct {

	// init
	Sim      *inp.Simulation // simulation data
	Info     *ele.StepInfo   // data of current time step
	Nworkers int             // number of goroutines in parallel loops
	ShowMsg  bool            // show messages
	Gravity  r3.Vec          // gravity acceleration

	// particles and faces
	Particles []*ele.Particle    // all particles
	Ids       ele.Particles      // maps ids to particles
	Walls     []*ele.Wall        // all rigid faces
	Bonds     []*ele.BondElement // bond elements; if contactmesh or meanarea is on
	Top       []ctrl.Facet       // particles on the controlled face
	Search    *Searcher          // neighbour search
	searched  bool               // initial search was performed
}

// NewDomain returns a new domain with particles and faces allocated from input data
func NewDomain(sim *inp.Simulation, verbose bool) (o *Domain, err error) {

	// new domain
	o = new(Domain)
	o.Sim = sim
	o.Info = ele.NewStepInfo(&sim.Data)
	o.ShowMsg = verbose
	o.Nworkers = sim.Data.Nworkers
	if o.Nworkers < 1 {
		o.Nworkers = runtime.NumCPU()
	}
	if len(sim.Data.Gravity) > 0 {
		o.Gravity, err = ele.ToVec(sim.Data.Gravity)
		if err != nil {
			return nil, chk.Err("gravity vector is invalid:\n%v", err)
		}
	}
	o.Search = NewSearcher(sim.Data.SearchTol)

	// particles
	o.Ids = make(ele.Particles)
	for _, dat := range sim.Particles {
		mat, err := sim.GetParticleMat(dat)
		if err != nil {
			return nil, err
		}
		p, err := ele.New(dat, mat)
		if err != nil {
			return nil, err
		}
		if _, ok := o.Ids[p.Id]; ok {
			return nil, chk.Err("particle id %d is repeated", p.Id)
		}
		o.Particles = append(o.Particles, p)
		o.Ids[p.Id] = p
		if p.Top {
			o.Top = append(o.Top, p)
		}
	}

	// faces
	for _, dat := range sim.Walls {
		mat, err := sim.GetWallMat(dat)
		if err != nil {
			return nil, err
		}
		w, err := ele.NewWall(dat, mat)
		if err != nil {
			return nil, err
		}
		o.Walls = append(o.Walls, w)
	}
	if o.ShowMsg {
		io.Pf("> Domain: %d particles and %d walls allocated\n", len(o.Particles), len(o.Walls))
	}
	return
}

// CriticalTimeStep returns the minimum critical time step among all particles
func (o *Domain) CriticalTimeStep() (Δt float64, err error) {
	Δt = math.Inf(1)
	for _, p := range o.Particles {
		dt, err := p.CriticalTimeStep(o.Info.Rotation, o.Info.VirtMass, o.Info.MassCoef)
		if err != nil {
			return 0, chk.Err("cannot compute critical time step of particle %d:\n%v", p.Id, err)
		}
		Δt = math.Min(Δt, dt)
	}
	if math.IsInf(Δt, 1) {
		return 0, chk.Err("cannot compute critical time step without particles")
	}
	return
}

// UpdateNeighbours runs the neighbour search. The first call establishes the initial bonds,
// creates the continuum laws and computes the contact areas; the following ones reconcile
func (o *Domain) UpdateNeighbours() (err error) {

	// search
	o.Search.Build(o.Particles)
	raws := make([][]int, len(o.Particles))
	faces := make([][]*ele.Wall, len(o.Particles))
	o.forEach(func(k int, p *ele.Particle) error {
		raws[k] = o.Search.Neighbours(p)
		faces[k] = o.Search.Faces(p, o.Walls)
		return nil
	})

	// rebuild
	if o.searched {
		o.forEach(func(k int, p *ele.Particle) error {
			p.ReconcileNeighbors(raws[k], o.Ids)
			p.ReconcileWalls(faces[k])
			return nil
		})
		return
	}

	// initial bonds
	err = o.forEach(func(k int, p *ele.Particle) error {
		p.EstablishInitialBonds(raws[k], o.Ids)
		p.EstablishInitialWalls(faces[k])
		return p.CreateContinuumLaws()
	})
	if err != nil {
		return
	}
	o.searched = true

	// bond elements
	if o.Sim.Data.MeanArea || o.Info.ContactMesh {
		o.Bonds = ele.LinkBondElements(o.Particles, o.Ids)
	}

	// contact areas
	if o.Sim.Data.MeanArea {
		o.MeanContactArea()
	} else {
		o.forEach(func(k int, p *ele.Particle) error {
			p.ContactAreaWeighting(o.Ids)
			return nil
		})
	}
	if o.ShowMsg {
		io.Pf("> Domain: %d bonds established\n", o.NumBonds())
	}
	return
}

// MeanContactArea runs the two phases of the mean area protocol
func (o *Domain) MeanContactArea() {
	o.forEach(func(k int, p *ele.Particle) error {
		p.CalculateMeanContactArea(o.Info.Distr, true, o.Ids)
		return nil
	})
	for _, b := range o.Bonds {
		b.ReduceMeanArea()
	}
	o.forEach(func(k int, p *ele.Particle) error {
		p.CalculateMeanContactArea(o.Info.Distr, false, o.Ids)
		return nil
	})
}

// ComputeForces resets the accumulators and computes contact forces and stresses
func (o *Domain) ComputeForces() {
	o.forEach(func(k int, p *ele.Particle) error {
		p.InitializeStep()
		p.ComputeContactForces(o.Ids, o.Info)
		p.ComputeWallForces(o.Info)
		if o.Info.Stress {
			p.FinalizeStress()
		}
		return nil
	})
}

// Move integrates the motion of free particles. Particles on the controlled face move with
// the imposed velocity v
func (o *Domain) Move(v float64) {
	o.forEach(func(k int, p *ele.Particle) error {
		if p.Top {
			p.Drive(v, o.Info)
			return nil
		}
		p.Move(o.Gravity, o.Info)
		return nil
	})
}

// FinalizeStep updates masses and inertias
func (o *Domain) FinalizeStep() {
	o.forEach(func(k int, p *ele.Particle) error {
		p.FinalizeStep(o.Info)
		return nil
	})
}

// NumBonds returns the number of continuum bonds
func (o *Domain) NumBonds() (n int) {
	for _, p := range o.Particles {
		for i := 0; i < p.NcontIni; i++ {
			if p.Id < p.IniIds[i] {
				n++
			}
		}
	}
	return
}

// NumBroken returns the number of failed continuum bonds
func (o *Domain) NumBroken() (n int) {
	for _, p := range o.Particles {
		for i := 0; i < p.NcontIni; i++ {
			if p.Id < p.IniIds[i] && p.FailureId(i) != contact.Intact {
				n++
			}
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// forEach runs fcn for all particles using chunks handled by Nworkers goroutines.
// Returns the first error found in the chunks
func (o *Domain) forEach(fcn func(k int, p *ele.Particle) error) error {
	n := len(o.Particles)
	if n == 0 {
		return nil
	}
	nw := o.Nworkers
	if nw < 1 {
		nw = 1
	}
	if nw > n {
		nw = n
	}
	size := (n + nw - 1) / nw
	errs := make([]error, nw)
	var wg sync.WaitGroup
	for w := 0; w < nw; w++ {
		start, end := w*size, (w+1)*size
		if start >= n {
			break
		}
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			for k := start; k < end; k++ {
				if err := fcn(k, o.Particles[k]); err != nil {
					errs[w] = err
					return
				}
			}
		}(w, start, end)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
