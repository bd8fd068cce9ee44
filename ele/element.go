// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements spherical particles bonded by continuum laws
package ele

import (
	"math"

	"github.com/cpmech/godem/mdl/contact"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// NoNeighbour marks the slot of an initial neighbour that was not found by the last search
const NoNeighbour = -1

// Finder resolves particles by their ids
type Finder interface {
	Find(id int) (p *Particle, ok bool) // returns ok=false if the particle does not exist anymore
}

// Particles implements Finder with a map: id => particle
type Particles map[int]*Particle

// Find returns the particle with given id
func (o Particles) Find(id int) (p *Particle, ok bool) {
	p, ok = o[id]
	return p, ok && p != nil
}

// Particle implements a spherical particle that may be bonded to its initial neighbours
//  Note: the neighbour arrays are indexed by slot. Slots [0, NcontIni) hold continuum bonds,
//        slots [NcontIni, len(IniIds)) hold initial discontinuum neighbours and the remaining
//        slots hold neighbours that appeared after the initial search
type Particle struct {

	// essential
	Id        int     // identifier
	Group     int     // continuum group; 0 means none
	Skin      bool    // particle is on the boundary of the body
	Partition int     // partition index
	Fixed     bool    // particle does not move
	Top       bool    // particle belongs to the controlled face
	Radius    float64 // radius
	Young     float64 // Young's modulus
	Poisson   float64 // Poisson's coefficient
	Density   float64 // density
	RollFr    float64 // rolling friction coefficient
	Mass      float64 // mass
	Inertia   float64 // moment of inertia

	// kinematics
	X         r3.Vec // position of centre
	V         r3.Vec // velocity
	W         r3.Vec // angular velocity
	DeltaDisp r3.Vec // displacement increment of the last step

	// laws
	Proto contact.Continuum    // prototype of continuum law
	Disc  contact.Discontinuum // discontinuum law
	Laws  []contact.Continuum  // [NcontIni] one clone per continuum bond

	// neighbours
	Neighs   []int          // [nslots] neighbour ids; NoNeighbour marks missing initial neighbours
	ElasticF []r3.Vec       // [nslots] elastic contact force of each neighbour (global)
	TotalF   []r3.Vec       // [nslots] total contact force of each neighbour (global)
	IniIds   []int          // [nini] ids of initial neighbours; continuum first
	IniDelta []float64      // [nini] initial deltas = radius_sum - distance
	NcontIni int            // number of continuum initial neighbours
	Areas    []float64      // [NcontIni] contact areas
	Bonds    []*BondElement // [NcontIni] bond elements; shared with the neighbour. may be nil
	iniIndex map[int]int    // id => slot of initial neighbour

	// rigid faces
	Walls        []*Wall   // [nwalls] faces currently in contact
	WallIniIds   []int     // [nwallsini] ids of initial faces
	WallIniDelta []float64 // [nwallsini] initial deltas = R - dist
	WallMap      []int     // [nwalls] index of initial face; -1 means none
	WallDelta    []float64 // [nwalls] deltas of current faces
	WallElasticF []r3.Vec  // [nwalls] elastic forces of faces
	WallTotalF   []r3.Vec  // [nwalls] total forces of faces

	// accumulated during each step
	ElasticForce  r3.Vec        // sum of elastic contact forces
	ContactForce  r3.Vec        // sum of total contact forces
	ContactMoment r3.Vec        // sum of contact moments
	RollingMoment r3.Vec        // rolling resistance
	Stress        *mat.SymDense // Σ sym(branch ⊗ force); stress after FinalizeStress
	RepVolume     float64       // representative volume
}

// NewParticle returns a new particle with its mass and inertia computed from the sphere
func NewParticle(id int, x r3.Vec, radius, young, poisson, density float64) (o *Particle) {
	o = new(Particle)
	o.Id = id
	o.X = x
	o.Radius = radius
	o.Young = young
	o.Poisson = poisson
	o.Density = density
	o.Mass = o.SphereVolume() * density
	o.Inertia = o.momentOfInertia()
	o.Stress = mat.NewSymDense(3, nil)
	o.iniIndex = make(map[int]int)
	return
}

// SphereVolume returns the volume of the sphere
func (o *Particle) SphereVolume() float64 {
	return 4.0 * math.Pi * o.Radius * o.Radius * o.Radius / 3.0
}

// FailureId returns the failure mode of the continuum bond at slot i
func (o *Particle) FailureId(i int) int {
	if i < 0 || i >= len(o.Laws) {
		return contact.Intact
	}
	return o.Laws[i].State().FailureId
}

// NumBroken returns the number of failed continuum bonds
func (o *Particle) NumBroken() (n int) {
	for i := range o.Laws {
		if o.FailureId(i) != contact.Intact {
			n++
		}
	}
	return
}

// InitializeStep clears the accumulators
func (o *Particle) InitializeStep() {
	o.ElasticForce = r3.Vec{}
	o.ContactForce = r3.Vec{}
	o.ContactMoment = r3.Vec{}
	o.RollingMoment = r3.Vec{}
	o.RepVolume = 0
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			o.Stress.SetSym(i, j, 0)
		}
	}
}

// FinalizeStress divides the accumulated sum by the volume of the particle
func (o *Particle) FinalizeStress() {
	vol := o.volume()
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			o.Stress.SetSym(i, j, o.Stress.At(i, j)/vol)
		}
	}
}

// FinalizeStep updates mass and inertia with the representative volume
func (o *Particle) FinalizeStep(info *StepInfo) {
	o.Mass = o.volume() * o.Density
	if info.Rotation {
		o.Inertia = o.momentOfInertia()
	}
}

// FaceArea returns the area projected onto the controlled face
func (o *Particle) FaceArea() float64 {
	return math.Pi * o.Radius * o.Radius
}

// FaceReaction returns the normal reaction transmitted to the controlled face
func (o *Particle) FaceReaction() float64 {
	return o.Stress.At(2, 2) * o.FaceArea()
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// volume returns the representative volume if the particle is enclosed by at least 4 bonds;
// otherwise the volume of the sphere
func (o *Particle) volume() float64 {
	if o.NcontIni >= 4 && o.RepVolume > 0 {
		return o.RepVolume
	}
	return o.SphereVolume()
}

// momentOfInertia returns the moment of inertia of the sphere
func (o *Particle) momentOfInertia() float64 {
	return 0.4 * o.Mass * o.Radius * o.Radius
}

// resetNeighbours allocates the arrays of neighbours
func (o *Particle) resetNeighbours(neighs []int) {
	o.Neighs = neighs
	o.ElasticF = make([]r3.Vec, len(neighs))
	o.TotalF = make([]r3.Vec, len(neighs))
}

// copyInts returns a copy of a
func copyInts(a []int) []int {
	b := utl.IntVals(len(a), 0)
	copy(b, a)
	return b
}
