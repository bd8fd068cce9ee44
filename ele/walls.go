// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/cpmech/godem/mdl/contact"
	"gonum.org/v1/gonum/spatial/r3"
)

// Wall implements a rigid planar face
type Wall struct {
	Id      int     // identifier
	X       r3.Vec  // point on face
	N       r3.Vec  // unit normal pointing towards the particles
	Young   float64 // Young's modulus
	Poisson float64 // Poisson's coefficient
}

// Distance returns the signed distance from x to the face
func (o *Wall) Distance(x r3.Vec) float64 {
	return r3.Dot(r3.Sub(x, o.X), o.N)
}

// EstablishInitialWalls records the faces near this particle at the beginning of the simulation
//  Note: initial deltas are R - dist, clamped to zero for faces that do not touch the particle
func (o *Particle) EstablishInitialWalls(faces []*Wall) {
	o.WallIniIds = make([]int, len(faces))
	o.WallIniDelta = make([]float64, len(faces))
	for i, w := range faces {
		o.WallIniIds[i] = w.Id
		o.WallIniDelta[i] = math.Max(-(w.Distance(o.X) - o.Radius), 0)
	}
	o.ReconcileWalls(faces)
}

// ReconcileWalls rebuilds the list of faces in contact. The enumeration of faces is not stable,
// thus each face is mapped to its initial index (or -1) and force histories are carried by id
func (o *Particle) ReconcileWalls(faces []*Wall) {

	// previous histories
	oldE := make(map[int]r3.Vec, len(o.Walls))
	oldT := make(map[int]r3.Vec, len(o.Walls))
	for j, w := range o.Walls {
		oldE[w.Id] = o.WallElasticF[j]
		oldT[w.Id] = o.WallTotalF[j]
	}

	// map to initial faces
	var walls []*Wall
	var wmap []int
	var deltas []float64
	for _, w := range faces {
		k, delta := -1, 0.0
		for m, id := range o.WallIniIds {
			if id == w.Id {
				k, delta = m, o.WallIniDelta[m]
				break
			}
		}
		if o.Radius-w.Distance(o.X)-delta <= 0 {
			continue
		}
		walls = append(walls, w)
		wmap = append(wmap, k)
		deltas = append(deltas, delta)
	}
	o.Walls, o.WallMap, o.WallDelta = walls, wmap, deltas

	// carry histories
	o.WallElasticF = make([]r3.Vec, len(o.Walls))
	o.WallTotalF = make([]r3.Vec, len(o.Walls))
	for j, w := range o.Walls {
		o.WallElasticF[j] = oldE[w.Id]
		o.WallTotalF[j] = oldT[w.Id]
	}
}

// ComputeWallForces computes the forces of the faces in contact with the discontinuum law
func (o *Particle) ComputeWallForces(info *StepInfo) {
	for j, w := range o.Walls {
		dist := w.Distance(o.X)
		indent := o.Radius - dist - o.WallDelta[j]
		if indent <= 0 {
			o.WallElasticF[j] = r3.Vec{}
			o.WallTotalF[j] = r3.Vec{}
			continue
		}

		// kinematics
		n := w.N
		arm := r3.Scale(-o.Radius, n)
		Δu := o.DeltaDisp
		vrel := o.V
		if info.Rotation {
			vrot := r3.Cross(o.W, arm)
			vrel = r3.Add(vrel, vrot)
			Δu = r3.Add(Δu, r3.Scale(info.Dt, vrot))
		}
		fr := contact.NewFrame(n)
		Δul := fr.ToLocal(Δu)
		F := fr.ToLocal(o.WallElasticF[j])
		var Fd [3]float64
		p := &contact.Pair{
			R1:         o.Radius,
			M1:         o.Mass,
			E:          contact.EquivYoung(o.Young, w.Young),
			Nu:         contact.EquivPoisson(o.Poisson, w.Poisson),
			Dist:       dist,
			Indent:     indent,
			PrevIndent: indent + Δul[2],
		}
		p.SetLocal(Δul, fr.ToLocal(vrel))
		cohesive, _ := o.Disc.Forces(F[:], Fd[:], p)

		// global forces
		Fe := fr.ToGlobal(F[:])
		Ft := r3.Sub(r3.Add(Fe, fr.ToGlobal(Fd[:])), r3.Scale(cohesive, n))
		o.WallElasticF[j] = Fe
		o.WallTotalF[j] = Ft
		o.ElasticForce = r3.Add(o.ElasticForce, Fe)
		o.ContactForce = r3.Add(o.ContactForce, Ft)
		if info.Rotation {
			o.ContactMoment = r3.Add(o.ContactMoment, r3.Cross(r3.Scale(-(o.Radius-indent), n), Ft))
		}
	}
}
