// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/cpmech/godem/mdl/contact"
	"gonum.org/v1/gonum/spatial/r3"
)

// ComputeContactForces computes the forces, moments and stress contributions of all neighbours.
// It writes only into this particle (and into the bond elements it owns)
//  Note: the accumulators must be reset by InitializeStep before calling this function
func (o *Particle) ComputeContactForces(finder Finder, info *StepInfo) {
	for i, id := range o.Neighs {
		if id == NoNeighbour {
			continue
		}
		other, ok := finder.Find(id)
		if !ok || other == o {
			continue
		}
		o.contactForce(i, other, info)
	}
	if info.Rotation && info.RollFr {
		o.limitRollingMoment(info.Dt)
	}
}

// contactForce computes the interaction with the neighbour at slot i
func (o *Particle) contactForce(i int, other *Particle, info *StepInfo) {

	// geometry
	n, dist, rsum := relKinematics(o, other)
	if dist <= 0 {
		return
	}
	iniDelta := o.IniDeltaOf(i)
	indent := (rsum - iniDelta) - dist
	continuum := i < o.NcontIni

	// previous normal
	nOld := r3.Sub(r3.Sub(o.X, o.DeltaDisp), r3.Sub(other.X, other.DeltaDisp))
	if r3.Norm(nOld) > 0 {
		nOld = r3.Unit(nOld)
	} else {
		nOld = n
	}

	// relative kinematics
	Δu := r3.Sub(o.DeltaDisp, other.DeltaDisp)
	vrel := r3.Sub(o.V, other.V)
	armMe := r3.Scale(-o.Radius, n)
	armOther := r3.Scale(other.Radius, n)
	if info.Rotation {
		vrot := r3.Sub(r3.Cross(o.W, armMe), r3.Cross(other.W, armOther))
		vrel = r3.Add(vrel, vrot)
		Δu = r3.Add(Δu, r3.Scale(info.Dt, vrot))
	}

	// local frame
	fr := contact.NewFrame(n)
	Δul := fr.ToLocal(Δu)
	vl := fr.ToLocal(vrel)
	F := fr.ToLocal(contact.RotateVector(o.ElasticF[i], nOld, n))
	var Fd [3]float64

	// pair
	p := &contact.Pair{
		R1:         o.Radius,
		R2:         other.Radius,
		M1:         o.Mass,
		M2:         other.Mass,
		E:          contact.EquivYoung(o.Young, other.Young),
		Nu:         contact.EquivPoisson(o.Poisson, other.Poisson),
		Dist:       dist,
		IniDist:    rsum - iniDelta,
		Indent:     indent,
		PrevIndent: indent + Δul[2],
	}
	p.SetLocal(Δul, vl)

	// laws
	cohesive := 0.0
	if continuum {
		law := o.Laws[i]
		p.Area = o.Areas[i]
		law.ElasticConstants(p)
		sliding := law.Forces(F[:], p)
		law.ViscousDamping(Fd[:], p, sliding)
	} else {
		if indent <= 0 {
			o.ElasticF[i] = r3.Vec{}
			o.TotalF[i] = r3.Vec{}
			return
		}
		cohesive, _ = o.Disc.Forces(F[:], Fd[:], p)
	}

	// global forces
	Fe := fr.ToGlobal(F[:])
	Ft := r3.Add(Fe, fr.ToGlobal(Fd[:]))
	Ft = r3.Sub(Ft, r3.Scale(cohesive, n))
	o.ElasticF[i] = Fe
	o.TotalF[i] = Ft
	o.ElasticForce = r3.Add(o.ElasticForce, Fe)
	o.ContactForce = r3.Add(o.ContactForce, Ft)

	// moments
	if info.Rotation {
		arm := r3.Scale(-(o.Radius - indent*o.Radius/rsum), n)
		o.ContactMoment = r3.Add(o.ContactMoment, r3.Cross(arm, Ft))
		if continuum && o.Laws[i].State().FailureId == contact.Intact {
			Δθ := r3.Scale(info.Dt, r3.Sub(o.W, other.W))
			o.ContactMoment = r3.Add(o.ContactMoment, o.Laws[i].RotationalMoment(p, Δθ))
		}
		if info.RollFr {
			o.addRollingResistance(F[2])
		}
	}

	// stress: continuum bonds only
	gap := dist - rsum
	if info.Stress && continuum {
		b := r3.Scale(-(o.Radius + gap*o.Radius/rsum), n)
		contact.AddSymOuter(o.Stress, 1, b, Fe)
		o.Laws[i].AddPoisson(o.Stress, p, &fr, F[2], r3.Norm(b))
	}

	// bond element
	if continuum && info.ContactMesh && o.Id < other.Id && o.Bonds[i] != nil {
		o.Bonds[i].CalculateOnContactElements(o.Laws[i].State(), F[:], info.Step)
	}

	// representative volume
	if continuum {
		o.RepVolume += (o.Radius + 0.5*gap) * o.Areas[i] / 3.0
	}
}

// addRollingResistance adds the rolling resistance of one contact with normal force Fn
func (o *Particle) addRollingResistance(Fn float64) {
	w := r3.Norm(o.W)
	if w < 1e-15 || o.RollFr <= 0 {
		return
	}
	m := o.RollFr * math.Abs(Fn) * o.Radius
	o.RollingMoment = r3.Sub(o.RollingMoment, r3.Scale(m/w, o.W))
}

// limitRollingMoment prevents the rolling resistance from reversing the rotation in one step
func (o *Particle) limitRollingMoment(Δt float64) {
	if Δt <= 0 {
		return
	}
	lim := o.Inertia * r3.Norm(o.W) / Δt
	m := r3.Norm(o.RollingMoment)
	if m > lim && m > 0 {
		o.RollingMoment = r3.Scale(lim/m, o.RollingMoment)
	}
}
