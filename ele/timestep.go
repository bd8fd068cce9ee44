// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r3"
)

// CriticalTimeStep returns the estimate of the critical time step of this particle
//  Δt = 0.34 sqrt(m / (E π r))   halved if particles rotate
func (o *Particle) CriticalTimeStep(rotation, virtMass bool, coef float64) (Δt float64, err error) {
	if coef >= 1 {
		return 0, chk.Err("virtual mass coefficient must be smaller than 1. coef=%g is invalid", coef)
	}
	m := o.Mass
	if virtMass {
		m /= 1.0 - coef
	}
	Δt = 0.34 * math.Sqrt(m/(o.Young*math.Pi*o.Radius))
	if rotation {
		Δt *= 0.5
	}
	return
}

// Move updates velocities and positions of a free particle (symplectic Euler)
func (o *Particle) Move(g r3.Vec, info *StepInfo) {
	if o.Fixed {
		o.V, o.W, o.DeltaDisp = r3.Vec{}, r3.Vec{}, r3.Vec{}
		return
	}
	m, I := o.Mass, o.Inertia
	if info.VirtMass {
		m /= 1.0 - info.MassCoef
		I /= 1.0 - info.MassCoef
	}
	F := r3.Add(o.ContactForce, r3.Scale(o.Mass, g))
	o.V = r3.Add(o.V, r3.Scale(info.Dt/m, F))
	o.DeltaDisp = r3.Scale(info.Dt, o.V)
	o.X = r3.Add(o.X, o.DeltaDisp)
	if info.Rotation && I > 0 {
		M := r3.Add(o.ContactMoment, o.RollingMoment)
		o.W = r3.Add(o.W, r3.Scale(info.Dt/I, M))
	}
}

// Drive imposes the vertical velocity v on this particle
func (o *Particle) Drive(v float64, info *StepInfo) {
	o.V = r3.Vec{Z: v}
	o.W = r3.Vec{}
	o.DeltaDisp = r3.Scale(info.Dt, o.V)
	o.X = r3.Add(o.X, o.DeltaDisp)
}
