// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ctrl implements a multiaxial control module that adjusts the velocity of a boundary
// in order to track a target stress
package ctrl

import (
	"math"

	"github.com/cpmech/godem/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/stat"
)

// states of the control module
const (
	Idle     = 0 // outside the loading window or waiting for the alternating turn
	Applying = 1 // velocity is updated towards the target stress
)

// Record holds the state of the control module at the beginning of one step
type Record struct {
	T         float64 `json:"t"`         // time
	Target    float64 `json:"target"`    // target stress
	Reaction  float64 `json:"reaction"`  // averaged reaction stress
	Velocity  float64 `json:"velocity"`  // imposed velocity
	Stiffness float64 `json:"stiffness"` // estimated stiffness
	Strain    float64 `json:"strain"`    // imposed strain
}

// Module implements the control module for one actuator
//  Note: negative velocities and stresses mean compression
type Module struct {

	// input
	Dat      inp.ControlData // configuration
	Target   inp.TimeFunc    // target stress
	Nworkers int             // number of goroutines used by the reductions
	ShowMsg  bool            // show messages

	// state
	State       int     // Idle or Applying
	Velocity    float64 // velocity of the actuator
	Stiffness   float64 // estimated stiffness
	Strain      float64 // imposed strain
	Reaction    float64 // averaged reaction stress
	ReactionOld float64 // reaction stress when the stiffness was last estimated
	TargetValue float64 // last target stress

	// auxiliary
	buffer  []float64 // ring buffer of reaction stresses
	ibuf    int       // next position in buffer
	trigger int       // step of the next alternating turn

	// output
	History []*Record // one record per step
}

// New returns a new control module
//  dt -- time step size; used to size the averaging buffer
func New(dat *inp.ControlData, target inp.TimeFunc, dt float64) (o *Module, err error) {
	if target == nil {
		return nil, chk.Err("control module requires a target stress function")
	}
	if dat.L <= 0 {
		return nil, chk.Err("control module: compression length L=%g must be positive", dat.L)
	}
	if dt <= 0 {
		return nil, chk.Err("control module: time step size dt=%g must be positive", dt)
	}
	o = new(Module)
	o.Dat = *dat
	o.Target = target
	o.Nworkers = 1
	o.Velocity = dat.V0
	o.Stiffness = dat.E / dat.L
	o.trigger = 3
	n := int(dat.Tavg / dt)
	if n < 1 {
		n = 1
	}
	o.buffer = make([]float64, n)
	return
}

// IsTimeToApply sets the state of the module
//  non-alternating: applying whenever t ≥ tstart
//  alternating:     applying only when the step matches the trigger; the trigger advances by 3
func (o *Module) IsTimeToApply(t float64, step int) bool {
	o.State = Idle
	if t < o.Dat.Tstart {
		return false
	}
	if !o.Dat.Alternate {
		o.State = Applying
		return true
	}
	if step == o.trigger {
		o.State = Applying
		o.trigger += 3
		return true
	}
	return false
}

// UpdateAverage adds a new reaction stress to the sliding window and updates the mean
func (o *Module) UpdateAverage(reaction float64) float64 {
	o.buffer[o.ibuf] = reaction
	o.ibuf = (o.ibuf + 1) % len(o.buffer)
	o.Reaction = stat.Mean(o.buffer, nil)
	return o.Reaction
}

// EstimateStiffness updates the stiffness with |Δσ / (v Δt)|. The previous estimate is kept if
// the velocity is nearly zero or if |Δσ| is below the tolerance
func (o *Module) EstimateStiffness(reaction, dt float64) {
	Δσ := reaction - o.ReactionOld
	if math.Abs(o.Velocity) <= 1e-12 || math.Abs(Δσ) <= o.Dat.Tol {
		return
	}
	o.Stiffness = math.Abs(Δσ / (o.Velocity * dt))
}

// ClampVelocity limits the magnitude of the velocity and keeps its sign
func (o *Module) ClampVelocity() {
	lim := math.Abs(o.Dat.Vlim)
	if math.Abs(o.Velocity) > lim {
		o.Velocity = math.Copysign(lim, o.Velocity)
	}
}

// ImposedVelocity returns the velocity imposed on the boundary; zero when idle
func (o *Module) ImposedVelocity() float64 {
	if o.State == Applying {
		return o.Velocity
	}
	return 0
}

// ExecuteInitializeSolutionStep measures the reaction and updates the velocity of the actuator
func (o *Module) ExecuteInitializeSolutionStep(t, dt float64, step int, facets []Facet) {

	// reaction
	o.UpdateAverage(MeasureReaction(facets, o.Nworkers))

	// velocity
	o.TargetValue = o.Target.F(t+dt, nil)
	if o.IsTimeToApply(t, step) {
		if !o.Dat.Alternate && !o.Dat.FixStiff {
			o.EstimateStiffness(o.Reaction, dt)
		}
		o.ReactionOld = o.Reaction
		df := o.TargetValue - o.Reaction
		dv := -o.Velocity
		if math.Abs(df) >= o.Dat.Tol {
			dv = df/(o.Stiffness*dt) - o.Velocity
		}
		o.Velocity += o.Dat.VelFactor * dv
		o.ClampVelocity()
	}

	// strain
	v := o.ImposedVelocity()
	o.Strain += v * dt / o.Dat.L
	o.History = append(o.History, &Record{t, o.TargetValue, o.Reaction, v, o.Stiffness, o.Strain})
	if o.ShowMsg && o.State == Applying && step%1000 == 0 {
		io.Pf("control: t=%g target=%g reaction=%g v=%g K=%g\n", t, o.TargetValue, o.Reaction, v, o.Stiffness)
	}
}

// ExecuteFinalizeSolutionStep re-estimates the stiffness in alternating mode
func (o *Module) ExecuteFinalizeSolutionStep(dt float64, facets []Facet) {
	if !o.Dat.Alternate || o.Dat.FixStiff || o.State != Applying {
		return
	}
	o.EstimateStiffness(MeasureReaction(facets, o.Nworkers), dt)
}
