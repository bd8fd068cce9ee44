// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/godem/inp"

// StepInfo holds process-wide data of the current time step.
// Elements read it; only the driver modifies it.
type StepInfo struct {

	// current state
	T    float64 // current time
	Dt   float64 // current time increment
	Step int     // time step index; 0 is the first step

	// options
	Rotation    bool    // [from Sim] particles rotate
	RollFr      bool    // [from Sim] rolling friction
	Stress      bool    // [from Sim] compute stress tensors
	VirtMass    bool    // [from Sim] virtual mass option
	MassCoef    float64 // [from Sim] virtual mass coefficient
	ContactMesh bool    // [from Sim] export bond elements
	Distr       bool    // [from Sim] particles belong to different partitions
}

// NewStepInfo returns a new StepInfo with the options of a simulation
func NewStepInfo(dat *inp.Data) (o *StepInfo) {
	o = new(StepInfo)
	o.Rotation = dat.Rotation
	o.RollFr = dat.RollFr
	o.Stress = dat.Stress
	o.VirtMass = dat.VirtMass
	o.MassCoef = dat.MassCoef
	o.ContactMesh = dat.ContactMesh
	o.Distr = dat.Distr
	return
}

// Reset clears the time stepping data
func (o *StepInfo) Reset() {
	o.T = 0
	o.Dt = 0
	o.Step = 0
}
