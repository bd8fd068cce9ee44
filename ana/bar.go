// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
)

// ElasticBar computes the response of an elastic bond between two particles, modelled as a bar
// with cross-section equal to the contact area of the smallest particle
//
//     (R1) o==========o (R2)      A  = π min(R1,R2)²
//          |<-- d0 -->|           kn = E A / d0      Fn = kn δ
//                                 kt = kn / (2 (1 + ν))
type ElasticBar struct {
	E  float64 // Young's modulus
	ν  float64 // Poisson's coefficient
	R1 float64 // radius of first particle
	R2 float64 // radius of second particle
	D0 float64 // initial distance between centres

	// derived
	A  float64 // cross-sectional area
	Kn float64 // axial stiffness
	Kt float64 // shear stiffness
}

// Init initialises this structure
func (o *ElasticBar) Init(prms dbf.Params) {

	// default values
	o.E = 1e9
	o.ν = 0.25
	o.R1, o.R2 = 1, 1
	o.D0 = 2

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		case "R1":
			o.R1 = p.V
		case "R2":
			o.R2 = p.V
		case "d0":
			o.D0 = p.V
		}
	}

	// derived
	r := math.Min(o.R1, o.R2)
	o.A = math.Pi * r * r
	o.Kn = o.E * o.A / o.D0
	o.Kt = o.Kn / (2.0 * (1.0 + o.ν))
}

// Force computes the normal force for an indentation δ measured from the initial configuration
func (o ElasticBar) Force(δ float64) float64 {
	return o.Kn * δ
}

// Stress computes the normal stress for an indentation δ
func (o ElasticBar) Stress(δ float64) float64 {
	return o.Force(δ) / o.A
}
