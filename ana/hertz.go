// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// HertzSpheres computes the normal force between two elastic spheres pressed against each other
//
//       .-.        .-.
//      /   \      /   \       1/E* = (1-ν1²)/E1 + (1-ν2²)/E2
//     | R1  |<-δ->|  R2 |     R    = R1 R2 / (R1 + R2)
//      \   /      \   /       F    = 4/3 E* sqrt(R) δ^(3/2)
//       `-'        `-'        a    = sqrt(R δ)
//
type HertzSpheres struct {
	E1, E2 float64 // Young's moduli
	ν1, ν2 float64 // Poisson's coefficients
	R1, R2 float64 // radii

	// derived
	Es float64 // effective modulus E*
	R  float64 // effective radius
}

// Init initialises this structure
func (o *HertzSpheres) Init(prms dbf.Params) {

	// default values
	o.E1, o.E2 = 1e6, 1e6
	o.ν1, o.ν2 = 0.3, 0.3
	o.R1, o.R2 = 1, 1

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E1":
			o.E1 = p.V
		case "E2":
			o.E2 = p.V
		case "nu1":
			o.ν1 = p.V
		case "nu2":
			o.ν2 = p.V
		case "R1":
			o.R1 = p.V
		case "R2":
			o.R2 = p.V
		}
	}

	// derived
	o.Es = 1.0 / ((1.0-o.ν1*o.ν1)/o.E1 + (1.0-o.ν2*o.ν2)/o.E2)
	o.R = o.R1 * o.R2 / (o.R1 + o.R2)
}

// Force computes the normal force for indentation δ
func (o HertzSpheres) Force(δ float64) float64 {
	if δ <= 0 {
		return 0
	}
	return 4.0 * o.Es * math.Sqrt(o.R) * math.Pow(δ, 1.5) / 3.0
}

// Radius computes the radius of the contact circle
func (o HertzSpheres) Radius(δ float64) float64 {
	if δ <= 0 {
		return 0
	}
	return math.Sqrt(o.R * δ)
}

// Stiffness computes dF/dδ
func (o HertzSpheres) Stiffness(δ float64) float64 {
	return 2.0 * o.Es * o.Radius(δ)
}

// CheckForce checks the normal force
func (o HertzSpheres) CheckForce(tst *testing.T, F, δ, tol float64) {
	chk.Float64(tst, "Fn", tol, F, o.Force(δ))
}
