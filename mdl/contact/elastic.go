// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Elastic implements a linear elastic bond that never fails
//  kn = E A / d0   kt = kn / (2 (1 + ν))   with   A = π min(R1,R2)²
type Elastic struct {
	A_γ float64   // damping ratio
	st  BondState // state
}

// add model to factory
func init() {
	allocators["elastic"] = func() Continuum { return new(Elastic) }
}

// Init initialises model
func (o *Elastic) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "damp":
			o.A_γ = p.V
		}
	}
	if o.A_γ < 0 {
		return chk.Err("invalid parameters: damp=%g must be non-negative", o.A_γ)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Elastic) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "damp", V: 0.2},
	}
}

// Clone returns a copy of this law
func (o *Elastic) Clone() Continuum {
	c := *o
	return &c
}

// ContactArea computes the raw contact area
func (o *Elastic) ContactArea(R1, R2 float64) float64 {
	r := math.Min(R1, R2)
	return math.Pi * r * r
}

// ElasticConstants sets kn and kt
func (o *Elastic) ElasticConstants(p *Pair) {
	p.Kn, p.Kt = barConstants(p)
}

// Forces updates the local elastic force
func (o *Elastic) Forces(F []float64, p *Pair) (sliding bool) {
	tangentialTrial(F, p)
	F[2] = p.Kn * p.Indent
	o.st.Sigma, o.st.Tau = stresses(F, p.Area)
	return
}

// ViscousDamping computes the local damping force
func (o *Elastic) ViscousDamping(Fd []float64, p *Pair, sliding bool) {
	dampingForce(Fd, p, o.A_γ, sliding)
}

// RotationalMoment returns the moment due to the relative rotation increment Δθ
func (o *Elastic) RotationalMoment(p *Pair, Δθ r3.Vec) r3.Vec {
	return r3.Scale(-rotStiffness(p), Δθ)
}

// AddPoisson adds the Poisson coupling to the stress sum
func (o *Elastic) AddPoisson(S *mat.SymDense, p *Pair, fr *Frame, Fn, arm float64) {
	addPoisson(S, p.Nu, fr, Fn, p.Area, arm)
}

// State returns the bond state
func (o *Elastic) State() BondState {
	return o.st
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// barConstants computes the stiffnesses of an elastic bar with cross-section p.Area
func barConstants(p *Pair) (kn, kt float64) {
	d0 := p.IniDist
	if d0 <= 0 {
		d0 = p.Dist
	}
	kn = p.E * p.Area / d0
	kt = kn / (2.0 * (1.0 + p.Nu))
	return
}

// rotStiffness computes the rotational stiffness E I / d0 with I = A² / (4π)
func rotStiffness(p *Pair) float64 {
	d0 := p.IniDist
	if d0 <= 0 {
		d0 = p.Dist
	}
	return p.E * p.Area * p.Area / (4.0 * math.Pi * d0)
}

// stresses returns the normal and shear stresses corresponding to local force F
func stresses(F []float64, area float64) (σ, τ float64) {
	if area <= 0 {
		return
	}
	return F[2] / area, math.Hypot(F[0], F[1]) / area
}
