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

// Cohesive implements an elastic bond with tensile and shear strengths
//  tension: linear softening between δe = σmax A / kn and δu = δe (1 + dct)
//  shear:   τ ≤ τ0 + tan(φ) σn   with σn > 0 in compression
//  after failure the bond carries no tension and the tangential force obeys Coulomb's law
type Cohesive struct {
	A_γ    float64 // damping ratio
	A_σmax float64 // tensile strength
	A_τ0   float64 // cohesion; shear strength at zero normal stress
	A_φ    float64 // internal friction angle [deg]
	A_μ    float64 // friction coefficient of failed bonds
	A_dct  float64 // ductility; δu = δe (1 + dct)

	// derived
	tanφ float64   // tan(φ)
	st   BondState // state
}

// add model to factory
func init() {
	allocators["cohesive"] = func() Continuum { return new(Cohesive) }
}

// Init initialises model
func (o *Cohesive) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "damp":
			o.A_γ = p.V
		case "sigmax":
			o.A_σmax = p.V
		case "tau0":
			o.A_τ0 = p.V
		case "phi":
			o.A_φ = p.V
		case "mu":
			o.A_μ = p.V
		case "dct":
			o.A_dct = p.V
		}
	}
	if o.A_σmax <= 0 || o.A_τ0 <= 0 {
		return chk.Err("invalid parameters: {sigmax=%g, tau0=%g} must be all > 0", o.A_σmax, o.A_τ0)
	}
	if o.A_γ < 0 || o.A_μ < 0 || o.A_dct < 0 || o.A_φ < 0 || o.A_φ >= 90 {
		return chk.Err("invalid parameters: {damp=%g, mu=%g, dct=%g} must be non-negative and 0 ≤ phi=%g < 90", o.A_γ, o.A_μ, o.A_dct, o.A_φ)
	}
	o.tanφ = math.Tan(o.A_φ * math.Pi / 180.0)
	return
}

// GetPrms gets (an example) of parameters
func (o Cohesive) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "damp", V: 0.2},
		&dbf.P{N: "sigmax", V: 5e6},
		&dbf.P{N: "tau0", V: 1e7},
		&dbf.P{N: "phi", V: 30},
		&dbf.P{N: "mu", V: 0.5},
		&dbf.P{N: "dct", V: 0},
	}
}

// Clone returns a copy of this law
func (o *Cohesive) Clone() Continuum {
	c := *o
	return &c
}

// ContactArea computes the raw contact area
func (o *Cohesive) ContactArea(R1, R2 float64) float64 {
	r := math.Min(R1, R2)
	return math.Pi * r * r
}

// ElasticConstants sets kn and kt
func (o *Cohesive) ElasticConstants(p *Pair) {
	p.Kn, p.Kt = barConstants(p)
}

// Forces updates the local elastic force, damage and failure mode
func (o *Cohesive) Forces(F []float64, p *Pair) (sliding bool) {

	// degenerated bond
	if p.Kn <= 0 {
		F[0], F[1], F[2] = 0, 0, 0
		return
	}

	// trial tangential force
	tangentialTrial(F, p)

	// failed bond
	if o.st.FailureId != Intact {
		F[2] = 0
		if p.Indent > 0 {
			F[2] = p.Kn * p.Indent
		}
		sliding = coulomb(F, o.A_μ)
		o.st.Sigma, o.st.Tau = stresses(F, p.Area)
		o.st.Criterion = 1
		return
	}

	// normal force
	var ct float64 // tensile criterion
	if p.Indent >= 0 {
		F[2] = p.Kn * p.Indent
	} else {
		δ := -p.Indent
		δe := o.A_σmax * p.Area / p.Kn
		δu := δe * (1.0 + o.A_dct)
		d := 0.0
		if δ > δe {
			d = 1.0
			if δ < δu {
				d = 1.0 - δe*(δu-δ)/(δ*(δu-δe))
			}
		}
		o.st.Damage = math.Max(o.st.Damage, d)
		if o.st.Damage >= 1.0 {
			o.fail(FailTension)
			F[2] = 0
			sliding = coulomb(F, o.A_μ)
			o.st.Sigma, o.st.Tau = stresses(F, p.Area)
			o.st.Criterion = 1
			return
		}
		F[2] = -(1.0 - o.st.Damage) * p.Kn * δ
		ct = δ / δe
	}

	// shear strength
	σn, τ := stresses(F, p.Area)
	τmax := o.A_τ0 + o.tanφ*math.Max(σn, 0)
	if τ > τmax {
		o.fail(FailShear)
		if F[2] < 0 {
			F[2] = 0
		}
		sliding = coulomb(F, o.A_μ)
		o.st.Sigma, o.st.Tau = stresses(F, p.Area)
		o.st.Criterion = 1
		return
	}

	// state
	o.st.Sigma, o.st.Tau = σn, τ
	o.st.Criterion = math.Min(1, math.Max(ct, τ/τmax))
	return
}

// ViscousDamping computes the local damping force
func (o *Cohesive) ViscousDamping(Fd []float64, p *Pair, sliding bool) {
	if o.st.FailureId != Intact && p.Indent < 0 {
		Fd[0], Fd[1], Fd[2] = 0, 0, 0
		return
	}
	dampingForce(Fd, p, o.A_γ, sliding)
}

// RotationalMoment returns the moment due to the relative rotation increment Δθ
func (o *Cohesive) RotationalMoment(p *Pair, Δθ r3.Vec) r3.Vec {
	if o.st.FailureId != Intact {
		return r3.Vec{}
	}
	return r3.Scale(-(1.0-o.st.Damage)*rotStiffness(p), Δθ)
}

// AddPoisson adds the Poisson coupling to the stress sum
func (o *Cohesive) AddPoisson(S *mat.SymDense, p *Pair, fr *Frame, Fn, arm float64) {
	addPoisson(S, p.Nu, fr, Fn, p.Area, arm)
}

// State returns the bond state
func (o *Cohesive) State() BondState {
	return o.st
}

// fail sets the failure mode; the first failure mode is kept
func (o *Cohesive) fail(mode int) {
	if o.st.FailureId == Intact {
		o.st.FailureId = mode
	}
	o.st.Damage = 1
}
