// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Hertz implements the Hertz-Mindlin contact with Coulomb friction
//  E* = E / (2 (1 - ν²))   a = sqrt(R δ)   Fn = 4/3 E* sqrt(R) δ^(3/2)
//  kn = 2 E* a   G* = E / (4 (2 - ν) (1 + ν))   kt = 8 G* a
type Hertz struct {
	A_γ   float64 // damping ratio
	A_μ   float64 // friction coefficient
	A_coh float64 // adhesion stress; cohesive force = coh π a²
}

// add model to factory
func init() {
	discAllocators["hertz"] = func() Discontinuum { return new(Hertz) }
}

// Init initialises model
func (o *Hertz) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "damp":
			o.A_γ = p.V
		case "mu":
			o.A_μ = p.V
		case "coh":
			o.A_coh = p.V
		}
	}
	if o.A_γ < 0 || o.A_μ < 0 || o.A_coh < 0 {
		return chk.Err("invalid parameters: {damp=%g, mu=%g, coh=%g} must be all non-negative", o.A_γ, o.A_μ, o.A_coh)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Hertz) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "damp", V: 0.2},
		&dbf.P{N: "mu", V: 0.5},
		&dbf.P{N: "coh", V: 0},
	}
}

// Forces updates the local elastic force F and computes the damping force Fd
func (o *Hertz) Forces(F, Fd []float64, p *Pair) (cohesive float64, sliding bool) {
	R := p.Req()
	δ := math.Max(p.Indent, 0)
	a := math.Sqrt(R * δ)
	Es := p.E / (2.0 * (1.0 - p.Nu*p.Nu))
	Gs := p.E / (4.0 * (2.0 - p.Nu) * (1.0 + p.Nu))
	p.Kn = 2.0 * Es * a
	p.Kt = 8.0 * Gs * a
	F[2] = 4.0 * Es * math.Sqrt(R) * δ * math.Sqrt(δ) / 3.0
	tangentialTrial(F, p)
	sliding = coulomb(F, o.A_μ)
	dampingForce(Fd, p, o.A_γ, sliding)
	if o.A_coh > 0 {
		cohesive = o.A_coh * math.Pi * a * a
	}
	return
}
