// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Linear implements a linear spring-dashpot contact with Coulomb friction
//  kn = π E R   kt = kn / (2 (1 + ν))   Fn = kn δ   |Ft| ≤ μ Fn
type Linear struct {
	A_γ   float64 // damping ratio
	A_μ   float64 // friction coefficient
	A_coh float64 // adhesion stress; cohesive force = coh π R δ
}

// add model to factory
func init() {
	discAllocators["linear"] = func() Discontinuum { return new(Linear) }
}

// Init initialises model
func (o *Linear) Init(prms dbf.Params) (err error) {
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
func (o Linear) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "damp", V: 0.2},
		&dbf.P{N: "mu", V: 0.5},
		&dbf.P{N: "coh", V: 0},
	}
}

// Forces updates the local elastic force F and computes the damping force Fd
func (o *Linear) Forces(F, Fd []float64, p *Pair) (cohesive float64, sliding bool) {
	R := p.Req()
	p.Kn = math.Pi * p.E * R
	p.Kt = p.Kn / (2.0 * (1.0 + p.Nu))
	F[2] = p.Kn * p.Indent
	tangentialTrial(F, p)
	sliding = coulomb(F, o.A_μ)
	dampingForce(Fd, p, o.A_γ, sliding)
	if o.A_coh > 0 {
		cohesive = o.A_coh * math.Pi * R * p.Indent
	}
	return
}
