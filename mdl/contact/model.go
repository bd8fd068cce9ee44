// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package contact implements constitutive laws for contacts between discrete particles
/*
 *                 |  bond lifetime          |  state
 *  ===================================================================
 *                 |                         |
 *    Continuum    |  created once at t=0;   |  one clone per bond:
 *                 |  may fail, never reforms|  failure id, damage
 *                 |                         |
 *  -------------------------------------------------------------------
 *                 |                         |
 *    Discontinuum |  exists while δ > 0     |  stateless; shared by
 *                 |                         |  all contacts of a particle
 *                 |                         |
 */
package contact

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// failure modes of continuum bonds
const (
	Intact      = 0 // bond is intact
	FailTension = 1 // bond failed by tension
	FailShear   = 2 // bond failed by shear
)

// BondState holds the state of one continuum bond
type BondState struct {
	FailureId int     // failure mode: Intact, FailTension or FailShear
	Damage    float64 // unidimensional damage; running maximum in [0,1]
	Sigma     float64 // normal stress; positive means compression
	Tau       float64 // shear stress
	Criterion float64 // failure criterion state in [0,1]
}

// Continuum defines laws for bonds between particles of the same continuum group.
// Each bond owns a clone, thus implementations may keep per-bond state.
type Continuum interface {
	Init(prms dbf.Params) error                                         // initialises model
	GetPrms() dbf.Params                                                // gets (an example) of parameters
	Clone() Continuum                                                   // returns an independent copy, including state
	ContactArea(R1, R2 float64) float64                                 // computes the raw contact area of a pair
	ElasticConstants(p *Pair)                                           // sets p.Kn and p.Kt
	Forces(F []float64, p *Pair) (sliding bool)                         // updates local elastic force F (input: old force in new frame)
	ViscousDamping(Fd []float64, p *Pair, sliding bool)                 // computes local damping force
	RotationalMoment(p *Pair, Δθ r3.Vec) r3.Vec                         // moment due to relative rotation Δθ (global)
	AddPoisson(S *mat.SymDense, p *Pair, fr *Frame, Fn, arm float64)    // adds the Poisson coupling to stress sum S
	State() BondState                                                   // returns the current bond state
}

// Discontinuum defines laws for transient contacts; i.e. evaluated only while the indentation is positive
type Discontinuum interface {
	Init(prms dbf.Params) error                                   // initialises model
	GetPrms() dbf.Params                                          // gets (an example) of parameters
	Forces(F, Fd []float64, p *Pair) (cohesive float64, sliding bool) // updates F, computes damping Fd and cohesive force
}

// New returns a new continuum law
func New(name string) (model Continuum, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'contact' database", name)
	}
	return allocator(), nil
}

// NewDisc returns a new discontinuum law
func NewDisc(name string) (model Discontinuum, err error) {
	allocator, ok := discAllocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'contact' (discontinuum) database", name)
	}
	return allocator(), nil
}

// allocators holds all available continuum laws; modelname => allocator
var allocators = map[string]func() Continuum{}

// discAllocators holds all available discontinuum laws; modelname => allocator
var discAllocators = map[string]func() Discontinuum{}
