// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/godem/inp"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r3"
)

// New returns a new particle from input data
func New(dat *inp.ParticleData, mat *inp.Material) (o *Particle, err error) {
	if mat == nil {
		return nil, chk.Err("cannot allocate particle %d: material is missing", dat.Id)
	}
	if dat.R <= 0 {
		return nil, chk.Err("cannot allocate particle %d: radius=%g must be positive", dat.Id, dat.R)
	}
	x, err := ToVec(dat.X)
	if err != nil {
		return nil, chk.Err("cannot allocate particle %d: position is invalid:\n%v", dat.Id, err)
	}
	o = NewParticle(dat.Id, x, dat.R, mat.Young, mat.Poisson, mat.Density)
	o.Group = dat.Group
	o.Skin = dat.Skin
	o.Partition = dat.Part
	o.Fixed = dat.Fixed
	o.Top = dat.Top
	o.RollFr = mat.RollFr
	if len(dat.V) > 0 {
		if o.V, err = ToVec(dat.V); err != nil {
			return nil, chk.Err("cannot allocate particle %d: velocity is invalid:\n%v", dat.Id, err)
		}
	}
	if len(dat.W) > 0 {
		if o.W, err = ToVec(dat.W); err != nil {
			return nil, chk.Err("cannot allocate particle %d: angular velocity is invalid:\n%v", dat.Id, err)
		}
	}

	// laws
	o.Disc = mat.DiscLaw
	if o.Disc == nil {
		return nil, chk.Err("cannot allocate particle %d: material %q has no discontinuum law", dat.Id, mat.Name)
	}
	if o.Group != 0 {
		if mat.Cont == nil {
			return nil, chk.Err("cannot allocate particle %d: group %d requires a continuum law in material %q", dat.Id, o.Group, mat.Name)
		}
		o.Proto = mat.Cont
	}
	return
}

// NewWall returns a new rigid face from input data
func NewWall(dat *inp.WallData, mat *inp.Material) (o *Wall, err error) {
	if mat == nil {
		return nil, chk.Err("cannot allocate wall %d: material is missing", dat.Id)
	}
	o = &Wall{Id: dat.Id, Young: mat.Young, Poisson: mat.Poisson}
	if o.X, err = ToVec(dat.X); err != nil {
		return nil, chk.Err("cannot allocate wall %d: point is invalid:\n%v", dat.Id, err)
	}
	n, err := ToVec(dat.N)
	if err != nil {
		return nil, chk.Err("cannot allocate wall %d: normal is invalid:\n%v", dat.Id, err)
	}
	if r3.Norm(n) < 1e-15 {
		return nil, chk.Err("cannot allocate wall %d: normal vector is zero", dat.Id)
	}
	o.N = r3.Unit(n)
	return
}
