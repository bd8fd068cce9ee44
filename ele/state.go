// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/utl"

// State holds a snapshot of a particle for output
type State struct {
	Id      int       `json:"id"`      // particle id
	X       []float64 `json:"x"`       // position
	V       []float64 `json:"v"`       // velocity
	W       []float64 `json:"w"`       // angular velocity
	F       []float64 `json:"f"`       // contact force
	Sig     []float64 `json:"sig"`     // stress {xx, yy, zz, xy, yz, zx}
	Mass    float64   `json:"mass"`    // mass
	Nbroken int       `json:"nbroken"` // number of failed bonds
}

// GetState returns a snapshot of this particle
func (o *Particle) GetState() *State {
	S := o.Stress
	return &State{
		Id:      o.Id,
		X:       FromVec(o.X),
		V:       FromVec(o.V),
		W:       FromVec(o.W),
		F:       FromVec(o.ContactForce),
		Sig:     []float64{S.At(0, 0), S.At(1, 1), S.At(2, 2), S.At(0, 1), S.At(1, 2), S.At(2, 0)},
		Mass:    o.Mass,
		Nbroken: o.NumBroken(),
	}
}

// Encode encodes the snapshot of this particle
func (o *Particle) Encode(enc utl.Encoder) (err error) {
	return enc.Encode(o.GetState())
}
