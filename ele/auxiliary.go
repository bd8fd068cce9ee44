// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r3"
)

// ToVec converts a slice with 3 components to a vector
func ToVec(a []float64) (v r3.Vec, err error) {
	if len(a) != 3 {
		return v, chk.Err("vector must have 3 components. %v is invalid", a)
	}
	return r3.Vec{X: a[0], Y: a[1], Z: a[2]}, nil
}

// FromVec converts a vector to a slice
func FromVec(v r3.Vec) []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// relKinematics returns the unit normal from the neighbour towards the particle, the distance
// between centres and the radius sum
func relKinematics(me, other *Particle) (n r3.Vec, dist, rsum float64) {
	d := r3.Sub(me.X, other.X)
	dist = r3.Norm(d)
	rsum = me.Radius + other.Radius
	if dist > 0 {
		n = r3.Scale(1.0/dist, d)
	}
	return
}

// indentation returns the current indentation of two particles; positive means overlap
func indentation(me, other *Particle, iniDelta float64) float64 {
	_, dist, rsum := relKinematics(me, other)
	return (rsum - iniDelta) - dist
}
