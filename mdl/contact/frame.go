// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Frame holds an orthonormal right-handed local system {t1, t2, n} of a contact
type Frame [3]r3.Vec

// NewFrame returns the local system whose third axis is the unit vector along n
func NewFrame(n r3.Vec) (o Frame) {
	n = r3.Unit(n)

	// least aligned global axis
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	a := r3.Vec{Z: 1}
	if ax <= ay && ax <= az {
		a = r3.Vec{X: 1}
	} else if ay <= az {
		a = r3.Vec{Y: 1}
	}

	// axes
	o[0] = r3.Unit(r3.Cross(n, a))
	o[1] = r3.Cross(n, o[0])
	o[2] = n
	return
}

// Normal returns the third axis
func (o *Frame) Normal() r3.Vec {
	return o[2]
}

// ToLocal returns the components of the global vector v in the local system
func (o *Frame) ToLocal(v r3.Vec) (l [3]float64) {
	for i := 0; i < 3; i++ {
		l[i] = r3.Dot(o[i], v)
	}
	return
}

// ToGlobal returns the global vector with local components l
func (o *Frame) ToGlobal(l []float64) (v r3.Vec) {
	for i := 0; i < 3; i++ {
		v = r3.Add(v, r3.Scale(l[i], o[i]))
	}
	return
}

// RotateVector rotates v with the rotation that brings the unit vector nOld onto nNew
//  Note: Rodrigues' formula with axis k = nOld × nNew / |nOld × nNew|
func RotateVector(v, nOld, nNew r3.Vec) r3.Vec {
	k := r3.Cross(nOld, nNew)
	s := r3.Norm(k)
	if s < 1e-15 {
		return v
	}
	c := r3.Dot(nOld, nNew)
	k = r3.Scale(1.0/s, k)
	res := r3.Scale(c, v)
	res = r3.Add(res, r3.Scale(s, r3.Cross(k, v)))
	return r3.Add(res, r3.Scale(r3.Dot(k, v)*(1.0-c), k))
}

// AddSymOuter adds α sym(a ⊗ b) to the symmetric 3x3 matrix S
func AddSymOuter(S *mat.SymDense, α float64, a, b r3.Vec) {
	x := [3]float64{a.X, a.Y, a.Z}
	y := [3]float64{b.X, b.Y, b.Z}
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			S.SetSym(i, j, S.At(i, j)+α*0.5*(x[i]*y[j]+x[j]*y[i]))
		}
	}
}

// addPoisson adds the lateral (Poisson) response of a normal stress to S
//  ΔS = -ν Fn arm (t1 ⊗ t1 + t2 ⊗ t2)
func addPoisson(S *mat.SymDense, ν float64, fr *Frame, Fn, area, arm float64) {
	if area <= 0 {
		return
	}
	σn := Fn / area
	α := -ν * σn * area * arm
	AddSymOuter(S, α, fr[0], fr[0])
	AddSymOuter(S, α, fr[1], fr[1])
}
