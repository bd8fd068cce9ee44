// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import "math"

// Pair holds the kinematics of two contacting bodies written in the local frame of the contact
//  Note: local arrays are ordered as {t1, t2, n}; the normal points from the neighbour towards
//        the particle and positive normal forces mean compression
type Pair struct {

	// geometry and masses
	R1, R2 float64 // radii. R2 = 0 means a rigid face
	M1, M2 float64 // masses. M2 = 0 means a rigid face

	// equivalent material
	E  float64 // equivalent Young's modulus
	Nu float64 // equivalent Poisson's coefficient

	// distances
	Dist       float64 // current distance between centres (or centre-to-face)
	IniDist    float64 // distance between centres when the bond was created
	Indent     float64 // current indentation; positive means overlap
	PrevIndent float64 // indentation at the previous step

	// continuum data
	Area   float64 // contact area
	Kn, Kt float64 // normal and tangential stiffnesses

	// local increments
	Δu   [3]float64 // displacement increment of the particle relative to the neighbour
	Vrel [3]float64 // velocity of the particle relative to the neighbour
}

// SetLocal sets the local displacement increment and relative velocity
func (o *Pair) SetLocal(Δu, vrel [3]float64) {
	o.Δu = Δu
	o.Vrel = vrel
}

// Req returns the equivalent radius
func (o *Pair) Req() float64 {
	if o.R2 <= 0 {
		return o.R1
	}
	return o.R1 * o.R2 / (o.R1 + o.R2)
}

// Meq returns the equivalent mass
func (o *Pair) Meq() float64 {
	if o.M2 <= 0 {
		return o.M1
	}
	return o.M1 * o.M2 / (o.M1 + o.M2)
}

// EquivYoung returns the equivalent Young's modulus of two materials
func EquivYoung(E1, E2 float64) float64 {
	return 2.0 * E1 * E2 / (E1 + E2)
}

// EquivPoisson returns the equivalent Poisson's coefficient of two materials
func EquivPoisson(ν1, ν2 float64) float64 {
	if ν1+ν2 == 0 {
		return 0
	}
	return 2.0 * ν1 * ν2 / (ν1 + ν2)
}

// dampingForce computes local viscous forces with coefficients c = 2 γ sqrt(m k)
func dampingForce(Fd []float64, p *Pair, γ float64, sliding bool) {
	m := p.Meq()
	cn := 2.0 * γ * math.Sqrt(m*p.Kn)
	ct := 2.0 * γ * math.Sqrt(m*p.Kt)
	Fd[2] = -cn * p.Vrel[2]
	if sliding {
		Fd[0], Fd[1] = 0, 0
		return
	}
	Fd[0] = -ct * p.Vrel[0]
	Fd[1] = -ct * p.Vrel[1]
}

// tangentialTrial adds the elastic tangential increment to F
func tangentialTrial(F []float64, p *Pair) {
	F[0] -= p.Kt * p.Δu[0]
	F[1] -= p.Kt * p.Δu[1]
}

// coulomb limits the tangential force by μ Fn. Returns true if sliding occurs
func coulomb(F []float64, μ float64) (sliding bool) {
	fn := math.Max(F[2], 0)
	ft := math.Hypot(F[0], F[1])
	lim := μ * fn
	if ft > lim {
		if ft > 0 {
			F[0] *= lim / ft
			F[1] *= lim / ft
		}
		return true
	}
	return false
}
