// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import "math"

// SkinFactor is the calibrated multiplier of the area of skin particles
const SkinFactor = 1.40727

// PolyhedronAreaRatio returns the ratio between the area of the smallest polyhedron with n faces
// circumscribing a sphere and the area of that sphere (Fejes Tóth bound)
//  S(n) = n k (4 sin²(π/k) - 1) tan(π/k) / (4π)   with   k = 6 (n-2) / n
func PolyhedronAreaRatio(n int) float64 {
	if n < 4 {
		return 1
	}
	k := 6.0 * float64(n-2) / float64(n)
	s := math.Sin(math.Pi / k)
	return float64(n) * k * (4.0*s*s - 1.0) * math.Tan(math.Pi/k) / (4.0 * math.Pi)
}

// AlphaFactor returns the correction of the areas of an interior particle with n continuum
// neighbours whose raw areas sum up to totalArea
func AlphaFactor(n int, sphereArea, totalArea float64) float64 {
	if totalArea <= 0 {
		return 1
	}
	return PolyhedronAreaRatio(n) * sphereArea / totalArea
}

// SkinAlphaFactor returns the correction of the areas of a skin particle
func SkinAlphaFactor(n int, sphereArea, totalArea float64) float64 {
	if totalArea <= 0 {
		return 1
	}
	return SkinFactor * (sphereArea / totalArea) * (float64(n) / 11.0)
}
