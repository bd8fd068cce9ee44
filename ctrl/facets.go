// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ctrl

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Facet defines a piece of the controlled boundary
type Facet interface {
	FaceArea() float64     // area projected onto the controlled face
	FaceReaction() float64 // normal force transmitted to the controlled face
}

// FemFacet implements a face of a finite element whose stresses are known at integration points
type FemFacet struct {
	Area  float64   // area of face
	Sigma []float64 // normal stress at each integration point
}

// FaceArea returns the area of the face
func (o *FemFacet) FaceArea() float64 {
	return o.Area
}

// FaceReaction returns the mean stress times the area
func (o *FemFacet) FaceReaction() float64 {
	if len(o.Sigma) == 0 {
		return 0
	}
	return stat.Mean(o.Sigma, nil) * o.Area
}

// MeasureReaction computes the reaction stress of the controlled boundary with partial sums
// computed in parallel. Returns zero if the total area is nearly zero
func MeasureReaction(facets []Facet, nworkers int) float64 {
	if len(facets) == 0 {
		return 0
	}
	if nworkers < 1 {
		nworkers = 1
	}
	if nworkers > len(facets) {
		nworkers = len(facets)
	}
	areas := make([]float64, nworkers)
	forces := make([]float64, nworkers)
	size := (len(facets) + nworkers - 1) / nworkers
	var wg sync.WaitGroup
	for w := 0; w < nworkers; w++ {
		start, end := w*size, (w+1)*size
		if start >= len(facets) {
			break
		}
		if end > len(facets) {
			end = len(facets)
		}
		wg.Add(1)
		go func(w int, chunk []Facet) {
			defer wg.Done()
			for _, f := range chunk {
				areas[w] += f.FaceArea()
				forces[w] += f.FaceReaction()
			}
		}(w, facets[start:end])
	}
	wg.Wait()
	area := floats.Sum(areas)
	if math.Abs(area) <= 1e-12 {
		return 0
	}
	return floats.Sum(forces) / area
}
