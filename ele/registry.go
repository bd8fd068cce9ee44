// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/godem/mdl/contact"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r3"
)

// EstablishInitialBonds records the initial neighbours of this particle and returns the ordered
// list of neighbour ids. Neighbours of the same nonzero group are continuum neighbours and are
// placed first. Repeated, unresolved and self ids are skipped.
//  Note: the initial delta of every initial neighbour is radius_sum - distance, thus the
//        initial configuration has zero indentation
func (o *Particle) EstablishInitialBonds(raw []int, finder Finder) (neighs []int) {

	// split
	var cont, disc []int
	var contDelta, discDelta []float64
	seen := make(map[int]bool)
	for _, id := range raw {
		if id == o.Id || seen[id] {
			continue
		}
		other, ok := finder.Find(id)
		if !ok {
			continue
		}
		seen[id] = true
		_, dist, rsum := relKinematics(o, other)
		if o.Group != 0 && other.Group == o.Group {
			cont = append(cont, id)
			contDelta = append(contDelta, rsum-dist)
			continue
		}
		disc = append(disc, id)
		discDelta = append(discDelta, rsum-dist)
	}

	// initial tables
	o.NcontIni = len(cont)
	o.IniIds = append(cont, disc...)
	o.IniDelta = append(contDelta, discDelta...)
	o.iniIndex = make(map[int]int, len(o.IniIds))
	for i, id := range o.IniIds {
		o.iniIndex[id] = i
	}
	o.Areas = make([]float64, o.NcontIni)
	o.Bonds = make([]*BondElement, o.NcontIni)
	o.Laws = nil

	// neighbours
	neighs = copyInts(o.IniIds)
	o.resetNeighbours(neighs)
	return
}

// CreateContinuumLaws clones one continuum law per continuum neighbour
func (o *Particle) CreateContinuumLaws() (err error) {
	if o.NcontIni == 0 {
		return
	}
	if o.Proto == nil {
		return chk.Err("particle %d has %d continuum neighbours but no continuum law", o.Id, o.NcontIni)
	}
	o.Laws = make([]contact.Continuum, o.NcontIni)
	for i := 0; i < o.NcontIni; i++ {
		o.Laws[i] = o.Proto.Clone()
	}
	return
}

// ReconcileNeighbors rebuilds the neighbour slots after a new search. Initial neighbours keep
// their original slots; initial neighbours absent from raw are marked with NoNeighbour; new
// neighbours are appended only if they currently overlap. Force histories are carried by id.
func (o *Particle) ReconcileNeighbors(raw []int, finder Finder) (neighs []int) {

	// previous histories
	oldE := make(map[int]r3.Vec, len(o.Neighs))
	oldT := make(map[int]r3.Vec, len(o.Neighs))
	for i, id := range o.Neighs {
		if id == NoNeighbour {
			continue
		}
		oldE[id] = o.ElasticF[i]
		oldT[id] = o.TotalF[i]
	}

	// slots
	nini := len(o.IniIds)
	neighs = make([]int, nini)
	for i := range neighs {
		neighs[i] = NoNeighbour
	}
	seen := make(map[int]bool)
	for _, id := range raw {
		if id == o.Id || seen[id] {
			continue
		}
		other, ok := finder.Find(id)
		if !ok {
			continue
		}
		seen[id] = true
		if slot, ok := o.iniIndex[id]; ok {
			neighs[slot] = id
			continue
		}
		if indentation(o, other, 0) > 0 {
			neighs = append(neighs, id)
		}
	}

	// carry histories
	o.resetNeighbours(neighs)
	for i, id := range neighs {
		if id == NoNeighbour {
			continue
		}
		o.ElasticF[i] = oldE[id]
		o.TotalF[i] = oldT[id]
	}
	return
}

// IniDeltaOf returns the initial delta of the neighbour at slot i; zero for provisional slots
func (o *Particle) IniDeltaOf(i int) float64 {
	if i < len(o.IniDelta) {
		return o.IniDelta[i]
	}
	return 0
}
