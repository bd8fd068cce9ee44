// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/cpmech/godem/mdl/contact"
)

// BondElement holds the results of one continuum bond. It is shared by both particles
//  Note: only the particle with the smaller id writes the results; the area slots are
//        written according to the rules in CalculateMeanContactArea
type BondElement struct {
	Id1       int        `json:"id1"`       // smaller particle id
	Id2       int        `json:"id2"`       // larger particle id
	Force     [3]float64 `json:"force"`     // local elastic force {t1, t2, n}
	Sigma     float64    `json:"sigma"`     // normal stress
	Tau       float64    `json:"tau"`       // shear stress
	FailureId int        `json:"failure"`   // failure mode
	Criterion float64    `json:"criterion"` // failure criterion state
	Damage    float64    `json:"damage"`    // damage; running maximum
	AreaLow   float64    `json:"arealow"`   // area computed by the owner of the low slot
	AreaHigh  float64    `json:"areahigh"`  // area computed by the owner of the high slot
	MeanArea  float64    `json:"meanarea"`  // reduced area
}

// NewBondElement returns a new bond element between two particles
func NewBondElement(idA, idB int) *BondElement {
	if idA > idB {
		idA, idB = idB, idA
	}
	return &BondElement{Id1: idA, Id2: idB}
}

// CalculateOnContactElements records the state of the bond. Damage is a running maximum,
// except at step 0 where it is reset
func (o *BondElement) CalculateOnContactElements(st contact.BondState, F []float64, step int) {
	copy(o.Force[:], F)
	o.Sigma = st.Sigma
	o.Tau = st.Tau
	o.Criterion = st.Criterion
	if st.FailureId != contact.Intact && o.FailureId == contact.Intact {
		o.FailureId = st.FailureId
	}
	if step == 0 {
		o.Damage = st.Damage
		return
	}
	o.Damage = math.Max(o.Damage, st.Damage)
}

// ReduceMeanArea merges the low and high slots
func (o *BondElement) ReduceMeanArea() {
	o.MeanArea = 0.5 * (o.AreaLow + o.AreaHigh)
}

// LinkBondElements creates one bond element per continuum pair and shares it between both
// particles. Returns all bond elements
func LinkBondElements(particles []*Particle, finder Finder) (bonds []*BondElement) {
	for _, p := range particles {
		for i := 0; i < p.NcontIni; i++ {
			id := p.IniIds[i]
			if p.Id > id {
				continue
			}
			other, ok := finder.Find(id)
			if !ok {
				continue
			}
			b := NewBondElement(p.Id, id)
			p.Bonds[i] = b
			if j, ok := other.iniIndex[p.Id]; ok && j < other.NcontIni {
				other.Bonds[j] = b
			}
			bonds = append(bonds, b)
		}
	}
	return
}

// ContactAreaWeighting computes the raw contact areas of continuum bonds and, for particles with
// at least 4 continuum neighbours, scales them to compensate the partial coverage of the sphere
func (o *Particle) ContactAreaWeighting(finder Finder) {
	total := 0.0
	for i := 0; i < o.NcontIni; i++ {
		R2 := o.Radius
		if other, ok := finder.Find(o.IniIds[i]); ok {
			R2 = other.Radius
		}
		o.Areas[i] = o.Laws[i].ContactArea(o.Radius, R2)
		total += o.Areas[i]
	}
	if o.NcontIni < 4 {
		return
	}
	sphereArea := 4.0 * math.Pi * o.Radius * o.Radius
	α := contact.AlphaFactor(o.NcontIni, sphereArea, total)
	if o.Skin {
		α = contact.SkinAlphaFactor(o.NcontIni, sphereArea, total)
	}
	for i := range o.Areas {
		o.Areas[i] *= α
	}
}

// CalculateMeanContactArea runs one phase of the mean area protocol
//  first == true: writes the raw areas into the slots of the bond elements:
//    skin-interior pairs:               the skin particle writes both slots
//    pairs in different partitions:     the smaller id writes low; the larger id writes high
//    otherwise:                         the smaller id writes both slots
//  first == false: reads the reduced areas back (see ReduceMeanArea)
func (o *Particle) CalculateMeanContactArea(distr, first bool, finder Finder) {
	for i := 0; i < o.NcontIni; i++ {
		b := o.Bonds[i]
		if b == nil {
			continue
		}
		if !first {
			o.Areas[i] = b.MeanArea
			continue
		}
		other, ok := finder.Find(o.IniIds[i])
		if !ok {
			continue
		}
		area := o.Laws[i].ContactArea(o.Radius, other.Radius)
		low := o.Id < other.Id
		switch {
		case o.Skin != other.Skin:
			if o.Skin {
				b.AreaLow, b.AreaHigh = area, area
			}
		case distr && o.Partition != other.Partition:
			if low {
				b.AreaLow = area
			} else {
				b.AreaHigh = area
			}
		default:
			if low {
				b.AreaLow, b.AreaHigh = area, area
			}
		}
	}
}
