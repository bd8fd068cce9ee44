// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"
	"testing"

	"github.com/cpmech/godem/ana"
	"github.com/cpmech/godem/mdl/contact"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/spatial/r3"
)

// bondedPair returns two bonded particles of unit radius at distance 1.9
func bondedPair(tst *testing.T, model string, prms dbf.Params) (p1, p2 *Particle, ps Particles) {
	p1 = newGrain(1, 1, r3.Vec{})
	p2 = newGrain(2, 1, r3.Vec{X: 1.9})
	ps = Particles{1: p1, 2: p2}
	for _, p := range []*Particle{p1, p2} {
		p.Proto = newLaw(tst, model, prms)
		p.Disc = newDisc(tst, "linear", nil)
		p.EstablishInitialBonds([]int{1, 2}, ps)
		if err := p.CreateContinuumLaws(); err != nil {
			tst.Fatalf("test failed:\n%v", err)
		}
		p.ContactAreaWeighting(ps)
	}
	return
}

// moveTo sets the position of p and its displacement increment
func moveTo(p *Particle, x r3.Vec) {
	p.DeltaDisp = r3.Sub(x, p.X)
	p.X = x
}

// runStep computes the contact forces of all particles
func runStep(ps Particles, info *StepInfo) {
	for _, p := range ps {
		p.InitializeStep()
	}
	for _, p := range ps {
		p.ComputeContactForces(ps, info)
	}
}

func Test_kernel01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernel01")

	p1, p2, ps := bondedPair(tst, "elastic", nil)

	// analytical solution
	var sol ana.ElasticBar
	sol.Init(dbf.Params{
		&dbf.P{N: "E", V: 1e6},
		&dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "d0", V: 1.9},
	})

	// stretch
	moveTo(p2, r3.Vec{X: 1.91})
	info := &StepInfo{Dt: 1e-3, Stress: true}
	runStep(ps, info)
	F := -sol.Force(-0.01)
	io.Pforan("F1 = %v\n", p1.ElasticForce)
	chk.Array(tst, "F1", 1e-8, FromVec(p1.ElasticForce), []float64{F, 0, 0})
	chk.Array(tst, "F2", 1e-8, FromVec(p2.ElasticForce), []float64{-F, 0, 0})
	chk.Array(tst, "Ft1", 1e-8, FromVec(p1.ContactForce), []float64{F, 0, 0})

	// stress sum and representative volume
	arm := 1 + 0.5*(1.91-2)
	chk.Float64(tst, "Sxx", 1e-8, p1.Stress.At(0, 0), arm*F)
	chk.Float64(tst, "Syy", 1e-8, p1.Stress.At(1, 1), 0.25*arm*F)
	chk.Float64(tst, "Szz", 1e-8, p1.Stress.At(2, 2), 0.25*arm*F)
	chk.Float64(tst, "Sxy", 1e-8, p1.Stress.At(0, 1), 0)
	chk.Float64(tst, "V", 1e-14, p1.RepVolume, arm*math.Pi/3)

	// sphere volume is used with fewer than 4 bonds
	p1.FinalizeStress()
	chk.Float64(tst, "σxx", 1e-8, p1.Stress.At(0, 0), arm*F/p1.SphereVolume())
	m := p1.Mass
	p1.FinalizeStep(info)
	chk.Float64(tst, "mass", 1e-10, p1.Mass, m)

	// accumulators are reset
	p1.InitializeStep()
	chk.Float64(tst, "|F|", 1e-15, r3.Norm(p1.ElasticForce), 0)
	chk.Float64(tst, "Sxx", 1e-15, p1.Stress.At(0, 0), 0)
}

func Test_kernel02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernel02")

	p1, p2, ps := bondedPair(tst, "elastic", nil)
	info := &StepInfo{Dt: 1e-3}

	// shear: the tangential force is carried to the next step
	moveTo(p2, r3.Vec{X: 1.9, Y: 1e-4})
	runStep(ps, info)
	f1 := p1.ElasticForce
	kt := p1.Young * math.Pi / 1.9 / 2.5
	chk.Float64(tst, "F1y", 1e-6, f1.Y, kt*1e-4)

	// no motion: same force
	p2.DeltaDisp = r3.Vec{}
	runStep(ps, info)
	chk.Array(tst, "F1", 1e-8, FromVec(p1.ElasticForce), FromVec(f1))

	// vanished neighbour is skipped
	delete(ps, 2)
	p1.InitializeStep()
	p1.ComputeContactForces(ps, info)
	chk.Float64(tst, "|F|", 1e-15, r3.Norm(p1.ElasticForce), 0)
}

func Test_kernel03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernel03")

	p1, p2, ps := bondedPair(tst, "cohesive", dbf.Params{
		&dbf.P{N: "sigmax", V: 1e3},
		&dbf.P{N: "tau0", V: 1e9},
		&dbf.P{N: "phi", V: 30},
		&dbf.P{N: "mu", V: 0.5},
		&dbf.P{N: "dct", V: 1},
	})
	bonds := LinkBondElements([]*Particle{p1, p2}, ps)
	b := bonds[0]
	info := &StepInfo{Dt: 1e-3, ContactMesh: true}

	// softening: δe = 1.9e-3, δu = 3.8e-3
	moveTo(p2, r3.Vec{X: 1.9 + 2.85e-3})
	runStep(ps, info)
	chk.Float64(tst, "D", 1e-12, b.Damage, 2.0/3.0)
	chk.Int(tst, "failure", b.FailureId, contact.Intact)

	// unloading: damage is kept
	info.Step = 1
	moveTo(p2, r3.Vec{X: 1.9 + 1e-3})
	runStep(ps, info)
	chk.Float64(tst, "D", 1e-12, b.Damage, 2.0/3.0)

	// rupture
	info.Step = 2
	moveTo(p2, r3.Vec{X: 1.9 + 1e-2})
	runStep(ps, info)
	chk.Int(tst, "failure", b.FailureId, contact.FailTension)
	chk.Int(tst, "failure1", p1.FailureId(0), contact.FailTension)
	chk.Int(tst, "failure2", p2.FailureId(0), contact.FailTension)
	chk.Float64(tst, "D", 1e-15, b.Damage, 1)
	chk.Float64(tst, "|F|", 1e-15, r3.Norm(p1.ElasticForce), 0)

	// failed bonds do not heal
	for step := 3; step < 6; step++ {
		info.Step = step
		moveTo(p2, r3.Vec{X: 1.9 - 1e-3})
		runStep(ps, info)
		chk.Int(tst, "failure", b.FailureId, contact.FailTension)
		chk.Int(tst, "nbroken", p1.NumBroken(), 1)
		chk.Float64(tst, "D", 1e-15, b.Damage, 1)
	}

	// damage is reset at step 0
	info.Step = 0
	runStep(ps, info)
	chk.Float64(tst, "D", 1e-15, b.Damage, 1)
	b.Damage = 0.5
	b.CalculateOnContactElements(contact.BondState{Damage: 0.1}, []float64{0, 0, 0}, 0)
	chk.Float64(tst, "D(step0)", 1e-15, b.Damage, 0.1)
	b.CalculateOnContactElements(contact.BondState{Damage: 0.05}, []float64{0, 0, 0}, 1)
	chk.Float64(tst, "D(step1)", 1e-15, b.Damage, 0.1)
	chk.Int(tst, "failure", b.FailureId, contact.FailTension)
}

func Test_kernel04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernel04")

	// separated particles: not found by the initial search
	p1 := newGrain(1, 1, r3.Vec{})
	p2 := newGrain(2, 0, r3.Vec{X: 2.5})
	ps := Particles{1: p1, 2: p2}
	for _, p := range ps {
		p.Disc = newDisc(tst, "hertz", dbf.Params{&dbf.P{N: "mu", V: 0.3}})
		p.EstablishInitialBonds(nil, ps)
	}
	info := &StepInfo{Dt: 1e-3, Stress: true}
	runStep(ps, info)
	chk.Float64(tst, "|F|", 1e-15, r3.Norm(p1.ElasticForce), 0)

	// overlap found by a later search
	moveTo(p2, r3.Vec{X: 1.99})
	p2.DeltaDisp = r3.Vec{}
	for _, p := range ps {
		p.ReconcileNeighbors([]int{1, 2}, ps)
	}
	chk.Ints(tst, "neighs", p1.Neighs, []int{2})
	chk.Int(tst, "ncontini", p1.NcontIni, 0)
	runStep(ps, info)
	var sol ana.HertzSpheres
	sol.Init(dbf.Params{
		&dbf.P{N: "E1", V: 1e6},
		&dbf.P{N: "E2", V: 1e6},
		&dbf.P{N: "nu1", V: 0.25},
		&dbf.P{N: "nu2", V: 0.25},
	})
	sol.CheckForce(tst, -p1.ElasticForce.X, 0.01, 1e-8)
	chk.Float64(tst, "F2x", 1e-8, p2.ElasticForce.X, -p1.ElasticForce.X)

	// discontinuum contacts do not contribute to the stress tensor
	for _, p := range ps {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				chk.Float64(tst, io.Sf("S%d(%d,%d)", p.Id, i, j), 1e-15, p.Stress.At(i, j), 0)
			}
		}
	}
}

func Test_kernel05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kernel05")

	// particles without group generated with an overlap of 0.1
	p1 := newGrain(1, 0, r3.Vec{})
	p2 := newGrain(2, 0, r3.Vec{X: 1.9})
	ps := Particles{1: p1, 2: p2}
	for _, p := range ps {
		p.Disc = newDisc(tst, "linear", nil)
		p.EstablishInitialBonds([]int{1, 2}, ps)
	}
	chk.Array(tst, "delta", 1e-15, p1.IniDelta, []float64{0.1})
	chk.Float64(tst, "IniDeltaOf(0)", 1e-15, p1.IniDeltaOf(0), 0.1)

	// the initial configuration is force free
	info := &StepInfo{Dt: 1e-3}
	runStep(ps, info)
	chk.Float64(tst, "|F1|", 1e-15, r3.Norm(p1.ContactForce), 0)
	chk.Float64(tst, "|F2|", 1e-15, r3.Norm(p2.ContactForce), 0)

	// approach: indentation is measured from the initial distance
	moveTo(p2, r3.Vec{X: 1.89})
	p2.DeltaDisp = r3.Vec{}
	runStep(ps, info)
	kn := p1.Young * math.Pi * 0.5
	chk.Float64(tst, "F1x", 1e-8, p1.ElasticForce.X, -kn*0.01)
	chk.Float64(tst, "F2x", 1e-8, p2.ElasticForce.X, kn*0.01)
}
