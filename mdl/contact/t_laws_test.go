// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import (
	"math"
	"testing"

	"github.com/cpmech/godem/ana"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"gonum.org/v1/gonum/spatial/r3"
)

func Test_equiv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("equiv01")

	chk.Float64(tst, "Eeq", 1e-6, EquivYoung(1e9, 3e9), 1.5e9)
	chk.Float64(tst, "Eeq(same)", 1e-6, EquivYoung(7e9, 7e9), 7e9)
	chk.Float64(tst, "νeq", 1e-15, EquivPoisson(0.2, 0.3), 0.24)
	chk.Float64(tst, "νeq(0,0)", 1e-15, EquivPoisson(0, 0), 0)

	p := Pair{R1: 1, R2: 0.5, M1: 2, M2: 2}
	chk.Float64(tst, "Req", 1e-15, p.Req(), 1.0/3.0)
	chk.Float64(tst, "Meq", 1e-15, p.Meq(), 1)
	p.R2, p.M2 = 0, 0
	chk.Float64(tst, "Req(wall)", 1e-15, p.Req(), 1)
	chk.Float64(tst, "Meq(wall)", 1e-15, p.Meq(), 2)
}

func Test_factory01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factory01")

	for _, name := range []string{"elastic", "cohesive"} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		err = mdl.Init(mdl.GetPrms())
		if err != nil {
			tst.Errorf("Init failed: %v\n", err)
			return
		}
	}
	for _, name := range []string{"linear", "hertz"} {
		mdl, err := NewDisc(name)
		if err != nil {
			tst.Errorf("NewDisc failed: %v\n", err)
			return
		}
		err = mdl.Init(mdl.GetPrms())
		if err != nil {
			tst.Errorf("Init failed: %v\n", err)
			return
		}
	}

	_, err := New("hertz")
	if err == nil {
		tst.Errorf("New should have failed with discontinuum model name\n")
		return
	}
	_, err = NewDisc("unknown")
	if err == nil {
		tst.Errorf("NewDisc should have failed with unknown model name\n")
		return
	}
}

func Test_elastic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("elastic01")

	proto, err := New("elastic")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = proto.Init(dbf.Params{&dbf.P{N: "damp", V: 0.1}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// analytical solution
	var sol ana.ElasticBar
	sol.Init(dbf.Params{
		&dbf.P{N: "E", V: 1e9},
		&dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "R1", V: 1},
		&dbf.P{N: "R2", V: 0.5},
		&dbf.P{N: "d0", V: 1.4},
	})

	// constants
	law := proto.Clone()
	p := &Pair{R1: 1, R2: 0.5, M1: 2, M2: 2, E: 1e9, Nu: 0.25, IniDist: 1.4, Dist: 1.399, Indent: 1e-3}
	p.Area = law.ContactArea(p.R1, p.R2)
	law.ElasticConstants(p)
	chk.Float64(tst, "A", 1e-15, p.Area, sol.A)
	chk.Float64(tst, "kn", 1e-6, p.Kn, sol.Kn)
	chk.Float64(tst, "kt", 1e-6, p.Kt, sol.Kt)

	// forces
	p.SetLocal([3]float64{1e-4, -2e-4, 0}, [3]float64{0, 0, -1})
	F := []float64{0, 0, 0}
	sliding := law.Forces(F, p)
	if sliding {
		tst.Errorf("elastic bond must not slide\n")
		return
	}
	chk.Array(tst, "F", 1e-6, F, []float64{-sol.Kt * 1e-4, sol.Kt * 2e-4, sol.Force(1e-3)})
	chk.Float64(tst, "σ", 1e-6, law.State().Sigma, sol.Stress(1e-3))
	chk.Int(tst, "failure", law.State().FailureId, Intact)

	// clones do not share state
	chk.Float64(tst, "σ(proto)", 1e-15, proto.State().Sigma, 0)
	other := proto.Clone()
	chk.Float64(tst, "σ(other)", 1e-15, other.State().Sigma, 0)

	// damping
	Fd := []float64{0, 0, 0}
	law.ViscousDamping(Fd, p, false)
	chk.Float64(tst, "Fd[2]", 1e-8, Fd[2], 0.2*math.Sqrt(p.Kn))
	law.ViscousDamping(Fd, p, true)
	chk.Array(tst, "Fd(sliding)", 1e-8, Fd, []float64{0, 0, 0.2 * math.Sqrt(p.Kn)})

	// rotational moment
	M := law.RotationalMoment(p, r3.Vec{Z: 1e-3})
	kr := 1e9 * p.Area * p.Area / (4 * math.Pi * 1.4)
	chk.Array(tst, "M", 1e-8, []float64{M.X, M.Y, M.Z}, []float64{0, 0, -kr * 1e-3})
}

func Test_cohesive01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cohesive01")

	// tension softening: δe = 0.01, δu = 0.02
	law := new(Cohesive)
	err := law.Init(dbf.Params{
		&dbf.P{N: "sigmax", V: 1},
		&dbf.P{N: "tau0", V: 1e3},
		&dbf.P{N: "phi", V: 30},
		&dbf.P{N: "mu", V: 0.5},
		&dbf.P{N: "dct", V: 1},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	p := &Pair{Kn: 100, Kt: 40, Area: 1, M1: 1, M2: 1}
	F := []float64{0, 0, 0}

	// softening branch
	p.Indent = -0.015
	law.Forces(F, p)
	chk.Float64(tst, "D", 1e-14, law.State().Damage, 2.0/3.0)
	chk.Float64(tst, "Fn", 1e-14, F[2], -0.5)
	chk.Int(tst, "failure", law.State().FailureId, Intact)
	chk.Float64(tst, "criterion", 1e-15, law.State().Criterion, 1)

	// unloading keeps the damage
	p.Indent = -0.01
	law.Forces(F, p)
	chk.Float64(tst, "D", 1e-14, law.State().Damage, 2.0/3.0)
	chk.Float64(tst, "Fn", 1e-14, F[2], -1.0/3.0)

	// rupture
	p.Indent = -0.03
	law.Forces(F, p)
	chk.Int(tst, "failure", law.State().FailureId, FailTension)
	chk.Float64(tst, "D", 1e-15, law.State().Damage, 1)
	chk.Float64(tst, "Fn", 1e-15, F[2], 0)

	// compression does not heal the bond
	p.Indent = 0.001
	law.Forces(F, p)
	chk.Int(tst, "failure", law.State().FailureId, FailTension)
	chk.Float64(tst, "D", 1e-15, law.State().Damage, 1)
	chk.Float64(tst, "Fn", 1e-15, F[2], 0.1)

	// failed bonds in tension have no damping
	p.Indent = -0.001
	p.Vrel = [3]float64{1, 1, 1}
	Fd := []float64{0, 0, 0}
	law.ViscousDamping(Fd, p, false)
	chk.Array(tst, "Fd", 1e-15, Fd, []float64{0, 0, 0})

	// no rotational spring after failure
	M := law.RotationalMoment(p, r3.Vec{X: 1})
	chk.Float64(tst, "|M|", 1e-15, r3.Norm(M), 0)
}

func Test_cohesive02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cohesive02")

	law := new(Cohesive)
	err := law.Init(dbf.Params{
		&dbf.P{N: "sigmax", V: 10},
		&dbf.P{N: "tau0", V: 1},
		&dbf.P{N: "phi", V: 0},
		&dbf.P{N: "mu", V: 0.5},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// shear failure
	p := &Pair{Kn: 100, Kt: 40, Area: 1, Indent: 0.01}
	p.Δu = [3]float64{-0.05, 0, 0}
	F := []float64{0, 0, 0}
	sliding := law.Forces(F, p)
	if !sliding {
		tst.Errorf("bond must slide after shear failure\n")
		return
	}
	chk.Int(tst, "failure", law.State().FailureId, FailShear)
	chk.Array(tst, "F", 1e-14, F, []float64{0.5, 0, 1})

	// failure id is monotone
	p.Δu = [3]float64{}
	sliding = law.Forces(F, p)
	if sliding {
		tst.Errorf("bond must stick at the Coulomb limit\n")
		return
	}
	chk.Int(tst, "failure", law.State().FailureId, FailShear)
	p.Indent = -0.5
	law.Forces(F, p)
	chk.Int(tst, "failure", law.State().FailureId, FailShear)

	// invalid parameters
	err = new(Cohesive).Init(dbf.Params{&dbf.P{N: "sigmax", V: 1}})
	if err == nil {
		tst.Errorf("Init should have failed with tau0 = 0\n")
		return
	}
}

func Test_disc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("disc01")

	law, err := NewDisc("linear")
	if err != nil {
		tst.Errorf("NewDisc failed: %v\n", err)
		return
	}
	err = law.Init(dbf.Params{
		&dbf.P{N: "damp", V: 0.1},
		&dbf.P{N: "mu", V: 0.3},
		&dbf.P{N: "coh", V: 10},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// normal force and sliding
	p := &Pair{R1: 1, R2: 1, M1: 1, M2: 1, E: 1e6, Nu: 0.25, Indent: 1e-3}
	p.SetLocal([3]float64{-1, 0, 0}, [3]float64{0.5, 0, -2})
	F, Fd := []float64{0, 0, 0}, []float64{0, 0, 0}
	coh, sliding := law.Forces(F, Fd, p)
	kn := math.Pi * 1e6 * 0.5
	chk.Float64(tst, "kn", 1e-8, p.Kn, kn)
	chk.Float64(tst, "kt", 1e-8, p.Kt, kn/2.5)
	chk.Array(tst, "F", 1e-10, F, []float64{0.3 * kn * 1e-3, 0, kn * 1e-3})
	if !sliding {
		tst.Errorf("contact must slide\n")
		return
	}
	chk.Float64(tst, "Fd[0]", 1e-15, Fd[0], 0)
	chk.Float64(tst, "Fd[2]", 1e-8, Fd[2], 2*0.1*math.Sqrt(0.5*kn)*2)
	chk.Float64(tst, "cohesive", 1e-12, coh, 10*math.Pi*0.5*1e-3)
}

func Test_disc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("disc02")

	law, err := NewDisc("hertz")
	if err != nil {
		tst.Errorf("NewDisc failed: %v\n", err)
		return
	}
	err = law.Init(dbf.Params{&dbf.P{N: "mu", V: 0.5}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// analytical solution
	var sol ana.HertzSpheres
	sol.Init(dbf.Params{
		&dbf.P{N: "E1", V: 1e6},
		&dbf.P{N: "E2", V: 1e6},
		&dbf.P{N: "nu1", V: 0.3},
		&dbf.P{N: "nu2", V: 0.3},
		&dbf.P{N: "R1", V: 1},
		&dbf.P{N: "R2", V: 1},
	})

	// compare
	p := &Pair{R1: 1, R2: 1, M1: 1, M2: 1, E: EquivYoung(1e6, 1e6), Nu: EquivPoisson(0.3, 0.3)}
	for _, δ := range []float64{1e-5, 1e-4, 1e-3, 1e-2} {
		p.Indent = δ
		F, Fd := []float64{0, 0, 0}, []float64{0, 0, 0}
		law.Forces(F, Fd, p)
		sol.CheckForce(tst, F[2], δ, 1e-9)
		chk.Float64(tst, "kn", 1e-9, p.Kn, sol.Stiffness(δ))
	}
}
