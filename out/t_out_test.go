// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"testing"

	"github.com/cpmech/godem/ctrl"
	"github.com/cpmech/godem/ele"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r3"
)

const testDir = "/tmp/godem/out"

// newParticles returns two particles with known states
func newParticles() []*ele.Particle {
	a := ele.NewParticle(1, r3.Vec{X: 1, Y: 2, Z: 3}, 0.5, 1e6, 0.25, 1000)
	b := ele.NewParticle(7, r3.Vec{Z: -1}, 0.25, 1e6, 0.25, 1000)
	a.V = r3.Vec{Z: -0.5}
	a.Stress.SetSym(2, 2, -10)
	a.Stress.SetSym(0, 1, 4)
	return []*ele.Particle{a, b}
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01")

	if err := os.MkdirAll(testDir, 0777); err != nil {
		tst.Errorf("cannot create directory:\n%v", err)
		return
	}
	particles := newParticles()
	bonds := []*ele.BondElement{ele.NewBondElement(7, 1)}
	bonds[0].MeanArea = 0.25
	bonds[0].FailureId = 2

	for _, enctype := range []string{"json", "gob"} {

		// particles
		err := WriteStates(testDir, "out01", enctype, 3, particles)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		states, err := ReadStates(testDir, "out01", enctype, 3)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		chk.Int(tst, "nstates", len(states), 2)
		chk.Int(tst, "id", states[1].Id, 7)
		chk.Array(tst, "x", 1e-15, states[0].X, []float64{1, 2, 3})
		chk.Array(tst, "v", 1e-15, states[0].V, []float64{0, 0, -0.5})
		chk.Array(tst, "sig", 1e-15, states[0].Sig, []float64{0, 0, -10, 4, 0, 0})
		chk.Float64(tst, "mass", 1e-12, states[1].Mass, particles[1].Mass)

		// bonds
		err = WriteBonds(testDir, "out01", enctype, 3, bonds)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		res, err := ReadBonds(testDir, "out01", enctype, 3)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		chk.Int(tst, "nbonds", len(res), 1)
		chk.Ints(tst, "ids", []int{res[0].Id1, res[0].Id2}, []int{1, 7})
		chk.Int(tst, "failure", res[0].FailureId, 2)
		chk.Float64(tst, "area", 1e-15, res[0].MeanArea, 0.25)

		// summary
		sum := NewSummary(testDir, "out01", enctype)
		sum.OutTimes = []float64{0.5, 1}
		sum.Nsteps = 20
		sum.Nbroken = 1
		err = sum.Save()
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		sum, err = ReadSummary(testDir, "out01", enctype)
		if err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		chk.Array(tst, "outtimes", 1e-15, sum.OutTimes, []float64{0.5, 1})
		chk.Int(tst, "nsteps", sum.Nsteps, 20)
		chk.Int(tst, "nbroken", sum.Nbroken, 1)
		chk.Int(tst, "tidx", sum.Tidx(), 2)
	}

	// missing files
	if _, err := ReadStates(testDir, "none", "json", 0); err == nil {
		tst.Errorf("reading a missing file must fail\n")
	}
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02")

	if err := os.MkdirAll(testDir, 0777); err != nil {
		tst.Errorf("cannot create directory:\n%v", err)
		return
	}

	// history
	hist := NewHistory([]*ctrl.Record{
		{T: 0, Target: -1, Reaction: 0, Velocity: -0.5, Stiffness: 100, Strain: -0.1},
		{T: 0.1, Target: -2, Reaction: -0.5, Velocity: -0.25, Stiffness: 80, Strain: -0.15},
	})
	err := hist.Write(testDir, "out02")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	res, err := ReadHistory(testDir, "out02")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "t", 1e-15, res.T, []float64{0, 0.1})
	chk.Array(tst, "target", 1e-15, res.Target, []float64{-1, -2})
	chk.Array(tst, "velocity", 1e-15, res.Velocity, []float64{-0.5, -0.25})
	chk.Array(tst, "strain", 1e-15, res.Strain, []float64{-0.1, -0.15})
	if _, err = res.Get("pressure"); err == nil {
		tst.Errorf("unknown series must fail\n")
		return
	}
	if _, err = ReadHistory(testDir, "none"); err == nil {
		tst.Errorf("reading a missing history must fail\n")
		return
	}

	// subplots
	Hist = res
	Splots, Csplot = nil, nil
	Splot("stress", "")
	err = Plot("t", "reaction", "top", nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.String(tst, Csplot.Xlbl, "$t$")
	chk.String(tst, Csplot.Ylbl, "$\\sigma_{zz}$")
	if err = Plot("t", []float64{1, 2, 3}, "bad", nil); err == nil {
		tst.Errorf("series with different lengths must fail\n")
	}
	chk.String(tst, GetTexLabel("velocity", "m/s"), "$v_z\\;m/s$")

	// particle series
	particles := newParticles()
	Sum = NewSummary(testDir, "out02", "json")
	for tidx := 0; tidx < 3; tidx++ {
		particles[0].X.Z = float64(tidx)
		if err = WriteStates(testDir, "out02", "json", tidx, particles); err != nil {
			tst.Errorf("test failed:\n%v", err)
			return
		}
		Sum.OutTimes = append(Sum.OutTimes, float64(tidx))
	}
	z, err := ParticleSeries(1, "z")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "z", 1e-15, z, []float64{0, 1, 2})
	if _, err = ParticleSeries(2, "z"); err == nil {
		tst.Errorf("missing particle must fail\n")
	}
	if chk.Verbose {
		PlotControl(testDir, "out02", res)
	}
}
