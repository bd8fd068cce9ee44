// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

func Test_hertz01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hertz01")

	var sol HertzSpheres
	sol.Init(dbf.Params{
		&dbf.P{N: "E1", V: 2e6},
		&dbf.P{N: "E2", V: 2e6},
		&dbf.P{N: "nu1", V: 0},
		&dbf.P{N: "nu2", V: 0},
		&dbf.P{N: "R1", V: 2},
		&dbf.P{N: "R2", V: 2},
	})
	chk.Float64(tst, "E*", 1e-10, sol.Es, 1e6)
	chk.Float64(tst, "R", 1e-15, sol.R, 1)
	chk.Float64(tst, "F(δ=0.01)", 1e-9, sol.Force(0.01), 4e6*1e-3/3.0)
	chk.Float64(tst, "F(δ<0)", 1e-15, sol.Force(-1), 0)

	// stiffness is the derivative of the force
	δ, h := 1e-3, 1e-8
	dFdδ := (sol.Force(δ+h) - sol.Force(δ-h)) / (2 * h)
	chk.Float64(tst, "dFdδ", 1e-3, sol.Stiffness(δ), dFdδ)
}

func Test_bar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bar01")

	var sol ElasticBar
	sol.Init(dbf.Params{
		&dbf.P{N: "E", V: 1e9},
		&dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "R1", V: 1},
		&dbf.P{N: "R2", V: 0.5},
		&dbf.P{N: "d0", V: 1.5},
	})
	chk.Float64(tst, "A", 1e-15, sol.A, math.Pi*0.25)
	chk.Float64(tst, "kn", 1e-6, sol.Kn, 1e9*math.Pi*0.25/1.5)
	chk.Float64(tst, "kt", 1e-6, sol.Kt, sol.Kn/2.5)
	chk.Float64(tst, "σ", 1e-6, sol.Stress(1e-3), 1e9*1e-3/1.5)
}
