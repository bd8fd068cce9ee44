// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/interp"
)

// TimeFunc defines functions of time (and space) such as target stresses and loading ramps
type TimeFunc interface {
	F(t float64, x []float64) float64 // evaluates function
}

// PlotFdata holds information to plot functions
type PlotFdata struct {
	Ti   float64  `json:"ti"`   // initial time
	Tf   float64  `json:"tf"`   // final time
	Np   int      `json:"np"`   // number of points
	Skip []string `json:"skip"` // skip functions
}

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function. ex: zero, load, target1, etc.
	Type string     `json:"type"` // type of function. ex: cte, rmp, table
	Prms dbf.Params `json:"prms"` // parameters
	T    []float64  `json:"t"`    // table: times (strictly increasing)
	V    []float64  `json:"v"`    // table: values
}

// Funcs holds functions
type FuncsData []*FuncData

// Get returns function by name
func (o FuncsData) Get(name string) (fcn TimeFunc, err error) {
	if name == "zero" || name == "none" {
		fcn = constant(0)
		return
	}
	for _, f := range o {
		if f.Name == name {
			if f.Type == "table" {
				fcn, err = newTable(f.T, f.V)
			} else {
				fcn, err = newDbf(f.Type, f.Prms)
			}
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// PlotAll plot all functions
func (o FuncsData) PlotAll(pd *PlotFdata, dirout, fnkey string) (err error) {
	np := pd.Np
	if np < 2 {
		np = 101
	}
	for _, f := range o {
		if utl.StrIndexSmall(pd.Skip, f.Name) >= 0 {
			continue
		}
		ff, err := o.Get(f.Name)
		if err != nil {
			return err
		}
		T := utl.LinSpace(pd.Ti, pd.Tf, np)
		F := make([]float64, np)
		for i, t := range T {
			F[i] = ff.F(t, nil)
		}
		plt.Reset(false, nil)
		plt.Plot(T, F, &plt.A{C: "b", L: f.Name})
		plt.Gll("$t$", f.Name, nil)
		plt.Save(dirout, io.Sf("functions-%s-%s", fnkey, f.Name))
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////////

// constant implements a constant function
type constant float64

// F returns the constant value
func (o constant) F(t float64, x []float64) float64 { return float64(o) }

// table implements a piecewise linear function of time; values beyond the table are held constant
type table struct {
	pl interp.PiecewiseLinear
}

// newTable returns a new table
func newTable(T, V []float64) (o *table, err error) {
	if len(T) != len(V) {
		return nil, chk.Err("table: number of times (%d) must be equal to number of values (%d)", len(T), len(V))
	}
	if len(T) == 0 {
		return nil, chk.Err("table: at least one point is required")
	}
	for i := 1; i < len(T); i++ {
		if T[i] <= T[i-1] {
			return nil, chk.Err("table: times must be strictly increasing. t[%d]=%g ≤ t[%d]=%g", i, T[i], i-1, T[i-1])
		}
	}
	o = new(table)
	if len(T) == 1 {
		T = []float64{T[0], T[0] + 1}
		V = []float64{V[0], V[0]}
	}
	err = o.pl.Fit(T, V)
	if err != nil {
		return nil, chk.Err("table: cannot fit data:\n%v", err)
	}
	return
}

// F evaluates the table at t
func (o *table) F(t float64, x []float64) float64 {
	return o.pl.Predict(t)
}

// newDbf allocates a function from the gosl database. Unknown names and invalid parameters
// make dbf panic; the message is returned as an error
func newDbf(name string, prms dbf.Params) (fcn dbf.T, err error) {
	defer func() {
		if r := recover(); r != nil {
			fcn, err = nil, chk.Err("%v", r)
		}
	}()
	fcn = dbf.New(name, prms)
	return
}

// readFile reads a whole file; io.ReadFile panics if the file cannot be read
func readFile(fn string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("%v", r)
		}
	}()
	b = io.ReadFile(fn)
	return
}

// String prints one function
func (o FuncData) String() string {
	return io.Sf("    {\"name\":%q, \"type\":%q, \"nprms\":%d, \"ntable\":%d}", o.Name, o.Type, len(o.Prms), len(o.T))
}
