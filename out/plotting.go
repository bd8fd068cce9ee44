// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Alias string    // alias
	X     []float64 // x-values
	Y     []float64 // y-values
	Xlbl  string    // horizontal axis label (raw; e.g. "t")
	Ylbl  string    // vertical axis label (raw; e.g. "reaction")
	Style plt.A     // style
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Id     string       // unique identifier
	Title  string       // title of subplot
	Xscale float64      // x-axis scale
	Yscale float64      // y-axis scale
	Xlbl   string       // x-axis label (formatted; e.g. "$t$")
	Ylbl   string       // y-axis label (formatted; e.g. "$\sigma$")
	Data   []*PltEntity // data and styles to be plotted
}

// Splot activates a new subplot window
func Splot(id, splotTitle string) {
	s := &SplotDat{Id: id, Title: splotTitle, Xscale: 1, Yscale: 1}
	Splots = append(Splots, s)
	Csplot = s
}

// SplotConfig configures units and scales of axes
func SplotConfig(xunit, yunit string, xscale, yscale float64) {
	if Csplot != nil {
		var xlabel, ylabel string
		if len(Csplot.Data) > 0 {
			xlabel = Csplot.Data[0].Xlbl
			ylabel = Csplot.Data[0].Ylbl
		}
		Csplot.Xlbl = GetTexLabel(xlabel, xunit)
		Csplot.Ylbl = GetTexLabel(ylabel, yunit)
		Csplot.Xscale = xscale
		Csplot.Yscale = yscale
	}
}

// Plot adds series to the current subplot
//  xHandle -- can be a key of History, e.g. "t", or a slice, e.g. []float64{0, 1, 2}
//  yHandle -- can be a key of History, e.g. "reaction", or a slice
//  alias   -- alias such as "top"
//  sty     -- style; e.g. &plt.A{C:"b", L:"label"}
func Plot(xHandle, yHandle interface{}, alias string, sty *plt.A) (err error) {
	var e PltEntity
	e.Alias = alias
	if sty != nil {
		e.Style = *sty
	}
	e.X, e.Xlbl, err = getValsAndLabel(xHandle)
	if err != nil {
		return
	}
	e.Y, e.Ylbl, err = getValsAndLabel(yHandle)
	if err != nil {
		return
	}
	if len(e.X) != len(e.Y) {
		return chk.Err("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(e.X), len(e.Y))
	}
	if Csplot == nil {
		Splot(io.Sf("%d", len(Splots)), "")
	}
	Csplot.Data = append(Csplot.Data, &e)
	SplotConfig("", "", Csplot.Xscale, Csplot.Yscale)
	return
}

// Draw saves figure with all subplots
//  dirout -- directory to save figure
//  fnkey  -- file name key (without extension)
//  nr     -- number of rows. Use -1 to compute best value
//  nc     -- number of columns. Use -1 to compute best value
func Draw(dirout, fnkey string, nr, nc int) {
	nplots := len(Splots)
	if nplots == 0 {
		return
	}
	if nr < 0 || nc < 0 {
		nr, nc = utl.BestSquare(nplots)
	}
	plt.Reset(false, nil)
	for k, spl := range Splots {
		plt.Subplot(nr, nc, k+1)
		if spl.Title != "" {
			plt.Title(spl.Title, nil)
		}
		for _, d := range spl.Data {
			if d.Style.L == "" {
				d.Style.L = d.Alias
			}
			x, y := d.X, d.Y
			if spl.Xscale != 1 {
				x = utl.GetCopy(d.X)
				floats.Scale(spl.Xscale, x)
			}
			if spl.Yscale != 1 {
				y = utl.GetCopy(d.Y)
				floats.Scale(spl.Yscale, y)
			}
			style := d.Style
			plt.Plot(x, y, &style)
		}
		plt.Gll(spl.Xlbl, spl.Ylbl, nil)
	}
	plt.Save(dirout, fnkey)
}

// PlotControl draws target and reaction stresses, velocity and imposed strain versus time
func PlotControl(dirout, fnkey string, hist *History) (err error) {
	Hist = hist
	Splots, Csplot = nil, nil
	Splot("stress", "control: stresses")
	if err = Plot("t", "target", "target", &plt.A{C: "r", Ls: "--"}); err != nil {
		return
	}
	if err = Plot("t", "reaction", "reaction", &plt.A{C: "b"}); err != nil {
		return
	}
	Splot("velocity", "control: velocity")
	if err = Plot("t", "velocity", "velocity", &plt.A{C: "k"}); err != nil {
		return
	}
	Splot("strain", "control: imposed strain")
	if err = Plot("t", "strain", "strain", &plt.A{C: "g"}); err != nil {
		return
	}
	Draw(dirout, io.Sf("control-%s", fnkey), 3, 1)
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

func getValsAndLabel(handle interface{}) ([]float64, string, error) {
	switch hnd := handle.(type) {
	case []float64:
		return hnd, "", nil
	case string:
		if Hist == nil {
			return nil, "", chk.Err("history must be loaded before plotting %q", hnd)
		}
		vals, err := Hist.Get(hnd)
		return vals, hnd, err
	}
	return nil, "", chk.Err("cannot get values slice with handle = %v", handle)
}
