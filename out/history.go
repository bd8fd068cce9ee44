// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"path/filepath"

	"github.com/cpmech/godem/ctrl"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// History holds the time series of the control module
type History struct {
	T         []float64 // time
	Target    []float64 // target stress
	Reaction  []float64 // averaged reaction stress
	Velocity  []float64 // imposed velocity
	Stiffness []float64 // estimated stiffness
	Strain    []float64 // imposed strain
}

// NewHistory collects the records of the control module
func NewHistory(records []*ctrl.Record) (o *History) {
	o = new(History)
	for _, r := range records {
		o.Append(r)
	}
	return
}

// Append adds one record
func (o *History) Append(r *ctrl.Record) {
	o.T = append(o.T, r.T)
	o.Target = append(o.Target, r.Target)
	o.Reaction = append(o.Reaction, r.Reaction)
	o.Velocity = append(o.Velocity, r.Velocity)
	o.Stiffness = append(o.Stiffness, r.Stiffness)
	o.Strain = append(o.Strain, r.Strain)
}

// Get returns the series corresponding to key
//  key -- "t", "target", "reaction", "velocity", "stiffness" or "strain"
func (o *History) Get(key string) ([]float64, error) {
	switch key {
	case "t":
		return o.T, nil
	case "target":
		return o.Target, nil
	case "reaction":
		return o.Reaction, nil
	case "velocity":
		return o.Velocity, nil
	case "stiffness":
		return o.Stiffness, nil
	case "strain":
		return o.Strain, nil
	}
	return nil, chk.Err("history has no series named %q", key)
}

// Write saves the history as a table with one row per step
func (o *History) Write(dirout, fnkey string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot write history:\n%v", r)
		}
	}()
	var buf bytes.Buffer
	io.Ff(&buf, "%23s %23s %23s %23s %23s %23s\n", "t", "target", "reaction", "velocity", "stiffness", "strain")
	for i := range o.T {
		io.Ff(&buf, "%23.15e %23.15e %23.15e %23.15e %23.15e %23.15e\n", o.T[i], o.Target[i], o.Reaction[i], o.Velocity[i], o.Stiffness[i], o.Strain[i])
	}
	io.WriteFileD(dirout, historyFn(fnkey), &buf)
	if Verbose {
		io.Pfblue2("file <%s> written\n", filepath.Join(dirout, historyFn(fnkey)))
	}
	return
}

// ReadHistory reads a table saved by Write
func ReadHistory(dirout, fnkey string) (o *History, err error) {
	defer func() {
		if r := recover(); r != nil {
			o, err = nil, chk.Err("cannot read history:\n%v", r)
		}
	}()
	_, dat := io.ReadTable(filepath.Join(dirout, historyFn(fnkey)))
	for _, key := range []string{"t", "target", "reaction", "velocity", "stiffness", "strain"} {
		if _, ok := dat[key]; !ok {
			return nil, chk.Err("history file has no column named %q", key)
		}
	}
	o = &History{
		T:         dat["t"],
		Target:    dat["target"],
		Reaction:  dat["reaction"],
		Velocity:  dat["velocity"],
		Stiffness: dat["stiffness"],
		Strain:    dat["strain"],
	}
	return
}

func historyFn(fnkey string) string {
	return fnkey + "_ctrl.res"
}
