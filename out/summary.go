// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Summary records summary of outputs
type Summary struct {

	// main data
	OutTimes []float64 `json:"outtimes"` // [nOutTimes] output times
	Nsteps   int       `json:"nsteps"`   // number of time steps
	Dt       float64   `json:"dt"`       // time step size
	Nbonds   int       `json:"nbonds"`   // number of continuum bonds
	Nbroken  int       `json:"nbroken"`  // number of failed bonds at the end
	Dirout   string    `json:"dirout"`   // directory where results are stored
	Fnkey    string    `json:"fnkey"`    // filename key of simulation
	EncType  string    `json:"enctype"`  // encoder type
}

// NewSummary returns a new summary
func NewSummary(dirout, fnkey, enctype string) *Summary {
	return &Summary{Dirout: dirout, Fnkey: fnkey, EncType: enctype}
}

// Tidx returns the index of the next output time
func (o *Summary) Tidx() int {
	return len(o.OutTimes)
}

// Save saves summary to disc
func (o *Summary) Save() (err error) {
	var buf bytes.Buffer
	enc := utl.NewEncoder(&buf, o.EncType)
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode summary\n%v", err)
	}
	return saveFile(summaryPath(o.Dirout, o.Fnkey, o.EncType), &buf)
}

// ReadSummary reads summary back
func ReadSummary(dirout, fnkey, enctype string) (o *Summary, err error) {
	fn := summaryPath(dirout, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open summary file %q\n%v", fn, err)
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	o = new(Summary)
	err = utl.NewDecoder(fil, enctype).Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode summary in %q\n%v", fn, err)
	}
	return
}
