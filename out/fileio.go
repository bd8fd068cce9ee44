// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/godem/ele"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// WriteStates saves the states of all particles to a file which name is set with tidx (time output index)
func WriteStates(dirout, fnkey, enctype string, tidx int, particles []*ele.Particle) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := utl.NewEncoder(&buf, enctype)

	// number of particles
	err = enc.Encode(len(particles))
	if err != nil {
		return chk.Err("cannot encode number of particles\n%v", err)
	}

	// particles
	for _, p := range particles {
		err = p.Encode(enc)
		if err != nil {
			return chk.Err("cannot encode particle %d\n%v", p.Id, err)
		}
	}

	// save file
	return saveFile(statesPath(dirout, fnkey, enctype, tidx), &buf)
}

// ReadStates reads the states of particles from a file which name is set with tidx (time output index)
func ReadStates(dirout, fnkey, enctype string, tidx int) (states []*ele.State, err error) {

	// open file
	fn := statesPath(dirout, fnkey, enctype, tidx)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()

	// decoder
	dec := utl.NewDecoder(fil, enctype)

	// number of particles
	var n int
	err = dec.Decode(&n)
	if err != nil {
		return nil, chk.Err("cannot decode number of particles in %q\n%v", fn, err)
	}

	// particles
	states = make([]*ele.State, n)
	for i := 0; i < n; i++ {
		states[i] = new(ele.State)
		err = dec.Decode(states[i])
		if err != nil {
			return nil, chk.Err("cannot decode state %d in %q\n%v", i, fn, err)
		}
	}
	return
}

// WriteBonds saves the bond elements to a file which name is set with tidx (time output index)
func WriteBonds(dirout, fnkey, enctype string, tidx int, bonds []*ele.BondElement) (err error) {
	var buf bytes.Buffer
	enc := utl.NewEncoder(&buf, enctype)
	err = enc.Encode(bonds)
	if err != nil {
		return chk.Err("cannot encode bond elements\n%v", err)
	}
	return saveFile(bondsPath(dirout, fnkey, enctype, tidx), &buf)
}

// ReadBonds reads bond elements from a file which name is set with tidx (time output index)
func ReadBonds(dirout, fnkey, enctype string, tidx int) (bonds []*ele.BondElement, err error) {
	fn := bondsPath(dirout, fnkey, enctype, tidx)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	err = utl.NewDecoder(fil, enctype).Decode(&bonds)
	if err != nil {
		return nil, chk.Err("cannot decode bond elements in %q\n%v", fn, err)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func statesPath(dirout, fnkey, enctype string, tidx int) string {
	return filepath.Join(dirout, io.Sf("%s_par_%010d.%s", fnkey, tidx, enctype))
}

func bondsPath(dirout, fnkey, enctype string, tidx int) string {
	return filepath.Join(dirout, io.Sf("%s_bnd_%010d.%s", fnkey, tidx, enctype))
}

func summaryPath(dirout, fnkey, enctype string) string {
	return filepath.Join(dirout, io.Sf("%s_sum.%s", fnkey, enctype))
}

func saveFile(filename string, buf *bytes.Buffer) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return chk.Err("cannot create file %q\n%v", filename, err)
	}
	defer func() {
		if e := fil.Close(); err == nil {
			err = e
		}
	}()
	_, err = fil.Write(buf.Bytes())
	if Verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
