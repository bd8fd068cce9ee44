// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/godem/mdl/contact"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Type  string     `json:"type"`  // type of material; "particle" or "wall"
	Model string     `json:"model"` // name of continuum law; e.g. "elastic", "cohesive". may be empty
	Disc  string     `json:"disc"`  // name of discontinuum law; e.g. "linear", "hertz"
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // prms holds all material and model parameters

	// derived
	Young   float64              // Young's modulus
	Poisson float64              // Poisson's coefficient
	Density float64              // density
	RollFr  float64              // rolling friction coefficient
	Cont    contact.Continuum    // prototype of continuum law; cloned for each bond
	DiscLaw contact.Discontinuum // discontinuum law; shared by all contacts of a particle
}

// Mats holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	Particles map[string]*Material // subset with materials of particles
	Walls     map[string]*Material // subset with materials of walls
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := readFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials file %q:\n%v", fn, err)
	}

	// subsets and models
	mdb.Particles = make(map[string]*Material)
	mdb.Walls = make(map[string]*Material)
	for _, m := range mdb.Materials {
		err = m.init()
		if err != nil {
			return nil, chk.Err("cannot initialise material %q:\n%v", m.Name, err)
		}
		switch m.Type {
		case "particle":
			mdb.Particles[m.Name] = m
		case "wall":
			mdb.Walls[m.Name] = m
		default:
			return nil, chk.Err("material type %q is incorrect; options are \"particle\" and \"wall\"", m.Type)
		}
	}
	return
}

// Get returns material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// init sets derived data and allocates models
func (o *Material) init() (err error) {
	for _, p := range o.Prms {
		switch p.N {
		case "E":
			o.Young = p.V
		case "nu":
			o.Poisson = p.V
		case "rho":
			o.Density = p.V
		case "rollfr":
			o.RollFr = p.V
		}
	}
	if o.Young <= 0 {
		return chk.Err("Young's modulus E=%g must be positive", o.Young)
	}
	if o.Poisson < 0 || o.Poisson >= 0.5 {
		return chk.Err("Poisson's coefficient nu=%g must be in [0, 0.5)", o.Poisson)
	}
	if o.Type == "wall" {
		return
	}
	if o.Density <= 0 {
		return chk.Err("density rho=%g must be positive", o.Density)
	}
	if o.Model != "" {
		o.Cont, err = contact.New(o.Model)
		if err != nil {
			return
		}
		err = o.Cont.Init(o.Prms)
		if err != nil {
			return
		}
	}
	if o.Disc == "" {
		o.Disc = "linear"
	}
	o.DiscLaw, err = contact.NewDisc(o.Disc)
	if err != nil {
		return
	}
	return o.DiscLaw.Init(o.Prms)
}

// String prints one material
func (o *Material) String() string {
	return io.Sf("    {\"name\":%q, \"type\":%q, \"model\":%q, \"disc\":%q, \"E\":%g, \"nu\":%g, \"rho\":%g}",
		o.Name, o.Type, o.Model, o.Disc, o.Young, o.Poisson, o.Density)
}
