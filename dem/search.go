// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dem

import (
	"math"

	"github.com/cpmech/godem/ele"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// centre implements kdtree.Comparable with the centre of a particle
type centre struct {
	id int     // particle id
	x  r3.Vec  // position
	r  float64 // radius
}

// Compare returns the signed distance from the plane through c and perpendicular to d
func (o centre) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(centre)
	switch d {
	case 0:
		return o.x.X - q.x.X
	case 1:
		return o.x.Y - q.x.Y
	}
	return o.x.Z - q.x.Z
}

// Dims returns the space dimension
func (o centre) Dims() int { return 3 }

// Distance returns the squared distance between centres
func (o centre) Distance(c kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(o.x, c.(centre).x))
}

// centres implements kdtree.Interface
type centres []centre

func (o centres) Index(i int) kdtree.Comparable         { return o[i] }
func (o centres) Len() int                              { return len(o) }
func (o centres) Pivot(d kdtree.Dim) int                { return plane{o, d}.Pivot() }
func (o centres) Slice(start, end int) kdtree.Interface { return o[start:end] }

// plane implements kdtree.SortSlicer along one dimension
type plane struct {
	centres
	dim kdtree.Dim
}

func (o plane) Less(i, j int) bool { return o.centres[i].Compare(o.centres[j], o.dim) < 0 }
func (o plane) Pivot() int         { return kdtree.Partition(o, kdtree.MedianOfMedians(o)) }
func (o plane) Slice(start, end int) kdtree.SortSlicer {
	o.centres = o.centres[start:end]
	return o
}
func (o plane) Swap(i, j int) { o.centres[i], o.centres[j] = o.centres[j], o.centres[i] }

// Searcher finds the neighbours of particles with a k-d tree
//  Note: i and j are neighbours if dist(i,j) ≤ (Ri + Rj) (1 + tol)
type Searcher struct {
	Tol  float64      // relative tolerance
	tree *kdtree.Tree // tree of centres
	rmax float64      // largest radius
}

// NewSearcher returns a new searcher
func NewSearcher(tol float64) *Searcher {
	return &Searcher{Tol: tol}
}

// Build builds the tree with the current positions
func (o *Searcher) Build(particles []*ele.Particle) {
	pts := make(centres, len(particles))
	o.rmax = 0
	for i, p := range particles {
		pts[i] = centre{p.Id, p.X, p.Radius}
		o.rmax = math.Max(o.rmax, p.Radius)
	}
	o.tree = kdtree.New(pts, false)
}

// Neighbours returns the ids of the neighbours of p. The tree must be built
func (o *Searcher) Neighbours(p *ele.Particle) (ids []int) {
	if o.tree == nil {
		return
	}
	q := centre{p.Id, p.X, p.Radius}
	dmax := (p.Radius + o.rmax) * (1.0 + o.Tol)
	keeper := kdtree.NewDistKeeper(dmax * dmax)
	o.tree.NearestSet(keeper, q)
	for _, c := range keeper.Heap {
		if c.Comparable == nil {
			continue
		}
		other := c.Comparable.(centre)
		if other.id == p.Id {
			continue
		}
		lim := (p.Radius + other.r) * (1.0 + o.Tol)
		if c.Dist <= lim*lim {
			ids = append(ids, other.id)
		}
	}
	return
}

// Faces returns the walls near p
func (o *Searcher) Faces(p *ele.Particle, walls []*ele.Wall) (faces []*ele.Wall) {
	for _, w := range walls {
		if w.Distance(p.X) <= p.Radius*(1.0+o.Tol) {
			faces = append(faces, w)
		}
	}
	return
}
