// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"github.com/Kostia9/math-modelling/inp"
	"github.com/cpmech/gosl/chk"
)

// Boundary enforces one boundary condition on a field, in place. Apply is
// called after every relaxation sweep, not just at the end of a step,
// because interior updates read edge values as neighbours.
type Boundary interface {
	Apply(U [][]float64)
}

// bcallocators holds all available boundary conditions
var bcallocators = make(map[string]func(dat *inp.BoundaryData, g *Grid) Boundary)

// NewBoundary returns a boundary condition selected by its kind
func NewBoundary(dat *inp.BoundaryData, g *Grid) (Boundary, error) {
	if alloc, ok := bcallocators[dat.Kind]; ok {
		return alloc(dat, g), nil
	}
	return nil, chk.Err("cannot find boundary condition kind %q", dat.Kind)
}

// FreeBc models free edges: zero spatial gradient normal to each edge. Edge
// nodes mirror their nearest interior neighbour and corners take the average
// of their two edge neighbours.
type FreeBc struct {
	nx, ny int
}

// ClampedBc models a fixed membrane rim: every edge node is forced to Val
type ClampedBc struct {
	nx, ny int
	Val    float64
}

// set factory of boundary conditions
func init() {
	bcallocators["free"] = func(dat *inp.BoundaryData, g *Grid) Boundary {
		return &FreeBc{g.Nx, g.Ny}
	}
	bcallocators["clamped"] = func(dat *inp.BoundaryData, g *Grid) Boundary {
		return &ClampedBc{g.Nx, g.Ny, dat.Value}
	}
}

// Apply mirrors the edge nodes and averages the corners
func (o *FreeBc) Apply(U [][]float64) {
	nx, ny := o.nx, o.ny
	if nx < 2 || ny < 2 {
		return
	}
	for i := 0; i < nx; i++ {
		U[i][0] = U[i][1]
		U[i][ny-1] = U[i][ny-2]
	}
	for j := 0; j < ny; j++ {
		U[0][j] = U[1][j]
		U[nx-1][j] = U[nx-2][j]
	}
	U[0][0] = 0.5 * (U[1][0] + U[0][1])
	U[nx-1][ny-1] = 0.5 * (U[nx-2][ny-1] + U[nx-1][ny-2])
	U[0][ny-1] = 0.5 * (U[0][ny-2] + U[1][ny-1])
	U[nx-1][0] = 0.5 * (U[nx-1][1] + U[nx-2][0])
}

// Apply forces the edge nodes to the fixed rim displacement
func (o *ClampedBc) Apply(U [][]float64) {
	nx, ny := o.nx, o.ny
	for i := 0; i < nx; i++ {
		U[i][0] = o.Val
		U[i][ny-1] = o.Val
	}
	for j := 0; j < ny; j++ {
		U[0][j] = o.Val
		U[nx-1][j] = o.Val
	}
}
