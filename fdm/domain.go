// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"math"

	"github.com/Kostia9/math-modelling/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Grid holds the uniform rectangular grid geometry
type Grid struct {
	Nx int     // number of nodes along x
	Ny int     // number of nodes along y
	Dx float64 // node spacing along x
	Dy float64 // node spacing along y
	Dt float64 // time step
	C  float64 // wave propagation speed
}

// NewGrid derives the grid geometry from input data
func NewGrid(dat *inp.GridData, dt float64) (g *Grid) {
	g = new(Grid)
	g.Nx, g.Ny = dat.Nx, dat.Ny
	g.Dx = dat.Lx / float64(dat.Nx-1)
	g.Dy = dat.Ly / float64(dat.Ny-1)
	g.Dt = dt
	g.C = dat.C
	return
}

// Domain holds the grid, the rolling window of displacement fields and the
// per-step work buffers. The three levels are: U0 @ k-1, U1 @ k and U @ k+1.
// The fields are exclusively owned here; the solver works on U during one
// step and the levels rotate only after a completed solve.
type Domain struct {

	// auxiliary
	Sim     *inp.Simulation // simulation data
	Grid    *Grid           // grid geometry
	Coefs   *Coefs          // scheme coefficients
	Bcs     Boundary        // boundary condition
	Sources []*Source       // excitation generators

	// solution state
	U0   [][]float64 // field at level k-1
	U1   [][]float64 // field at level k (the current state)
	U    [][]float64 // field at level k+1 (being solved)
	Rhs  [][]float64 // right-hand side of the linear system; rebuilt per step
	T    float64     // current time
	Step int         // current step number
}

// NewDomain allocates the domain data for one simulation.
// The membrane starts from rest: both seed levels are zero, with the
// boundary condition applied.
func NewDomain(sim *inp.Simulation) (o *Domain, err error) {
	o = new(Domain)
	o.Sim = sim
	o.Grid = NewGrid(&sim.Grid, sim.Control.Dt)
	o.Coefs = new(Coefs)
	o.Coefs.Init(o.Grid)
	o.Bcs, err = NewBoundary(&sim.Boundary, o.Grid)
	if err != nil {
		return nil, err
	}
	o.Sources, err = NewSources(sim)
	if err != nil {
		return nil, err
	}
	nx, ny := o.Grid.Nx, o.Grid.Ny
	o.U0 = utl.Alloc(nx, ny)
	o.U1 = utl.Alloc(nx, ny)
	o.U = utl.Alloc(nx, ny)
	o.Rhs = utl.Alloc(nx, ny)
	o.Bcs.Apply(o.U0)
	o.Bcs.Apply(o.U1)
	return
}

// InjectSources overrides the displacement at the source nodes of the
// current (level k) field with the excitation values at time t. The override
// is re-applied every step so that the relaxation cannot wash it out.
// Simultaneous sources sharing a node are additive.
func (o *Domain) InjectSources(t float64) {
	for _, src := range o.Sources {
		if src.Active(t) {
			o.U1[src.I][src.J] = 0
		}
	}
	for _, src := range o.Sources {
		if src.Active(t) {
			o.U1[src.I][src.J] += src.Fcn.F(t, nil)
		}
	}
}

// CalcRhs recomputes the right-hand side field from the two known levels:
//  d[i][j] = (-2 U1 + U0)/Dt² - (C²/2) (Lapx(U0) + Lapy(U0))
// where Lapx and Lapy are the second-difference terms of the five-point
// Laplacian. Only interior nodes are set.
func (o *Domain) CalcRhs() {
	g := o.Grid
	dtsq := g.Dt * g.Dt
	chalf := g.C * g.C / 2.0
	dxsq := g.Dx * g.Dx
	dysq := g.Dy * g.Dy
	for i := 1; i < g.Nx-1; i++ {
		for j := 1; j < g.Ny-1; j++ {
			lapx := (o.U0[i-1][j] - 2.0*o.U0[i][j] + o.U0[i+1][j]) / dxsq
			lapy := (o.U0[i][j-1] - 2.0*o.U0[i][j] + o.U0[i][j+1]) / dysq
			o.Rhs[i][j] = (-2.0*o.U1[i][j]+o.U0[i][j])/dtsq - chalf*(lapx+lapy)
		}
	}
}

// Rotate retires the oldest field and promotes the solved one. The retired
// buffer becomes the workspace of the next step.
func (o *Domain) Rotate() {
	o.U0, o.U1, o.U = o.U1, o.U, o.U0
}

// CheckFinite fails if the solved field contains NaN or ±Inf values.
// Non-finite values corrupt all subsequent steps irrecoverably, so this is
// the one condition that must abort the run.
func (o *Domain) CheckFinite() (err error) {
	for i := 0; i < o.Grid.Nx; i++ {
		for j := 0; j < o.Grid.Ny; j++ {
			v := o.U[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return chk.Err("non-finite value %v at node (%d,%d) of step %d", v, i, j, o.Step)
			}
		}
	}
	return
}

// Energy returns the discrete total energy (kinetic + potential) of the
// current state window
func (o *Domain) Energy() float64 {
	return FieldEnergy(o.U1, o.U0, o.Grid)
}

// FieldEnergy returns the discrete total energy of two consecutive field
// levels: the kinetic part from the time difference and the potential part
// from forward gradients of the newest level
func FieldEnergy(U1, U0 [][]float64, g *Grid) (E float64) {
	dA := g.Dx * g.Dy
	csq := g.C * g.C
	for i := 0; i < g.Nx; i++ {
		for j := 0; j < g.Ny; j++ {
			v := (U1[i][j] - U0[i][j]) / g.Dt
			E += 0.5 * v * v * dA
		}
	}
	for i := 0; i < g.Nx-1; i++ {
		for j := 0; j < g.Ny-1; j++ {
			gx := (U1[i+1][j] - U1[i][j]) / g.Dx
			gy := (U1[i][j+1] - U1[i][j]) / g.Dy
			E += 0.5 * csq * (gx*gx + gy*gy) * dA
		}
	}
	return
}
