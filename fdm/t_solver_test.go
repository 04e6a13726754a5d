// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"testing"

	"github.com/Kostia9/math-modelling/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_sor01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sor01. flat field with no excitation stays flat")

	var sim inp.Simulation
	sim.Solver.SetDefault()
	sim.Grid = inp.GridData{Nx: 7, Ny: 7, Lx: 1, Ly: 1, C: 1}
	sim.Control = inp.ControlData{Dt: 0.05, Tf: 0.5}
	sim.Boundary = inp.BoundaryData{Kind: "clamped"}

	dom, err := NewDomain(&sim)
	if err != nil {
		tst.Errorf("cannot allocate domain:\n%v", err)
		return
	}
	solver := allocators["sor-imp"](dom, nil)
	err = solver.Run(sim.Control.Tf, chk.Verbose, nil)
	if err != nil {
		tst.Errorf("run failed:\n%v", err)
		return
	}

	// no energy was injected and the rim absorbs nothing: exactly zero
	chk.Deep2(tst, "U", 1e-17, dom.U1, utl.Alloc(7, 7))
	chk.IntAssert(dom.Step, 10)
}

func Test_sor02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sor02. 5x5 clamped membrane. one step with a unit excitation")

	analysis := NewMain("data/membrane5.sim", "", true, false, chk.Verbose)
	err := analysis.Run()
	if err != nil {
		tst.Errorf("run failed:\n%v", err)
		return
	}
	d := analysis.Dom
	io.Pforan("U = %v\n", d.U1)

	// all boundary nodes carry the clamped value exactly
	for i := 0; i < 5; i++ {
		chk.Float64(tst, io.Sf("U[%d][0]", i), 1e-17, d.U1[i][0], 0)
		chk.Float64(tst, io.Sf("U[%d][4]", i), 1e-17, d.U1[i][4], 0)
	}
	for j := 0; j < 5; j++ {
		chk.Float64(tst, io.Sf("U[0][%d]", j), 1e-17, d.U1[0][j], 0)
		chk.Float64(tst, io.Sf("U[4][%d]", j), 1e-17, d.U1[4][j], 0)
	}

	// the source node keeps a displacement from the injected excitation
	if d.U1[2][2] <= 0 {
		tst.Errorf("source node lost its displacement: U[2][2] = %g", d.U1[2][2])
		return
	}

	// the small well-conditioned system must converge within 100 sweeps
	chk.IntAssert(len(analysis.Summary.Warnings), 0)

	// frames at t=0 and t=0.5
	chk.Array(tst, "outtimes", 1e-17, analysis.Summary.OutTimes, []float64{0, 0.5})
}

func Test_sor03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sor03. residual never grows with a larger sweep budget")

	var sim inp.Simulation
	sim.Solver.SetDefault()
	sim.Grid = inp.GridData{Nx: 8, Ny: 8, Lx: 7, Ly: 7, C: 1}
	sim.Control = inp.ControlData{Dt: 0.5, Tf: 1}
	sim.Boundary = inp.BoundaryData{Kind: "clamped"}

	dom, err := NewDomain(&sim)
	if err != nil {
		tst.Errorf("cannot allocate domain:\n%v", err)
		return
	}

	// fixed right-hand side resembling a uniform load
	for i := 1; i < 7; i++ {
		for j := 1; j < 7; j++ {
			dom.Rhs[i][j] = 1
		}
	}

	// relax the same system with increasing sweep budgets
	budgets := []int{2, 5, 10, 20, 40}
	residuals := make([]float64, len(budgets))
	for k, n := range budgets {
		solver := &SolverSORImplicit{dom: dom, omega: 1.5, tol: 1e-14, nmaxit: n}
		it, resid, _ := solver.relax()
		io.Pforan("nmaxit = %2d: it = %2d, resid = %g\n", n, it, resid)
		residuals[k] = resid
	}
	for k := 1; k < len(budgets); k++ {
		if residuals[k] > residuals[k-1] {
			tst.Errorf("residual grew from %g to %g when the budget increased from %d to %d",
				residuals[k-1], residuals[k], budgets[k-1], budgets[k])
			return
		}
	}
}

func Test_sor04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sor04. grid without interior nodes")

	var sim inp.Simulation
	sim.Solver.SetDefault()
	sim.Grid = inp.GridData{Nx: 2, Ny: 5, Lx: 1, Ly: 1, C: 1}
	sim.Control = inp.ControlData{Dt: 0.1, Tf: 1}
	sim.Boundary = inp.BoundaryData{Kind: "clamped"}

	dom, err := NewDomain(&sim)
	if err != nil {
		tst.Errorf("cannot allocate domain:\n%v", err)
		return
	}

	// a guess with some pattern
	for i := 0; i < 2; i++ {
		for j := 0; j < 5; j++ {
			dom.U1[i][j] = float64(i + j)
		}
	}

	solver := &SolverSORImplicit{dom: dom, omega: 1.8, tol: 1e-12, nmaxit: 100}
	it, resid, converged := solver.relax()

	// the guess comes back unchanged
	chk.IntAssert(it, 0)
	chk.Float64(tst, "resid", 1e-17, resid, 0)
	if !converged {
		tst.Errorf("relaxation on a grid without interior nodes must converge trivially")
		return
	}
	chk.Deep2(tst, "U", 1e-17, dom.U, dom.U1)
}
