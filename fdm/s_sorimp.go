// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SolverSORImplicit advances the membrane with the implicit
// Crank-Nicolson-style scheme, reducing each time step to a linear system
// over the interior nodes and solving it by successive over-relaxation
type SolverSORImplicit struct {
	dom *Domain
	sum *Summary

	// relaxation control
	omega  float64 // over-relaxation factor
	tol    float64 // tolerance on the max change per sweep
	nmaxit int     // max number of sweeps per time step
}

// set factory of solvers
func init() {
	allocators["sor-imp"] = func(dom *Domain, sum *Summary) Solver {
		solver := new(SolverSORImplicit)
		solver.dom = dom
		solver.sum = sum
		solver.omega = dom.Sim.Solver.Omega
		solver.tol = dom.Sim.Solver.Tol
		solver.nmaxit = dom.Sim.Solver.NmaxIt
		return solver
	}
}

func (o *SolverSORImplicit) Run(tf float64, verbose bool, out OutFcn_t) (err error) {

	// control. the number of steps is derived once and the time is computed
	// from the step index; accumulating t += Δt drifts over long runs
	d := o.dom
	Δt := d.Sim.Control.Dt
	dtout := d.Sim.Control.DtOut
	if dtout < Δt {
		dtout = Δt
	}
	t0 := d.T
	nsteps := int((tf-t0)/Δt + 0.5)
	nout := 1

	// first output
	if o.sum != nil {
		o.sum.SaveFrame(d)
	}

	// time loop
	for n := 0; n < nsteps; n++ {

		// the excitation acts on the current field, at the current time,
		// before the step is taken
		d.InjectSources(d.T)

		// right-hand side from the two known levels
		d.CalcRhs()

		// time increment
		t := t0 + float64(n+1)*Δt
		d.Step++
		d.T = t

		// message
		if verbose {
			io.PfWhite("%30.15f\r", t)
		}

		// relax to the new level
		it, resid, converged := o.relax()

		// abort on non-finite values
		err = d.CheckFinite()
		if err != nil {
			return chk.Err("numerical instability detected:\n%v", err)
		}

		// non-convergence is recorded but does not abort the run; the
		// approximate field is carried on and later steps self-correct
		if !converged {
			if o.sum != nil {
				o.sum.AddWarning(d.Step, it, resid)
			}
			if verbose {
				io.Pf("\nstep %d: relaxation did not converge in %d sweeps. residual = %g\n", d.Step, it, resid)
			}
		}

		// rotate the state window
		d.Rotate()

		// output
		if o.sum != nil {
			if t >= t0+float64(nout)*dtout-1e-14 || n == nsteps-1 {
				o.sum.SaveFrame(d)
				nout++
			}
		}
		if out != nil {
			out(d)
		}
	}
	return
}

// relax solves the linear system of one time step by SOR sweeps, starting
// from the current field as the initial guess. Sweeps run over the interior
// nodes in row-major order, in place, so that later updates within a sweep
// read the freshest neighbour values (Gauss-Seidel style). The boundary
// condition is re-imposed after every sweep.
//  Output:
//   it        -- number of sweeps performed
//   resid     -- max absolute change over the interior nodes in the last sweep
//   converged -- whether resid fell below the tolerance within nmaxit sweeps
func (o *SolverSORImplicit) relax() (it int, resid float64, converged bool) {

	// guess
	d := o.dom
	nx, ny := d.Grid.Nx, d.Grid.Ny
	U := d.U
	for i := 0; i < nx; i++ {
		copy(U[i], d.U1[i])
	}

	// no interior nodes: nothing to solve
	if nx < 3 || ny < 3 {
		converged = true
		return
	}

	// sweeps
	cf := d.Coefs
	rhs := d.Rhs
	ω := o.omega
	invb := 1.0 / cf.B
	for it = 1; it <= o.nmaxit; it++ {
		resid = 0
		for i := 1; i < nx-1; i++ {
			for j := 1; j < ny-1; j++ {
				v := (cf.Ax*U[i-1][j] + cf.Cx*U[i+1][j] + cf.Ay*U[i][j-1] + cf.Cy*U[i][j+1] - rhs[i][j]) * invb
				unew := v*ω + U[i][j]*(1.0-ω)
				diff := math.Abs(unew - U[i][j])
				if diff > resid {
					resid = diff
				}
				U[i][j] = unew
			}
		}
		d.Bcs.Apply(U)
		if resid <= o.tol {
			converged = true
			return
		}
	}
	it = o.nmaxit
	return
}
