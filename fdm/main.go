// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fdm implements the implicit finite difference solver for the
// 2D membrane wave equation
package fdm

import (
	"time"

	"github.com/Kostia9/math-modelling/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// OutFcn_t is a callback to collect the domain after each completed time step
type OutFcn_t func(d *Domain)

// Main holds all data for a simulation of membrane dynamics using the
// finite difference method
type Main struct {
	Sim     *inp.Simulation // simulation data
	Summary *Summary        // summary structure
	Dom     *Domain         // grid domain with the field state window
	Solver  Solver          // time loop solver; e.g. sor-imp
	OutFcn  OutFcn_t        // optional frame sink callback
	ShowMsg bool            // show messages

	// control
	saveSum bool // save summary upon exit
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   alias       -- word to be appended to simulation key
//   erasePrev   -- erase previous results files
//   saveSummary -- save summary on exit
//   verbose     -- show messages
func NewMain(simfilepath, alias string, erasePrev, saveSummary, verbose bool) (o *Main) {

	// new Main object
	o = new(Main)
	o.ShowMsg = verbose
	o.saveSum = saveSummary

	// read input data
	o.Sim = inp.ReadSim(simfilepath, alias, erasePrev, true)
	if o.Sim == nil {
		chk.Panic("cannot read simulation input data")
	}

	// summary always exists: it accumulates the convergence warnings
	o.Summary = new(Summary)

	// message
	if o.ShowMsg {
		io.Pf("> Initialisation step completed\n")
		io.Pf("> Simulation (.sim) file read\n")
	}

	// allocate domain
	var err error
	o.Dom, err = NewDomain(o.Sim)
	if err != nil {
		chk.Panic("cannot allocate domain:\n%v", err)
	}

	// allocate solver
	if alloc, ok := allocators[o.Sim.Solver.Type]; ok {
		o.Solver = alloc(o.Dom, o.Summary)
	} else {
		chk.Panic("cannot find solver type named %q", o.Sim.Solver.Type)
	}
	return
}

// Run runs the simulation
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// run the time loop
	err = o.Solver.Run(o.Sim.Control.Tf, o.ShowMsg, o.OutFcn)
	if err != nil {
		return chk.Err("solver failed:\n%v", err)
	}
	return
}

// onexit saves the summary and prints final messages
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {
	if prevErr == nil && o.saveSum {
		err = o.Summary.Save(o.Sim.DirOut, o.Sim.Key, o.Sim.EncType)
		if err != nil {
			return
		}
	}
	if o.ShowMsg {
		io.Pf("\n> Final t = %g\n", o.Dom.T)
		o.Summary.Report()
		io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
	}
	if prevErr != nil {
		err = prevErr
	}
	return
}
