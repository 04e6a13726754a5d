// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/membrane
	Encoder string `json:"encoder"` // encoder name; e.g. "gob" "json"
}

// GridData holds the uniform rectangular grid geometry and the wave speed
type GridData struct {
	Nx int     `json:"nx"` // number of nodes along x
	Ny int     `json:"ny"` // number of nodes along y
	Lx float64 `json:"lx"` // membrane extent along x
	Ly float64 `json:"ly"` // membrane extent along y
	C  float64 `json:"c"`  // wave propagation speed
}

// SolverData holds data controlling the SOR relaxation
type SolverData struct {
	Type   string  `json:"type"`   // solver type; e.g. "sor-imp"
	Omega  float64 `json:"omega"`  // over-relaxation factor; 0 < omega < 2
	Tol    float64 `json:"tol"`    // tolerance on the max change per sweep
	NmaxIt int     `json:"nmaxit"` // max number of sweeps per time step
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Type = "sor-imp"
	o.Omega = 1.8
	o.Tol = 1e-13
	o.NmaxIt = 5000
}

// ControlData holds time loop control data
type ControlData struct {
	Dt    float64 `json:"dt"`    // time step
	Tf    float64 `json:"tf"`    // final time
	DtOut float64 `json:"dtout"` // time increment for output; 0 => every step
}

// BoundaryData holds the boundary condition applied to all four edges
type BoundaryData struct {
	Kind  string  `json:"kind"`  // condition kind: "free" or "clamped"
	Value float64 `json:"value"` // edge displacement for clamped condition
}

// SourceData holds the definition of one excitation generator
type SourceData struct {
	I   int     `json:"i"`   // node index along x
	J   int     `json:"j"`   // node index along y
	Fcn string  `json:"fcn"` // name of time function; see "functions"
	Ta  float64 `json:"ta"`  // activation time
	Tb  float64 `json:"tb"`  // deactivation time; Tb <= 0 => never deactivates
}

// Simulation holds all simulation data read from a .sim file
type Simulation struct {

	// input data
	Data      Data          `json:"data"`      // global information
	Grid      GridData      `json:"grid"`      // grid geometry and wave speed
	Solver    SolverData    `json:"solver"`    // SOR relaxation data
	Control   ControlData   `json:"control"`   // time loop control
	Boundary  BoundaryData  `json:"boundary"`  // boundary condition
	Sources   []*SourceData `json:"sources"`   // excitation generators
	Functions FuncsData     `json:"functions"` // time functions

	// derived
	Key     string // simulation key; e.g. clamped-center
	EncType string // encoder type
	DirOut  string // output directory
}

// ReadSim reads the simulation input data from a .sim JSON file.
// Configuration errors are fatal and must surface before any stepping
// begins; thus this function panics on invalid input.
func ReadSim(simfilepath, alias string, erasePrev, createDirOut bool) *Simulation {

	// new sim
	var o Simulation

	// read file; io.ReadFile panics if the file cannot be read
	b := io.ReadFile(simfilepath)

	// set default values
	o.Solver.SetDefault()

	// decode
	err := json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// filename key
	fn := filepath.Base(simfilepath)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/membrane/" + fnkey
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("ReadSim: cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// erase previous simulation results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// check input values
	err = o.Validate()
	if err != nil {
		chk.Panic("ReadSim: invalid simulation data:\n%v", err)
	}
	return &o
}

// Validate checks simulation data for consistency
func (o *Simulation) Validate() (err error) {

	// grid
	g := &o.Grid
	if g.Nx < 2 || g.Ny < 2 {
		return chk.Err("grid must have at least two nodes per direction. nx=%d, ny=%d is invalid", g.Nx, g.Ny)
	}
	if g.Lx <= 0 || g.Ly <= 0 {
		return chk.Err("grid extents must be positive. lx=%g, ly=%g is invalid", g.Lx, g.Ly)
	}
	if g.C <= 0 {
		return chk.Err("wave speed must be positive. c=%g is invalid", g.C)
	}

	// time loop
	if o.Control.Dt <= 0 {
		return chk.Err("time step must be positive. dt=%g is invalid", o.Control.Dt)
	}
	if o.Control.Tf <= 0 {
		return chk.Err("final time must be positive. tf=%g is invalid", o.Control.Tf)
	}
	if o.Control.DtOut < 0 {
		return chk.Err("output increment must be non-negative. dtout=%g is invalid", o.Control.DtOut)
	}

	// relaxation
	if o.Solver.Omega <= 0 || o.Solver.Omega >= 2 {
		return chk.Err("over-relaxation factor must be within (0, 2). omega=%g is invalid", o.Solver.Omega)
	}
	if o.Solver.Tol <= 0 {
		return chk.Err("relaxation tolerance must be positive. tol=%g is invalid", o.Solver.Tol)
	}
	if o.Solver.NmaxIt < 1 {
		return chk.Err("max number of sweeps must be at least one. nmaxit=%d is invalid", o.Solver.NmaxIt)
	}

	// sources
	for k, src := range o.Sources {
		if src.I < 0 || src.I >= g.Nx || src.J < 0 || src.J >= g.Ny {
			return chk.Err("source #%d is outside the grid. i=%d, j=%d with nx=%d, ny=%d", k, src.I, src.J, g.Nx, g.Ny)
		}
		if src.Tb > 0 && src.Tb < src.Ta {
			return chk.Err("source #%d has a malformed time window. ta=%g, tb=%g", k, src.Ta, src.Tb)
		}
		_, err = o.Functions.Get(src.Fcn)
		if err != nil {
			return chk.Err("source #%d: %v", k, err)
		}
	}
	return
}
