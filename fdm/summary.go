// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"encoding/gob"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// ConvWarning records one relaxation that missed the tolerance
type ConvWarning struct {
	Step  int     // time step index
	It    int     // number of sweeps performed
	Resid float64 // max change in the last sweep
}

// Summary records the output of one simulation run: the saved frames of the
// displacement field and the per-step convergence reports
type Summary struct {
	OutTimes []float64     // times of saved frames
	Steps    []int         // step indices of saved frames
	Frames   [][][]float64 // field snapshots; one (Nx x Ny) matrix per frame
	Warnings []*ConvWarning
}

// SaveFrame stores a deep copy of the current field state
func (o *Summary) SaveFrame(d *Domain) {
	F := utl.Alloc(d.Grid.Nx, d.Grid.Ny)
	for i := 0; i < d.Grid.Nx; i++ {
		copy(F[i], d.U1[i])
	}
	o.OutTimes = append(o.OutTimes, d.T)
	o.Steps = append(o.Steps, d.Step)
	o.Frames = append(o.Frames, F)
}

// AddWarning records one non-converged step
func (o *Summary) AddWarning(step, it int, resid float64) {
	o.Warnings = append(o.Warnings, &ConvWarning{step, it, resid})
}

// Report prints the per-run convergence summary
func (o *Summary) Report() {
	if len(o.Warnings) == 0 {
		io.Pf("relaxation converged at every step\n")
		return
	}
	io.Pf("relaxation missed the tolerance at %d step(s):\n", len(o.Warnings))
	for _, w := range o.Warnings {
		io.Pf("  step %4d: %d sweeps. residual = %g\n", w.Step, w.It, w.Resid)
	}
}

// Save writes the summary to the output directory
//  enctype -- encoder type: "gob" or "json"
func (o *Summary) Save(dirout, fnkey, enctype string) (err error) {
	fil, err := os.Create(filepath.Join(dirout, fnkey+".sum."+enctype))
	if err != nil {
		return chk.Err("cannot create summary file:\n%v", err)
	}
	defer fil.Close()
	switch enctype {
	case "json":
		err = json.NewEncoder(fil).Encode(o)
	default:
		err = gob.NewEncoder(fil).Encode(o)
	}
	if err != nil {
		return chk.Err("cannot encode summary:\n%v", err)
	}
	return
}

// ReadSum reads a summary back from the output directory
func ReadSum(dirout, fnkey, enctype string) (o *Summary, err error) {
	fil, err := os.Open(filepath.Join(dirout, fnkey+".sum."+enctype))
	if err != nil {
		return nil, chk.Err("cannot open summary file:\n%v", err)
	}
	defer fil.Close()
	o = new(Summary)
	switch enctype {
	case "json":
		err = json.NewDecoder(fil).Decode(o)
	default:
		err = gob.NewDecoder(fil).Decode(o)
	}
	if err != nil {
		return nil, chk.Err("cannot decode summary:\n%v", err)
	}
	return
}
