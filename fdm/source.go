// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"github.com/Kostia9/math-modelling/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Source represents one excitation generator attached to a grid node. The
// generator drives the displacement of its node as a function of time while
// the simulation time lies within [Ta, Tb]; outside the window its
// contribution is exactly zero.
type Source struct {
	I, J int     // node location
	Fcn  dbf.T   // displacement magnitude as a function of time
	Ta   float64 // activation time
	Tb   float64 // deactivation time; Tb <= 0 => never deactivates
}

// NewSources allocates the excitation generators, resolving their time
// functions by name
func NewSources(sim *inp.Simulation) (sources []*Source, err error) {
	for k, dat := range sim.Sources {
		fcn, err := sim.Functions.Get(dat.Fcn)
		if err != nil {
			return nil, chk.Err("cannot allocate source #%d:\n%v", k, err)
		}
		sources = append(sources, &Source{dat.I, dat.J, fcn, dat.Ta, dat.Tb})
	}
	return
}

// Active tells whether the source contributes at time t
func (o *Source) Active(t float64) bool {
	if t < o.Ta {
		return false
	}
	if o.Tb > 0 && t > o.Tb {
		return false
	}
	return true
}

// F returns the excitation displacement at time t; zero outside the window
func (o *Source) F(t float64) float64 {
	if !o.Active(t) {
		return 0
	}
	return o.Fcn.F(t, nil)
}
