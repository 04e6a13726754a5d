// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

// Coefs holds the scalar coefficients of the implicit five-point scheme.
// They are derived once from the grid data and never change during a run.
type Coefs struct {
	Ax float64 // west neighbour:  C² / (2 Dx²)
	Cx float64 // east neighbour:  C² / (2 Dx²)
	Ay float64 // south neighbour: C² / (2 Dy²)
	Cy float64 // north neighbour: C² / (2 Dy²)
	B  float64 // diagonal: 1/Dt² + Ax + Cx + Ay + Cy
}

// Init computes the coefficients from the grid data
func (o *Coefs) Init(g *Grid) {
	o.Ax = g.C * g.C / (2.0 * g.Dx * g.Dx)
	o.Cx = o.Ax
	o.Ay = g.C * g.C / (2.0 * g.Dy * g.Dy)
	o.Cy = o.Ay
	o.B = 1.0/(g.Dt*g.Dt) + o.Ax + o.Cx + o.Ay + o.Cy
}
