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

// testfield returns a field with a non-trivial interior pattern
func testfield(nx, ny int) (U [][]float64) {
	U = utl.Alloc(nx, ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			U[i][j] = float64(i*i) + 0.5*float64(j) - 0.1*float64(i*j)
		}
	}
	return
}

func Test_bc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bc01. free edges: mirror and corner average")

	g := NewGrid(&inp.GridData{Nx: 5, Ny: 4, Lx: 4, Ly: 3, C: 1}, 0.1)
	bc, err := NewBoundary(&inp.BoundaryData{Kind: "free"}, g)
	if err != nil {
		tst.Errorf("cannot allocate boundary condition:\n%v", err)
		return
	}

	U := testfield(5, 4)
	bc.Apply(U)
	io.Pforan("U = %v\n", U)

	// non-corner edge nodes mirror their interior neighbour
	for i := 1; i < 4; i++ {
		chk.Float64(tst, io.Sf("U[%d][0]", i), 1e-17, U[i][0], U[i][1])
		chk.Float64(tst, io.Sf("U[%d][3]", i), 1e-17, U[i][3], U[i][2])
	}
	for j := 1; j < 3; j++ {
		chk.Float64(tst, io.Sf("U[0][%d]", j), 1e-17, U[0][j], U[1][j])
		chk.Float64(tst, io.Sf("U[4][%d]", j), 1e-17, U[4][j], U[3][j])
	}

	// corners average their two edge neighbours
	chk.Float64(tst, "U[0][0]", 1e-17, U[0][0], 0.5*(U[1][0]+U[0][1]))
	chk.Float64(tst, "U[4][3]", 1e-17, U[4][3], 0.5*(U[3][3]+U[4][2]))
	chk.Float64(tst, "U[0][3]", 1e-17, U[0][3], 0.5*(U[0][2]+U[1][3]))
	chk.Float64(tst, "U[4][0]", 1e-17, U[4][0], 0.5*(U[4][1]+U[3][0]))

	// applying twice must give the same field
	V := utl.Alloc(5, 4)
	for i := 0; i < 5; i++ {
		copy(V[i], U[i])
	}
	bc.Apply(U)
	chk.Deep2(tst, "idempotence", 1e-17, U, V)
}

func Test_bc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bc02. clamped edges")

	g := NewGrid(&inp.GridData{Nx: 6, Ny: 5, Lx: 1, Ly: 1, C: 1}, 0.1)
	bc, err := NewBoundary(&inp.BoundaryData{Kind: "clamped", Value: 0.25}, g)
	if err != nil {
		tst.Errorf("cannot allocate boundary condition:\n%v", err)
		return
	}

	U := testfield(6, 5)
	bc.Apply(U)

	// every boundary node carries the rim displacement exactly
	for i := 0; i < 6; i++ {
		chk.Float64(tst, io.Sf("U[%d][0]", i), 1e-17, U[i][0], 0.25)
		chk.Float64(tst, io.Sf("U[%d][4]", i), 1e-17, U[i][4], 0.25)
	}
	for j := 0; j < 5; j++ {
		chk.Float64(tst, io.Sf("U[0][%d]", j), 1e-17, U[0][j], 0.25)
		chk.Float64(tst, io.Sf("U[5][%d]", j), 1e-17, U[5][j], 0.25)
	}

	// interior nodes are untouched
	chk.Float64(tst, "U[2][2]", 1e-17, U[2][2], testfield(6, 5)[2][2])

	// applying twice must give the same field
	V := utl.Alloc(6, 5)
	for i := 0; i < 6; i++ {
		copy(V[i], U[i])
	}
	bc.Apply(U)
	chk.Deep2(tst, "idempotence", 1e-17, U, V)
}

func Test_bc03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bc03. unknown boundary kind")

	g := NewGrid(&inp.GridData{Nx: 4, Ny: 4, Lx: 1, Ly: 1, C: 1}, 0.1)
	_, err := NewBoundary(&inp.BoundaryData{Kind: "periodic"}, g)
	if err == nil {
		tst.Errorf("unknown boundary kind was accepted")
		return
	}
	io.Pforan("err = %v\n", err)
}
