// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mat implements the dense column-major matrix type the
// boundary-element assembly is built on: a flat, arena-friendly value
// array with a lazy transpose flag and block-addressed put/get so
// a tall matrix can be treated as a stack of sub-matrices without
// copying. Inversion is delegated to gosl/la's dense solver, copying
// through its [][]float64 row-slice convention at the boundary; multiply
// stays a hand-written column-major loop since this type's packed-arena
// layout does not share memory with that row-slice convention (see
// DESIGN.md).
package mat

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Matrix is a dense matrix of scalars, stored column-major: element
// (i,j) lives at Value[j*Rows+i] unless Transpose is set, in which case
// reads/writes swap i and j. There is no invert flag: Invert replaces
// the values with the inverse immediately.
type Matrix struct {
	Rows, Columns int
	Value         []float64
	Transpose     bool
}

// NewMatrix allocates a zeroed rows x columns matrix.
func NewMatrix(rows, columns int) *Matrix {
	return &Matrix{Rows: rows, Columns: columns, Value: make([]float64, rows*columns)}
}

// Attach wraps a matrix around pre-existing backing storage without
// copying it, so several matrices can be views into one arena.
func Attach(rows, columns int, data []float64) *Matrix {
	return &Matrix{Rows: rows, Columns: columns, Value: data}
}

// NumRows returns the logical row count, honoring Transpose.
func (x *Matrix) NumRows() int {
	if !x.Transpose {
		return x.Rows
	}
	return x.Columns
}

// NumColumns returns the logical column count, honoring Transpose.
func (x *Matrix) NumColumns() int {
	if !x.Transpose {
		return x.Columns
	}
	return x.Rows
}

// Get reads the logical element (i,j).
func (x *Matrix) Get(i, j int) float64 {
	if !x.Transpose {
		return x.Value[j*x.Rows+i]
	}
	return x.Value[i*x.Rows+j]
}

// Put writes the logical element (i,j).
func (x *Matrix) Put(i, j int, v float64) {
	if !x.Transpose {
		x.Value[j*x.Rows+i] = v
	} else {
		x.Value[i*x.Rows+j] = v
	}
}

// GetBlock reads element (i,j) of the sub-matrix whose top-left corner
// sits at (offsetI, offsetJ) in x — the block-addressed access the BEM
// assembly uses to fill each of its matrices one segment block at a time.
func (x *Matrix) GetBlock(offsetI, offsetJ, i, j int) float64 {
	return x.Get(offsetI+i, offsetJ+j)
}

// PutBlock writes element (i,j) of the sub-matrix at (offsetI, offsetJ).
func (x *Matrix) PutBlock(offsetI, offsetJ, i, j int, v float64) {
	x.Put(offsetI+i, offsetJ+j, v)
}

// Copy deep-copies a into x, which must already be sized to match.
func Copy(a, x *Matrix) {
	checkSize(a, x)
	rows, cols := a.NumRows(), a.NumColumns()
	x.Transpose = false
	x.Rows, x.Columns = rows, cols
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			x.Put(i, j, a.Get(i, j))
		}
	}
}

// Multiply computes X := A*B (honoring A/B's transpose flags) as a
// pure, column-major triple loop. X must be distinct from A and B and
// already sized to (A.NumRows() x B.NumColumns()).
func Multiply(a, b, x *Matrix) {
	if a.NumColumns() != b.NumRows() {
		chk.Panic("cannot multiply matrix shape (%dx%d) by matrix shape (%dx%d)", a.NumRows(), a.NumColumns(), b.NumRows(), b.NumColumns())
	}
	rowsA, colsB, colsA := a.NumRows(), b.NumColumns(), a.NumColumns()
	if x.NumRows()*x.NumColumns() != rowsA*colsB {
		chk.Panic("cannot put matrix product (%dx%d) into matrix shape (%dx%d)", rowsA, colsB, x.NumRows(), x.NumColumns())
	}
	if a == x || b == x {
		chk.Panic("matrix for result must be different from input")
	}
	x.Transpose = false
	x.Rows, x.Columns = rowsA, colsB
	for j := 0; j < colsB; j++ {
		for i := 0; i < rowsA; i++ {
			sum := 0.0
			for k := 0; k < colsA; k++ {
				sum += a.Get(i, k) * b.Get(k, j)
			}
			x.Put(i, j, sum)
		}
	}
}

// Add computes x := a+b element-wise; a, b and x must share the same
// logical shape. Used to form DA = D+A.
func Add(a, b, x *Matrix) {
	if a.NumRows() != b.NumRows() || a.NumColumns() != b.NumColumns() {
		chk.Panic("cannot add matrix shape (%dx%d) to matrix shape (%dx%d)", a.NumRows(), a.NumColumns(), b.NumRows(), b.NumColumns())
	}
	checkSize(a, x)
	rows, cols := a.NumRows(), a.NumColumns()
	x.Transpose = false
	x.Rows, x.Columns = rows, cols
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			x.Put(i, j, a.Get(i, j)+b.Get(i, j))
		}
	}
}

// Transposed returns a view of a with the transpose flag toggled,
// sharing a's backing storage — the zero-copy equivalent of the
// source's transpose_matrix(BT,BT), which "makes transpose but does
// not destroy B".
func Transposed(a *Matrix) *Matrix {
	return &Matrix{Rows: a.Rows, Columns: a.Columns, Value: a.Value, Transpose: !a.Transpose}
}

// Invert replaces a in place by its inverse, delegating the dense LU
// factorization and explicit inversion to gosl/la. A fails for
// pathological (singular) zones — per the spec this is fatal for the
// current query, so the caller is expected to recover from the panic
// at the query boundary and report a Numerical error.
func Invert(a *Matrix) {
	n := a.NumColumns()
	if a.NumRows() != n {
		chk.Panic("cannot invert matrix shape (%dx%d)", a.NumRows(), n)
	}
	dense := la.MatAlloc(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dense[i][j] = a.Get(i, j)
		}
	}
	inv := la.MatAlloc(n, n)
	det, err := la.MatInv(inv, dense, 1e-13)
	if err != nil {
		chk.Panic("matrix inversion failed: %v", err)
	}
	if det == 0 {
		chk.Panic("matrix inversion failed: singular matrix (n=%d)", n)
	}
	a.Transpose = false
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Put(i, j, inv[i][j])
		}
	}
}

// ZeroLastRow overwrites the last logical row of a with zeros — used to
// remove DA's contribution to the KCL constraint row of a finite zone.
func ZeroLastRow(a *Matrix) {
	rows, cols := a.NumRows(), a.NumColumns()
	i := rows - 1
	for j := 0; j < cols; j++ {
		a.Put(i, j, 0.0)
	}
}

// FillLastRow overwrites the last logical row of a with the single row
// of v — used to inject the KCL constraint row into B.
func FillLastRow(a, v *Matrix) {
	if v.NumRows() != 1 || v.NumColumns() != a.NumColumns() {
		chk.Panic("cannot put matrix size (%dx%d) into last row of matrix size (%dx%d)", v.NumRows(), v.NumColumns(), a.NumRows(), a.NumColumns())
	}
	rows, cols := a.NumRows(), a.NumColumns()
	i := rows - 1
	for j := 0; j < cols; j++ {
		a.Put(i, j, v.Get(0, j))
	}
}

func checkSize(a, x *Matrix) {
	sizeA := a.NumRows() * a.NumColumns()
	sizeX := x.NumRows() * x.NumColumns()
	if sizeA != sizeX {
		chk.Panic("cannot put matrix size (%d=%dx%d) into matrix size (%d=%dx%d)", sizeA, a.NumRows(), a.NumColumns(), sizeX, x.NumRows(), x.NumColumns())
	}
}
