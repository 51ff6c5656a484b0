// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import "github.com/tkeatkaew/parallel-swp-bem-project/geom"

// CoMatrix is a column-major matrix whose elements are 2-vectors
// (geom.Point), the "co" element type the spec names for first-
// derivative geometry vectors (co_vgv, co_cgv).
type CoMatrix struct {
	Rows, Columns int
	Value         []geom.Point
}

// NewCoMatrix allocates a zeroed rows x columns CoMatrix.
func NewCoMatrix(rows, columns int) *CoMatrix {
	return &CoMatrix{Rows: rows, Columns: columns, Value: make([]geom.Point, rows*columns)}
}

// Get reads element (i,j).
func (x *CoMatrix) Get(i, j int) geom.Point {
	return x.Value[j*x.Rows+i]
}

// Put writes element (i,j).
func (x *CoMatrix) Put(i, j int, v geom.Point) {
	x.Value[j*x.Rows+i] = v
}

// TenMatrix is a column-major matrix whose elements are 2x2 tensors
// (geom.Tensor2), the "ten" element type the spec names for second-
// derivative geometry vectors (ten_vgv, ten_cgv).
type TenMatrix struct {
	Rows, Columns int
	Value         []geom.Tensor2
}

// NewTenMatrix allocates a zeroed rows x columns TenMatrix.
func NewTenMatrix(rows, columns int) *TenMatrix {
	return &TenMatrix{Rows: rows, Columns: columns, Value: make([]geom.Tensor2, rows*columns)}
}

// Get reads element (i,j).
func (x *TenMatrix) Get(i, j int) geom.Tensor2 {
	return x.Value[j*x.Rows+i]
}

// Put writes element (i,j).
func (x *TenMatrix) Put(i, j int, v geom.Tensor2) {
	x.Value[j*x.Rows+i] = v
}
