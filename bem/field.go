// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"math"

	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
	"github.com/tkeatkaew/parallel-swp-bem-project/kernel"
	"github.com/tkeatkaew/parallel-swp-bem-project/mat"
	"github.com/tkeatkaew/parallel-swp-bem-project/pathmodel"
)

const twoPi = 2.0 * math.Pi

// FieldVectors are the six lazy row vectors, sized to a zone's N, that
// evaluating voltage/grad/sec_grad at one point requires: scalar
// voltage- and current-geometry vectors (Vgv/Cgv, length 2N/4N), their
// point-valued first derivatives (CoVgv/CoCgv, as single-column
// CoMatrix vectors) and tensor-valued second derivatives (TenVgv/TenCgv,
// as single-column TenMatrix vectors). A FieldVectors is allocated once
// at the catchment's worst-case N and reused across every zone query.
type FieldVectors struct {
	Vgv, Cgv       []float64
	CoVgv, CoCgv   *mat.CoMatrix
	TenVgv, TenCgv *mat.TenMatrix
}

// NewFieldVectors allocates scratch sized to maxN boundary points.
func NewFieldVectors(maxN int) *FieldVectors {
	return &FieldVectors{
		Vgv:    make([]float64, 2*maxN),
		Cgv:    make([]float64, 4*maxN),
		CoVgv:  mat.NewCoMatrix(2*maxN, 1),
		CoCgv:  mat.NewCoMatrix(4*maxN, 1),
		TenVgv: mat.NewTenMatrix(2*maxN, 1),
		TenCgv: mat.NewTenMatrix(4*maxN, 1),
	}
}

// fillVoltageGeometryVector evaluates the scalar V/W terms of b's
// boundary against point P.
func fillVoltageGeometryVector(P geom.Point, b *pathmodel.Boundary, vgv []float64) {
	offset := 0
	for _, path := range b.Components {
		for seg := 0; seg < path.NumPoints(); seg++ {
			Qa, Qb := path.XY(seg), path.XY(seg+1)
			x, y1, y2 := geom.ConvertPQ(Qa, Qb, P)
			v, w := kernel.VtermPoffS(x, y1, y2), kernel.WtermPoffS(x, y1, y2)
			v, w = kernel.P2C2Basis(v, w)
			j := (offset + seg) * 2
			vgv[j], vgv[j+1] = v, w
		}
		offset += path.NumPoints()
	}
}

func fillCurrentGeometryVector(P geom.Point, b *pathmodel.Boundary, cgv []float64) {
	offset := 0
	for _, path := range b.Components {
		for seg := 0; seg < path.NumPoints(); seg++ {
			Qa, Qb := path.XY(seg), path.XY(seg+1)
			x, y1, y2 := geom.ConvertPQ(Qa, Qb, P)
			jj := kernel.JtermPoffS(x, y1, y2)
			k := kernel.KtermPoffS(x, y1, y2)
			l := kernel.LtermPoffS(x, y1, y2)
			m := kernel.MtermPoffS(x, y1, y2)
			jj, k, l, m = kernel.P2C4Basis(jj, k, l, m)
			j := (offset + seg) * 4
			cgv[j], cgv[j+1], cgv[j+2], cgv[j+3] = jj, k, l, m
		}
		offset += path.NumPoints()
	}
}

func fillCoVoltageGeometryVector(P geom.Point, b *pathmodel.Boundary, coVgv *mat.CoMatrix) {
	offset := 0
	for _, path := range b.Components {
		for seg := 0; seg < path.NumPoints(); seg++ {
			Qa, Qb := path.XY(seg), path.XY(seg+1)
			x, y1, y2 := geom.ConvertPQ(Qa, Qb, P)
			vTerm := rotatePoint(kernel.V1(x, y1, y2), Qa, Qb)
			wTerm := rotatePoint(kernel.W1(x, y1, y2), Qa, Qb)
			a0, a1 := kernel.P2C2BasisCo(vTerm, wTerm)
			j := (offset + seg) * 2
			coVgv.Put(j, 0, a0)
			coVgv.Put(j+1, 0, a1)
		}
		offset += path.NumPoints()
	}
}

func fillCoCurrentGeometryVector(P geom.Point, b *pathmodel.Boundary, coCgv *mat.CoMatrix) {
	offset := 0
	for _, path := range b.Components {
		for seg := 0; seg < path.NumPoints(); seg++ {
			Qa, Qb := path.XY(seg), path.XY(seg+1)
			x, y1, y2 := geom.ConvertPQ(Qa, Qb, P)
			jTerm := rotatePoint(kernel.J1(x, y1, y2), Qa, Qb)
			kTerm := rotatePoint(kernel.K1(x, y1, y2), Qa, Qb)
			lTerm := rotatePoint(kernel.L1(x, y1, y2), Qa, Qb)
			mTerm := rotatePoint(kernel.M1(x, y1, y2), Qa, Qb)
			a0, a1, a2, a3 := kernel.P2C4BasisCo(jTerm, kTerm, lTerm, mTerm)
			j := (offset + seg) * 4
			coCgv.Put(j, 0, a0)
			coCgv.Put(j+1, 0, a1)
			coCgv.Put(j+2, 0, a2)
			coCgv.Put(j+3, 0, a3)
		}
		offset += path.NumPoints()
	}
}

func fillTenVoltageGeometryVector(P geom.Point, b *pathmodel.Boundary, tenVgv *mat.TenMatrix) {
	offset := 0
	for _, path := range b.Components {
		for seg := 0; seg < path.NumPoints(); seg++ {
			Qa, Qb := path.XY(seg), path.XY(seg+1)
			x, y1, y2 := geom.ConvertPQ(Qa, Qb, P)
			vTerm := geom.DoubleRotateToPQ(kernel.V2(x, y1, y2), Qa, Qb)
			wTerm := geom.DoubleRotateToPQ(kernel.W2(x, y1, y2), Qa, Qb)
			a0, a1 := kernel.P2C2BasisTen(vTerm, wTerm)
			j := (offset + seg) * 2
			tenVgv.Put(j, 0, a0)
			tenVgv.Put(j+1, 0, a1)
		}
		offset += path.NumPoints()
	}
}

func fillTenCurrentGeometryVector(P geom.Point, b *pathmodel.Boundary, tenCgv *mat.TenMatrix) {
	offset := 0
	for _, path := range b.Components {
		for seg := 0; seg < path.NumPoints(); seg++ {
			Qa, Qb := path.XY(seg), path.XY(seg+1)
			x, y1, y2 := geom.ConvertPQ(Qa, Qb, P)
			jTerm := geom.DoubleRotateToPQ(kernel.J2(x, y1, y2), Qa, Qb)
			kTerm := geom.DoubleRotateToPQ(kernel.K2(x, y1, y2), Qa, Qb)
			lTerm := geom.DoubleRotateToPQ(kernel.L2(x, y1, y2), Qa, Qb)
			mTerm := geom.DoubleRotateToPQ(kernel.M2(x, y1, y2), Qa, Qb)
			a0, a1, a2, a3 := kernel.P2C4BasisTen(jTerm, kTerm, lTerm, mTerm)
			j := (offset + seg) * 4
			tenCgv.Put(j, 0, a0)
			tenCgv.Put(j+1, 0, a1)
			tenCgv.Put(j+2, 0, a2)
			tenCgv.Put(j+3, 0, a3)
		}
		offset += path.NumPoints()
	}
}

func rotatePoint(p geom.Point, Qa, Qb geom.Point) geom.Point {
	return geom.RotateToPQ(p.X, p.Y, Qa, Qb)
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func dotPoint(a *mat.CoMatrix, n int, b []float64) geom.Point {
	var s geom.Point
	for i := 0; i < n; i++ {
		p := a.Get(i, 0)
		s.X += p.X * b[i]
		s.Y += p.Y * b[i]
	}
	return s
}

func dotTensor(a *mat.TenMatrix, n int, b []float64) geom.Tensor2 {
	var s geom.Tensor2
	for i := 0; i < n; i++ {
		t := a.Get(i, 0)
		s.A00 += t.A00 * b[i]
		s.A01 += t.A01 * b[i]
		s.A10 += t.A10 * b[i]
		s.A11 += t.A11 * b[i]
	}
	return s
}

// Voltage evaluates the scalar field at P, given the zone's solved
// (bvv, bcv). Unlike Grad/SecGrad, this is not normalized by 2*pi — the
// normalization is already folded into the Vterm/Wterm/J/K/L/M kernels'
// on/off-segment forms by construction (see Grad for the contrast).
func Voltage(b *pathmodel.Boundary, bvv, bcv []float64, P geom.Point, fv *FieldVectors) float64 {
	n := b.NumPoints()
	vgv, cgv := fv.Vgv[:2*n], fv.Cgv[:4*n]
	fillVoltageGeometryVector(P, b, vgv)
	fillCurrentGeometryVector(P, b, cgv)
	return dot(cgv, bcv) - dot(vgv, bvv)
}

// Grad evaluates the gradient at P.
func Grad(b *pathmodel.Boundary, bvv, bcv []float64, P geom.Point, fv *FieldVectors) geom.Point {
	n := b.NumPoints()
	coVgv, coCgv := fv.CoVgv, fv.CoCgv
	fillCoVoltageGeometryVector(P, b, coVgv)
	fillCoCurrentGeometryVector(P, b, coCgv)
	v1 := dotPoint(coVgv, 2*n, bvv)
	v2 := dotPoint(coCgv, 4*n, bcv)
	return geom.Point{X: (v2.X - v1.X) / twoPi, Y: (v2.Y - v1.Y) / twoPi}
}

// SecGrad evaluates the second-derivative tensor at P.
func SecGrad(b *pathmodel.Boundary, bvv, bcv []float64, P geom.Point, fv *FieldVectors) geom.Tensor2 {
	n := b.NumPoints()
	tenVgv, tenCgv := fv.TenVgv, fv.TenCgv
	fillTenVoltageGeometryVector(P, b, tenVgv)
	fillTenCurrentGeometryVector(P, b, tenCgv)
	v1 := dotTensor(tenVgv, 2*n, bvv)
	v2 := dotTensor(tenCgv, 4*n, bcv)
	return geom.Tensor2{
		A00: (v2.A00 - v1.A00) / twoPi,
		A01: (v2.A01 - v1.A01) / twoPi,
		A10: (v2.A10 - v1.A10) / twoPi,
		A11: (v2.A11 - v1.A11) / twoPi,
	}
}
